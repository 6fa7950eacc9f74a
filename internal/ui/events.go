package ui

// Stage is the step a script file is in.
type Stage string

const (
	// StageLoad reads the file into the file set.
	StageLoad Stage = "load"
	// StageEval runs the statements of the file.
	StageEval Stage = "eval"
)

// Status is the progress state of a file within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress of the file at position Index of the run.
type Event struct {
	Index  int
	File   string
	Stage  Stage
	Status Status
}

// Sink receives progress events. Implementations must be safe for
// concurrent use.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// Emit sends evt to sink when there is one.
func Emit(sink Sink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
