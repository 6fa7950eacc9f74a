package observ

import (
	"fmt"
	"strings"
	"time"
)

// Stage records the duration of one step of a script run.
type Stage struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer collects the stages of a single file. It is not safe for concurrent
// use: parallel runs keep one Timer per file.
type Timer struct {
	stages []Stage
	now    func() time.Time
}

// NewTimer creates an empty Timer.
func NewTimer() *Timer {
	return &Timer{stages: make([]Stage, 0, 4), now: time.Now}
}

// Begin starts a stage and returns its index for End.
func (t *Timer) Begin(name string) int {
	t.stages = append(t.stages, Stage{Name: name, Start: t.now()})
	return len(t.stages) - 1
}

// End finishes the stage idx. Unknown indexes are ignored.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.stages) {
		return
	}
	s := &t.stages[idx]
	s.Dur = t.now().Sub(s.Start)
	s.Note = note
}

// Summary renders the stages under title, one per line, with a total.
func (t *Timer) Summary(title string) string {
	report := t.Report()
	var sb strings.Builder
	fmt.Fprintf(&sb, "timings: %s\n", title)
	for _, s := range report.Stages {
		fmt.Fprintf(&sb, "  %-12s %8.3f ms", s.Name, s.DurationMS)
		if s.Note != "" {
			sb.WriteString("  // " + s.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-12s %8.3f ms\n", "total", report.TotalMS)
	return sb.String()
}

// StageReport представляет сжатую информацию о стадии для сериализации.
type StageReport struct {
	Name       string  `json:"name" msgpack:"name"`
	DurationMS float64 `json:"duration_ms" msgpack:"duration_ms"`
	Note       string  `json:"note,omitempty" msgpack:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms" msgpack:"total_ms"`
	Stages  []StageReport `json:"stages" msgpack:"stages"`
}

// Report формирует срез стадий и общую длительность в миллисекундах.
func (t *Timer) Report() Report {
	if len(t.stages) == 0 {
		return Report{}
	}
	report := Report{Stages: make([]StageReport, len(t.stages))}
	var total time.Duration
	for i, s := range t.stages {
		total += s.Dur
		report.Stages[i] = StageReport{
			Name:       s.Name,
			DurationMS: durationToMillis(s.Dur),
			Note:       s.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
