package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"declname/internal/ui"
)

type evalOutcome struct {
	results []*fileResult
	err     error
}

// showProgress reports whether --progress was given and stderr is a
// terminal. The view never goes to stdout.
func (a *app) showProgress() bool {
	if !a.progress {
		return false
	}
	f, ok := a.errOut.(*os.File)
	return ok && isTerminal(f)
}

func (a *app) evalFilesWithUI(ctx context.Context, title string, paths []string) ([]*fileResult, error) {
	events := make(chan ui.Event, 256)
	outcomeCh := make(chan evalOutcome, 1)

	go func() {
		results, err := a.evalFilesTo(ctx, paths, ui.ChannelSink{Ch: events})
		outcomeCh <- evalOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, paths, events)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(a.errOut),
	)
	_, uiErr := program.Run()
	if uiErr != nil {
		// дочитываем события, чтобы горутина не зависла на отправке
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		closeAll(outcome.results)
		return nil, uiErr
	}
	return outcome.results, outcome.err
}
