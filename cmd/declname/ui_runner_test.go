package main

import (
	"bytes"
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"declname/internal/config"
	"declname/internal/ui"
)

type recordSink struct {
	mu     sync.Mutex
	events map[int][]ui.Event
}

func (s *recordSink) OnEvent(ev ui.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[ev.Index] = append(s.events[ev.Index], ev)
}

func TestEvalFilesReportsProgress(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.names", "x = ident x\n")
	bad := writeFile(t, dir, "bad.names", "x = bogus\n")
	missing := filepath.Join(dir, "absent.names")

	a := &app{cfg: config.Default(), jobs: 2}
	sink := &recordSink{events: make(map[int][]ui.Event)}
	results, err := a.evalFilesTo(context.Background(), []string{good, bad, missing}, sink)
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	defer closeAll(results)

	want := map[int][]ui.Event{
		0: {
			{Index: 0, File: good, Stage: ui.StageLoad, Status: ui.StatusWorking},
			{Index: 0, File: good, Stage: ui.StageEval, Status: ui.StatusWorking},
			{Index: 0, File: good, Stage: ui.StageEval, Status: ui.StatusDone},
		},
		1: {
			{Index: 1, File: bad, Stage: ui.StageLoad, Status: ui.StatusWorking},
			{Index: 1, File: bad, Stage: ui.StageEval, Status: ui.StatusWorking},
			{Index: 1, File: bad, Stage: ui.StageEval, Status: ui.StatusError},
		},
		2: {
			{Index: 2, File: missing, Stage: ui.StageLoad, Status: ui.StatusWorking},
			{Index: 2, File: missing, Stage: ui.StageLoad, Status: ui.StatusError},
		},
	}
	if diff := cmp.Diff(want, sink.events); diff != "" {
		t.Fatalf("progress events (-want +got):\n%s", diff)
	}
}

func TestProgressNeedsTerminal(t *testing.T) {
	a := &app{progress: true, errOut: &bytes.Buffer{}}
	if a.showProgress() {
		t.Fatalf("progress must stay off when stderr is not a terminal")
	}
	a = &app{errOut: &bytes.Buffer{}}
	if a.showProgress() {
		t.Fatalf("progress must stay off without the flag")
	}

	path := writeFile(t, t.TempDir(), "x.names", "x = ident x\n")
	plain, _, err := execute(t, "print", path)
	if err != nil {
		t.Fatalf("print failed: %v", err)
	}
	withFlag, _, err := execute(t, "--progress", "print", path)
	if err != nil {
		t.Fatalf("print --progress failed: %v", err)
	}
	if plain != withFlag {
		t.Fatalf("--progress changed piped output: %q vs %q", plain, withFlag)
	}
}
