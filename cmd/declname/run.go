package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"declname/internal/astctx"
	"declname/internal/diag"
	"declname/internal/diagfmt"
	"declname/internal/observ"
	"declname/internal/script"
	"declname/internal/source"
	"declname/internal/types"
	"declname/internal/ui"
)

// errDiagnostics is returned after the diagnostics have been printed.
var errDiagnostics = errors.New("scripts have errors")

// fileResult is one evaluated script. Every file owns its context, so files
// are evaluated in parallel without sharing tables.
type fileResult struct {
	path  string
	ctx   *astctx.Context
	res   *script.Result
	bag   *diag.Bag
	timer *observ.Timer
}

// evalFiles evaluates paths in parallel. Results keep the order of paths.
// With --progress on a terminal the files are shown as they finish.
func (a *app) evalFiles(ctx context.Context, title string, paths []string) ([]*fileResult, error) {
	if a.showProgress() {
		return a.evalFilesWithUI(ctx, title, paths)
	}
	return a.evalFilesTo(ctx, paths, nil)
}

func (a *app) evalFilesTo(ctx context.Context, paths []string, sink ui.Sink) ([]*fileResult, error) {
	jobs := a.jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*fileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = a.evalFile(gctx, i, path, sink)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		closeAll(results)
		return nil, err
	}
	return results, nil
}

func (a *app) evalFile(ctx context.Context, index int, path string, sink ui.Sink) *fileResult {
	fr := &fileResult{
		path:  path,
		ctx:   astctx.New(ctx),
		res:   &script.Result{},
		bag:   diag.NewBag(a.cfg.Output.MaxDiagnostics),
		timer: observ.NewTimer(),
	}
	emit := func(stage ui.Stage, status ui.Status) {
		ui.Emit(sink, ui.Event{Index: index, File: path, Stage: stage, Status: status})
	}
	emit(ui.StageLoad, ui.StatusWorking)
	load := fr.timer.Begin("load")
	id, err := fr.ctx.Files.Load(path)
	fr.timer.End(load, "")
	if err != nil {
		fr.bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+err.Error()))
		emit(ui.StageLoad, ui.StatusError)
		return fr
	}
	emit(ui.StageEval, ui.StatusWorking)
	eval := fr.timer.Begin("eval")
	fr.res = script.Run(ctx, fr.ctx, id, diag.BagReporter{Bag: fr.bag})
	fr.timer.End(eval, fmt.Sprintf("%d names, %d calls", len(fr.res.Entries), len(fr.res.Calls)))
	fr.bag.Sort()
	if fr.bag.HasErrors() {
		emit(ui.StageEval, ui.StatusError)
	} else {
		emit(ui.StageEval, ui.StatusDone)
	}
	return fr
}

func closeAll(results []*fileResult) {
	for _, fr := range results {
		if fr != nil {
			fr.ctx.Close()
		}
	}
}

// finish writes the diagnostics of every file to w and reports whether any
// of them is an error. With --timings the stage summaries go to stderr.
func (a *app) finish(w io.Writer, results []*fileResult) error {
	if a.timings {
		for _, fr := range results {
			if _, err := io.WriteString(a.errOut, fr.timer.Summary(fr.path)); err != nil {
				return err
			}
		}
	}
	failed := false
	for _, fr := range results {
		if fr.bag.Len() == 0 {
			continue
		}
		if err := a.writeDiagnostics(w, fr); err != nil {
			return err
		}
		failed = failed || fr.bag.HasErrors()
	}
	if failed {
		return errDiagnostics
	}
	return nil
}

func (a *app) writeDiagnostics(w io.Writer, fr *fileResult) error {
	fs := fr.ctx.Files
	switch a.diagFormat {
	case "short":
		_, err := fmt.Fprintln(w, diag.FormatShort(fr.bag.Items(), fs, true))
		return err
	case "json":
		return diagfmt.JSON(w, fr.bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			PathMode:         a.pathMode,
			BaseDir:          a.baseDir(),
		})
	default:
		return diagfmt.Pretty(w, fr.bag, fs, diagfmt.PrettyOpts{
			Color:     a.color,
			ShowNotes: true,
			PathMode:  a.pathMode,
			BaseDir:   a.baseDir(),
		})
	}
}

// baseDir is the directory relative paths are shown against: the directory
// of declname.toml, or the working directory without one.
func (a *app) baseDir() string {
	if a.cfgPath != "" {
		if abs, err := filepath.Abs(a.cfgPath); err == nil {
			return filepath.Dir(abs)
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// position renders pos as line:col, or "-" without a location.
func position(fs *source.FileSet, pos source.Pos) string {
	lc, ok := fs.ResolvePos(pos)
	if !ok {
		return "-"
	}
	return lc.String()
}

// entryLine formats one produced name as "label: name" or "name".
func entryLine(e script.Entry, pol types.Policy, asWritten bool) string {
	text := e.Info.Name.Format(pol)
	if asWritten {
		text = e.Info.String()
	}
	if e.Label == "" {
		return text
	}
	return e.Label + ": " + text
}
