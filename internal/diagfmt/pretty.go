package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"declname/internal/diag"
	"declname/internal/source"
)

type palette struct {
	err, warn, info, note, loc, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		info:  color.New(color.FgCyan, color.Bold),
		note:  color.New(color.FgBlue, color.Bold),
		loc:   color.New(color.Bold),
		caret: color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.loc, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes в том же формате.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		sev := pal.severity(d.Severity)
		if err := header(w, fs, d.Primary, opts, pal,
			sev.Sprint(d.Severity.String()), d.Code.ID(), d.Message); err != nil {
			return err
		}
		if err := snippet(w, fs, d.Primary, pal); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			if err := header(w, fs, n.Span, opts, pal, pal.note.Sprint("NOTE"), "", n.Msg); err != nil {
				return err
			}
			if err := snippet(w, fs, n.Span, pal); err != nil {
				return err
			}
		}
	}
	return nil
}

func header(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts, pal palette, sev, code, msg string) error {
	loc := "<unknown>"
	if f := fs.Get(sp.File); f != nil {
		start, _ := fs.Resolve(sp)
		loc = fmt.Sprintf("%s:%d:%d", formatPath(f.Path, opts.PathMode, opts.BaseDir), start.Line, start.Col)
	}
	var err error
	if code != "" {
		_, err = fmt.Fprintf(w, "%s: %s %s: %s\n", pal.loc.Sprint(loc), sev, code, msg)
	} else {
		_, err = fmt.Fprintf(w, "%s: %s: %s\n", pal.loc.Sprint(loc), sev, msg)
	}
	return err
}

// snippet prints the first line of sp with a caret run under it. Columns are
// measured in terminal cells so wide identifiers stay aligned.
func snippet(w io.Writer, fs *source.FileSet, sp source.Span, pal palette) error {
	f := fs.Get(sp.File)
	if f == nil {
		return nil
	}
	start, end := fs.Resolve(sp)
	line := f.Line(start.Line)
	if line == "" {
		return nil
	}
	from := min(int(start.Col)-1, len(line))
	to := len(line)
	if end.Line == start.Line {
		to = min(max(int(end.Col)-1, from+1), len(line))
	}
	pad := runewidth.StringWidth(line[:from])
	width := max(runewidth.StringWidth(line[from:to]), 1)
	marks := "^" + strings.Repeat("~", width-1)
	_, err := fmt.Fprintf(w, "  %s\n  %s%s\n", line, strings.Repeat(" ", pad), pal.caret.Sprint(marks))
	return err
}
