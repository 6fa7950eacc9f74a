package diag

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"declname/internal/source"
)

type shortDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatShort renders diagnostics one per line as
// "severity CODE path:line:col message", sorted deterministically. It is the
// format of `declname --diag-format=short` and of test expectations.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]shortDiagnostic, 0, len(diags))
	for i := range diags {
		rendered = appendShort(rendered, &diags[i], fs, includeNotes)
	}

	slices.SortStableFunc(rendered, func(di, dj shortDiagnostic) int {
		return cmp.Or(
			cmp.Compare(di.Path, dj.Path),
			cmp.Compare(di.Line, dj.Line),
			cmp.Compare(di.Column, dj.Column),
			cmp.Compare(di.Severity, dj.Severity),
			cmp.Compare(di.Code, dj.Code),
			cmp.Compare(di.Message, dj.Message),
		)
	})

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Code, d.Path, d.Line, d.Column, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func appendShort(out []shortDiagnostic, d *Diagnostic, fs *source.FileSet, includeNotes bool) []shortDiagnostic {
	if path, start, ok := resolveSpan(fs, d.Primary); ok {
		out = append(out, shortDiagnostic{
			Severity: d.Severity.Label(),
			Code:     d.Code.ID(),
			Path:     path,
			Line:     start.Line,
			Column:   start.Col,
			Message:  sanitizeMessage(d.Message),
		})
	}
	if !includeNotes {
		return out
	}
	for _, note := range d.Notes {
		path, start, ok := resolveSpan(fs, note.Span)
		if !ok {
			continue
		}
		out = append(out, shortDiagnostic{
			Severity: "note",
			Code:     d.Code.ID(),
			Path:     path,
			Line:     start.Line,
			Column:   start.Col,
			Message:  sanitizeMessage(note.Msg),
		})
	}
	return out
}

func resolveSpan(fs *source.FileSet, span source.Span) (string, source.LineCol, bool) {
	file := fs.Get(span.File)
	if file == nil {
		return "", source.LineCol{}, false
	}
	start, _ := fs.Resolve(span)
	return file.Path, start, true
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
