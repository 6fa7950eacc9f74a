package diag

import (
	"declname/internal/source"
)

// Note points at a second location of the same problem.
type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// NewError builds an error diagnostic without notes. Producers inside a
// pass go through a Reporter instead.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: SevError, Code: code, Primary: primary, Message: msg}
}

// WithNote returns d with one more note; the notes slice of d is not shared.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes[:len(d.Notes):len(d.Notes)], Note{Span: sp, Msg: msg})
	return d
}

// HasLocation reports whether the primary span names a file position.
func (d Diagnostic) HasLocation() bool {
	return !d.Primary.Empty()
}
