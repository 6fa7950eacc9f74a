// Package testkit holds checks shared by the script tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"declname/internal/script"
	"declname/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed script:
// 1) every statement span is non-empty and inside the file content
// 2) the keyword and label spans lie inside their statement span
// 3) statements follow each other without overlapping
func CheckSpanInvariants(s *script.Script, sf *source.File) error {
	if s == nil || sf == nil {
		return fmt.Errorf("nil script or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, st := range s.Stmts {
		h := st.Header()
		sp := h.Span
		if sp.Empty() {
			return fmt.Errorf("statement %d: empty span", i)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("statement %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End > lenContent {
			return fmt.Errorf("statement %d: span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if !within(h.Keyword, sp) {
			return fmt.Errorf("statement %d: keyword span %v is outside %v", i, h.Keyword, sp)
		}
		if h.Label != "" && !within(h.LabelSpan, sp) {
			return fmt.Errorf("statement %d: label span %v is outside %v", i, h.LabelSpan, sp)
		}
		// 3) порядок без пересечений
		if sp.Start < prevEnd {
			return fmt.Errorf("statement %d: span %v overlaps the previous statement", i, sp)
		}
		prevEnd = sp.End
	}
	return nil
}

func within(inner, outer source.Span) bool {
	return !inner.Empty() && inner.File == outer.File &&
		inner.Start >= outer.Start && inner.End <= outer.End
}
