// Package selector models Objective-C message selectors.
//
// Zero- and one-argument selectors are encoded directly by their single
// identifier. Selectors with two or more keyword slots reference a uniqued
// Keywords record owned by the Table, so every Selector is a small comparable
// value and equal selectors compare equal with ==.
package selector

import (
	"strings"

	"declname/internal/arena"
	"declname/internal/ident"
)

// Keywords is the uniqued slot list of a multi-keyword selector.
type Keywords struct {
	slots []*ident.Info
	seq   arena.Seq
}

// Len returns the number of keyword slots.
func (k *Keywords) Len() int { return len(k.slots) }

// Selector is a message selector value.
type Selector struct {
	nargs uint32
	id    *ident.Info
	kw    *Keywords
}

// IsNull reports whether s is the zero selector.
func (s Selector) IsNull() bool {
	return s.id == nil && s.kw == nil && s.nargs == 0
}

// NumArgs returns the number of arguments the selector takes.
func (s Selector) NumArgs() int {
	return int(s.nargs)
}

// IsUnarySelector reports a zero-argument selector such as "count".
func (s Selector) IsUnarySelector() bool { return s.kw == nil && s.nargs == 0 }

// IsKeywordSelector reports a selector with at least one ':'.
func (s Selector) IsKeywordSelector() bool { return s.nargs > 0 }

// IsMulti reports whether the selector references out-of-line keywords.
func (s Selector) IsMulti() bool { return s.kw != nil }

// Identifier returns the identifier of slot i, which may be nil (as in "foo::").
func (s Selector) Identifier(i int) *ident.Info {
	if s.kw != nil {
		if i < 0 || i >= len(s.kw.slots) {
			panic("selector: slot out of range")
		}
		return s.kw.slots[i]
	}
	if i != 0 {
		panic("selector: slot out of range")
	}
	return s.id
}

// NameForSlot returns the text of slot i.
func (s Selector) NameForSlot(i int) string {
	return s.Identifier(i).Name()
}

// slotCount is the number of addressable slots: 1 for nullary selectors.
func (s Selector) slotCount() int {
	if s.nargs == 0 {
		return 1
	}
	return int(s.nargs)
}

// String renders "name" for zero-argument selectors and "a:b:" otherwise.
func (s Selector) String() string {
	if s.IsNull() {
		return "<null selector>"
	}
	if s.nargs == 0 {
		return s.id.Name()
	}
	var sb strings.Builder
	for i := 0; i < s.slotCount(); i++ {
		sb.WriteString(s.NameForSlot(i))
		sb.WriteByte(':')
	}
	return sb.String()
}

// Compare orders selectors slot by slot on text and then by argument count.
func Compare(a, b Selector) int {
	n := min(a.slotCount(), b.slotCount())
	for i := 0; i < n; i++ {
		if c := strings.Compare(a.NameForSlot(i), b.NameForSlot(i)); c != 0 {
			return c
		}
	}
	switch {
	case a.nargs < b.nargs:
		return -1
	case a.nargs > b.nargs:
		return 1
	}
	return 0
}
