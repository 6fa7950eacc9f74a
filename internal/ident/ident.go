// Package ident interns identifier spellings for one compilation context.
//
// Every distinct spelling maps to exactly one *Info for the lifetime of the
// Table, so identifiers compare by pointer. Spellings are folded to Unicode
// NFC first: two source spellings that differ only in normalization name the
// same entity.
package ident

import (
	"golang.org/x/text/unicode/norm"

	"declname/internal/arena"
	"declname/internal/source"
)

// Info is the unique record of one identifier.
type Info struct {
	id     source.StringID
	name   string
	feInfo any
}

// Name returns the spelling; a nil Info spells "".
func (i *Info) Name() string {
	if i == nil {
		return ""
	}
	return i.name
}

// ID returns the string id backing the spelling.
func (i *Info) ID() source.StringID {
	if i == nil {
		return source.NoStringID
	}
	return i.id
}

// FETokenInfo returns the front-end cache attached to the identifier.
func (i *Info) FETokenInfo() any { return i.feInfo }

// SetFETokenInfo replaces the front-end cache; last write wins.
func (i *Info) SetFETokenInfo(v any) { i.feInfo = v }

func (i *Info) String() string { return i.Name() }

// Table is the identifier table of a compilation context.
type Table struct {
	strings *source.Interner
	infos   *arena.Arena[Info]
	byID    []*Info // StringID -> Info, nil for strings that are not identifiers
}

// NewTable creates a table on top of strings. A nil interner gets a private one.
func NewTable(strings *source.Interner) *Table {
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Table{
		strings: strings,
		infos:   arena.New[Info](256),
	}
}

// Get returns the unique Info for text. The empty spelling has no Info.
func (t *Table) Get(text string) *Info {
	if text == "" {
		return nil
	}
	if !norm.NFC.IsNormalString(text) {
		text = norm.NFC.String(text)
	}
	id := t.strings.Intern(text)
	for int(id) >= len(t.byID) {
		t.byID = append(t.byID, nil)
	}
	if info := t.byID[id]; info != nil {
		return info
	}
	info, _ := t.infos.Alloc()
	info.id = id
	info.name = t.strings.MustLookup(id)
	t.byID[id] = info
	return info
}

// Lookup returns the Info for text without creating one.
func (t *Table) Lookup(text string) (*Info, bool) {
	if text == "" {
		return nil, false
	}
	id, ok := t.strings.Find(norm.NFC.String(text))
	if !ok || int(id) >= len(t.byID) || t.byID[id] == nil {
		return nil, false
	}
	return t.byID[id], true
}

// Len reports the number of identifiers created so far.
func (t *Table) Len() int { return t.infos.Len() }
