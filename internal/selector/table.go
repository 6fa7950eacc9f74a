package selector

import (
	"encoding/binary"
	"fmt"

	"fortio.org/safecast"

	"declname/internal/arena"
	"declname/internal/ident"
)

// Table uniques multi-keyword selectors.
type Table struct {
	keywords *arena.Arena[Keywords]
	index    map[string]*Keywords
}

// NewTable creates an empty selector table.
func NewTable() *Table {
	return &Table{
		keywords: arena.New[Keywords](64),
		index:    make(map[string]*Keywords),
	}
}

// Nullary returns the zero-argument selector named by id.
func (t *Table) Nullary(id *ident.Info) Selector {
	if id == nil {
		panic("selector: nullary selector needs a name")
	}
	return Selector{id: id}
}

// Unary returns the one-argument selector "id:"; id may be nil.
func (t *Table) Unary(id *ident.Info) Selector {
	return Selector{nargs: 1, id: id}
}

// Get returns the keyword selector with one slot per identifier.
func (t *Table) Get(slots ...*ident.Info) Selector {
	switch len(slots) {
	case 0:
		panic("selector: keyword selector needs at least one slot")
	case 1:
		return t.Unary(slots[0])
	}
	n, err := safecast.Conv[uint32](len(slots))
	if err != nil {
		panic(fmt.Errorf("selector: too many slots: %w", err))
	}
	key := keyOf(slots)
	if kw, ok := t.index[key]; ok {
		return Selector{nargs: n, kw: kw}
	}
	kw, seq := t.keywords.Alloc()
	kw.slots = append([]*ident.Info(nil), slots...)
	kw.seq = seq
	t.index[key] = kw
	return Selector{nargs: n, kw: kw}
}

// Len reports how many multi-keyword records exist.
func (t *Table) Len() int { return t.keywords.Len() }

func keyOf(slots []*ident.Info) string {
	buf := make([]byte, 0, 4*len(slots))
	for _, s := range slots {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(s.ID()))
	}
	return string(buf)
}
