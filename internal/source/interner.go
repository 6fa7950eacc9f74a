package source

import (
	"fmt"

	"fortio.org/safecast"
)

// StringID identifies an interned string.
type StringID uint32

// NoStringID is reserved for the empty string.
const NoStringID StringID = 0

// Interner maps strings to dense StringIDs. It is not safe for concurrent use;
// each compilation context owns its own interner.
type Interner struct {
	byID  []string            // индекс -> строка (byID[0] = "")
	index map[string]StringID // строка -> ID
}

// NewInterner returns an interner with NoStringID bound to "".
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
}

// Intern returns the ID for s, adding it on first use.
func (i *Interner) Intern(s string) StringID {
	if id, ok := i.index[s]; ok {
		return id
	}
	n, err := safecast.Conv[uint32](len(i.byID))
	if err != nil {
		panic(fmt.Errorf("source: interner overflow: %w", err))
	}
	// собственная копия, чтобы не держать чужой буфер
	cpy := string([]byte(s))
	id := StringID(n)
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// Find returns the id of s without interning it.
func (i *Interner) Find(s string) (StringID, bool) {
	id, ok := i.index[s]
	return id, ok
}

// Lookup returns the string for id.
func (i *Interner) Lookup(id StringID) (string, bool) {
	if int(id) >= len(i.byID) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup panics when id was not produced by this interner.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("source: invalid string ID")
	}
	return s
}

// Len counts interned strings including the reserved empty string.
func (i *Interner) Len() int {
	return len(i.byID)
}
