package names

import (
	"iter"
	"slices"
)

// Pack is an immutable ordered sequence of names used as the argument of a
// pack substitution.
type Pack struct {
	elems []Name
}

// NewPack copies elems into a pack.
func NewPack(elems ...Name) Pack {
	return Pack{elems: slices.Clone(elems)}
}

// Len returns the number of elements.
func (p Pack) Len() int { return len(p.elems) }

// At returns element i.
func (p Pack) At(i int) Name { return p.elems[i] }

// All iterates the elements in order.
func (p Pack) All() iter.Seq2[int, Name] {
	return func(yield func(int, Name) bool) {
		for i, n := range p.elems {
			if !yield(i, n) {
				return
			}
		}
	}
}

// Names returns a copy of the elements.
func (p Pack) Names() []Name { return slices.Clone(p.elems) }

// Equal reports element-wise identity.
func (p Pack) Equal(other Pack) bool {
	return slices.Equal(p.elems, other.elems)
}
