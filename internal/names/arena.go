package names

import "declname/internal/arena"

// Arena owns the storage of every name record of one compilation context.
// It outlives the Table that indexes it: releasing the Table keeps records
// (and therefore existing handles) valid.
type Arena struct {
	specials  *arena.Arena[specialName]
	literals  *arena.Arena[literalName]
	templated *arena.Arena[templatedName]
	decls     *arena.Arena[ParamDecl]
	substs    *arena.Arena[substName]
	packs     *arena.Arena[substPackName]
}

// NewArena creates empty record storage.
func NewArena() *Arena {
	return &Arena{
		specials:  arena.New[specialName](0),
		literals:  arena.New[literalName](0),
		templated: arena.New[templatedName](0),
		decls:     arena.New[ParamDecl](0),
		substs:    arena.New[substName](0),
		packs:     arena.New[substPackName](0),
	}
}

// Len reports the number of records allocated so far, synthesised
// parameter declarations included.
func (a *Arena) Len() int {
	return a.specials.Len() + a.literals.Len() + a.templated.Len() +
		a.decls.Len() + a.substs.Len() + a.packs.Len()
}
