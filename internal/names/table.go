package names

import (
	"context"
	"fmt"
	"hash/maphash"
	"strconv"

	"declname/internal/arena"
	"declname/internal/ident"
	"declname/internal/trace"
	"declname/internal/types"
)

// Table uniques the out-of-line name records of one compilation context.
// It is not safe for concurrent use.
type Table struct {
	arena  *Arena
	tracer trace.Tracer
	span   uint64

	ops [NumOperators]operatorName

	specials  map[specialKey]*specialName
	literals  map[*ident.Info]*literalName
	templated map[templatedKey]*templatedName
	substs    map[substKey]*substName
	packs     map[uint64][]*substPackName // bucketed by packHash
	seed      maphash.Seed

	released bool
}

type specialKey struct {
	kind Kind
	typ  types.QualType
}

type templatedKey struct {
	depth uint32
	index uint32
	pack  bool
	decl  *ParamDecl // nil for the canonical record
}

type substKey struct {
	replaced    *templatedName
	replacement Name
}

// Stats counts the records a Table has created.
type Stats struct {
	Special   int
	Literal   int
	Templated int
	Subst     int
	SubstPack int
}

// NewTable creates a table allocating from a. The tracer of ctx receives a
// record-scope event for every allocation. A nil arena gets a private one.
func NewTable(ctx context.Context, a *Arena) *Table {
	if a == nil {
		a = NewArena()
	}
	t := &Table{
		arena:     a,
		tracer:    trace.FromContext(ctx),
		span:      trace.CurrentSpan(ctx),
		specials:  make(map[specialKey]*specialName),
		literals:  make(map[*ident.Info]*literalName),
		templated: make(map[templatedKey]*templatedName),
		substs:    make(map[substKey]*substName),
		packs:     make(map[uint64][]*substPackName),
		seed:      maphash.MakeSeed(),
	}
	for op := range t.ops {
		t.ops[op].op = Operator(op)
	}
	return t
}

// Constructor returns the constructor name of class type typ.
func (t *Table) Constructor(typ types.QualType) Name {
	return t.Special(CXXConstructor, typ)
}

// Destructor returns the destructor name of class type typ.
func (t *Table) Destructor(typ types.QualType) Name {
	return t.Special(CXXDestructor, typ)
}

// Conversion returns the name of the conversion function to typ.
func (t *Table) Conversion(typ types.QualType) Name {
	return t.Special(CXXConversionFunction, typ)
}

// Special interns a constructor, destructor or conversion name.
func (t *Table) Special(kind Kind, typ types.QualType) Name {
	t.live()
	if !kind.IsSpecial() {
		panic(fmt.Sprintf("names: %s is not a special name kind", kind))
	}
	if typ.IsNull() {
		panic("names: special name needs a type")
	}
	if kind != CXXConversionFunction && typ.HasQualifiers() {
		panic(fmt.Sprintf("names: %s type must be unqualified, got %s", kind, typ))
	}
	key := specialKey{kind: kind, typ: typ}
	if r := t.specials[key]; r != nil {
		return fromRecord(r)
	}
	r, seq := t.arena.specials.Alloc()
	r.k, r.typ, r.seq = kind, typ, seq
	t.specials[key] = r
	t.allocated(kind, seq)
	return fromRecord(r)
}

// Operator returns the name of an overloaded operator.
func (t *Table) Operator(op Operator) Name {
	t.live()
	if op == OpNone || op >= NumOperators {
		panic(fmt.Sprintf("names: not an overloaded operator: %d", op))
	}
	return fromRecord(&t.ops[op])
}

// LiteralOperator returns the name of the literal operator with suffix id.
func (t *Table) LiteralOperator(id *ident.Info) Name {
	t.live()
	if id == nil {
		panic("names: literal operator needs a suffix")
	}
	if r := t.literals[id]; r != nil {
		return fromRecord(r)
	}
	r, seq := t.arena.literals.Alloc()
	r.id, r.seq = id, seq
	t.literals[id] = r
	t.allocated(CXXLiteralOperator, seq)
	return fromRecord(r)
}

// TemplatedParam returns the name parameter at (depth, index). A nil decl
// yields the canonical name of the position; otherwise the name is an alias
// tied to decl whose CanonicalForm is the canonical name.
func (t *Table) TemplatedParam(depth, index uint32, pack bool, decl *ParamDecl) Name {
	t.live()
	if decl != nil && (decl.Depth != depth || decl.Index != index || decl.Pack != pack) {
		panic(fmt.Sprintf("names: parameter declaration %d-%d does not match position %d-%d",
			decl.Depth, decl.Index, depth, index))
	}
	key := templatedKey{depth: depth, index: index, pack: pack, decl: decl}
	if r := t.templated[key]; r != nil {
		return fromRecord(r)
	}

	var canon *templatedName
	param := decl
	if decl != nil {
		canon = t.TemplatedParam(depth, index, pack, nil).x.(*templatedName)
		// the canonical record must not have claimed this key
		if t.templated[key] != nil {
			panic("names: templated parameter canonical name broken")
		}
	} else {
		param, _ = t.arena.decls.Alloc()
		param.Depth, param.Index, param.Pack = depth, index, pack
	}

	r, seq := t.arena.templated.Alloc()
	r.param, r.canon, r.seq = param, canon, seq
	t.templated[key] = r
	t.allocated(TemplatedParam, seq)
	return fromRecord(r)
}

// TemplatedParamFor returns the alias name of decl at its own position.
func (t *Table) TemplatedParamFor(decl *ParamDecl) Name {
	if decl == nil {
		panic("names: nil parameter declaration")
	}
	return t.TemplatedParam(decl.Depth, decl.Index, decl.Pack, decl)
}

// Subst returns the name of replaced substituted by replacement, which must
// be canonical.
func (t *Table) Subst(replaced, replacement Name) Name {
	t.live()
	param := mustParam(replaced)
	if !replacement.IsCanonical() {
		panic("names: replacement names must always be canonical")
	}
	key := substKey{replaced: param, replacement: replacement}
	if r := t.substs[key]; r != nil {
		return fromRecord(r)
	}

	var canon *substName
	if !param.isCanonical() {
		canon = t.Subst(fromRecord(param.canon), replacement).x.(*substName)
	}
	r, seq := t.arena.substs.Alloc()
	r.replaced, r.replacement, r.seq = param, replacement, seq
	r.canon = canon
	if canon == nil {
		r.canon = r
	}
	t.substs[key] = r
	t.allocated(SubstTemplatedParam, seq)
	return fromRecord(r)
}

// SubstPack returns the name of replaced substituted by every element of
// pack. Each element must be canonical.
func (t *Table) SubstPack(replaced Name, pack Pack) Name {
	t.live()
	param := mustParam(replaced)
	for i, elem := range pack.All() {
		if !elem.IsCanonical() {
			panic(fmt.Sprintf("names: pack element %d is not canonical", i))
		}
	}
	h := t.packHash(param, pack)
	for _, r := range t.packs[h] {
		if r.replaced == param && r.pack.Equal(pack) {
			return fromRecord(r)
		}
	}

	var canon *substPackName
	if !param.isCanonical() {
		canon = t.SubstPack(fromRecord(param.canon), pack).x.(*substPackName)
	}
	r, seq := t.arena.packs.Alloc()
	r.replaced, r.pack, r.seq = param, NewPack(pack.elems...), seq
	r.canon = canon
	if canon == nil {
		r.canon = r
	}
	t.packs[h] = append(t.packs[h], r)
	t.allocated(SubstTemplatedParamPack, seq)
	return fromRecord(r)
}

// ExpandPack splits a pack substitution into one single substitution per
// element, in pack order.
func (t *Table) ExpandPack(n Name) []Name {
	r, ok := n.x.(*substPackName)
	if !ok {
		panic(fmt.Sprintf("names: cannot expand %s name", n.kind))
	}
	out := make([]Name, 0, r.pack.Len())
	for _, elem := range r.pack.All() {
		out = append(out, t.Subst(fromRecord(r.replaced), elem))
	}
	return out
}

// Stats reports how many records of each kind were created.
func (t *Table) Stats() Stats {
	return Stats{
		Special:   t.arena.specials.Len(),
		Literal:   t.arena.literals.Len(),
		Templated: t.arena.templated.Len(),
		Subst:     t.arena.substs.Len(),
		SubstPack: t.arena.packs.Len(),
	}
}

// Release drops the lookup tables. Records stay owned by the arena, so
// existing names remain usable; interning through t afterwards panics.
func (t *Table) Release() {
	if t.released {
		return
	}
	st := t.Stats()
	trace.Point(t.tracer, trace.ScopeTable, "names:release", "", t.span,
		"special", strconv.Itoa(st.Special),
		"literal", strconv.Itoa(st.Literal),
		"templated", strconv.Itoa(st.Templated),
		"subst", strconv.Itoa(st.Subst),
		"subst_pack", strconv.Itoa(st.SubstPack),
	)
	t.specials = nil
	t.literals = nil
	t.templated = nil
	t.substs = nil
	t.packs = nil
	t.released = true
}

func (t *Table) live() {
	if t.released {
		panic("names: table used after Release")
	}
}

func (t *Table) allocated(kind Kind, seq arena.Seq) {
	trace.Point(t.tracer, trace.ScopeRecord, "names:alloc", kind.String(), t.span,
		"seq", strconv.FormatUint(uint64(seq), 10))
}

func (t *Table) packHash(param *templatedName, pack Pack) uint64 {
	var h maphash.Hash
	h.SetSeed(t.seed)
	maphash.WriteComparable(&h, param)
	maphash.WriteComparable(&h, pack.Len())
	for _, elem := range pack.All() {
		maphash.WriteComparable(&h, elem)
	}
	return h.Sum64()
}

func mustParam(n Name) *templatedName {
	r, ok := n.x.(*templatedName)
	if !ok {
		panic(fmt.Sprintf("names: %s name is not a name parameter", n.kind))
	}
	return r
}
