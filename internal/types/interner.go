package types

import (
	"encoding/binary"

	"declname/internal/arena"
	"declname/internal/ident"
)

// Interner provides unique *Type nodes by hashing structural descriptors.
type Interner struct {
	types    *arena.Arena[Type]
	index    map[typeKey]*Type
	builtins map[BuiltinKind]*Type
}

// NewInterner constructs an interner seeded with the builtin types.
func NewInterner() *Interner {
	in := &Interner{
		types:    arena.New[Type](128),
		index:    make(map[typeKey]*Type, 64),
		builtins: make(map[BuiltinKind]*Type, len(builtinSpellings)),
	}
	for k := BuiltinVoid; k <= BuiltinDouble; k++ {
		in.builtins[k] = in.intern(Type{kind: KindBuiltin, builtin: k})
	}
	return in
}

// Builtin returns the unqualified builtin type.
func (in *Interner) Builtin(k BuiltinKind) QualType {
	t, ok := in.builtins[k]
	if !ok {
		panic("types: unknown builtin kind")
	}
	return QualType{t: t}
}

// Record returns the class type named name.
func (in *Interner) Record(name *ident.Info) QualType {
	if name == nil {
		panic("types: record without a name")
	}
	return QualType{t: in.intern(Type{kind: KindRecord, name: name})}
}

// Injected returns the injected class name of template name with args.
func (in *Interner) Injected(name *ident.Info, args ...QualType) QualType {
	if name == nil {
		panic("types: injected class name without a name")
	}
	deps := DepType | DepInstantiation
	for _, a := range args {
		if a.ContainsUnexpandedParameterPack() {
			deps |= DepUnexpandedPack
		}
	}
	return QualType{t: in.intern(Type{
		kind: KindInjectedClassName,
		name: name,
		args: append([]QualType(nil), args...),
		deps: deps,
	})}
}

// TemplateParm returns the template type parameter at (depth, index).
func (in *Interner) TemplateParm(depth, index uint32, pack bool, name *ident.Info) QualType {
	deps := DepType | DepInstantiation
	if pack {
		deps |= DepUnexpandedPack
	}
	return QualType{t: in.intern(Type{
		kind:  KindTemplateTypeParm,
		depth: depth,
		index: index,
		pack:  pack,
		name:  name,
		deps:  deps,
	})}
}

// Pointer returns elem *.
func (in *Interner) Pointer(elem QualType) QualType {
	return QualType{t: in.intern(Type{kind: KindPointer, elem: elem, deps: elem.deps()})}
}

// LValueReference returns elem &.
func (in *Interner) LValueReference(elem QualType) QualType {
	return QualType{t: in.intern(Type{kind: KindLValueReference, elem: elem, deps: elem.deps()})}
}

// PackExpansion returns pattern... ; the expansion covers the pattern's packs.
func (in *Interner) PackExpansion(pattern QualType) QualType {
	if !pattern.ContainsUnexpandedParameterPack() {
		panic("types: pack expansion pattern contains no unexpanded pack")
	}
	deps := pattern.deps() &^ DepUnexpandedPack
	return QualType{t: in.intern(Type{kind: KindPackExpansion, elem: pattern, deps: deps})}
}

// Len reports the number of interned types.
func (in *Interner) Len() int { return in.types.Len() }

func (q QualType) deps() Dependence {
	if q.t == nil {
		return 0
	}
	return q.t.deps
}

// intern returns the existing node for t's structure or stores a new one.
func (in *Interner) intern(t Type) *Type {
	key := keyOf(&t)
	if existing, ok := in.index[key]; ok {
		return existing
	}
	slot, id := in.types.Alloc()
	*slot = t
	slot.id = id
	in.index[key] = slot
	return slot
}

type typeKey struct {
	Kind    Kind
	Builtin BuiltinKind
	Elem    *Type
	Quals   Qualifiers
	Name    *ident.Info
	Depth   uint32
	Index   uint32
	Pack    bool
	Args    string
}

func keyOf(t *Type) typeKey {
	key := typeKey{
		Kind:    t.kind,
		Builtin: t.builtin,
		Elem:    t.elem.t,
		Quals:   t.elem.quals,
		Name:    t.name,
		Depth:   t.depth,
		Index:   t.index,
		Pack:    t.pack,
	}
	if len(t.args) > 0 {
		buf := make([]byte, 0, 5*len(t.args))
		for _, a := range t.args {
			var id TypeID
			if a.t != nil {
				id = a.t.id
			}
			buf = binary.LittleEndian.AppendUint32(buf, uint32(id))
			buf = append(buf, byte(a.quals))
		}
		key.Args = string(buf)
	}
	return key
}
