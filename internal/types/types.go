package types

import (
	"fmt"
	"strings"

	"declname/internal/arena"
	"declname/internal/ident"
)

// TypeID is the allocation sequence of a type inside its interner. It orders
// types deterministically within one run.
type TypeID = arena.Seq

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = arena.NoSeq

// Kind enumerates the type forms the name layer needs to talk about.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBuiltin
	KindRecord
	KindInjectedClassName
	KindTemplateTypeParm
	KindPointer
	KindLValueReference
	KindPackExpansion
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindBuiltin:
		return "builtin"
	case KindRecord:
		return "record"
	case KindInjectedClassName:
		return "injected-class-name"
	case KindTemplateTypeParm:
		return "template-type-parm"
	case KindPointer:
		return "pointer"
	case KindLValueReference:
		return "lvalue-reference"
	case KindPackExpansion:
		return "pack-expansion"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// BuiltinKind names fundamental types.
type BuiltinKind uint8

const (
	BuiltinVoid BuiltinKind = iota + 1
	BuiltinBool
	BuiltinChar
	BuiltinInt
	BuiltinUnsigned
	BuiltinLong
	BuiltinFloat
	BuiltinDouble
)

var builtinSpellings = map[BuiltinKind]string{
	BuiltinVoid:     "void",
	BuiltinBool:     "bool",
	BuiltinChar:     "char",
	BuiltinInt:      "int",
	BuiltinUnsigned: "unsigned int",
	BuiltinLong:     "long",
	BuiltinFloat:    "float",
	BuiltinDouble:   "double",
}

// ParseBuiltin maps a spelling such as "int" to its BuiltinKind.
func ParseBuiltin(s string) (BuiltinKind, bool) {
	if s == "unsigned" {
		return BuiltinUnsigned, true
	}
	for k, spelling := range builtinSpellings {
		if spelling == s {
			return k, true
		}
	}
	return 0, false
}

// Dependence summarises how a type depends on template parameters.
type Dependence uint8

const (
	DepType Dependence = 1 << iota
	DepInstantiation
	DepUnexpandedPack
)

// Qualifiers is the cv-qualifier set of a QualType.
type Qualifiers uint8

const (
	QualConst Qualifiers = 1 << iota
	QualVolatile
	QualRestrict
)

func (q Qualifiers) String() string {
	parts := make([]string, 0, 3)
	if q&QualConst != 0 {
		parts = append(parts, "const")
	}
	if q&QualVolatile != 0 {
		parts = append(parts, "volatile")
	}
	if q&QualRestrict != 0 {
		parts = append(parts, "restrict")
	}
	return strings.Join(parts, " ")
}

// Type is an interned, immutable type node. Structurally equal types are the
// same *Type.
type Type struct {
	id      TypeID
	kind    Kind
	builtin BuiltinKind
	elem    QualType
	name    *ident.Info
	depth   uint32
	index   uint32
	pack    bool
	args    []QualType
	deps    Dependence
}

// ID returns the run-local identity of t.
func (t *Type) ID() TypeID { return t.id }

// Kind reports the type form.
func (t *Type) Kind() Kind { return t.kind }

// Name returns the declared name of records, injected class names and
// template type parameters.
func (t *Type) Name() *ident.Info { return t.name }

// Elem returns the pointee, referent or expansion pattern.
func (t *Type) Elem() QualType { return t.elem }

// Args returns the template arguments of an injected class name.
func (t *Type) Args() []QualType { return t.args }

// Dependence returns the dependence flags computed at intern time.
func (t *Type) Dependence() Dependence { return t.deps }

// QualType pairs a type with cv-qualifiers. It is comparable; the zero value
// is the null type.
type QualType struct {
	t     *Type
	quals Qualifiers
}

// IsNull reports the null type.
func (q QualType) IsNull() bool { return q.t == nil }

// Type returns the unqualified type node.
func (q QualType) Type() *Type { return q.t }

// Qualifiers returns the cv-qualifiers.
func (q QualType) Qualifiers() Qualifiers { return q.quals }

// HasQualifiers reports any cv-qualification.
func (q QualType) HasQualifiers() bool { return q.quals != 0 }

// Unqualified drops every qualifier.
func (q QualType) Unqualified() QualType { return QualType{t: q.t} }

// WithQualifiers adds qs to q.
func (q QualType) WithQualifiers(qs Qualifiers) QualType {
	if q.t == nil {
		return q
	}
	return QualType{t: q.t, quals: q.quals | qs}
}

// Kind returns the kind of the underlying type, KindInvalid for null.
func (q QualType) Kind() Kind {
	if q.t == nil {
		return KindInvalid
	}
	return q.t.kind
}

// IsDependent reports a type that names a template parameter.
func (q QualType) IsDependent() bool {
	return q.t != nil && q.t.deps&DepType != 0
}

// IsInstantiationDependent reports a type that can only be resolved after
// template instantiation.
func (q QualType) IsInstantiationDependent() bool {
	return q.t != nil && q.t.deps&DepInstantiation != 0
}

// ContainsUnexpandedParameterPack reports a pack that no expansion covers yet.
func (q QualType) ContainsUnexpandedParameterPack() bool {
	return q.t != nil && q.t.deps&DepUnexpandedPack != 0
}

// AsRecord returns the record name when q is a class type.
func (q QualType) AsRecord() (*ident.Info, bool) {
	if q.t == nil || q.t.kind != KindRecord {
		return nil, false
	}
	return q.t.name, true
}

// AsInjectedClassName returns the template name when q is an injected class name.
func (q QualType) AsInjectedClassName() (*ident.Info, bool) {
	if q.t == nil || q.t.kind != KindInjectedClassName {
		return nil, false
	}
	return q.t.name, true
}

// Compare is the established order on types: identity first, then qualifiers.
// The null type sorts first.
func Compare(a, b QualType) int {
	var ai, bi TypeID
	if a.t != nil {
		ai = a.t.id
	}
	if b.t != nil {
		bi = b.t.id
	}
	switch {
	case ai < bi:
		return -1
	case ai > bi:
		return 1
	case a.quals < b.quals:
		return -1
	case a.quals > b.quals:
		return 1
	}
	return 0
}
