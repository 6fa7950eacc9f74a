package names

import (
	"fmt"

	"declname/internal/arena"
	"declname/internal/ident"
	"declname/internal/selector"
	"declname/internal/types"
)

// Name is the handle of a declaration name. It is a small comparable value:
// two names built by the same Table denote the same entity iff they are ==.
//
// The zero Name is the empty identifier.
type Name struct {
	kind Kind
	id   *ident.Info       // Identifier
	sel  selector.Selector // selector kinds
	x    extra             // every other kind
}

// usingDirectiveName is the record shared by every using-directive name.
type usingDirectiveName struct{}

func (*usingDirectiveName) kind() Kind          { return CXXUsingDirective }
func (*usingDirectiveName) sequence() arena.Seq { return arena.NoSeq }

var usingDirective = &usingDirectiveName{}

// FromIdentifier wraps an identifier. A nil identifier gives the empty name.
func FromIdentifier(id *ident.Info) Name {
	return Name{kind: Identifier, id: id}
}

// FromSelector wraps an Objective-C selector.
func FromSelector(s selector.Selector) Name {
	switch {
	case s.IsMulti():
		return Name{kind: ObjCMultiArgSelector, sel: s}
	case s.NumArgs() == 1:
		return Name{kind: ObjCOneArgSelector, sel: s}
	default:
		return Name{kind: ObjCZeroArgSelector, sel: s}
	}
}

// UsingDirective returns the name of every using-directive.
func UsingDirective() Name {
	return Name{kind: CXXUsingDirective, x: usingDirective}
}

func fromRecord(r extra) Name {
	return Name{kind: r.kind(), x: r}
}

// Kind returns the discriminant.
func (n Name) Kind() Kind { return n.kind }

// IsEmpty reports the empty identifier name.
func (n Name) IsEmpty() bool { return n.kind == Identifier && n.id == nil }

// AsIdentifier returns the identifier of an Identifier name, nil otherwise.
func (n Name) AsIdentifier() *ident.Info {
	if n.kind != Identifier {
		return nil
	}
	return n.id
}

// Selector returns the selector of the three selector kinds.
func (n Name) Selector() (selector.Selector, bool) {
	if !n.kind.IsSelector() {
		return selector.Selector{}, false
	}
	return n.sel, true
}

// AssociatedType returns the type of a constructor, destructor or conversion
// name, and the null type for any other kind.
func (n Name) AssociatedType() types.QualType {
	if r, ok := n.x.(*specialName); ok {
		return r.typ
	}
	return types.QualType{}
}

// OverloadedOperator returns the operator of a CXXOperator name, OpNone otherwise.
func (n Name) OverloadedOperator() Operator {
	if r, ok := n.x.(*operatorName); ok {
		return r.op
	}
	return OpNone
}

// LiteralIdentifier returns the suffix of a literal operator name.
func (n Name) LiteralIdentifier() *ident.Info {
	if r, ok := n.x.(*literalName); ok {
		return r.id
	}
	return nil
}

// TemplateParam returns the declaration of a TemplatedParam name. Canonical
// parameters answer with the anonymous declaration of their position.
func (n Name) TemplateParam() *ParamDecl {
	if r, ok := n.x.(*templatedName); ok {
		return r.param
	}
	return nil
}

// ReplacedParam returns the parameter a substitution replaces.
func (n Name) ReplacedParam() Name {
	switch r := n.x.(type) {
	case *substName:
		return fromRecord(r.replaced)
	case *substPackName:
		return fromRecord(r.replaced)
	}
	return Name{}
}

// Replacement returns the replacement of a SubstTemplatedParam name.
func (n Name) Replacement() Name {
	if r, ok := n.x.(*substName); ok {
		return r.replacement
	}
	return Name{}
}

// ArgumentPack returns the pack of a SubstTemplatedParamPack name.
func (n Name) ArgumentPack() Pack {
	if r, ok := n.x.(*substPackName); ok {
		return r.pack
	}
	return Pack{}
}

// MustIdentifier is AsIdentifier for callers that already checked the kind.
func (n Name) MustIdentifier() *ident.Info {
	n.expect(Identifier)
	return n.id
}

// MustType is AssociatedType for special names only.
func (n Name) MustType() types.QualType {
	if !n.kind.IsSpecial() {
		panic(fmt.Sprintf("names: %s name has no associated type", n.kind))
	}
	return n.x.(*specialName).typ
}

// MustOperator is OverloadedOperator for operator names only.
func (n Name) MustOperator() Operator {
	n.expect(CXXOperator)
	return n.x.(*operatorName).op
}

// MustLiteralIdentifier is LiteralIdentifier for literal operator names only.
func (n Name) MustLiteralIdentifier() *ident.Info {
	n.expect(CXXLiteralOperator)
	return n.x.(*literalName).id
}

// MustTemplateParam returns the declaration of a templated parameter name.
func (n Name) MustTemplateParam() *ParamDecl {
	n.expect(TemplatedParam)
	return n.x.(*templatedName).param
}

func (n Name) expect(k Kind) {
	if n.kind != k {
		panic(fmt.Sprintf("names: %s accessor used on %s name", k, n.kind))
	}
}

// IsCanonical is false only for parameter aliases and for substitutions
// whose replaced parameter is an alias.
func (n Name) IsCanonical() bool {
	switch r := n.x.(type) {
	case *templatedName:
		return r.isCanonical()
	case *substName:
		return r.canon == r
	case *substPackName:
		return r.canon == r
	}
	return true
}

// CanonicalForm returns the canonical representative of n. It is n itself
// for every canonical name.
func (n Name) CanonicalForm() Name {
	switch r := n.x.(type) {
	case *templatedName:
		return fromRecord(r.canonical())
	case *substName:
		return fromRecord(r.canon)
	case *substPackName:
		return fromRecord(r.canon)
	}
	return n
}

// ContainsUnexpandedParameterPack reports a pack substitution or a pack
// parameter.
func (n Name) ContainsUnexpandedParameterPack() bool {
	switch r := n.x.(type) {
	case *templatedName:
		return r.param.Pack
	case *substPackName:
		return true
	}
	return false
}

// IsDependentName reports a parameter name or a special name with a
// dependent type.
func (n Name) IsDependentName() bool {
	if n.kind == TemplatedParam {
		return true
	}
	if t := n.AssociatedType(); !t.IsNull() {
		return t.IsDependent()
	}
	return false
}

// IsTemplatedName reports the TemplatedParam kind.
func (n Name) IsTemplatedName() bool { return n.kind == TemplatedParam }

// FETokenInfo returns the front-end cache of the name.
func (n Name) FETokenInfo() any {
	switch r := n.x.(type) {
	case *specialName:
		return r.feInfo
	case *operatorName:
		return r.feInfo
	case *literalName:
		return r.feInfo
	case *templatedName:
		return r.feInfo
	}
	if n.kind == Identifier && n.id != nil {
		return n.id.FETokenInfo()
	}
	panic(fmt.Sprintf("names: %s name has no front-end info", n.kind))
}

// SetFETokenInfo replaces the front-end cache of the name. The slot is
// shared by every copy of the handle.
func (n Name) SetFETokenInfo(v any) {
	switch r := n.x.(type) {
	case *specialName:
		r.feInfo = v
		return
	case *operatorName:
		r.feInfo = v
		return
	case *literalName:
		r.feInfo = v
		return
	case *templatedName:
		r.feInfo = v
		return
	}
	if n.kind == Identifier && n.id != nil {
		n.id.SetFETokenInfo(v)
		return
	}
	panic(fmt.Sprintf("names: %s name has no front-end info", n.kind))
}
