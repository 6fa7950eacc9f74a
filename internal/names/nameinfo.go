package names

import (
	"io"
	"strings"

	"declname/internal/source"
	"declname/internal/types"
)

// NameInfo is one occurrence of a name in source. Which location fields are
// meaningful depends on the kind of Name; the rest stay at their zero value.
type NameInfo struct {
	Name Name
	Loc  source.Pos

	// OperatorRange covers the operator spelling of a CXXOperator name.
	OperatorRange source.Span
	// LiteralLoc is the suffix token of a CXXLiteralOperator name.
	LiteralLoc source.Pos
	// TypeInfo is the type as written after a constructor, destructor or
	// conversion name, when the parser kept it.
	TypeInfo *types.SourceInfo
}

// NewNameInfo returns n located at loc with no kind-specific locations yet.
func NewNameInfo(n Name, loc source.Pos) NameInfo {
	return NameInfo{Name: n, Loc: loc}
}

// SetOperatorRange records the operator spelling of a CXXOperator name.
func (ni *NameInfo) SetOperatorRange(sp source.Span) {
	if ni.Name.kind == CXXOperator {
		ni.OperatorRange = sp
	}
}

// SetLiteralLoc records the suffix location of a literal operator name.
func (ni *NameInfo) SetLiteralLoc(pos source.Pos) {
	if ni.Name.kind == CXXLiteralOperator {
		ni.LiteralLoc = pos
	}
}

// SetTypeInfo records the written type of a special name.
func (ni *NameInfo) SetTypeInfo(si *types.SourceInfo) {
	if ni.Name.kind.IsSpecial() {
		ni.TypeInfo = si
	}
}

// EndLoc is the last location the occurrence spans: the end of the operator
// spelling, the literal suffix, the written type, or Loc.
func (ni NameInfo) EndLoc() source.Pos {
	switch ni.Name.kind {
	case CXXOperator:
		return ni.OperatorRange.Last()
	case CXXLiteralOperator:
		return ni.LiteralLoc
	case CXXConstructor, CXXDestructor, CXXConversionFunction:
		if ni.TypeInfo != nil {
			return ni.TypeInfo.EndLoc()
		}
	}
	return ni.Loc
}

// namedType prefers the written type over the type stored in the name.
func (ni NameInfo) namedType() types.QualType {
	if ni.TypeInfo != nil && !ni.TypeInfo.Type.IsNull() {
		return ni.TypeInfo.Type
	}
	return ni.Name.AssociatedType()
}

func (ni NameInfo) ContainsUnexpandedParameterPack() bool {
	switch ni.Name.kind {
	case CXXConstructor, CXXDestructor, CXXConversionFunction:
		return ni.namedType().ContainsUnexpandedParameterPack()
	case TemplatedParam:
		return ni.Name.x.(*templatedName).param.Pack
	case SubstTemplatedParamPack:
		return true
	}
	return false
}

func (ni NameInfo) IsInstantiationDependent() bool {
	switch ni.Name.kind {
	case CXXConstructor, CXXDestructor, CXXConversionFunction:
		return ni.namedType().IsInstantiationDependent()
	case TemplatedParam, SubstTemplatedParamPack:
		return true
	}
	return false
}

// PrintName writes the occurrence. Special names with a written type print
// the type as written, under C++ rules.
func (ni NameInfo) PrintName(w io.Writer, pol types.Policy) error {
	if ni.TypeInfo == nil || !ni.Name.kind.IsSpecial() {
		return Print(w, ni.Name, pol)
	}
	p := &printer{w: w}
	switch ni.Name.kind {
	case CXXDestructor:
		p.str("~")
	case CXXConversionFunction:
		p.str("operator ")
	}
	p.typ(ni.TypeInfo.Type, types.Policy{CPlusPlus: true, Bool: true})
	return p.err
}

func (ni NameInfo) String() string {
	var sb strings.Builder
	_ = ni.PrintName(&sb, types.DefaultPolicy())
	return sb.String()
}
