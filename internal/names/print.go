package names

import (
	"io"
	"strconv"
	"strings"

	"declname/internal/types"
)

const usingDirectiveText = "<using-directive>"

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) str(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *printer) typ(q types.QualType, pol types.Policy) {
	if p.err == nil {
		p.err = types.Print(p.w, q, pol)
	}
}

func (p *printer) positional(d *ParamDecl) {
	p.str("declname-parameter-")
	p.str(strconv.FormatUint(uint64(d.Depth), 10))
	p.str("-")
	p.str(strconv.FormatUint(uint64(d.Index), 10))
}

// Print writes the spelling of n under policy pol.
func Print(w io.Writer, n Name, pol types.Policy) error {
	p := &printer{w: w}
	p.name(n, pol)
	return p.err
}

// Format returns the spelling of n under policy pol.
func (n Name) Format(pol types.Policy) string {
	var sb strings.Builder
	_ = Print(&sb, n, pol)
	return sb.String()
}

func (n Name) String() string {
	return n.Format(types.DefaultPolicy())
}

func (p *printer) name(n Name, pol types.Policy) {
	switch n.kind {
	case Identifier:
		p.str(n.id.Name())
	case ObjCZeroArgSelector, ObjCOneArgSelector, ObjCMultiArgSelector:
		p.str(n.sel.String())
	case CXXConstructor:
		p.classType(n.AssociatedType(), pol)
	case CXXDestructor:
		p.str("~")
		p.classType(n.AssociatedType(), pol)
	case CXXOperator:
		spelling := n.OverloadedOperator().Spelling()
		p.str("operator")
		if spelling != "" && spelling[0] >= 'a' && spelling[0] <= 'z' {
			p.str(" ")
		}
		p.str(spelling)
	case CXXLiteralOperator:
		p.str(`operator""`)
		p.str(n.LiteralIdentifier().Name())
	case CXXConversionFunction:
		p.str("operator ")
		typ := n.AssociatedType()
		if id, ok := typ.AsRecord(); ok {
			p.str(id.Name())
			return
		}
		p.typ(typ, pol.AdjustForCPlusPlus())
	case CXXUsingDirective:
		p.str(usingDirectiveText)
	case TemplatedParam:
		p.positional(n.x.(*templatedName).param)
	case SubstTemplatedParamPack:
		d := n.x.(*substPackName).replaced.param
		if d.Ident != nil {
			p.str(d.Ident.Name())
			return
		}
		p.positional(d)
	case SubstTemplatedParam:
		p.name(n.x.(*substName).replacement, pol)
	}
}

// classType prints the class named by a constructor or destructor.
func (p *printer) classType(typ types.QualType, pol types.Policy) {
	pol = pol.AdjustForCPlusPlus()
	if id, ok := typ.AsRecord(); ok {
		p.str(id.Name())
		return
	}
	if pol.SuppressTemplateArgsInConstructors {
		if id, ok := typ.AsInjectedClassName(); ok {
			p.str(id.Name())
			return
		}
	}
	p.typ(typ, pol)
}
