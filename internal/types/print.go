package types

import (
	"io"
	"strconv"
	"strings"

	"declname/internal/source"
)

// Policy controls how types (and the names built on them) are rendered.
type Policy struct {
	// CPlusPlus selects C++ spellings.
	CPlusPlus bool
	// Bool prints "bool" rather than "_Bool".
	Bool bool
	// SuppressTemplateArgsInConstructors prints the injected template name
	// of a constructor without its argument list.
	SuppressTemplateArgsInConstructors bool
}

// DefaultPolicy is the C++ policy used for diagnostics.
func DefaultPolicy() Policy {
	return Policy{CPlusPlus: true, Bool: true}
}

// AdjustForCPlusPlus returns p with C++ spellings switched on.
func (p Policy) AdjustForCPlusPlus() Policy {
	p.CPlusPlus = true
	p.Bool = true
	return p
}

// Print writes q under policy p.
func Print(w io.Writer, q QualType, p Policy) error {
	tw := &typeWriter{w: w}
	tw.qual(q, p)
	return tw.err
}

// Format renders q under policy p.
func Format(q QualType, p Policy) string {
	var sb strings.Builder
	_ = Print(&sb, q, p)
	return sb.String()
}

func (q QualType) String() string {
	return Format(q, DefaultPolicy())
}

// typeWriter streams a type spelling and remembers the last byte written,
// which decides the space before a declarator.
type typeWriter struct {
	w    io.Writer
	last byte
	err  error
}

func (tw *typeWriter) str(s string) {
	if tw.err != nil || s == "" {
		return
	}
	_, tw.err = io.WriteString(tw.w, s)
	tw.last = s[len(s)-1]
}

func (tw *typeWriter) quals(q Qualifiers) {
	sep := ""
	for _, qp := range [...]struct {
		bit  Qualifiers
		text string
	}{{QualConst, "const"}, {QualVolatile, "volatile"}, {QualRestrict, "restrict"}} {
		if q&qp.bit != 0 {
			tw.str(sep)
			tw.str(qp.text)
			sep = " "
		}
	}
}

func (tw *typeWriter) qual(q QualType, p Policy) {
	if q.t == nil {
		tw.str("<null type>")
		return
	}
	switch q.t.kind {
	case KindPointer, KindLValueReference:
		// квалификаторы указателя пишутся справа: int *const
		tw.typ(q.t, p)
		tw.quals(q.quals)
	default:
		if q.quals != 0 {
			tw.quals(q.quals)
			tw.str(" ")
		}
		tw.typ(q.t, p)
	}
}

func (tw *typeWriter) typ(t *Type, p Policy) {
	switch t.kind {
	case KindBuiltin:
		if t.builtin == BuiltinBool && !p.Bool {
			tw.str("_Bool")
			return
		}
		tw.str(builtinSpellings[t.builtin])
	case KindRecord:
		tw.str(t.name.Name())
	case KindInjectedClassName:
		tw.str(t.name.Name())
		tw.str("<")
		for i, a := range t.args {
			if i > 0 {
				tw.str(", ")
			}
			tw.qual(a, p)
		}
		tw.str(">")
	case KindTemplateTypeParm:
		if t.name != nil {
			tw.str(t.name.Name())
		} else {
			tw.str("type-parameter-")
			tw.str(strconv.FormatUint(uint64(t.depth), 10))
			tw.str("-")
			tw.str(strconv.FormatUint(uint64(t.index), 10))
		}
	case KindPointer, KindLValueReference:
		tw.qual(t.elem, p)
		if tw.last != '*' && tw.last != '&' {
			tw.str(" ")
		}
		if t.kind == KindPointer {
			tw.str("*")
		} else {
			tw.str("&")
		}
	case KindPackExpansion:
		tw.qual(t.elem, p)
		tw.str("...")
	default:
		tw.str("<invalid type>")
	}
}

// SourceInfo is a type as written in source, with the range it occupies.
type SourceInfo struct {
	Type QualType
	Span source.Span
}

// EndLoc is the position of the last byte of the written type.
func (si *SourceInfo) EndLoc() source.Pos {
	if si == nil {
		return source.NoPos
	}
	return si.Span.Last()
}
