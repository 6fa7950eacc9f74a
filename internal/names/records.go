package names

import (
	"declname/internal/arena"
	"declname/internal/ident"
	"declname/internal/source"
	"declname/internal/types"
)

// extra is implemented only by the out-of-line records of this package.
type extra interface {
	kind() Kind
	sequence() arena.Seq
}

type specialName struct {
	k      Kind
	typ    types.QualType
	feInfo any
	seq    arena.Seq
}

func (r *specialName) kind() Kind          { return r.k }
func (r *specialName) sequence() arena.Seq { return r.seq }

type operatorName struct {
	op     Operator
	feInfo any
}

func (r *operatorName) kind() Kind          { return CXXOperator }
func (r *operatorName) sequence() arena.Seq { return arena.Seq(r.op) }

type literalName struct {
	id     *ident.Info
	feInfo any
	seq    arena.Seq
}

func (r *literalName) kind() Kind          { return CXXLiteralOperator }
func (r *literalName) sequence() arena.Seq { return r.seq }

// templatedName is the record of a name parameter. canon is nil for the
// canonical record of a position and points at it for every alias.
type templatedName struct {
	param  *ParamDecl
	canon  *templatedName
	feInfo any
	seq    arena.Seq
}

func (r *templatedName) kind() Kind          { return TemplatedParam }
func (r *templatedName) sequence() arena.Seq { return r.seq }

func (r *templatedName) canonical() *templatedName {
	if r.canon == nil {
		return r
	}
	return r.canon
}

func (r *templatedName) isCanonical() bool { return r.canon == nil }

// substName replaces a parameter by one canonical name. canon is r itself
// when replaced is canonical.
type substName struct {
	replaced    *templatedName
	replacement Name
	canon       *substName
	seq         arena.Seq
}

func (r *substName) kind() Kind          { return SubstTemplatedParam }
func (r *substName) sequence() arena.Seq { return r.seq }

type substPackName struct {
	replaced *templatedName
	pack     Pack
	canon    *substPackName
	seq      arena.Seq
}

func (r *substPackName) kind() Kind          { return SubstTemplatedParamPack }
func (r *substPackName) sequence() arena.Seq { return r.seq }

// ParamDecl is the declaring entity of a name parameter. Ident is nil for
// the anonymous declaration the Table synthesises for a canonical position.
type ParamDecl struct {
	Ident *ident.Info
	Depth uint32
	Index uint32
	Pack  bool
	Span  source.Span
}

// Name returns the declared spelling, "" when anonymous.
func (d *ParamDecl) Name() string {
	if d == nil {
		return ""
	}
	return d.Ident.Name()
}
