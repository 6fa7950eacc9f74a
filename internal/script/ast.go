package script

import (
	"declname/internal/names"
	"declname/internal/source"
)

// Script is a parsed name script.
type Script struct {
	File  *source.File
	Stmts []Stmt
}

// Stmt is one line of a script. Statements that produce a name may carry a
// label; other statements refer to labelled names with $label.
type Stmt interface {
	Header() *StmtHeader
}

// StmtHeader is shared by all statements.
type StmtHeader struct {
	Label     string
	LabelSpan source.Span
	Keyword   source.Span
	Span      source.Span
}

func (h *StmtHeader) Header() *StmtHeader { return h }

// LabelRef is a $label operand.
type LabelRef struct {
	Name string
	Span source.Span
}

type (
	// IdentStmt is "ident X".
	IdentStmt struct {
		StmtHeader
		Text     string
		TextSpan source.Span
	}

	// SelectorStmt is "selector foo:bar:".
	SelectorStmt struct {
		StmtHeader
		Slots []string // "" for an anonymous slot
		Multi bool     // written with at least one ':'
		Raw   Token
	}

	// SpecialStmt is "ctor TYPE", "dtor TYPE" or "conv TYPE".
	SpecialStmt struct {
		StmtHeader
		Kind names.Kind
		Type *TypeExpr
	}

	// OperatorStmt is "operator SPELLING".
	OperatorStmt struct {
		StmtHeader
		Op       names.Operator
		Spelling Token
	}

	// LiteralStmt is "literal SUFFIX".
	LiteralStmt struct {
		StmtHeader
		Suffix Token
	}

	// UsingStmt is "using".
	UsingStmt struct {
		StmtHeader
	}

	// ParamStmt is "param D I [pack] [as X]".
	ParamStmt struct {
		StmtHeader
		Depth, Index uint32
		Pack         bool
		As           string
		AsSpan       source.Span
	}

	// SubstStmt is "subst $param $replacement".
	SubstStmt struct {
		StmtHeader
		Param       LabelRef
		Replacement LabelRef
	}

	// SubstPackStmt is "subst-pack $param $a $b ...".
	SubstPackStmt struct {
		StmtHeader
		Param LabelRef
		Elems []LabelRef
	}

	// ExpandStmt is "expand $pack".
	ExpandStmt struct {
		StmtHeader
		Pack LabelRef
	}

	// FuncStmt is "func f(.a, b, _, .c=, ...)".
	FuncStmt struct {
		StmtHeader
		Name     string
		NameSpan source.Span
		Params   []ParamSpec
	}

	// CallStmt is "call f(.a = 1, 2)".
	CallStmt struct {
		StmtHeader
		Name     string
		NameSpan source.Span
		Args     []ArgSpec
		ArgsSpan source.Span
	}
)

// ParamSpec is one parameter of a func statement.
type ParamSpec struct {
	Name         string // "" for "_" and "..."
	Designatable bool
	HasDefault   bool
	Variadic     bool
	Span         source.Span
}

// ArgSpec is one argument of a call statement.
type ArgSpec struct {
	Designator     string // "" for positional arguments
	DesignatorSpan source.Span
	Span           source.Span
}

// TypeBase says what a TypeExpr names before declarators.
type TypeBase uint8

const (
	BaseBuiltin TypeBase = iota
	BaseRecord
	BaseInjected
	BaseParam
)

// TypeExpr is a written type.
type TypeExpr struct {
	Base     TypeBase
	Name     string
	Args     []*TypeExpr // BaseInjected
	Pack     bool        // $T...
	Const    bool
	Volatile bool
	Decls    []Kind // Star or Amp, innermost first
	Span     source.Span
}
