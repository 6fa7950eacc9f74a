package script

import (
	"strconv"
	"strings"

	"declname/internal/diag"
	"declname/internal/names"
	"declname/internal/source"
	"declname/internal/types"
)

var keywords = map[string]bool{
	"ident":      true,
	"selector":   true,
	"ctor":       true,
	"dtor":       true,
	"conv":       true,
	"operator":   true,
	"literal":    true,
	"using":      true,
	"param":      true,
	"subst":      true,
	"subst-pack": true,
	"expand":     true,
	"func":       true,
	"call":       true,
}

// IsKeyword reports whether word starts a statement.
func IsKeyword(word string) bool { return keywords[word] }

// Parser turns tokens into statements. Syntax errors are reported and the
// rest of the offending line is skipped.
type Parser struct {
	lx   *Lexer
	r    diag.Reporter
	file *source.File
	tok  Token
	prev source.Span
}

// Parse parses the whole file.
func Parse(file *source.File, r diag.Reporter) *Script {
	p := &Parser{lx: NewLexer(file, r), r: r, file: file}
	p.advance()
	s := &Script{File: file}
	for p.tok.Kind != EOF {
		if p.tok.Kind == Newline {
			p.advance()
			continue
		}
		st, ok := p.parseStmt()
		if !ok {
			p.skipLine()
			continue
		}
		if p.tok.Kind != Newline && p.tok.Kind != EOF {
			p.errorf(diag.ScrUnexpectedToken, p.tok.Span, "unexpected %s after statement", p.tok.Kind)
			p.skipLine()
			continue
		}
		s.Stmts = append(s.Stmts, st)
	}
	return s
}

func (p *Parser) advance() {
	p.prev = p.tok.Span
	p.tok = p.lx.Next()
}

// raw consumes the current keyword token and reads the following word
// without tokenizing it.
func (p *Parser) raw() Token {
	p.prev = p.tok.Span
	w := p.lx.Raw()
	if w.Kind != Raw {
		p.tok = w
		return w
	}
	p.prev = w.Span
	p.tok = p.lx.Next()
	return w
}

func (p *Parser) skipLine() {
	for p.tok.Kind != Newline && p.tok.Kind != EOF {
		p.advance()
	}
}

func (p *Parser) errorf(code diag.Code, sp source.Span, format string, args ...any) {
	diag.Errorf(p.r, code, sp, format, args...).Emit()
}

func (p *Parser) expect(k Kind, what string) (Token, bool) {
	if p.tok.Kind != k {
		p.errorf(diag.ScrUnexpectedToken, p.tok.Span, "expected %s, found %s", what, p.tok.Kind)
		return p.tok, false
	}
	t := p.tok
	p.advance()
	return t, true
}

func (p *Parser) parseStmt() (Stmt, bool) {
	var h StmtHeader
	start := p.tok.Span
	if p.tok.Kind != Ident {
		p.errorf(diag.ScrUnexpectedToken, p.tok.Span, "expected statement, found %s", p.tok.Kind)
		return nil, false
	}
	if !IsKeyword(p.tok.Text) {
		h.Label, h.LabelSpan = p.tok.Text, p.tok.Span
		p.advance()
		if p.tok.Kind != Assign {
			p.errorf(diag.ScrUnknownStatement, h.LabelSpan, "unknown statement %s", quote(h.Label))
			return nil, false
		}
		p.advance()
		if p.tok.Kind != Ident || !IsKeyword(p.tok.Text) {
			p.errorf(diag.ScrUnknownStatement, p.tok.Span, "expected statement after label %s", quote(h.Label))
			return nil, false
		}
	}
	h.Keyword = p.tok.Span

	st, ok := p.parseBody(&h)
	if !ok {
		return nil, false
	}
	st.Header().Span = start.Cover(p.prev)
	return st, true
}

func (p *Parser) parseBody(h *StmtHeader) (Stmt, bool) {
	kw := p.tok.Text
	switch kw {
	case "selector":
		return p.parseSelector(h)
	case "operator":
		return p.parseOperator(h)
	}

	p.advance()
	switch kw {
	case "ident":
		t, ok := p.expect(Ident, "identifier")
		if !ok {
			return nil, false
		}
		return &IdentStmt{StmtHeader: *h, Text: t.Text, TextSpan: t.Span}, true
	case "ctor", "dtor", "conv":
		te, ok := p.parseType()
		if !ok {
			return nil, false
		}
		kind := map[string]names.Kind{
			"ctor": names.CXXConstructor,
			"dtor": names.CXXDestructor,
			"conv": names.CXXConversionFunction,
		}[kw]
		return &SpecialStmt{StmtHeader: *h, Kind: kind, Type: te}, true
	case "literal":
		t, ok := p.expect(Ident, "literal suffix")
		if !ok {
			return nil, false
		}
		return &LiteralStmt{StmtHeader: *h, Suffix: t}, true
	case "using":
		return &UsingStmt{StmtHeader: *h}, true
	case "param":
		return p.parseParam(h)
	case "subst":
		param, ok := p.parseRef()
		if !ok {
			return nil, false
		}
		repl, ok := p.parseRef()
		if !ok {
			return nil, false
		}
		return &SubstStmt{StmtHeader: *h, Param: param, Replacement: repl}, true
	case "subst-pack":
		param, ok := p.parseRef()
		if !ok {
			return nil, false
		}
		st := &SubstPackStmt{StmtHeader: *h, Param: param}
		for p.tok.Kind == Ref {
			st.Elems = append(st.Elems, LabelRef{Name: p.tok.Text, Span: p.tok.Span})
			p.advance()
		}
		return st, true
	case "expand":
		ref, ok := p.parseRef()
		if !ok {
			return nil, false
		}
		return &ExpandStmt{StmtHeader: *h, Pack: ref}, true
	case "func":
		return p.parseFunc(h)
	case "call":
		return p.parseCall(h)
	}
	panic("script: unhandled keyword " + kw)
}

func (p *Parser) parseRef() (LabelRef, bool) {
	t, ok := p.expect(Ref, "$label")
	if !ok {
		return LabelRef{}, false
	}
	return LabelRef{Name: t.Text, Span: t.Span}, true
}

func (p *Parser) parseSelector(h *StmtHeader) (Stmt, bool) {
	w := p.raw()
	if w.Kind != Raw {
		p.errorf(diag.ScrBadSelector, w.Span, "expected selector after 'selector'")
		return nil, false
	}
	st := &SelectorStmt{StmtHeader: *h, Raw: w}
	if !strings.Contains(w.Text, ":") {
		if !isIdentWord(w.Text) {
			p.errorf(diag.ScrBadSelector, w.Span, "malformed selector %s", quote(w.Text))
			return nil, false
		}
		st.Slots = []string{w.Text}
		return st, true
	}
	pieces := strings.Split(w.Text, ":")
	if pieces[len(pieces)-1] != "" {
		p.errorf(diag.ScrBadSelector, w.Span, "keyword selector %s must end with ':'", quote(w.Text))
		return nil, false
	}
	pieces = pieces[:len(pieces)-1]
	for _, piece := range pieces {
		if piece != "" && !isIdentWord(piece) {
			p.errorf(diag.ScrBadSelector, w.Span, "malformed selector slot %s", quote(piece))
			return nil, false
		}
	}
	st.Slots, st.Multi = pieces, true
	return st, true
}

func (p *Parser) parseOperator(h *StmtHeader) (Stmt, bool) {
	w := p.raw()
	if w.Kind != Raw {
		p.errorf(diag.ScrUnknownOperator, w.Span, "expected operator spelling after 'operator'")
		return nil, false
	}
	op, ok := names.ParseOperator(w.Text)
	if !ok {
		p.errorf(diag.ScrUnknownOperator, w.Span, "unknown operator %s", quote(w.Text))
		return nil, false
	}
	return &OperatorStmt{StmtHeader: *h, Op: op, Spelling: w}, true
}

func (p *Parser) parseParam(h *StmtHeader) (Stmt, bool) {
	st := &ParamStmt{StmtHeader: *h}
	var ok bool
	if st.Depth, ok = p.parseNumber(); !ok {
		return nil, false
	}
	if st.Index, ok = p.parseNumber(); !ok {
		return nil, false
	}
	if p.tok.Is("pack") {
		st.Pack = true
		p.advance()
	}
	if p.tok.Is("as") {
		p.advance()
		t, ok := p.expect(Ident, "parameter name")
		if !ok {
			return nil, false
		}
		st.As, st.AsSpan = t.Text, t.Span
	}
	return st, true
}

func (p *Parser) parseNumber() (uint32, bool) {
	if p.tok.Kind != Number {
		p.errorf(diag.ScrExpectNumber, p.tok.Span, "expected number, found %s", p.tok.Kind)
		return 0, false
	}
	v, err := strconv.ParseUint(p.tok.Text, 10, 32)
	if err != nil {
		p.errorf(diag.ScrExpectNumber, p.tok.Span, "number %s out of range", p.tok.Text)
		return 0, false
	}
	p.advance()
	return uint32(v), true
}

// parseType reads [const|volatile]* base (*|&)*.
func (p *Parser) parseType() (*TypeExpr, bool) {
	te := &TypeExpr{}
	start := p.tok.Span
	for p.tok.Is("const") || p.tok.Is("volatile") {
		if p.tok.Text == "const" {
			te.Const = true
		} else {
			te.Volatile = true
		}
		p.advance()
	}
	switch p.tok.Kind {
	case Ref:
		te.Base, te.Name = BaseParam, p.tok.Text
		p.advance()
		if p.tok.Kind == Ellipsis {
			te.Pack = true
			p.advance()
		}
	case Ident:
		name := p.tok.Text
		p.advance()
		if name == "unsigned" && p.tok.Is("int") {
			p.advance()
		}
		if _, ok := types.ParseBuiltin(name); ok {
			te.Base, te.Name = BaseBuiltin, name
			break
		}
		te.Base, te.Name = BaseRecord, name
		if p.tok.Kind != Lt {
			break
		}
		te.Base = BaseInjected
		p.advance()
		for p.tok.Kind != Gt {
			if p.tok.Kind == Newline || p.tok.Kind == EOF {
				p.errorf(diag.ScrUnterminatedArgs, start.Cover(p.prev), "unterminated template argument list")
				return nil, false
			}
			if len(te.Args) > 0 {
				if _, ok := p.expect(Comma, "',' or '>'"); !ok {
					return nil, false
				}
			}
			arg, ok := p.parseType()
			if !ok {
				return nil, false
			}
			te.Args = append(te.Args, arg)
		}
		p.advance()
	default:
		p.errorf(diag.ScrExpectType, p.tok.Span, "expected type, found %s", p.tok.Kind)
		return nil, false
	}
	for p.tok.Kind == Star || p.tok.Kind == Amp {
		te.Decls = append(te.Decls, p.tok.Kind)
		p.advance()
	}
	te.Span = start.Cover(p.prev)
	return te, true
}

func (p *Parser) parseFunc(h *StmtHeader) (Stmt, bool) {
	name, ok := p.expect(Ident, "function name")
	if !ok {
		return nil, false
	}
	st := &FuncStmt{StmtHeader: *h, Name: name.Text, NameSpan: name.Span}
	open, ok := p.expect(LParen, "'('")
	if !ok {
		return nil, false
	}
	ok = p.list(open, func() bool {
		ps := ParamSpec{Span: p.tok.Span}
		switch p.tok.Kind {
		case Ellipsis:
			ps.Variadic = true
			p.advance()
		case Dot:
			p.advance()
			t, ok := p.expect(Ident, "parameter name")
			if !ok {
				return false
			}
			ps.Name, ps.Designatable = t.Text, true
		case Ident:
			if p.tok.Text != "_" {
				ps.Name = p.tok.Text
			}
			p.advance()
		default:
			p.errorf(diag.ScrUnexpectedToken, p.tok.Span, "expected parameter, found %s", p.tok.Kind)
			return false
		}
		if !ps.Variadic && p.tok.Kind == Assign {
			ps.HasDefault = true
			p.advance()
			p.value()
		}
		ps.Span = ps.Span.Cover(p.prev)
		st.Params = append(st.Params, ps)
		return true
	})
	return st, ok
}

func (p *Parser) parseCall(h *StmtHeader) (Stmt, bool) {
	name, ok := p.expect(Ident, "function name")
	if !ok {
		return nil, false
	}
	st := &CallStmt{StmtHeader: *h, Name: name.Text, NameSpan: name.Span}
	open, ok := p.expect(LParen, "'('")
	if !ok {
		return nil, false
	}
	ok = p.list(open, func() bool {
		as := ArgSpec{Span: p.tok.Span}
		if p.tok.Kind == Dot {
			p.advance()
			t, ok := p.expect(Ident, "designator")
			if !ok {
				return false
			}
			as.Designator = t.Text
			as.DesignatorSpan = as.Span.Cover(t.Span)
			if p.tok.Kind == Assign {
				p.advance()
				if !p.value() {
					p.errorf(diag.ScrUnexpectedToken, p.tok.Span, "expected value after '='")
					return false
				}
			}
		} else if !p.value() {
			p.errorf(diag.ScrUnexpectedToken, p.tok.Span, "expected argument, found %s", p.tok.Kind)
			return false
		}
		as.Span = as.Span.Cover(p.prev)
		st.Args = append(st.Args, as)
		return true
	})
	st.ArgsSpan = open.Span.Cover(p.prev)
	return st, ok
}

// list parses comma-separated elements up to the closing ')'.
func (p *Parser) list(open Token, elem func() bool) bool {
	for p.tok.Kind != RParen {
		if p.tok.Kind == Newline || p.tok.Kind == EOF {
			p.errorf(diag.ScrUnterminatedArgs, open.Span.Cover(p.prev), "unterminated argument list")
			return false
		}
		if !elem() {
			return false
		}
		if p.tok.Kind == Comma {
			p.advance()
			continue
		}
		if p.tok.Kind != RParen && p.tok.Kind != Newline && p.tok.Kind != EOF {
			p.errorf(diag.ScrUnexpectedToken, p.tok.Span, "expected ',' or ')', found %s", p.tok.Kind)
			return false
		}
	}
	p.advance()
	return true
}

// value consumes a single-token argument value if present.
func (p *Parser) value() bool {
	switch p.tok.Kind {
	case Ident, Number, Ref:
		p.advance()
		return true
	}
	return false
}

func isIdentWord(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentStart(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}
