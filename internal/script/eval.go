package script

import (
	"context"
	"fmt"
	"strconv"

	"declname/internal/astctx"
	"declname/internal/designate"
	"declname/internal/diag"
	"declname/internal/ident"
	"declname/internal/names"
	"declname/internal/selector"
	"declname/internal/source"
	"declname/internal/trace"
	"declname/internal/types"
)

// Entry is a name produced by a statement.
type Entry struct {
	Label string
	Stmt  Stmt
	Info  names.NameInfo
}

// CallCheck is the outcome of binding one call statement.
type CallCheck struct {
	Stmt    *CallStmt
	Binding designate.Binding
	OK      bool
}

// Result collects everything a script evaluation produced.
type Result struct {
	Entries []Entry
	Calls   []CallCheck
}

// Names returns the produced names in statement order.
func (r *Result) Names() []names.Name {
	out := make([]names.Name, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, e.Info.Name)
	}
	return out
}

type labelled struct {
	name names.Name
	span source.Span
}

type funcDecl struct {
	fn   designate.Func
	span source.Span
}

type typeParam struct {
	depth, index uint32
	pack         bool
}

// Evaluator builds names for statements inside one astctx.Context.
// Precondition failures that would panic in names.Table are reported as
// diagnostics instead.
type Evaluator struct {
	c      *astctx.Context
	r      diag.Reporter
	labels map[string]labelled
	funcs  map[names.Name]*funcDecl
	params map[string]typeParam
	next   uint32
	res    *Result
}

// NewEvaluator creates an evaluator writing names into c.
func NewEvaluator(c *astctx.Context, r diag.Reporter) *Evaluator {
	return &Evaluator{
		c:      c,
		r:      r,
		labels: make(map[string]labelled),
		funcs:  make(map[names.Name]*funcDecl),
		params: make(map[string]typeParam),
		res:    &Result{},
	}
}

// Run parses the file id of c.Files and evaluates it.
func Run(ctx context.Context, c *astctx.Context, id source.FileID, r diag.Reporter) *Result {
	file := c.Files.Get(id)
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "script", trace.CurrentSpan(ctx))
	span.WithExtra("file", file.Path)

	s := Parse(file, r)
	e := NewEvaluator(c, diag.NewDedupReporter(r))
	for _, st := range s.Stmts {
		e.Eval(st)
	}
	res := e.Result()
	span.WithExtra("statements", strconv.Itoa(len(s.Stmts))).
		WithExtra("names", strconv.Itoa(len(res.Entries))).
		End("")
	return res
}

// Result returns what has been evaluated so far.
func (e *Evaluator) Result() *Result { return e.res }

func (e *Evaluator) errorf(code diag.Code, sp source.Span, format string, args ...any) *diag.ReportBuilder {
	return diag.Errorf(e.r, code, sp, format, args...)
}

// Eval evaluates one statement.
func (e *Evaluator) Eval(st Stmt) {
	h := st.Header()
	switch st := st.(type) {
	case *FuncStmt:
		e.declare(st)
		return
	case *CallStmt:
		e.call(st)
		return
	case *ExpandStmt:
		e.expand(st)
		return
	}

	info, ok := e.build(st)
	if !ok {
		return
	}
	e.emit(h, st, info)
}

func (e *Evaluator) emit(h *StmtHeader, st Stmt, info names.NameInfo) {
	if h.Label != "" {
		if prev, dup := e.labels[h.Label]; dup {
			e.errorf(diag.ScrDuplicateLabel, h.LabelSpan, "label %s redefined", quote(h.Label)).
				WithNote(prev.span, "previous definition is here").
				Emit()
		} else {
			e.labels[h.Label] = labelled{name: info.Name, span: h.LabelSpan}
		}
	}
	e.res.Entries = append(e.res.Entries, Entry{Label: h.Label, Stmt: st, Info: info})
}

func (e *Evaluator) build(st Stmt) (names.NameInfo, bool) {
	c := e.c
	loc := st.Header().Keyword.Begin()
	switch st := st.(type) {
	case *IdentStmt:
		return names.NewNameInfo(names.FromIdentifier(c.Ident(st.Text)), st.TextSpan.Begin()), true

	case *SelectorStmt:
		var sel selector.Selector
		if st.Multi {
			slots := make([]*ident.Info, len(st.Slots))
			for i, s := range st.Slots {
				if s != "" {
					slots[i] = c.Ident(s)
				}
			}
			sel = c.Selectors.Get(slots...)
		} else {
			sel = c.Selectors.Nullary(c.Ident(st.Slots[0]))
		}
		return names.NewNameInfo(names.FromSelector(sel), st.Raw.Span.Begin()), true

	case *SpecialStmt:
		qt, ok := e.typeOf(st.Type, false)
		if !ok {
			return names.NameInfo{}, false
		}
		if st.Kind != names.CXXConversionFunction && qt.HasQualifiers() {
			e.errorf(diag.NameQualifiedSpecial, st.Type.Span,
				"%s type %s must not be cv-qualified", specialWord(st.Kind), quote(qt.String())).Emit()
			return names.NameInfo{}, false
		}
		info := names.NewNameInfo(c.Names.Special(st.Kind, qt), loc)
		info.SetTypeInfo(&types.SourceInfo{Type: qt, Span: st.Type.Span})
		return info, true

	case *OperatorStmt:
		info := names.NewNameInfo(c.Names.Operator(st.Op), loc)
		info.SetOperatorRange(st.Spelling.Span)
		return info, true

	case *LiteralStmt:
		info := names.NewNameInfo(c.Names.LiteralOperator(c.Ident(st.Suffix.Text)), loc)
		info.SetLiteralLoc(st.Suffix.Span.Begin())
		return info, true

	case *UsingStmt:
		return names.NewNameInfo(names.UsingDirective(), loc), true

	case *ParamStmt:
		if st.As == "" {
			return names.NewNameInfo(c.Names.TemplatedParam(st.Depth, st.Index, st.Pack, nil), loc), true
		}
		decl := &names.ParamDecl{
			Ident: c.Ident(st.As),
			Depth: st.Depth,
			Index: st.Index,
			Pack:  st.Pack,
			Span:  st.AsSpan,
		}
		if _, seen := e.params[st.As]; !seen {
			e.params[st.As] = typeParam{depth: st.Depth, index: st.Index, pack: st.Pack}
			if st.Depth == 0 && st.Index >= e.next {
				e.next = st.Index + 1
			}
		}
		return names.NewNameInfo(c.Names.TemplatedParamFor(decl), st.AsSpan.Begin()), true

	case *SubstStmt:
		param, ok := e.param(st.Param)
		if !ok {
			return names.NameInfo{}, false
		}
		repl, ok := e.canonical(st.Replacement)
		if !ok {
			return names.NameInfo{}, false
		}
		return names.NewNameInfo(c.Names.Subst(param, repl), loc), true

	case *SubstPackStmt:
		param, ok := e.param(st.Param)
		if !ok {
			return names.NameInfo{}, false
		}
		if tp := param.TemplateParam(); !tp.Pack {
			e.errorf(diag.NameNotPackType, st.Param.Span,
				"%s is not a parameter pack", quote(param.String())).Emit()
			return names.NameInfo{}, false
		}
		elems := make([]names.Name, 0, len(st.Elems))
		for _, ref := range st.Elems {
			n, ok := e.canonical(ref)
			if !ok {
				return names.NameInfo{}, false
			}
			elems = append(elems, n)
		}
		return names.NewNameInfo(c.Names.SubstPack(param, names.NewPack(elems...)), loc), true
	}
	panic(fmt.Sprintf("script: unexpected statement %T", st))
}

func (e *Evaluator) expand(st *ExpandStmt) {
	n, ok := e.lookup(st.Pack)
	if !ok {
		return
	}
	if n.Kind() != names.SubstTemplatedParamPack {
		e.errorf(diag.NameNotAPack, st.Pack.Span, "%s is a %s name, not a pack substitution",
			quote(st.Pack.Name), n.Kind()).Emit()
		return
	}
	loc := st.Keyword.Begin()
	for i, elem := range e.c.Names.ExpandPack(n) {
		h := st.StmtHeader
		if h.Label != "" {
			h.Label = fmt.Sprintf("%s_%d", h.Label, i)
		}
		e.emit(&h, st, names.NewNameInfo(elem, loc))
	}
}

func (e *Evaluator) lookup(ref LabelRef) (names.Name, bool) {
	l, ok := e.labels[ref.Name]
	if !ok {
		e.errorf(diag.NameUnknownLabel, ref.Span, "unknown label %s", quote("$"+ref.Name)).Emit()
		return names.Name{}, false
	}
	return l.name, true
}

func (e *Evaluator) param(ref LabelRef) (names.Name, bool) {
	n, ok := e.lookup(ref)
	if !ok {
		return n, false
	}
	if n.Kind() != names.TemplatedParam {
		e.errorf(diag.NameNotAParameter, ref.Span, "%s is a %s name, not a name parameter",
			quote("$"+ref.Name), n.Kind()).
			WithNote(e.labels[ref.Name].span, "defined here").
			Emit()
		return n, false
	}
	return n, true
}

func (e *Evaluator) canonical(ref LabelRef) (names.Name, bool) {
	n, ok := e.lookup(ref)
	if !ok {
		return n, false
	}
	if !n.IsCanonical() {
		e.errorf(diag.NameNotCanonical, ref.Span, "replacement %s is not canonical", quote("$"+ref.Name)).
			WithNote(e.labels[ref.Name].span, "defined here").
			Emit()
		return n, false
	}
	return n, true
}

// typeOf builds the type written as te. inArgs is set inside a template
// argument list, where $T... is a pack expansion.
func (e *Evaluator) typeOf(te *TypeExpr, inArgs bool) (types.QualType, bool) {
	in := e.c.Types
	var q types.QualType
	switch te.Base {
	case BaseBuiltin:
		k, _ := types.ParseBuiltin(te.Name)
		q = in.Builtin(k)
	case BaseRecord:
		q = in.Record(e.c.Ident(te.Name))
	case BaseInjected:
		args := make([]types.QualType, 0, len(te.Args))
		for _, a := range te.Args {
			at, ok := e.typeOf(a, true)
			if !ok {
				return types.QualType{}, false
			}
			args = append(args, at)
		}
		q = in.Injected(e.c.Ident(te.Name), args...)
	case BaseParam:
		tp, ok := e.params[te.Name]
		if !ok {
			tp = typeParam{index: e.next, pack: te.Pack}
			e.next++
			e.params[te.Name] = tp
		}
		if te.Pack && !tp.pack {
			e.errorf(diag.NameNotPackType, te.Span, "%s is not a parameter pack", quote("$"+te.Name)).Emit()
			return types.QualType{}, false
		}
		q = in.TemplateParm(tp.depth, tp.index, tp.pack, e.c.Ident(te.Name))
		if te.Pack && inArgs {
			q = in.PackExpansion(q)
		}
	}

	var quals types.Qualifiers
	if te.Const {
		quals |= types.QualConst
	}
	if te.Volatile {
		quals |= types.QualVolatile
	}
	q = q.WithQualifiers(quals)
	for _, d := range te.Decls {
		if d == Star {
			q = in.Pointer(q)
		} else {
			q = in.LValueReference(q)
		}
	}
	return q, true
}

func (e *Evaluator) declare(st *FuncStmt) {
	key := names.FromIdentifier(e.c.Ident(st.Name))
	if prev, dup := e.funcs[key]; dup {
		e.errorf(diag.NameDuplicateFunction, st.NameSpan, "function %s redefined", quote(st.Name)).
			WithNote(prev.span, "previous definition is here").
			Emit()
		return
	}
	fd := &funcDecl{fn: designate.Func{Name: key, Span: st.Span}, span: st.NameSpan}
	for _, ps := range st.Params {
		p := designate.Param{
			Designatable: ps.Designatable,
			HasDefault:   ps.HasDefault,
			Variadic:     ps.Variadic,
			Span:         ps.Span,
		}
		if ps.Name != "" {
			p.Name = names.FromIdentifier(e.c.Ident(ps.Name))
		}
		fd.fn.Params = append(fd.fn.Params, p)
	}
	e.funcs[key] = fd
}

func (e *Evaluator) call(st *CallStmt) {
	fd, ok := e.funcs[names.FromIdentifier(e.c.Ident(st.Name))]
	if !ok {
		e.errorf(diag.NameUnknownFunction, st.NameSpan, "call to undeclared function %s", quote(st.Name)).Emit()
		return
	}
	call := &designate.Call{Span: st.ArgsSpan}
	for _, as := range st.Args {
		a := designate.Arg{Span: as.Span, DesignatorSpan: as.DesignatorSpan}
		if as.Designator != "" {
			a.Designator = names.FromIdentifier(e.c.Ident(as.Designator))
		}
		call.Args = append(call.Args, a)
	}
	binding, ok := designate.Match(&fd.fn, call, e.r)
	e.res.Calls = append(e.res.Calls, CallCheck{Stmt: st, Binding: binding, OK: ok})
}

func specialWord(k names.Kind) string {
	if k == names.CXXDestructor {
		return "destructor"
	}
	return "constructor"
}
