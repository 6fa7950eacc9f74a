package names

import (
	"context"
	"testing"

	"declname/internal/ident"
	"declname/internal/selector"
	"declname/internal/types"
)

type fixture struct {
	ids   *ident.Table
	sels  *selector.Table
	types *types.Interner
	tab   *Table
	pack  *ParamDecl
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ids := ident.NewTable(nil)
	return &fixture{
		ids:   ids,
		sels:  selector.NewTable(),
		types: types.NewInterner(),
		tab:   NewTable(context.Background(), nil),
		pack:  &ParamDecl{Ident: ids.Get("Ts"), Depth: 0, Index: 1, Pack: true},
	}
}

func (f *fixture) ident(name string) Name {
	return FromIdentifier(f.ids.Get(name))
}

func (f *fixture) record(name string) types.QualType {
	return f.types.Record(f.ids.Get(name))
}

// sample returns one or more names of every kind, in the order the
// comparator is expected to put them (equal names adjacent).
func (f *fixture) sample() []Name {
	tab := f.tab
	canon0 := tab.TemplatedParam(0, 0, false, nil)
	canon1 := tab.TemplatedParam(0, 1, true, nil)
	alias := tab.TemplatedParamFor(f.pack)
	a, b := f.ident("a"), f.ident("b")
	return []Name{
		{},
		a,
		b,
		FromSelector(f.sels.Nullary(f.ids.Get("count"))),
		FromSelector(f.sels.Unary(f.ids.Get("at"))),
		FromSelector(f.sels.Get(f.ids.Get("insert"), f.ids.Get("at"))),
		tab.Constructor(f.record("Gadget")),
		tab.Constructor(f.record("Widget")),
		tab.Destructor(f.record("Widget")),
		tab.Conversion(f.types.Builtin(types.BuiltinInt)),
		tab.Conversion(f.types.Pointer(f.record("Widget").WithQualifiers(types.QualConst))),
		tab.Operator(OpNew),
		tab.Operator(OpPlus),
		tab.LiteralOperator(f.ids.Get("_kg")),
		tab.LiteralOperator(f.ids.Get("_m")),
		UsingDirective(),
		canon0,
		canon1,
		alias,
		tab.Subst(canon0, a),
		tab.Subst(canon0, b),
		tab.SubstPack(canon1, NewPack(a, b)),
		tab.SubstPack(alias, NewPack(a, b)),
	}
}

func mustPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", what)
		}
	}()
	fn()
}
