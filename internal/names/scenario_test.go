package names

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScenarioConstructorIsUniqued(t *testing.T) {
	f := newFixture(t)
	a := f.tab.Constructor(f.record("Widget"))
	b := f.tab.Constructor(f.record("Widget"))
	if a != b {
		t.Fatalf("constructor names for the same class must be identical")
	}
	if a.String() != "Widget" {
		t.Fatalf("want Widget, got %q", a)
	}
}

func TestScenarioDestructor(t *testing.T) {
	f := newFixture(t)
	if got := f.tab.Destructor(f.record("Widget")).String(); got != "~Widget" {
		t.Fatalf("want ~Widget, got %q", got)
	}
}

func TestScenarioOperators(t *testing.T) {
	f := newFixture(t)
	got := []string{f.tab.Operator(OpPlus).String(), f.tab.Operator(OpNew).String()}
	if diff := cmp.Diff([]string{"operator+", "operator new"}, got); diff != "" {
		t.Fatalf("operator spelling mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioLiteralOperator(t *testing.T) {
	f := newFixture(t)
	if got := f.tab.LiteralOperator(f.ids.Get("_kg")).String(); got != `operator""_kg` {
		t.Fatalf(`want operator""_kg, got %q`, got)
	}
}

func TestScenarioParameterAlias(t *testing.T) {
	f := newFixture(t)
	canon := f.tab.TemplatedParam(0, 2, false, nil)
	d := &ParamDecl{Ident: f.ids.Get("D"), Depth: 0, Index: 2}
	alias := f.tab.TemplatedParam(0, 2, false, d)
	if alias.CanonicalForm() != canon {
		t.Fatalf("alias must canonicalise to the position's canonical name")
	}
	if alias == canon {
		t.Fatalf("alias must be a distinct name")
	}
	if Compare(canon, alias) >= 0 || Compare(alias, canon) <= 0 {
		t.Fatalf("parameters must order by creation: %d %d", Compare(canon, alias), Compare(alias, canon))
	}
	if Compare(alias, canon) != Compare(alias, canon) {
		t.Fatalf("order must be stable")
	}
}

// The pack-substituted name itself still stands for an unexpanded pack; its
// element-wise expansion does not. The un-substituted pack parameter does.
func TestScenarioPackSubstitution(t *testing.T) {
	f := newFixture(t)
	p := f.tab.TemplatedParam(0, 0, true, nil)
	pack := NewPack(f.ident("x"), f.ident("y"), f.ident("z"))
	n := f.tab.SubstPack(p, pack)

	if !p.ContainsUnexpandedParameterPack() {
		t.Fatalf("the pack parameter must report an unexpanded pack")
	}
	if !n.ContainsUnexpandedParameterPack() {
		t.Fatalf("the pack substitution must report an unexpanded pack")
	}
	for i, elem := range f.tab.ExpandPack(n) {
		if elem.ContainsUnexpandedParameterPack() {
			t.Fatalf("expansion element %d must not report a pack", i)
		}
	}
	if got := n.ArgumentPack().Names(); !cmp.Equal(pack.Names(), got, cmp.Comparer(func(a, b Name) bool { return a == b })) {
		t.Fatalf("argument pack mismatch: %v", got)
	}
}
