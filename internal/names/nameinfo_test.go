package names

import (
	"testing"

	"declname/internal/source"
	"declname/internal/types"
)

func TestNameInfoEndLoc(t *testing.T) {
	f := newFixture(t)
	loc := source.PosAt(1, 10)

	plain := NewNameInfo(f.ident("a"), loc)
	if plain.EndLoc() != loc {
		t.Fatalf("identifier ends at its location")
	}

	op := NewNameInfo(f.tab.Operator(OpPlusEqual), loc)
	if op.EndLoc().IsValid() {
		t.Fatalf("operator without a range has no end, got %s", op.EndLoc())
	}
	op.SetOperatorRange(source.Span{File: 1, Start: 18, End: 20})
	if want := source.PosAt(1, 19); op.EndLoc() != want {
		t.Fatalf("operator: want %s, got %s", want, op.EndLoc())
	}

	lit := NewNameInfo(f.tab.LiteralOperator(f.ids.Get("_kg")), loc)
	lit.SetLiteralLoc(source.PosAt(1, 20))
	if lit.EndLoc() != source.PosAt(1, 20) {
		t.Fatalf("literal operator ends at its suffix")
	}

	dtor := NewNameInfo(f.tab.Destructor(f.record("Widget")), loc)
	if dtor.EndLoc() != loc {
		t.Fatalf("special name without a written type ends at its location")
	}
	dtor.SetTypeInfo(&types.SourceInfo{Type: f.record("Widget"), Span: source.Span{File: 1, Start: 11, End: 17}})
	if want := source.PosAt(1, 16); dtor.EndLoc() != want {
		t.Fatalf("destructor: want %s, got %s", want, dtor.EndLoc())
	}

	// kind-specific setters ignore other kinds
	plain.SetOperatorRange(source.Span{File: 1, Start: 1, End: 2})
	plain.SetTypeInfo(&types.SourceInfo{})
	if plain.OperatorRange != source.NoSpan || plain.TypeInfo != nil {
		t.Fatalf("identifier must not carry kind-specific locations")
	}
}

func TestNameInfoPrefersWrittenType(t *testing.T) {
	f := newFixture(t)
	Ts := f.types.TemplateParm(0, 0, true, f.ids.Get("Ts"))
	conv := NewNameInfo(f.tab.Conversion(f.types.Builtin(types.BuiltinInt)), source.PosAt(1, 0))
	if conv.ContainsUnexpandedParameterPack() || conv.IsInstantiationDependent() {
		t.Fatalf("conversion to int is neither dependent nor a pack")
	}
	conv.SetTypeInfo(&types.SourceInfo{Type: f.types.Pointer(Ts)})
	if !conv.ContainsUnexpandedParameterPack() || !conv.IsInstantiationDependent() {
		t.Fatalf("written type must take precedence over the stored type")
	}
	if got := conv.String(); got != "operator Ts *" {
		t.Fatalf("want %q, got %q", "operator Ts *", got)
	}
}

func TestNameInfoPredicates(t *testing.T) {
	f := newFixture(t)
	pack := f.tab.TemplatedParam(0, 0, true, nil)
	tests := []struct {
		name      string
		n         Name
		pack, dep bool
	}{
		{"identifier", f.ident("a"), false, false},
		{"operator", f.tab.Operator(OpCall), false, false},
		{"parameter", f.tab.TemplatedParam(0, 1, false, nil), false, true},
		{"pack parameter", pack, true, true},
		{"subst", f.tab.Subst(pack, f.ident("a")), false, false},
		{"subst pack", f.tab.SubstPack(pack, NewPack(f.ident("a"))), true, true},
	}
	for _, tt := range tests {
		ni := NewNameInfo(tt.n, source.NoPos)
		if ni.ContainsUnexpandedParameterPack() != tt.pack || ni.IsInstantiationDependent() != tt.dep {
			t.Fatalf("%s: want pack=%v dep=%v", tt.name, tt.pack, tt.dep)
		}
	}
}

func TestNameInfoPrintName(t *testing.T) {
	f := newFixture(t)
	widget := f.record("Widget")
	dtor := NewNameInfo(f.tab.Destructor(widget), source.NoPos)
	if dtor.String() != "~Widget" {
		t.Fatalf("want ~Widget, got %q", dtor.String())
	}
	dtor.SetTypeInfo(&types.SourceInfo{Type: widget})
	if dtor.String() != "~Widget" {
		t.Fatalf("want ~Widget with written type, got %q", dtor.String())
	}
	op := NewNameInfo(f.tab.Operator(OpSubscript), source.NoPos)
	if op.String() != "operator[]" {
		t.Fatalf("want operator[], got %q", op.String())
	}
}
