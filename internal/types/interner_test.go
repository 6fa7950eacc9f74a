package types

import (
	"errors"
	"strings"
	"testing"

	"declname/internal/ident"
)

func TestInternerDeduplicatesDescriptors(t *testing.T) {
	ids := ident.NewTable(nil)
	in := NewInterner()
	w1 := in.Record(ids.Get("Widget"))
	w2 := in.Record(ids.Get("Widget"))
	if w1 != w2 {
		t.Fatalf("record types should be deduplicated")
	}
	p1 := in.Pointer(w1)
	p2 := in.Pointer(w2)
	if p1 != p2 {
		t.Fatalf("pointer types should be deduplicated")
	}
	if in.Pointer(w1.WithQualifiers(QualConst)) == p1 {
		t.Fatalf("pointee qualifiers must affect identity")
	}
	a := in.Injected(ids.Get("Vec"), in.TemplateParm(0, 0, false, ids.Get("T")))
	b := in.Injected(ids.Get("Vec"), in.TemplateParm(0, 0, false, ids.Get("T")))
	if a != b {
		t.Fatalf("injected class names with equal args should be deduplicated")
	}
}

func TestBuiltinsSeeded(t *testing.T) {
	in := NewInterner()
	if in.Builtin(BuiltinInt).Kind() != KindBuiltin {
		t.Fatalf("expected builtin kind")
	}
	if in.Len() != int(BuiltinDouble) {
		t.Fatalf("expected %d seeded builtins, got %d", BuiltinDouble, in.Len())
	}
	if k, ok := ParseBuiltin("unsigned"); !ok || k != BuiltinUnsigned {
		t.Fatalf("unexpected parse result %v %v", k, ok)
	}
}

func TestDependence(t *testing.T) {
	ids := ident.NewTable(nil)
	in := NewInterner()
	T := in.TemplateParm(0, 0, false, ids.Get("T"))
	Ts := in.TemplateParm(0, 1, true, ids.Get("Ts"))
	if !T.IsDependent() || !T.IsInstantiationDependent() || T.ContainsUnexpandedParameterPack() {
		t.Fatalf("unexpected dependence for T: %b", T.Type().Dependence())
	}
	if !in.Pointer(Ts).ContainsUnexpandedParameterPack() {
		t.Fatalf("pointer to a pack must carry the unexpanded pack")
	}
	exp := in.PackExpansion(Ts)
	if exp.ContainsUnexpandedParameterPack() || !exp.IsDependent() {
		t.Fatalf("expansion must cover its pack and stay dependent")
	}
	if in.Record(ids.Get("W")).IsDependent() {
		t.Fatalf("plain records are not dependent")
	}
	if !in.Injected(ids.Get("Vec"), T).IsDependent() {
		t.Fatalf("injected class names are dependent")
	}
}

func TestPrint(t *testing.T) {
	ids := ident.NewTable(nil)
	in := NewInterner()
	w := in.Record(ids.Get("Widget"))
	cases := []struct {
		q    QualType
		p    Policy
		want string
	}{
		{in.Builtin(BuiltinBool), Policy{}, "_Bool"},
		{in.Builtin(BuiltinBool), Policy{}.AdjustForCPlusPlus(), "bool"},
		{w.WithQualifiers(QualConst), DefaultPolicy(), "const Widget"},
		{w.WithQualifiers(QualConst | QualVolatile), DefaultPolicy(), "const volatile Widget"},
		{in.Pointer(w), DefaultPolicy(), "Widget *"},
		{in.Pointer(in.Pointer(w)), DefaultPolicy(), "Widget **"},
		{in.Pointer(w).WithQualifiers(QualConst), DefaultPolicy(), "Widget *const"},
		{in.LValueReference(w.WithQualifiers(QualConst)), DefaultPolicy(), "const Widget &"},
		{in.Injected(ids.Get("Vec"), in.Builtin(BuiltinInt), w), DefaultPolicy(), "Vec<int, Widget>"},
		{in.TemplateParm(1, 2, false, nil), DefaultPolicy(), "type-parameter-1-2"},
		{in.PackExpansion(in.TemplateParm(0, 0, true, ids.Get("Ts"))), DefaultPolicy(), "Ts..."},
	}
	for _, c := range cases {
		if got := Format(c.q, c.p); got != c.want {
			t.Fatalf("want %q, got %q", c.want, got)
		}
	}
}

type chunkWriter struct {
	chunks []string
	limit  int
}

func (cw *chunkWriter) Write(p []byte) (int, error) {
	if cw.limit > 0 && len(cw.chunks) == cw.limit {
		return 0, errors.New("writer closed")
	}
	cw.chunks = append(cw.chunks, string(p))
	return len(p), nil
}

func TestPrintStreamsToWriter(t *testing.T) {
	ids := ident.NewTable(nil)
	in := NewInterner()
	q := in.Pointer(in.Injected(ids.Get("Vec"), in.Builtin(BuiltinInt)).WithQualifiers(QualConst))
	want := Format(q, DefaultPolicy())

	cw := &chunkWriter{}
	if err := Print(cw, q, DefaultPolicy()); err != nil {
		t.Fatalf("print: %v", err)
	}
	if got := strings.Join(cw.chunks, ""); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	for _, c := range cw.chunks {
		if c == want {
			t.Fatalf("type was rendered into a buffer before writing")
		}
	}

	failing := &chunkWriter{limit: 2}
	if err := Print(failing, q, DefaultPolicy()); err == nil {
		t.Fatalf("expected write error")
	}
	if len(failing.chunks) != 2 {
		t.Fatalf("printing must stop at the first error, wrote %d chunks", len(failing.chunks))
	}
}

func TestCompare(t *testing.T) {
	in := NewInterner()
	i := in.Builtin(BuiltinInt)
	d := in.Builtin(BuiltinDouble)
	if Compare(i, i) != 0 || Compare(i, d) >= 0 || Compare(d, i) <= 0 {
		t.Fatalf("builtin order must follow allocation order")
	}
	if Compare(i, i.WithQualifiers(QualConst)) >= 0 {
		t.Fatalf("qualifiers break ties after identity")
	}
	if Compare(QualType{}, i) >= 0 {
		t.Fatalf("null type sorts first")
	}
}
