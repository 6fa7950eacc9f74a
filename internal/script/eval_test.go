package script

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"declname/internal/astctx"
	"declname/internal/designate"
	"declname/internal/diag"
	"declname/internal/names"
	"declname/internal/source"
)

func run(t *testing.T, src string) (*Result, *diag.Bag, *astctx.Context) {
	t.Helper()
	c := astctx.New(context.Background())
	t.Cleanup(c.Close)
	id := c.Files.AddVirtual("test.names", []byte(src))
	bag := diag.NewBag(100)
	return Run(context.Background(), c, id, diag.BagReporter{Bag: bag}), bag, c
}

func printed(res *Result) []string {
	out := make([]string, 0, len(res.Entries))
	for _, e := range res.Entries {
		out = append(out, fmt.Sprintf("%s: %s", e.Label, e.Info))
	}
	return out
}

func TestEvalEveryForm(t *testing.T) {
	src := `x = ident foo
sel0 = selector count
sel1 = selector insertObject:
sel2 = selector insert:at:
c = ctor Widget
d = dtor Widget
cv = conv const int *
plus = operator +
nw = operator new
kg = literal _kg
u = using
p0 = param 0 0
t = param 0 0 as T
s = subst $t $x
pk = param 0 1 pack as Ts
sp = subst-pack $pk $x $plus
e = expand $sp
vec = ctor Vec<$U, $Ts...>
`
	res, bag, _ := run(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	want := []string{
		"x: foo",
		"sel0: count",
		"sel1: insertObject:",
		"sel2: insert:at:",
		"c: Widget",
		"d: ~Widget",
		"cv: operator const int *",
		"plus: operator+",
		"nw: operator new",
		`kg: operator""_kg`,
		"u: <using-directive>",
		"p0: declname-parameter-0-0",
		"t: declname-parameter-0-0",
		"s: foo",
		"pk: declname-parameter-0-1",
		"sp: Ts",
		"e_0: foo",
		"e_1: operator+",
		"vec: Vec<U, Ts...>",
	}
	if diff := cmp.Diff(want, printed(res)); diff != "" {
		t.Fatalf("printed names (-want +got):\n%s", diff)
	}

	byLabel := make(map[string]names.Name)
	for _, e := range res.Entries {
		byLabel[e.Label] = e.Info.Name
	}
	if byLabel["t"].CanonicalForm() != byLabel["p0"] {
		t.Fatalf("alias parameter must canonicalize to the positional name")
	}
	if byLabel["s"].IsCanonical() {
		t.Fatalf("substitution through an alias must not be canonical")
	}
	if !byLabel["sp"].ContainsUnexpandedParameterPack() || byLabel["e_0"].ContainsUnexpandedParameterPack() {
		t.Fatalf("pack substitution must report an unexpanded pack and its expansion must not")
	}
	if !byLabel["vec"].IsDependentName() {
		t.Fatalf("constructor of a dependent class must be dependent")
	}
}

func TestEvalUniquesAcrossStatements(t *testing.T) {
	res, bag, c := run(t, `a = ctor Widget
b = ctor Widget
p = param 0 0
q = param 0 0
s1 = subst $p $a
s2 = subst $p $b
`)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	n := res.Names()
	for i := 0; i < len(n); i += 2 {
		if n[i] != n[i+1] {
			t.Fatalf("statements %d and %d must produce the same name", i, i+1)
		}
	}
	want := names.Stats{Special: 1, Templated: 1, Subst: 1}
	if got := c.Names.Stats(); got != want {
		t.Fatalf("stats: want %+v, got %+v", want, got)
	}
}

func TestEvalLocations(t *testing.T) {
	res, _, c := run(t, `n = operator new
k = literal _kg
d = dtor Widget *
`)
	fid := res.Entries[0].Info.Loc.File
	file := c.Files.Get(fid)
	at := func(off uint32) source.Pos { return source.PosAt(file.ID, off) }

	op := res.Entries[0].Info
	if op.Loc != at(4) || op.EndLoc() != at(15) {
		t.Fatalf("operator locations: want %v..%v, got %v..%v", at(4), at(15), op.Loc, op.EndLoc())
	}
	lit := res.Entries[1].Info
	if lit.LiteralLoc != at(29) || lit.EndLoc() != at(29) {
		t.Fatalf("literal locations: want suffix at %v, got %v", at(29), lit.LiteralLoc)
	}
	dtor := res.Entries[2].Info
	if dtor.TypeInfo == nil || dtor.EndLoc() != at(49) {
		t.Fatalf("destructor end: want %v, got %v", at(49), dtor.EndLoc())
	}
	if got := dtor.String(); got != "~Widget *" {
		t.Fatalf("destructor print: want %q, got %q", "~Widget *", got)
	}
}

func TestEvalReportsInsteadOfPanicking(t *testing.T) {
	src := `x = ident foo
t = param 0 0 as T
a = subst $t $x
bad = subst $t $a
q = ctor const Widget
u1 = subst $nope $x
u2 = subst $x $x
expand $x
subst-pack $t $x
x = ident bar
call g(1)
func f(.a)
func f(.b)
ok = dtor Widget
`
	res, bag, _ := run(t, src)
	want := []diag.Code{
		diag.NameNotCanonical,
		diag.NameQualifiedSpecial,
		diag.NameUnknownLabel,
		diag.NameNotAParameter,
		diag.NameNotAPack,
		diag.NameNotPackType,
		diag.ScrDuplicateLabel,
		diag.NameUnknownFunction,
		diag.NameDuplicateFunction,
	}
	if diff := cmp.Diff(want, codes(bag.Items())); diff != "" {
		t.Fatalf("diagnostic codes (-want +got):\n%s", diff)
	}
	last := res.Entries[len(res.Entries)-1]
	if last.Label != "ok" || last.Info.Name.String() != "~Widget" {
		t.Fatalf("evaluation must continue after errors, last entry %s: %s", last.Label, last.Info)
	}
	for _, d := range bag.Items() {
		if d.Code == diag.NameNotCanonical && len(d.Notes) != 1 {
			t.Fatalf("non-canonical replacement must point at the label definition")
		}
	}
}

func TestEvalPackTypeParameter(t *testing.T) {
	_, bag, _ := run(t, `p = param 0 0 as T
c = ctor Vec<$T...>
`)
	if diff := cmp.Diff([]diag.Code{diag.NameNotPackType}, codes(bag.Items())); diff != "" {
		t.Fatalf("diagnostic codes (-want +got):\n%s", diff)
	}
}

func TestEvalCalls(t *testing.T) {
	res, bag, _ := run(t, `func f(.a, .b=, c)
call f(.a = 1, .b = 2, 3)
call f(.b = 1, .a = 2)
call f(.a = 1, .a = 2, 3)
`)
	want := []CallCheck{
		{Binding: designate.Binding{0, 1, 2}, OK: true},
		{Binding: designate.Binding{1, 0}, OK: false},
		{Binding: designate.Binding{0, -1, 1}, OK: false},
	}
	got := make([]CallCheck, len(res.Calls))
	for i, cc := range res.Calls {
		got[i] = CallCheck{Binding: cc.Binding, OK: cc.OK}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("call checks (-want +got):\n%s", diff)
	}
	wantCodes := []diag.Code{
		diag.DesMissingArgument,
		diag.DesDuplicate,
		diag.DesMissingArgument,
	}
	if diff := cmp.Diff(wantCodes, codes(bag.Items())); diff != "" {
		t.Fatalf("diagnostic codes (-want +got):\n%s", diff)
	}
}
