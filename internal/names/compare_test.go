package names

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}

func TestCompareLaws(t *testing.T) {
	f := newFixture(t)
	ns := f.sample()
	for _, a := range ns {
		if Compare(a, a) != 0 {
			t.Fatalf("%s: compare with itself is %d", a, Compare(a, a))
		}
		for _, b := range ns {
			ab, ba := sign(Compare(a, b)), sign(Compare(b, a))
			if ab != -ba {
				t.Fatalf("antisymmetry broken for %s / %s: %d vs %d", a, b, ab, ba)
			}
			for _, c := range ns {
				bc, ac := sign(Compare(b, c)), sign(Compare(a, c))
				if ab == 0 && bc == 0 && ac != 0 {
					t.Fatalf("equality not transitive: %s %s %s", a, b, c)
				}
				if ab < 0 && bc < 0 && ac >= 0 {
					t.Fatalf("order not transitive: %s < %s < %s", a, b, c)
				}
			}
		}
	}
}

func TestCompareFollowsSampleOrder(t *testing.T) {
	f := newFixture(t)
	ns := f.sample()
	for i := range ns {
		for j := i + 1; j < len(ns); j++ {
			if Compare(ns[i], ns[j]) > 0 {
				t.Fatalf("%s (%s) sorted after %s (%s)", ns[i], ns[i].Kind(), ns[j], ns[j].Kind())
			}
		}
	}
}

func TestCompareRules(t *testing.T) {
	f := newFixture(t)
	tab := f.tab
	tests := []struct {
		name string
		a, b Name
		want int
	}{
		{"kind first", f.ident("zzz"), UsingDirective(), -1},
		{"empty identifier first", Name{}, f.ident("a"), -1},
		{"identifier text", f.ident("b"), f.ident("a"), 1},
		{"selector slot text", FromSelector(f.sels.Get(f.ids.Get("a"), f.ids.Get("b"))), FromSelector(f.sels.Get(f.ids.Get("a"), f.ids.Get("c"))), -1},
		{"selector slot count", FromSelector(f.sels.Get(f.ids.Get("a"), f.ids.Get("b"))), FromSelector(f.sels.Get(f.ids.Get("a"), f.ids.Get("b"), f.ids.Get("c"))), -1},
		{"operator ordinal", tab.Operator(OpCoawait), tab.Operator(OpPlus), 1},
		{"literal suffix", tab.LiteralOperator(f.ids.Get("_a")), tab.LiteralOperator(f.ids.Get("_b")), -1},
		{"using directives", UsingDirective(), UsingDirective(), 0},
		{"packs always equal",
			tab.SubstPack(tab.TemplatedParam(0, 0, true, nil), NewPack(f.ident("a"))),
			tab.SubstPack(tab.TemplatedParam(3, 3, true, nil), NewPack(f.ident("b"), f.ident("c"))),
			0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sign(Compare(tt.a, tt.b)); got != tt.want {
				t.Fatalf("Compare(%s, %s): want %d, got %d", tt.a, tt.b, tt.want, got)
			}
		})
	}
}

func TestSort(t *testing.T) {
	f := newFixture(t)
	want := []string{"", "a", "b", "count", "at:", "~Widget", "operator+", `operator""_kg`, "<using-directive>"}
	ns := []Name{
		f.tab.LiteralOperator(f.ids.Get("_kg")),
		UsingDirective(),
		f.ident("b"),
		f.tab.Destructor(f.record("Widget")),
		FromSelector(f.sels.Unary(f.ids.Get("at"))),
		f.tab.Operator(OpPlus),
		{},
		FromSelector(f.sels.Nullary(f.ids.Get("count"))),
		f.ident("a"),
	}
	rand.Shuffle(len(ns), func(i, j int) { ns[i], ns[j] = ns[j], ns[i] })
	Sort(ns)
	got := make([]string, len(ns))
	for i, n := range ns {
		got[i] = n.String()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sorted names mismatch (-want +got):\n%s", diff)
	}
	if !Less(ns[0], ns[1]) || Less(ns[1], ns[0]) {
		t.Fatalf("Less disagrees with Sort")
	}
}
