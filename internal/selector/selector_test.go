package selector

import (
	"testing"

	"declname/internal/ident"
)

func TestSelectorStrings(t *testing.T) {
	ids := ident.NewTable(nil)
	tab := NewTable()
	cases := []struct {
		sel  Selector
		want string
		args int
	}{
		{tab.Nullary(ids.Get("count")), "count", 0},
		{tab.Unary(ids.Get("setCount")), "setCount:", 1},
		{tab.Unary(nil), ":", 1},
		{tab.Get(ids.Get("insert"), ids.Get("at")), "insert:at:", 2},
		{tab.Get(ids.Get("a"), nil, ids.Get("c")), "a::c:", 3},
	}
	for _, c := range cases {
		if got := c.sel.String(); got != c.want {
			t.Fatalf("want %q, got %q", c.want, got)
		}
		if c.sel.NumArgs() != c.args {
			t.Fatalf("%s: want %d args, got %d", c.want, c.args, c.sel.NumArgs())
		}
	}
}

func TestKeywordSelectorsAreUniqued(t *testing.T) {
	ids := ident.NewTable(nil)
	tab := NewTable()
	a := tab.Get(ids.Get("insert"), ids.Get("at"))
	b := tab.Get(ids.Get("insert"), ids.Get("at"))
	if a != b {
		t.Fatalf("equal keyword selectors must be ==")
	}
	if tab.Len() != 1 {
		t.Fatalf("expected one keyword record, got %d", tab.Len())
	}
	if c := tab.Get(ids.Get("insert"), ids.Get("after")); c == a {
		t.Fatalf("different keywords must differ")
	}
	if tab.Get(ids.Get("x")) != tab.Unary(ids.Get("x")) {
		t.Fatalf("single slot must produce the unary selector")
	}
}

func TestCompare(t *testing.T) {
	ids := ident.NewTable(nil)
	tab := NewTable()
	foo := tab.Nullary(ids.Get("foo"))
	fooColon := tab.Unary(ids.Get("foo"))
	fooBar := tab.Get(ids.Get("foo"), ids.Get("bar"))
	bar := tab.Unary(ids.Get("bar"))
	ordered := []Selector{bar, foo, fooColon, fooBar}
	for i := range ordered {
		for j := range ordered {
			got := Compare(ordered[i], ordered[j])
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if (got < 0) != (want < 0) || (got > 0) != (want > 0) {
				t.Fatalf("Compare(%s, %s) = %d, want sign %d", ordered[i], ordered[j], got, want)
			}
		}
	}
}

func TestSlotOutOfRangePanics(t *testing.T) {
	ids := ident.NewTable(nil)
	sel := NewTable().Unary(ids.Get("x"))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	sel.NameForSlot(1)
}
