package source

import "testing"

func TestInternerBasic(t *testing.T) {
	interner := NewInterner()

	// NoStringID зарезервирован под пустую строку
	if s, ok := interner.Lookup(NoStringID); !ok || s != "" {
		t.Fatalf("NoStringID must map to empty string, got %q ok=%v", s, ok)
	}
	id1 := interner.Intern("Widget")
	if id1 == NoStringID {
		t.Fatalf("non-empty string interned as NoStringID")
	}
	if id2 := interner.Intern("Widget"); id2 != id1 {
		t.Fatalf("expected same id for equal strings: %d != %d", id1, id2)
	}
	if id3 := interner.Intern("_kg"); id3 == id1 {
		t.Fatalf("distinct strings share id %d", id1)
	}
	if s := interner.MustLookup(id1); s != "Widget" {
		t.Fatalf("lookup returned %q", s)
	}
	if interner.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", interner.Len())
	}
	if interner.Intern("") != NoStringID {
		t.Fatalf("empty string must intern to NoStringID")
	}
}

func TestInternerCopiesInput(t *testing.T) {
	interner := NewInterner()
	buf := []byte("abc")
	id := interner.Intern(string(buf))
	buf[0] = 'x'
	if got := interner.MustLookup(id); got != "abc" {
		t.Fatalf("interned string changed with caller buffer: %q", got)
	}
}

func TestInternerMustLookupPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown id")
		}
	}()
	NewInterner().MustLookup(42)
}
