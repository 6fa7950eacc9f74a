package designate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"declname/internal/diag"
	"declname/internal/ident"
	"declname/internal/names"
	"declname/internal/source"
)

type env struct {
	ids *ident.Table
	pos uint32
}

func (e *env) span() source.Span {
	e.pos += 2
	return source.Span{Start: e.pos, End: e.pos + 1}
}

func (e *env) name(s string) names.Name {
	if s == "" {
		return names.Name{}
	}
	return names.FromIdentifier(e.ids.Get(s))
}

// fn builds a callee from compact specs: ".a" designatable, "a" named,
// "_" unnamed, a trailing "=" for a default, "..." for a pack.
func (e *env) fn(specs ...string) *Func {
	f := &Func{Name: e.name("f"), Span: e.span()}
	for _, s := range specs {
		p := Param{Span: e.span()}
		if s == "..." {
			p.Variadic = true
			f.Params = append(f.Params, p)
			continue
		}
		if len(s) > 0 && s[len(s)-1] == '=' {
			p.HasDefault = true
			s = s[:len(s)-1]
		}
		if len(s) > 0 && s[0] == '.' {
			p.Designatable = true
			s = s[1:]
		}
		if s != "_" {
			p.Name = e.name(s)
		}
		f.Params = append(f.Params, p)
	}
	return f
}

// call builds a call site: ".a" designated, "_" positional.
func (e *env) call(args ...string) *Call {
	c := &Call{Span: e.span()}
	for _, s := range args {
		a := Arg{Span: e.span()}
		if s != "_" {
			a.Designator = e.name(s[1:])
			a.DesignatorSpan = a.Span
		}
		c.Args = append(c.Args, a)
	}
	return c
}

func messages(bag *diag.Bag) []string {
	var out []string
	for _, d := range bag.Items() {
		out = append(out, d.Message)
		for _, n := range d.Notes {
			out = append(out, "note: "+n.Msg)
		}
	}
	return out
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		params  []string
		args    []string
		binding Binding
		diags   []string
	}{
		{"designated only", []string{".a"}, []string{".a"}, Binding{0}, nil},
		{"reordered", []string{".a", ".b"}, []string{".b", ".a"}, Binding{1, 0}, nil},
		{"positional then designated", []string{"_", ".a"}, []string{"_", ".a"}, Binding{0, 1}, nil},
		{"default fills the rest", []string{".a", ".b", ".c=", "..."}, []string{"_", ".b"}, Binding{0, 1}, nil},
		{"pack absorbs extras", []string{".a", "..."}, []string{"_", "_", "_"}, Binding{0, 1, 1}, nil},
		{"unnamed parameter", []string{"_"}, []string{".a"}, Binding{-1},
			[]string{"no corresponding designatable parameter for 'a'", "missing argument for 1st parameter", "note: declared here"}},
		{"plain parameter", []string{"a="}, []string{".a"}, Binding{-1},
			[]string{"parameter 'a' is not designatable", "note: declared here"}},
		{"multiple arguments", []string{".a", ".b"}, []string{"_", ".a"}, Binding{0, -1},
			[]string{"multiple arguments provided for 1st parameter", "note: previous argument is here",
				"missing argument for 2nd parameter", "note: declared here"}},
		{"missing argument", []string{".a", ".b="}, []string{".b"}, Binding{1},
			[]string{"missing argument for 1st parameter", "note: declared here"}},
		{"out of bounds", []string{"_", ".a"}, []string{".a", "_"}, Binding{1, -1},
			[]string{"argument index 2 is out of bounds", "missing argument for 1st parameter", "note: declared here"}},
		{"duplicate designators", []string{".a"}, []string{".a", ".a"}, Binding{0, -1},
			[]string{"duplicate designators", "note: previous designator is here"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &env{ids: ident.NewTable(nil)}
			bag := diag.NewBag(20)
			binding, ok := Match(e.fn(tt.params...), e.call(tt.args...), diag.BagReporter{Bag: bag})
			if ok != (len(tt.diags) == 0) {
				t.Fatalf("want ok=%v, got %v", len(tt.diags) == 0, ok)
			}
			if diff := cmp.Diff(tt.binding, binding); diff != "" {
				t.Fatalf("binding mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.diags, messages(bag)); diff != "" {
				t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDuplicateNotePointsAtFirstDesignator(t *testing.T) {
	e := &env{ids: ident.NewTable(nil)}
	call := e.call(".a", ".a")
	bag := diag.NewBag(5)
	Match(e.fn(".a"), call, diag.BagReporter{Bag: bag})
	d := bag.Items()[0]
	if d.Primary != call.Args[1].DesignatorSpan || d.Notes[0].Span != call.Args[0].DesignatorSpan {
		t.Fatalf("unexpected spans: %v / %v", d.Primary, d.Notes)
	}
}

func TestOrdinal(t *testing.T) {
	got := []string{Ordinal(1), Ordinal(2), Ordinal(3), Ordinal(4), Ordinal(11), Ordinal(12), Ordinal(13), Ordinal(21), Ordinal(102), Ordinal(111)}
	want := []string{"1st", "2nd", "3rd", "4th", "11th", "12th", "13th", "21st", "102nd", "111th"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ordinal mismatch (-want +got):\n%s", diff)
	}
}
