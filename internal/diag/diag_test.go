package diag

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"declname/internal/source"
)

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("testdata/calls.dn", []byte("a\nb\n"))

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     ScrUnknownStatement,
			Message:  "another",
			Primary:  source.Span{File: file, Start: 2, End: 3},
		},
		NewError(DesDuplicate, source.Span{File: file, Start: 0, End: 1}, "duplicate designator\n'a'").
			WithNote(source.Span{File: file, Start: 2, End: 3}, "previous designator is here").
			WithNote(source.Span{File: 99}, "dropped: unknown file"),
	}

	want := "error DES3001 testdata/calls.dn:1:1 duplicate designator 'a'\n" +
		"note DES3001 testdata/calls.dn:2:1 previous designator is here\n" +
		"warning SCR1003 testdata/calls.dn:2:1 another"
	if got := FormatShort(diags, fs, true); got != want {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
}

func TestBagLimitSortAndDedup(t *testing.T) {
	bag := NewBag(3)
	r := BagReporter{Bag: bag}
	sp := func(start uint32) source.Span { return source.Span{Start: start, End: start + 1} }

	ReportWarning(r, ScrUnexpectedToken, sp(5), "late").Emit()
	b := ReportError(r, DesMissingArgument, sp(1), "early")
	b.Emit()
	b.Emit()
	ReportError(r, DesMissingArgument, sp(1), "early").Emit()
	ReportInfo(r, ScrInfo, sp(0), "over the limit").Emit()

	if bag.Len() != 3 || !bag.HasErrors() || !bag.HasWarnings() {
		t.Fatalf("unexpected bag state: len=%d", bag.Len())
	}
	bag.Sort()
	bag.Dedup()
	var got []string
	for _, d := range bag.Items() {
		got = append(got, d.Message)
	}
	if diff := cmp.Diff([]string{"early", "late"}, got); diff != "" {
		t.Fatalf("bag order mismatch (-want +got):\n%s", diff)
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	for range 3 {
		ReportError(r, DesDuplicate, source.Span{Start: 1, End: 2}, "duplicate designator 'a'").Emit()
	}
	ReportError(r, DesDuplicate, source.Span{Start: 3, End: 4}, "duplicate designator 'a'").Emit()
	if bag.Len() != 2 || r.Suppressed() != 2 {
		t.Fatalf("want 2 diagnostics and 2 suppressed, got %d and %d", bag.Len(), r.Suppressed())
	}
}

func TestErrorfAndNotes(t *testing.T) {
	bag := NewBag(10)
	Errorf(BagReporter{Bag: bag}, NameUnknownLabel, source.Span{Start: 4, End: 6}, "unknown label '$%s'", "x").
		WithNote(source.Span{Start: 0, End: 1}, "defined here").
		Emit()
	d := bag.Items()[0]
	if d.Message != "unknown label '$x'" || d.Severity.Label() != "error" || len(d.Notes) != 1 || !d.HasLocation() {
		t.Fatalf("unexpected diagnostic %+v", d)
	}

	base := NewError(NameUnknownLabel, source.Span{}, "m").WithNote(source.Span{}, "one")
	a := base.WithNote(source.Span{}, "a")
	b := base.WithNote(source.Span{}, "b")
	if a.Notes[1].Msg != "a" || b.Notes[1].Msg != "b" || base.HasLocation() {
		t.Fatalf("notes must not be shared between copies: %+v %+v", a.Notes, b.Notes)
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		ScrBadSelector:      "SCR1008",
		NameNotCanonical:    "NAM2003",
		DesIndexOutOfBounds: "DES3006",
		IOLoadFileError:     "IO4001",
		UnknownCode:         "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Fatalf("want %s, got %s", want, got)
		}
	}
	if DesDuplicate.String() != "[DES3001]: Duplicate designator" {
		t.Fatalf("unexpected string %q", DesDuplicate.String())
	}
}
