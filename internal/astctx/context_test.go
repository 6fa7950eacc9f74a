package astctx

import (
	"context"
	"testing"

	"declname/internal/names"
	"declname/internal/trace"
)

func TestContextLifecycle(t *testing.T) {
	ring := trace.NewRingTracer(16, trace.LevelDetail)
	c := New(trace.WithTracer(context.Background(), ring))
	ctor := c.Names.Constructor(c.Types.Record(c.Ident("Widget")))
	if c.Records() != 1 {
		t.Fatalf("want 1 record, got %d", c.Records())
	}
	c.Close()
	c.Close()
	if ctor.String() != "Widget" {
		t.Fatalf("names must outlive Close, got %q", ctor)
	}

	evs := ring.Snapshot()
	if len(evs) != 3 {
		t.Fatalf("want begin, release and end events, got %d", len(evs))
	}
	if evs[0].Kind != trace.KindSpanBegin || evs[2].Kind != trace.KindSpanEnd {
		t.Fatalf("unexpected event kinds %s %s", evs[0].Kind, evs[2].Kind)
	}
	if evs[1].Name != "names:release" || evs[1].ParentID != evs[0].SpanID {
		t.Fatalf("release must be parented to the context span: %+v", evs[1])
	}
}

func TestContextsAreIndependent(t *testing.T) {
	a, b := New(context.Background()), New(context.Background())
	defer a.Close()
	defer b.Close()
	if a.Ident("x") == b.Ident("x") {
		t.Fatalf("contexts must not share identifiers")
	}
	na := names.FromIdentifier(a.Ident("x"))
	if na != names.FromIdentifier(a.Ident("x")) {
		t.Fatalf("identifier names must be stable within a context")
	}
}
