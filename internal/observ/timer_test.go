package observ

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func fakeClock(step time.Duration) func() time.Time {
	at := time.Unix(0, 0)
	return func() time.Time {
		at = at.Add(step)
		return at
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(2 * time.Millisecond)

	load := tm.Begin("load")
	tm.End(load, "")
	eval := tm.Begin("eval")
	tm.End(eval, "12 names")
	tm.End(42, "ignored")

	want := Report{
		TotalMS: 4,
		Stages: []StageReport{
			{Name: "load", DurationMS: 2},
			{Name: "eval", DurationMS: 2, Note: "12 names"},
		},
	}
	if diff := cmp.Diff(want, tm.Report()); diff != "" {
		t.Fatalf("report (-want +got):\n%s", diff)
	}

	sum := tm.Summary("a.names")
	for _, part := range []string{"timings: a.names", "eval", "// 12 names", "total"} {
		if !strings.Contains(sum, part) {
			t.Fatalf("summary misses %q:\n%s", part, sum)
		}
	}
}

func TestEmptyTimer(t *testing.T) {
	if got := NewTimer().Report(); got.TotalMS != 0 || got.Stages != nil {
		t.Fatalf("empty timer must report nothing, got %+v", got)
	}
}
