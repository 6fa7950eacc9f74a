package fuzztests

import (
	"context"
	"testing"
	"time"

	"declname/internal/astctx"
	"declname/internal/diag"
	"declname/internal/script"
	"declname/internal/source"
	"declname/internal/testkit"
)

// runTimeout is the maximum time allowed for evaluating a single input.
// A longer run points at a recovery loop that never advances.
const runTimeout = 5 * time.Second

func FuzzParserSpans(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.names", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(128)
		s := script.Parse(file, diag.BagReporter{Bag: bag})
		if err := testkit.CheckSpanInvariants(s, file); err != nil {
			t.Fatalf("span invariants: %v\ninput: %q", err, truncateForLog(input, 200))
		}
	})
}

// FuzzRunNoHang evaluates arbitrary scripts in a fresh context and fails when
// a run panics or does not finish in time.
func FuzzRunNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Add([]byte("a = subst $a $a\n"))
	f.Add([]byte("p = param 4294967295 4294967295 pack as P\ns = subst-pack $p\nexpand $s\n"))
	f.Add([]byte("c = ctor Vec<Vec<Vec<$T...>>>\n"))
	f.Add([]byte("call f(.a = .b, , 1\nfunc f(.a=, .a)\n"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		done := make(chan any, 1)
		go func() {
			defer func() { done <- recover() }()

			c := astctx.New(context.Background())
			defer c.Close()
			id := c.Files.AddVirtual("fuzz.names", input)
			bag := diag.NewBag(128)
			script.Run(ctx, c, id, diag.BagReporter{Bag: bag})
		}()

		select {
		case p := <-done:
			if p != nil {
				t.Fatalf("run panicked: %v\ninput: %q", p, truncateForLog(input, 200))
			}
		case <-ctx.Done():
			t.Fatalf("run hang detected: evaluation took longer than %v\ninput (%d bytes): %q",
				runTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
