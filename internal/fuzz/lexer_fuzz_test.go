package fuzztests

import (
	"testing"

	"declname/internal/diag"
	"declname/internal/script"
	"declname/internal/source"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.names", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		lx := script.NewLexer(file, diag.BagReporter{Bag: bag})
		// каждый токен продвигает курсор, иначе лексер зациклится
		for i := 0; i <= len(input)+1; i++ {
			tok := lx.Next()
			if tok.Kind == script.EOF {
				return
			}
			if tok.Span.End > uint32(len(input)) {
				t.Fatalf("token %v ends beyond input of %d bytes", tok, len(input))
			}
		}
		t.Fatalf("lexer did not reach EOF on %d bytes", len(input))
	})
}
