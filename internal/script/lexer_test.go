package script

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"declname/internal/diag"
	"declname/internal/source"
)

func newFile(src string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("test.names", []byte(src)))
}

// lexAll tokenizes src the way the parser does: the word after "operator"
// and "selector" is read raw.
func lexAll(src string, r diag.Reporter) []Token {
	lx := NewLexer(newFile(src), r)
	var out []Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == EOF {
			return out
		}
		if tok.Is("operator") || tok.Is("selector") {
			out = append(out, lx.Raw())
		}
	}
}

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexerTokens(t *testing.T) {
	toks := lexAll("a = operator ->* # comment\n$p... .x, (<>*&) 42\n", nil)
	want := []Kind{
		Ident, Assign, Ident, Raw, Newline,
		Ref, Ellipsis, Dot, Ident, Comma, LParen, Lt, Gt, Star, Amp, RParen, Number, Newline,
		EOF,
	}
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Fatalf("token kinds mismatch (-want +got):\n%s", diff)
	}
	if toks[3].Text != "->*" {
		t.Fatalf("raw operator: want %q, got %q", "->*", toks[3].Text)
	}
	if toks[5].Text != "p" {
		t.Fatalf("ref text: want %q, got %q", "p", toks[5].Text)
	}
	if sp := toks[3].Span; sp.Start != 13 || sp.End != 16 {
		t.Fatalf("raw span: want 13-16, got %d-%d", sp.Start, sp.End)
	}
}

func TestLexerHyphenatedKeyword(t *testing.T) {
	toks := lexAll("subst-pack $p-", nil)
	if toks[0].Kind != Ident || toks[0].Text != "subst-pack" {
		t.Fatalf("want single identifier subst-pack, got %s %q", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Kind != Ref || toks[1].Text != "p" {
		t.Fatalf("want ref p, got %s %q", toks[1].Kind, toks[1].Text)
	}
}

func TestLexerRawAtEndOfLine(t *testing.T) {
	toks := lexAll("operator\nident x", nil)
	if toks[1].Kind != Newline {
		t.Fatalf("raw word at end of line: want %s, got %s", Newline, toks[1].Kind)
	}
	toks = lexAll("selector // nothing", nil)
	if toks[1].Kind != EOF {
		t.Fatalf("raw word before comment: want %s, got %s", EOF, toks[1].Kind)
	}
}

func TestLexerUnknownCharacter(t *testing.T) {
	bag := diag.NewBag(10)
	toks := lexAll("ident @ ё", diag.BagReporter{Bag: bag})
	if toks[1].Kind != Invalid {
		t.Fatalf("want invalid token for '@', got %s", toks[1].Kind)
	}
	if toks[2].Kind != Ident || toks[2].Text != "ё" {
		t.Fatalf("want identifier ё, got %s %q", toks[2].Kind, toks[2].Text)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.ScrUnknownChar {
		t.Fatalf("want one %s diagnostic, got %v", diag.ScrUnknownChar.ID(), bag.Items())
	}
}
