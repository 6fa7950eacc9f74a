package script

import (
	"unicode"
	"unicode/utf8"

	"declname/internal/diag"
	"declname/internal/source"
)

// Lexer splits a name script into tokens. Newlines are significant: every
// statement occupies one line. '#' and '//' start comments.
type Lexer struct {
	file   *source.File
	cursor Cursor
	r      diag.Reporter
}

func NewLexer(file *source.File, r diag.Reporter) *Lexer {
	return &Lexer{file: file, cursor: NewCursor(file), r: r}
}

// Next returns the next token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() Token {
	lx.skipBlanks()
	start := lx.cursor.Off
	if lx.cursor.EOF() {
		return Token{Kind: EOF, Span: lx.cursor.SpanFrom(start)}
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '\n':
		lx.cursor.Bump()
		return lx.tok(Newline, start)
	case isIdentStart(ch):
		lx.scanIdent()
		return lx.tok(Ident, start)
	case ch >= utf8.RuneSelf:
		if r, _ := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:]); unicode.IsLetter(r) {
			lx.scanIdent()
			return lx.tok(Ident, start)
		}
	case isDigit(ch):
		for isDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.tok(Number, start)
	case ch == '$':
		lx.cursor.Bump()
		if !isIdentStart(lx.cursor.Peek()) {
			break
		}
		nameStart := lx.cursor.Off
		lx.scanIdent()
		tok := lx.tok(Ref, start)
		tok.Text = string(lx.file.Content[nameStart:lx.cursor.Off])
		return tok
	case ch == '.':
		lx.cursor.Bump()
		if lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) == '.' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.tok(Ellipsis, start)
		}
		return lx.tok(Dot, start)
	default:
		if k, ok := punct[ch]; ok {
			lx.cursor.Bump()
			return lx.tok(k, start)
		}
	}

	// неизвестный символ: съедаем целую руну
	_, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	for range size {
		lx.cursor.Bump()
	}
	tok := lx.tok(Invalid, start)
	diag.ReportError(lx.r, diag.ScrUnknownChar, tok.Span, "unknown character "+quote(tok.Text)).Emit()
	return tok
}

// Raw returns the next whitespace-delimited word verbatim. Operator
// spellings and selectors are read this way, so "->*" or "insert:at:" need
// no token kinds of their own. It returns a Newline or EOF token when the
// line has no more words.
func (lx *Lexer) Raw() Token {
	lx.skipBlanks()
	start := lx.cursor.Off
	if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
		return lx.Next()
	}
	for !lx.cursor.EOF() && !isBlank(lx.cursor.Peek()) && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return lx.tok(Raw, start)
}

var punct = map[byte]Kind{
	',': Comma,
	'(': LParen,
	')': RParen,
	'<': Lt,
	'>': Gt,
	'*': Star,
	'&': Amp,
	'=': Assign,
}

func (lx *Lexer) tok(k Kind, start uint32) Token {
	sp := lx.cursor.SpanFrom(start)
	return Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) skipBlanks() {
	for !lx.cursor.EOF() {
		switch ch := lx.cursor.Peek(); {
		case isBlank(ch):
			lx.cursor.Bump()
		case ch == '#', ch == '/' && lx.cursor.PeekAt(1) == '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}

// scanIdent reads [A-Za-z_][A-Za-z0-9_]* and letters beyond ASCII; a '-'
// followed by a letter continues the word, as in "subst-pack".
func (lx *Lexer) scanIdent() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case isIdentStart(ch) || isDigit(ch):
			lx.cursor.Bump()
		case ch == '-' && isIdentStart(lx.cursor.PeekAt(1)):
			lx.cursor.Bump()
		case ch >= utf8.RuneSelf:
			r, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return
			}
			for range size {
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isBlank(ch byte) bool { return ch == ' ' || ch == '\t' || ch == '\r' }

func quote(s string) string { return "'" + s + "'" }
