package script

import (
	"fmt"

	"declname/internal/source"
)

// Kind represents the category of a script token.
type Kind uint8

const (
	Invalid Kind = iota
	EOF
	Newline
	Ident    // name, keyword or builtin type
	Number   // decimal integer
	Ref      // $label, Text holds the label
	Raw      // whitespace-delimited word after operator/selector
	Dot      // .
	Ellipsis // ...
	Comma    // ,
	LParen   // (
	RParen   // )
	Lt       // <
	Gt       // >
	Star     // *
	Amp      // &
	Assign   // =
)

var kindNames = [...]string{
	Invalid:  "invalid token",
	EOF:      "end of file",
	Newline:  "end of line",
	Ident:    "identifier",
	Number:   "number",
	Ref:      "label reference",
	Raw:      "word",
	Dot:      "'.'",
	Ellipsis: "'...'",
	Comma:    "','",
	LParen:   "'('",
	RParen:   "')'",
	Lt:       "'<'",
	Gt:       "'>'",
	Star:     "'*'",
	Amp:      "'&'",
	Assign:   "'='",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Token is a single script token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// Is reports whether the token is the identifier word.
func (t Token) Is(word string) bool {
	return t.Kind == Ident && t.Text == word
}
