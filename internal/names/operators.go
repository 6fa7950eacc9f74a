package names

import "fmt"

// Operator enumerates the overloadable C++ operators.
type Operator uint8

const (
	OpNone Operator = iota
	OpNew
	OpDelete
	OpArrayNew
	OpArrayDelete
	OpPlus
	OpMinus
	OpStar
	OpSlash
	OpPercent
	OpCaret
	OpAmp
	OpPipe
	OpTilde
	OpExclaim
	OpEqual
	OpLess
	OpGreater
	OpPlusEqual
	OpMinusEqual
	OpStarEqual
	OpSlashEqual
	OpPercentEqual
	OpCaretEqual
	OpAmpEqual
	OpPipeEqual
	OpLessLess
	OpGreaterGreater
	OpLessLessEqual
	OpGreaterGreaterEqual
	OpEqualEqual
	OpExclaimEqual
	OpLessEqual
	OpGreaterEqual
	OpSpaceship
	OpAmpAmp
	OpPipePipe
	OpPlusPlus
	OpMinusMinus
	OpComma
	OpArrowStar
	OpArrow
	OpCall
	OpSubscript
	OpConditional
	OpCoawait

	// NumOperators bounds the operator array of a Table.
	NumOperators
)

var operatorSpellings = [NumOperators]string{
	OpNone:                "",
	OpNew:                 "new",
	OpDelete:              "delete",
	OpArrayNew:            "new[]",
	OpArrayDelete:         "delete[]",
	OpPlus:                "+",
	OpMinus:               "-",
	OpStar:                "*",
	OpSlash:               "/",
	OpPercent:             "%",
	OpCaret:               "^",
	OpAmp:                 "&",
	OpPipe:                "|",
	OpTilde:               "~",
	OpExclaim:             "!",
	OpEqual:               "=",
	OpLess:                "<",
	OpGreater:             ">",
	OpPlusEqual:           "+=",
	OpMinusEqual:          "-=",
	OpStarEqual:           "*=",
	OpSlashEqual:          "/=",
	OpPercentEqual:        "%=",
	OpCaretEqual:          "^=",
	OpAmpEqual:            "&=",
	OpPipeEqual:           "|=",
	OpLessLess:            "<<",
	OpGreaterGreater:      ">>",
	OpLessLessEqual:       "<<=",
	OpGreaterGreaterEqual: ">>=",
	OpEqualEqual:          "==",
	OpExclaimEqual:        "!=",
	OpLessEqual:           "<=",
	OpGreaterEqual:        ">=",
	OpSpaceship:           "<=>",
	OpAmpAmp:              "&&",
	OpPipePipe:            "||",
	OpPlusPlus:            "++",
	OpMinusMinus:          "--",
	OpComma:               ",",
	OpArrowStar:           "->*",
	OpArrow:               "->",
	OpCall:                "()",
	OpSubscript:           "[]",
	OpConditional:         "?",
	OpCoawait:             "co_await",
}

// Spelling returns the source spelling, "" for OpNone.
func (op Operator) Spelling() string {
	if op >= NumOperators {
		return ""
	}
	return operatorSpellings[op]
}

func (op Operator) String() string {
	if s := op.Spelling(); s != "" {
		return s
	}
	return fmt.Sprintf("Operator(%d)", op)
}

// ParseOperator maps a spelling such as "+=" or "new[]" to its Operator.
func ParseOperator(spelling string) (Operator, bool) {
	for op := OpNone + 1; op < NumOperators; op++ {
		if operatorSpellings[op] == spelling {
			return op, true
		}
	}
	return OpNone, false
}
