package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Разбор скрипта имён
	ScrInfo             Code = 1000
	ScrUnknownChar      Code = 1001
	ScrUnexpectedToken  Code = 1002
	ScrUnknownStatement Code = 1003
	ScrUnknownOperator  Code = 1004
	ScrExpectType       Code = 1005
	ScrExpectNumber     Code = 1006
	ScrUnterminatedArgs Code = 1007
	ScrBadSelector      Code = 1008
	ScrDuplicateLabel   Code = 1009

	// Построение имён
	NameInfo              Code = 2000
	NameUnknownLabel      Code = 2001
	NameNotAParameter     Code = 2002
	NameNotCanonical      Code = 2003
	NameQualifiedSpecial  Code = 2004
	NameNotAPack          Code = 2005
	NameNotPackType       Code = 2006
	NameUnknownFunction   Code = 2008
	NameDuplicateFunction Code = 2009

	// Назначенные аргументы
	DesInfo              Code = 3000
	DesDuplicate         Code = 3001
	DesNoSuchParameter   Code = 3002
	DesNotDesignatable   Code = 3003
	DesMultipleArguments Code = 3004
	DesMissingArgument   Code = 3005
	DesIndexOutOfBounds  Code = 3006

	// I/O
	IOLoadFileError Code = 4001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:           "Unknown error",
		ScrInfo:               "Script information",
		ScrUnknownChar:        "Unknown character",
		ScrUnexpectedToken:    "Unexpected token",
		ScrUnknownStatement:   "Unknown statement",
		ScrUnknownOperator:    "Unknown operator spelling",
		ScrExpectType:         "Expected a type",
		ScrExpectNumber:       "Expected a number",
		ScrUnterminatedArgs:   "Unterminated argument list",
		ScrBadSelector:        "Malformed selector",
		ScrDuplicateLabel:     "Duplicate label",
		NameInfo:              "Name information",
		NameUnknownLabel:      "Unknown label",
		NameNotAParameter:     "Name is not a name parameter",
		NameNotCanonical:      "Replacement name is not canonical",
		NameQualifiedSpecial:  "Qualified constructor or destructor type",
		NameNotAPack:          "Name is not a pack substitution",
		NameNotPackType:       "Pack expansion without a pack",
		NameUnknownFunction:   "Unknown function",
		NameDuplicateFunction: "Duplicate function",
		DesInfo:               "Designator information",
		DesDuplicate:          "Duplicate designator",
		DesNoSuchParameter:    "No designatable parameter with that name",
		DesNotDesignatable:    "Parameter is not designatable",
		DesMultipleArguments:  "Multiple arguments for one parameter",
		DesMissingArgument:    "Missing argument",
		DesIndexOutOfBounds:   "Argument index out of bounds",
		IOLoadFileError:       "I/O load file error",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SCR%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("NAM%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("DES%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
