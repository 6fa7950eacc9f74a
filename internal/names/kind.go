package names

import "fmt"

// Kind discriminates the forms of a Name. The declaration order is the
// primary key of Compare.
type Kind uint8

const (
	Identifier Kind = iota
	ObjCZeroArgSelector
	ObjCOneArgSelector
	ObjCMultiArgSelector
	CXXConstructor
	CXXDestructor
	CXXConversionFunction
	CXXOperator
	CXXLiteralOperator
	CXXUsingDirective
	TemplatedParam
	SubstTemplatedParam
	SubstTemplatedParamPack
)

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "Identifier"
	case ObjCZeroArgSelector:
		return "ObjCZeroArgSelector"
	case ObjCOneArgSelector:
		return "ObjCOneArgSelector"
	case ObjCMultiArgSelector:
		return "ObjCMultiArgSelector"
	case CXXConstructor:
		return "CXXConstructor"
	case CXXDestructor:
		return "CXXDestructor"
	case CXXConversionFunction:
		return "CXXConversionFunction"
	case CXXOperator:
		return "CXXOperator"
	case CXXLiteralOperator:
		return "CXXLiteralOperator"
	case CXXUsingDirective:
		return "CXXUsingDirective"
	case TemplatedParam:
		return "TemplatedParam"
	case SubstTemplatedParam:
		return "SubstTemplatedParam"
	case SubstTemplatedParamPack:
		return "SubstTemplatedParamPack"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// IsSpecial reports the constructor, destructor and conversion kinds.
func (k Kind) IsSpecial() bool {
	return k >= CXXConstructor && k <= CXXConversionFunction
}

// IsSelector reports the three Objective-C selector kinds.
func (k Kind) IsSelector() bool {
	return k >= ObjCZeroArgSelector && k <= ObjCMultiArgSelector
}
