package names

import (
	"cmp"
	"slices"
	"strings"

	"declname/internal/selector"
	"declname/internal/types"
)

// Compare orders names for deterministic output. Names of different kinds
// order by Kind. Parameter names and single substitutions order by creation
// sequence, which is stable within one Table but carries no meaning across
// runs. Two pack substitutions always compare equal.
func Compare(a, b Name) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case Identifier:
		switch {
		case a.id == nil && b.id == nil:
			return 0
		case a.id == nil:
			return -1
		case b.id == nil:
			return 1
		}
		return strings.Compare(a.id.Name(), b.id.Name())
	case ObjCZeroArgSelector, ObjCOneArgSelector, ObjCMultiArgSelector:
		return selector.Compare(a.sel, b.sel)
	case CXXConstructor, CXXDestructor, CXXConversionFunction:
		return types.Compare(a.AssociatedType(), b.AssociatedType())
	case CXXOperator:
		return cmp.Compare(a.OverloadedOperator(), b.OverloadedOperator())
	case CXXLiteralOperator:
		return strings.Compare(a.LiteralIdentifier().Name(), b.LiteralIdentifier().Name())
	case TemplatedParam, SubstTemplatedParam:
		return cmp.Compare(a.x.sequence(), b.x.sequence())
	default:
		// CXXUsingDirective, SubstTemplatedParamPack
		return 0
	}
}

// Less reports Compare(a, b) < 0.
func Less(a, b Name) bool { return Compare(a, b) < 0 }

// Sort orders names in place; equal names keep their relative order.
func Sort(ns []Name) {
	slices.SortStableFunc(ns, Compare)
}
