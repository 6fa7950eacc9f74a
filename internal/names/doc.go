// Package names implements declaration names: the compact, comparable handle
// that identifies "the name of a declared entity" throughout the front end.
//
// A Name is one of thirteen kinds. Identifiers and zero/one-argument selectors
// are stored inline; every other kind references an extra record owned by the
// Table of the compilation context. The Table uniques those records, so two
// names are structurally equal exactly when they are ==. That identity fact
// is what lookup, overload resolution and redeclaration checks rely on.
//
// # Uniquing
//
// Callers never build records directly. Each Table factory hashes the
// structural key of the requested name, returns the existing record when one
// is present and otherwise allocates a record in the context arena:
//
//	ctor := tab.Constructor(widget)
//	ctor == tab.Constructor(widget) // true
//
// # Named parameters
//
// A TemplatedParam name stands for a name parameter at (depth, index). The
// canonical record for a position carries no declaration; aliases created for
// a particular declaration point at it through CanonicalForm. Substitution
// replaces a parameter by one canonical name (SubstTemplatedParam) or by a
// pack of canonical names (SubstTemplatedParamPack). A substitution made
// against an alias knows the equivalent substitution made against the
// canonical parameter, which keeps the substitution graph acyclic.
//
// # Contracts
//
// Misuse (a kind-mismatched Must accessor, a qualified constructor type, a
// non-canonical replacement, front-end info on a kind without a slot) is a
// defect in the caller and panics. Everything else is total: every name has
// a comparison result, a printed form and defined dependence predicates.
package names
