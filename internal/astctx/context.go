// Package astctx bundles the per-compilation tables that names depend on.
//
// A Context is driven by one goroutine at a time. Independent contexts share
// nothing and may run in parallel.
package astctx

import (
	"context"
	"strconv"

	"declname/internal/ident"
	"declname/internal/names"
	"declname/internal/selector"
	"declname/internal/source"
	"declname/internal/trace"
	"declname/internal/types"
)

// Context owns the record storage of one compilation unit.
type Context struct {
	Files     *source.FileSet
	Strings   *source.Interner
	Idents    *ident.Table
	Selectors *selector.Table
	Types     *types.Interner
	Names     *names.Table

	arena  *names.Arena
	span   *trace.Span
	closed bool
}

// New creates a context. The tracer of ctx follows the context from New to
// Close as one pass-scope span.
func New(ctx context.Context) *Context {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "astctx", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, span)

	strs := source.NewInterner()
	a := names.NewArena()
	return &Context{
		Files:     source.NewFileSet(),
		Strings:   strs,
		Idents:    ident.NewTable(strs),
		Selectors: selector.NewTable(),
		Types:     types.NewInterner(),
		Names:     names.NewTable(ctx, a),
		arena:     a,
		span:      span,
	}
}

// Ident is shorthand for Idents.Get.
func (c *Context) Ident(text string) *ident.Info { return c.Idents.Get(text) }

// Records reports how many name records the context owns.
func (c *Context) Records() int { return c.arena.Len() }

// Close releases the lookup tables. Names created from the context stay
// printable and comparable; creating new ones panics.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.Names.Release()
	c.span.WithExtra("records", strconv.Itoa(c.Records())).End("")
}
