// Package trace is the structured event log of the declname tools.
//
// Events are grouped by scope, from coarse to fine:
//
//   - ScopeDriver: CLI commands
//   - ScopePass: per-file passes (load, parse, evaluate, render)
//   - ScopeTable: uniquing-table lifecycle (create, release, statistics)
//   - ScopeRecord: individual record allocations inside a table
//
// Verbosity is controlled by Level: phase shows driver and pass spans, detail
// adds table events, debug adds every record allocation.
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace
