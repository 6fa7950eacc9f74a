// Package diag defines the diagnostic model shared by the name-script
// evaluator and the designated-argument checker.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code: compact numeric identifier (see codes.go) with stable string form.
//   - Message: human oriented text; keep it short and actionable.
//   - Primary span: the source.Span pointing to the issue.
//   - Notes: optional secondary spans/messages for additional context.
//
// Notes should be used sparingly: each note must add new context (e.g.
// "previous designator is here") rather than repeating the message.
//
// # Emitting diagnostics
//
// Producers use a diag.Reporter to decouple emission from storage, usually
// through a ReportBuilder (ReportError/ReportWarning/ReportInfo) chained with
// WithNote before Emit. BagReporter aggregates diagnostics into a Bag, which
// supports sorting and deduplication. Rendering lives in internal/diagfmt.
//
// Misuse of the name tables is not a diagnostic: it panics in package names.
// Diagnostics are reserved for problems in user input.
package diag
