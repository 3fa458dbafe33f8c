// Package diag defines the diagnostic model shared by the lexer, the driver and the CLI.
//
// A Diagnostic carries a Severity, a numeric Code with a stable string form
// (see codes.go), a short Message and the primary source.Span. Notes add
// secondary context and should be used sparingly.
//
// Producers emit through a Reporter so that storage stays decoupled: the lexer
// calls Reporter.Report directly, higher layers may use ReportError and chain
// WithNote before Emit. BagReporter aggregates into a Bag, which supports
// limits, sorting and deduplication.
//
// Package diag does no formatting or IO; rendering lives in internal/diagfmt.
package diag
