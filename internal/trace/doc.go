// Package trace provides lightweight event tracing for eslex.
//
// Tracing follows the tokenize pipeline: the CLI opens a driver span, the
// driver opens a pass span per file, and the lexer emits a point event per
// token and per error.
//
// # Usage
//
//	eslex tokenize --trace=- --trace-level=debug file.js
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: lexical errors only
//   - LevelPhase: driver and pass boundaries
//   - LevelDetail: per-file events
//   - LevelDebug: everything including per-token events
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "lex", 0)
//	defer span.End("")
package trace
