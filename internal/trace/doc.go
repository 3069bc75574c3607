// Package trace provides the tracing subsystem of the lacon tools.
//
// It is the structured log of a run: spans for loading and lexing files,
// written to stderr or a file as text or NDJSON.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	lacon tokenize --trace=- --trace-level=detail ./config
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only failures
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Per-file events
//   - LevelDebug: Everything
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//
//	ctx, span := trace.Start(ctx, trace.ScopeFile, "lex", file.Path)
//	span.AddTokens(len(toks), len(errs))
//	span.End("")
package trace
