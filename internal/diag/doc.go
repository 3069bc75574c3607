// Package diag defines the diagnostic model shared by the lexer, the driver
// and the CLI.
//
// Diagnostic is the central record: Severity, a numeric Code with a stable
// string form (LEX1002), a short Message, the Primary span and optional
// Notes pointing at related spans.
//
// Producers never format or print. They emit through a Reporter;
// BagReporter collects into a Bag which supports sorting, deduplication and
// a limit on the number of stored entries. Rendering lives in
// internal/diagfmt, apart from the one-line golden/short forms in golden.go
// used by tests and the `--diagnostics short` CLI mode.
//
// Lexical problems are never fatal. The lexer records them, reports them and
// keeps producing tokens; whether an error blocks further processing is the
// caller's decision (see Bag.HasErrors).
package diag
