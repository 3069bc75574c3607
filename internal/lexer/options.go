package lexer

import (
	"lacon/internal/diag"
	"lacon/internal/source"
	"lacon/internal/unit"
)

// DefaultMaxTokenLength is used when Options.MaxTokenLength is zero.
const DefaultMaxTokenLength = 1 << 20

type Options struct {
	// Reporter получает диагностики; может быть nil, ошибки всё равно
	// копятся в Lexer.Errors().
	Reporter diag.Reporter
	// KeepDocComments emits /// lines as DocComment tokens instead of
	// skipping them.
	KeepDocComments bool
	// KeepTrivia attaches skipped comments to the next token as Leading.
	KeepTrivia bool
	// MaxTokenLength bounds a single lexeme in bytes; longer tokens are
	// still produced but reported.
	MaxTokenLength int
	// Units overrides the suffix tree; nil means unit.DefaultTree().
	Units *unit.Tree
}

func (o Options) maxTokenLength() int {
	if o.MaxTokenLength > 0 {
		return o.MaxTokenLength
	}
	return DefaultMaxTokenLength
}

func (o Options) units() *unit.Tree {
	if o.Units != nil {
		return o.Units
	}
	return unit.DefaultTree()
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
