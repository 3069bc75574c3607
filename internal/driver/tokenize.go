package driver

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"lacon/internal/diag"
	"lacon/internal/lexer"
	"lacon/internal/observ"
	"lacon/internal/source"
	"lacon/internal/token"
	"lacon/internal/trace"
)

// StdinName is the virtual path used for source read from standard input.
const StdinName = "<stdin>"

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Errors  []lexer.Error
	Bag     *diag.Bag
	Timing  observ.Report
}

// Tokenize loads path and lexes it from BOF to EOF. Lexical errors never
// fail the call; they land in the result bag. Only I/O errors are returned.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	timer := observ.NewTimer()

	opts.notify(PhaseEvent{Name: "load", Status: PhaseStart})
	started := time.Now()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	elapsed := time.Since(started)
	timer.Add("load", elapsed, path)
	opts.notify(PhaseEvent{Name: "load", Status: PhaseEnd, Elapsed: elapsed})

	return tokenizeLoaded(ctx, fs, fs.Get(fileID), timer, opts), nil
}

// TokenizeSource lexes an in-memory buffer registered under name.
func TokenizeSource(ctx context.Context, name string, content []byte, opts Options) *TokenizeResult {
	if name == "" {
		name = StdinName
	}
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeLoaded(ctx, fs, fs.Get(fileID), observ.NewTimer(), opts)
}

func tokenizeLoaded(ctx context.Context, fs *source.FileSet, file *source.File, timer *observ.Timer, opts Options) *TokenizeResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	toks, errs := lexFile(ctx, file, bag, opts.Reporter, timer, opts)

	res := &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  toks,
		Errors:  errs,
		Bag:     bag,
		Timing:  timer.Report(),
	}
	if opts.Timings {
		appendTimingDiagnostic(bag, timingPayload{
			Kind:    "tokenize",
			Path:    file.Path,
			TotalMS: res.Timing.TotalMS,
			Phases:  res.Timing.Phases,
		})
	}
	return res
}

// lexFile runs one lexer over file and routes its diagnostics into bag and
// the optional shared reporter.
func lexFile(ctx context.Context, file *source.File, bag *diag.Bag, shared diag.Reporter, timer *observ.Timer, opts Options) ([]token.Token, []lexer.Error) {
	_, span := trace.Start(ctx, trace.ScopeFile, "lex", file.Path)
	opts.notify(PhaseEvent{Name: "lex", Status: PhaseStart})

	started := time.Now()
	toks, errs := lexer.Tokenize(file, opts.lexerOptions(opts.fileReporter(bag, shared)))
	elapsed := time.Since(started)
	note := strconv.Itoa(len(toks)) + " tokens"
	if timer != nil {
		timer.Add("lex", elapsed, note)
	}

	span.AddTokens(len(toks), len(errs))
	span.End("")
	opts.notify(PhaseEvent{Name: "lex", Status: PhaseEnd, Elapsed: elapsed})
	return toks, errs
}
