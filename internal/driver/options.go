package driver

import (
	"lacon/internal/diag"
	"lacon/internal/lexer"
	"lacon/internal/source"
)

// DefaultExtension is the source file extension picked up in directory mode.
const DefaultExtension = ".lacon"

// Options configures a tokenize run.
type Options struct {
	KeepDocComments bool
	KeepTrivia      bool
	MaxTokenLength  int
	// MaxDiagnostics bounds each file's bag; 0 means unlimited.
	MaxDiagnostics int
	// Jobs bounds the number of files lexed at once; <= 0 means GOMAXPROCS.
	Jobs int
	// Extensions lists the file extensions collected by TokenizeDir.
	Extensions []string
	// Timings appends an ObsTimings diagnostic with per-phase durations.
	Timings bool
	// Observer receives phase boundaries; may be nil.
	Observer PhaseObserver
	// Progress receives per-file events in directory mode; may be nil.
	Progress ProgressSink
	// Reporter additionally receives every diagnostic of every file. In
	// directory mode it is called from several goroutines under a lock.
	Reporter diag.Reporter
}

func (o Options) lexerOptions(r diag.Reporter) lexer.Options {
	return lexer.Options{
		Reporter:        r,
		KeepDocComments: o.KeepDocComments,
		KeepTrivia:      o.KeepTrivia,
		MaxTokenLength:  o.MaxTokenLength,
	}
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return []string{DefaultExtension}
	}
	return o.Extensions
}

func (o Options) notify(ev PhaseEvent) {
	if o.Observer != nil {
		o.Observer(ev)
	}
}

// teeReporter forwards a diagnostic to every non-nil reporter.
type teeReporter []diag.Reporter

func (t teeReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	for _, r := range t {
		if r != nil {
			r.Report(code, sev, primary, msg, notes)
		}
	}
}

// fileReporter builds the reporter chain of one file: duplicates are
// dropped before reaching the file's bag and the shared sink.
func (o Options) fileReporter(bag *diag.Bag, shared diag.Reporter) diag.Reporter {
	return diag.NewDedupReporter(teeReporter{diag.BagReporter{Bag: bag}, shared})
}
