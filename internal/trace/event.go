package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of a logical operation.
	KindSpanBegin Kind = iota + 1 // span start
	// KindSpanEnd marks the end of a logical operation.
	KindSpanEnd // span end
	// KindPoint represents an instant event.
	KindPoint // instant event
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity level of the event.
// Lower numeric values represent higher-level/coarser events.
type Scope uint8

const (
	// ScopeDriver is a whole CLI command.
	ScopeDriver Scope = iota + 1
	// ScopePass is one stage over all inputs (load, lex, format).
	ScopePass
	// ScopeFile is per-file work inside a pass.
	ScopeFile
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopePass:
		return "pass"
	case ScopeFile:
		return "file"
	default:
		return "unknown"
	}
}

// Stats are the counters a span reports when it ends.
type Stats struct {
	Files  int `json:"files,omitempty"`
	Tokens int `json:"tokens"`
	Errors int `json:"errors"`
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time // wall-clock timestamp
	Seq      uint64    // global sequence number (monotonic)
	Kind     Kind      // event kind
	Scope    Scope     // granularity level
	SpanID   uint64    // unique span identifier, 0 for points
	ParentID uint64    // parent span (0 if root)
	Name     string    // e.g. "lex", "tokenize_dir"
	Path     string    // file or directory the span works on
	Detail   string    // optional detail message
	Stats    *Stats    // end events only
}
