package trace

import (
	"context"
	"sync/atomic"
	"time"
)

var (
	seq     atomic.Uint64
	spanIDs atomic.Uint64
)

func nextSeq() uint64 {
	return seq.Add(1)
}

// Span is one traced unit of work: a command, a directory pass or the
// lexing of a single file. The counters are reported on the end event.
type Span struct {
	tracer  Tracer
	id      uint64
	parent  uint64
	scope   Scope
	name    string
	path    string
	started time.Time
	stats   Stats
}

// Start opens a span under the tracer and the innermost span carried by
// ctx. The returned context nests further spans under the new one.
// When the tracer filters scope out the span is inert and ctx is returned
// unchanged.
func Start(ctx context.Context, scope Scope, name, path string) (context.Context, *Span) {
	t := FromContext(ctx)
	if !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return ctx, &Span{}
	}

	s := &Span{
		tracer:  t,
		id:      spanIDs.Add(1),
		scope:   scope,
		name:    name,
		path:    path,
		started: time.Now(),
	}
	if parent := SpanFromContext(ctx); parent != nil {
		s.parent = parent.id
	}
	t.Emit(s.event(KindSpanBegin, s.started, ""))
	return withSpan(ctx, s), s
}

// AddFiles counts files handled under the span.
func (s *Span) AddFiles(n int) {
	if s.active() {
		s.stats.Files += n
	}
}

// AddTokens counts produced tokens and lexical errors.
func (s *Span) AddTokens(tokens, errors int) {
	if s.active() {
		s.stats.Tokens += tokens
		s.stats.Errors += errors
	}
}

// End emits the end event with the collected counters and returns the
// span duration. Inert spans return 0.
func (s *Span) End(detail string) time.Duration {
	if !s.active() {
		return 0
	}
	now := time.Now()
	s.tracer.Emit(s.event(KindSpanEnd, now, detail))
	return now.Sub(s.started)
}

// ID returns the span ID, 0 for an inert span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

func (s *Span) active() bool {
	return s != nil && s.tracer != nil && s.tracer.Enabled()
}

func (s *Span) event(kind Kind, at time.Time, detail string) *Event {
	ev := &Event{
		Time:     at,
		Seq:      nextSeq(),
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		Name:     s.name,
		Path:     s.path,
		Detail:   detail,
	}
	if kind == KindSpanEnd && s.stats != (Stats{}) {
		stats := s.stats
		ev.Stats = &stats
	}
	return ev
}
