package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"lacon/internal/source"
	"lacon/internal/token"
)

// CheckTokenInvariants runs the stream invariants every lexer run must keep:
// 1) the first token is BOF and the last one is the only EOF
// 2) span starts and positions never go backwards
// 3) every span is well formed (Start <= End)
func CheckTokenInvariants(tokens []token.Token) error {
	if len(tokens) < 2 {
		return fmt.Errorf("stream too short: %d tokens", len(tokens))
	}
	if tokens[0].Kind != token.BOF {
		return fmt.Errorf("first token is %v, want BOF", tokens[0].Kind)
	}
	last := len(tokens) - 1
	if tokens[last].Kind != token.EOF {
		return fmt.Errorf("last token is %v, want EOF", tokens[last].Kind)
	}

	prev := tokens[0]
	for i, tok := range tokens {
		if tok.Kind == token.EOF && i != last {
			return fmt.Errorf("EOF at index %d before the end", i)
		}
		if tok.Kind == token.BOF && i != 0 {
			return fmt.Errorf("BOF at index %d", i)
		}
		if tok.Span.End < tok.Span.Start {
			return fmt.Errorf("token %d (%v) has inverted span %v", i, tok.Kind, tok.Span)
		}
		if tok.Span.Start < prev.Span.Start {
			return fmt.Errorf("token %d (%v) starts at %d before previous %d", i, tok.Kind, tok.Span.Start, prev.Span.Start)
		}
		if tok.Pos.Offset < prev.Pos.Offset {
			return fmt.Errorf("token %d (%v) position %s precedes %s", i, tok.Kind, tok.Pos, prev.Pos)
		}
		prev = tok
	}
	return nil
}

// CheckTokenText verifies that each token's Text is the exact source slice
// under its span and that no span leaves the file.
func CheckTokenText(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	for i, tok := range tokens {
		if tok.Span.File != sf.ID {
			return fmt.Errorf("token %d span file mismatch: got=%d want=%d", i, tok.Span.File, sf.ID)
		}
		if tok.Span.End > lenContent {
			return fmt.Errorf("token %d span %v beyond content (%d bytes)", i, tok.Span, lenContent)
		}
		if got := string(sf.Content[tok.Span.Start:tok.Span.End]); got != tok.Text {
			return fmt.Errorf("token %d (%v) text %q differs from source %q", i, tok.Kind, tok.Text, got)
		}
	}
	return nil
}
