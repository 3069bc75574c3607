package source

import "fmt"

// Position is a point in the source as the scanner sees it.
// Line and Col are 1-based, Col counts runes; Offset is a byte offset
// into File.Content.
type Position struct {
	Line   uint32
	Col    uint32
	Offset uint32
}

// StartPosition returns the position of the first rune of a file.
func StartPosition() Position {
	return Position{Line: 1, Col: 1, Offset: 0}
}

// Advance returns the position after consuming r, which occupies size bytes.
func (p Position) Advance(r rune, size int) Position {
	if size <= 0 {
		return p
	}
	p.Offset += uint32(size)
	if r == '\n' {
		p.Line++
		p.Col = 1
		return p
	}
	p.Col++
	return p
}

// Before reports whether p is strictly before other.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
