package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"lacon/internal/source"
)

// Cursor представляет собой позицию в файле. Читает руны UTF-8 и ведёт
// строку/колонку параллельно с байтовым смещением.
type Cursor struct {
	File *source.File
	Off  uint32
	Pos  source.Position
	// Limit is the exclusive upper bound for Off.
	Limit uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   0,
		Pos:   source.StartPosition(),
		Limit: limit,
	}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// decode читает руну со смещения off; за пределами файла возвращает 0, 0.
func (c *Cursor) decode(off uint32) (rune, int) {
	if off >= c.Limit {
		return 0, 0
	}
	b := c.File.Content[off]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(c.File.Content[off:c.Limit])
}

// Peek читает текущую руну, если есть, иначе возвращает 0
func (c *Cursor) Peek() rune {
	r, _ := c.decode(c.Off)
	return r
}

// PeekN возвращает руну на n позиций вперёд (PeekN(0) == Peek()).
func (c *Cursor) PeekN(n int) rune {
	off := c.Off
	for range n {
		_, sz := c.decode(off)
		if sz == 0 {
			return 0
		}
		off += uint32(sz)
	}
	r, _ := c.decode(off)
	return r
}

// Peek3 возвращает текущую и две следующие руны (0 за концом файла).
func (c *Cursor) Peek3() (r0, r1, r2 rune) {
	r0, s0 := c.decode(c.Off)
	r1, s1 := c.decode(c.Off + uint32(s0))
	r2, _ = c.decode(c.Off + uint32(s0) + uint32(s1))
	return r0, r1, r2
}

// Bump перемещает курсор на одну руну вперед и возвращает её
func (c *Cursor) Bump() rune {
	r, sz := c.decode(c.Off)
	if sz == 0 {
		return 0
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bump overflow: %w", err))
	}
	c.Off += usz
	c.Pos = c.Pos.Advance(r, sz)
	return r
}

// BumpN съедает n рун.
func (c *Cursor) BumpN(n int) {
	for range n {
		c.Bump()
	}
}

// Eat consumes the next rune if it matches r.
func (c *Cursor) Eat(r rune) bool {
	if !c.EOF() && c.Peek() == r {
		c.Bump()
		return true
	}
	return false
}

// Rest returns the unread bytes.
func (c *Cursor) Rest() []byte {
	return c.File.Content[c.Off:c.Limit]
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark struct {
	Off uint32
	Pos source.Position
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Pos: c.Pos}
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: m.Off,
		End:   c.Off,
	}
}

// TextFrom returns the source slice between m and the cursor.
func (c *Cursor) TextFrom(m Mark) string {
	return string(c.File.Content[m.Off:c.Off])
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = m.Off
	c.Pos = m.Pos
}
