package lexer

import (
	"testing"

	"lacon/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lacon", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	for i, want := range []rune{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("step %d: unexpected EOF", i)
		}
		if got := cursor.Peek(); got != want {
			t.Fatalf("step %d: peek %q, want %q", i, got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("step %d: bump %q, want %q", i, got, want)
		}
	}
	if !cursor.EOF() {
		t.Fatal("expected EOF")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Fatal("reading past EOF must return 0")
	}
	if cursor.Pos.Line != 2 || cursor.Pos.Col != 2 {
		t.Fatalf("expected 2:2 at the end, got %s", cursor.Pos)
	}
}

// TestMultibyteRunes: колонки считаются в рунах, смещения в байтах
func TestMultibyteRunes(t *testing.T) {
	cursor := NewCursor(createFile("µ°x"))
	r0, r1, r2 := cursor.Peek3()
	if r0 != 'µ' || r1 != '°' || r2 != 'x' {
		t.Fatalf("Peek3 = %q %q %q", r0, r1, r2)
	}
	if cursor.PeekN(2) != 'x' {
		t.Fatalf("PeekN(2) = %q", cursor.PeekN(2))
	}
	cursor.BumpN(2)
	if cursor.Off != 4 {
		t.Fatalf("expected byte offset 4, got %d", cursor.Off)
	}
	if cursor.Pos.Col != 3 {
		t.Fatalf("expected column 3, got %d", cursor.Pos.Col)
	}
}

func TestMarkAndReset(t *testing.T) {
	cursor := NewCursor(createFile("hello world"))
	cursor.BumpN(6)
	m := cursor.Mark()
	cursor.BumpN(5)
	if got := cursor.TextFrom(m); got != "world" {
		t.Fatalf("TextFrom = %q", got)
	}
	sp := cursor.SpanFrom(m)
	if sp.Start != 6 || sp.End != 11 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	cursor.Reset(m)
	if cursor.Off != 6 || cursor.Pos.Col != 7 {
		t.Fatalf("reset to %d/%d", cursor.Off, cursor.Pos.Col)
	}
	if !cursor.Eat('w') || cursor.Eat('w') {
		t.Fatal("Eat must consume only a matching rune")
	}
}

func TestDigitValue(t *testing.T) {
	tests := []struct {
		r     rune
		radix int
		want  int
	}{
		{'1', 2, 1},
		{'2', 2, -1},
		{'7', 8, 7},
		{'8', 8, -1},
		{'F', 16, 15},
		{'g', 16, -1},
		{'v', 32, 31},
		{'w', 32, -1},
		{'z', 33, 35},
		{'I', 33, -1},
		{'l', 33, -1},
		{'o', 33, -1},
		{'u', 33, -1},
		{'_', 10, -1},
	}
	for _, tt := range tests {
		if got := digitValue(tt.r, tt.radix); got != tt.want {
			t.Errorf("digitValue(%q, %d) = %d, want %d", tt.r, tt.radix, got, tt.want)
		}
	}
}

func TestIsInfinityAt(t *testing.T) {
	for _, s := range []string{"infinity", "Infinity", "INFINITY", "infinitykg"} {
		if !isInfinityAt([]byte(s)) {
			t.Errorf("%q should start with infinity", s)
		}
	}
	for _, s := range []string{"infinit", "infinite", "xinfinity"} {
		if isInfinityAt([]byte(s)) {
			t.Errorf("%q should not match", s)
		}
	}
}

func TestJuxtaposedStart(t *testing.T) {
	if !isJuxtaposedStart('-', '5') || !isJuxtaposedStart('-', 'x') {
		t.Error("a signed value must start a juxtaposed value")
	}
	if isJuxtaposedStart('-', ' ') || isJuxtaposedStart('-', '=') {
		t.Error("a bare minus is an operator")
	}
	if isJuxtaposedStart('=', ' ') || isJuxtaposedStart('+', '1') {
		t.Error("operators do not start values")
	}
}
