package diag

import (
	"testing"

	"lacon/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := range 3 {
		b.Add(NewError(LexInvalidCharacter, source.Span{Start: uint32(i), End: uint32(i + 1)}, "x"))
	}
	if b.Len() != 2 || b.Dropped() != 1 {
		t.Fatalf("Len=%d Dropped=%d, want 2 and 1", b.Len(), b.Dropped())
	}

	b.Force(New(SevInfo, ObsTimings, source.Span{}, "timings"))
	if b.Len() != 3 || b.Items()[2].Code != ObsTimings {
		t.Fatalf("Force did not bypass the limit: %v", b.Items())
	}

	unlimited := NewBag(0)
	for range 100 {
		unlimited.Add(NewError(LexInvalidCharacter, source.Span{}, "x"))
	}
	if unlimited.Len() != 100 {
		t.Fatalf("unlimited bag holds %d", unlimited.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(0)
	b.Add(New(SevWarning, LexInvalidIndent, source.Span{Start: 5, End: 6}, "w"))
	b.Add(NewError(LexUnterminatedString, source.Span{Start: 5, End: 6}, "e"))
	b.Add(NewError(LexInvalidCharacter, source.Span{Start: 1, End: 2}, "c"))
	b.Add(NewError(LexInvalidCharacter, source.Span{Start: 1, End: 2}, "c again"))

	b.Sort()
	b.Dedup()

	items := b.Items()
	if len(items) != 3 {
		t.Fatalf("got %d items after dedup", len(items))
	}
	if items[0].Code != LexInvalidCharacter || items[1].Severity != SevError || items[2].Severity != SevWarning {
		t.Fatalf("unexpected order: %+v", items)
	}
	if !b.HasErrors() || !b.HasWarnings() {
		t.Fatalf("HasErrors/HasWarnings must be true")
	}
}

func TestReporters(t *testing.T) {
	b := NewBag(0)
	r := NewDedupReporter(NewSyncReporter(BagReporter{Bag: b}))
	sp := source.Span{Start: 3, End: 4}

	ReportError(r, LexInvalidCharacter, sp, "bad").WithNote(sp, "here").Emit()
	ReportError(r, LexInvalidCharacter, sp, "bad").Emit()
	builder := ReportWarning(r, LexInvalidIndent, sp, "indent")
	builder.Emit()
	builder.Emit()

	if b.Len() != 2 {
		t.Fatalf("bag holds %d diagnostics, want 2", b.Len())
	}
	if len(b.Items()[0].Notes) != 1 {
		t.Fatalf("note lost: %+v", b.Items()[0])
	}
	if r.Suppressed() != 1 {
		t.Fatalf("expected one suppressed repeat, got %d", r.Suppressed())
	}

	// тот же код в другом месте не дубликат
	ReportError(r, LexInvalidCharacter, source.Span{Start: 4, End: 5}, "bad").Emit()
	if b.Len() != 3 || r.Suppressed() != 1 {
		t.Fatalf("distinct span must pass through: len=%d suppressed=%d", b.Len(), r.Suppressed())
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexInvalidCharacter: "LEX1001",
		IOLoadFileError:     "IO4001",
		ProjInvalidConfig:   "PRJ5001",
		ObsTimings:          "OBS6001",
		UnknownCode:         "E0000",
	}
	for c, want := range cases {
		if got := c.ID(); got != want {
			t.Fatalf("%d.ID() = %s, want %s", c, got, want)
		}
	}
	if Code(1999).Title() != "Unknown error" {
		t.Fatalf("unregistered code title = %q", Code(1999).Title())
	}
}
