package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"lacon/internal/driver"
)

func TestProgressModelAppliesEvents(t *testing.T) {
	events := make(chan driver.FileEvent)
	m := NewProgressModel("tokenize proj", []string{"a.lacon", "b.lacon"}, events).(*progressModel)

	m.Update(eventMsg{Path: "a.lacon", Status: driver.FileLexing})
	if got := m.percent(); got != 0.25 {
		t.Fatalf("percent after one lexing file = %v, want 0.25", got)
	}
	m.Update(eventMsg{Path: "a.lacon", Status: driver.FileDone, Tokens: 10})
	m.Update(eventMsg{Path: "b.lacon", Status: driver.FileFailed, Tokens: 3, Errors: 2})
	m.Update(eventMsg{Path: "unknown.lacon", Status: driver.FileDone, Tokens: 100})
	if got := m.percent(); got != 1 {
		t.Fatalf("percent after all files = %v, want 1", got)
	}
	if m.tokens != 13 || m.errors != 2 {
		t.Fatalf("totals tokens=%d errors=%d", m.tokens, m.errors)
	}

	_, cmd := m.Update(doneMsg{})
	if !m.done || cmd == nil {
		t.Fatal("doneMsg must finish the model")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("doneMsg must quit the program")
	}

	view := m.View()
	for _, want := range []string{"done: tokenize proj (13 tokens, 2 errors)", "a.lacon", "error"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestProgressModelClosedChannel(t *testing.T) {
	events := make(chan driver.FileEvent)
	close(events)
	m := NewProgressModel("t", nil, events).(*progressModel)
	if _, ok := m.listenForEvent()().(doneMsg); !ok {
		t.Fatal("closed channel must yield doneMsg")
	}
	if m.View() != "" {
		t.Fatal("empty model renders nothing")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"abcdefghij", 8, "abcde..."},
		{"abcdef", 2, "ab"},
		{"日本語ファイル", 9, "日本語..."},
		{"any", 0, "any"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
