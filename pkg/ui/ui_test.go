package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/pup/pkg/diary"
	"tableflip.dev/pup/pkg/kv"
)

func newTestModel(t *testing.T, dates ...string) (Model, *diary.Store) {
	t.Helper()
	s := diary.New(kv.NewMemory(), nil)
	for _, date := range dates {
		if _, err := s.Add(date, "recall", "session on "+date); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	return New(s), s
}

func TestListShowsEntriesMostRecentFirst(t *testing.T) {
	m, _ := newTestModel(t, "2024-01-01", "2024-03-05", "2024-02-10")

	items := m.list.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	first, ok := items[0].(item)
	if !ok {
		t.Fatalf("unexpected item type %T", items[0])
	}
	if first.e.Date != "2024-03-05" {
		t.Fatalf("expected most recent entry first, got %s", first.e.Date)
	}
}

func TestDeleteRemovesSelectedEntry(t *testing.T) {
	m, s := newTestModel(t, "2024-01-01", "2024-03-05")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m = next.(Model)

	if s.Len() != 1 {
		t.Fatalf("expected one entry after delete, got %d", s.Len())
	}
	if s.Entries()[0].Date != "2024-01-01" {
		t.Fatalf("expected the selected (most recent) entry removed")
	}
	if len(m.list.Items()) != 1 {
		t.Fatalf("expected list refreshed, got %d items", len(m.list.Items()))
	}
	if !strings.Contains(m.status, "removed") {
		t.Fatalf("expected status message, got %q", m.status)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Fatalf("expected tea.Quit, got %T", msg)
	}
}
