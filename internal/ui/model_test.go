package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/ticker/internal/feed"
)

func sizedModel(t *testing.T) Model {
	t.Helper()
	m := New(feed.Default())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func TestQuitKeyStopsTickerAndQuits(t *testing.T) {
	m := sizedModel(t)
	m.Init()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !next.(Model).quitting {
		t.Fatal("expected quitting state")
	}
	if next.(Model).View() != "" {
		t.Fatal("expected empty view while quitting")
	}
}

func TestHorizontalKeyFlipsScrollDirection(t *testing.T) {
	m := sizedModel(t)
	m.Init()

	before := m.ticker.Direction()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	if cmd == nil {
		t.Fatal("expected restart command after a direction change")
	}
	after := next.(Model).ticker.Direction()
	if after.ScrollsLeft() == before.ScrollsLeft() {
		t.Fatal("expected the horizontal direction to flip")
	}
	if after.SwitchesUp() != before.SwitchesUp() {
		t.Fatal("expected the vertical direction to be untouched")
	}
}

func TestVerticalKeyFlipsSwitchDirection(t *testing.T) {
	m := sizedModel(t)
	m.Init()

	before := m.ticker.Direction()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	after := next.(Model).ticker.Direction()
	if after.SwitchesUp() == before.SwitchesUp() {
		t.Fatal("expected the vertical direction to flip")
	}
}

func TestViewContainsTitleAndStatus(t *testing.T) {
	m := sizedModel(t)
	m.Init()

	view := m.View()
	if !strings.Contains(view, feed.Default().Title) {
		t.Fatalf("expected the feed title in the view, got %q", view)
	}
	if !strings.Contains(view, "item 1/5") {
		t.Fatalf("expected the status line in the view, got %q", view)
	}
}

func TestNewSourceRendersAllItems(t *testing.T) {
	f := &feed.Feed{Items: []feed.Item{
		{Text: "plain"},
		{Text: "colored", Color: "#FF0000"},
	}}
	src := NewSource(f)
	if src.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", src.Len())
	}
	if !strings.Contains(src.Item(0), "plain") {
		t.Fatalf("expected rendered text, got %q", src.Item(0))
	}
}
