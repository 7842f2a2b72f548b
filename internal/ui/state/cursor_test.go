package state

import (
	"testing"

	"github.com/atomicstack/edgemenu/internal/menu"
)

func newTestLevel(ids ...string) *Level {
	items := make([]menu.Item, len(ids))
	for i, id := range ids {
		items[i] = menu.Item{ID: id, Label: id}
	}
	return NewLevel(items)
}

func TestMoveCursorHome(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 2
	if !l.MoveCursorHome() {
		t.Fatalf("expected move when items exist")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := newTestLevel()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
}

func TestMoveCursorByStopsAtEnds(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d")
	if !l.MoveCursorBy(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	l.MoveCursorBy(10)
	if l.Cursor != 3 {
		t.Fatalf("expected cursor clamped to 3, got %d", l.Cursor)
	}
	if l.MoveCursorBy(1) {
		t.Fatalf("expected no movement past end")
	}
	l.MoveCursorBy(-10)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", l.Cursor)
	}
}

func TestRestingRow(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	cases := map[float64]int{0: 0, 50: 2, 99: 4, 100: 4, -5: 0}
	for percent, want := range cases {
		if got := l.RestingRow(percent); got != want {
			t.Fatalf("RestingRow(%v) = %d, want %d", percent, got, want)
		}
	}
	if newTestLevel().RestingRow(50) != 0 {
		t.Fatalf("expected 0 for empty level")
	}
}

func TestNewLevelCopiesItems(t *testing.T) {
	items := []menu.Item{{ID: "a"}, {ID: "b"}}
	l := NewLevel(items)
	items[0].ID = "z"
	if l.Items[0].ID != "a" {
		t.Fatalf("expected level to own its rows, got %q", l.Items[0].ID)
	}
	if l.Cursor != 0 || l.Len() != 2 {
		t.Fatalf("unexpected level state cursor=%d len=%d", l.Cursor, l.Len())
	}
}
