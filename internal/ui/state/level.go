package state

import (
	"github.com/atomicstack/edgemenu/internal/menu"
)

// Level holds the rows of the pull-out column together with the highlighted
// row and the type-ahead query. Rows are never filtered out: drag geometry
// depends on a stable row count, so matches are only highlighted.
type Level struct {
	Items       []menu.Item
	Cursor      int
	Query       string
	QueryCursor int
	Matches     map[int]struct{}
}

// NewLevel constructs a Level using the provided items.
func NewLevel(items []menu.Item) *Level {
	l := &Level{Items: make([]menu.Item, len(items))}
	copy(l.Items, items)
	return l
}

// Len returns the row count.
func (l *Level) Len() int {
	return len(l.Items)
}

// Current returns the highlighted item.
func (l *Level) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// At returns the item at index.
func (l *Level) At(index int) (menu.Item, bool) {
	if index < 0 || index >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[index], true
}

// SetCursor moves the highlight, clamping into range.
func (l *Level) SetCursor(index int) bool {
	old := l.Cursor
	switch {
	case len(l.Items) == 0:
		l.Cursor = 0
	case index < 0:
		l.Cursor = 0
	case index >= len(l.Items):
		l.Cursor = len(l.Items) - 1
	default:
		l.Cursor = index
	}
	return old != l.Cursor
}

// IsMatch reports whether row index matches the current query.
func (l *Level) IsMatch(index int) bool {
	if len(l.Matches) == 0 {
		return false
	}
	_, ok := l.Matches[index]
	return ok
}
