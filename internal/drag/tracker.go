// Package drag turns a stream of vertical pointer samples into a menu offset
// and a highlighted row.
package drag

import (
	"fmt"
	"math"

	"github.com/atomicstack/edgemenu/internal/geometry"
)

// Geometry is the static layout a move is computed against.
type Geometry struct {
	MenuHeight     float64
	RowHeight      float64
	RowCount       int
	Travel         geometry.VerticalRange
	AllowOffscreen bool
}

// Validate reports ErrInvalidGeometry for unusable measurements.
func (g Geometry) Validate() error {
	if !geometry.Positive(g.RowHeight) {
		return fmt.Errorf("row height %v: %w", g.RowHeight, geometry.ErrInvalidGeometry)
	}
	if g.RowCount <= 0 {
		return fmt.Errorf("row count %d: %w", g.RowCount, geometry.ErrInvalidGeometry)
	}
	if !geometry.Finite(g.MenuHeight) || g.MenuHeight < 0 {
		return fmt.Errorf("menu height %v: %w", g.MenuHeight, geometry.ErrInvalidGeometry)
	}
	if !g.AllowOffscreen {
		return g.Travel.Validate()
	}
	return nil
}

// Result is the outcome of a single move.
type Result struct {
	Offset float64
	Index  int
}

type session struct {
	originY  float64
	pivot    int
	selected int
}

// Tracker holds the state of at most one drag session.
type Tracker struct {
	session   *session
	committed int
	listeners listeners
}

// New returns an idle tracker.
func New() *Tracker {
	return &Tracker{}
}

// Subscribe registers fn for every subsequent event. The returned function
// removes the registration and may be called more than once.
func (t *Tracker) Subscribe(fn Listener) func() {
	return t.listeners.subscribe(fn)
}

// Dragging reports whether a session is open.
func (t *Tracker) Dragging() bool {
	return t.session != nil
}

// Selected returns the row highlighted by the open session, or the last
// committed row when idle.
func (t *Tracker) Selected() int {
	if t.session != nil {
		return t.session.selected
	}
	return t.committed
}

// Press classifies a pointer press against the recognizer and publishes the
// gesture-state outcome.
func (t *Tracker) Press(r Recognizer, x, hostWidth int) (geometry.EdgeSide, bool) {
	edge, ok := r.Recognize(x, hostWidth)
	kind := KindFailed
	if ok {
		kind = KindPossible
	}
	t.listeners.emit(Event{Kind: kind, Edge: edge, X: x})
	return edge, ok
}

// Begin opens a session anchored at y, pivoting on selectedIndex.
func (t *Tracker) Begin(y float64, selectedIndex int) error {
	if t.session != nil {
		return t.reject(fmt.Errorf("begin while a drag is open: %w", geometry.ErrInvalidState))
	}
	if !geometry.Finite(y) {
		return t.reject(fmt.Errorf("begin y %v: %w", y, geometry.ErrInvalidGeometry))
	}
	t.session = &session{originY: y, pivot: selectedIndex, selected: selectedIndex}
	t.listeners.emit(Event{Kind: KindBegan, Y: y, Index: selectedIndex})
	return nil
}

// Move computes the menu top offset and the row under y.
//
// The offset centres the pivot row on the origin and then adds the drag
// delta on top of the origin-anchored base, so the delta counts twice
// relative to the pointer. The index is computed afresh from the current
// pointer and offset and is independent of the pivot.
func (t *Tracker) Move(y float64, g Geometry) (Result, error) {
	s := t.session
	if s == nil {
		return Result{}, t.reject(fmt.Errorf("move without an open drag: %w", geometry.ErrInvalidState))
	}
	if err := g.Validate(); err != nil {
		return Result{}, t.reject(err)
	}
	if !geometry.Finite(y) {
		return Result{}, t.reject(fmt.Errorf("move y %v: %w", y, geometry.ErrInvalidGeometry))
	}

	offset := s.originY - g.RowHeight*float64(s.pivot) - g.RowHeight/2 + (s.originY - y)
	if !g.AllowOffscreen {
		offset = g.Travel.Clamp(offset)
	}

	row := math.Floor((y - offset) / g.RowHeight)
	row = geometry.Clamp(row, 0, float64(g.RowCount-1))
	s.selected = int(row)

	res := Result{Offset: offset, Index: s.selected}
	t.listeners.emit(Event{Kind: KindMoved, Y: y, Offset: offset, Index: s.selected})
	return res, nil
}

// PointerFor returns a pointer y whose move lands on the centre of row
// index. Unclamped, each row needs half a row height of pointer travel
// because the delta counts twice; when that pointer would push the offset
// out of the travel range the offset is pinned and the row is reached
// directly under the bound instead.
func (t *Tracker) PointerFor(index int, g Geometry) (float64, error) {
	s := t.session
	if s == nil {
		return 0, fmt.Errorf("pointer without an open drag: %w", geometry.ErrInvalidState)
	}
	if err := g.Validate(); err != nil {
		return 0, err
	}
	index = geometry.ClampInt(index, 0, g.RowCount-1)
	centre := g.RowHeight * (float64(index) + 0.5)
	base := 2*s.originY - g.RowHeight*float64(s.pivot) - g.RowHeight/2
	y := (base + centre) / 2
	if g.AllowOffscreen {
		return y, nil
	}
	switch offset := base - y; {
	case offset < g.Travel.Lower:
		return g.Travel.Lower + centre, nil
	case offset > g.Travel.Upper:
		return g.Travel.Upper + centre, nil
	}
	return y, nil
}

// End closes the session and returns the last computed row. Without an open
// session it returns the previously committed row.
func (t *Tracker) End() int {
	if t.session == nil {
		return t.committed
	}
	t.committed = t.session.selected
	t.session = nil
	t.listeners.emit(Event{Kind: KindEnded, Index: t.committed})
	return t.committed
}

// Cancel closes the session and drops its pending row. Safe when idle.
func (t *Tracker) Cancel() {
	if t.session == nil {
		return
	}
	t.session = nil
	t.listeners.emit(Event{Kind: KindCancelled, Index: t.committed})
}

func (t *Tracker) reject(err error) error {
	t.listeners.emit(Event{Kind: KindRejected, Err: err})
	return err
}
