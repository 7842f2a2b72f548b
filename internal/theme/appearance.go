package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/edgemenu/internal/geometry"
)

// Frame is an indicator rectangle in cells.
type Frame struct {
	X, Y          int
	Width, Height int
}

// Insets are per-side icon margins in cells.
type Insets struct {
	Top, Left, Bottom, Right int
}

// Appearance is the pluggable look of the indicator tab. The drag and
// indicator packages never see it; the UI reads the scalars it needs and
// uses the rest to paint.
type Appearance interface {
	Style() lipgloss.Style
	Size() (width, height int)
	BorderMargin() float64
	BounceOffsets() geometry.BounceOffsets
	Shape(edge geometry.EdgeSide, frame Frame) []string
	IconMargins(edge geometry.EdgeSide) Insets
}

// DefaultAppearance is a rounded tab pointing away from its dock edge.
type DefaultAppearance struct {
	Color  lipgloss.Color
	Width  int
	Height int
	Margin float64
	Bounce geometry.BounceOffsets
	Icon   string
}

// NewDefaultAppearance returns the stock 2x1 tab with a one-cell margin and
// a (2, 1) bounce.
func NewDefaultAppearance() DefaultAppearance {
	return DefaultAppearance{
		Color:  lipgloss.Color("33"),
		Width:  2,
		Height: 1,
		Margin: 1,
		Bounce: geometry.BounceOffsets{From: 2, To: 1},
	}
}

func (a DefaultAppearance) Style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(a.Color).Bold(true)
}

func (a DefaultAppearance) Size() (int, int) {
	return a.Width, a.Height
}

func (a DefaultAppearance) BorderMargin() float64 {
	return a.Margin
}

func (a DefaultAppearance) BounceOffsets() geometry.BounceOffsets {
	return a.Bounce
}

// Shape draws frame.Height rows of frame.Width cells. The rounded cap sits
// on the side facing away from edge and the icon, if any, is placed inside
// the icon margins.
func (a DefaultAppearance) Shape(edge geometry.EdgeSide, frame Frame) []string {
	if frame.Width <= 0 || frame.Height <= 0 {
		return nil
	}
	body, tip := "█", "◗"
	if edge == geometry.Far {
		tip = "◖"
	}
	rows := make([]string, frame.Height)
	for i := range rows {
		cells := make([]string, frame.Width)
		for j := range cells {
			cells[j] = body
		}
		if edge == geometry.Far {
			cells[0] = tip
		} else {
			cells[frame.Width-1] = tip
		}
		rows[i] = strings.Join(cells, "")
	}
	if icon := []rune(a.Icon); len(icon) > 0 {
		m := a.IconMargins(edge)
		row := geometry.ClampInt(m.Top, 0, frame.Height-1)
		col := geometry.ClampInt(m.Left, 0, frame.Width-1)
		cells := []rune(rows[row])
		cells[col] = icon[0]
		rows[row] = string(cells)
	}
	return rows
}

// IconMargins keeps the icon off the rounded cap.
func (a DefaultAppearance) IconMargins(edge geometry.EdgeSide) Insets {
	if edge == geometry.Far {
		return Insets{Left: 1}
	}
	return Insets{Right: 1}
}
