// Package geometry holds the scalar types shared by the drag tracker and the
// indicator animator.
package geometry

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidState reports an operation issued in the wrong lifecycle state.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidGeometry reports a non-positive or non-finite measurement.
	ErrInvalidGeometry = errors.New("invalid geometry")
)

// EdgeSide names one of the two horizontal borders of the host.
type EdgeSide int

const (
	Near EdgeSide = iota
	Far
)

// Multiplier is +1 for Near and -1 for Far.
func (e EdgeSide) Multiplier() float64 {
	if e == Far {
		return -1
	}
	return 1
}

// Opposite returns the other side.
func (e EdgeSide) Opposite() EdgeSide {
	if e == Far {
		return Near
	}
	return Far
}

func (e EdgeSide) String() string {
	if e == Far {
		return "far"
	}
	return "near"
}

// ParseEdgeSide accepts near/far and the left/right aliases.
func ParseEdgeSide(s string) (EdgeSide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "near", "left", "leading":
		return Near, nil
	case "far", "right", "trailing":
		return Far, nil
	}
	return Near, fmt.Errorf("unknown edge %q", s)
}

// BounceOffsets describes an overshoot to From followed by a settle to To.
type BounceOffsets struct {
	From float64
	To   float64
}

// VerticalRange is an inclusive [Lower, Upper] interval.
type VerticalRange struct {
	Lower float64
	Upper float64
}

// NewVerticalRange builds a range from two bounds in any order.
func NewVerticalRange(a, b float64) VerticalRange {
	if a > b {
		a, b = b, a
	}
	return VerticalRange{Lower: a, Upper: b}
}

// TravelRange returns the menu-top positions that keep a menu of the given
// height inside a host of the given height. Menus taller than the host may
// scroll until their bottom edge meets the host bottom.
func TravelRange(hostHeight, menuHeight float64) (VerticalRange, error) {
	if !Positive(hostHeight) {
		return VerticalRange{}, fmt.Errorf("host height %v: %w", hostHeight, ErrInvalidGeometry)
	}
	if !Finite(menuHeight) || menuHeight < 0 {
		return VerticalRange{}, fmt.Errorf("menu height %v: %w", menuHeight, ErrInvalidGeometry)
	}
	return NewVerticalRange(0, hostHeight-menuHeight), nil
}

// Clamp pins v into the range.
func (r VerticalRange) Clamp(v float64) float64 {
	return Clamp(v, r.Lower, r.Upper)
}

// Contains reports whether v lies inside the range, bounds included.
func (r VerticalRange) Contains(v float64) bool {
	return v >= r.Lower && v <= r.Upper
}

func (r VerticalRange) valid() bool {
	return Finite(r.Lower) && Finite(r.Upper) && r.Lower <= r.Upper
}

// Validate reports ErrInvalidGeometry for inverted or non-finite bounds.
func (r VerticalRange) Validate() error {
	if !r.valid() {
		return fmt.Errorf("travel range [%v, %v]: %w", r.Lower, r.Upper, ErrInvalidGeometry)
	}
	return nil
}

// Clamp pins v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt pins v into [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Positive reports whether v is finite and strictly greater than zero.
func Positive(v float64) bool {
	return Finite(v) && v > 0
}
