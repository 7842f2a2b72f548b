// Package indicator computes where the floating selection tab sits and how
// it moves when a drag reveals or dismisses the menu.
//
// Offsets are anchor constants: a near-edge offset is measured from the near
// border to the indicator's leading side, a far-edge offset from the far
// border to its trailing side. Negative far offsets point inward.
package indicator

import (
	"fmt"

	"github.com/atomicstack/edgemenu/internal/geometry"
)

// PositionSet holds the anchor targets derived for one edge.
type PositionSet struct {
	Start       float64
	StartBounce geometry.BounceOffsets
	End         geometry.BounceOffsets
}

// ComputePositions derives the resting, reveal-bounce and traverse targets
// for an indicator docked at edge.
func ComputePositions(hostWidth, indicatorWidth float64, edge geometry.EdgeSide, borderMargin float64, bounce geometry.BounceOffsets) PositionSet {
	multiplier := edge.Multiplier()
	inverse := -multiplier
	start := borderMargin * inverse
	return PositionSet{
		Start: start,
		StartBounce: geometry.BounceOffsets{
			From: start + bounce.From*inverse,
			To:   start + bounce.To*multiplier,
		},
		End: geometry.BounceOffsets{
			From: (hostWidth - indicatorWidth + bounce.From) * multiplier,
			To:   (hostWidth - indicatorWidth - borderMargin) * multiplier,
		},
	}
}

// LeftColumn converts an anchor offset on edge into the indicator's leading
// coordinate measured from the near border.
func LeftColumn(edge geometry.EdgeSide, offset, hostWidth, indicatorWidth float64) float64 {
	if edge == geometry.Far {
		return hostWidth - indicatorWidth + offset
	}
	return offset
}

// OffsetFor is the inverse of LeftColumn: the anchor offset on edge that
// puts the indicator's leading coordinate at column.
func OffsetFor(edge geometry.EdgeSide, column, hostWidth, indicatorWidth float64) float64 {
	if edge == geometry.Far {
		return column - hostWidth + indicatorWidth
	}
	return column
}

// MoveIndicatorTo returns the vertical offset that centres an indicator of
// indicatorHeight on row index. The index is not range checked.
func MoveIndicatorTo(index int, rowHeight, indicatorHeight float64) (float64, error) {
	if !geometry.Positive(rowHeight) || !geometry.Positive(indicatorHeight) {
		return 0, fmt.Errorf("row height %v, indicator height %v: %w", rowHeight, indicatorHeight, geometry.ErrInvalidGeometry)
	}
	return float64(index)*rowHeight + (rowHeight-indicatorHeight)/2, nil
}

// VerticalAnchorFor places the resting indicator at percentage of the host
// height, kept at least half an indicator away from the top and one and a
// half indicators away from the bottom.
func VerticalAnchorFor(percentage, hostHeight, indicatorHeight float64) (float64, error) {
	if !geometry.Positive(hostHeight) || !geometry.Positive(indicatorHeight) {
		return 0, fmt.Errorf("host height %v, indicator height %v: %w", hostHeight, indicatorHeight, geometry.ErrInvalidGeometry)
	}
	if !geometry.Finite(percentage) {
		return 0, fmt.Errorf("indicator percent %v: %w", percentage, geometry.ErrInvalidGeometry)
	}
	raw := hostHeight/100*percentage - indicatorHeight/2
	return geometry.Clamp(raw, indicatorHeight/2, hostHeight-1.5*indicatorHeight), nil
}
