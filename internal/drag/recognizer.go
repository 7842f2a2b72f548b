package drag

import "github.com/atomicstack/edgemenu/internal/geometry"

// Recognizer decides whether a press starts close enough to an enabled
// border to count as an edge-triggered drag.
type Recognizer struct {
	near   bool
	far    bool
	margin int
}

// NewRecognizer enables the given edges with a margin measured in columns.
// A margin below one is treated as one.
func NewRecognizer(edges []geometry.EdgeSide, margin int) Recognizer {
	if margin < 1 {
		margin = 1
	}
	r := Recognizer{margin: margin}
	for _, edge := range edges {
		switch edge {
		case geometry.Near:
			r.near = true
		case geometry.Far:
			r.far = true
		}
	}
	return r
}

// Enabled reports whether edge triggers drags.
func (r Recognizer) Enabled(edge geometry.EdgeSide) bool {
	if edge == geometry.Far {
		return r.far
	}
	return r.near
}

// Recognize maps column x in a host hostWidth columns wide to an edge. When
// both margins overlap the closer border wins.
func (r Recognizer) Recognize(x, hostWidth int) (geometry.EdgeSide, bool) {
	if hostWidth <= 0 || x < 0 || x >= hostWidth {
		return geometry.Near, false
	}
	fromNear := x
	fromFar := hostWidth - 1 - x
	inNear := r.near && fromNear < r.margin
	inFar := r.far && fromFar < r.margin
	switch {
	case inNear && inFar:
		if fromFar < fromNear {
			return geometry.Far, true
		}
		return geometry.Near, true
	case inNear:
		return geometry.Near, true
	case inFar:
		return geometry.Far, true
	}
	return geometry.Near, false
}
