package indicator

import "github.com/atomicstack/edgemenu/internal/geometry"

// Priority weights an anchor; the heavier active anchor drives layout.
type Priority int

const (
	PrioritySubordinate Priority = 250
	PriorityDominant    Priority = 750
)

// Anchor is one of the two mutually exclusive horizontal constraints.
type Anchor struct {
	Offset   float64
	Active   bool
	Priority Priority
}

// AnchorPair holds the near-edge and far-edge anchors.
type AnchorPair struct {
	Near Anchor
	Far  Anchor
}

// Get returns the anchor for edge.
func (p AnchorPair) Get(edge geometry.EdgeSide) Anchor {
	if edge == geometry.Far {
		return p.Far
	}
	return p.Near
}

// Dominant returns the edge whose anchor currently has the higher priority.
func (p AnchorPair) Dominant() geometry.EdgeSide {
	if p.Far.Priority > p.Near.Priority {
		return geometry.Far
	}
	return geometry.Near
}

func (p *AnchorPair) ref(edge geometry.EdgeSide) *Anchor {
	if edge == geometry.Far {
		return &p.Far
	}
	return &p.Near
}

func (p *AnchorPair) makeDominant(edge geometry.EdgeSide) {
	p.ref(edge).Priority = PriorityDominant
	p.ref(edge.Opposite()).Priority = PrioritySubordinate
}
