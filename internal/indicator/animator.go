package indicator

import (
	"fmt"
	"time"

	"github.com/atomicstack/edgemenu/internal/geometry"
)

// Size is the indicator footprint.
type Size struct {
	Width  float64
	Height float64
}

// Metrics are the appearance scalars the animator needs.
type Metrics struct {
	Size         Size
	BorderMargin float64
	Bounce       geometry.BounceOffsets
}

// Validate reports ErrInvalidGeometry for a non-positive indicator size.
func (m Metrics) Validate() error {
	if !geometry.Positive(m.Size.Width) || !geometry.Positive(m.Size.Height) {
		return fmt.Errorf("indicator size %vx%v: %w", m.Size.Width, m.Size.Height, geometry.ErrInvalidGeometry)
	}
	if !geometry.Finite(m.BorderMargin) || !geometry.Finite(m.Bounce.From) || !geometry.Finite(m.Bounce.To) {
		return fmt.Errorf("indicator margins: %w", geometry.ErrInvalidGeometry)
	}
	return nil
}

// Timing holds the per-step durations of every plan.
type Timing struct {
	RevealBounce   time.Duration
	TraverseBounce time.Duration
	RestoreBounce  time.Duration
	Settle         time.Duration
}

// DefaultTiming returns the stock durations.
func DefaultTiming() Timing {
	return Timing{
		RevealBounce:   150 * time.Millisecond,
		TraverseBounce: 300 * time.Millisecond,
		RestoreBounce:  400 * time.Millisecond,
		Settle:         250 * time.Millisecond,
	}
}

// PlanKind names the animation a plan performs.
type PlanKind int

const (
	PlanReveal PlanKind = iota
	PlanTraverse
	PlanRestore
)

func (k PlanKind) String() string {
	switch k {
	case PlanTraverse:
		return "traverse"
	case PlanRestore:
		return "restore"
	default:
		return "reveal"
	}
}

// Step moves the plan's anchor to Target over Duration.
type Step struct {
	Target   float64
	Duration time.Duration
}

// Plan is an ordered list of steps on a single anchor. Executing it is the
// caller's job; Complete must be called once the last step has finished.
type Plan struct {
	Kind           PlanKind
	Anchor         geometry.EdgeSide
	Steps          []Step
	SwapOnComplete bool
}

// Final returns the last target, or zero for an empty plan.
func (p Plan) Final() float64 {
	if len(p.Steps) == 0 {
		return 0
	}
	return p.Steps[len(p.Steps)-1].Target
}

// Total sums the step durations.
func (p Plan) Total() time.Duration {
	var total time.Duration
	for _, step := range p.Steps {
		total += step.Duration
	}
	return total
}

// Animator tracks anchor state for one indicator and produces plans.
type Animator struct {
	metrics   Metrics
	timing    Timing
	hostWidth float64
	anchors   AnchorPair
}

// New validates metrics and returns an animator resting on the near edge.
func New(metrics Metrics, timing Timing) (*Animator, error) {
	if err := metrics.Validate(); err != nil {
		return nil, err
	}
	a := &Animator{metrics: metrics, timing: timing}
	a.anchors.makeDominant(geometry.Near)
	a.anchors.Near.Active = true
	return a, nil
}

// SetHostWidth records the width every later computation uses.
func (a *Animator) SetHostWidth(width float64) error {
	if !geometry.Positive(width) {
		return fmt.Errorf("host width %v: %w", width, geometry.ErrInvalidGeometry)
	}
	a.hostWidth = width
	return nil
}

// HostWidth returns the last accepted host width.
func (a *Animator) HostWidth() float64 {
	return a.hostWidth
}

// Metrics returns the configured metrics.
func (a *Animator) Metrics() Metrics {
	return a.metrics
}

// Anchors returns a copy of the anchor state.
func (a *Animator) Anchors() AnchorPair {
	return a.anchors
}

// Dominant returns the edge whose anchor drives layout.
func (a *Animator) Dominant() geometry.EdgeSide {
	return a.anchors.Dominant()
}

// Positions computes the position set for edge using the current host width.
func (a *Animator) Positions(edge geometry.EdgeSide) (PositionSet, error) {
	if !geometry.Positive(a.hostWidth) {
		return PositionSet{}, fmt.Errorf("host width %v: %w", a.hostWidth, geometry.ErrInvalidGeometry)
	}
	return ComputePositions(a.hostWidth, a.metrics.Size.Width, edge, a.metrics.BorderMargin, a.metrics.Bounce), nil
}

// Rest docks the indicator at edge without animating.
func (a *Animator) Rest(edge geometry.EdgeSide) error {
	pos, err := a.Positions(edge)
	if err != nil {
		return err
	}
	a.anchors.makeDominant(edge)
	main := a.anchors.ref(edge)
	main.Active = true
	main.Offset = pos.Start
	a.anchors.ref(edge.Opposite()).Active = false
	return nil
}

// Reveal makes edge's anchor dominant and returns the reveal plan. With
// traverse the opposite anchor is parked at the resting offset and takes over
// once the plan completes.
func (a *Animator) Reveal(edge geometry.EdgeSide, traverse bool) (Plan, error) {
	pos, err := a.Positions(edge)
	if err != nil {
		return Plan{}, err
	}
	a.anchors.makeDominant(edge)
	a.anchors.ref(edge).Active = true
	secondary := a.anchors.ref(edge.Opposite())
	secondary.Active = traverse

	if !traverse {
		return Plan{
			Kind:   PlanReveal,
			Anchor: edge,
			Steps: []Step{
				{Target: pos.StartBounce.From, Duration: a.timing.RevealBounce},
				{Target: pos.StartBounce.To, Duration: a.timing.Settle},
			},
		}, nil
	}

	secondary.Offset = pos.Start
	return Plan{
		Kind:   PlanTraverse,
		Anchor: edge,
		Steps: []Step{
			{Target: pos.End.From, Duration: a.timing.TraverseBounce},
			{Target: pos.End.To, Duration: a.timing.Settle},
		},
		SwapOnComplete: true,
	}, nil
}

// Restore makes edge's anchor dominant, releases the opposite anchor and
// returns the plan that tucks the indicator back to rest.
func (a *Animator) Restore(edge geometry.EdgeSide) (Plan, error) {
	pos, err := a.Positions(edge)
	if err != nil {
		return Plan{}, err
	}
	a.anchors.makeDominant(edge)
	a.anchors.ref(edge).Active = true
	a.anchors.ref(edge.Opposite()).Active = false
	return Plan{
		Kind:   PlanRestore,
		Anchor: edge,
		Steps: []Step{
			{Target: pos.StartBounce.From, Duration: a.timing.RestoreBounce},
			{Target: pos.Start, Duration: a.timing.Settle},
		},
	}, nil
}

// Complete records the plan's final offset and applies its priority swap.
func (a *Animator) Complete(plan Plan) {
	if len(plan.Steps) > 0 {
		a.anchors.ref(plan.Anchor).Offset = plan.Final()
	}
	if plan.SwapOnComplete {
		a.anchors.makeDominant(plan.Anchor.Opposite())
	}
}

// LeftColumn resolves the dominant anchor to the indicator's leading column.
func (a *Animator) LeftColumn() float64 {
	edge := a.anchors.Dominant()
	return LeftColumn(edge, a.anchors.Get(edge).Offset, a.hostWidth, a.metrics.Size.Width)
}
