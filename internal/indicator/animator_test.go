package indicator

import (
	"errors"
	"testing"
	"time"

	"github.com/atomicstack/edgemenu/internal/geometry"
)

func newTestAnimator(t *testing.T) *Animator {
	t.Helper()
	a, err := New(Metrics{
		Size:         Size{Width: 50, Height: 30},
		BorderMargin: 5,
		Bounce:       goldenBounce,
	}, DefaultTiming())
	if err != nil {
		t.Fatalf("new animator: %v", err)
	}
	if err := a.SetHostWidth(320); err != nil {
		t.Fatalf("set host width: %v", err)
	}
	return a
}

func assertDominance(t *testing.T, pair AnchorPair, edge geometry.EdgeSide) {
	t.Helper()
	if pair.Dominant() != edge {
		t.Fatalf("expected %v dominant, got %v", edge, pair.Dominant())
	}
	if pair.Get(edge).Priority <= pair.Get(edge.Opposite()).Priority {
		t.Fatalf("dominant priority %d not above subordinate %d", pair.Get(edge).Priority, pair.Get(edge.Opposite()).Priority)
	}
}

func TestRevealWithoutTraverse(t *testing.T) {
	a := newTestAnimator(t)
	plan, err := a.Reveal(geometry.Near, false)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if plan.Kind != PlanReveal || plan.Anchor != geometry.Near || plan.SwapOnComplete {
		t.Fatalf("unexpected plan header %+v", plan)
	}
	want := []Step{
		{Target: -20, Duration: 150 * time.Millisecond},
		{Target: 0, Duration: 250 * time.Millisecond},
	}
	if len(plan.Steps) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(plan.Steps))
	}
	for i := range want {
		if plan.Steps[i] != want[i] {
			t.Fatalf("step %d: expected %+v, got %+v", i, want[i], plan.Steps[i])
		}
	}
	anchors := a.Anchors()
	assertDominance(t, anchors, geometry.Near)
	if !anchors.Near.Active || anchors.Far.Active {
		t.Fatalf("expected only the main anchor active, got %+v", anchors)
	}

	a.Complete(plan)
	assertDominance(t, a.Anchors(), geometry.Near)
	if a.Anchors().Near.Offset != 0 {
		t.Fatalf("expected near offset 0 after completion, got %v", a.Anchors().Near.Offset)
	}
}

func TestRevealWithTraverseSwapsOnComplete(t *testing.T) {
	a := newTestAnimator(t)
	plan, err := a.Reveal(geometry.Near, true)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if plan.Kind != PlanTraverse || !plan.SwapOnComplete {
		t.Fatalf("expected traverse plan, got %+v", plan)
	}
	if plan.Steps[0] != (Step{Target: 285, Duration: 300 * time.Millisecond}) {
		t.Fatalf("unexpected first step %+v", plan.Steps[0])
	}
	if plan.Steps[1] != (Step{Target: 265, Duration: 250 * time.Millisecond}) {
		t.Fatalf("unexpected second step %+v", plan.Steps[1])
	}
	anchors := a.Anchors()
	assertDominance(t, anchors, geometry.Near)
	if !anchors.Near.Active || !anchors.Far.Active {
		t.Fatalf("expected both anchors active during traverse, got %+v", anchors)
	}
	if anchors.Far.Offset != -5 {
		t.Fatalf("expected secondary parked at start -5, got %v", anchors.Far.Offset)
	}

	a.Complete(plan)
	assertDominance(t, a.Anchors(), geometry.Far)
	if got := a.LeftColumn(); got != 265 {
		t.Fatalf("expected indicator at column 265 after traverse, got %v", got)
	}
}

func TestRestoreAfterTraverseReturnsDominance(t *testing.T) {
	a := newTestAnimator(t)
	if err := a.Rest(geometry.Near); err != nil {
		t.Fatalf("rest: %v", err)
	}
	before := a.Dominant()

	reveal, err := a.Reveal(geometry.Near, true)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	a.Complete(reveal)
	if a.Dominant() == before {
		t.Fatalf("expected traverse to flip dominance")
	}

	restore, err := a.Restore(geometry.Near)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restore.SwapOnComplete {
		t.Fatalf("restore must not swap")
	}
	assertDominance(t, a.Anchors(), before)
	if a.Anchors().Far.Active {
		t.Fatalf("expected secondary anchor released on restore")
	}
	want := []Step{
		{Target: -20, Duration: 400 * time.Millisecond},
		{Target: -5, Duration: 250 * time.Millisecond},
	}
	for i := range want {
		if restore.Steps[i] != want[i] {
			t.Fatalf("step %d: expected %+v, got %+v", i, want[i], restore.Steps[i])
		}
	}
	a.Complete(restore)
	assertDominance(t, a.Anchors(), before)
	if a.Anchors().Near.Offset != -5 {
		t.Fatalf("expected resting offset -5, got %v", a.Anchors().Near.Offset)
	}
}

func TestRevealFarEdgeUsesFarAnchor(t *testing.T) {
	a := newTestAnimator(t)
	plan, err := a.Reveal(geometry.Far, false)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if plan.Anchor != geometry.Far {
		t.Fatalf("expected far anchor, got %v", plan.Anchor)
	}
	if plan.Steps[0].Target != 20 || plan.Steps[1].Target != 0 {
		t.Fatalf("unexpected far targets %+v", plan.Steps)
	}
	assertDominance(t, a.Anchors(), geometry.Far)
}

func TestPlanTotalAndFinal(t *testing.T) {
	plan := Plan{Steps: []Step{{Target: 1, Duration: time.Second}, {Target: 4, Duration: 2 * time.Second}}}
	if plan.Total() != 3*time.Second {
		t.Fatalf("expected 3s total, got %v", plan.Total())
	}
	if plan.Final() != 4 {
		t.Fatalf("expected final 4, got %v", plan.Final())
	}
	if (Plan{}).Final() != 0 {
		t.Fatalf("expected empty plan final 0")
	}
}

func TestInvalidGeometryIsRejected(t *testing.T) {
	if _, err := New(Metrics{Size: Size{Width: 0, Height: 1}}, DefaultTiming()); !errors.Is(err, geometry.ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry for zero width, got %v", err)
	}
	a, err := New(Metrics{Size: Size{Width: 2, Height: 1}}, DefaultTiming())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := a.Reveal(geometry.Near, false); !errors.Is(err, geometry.ErrInvalidGeometry) {
		t.Fatalf("expected reveal without host width to fail, got %v", err)
	}
	if err := a.SetHostWidth(-4); !errors.Is(err, geometry.ErrInvalidGeometry) {
		t.Fatalf("expected negative host width to fail, got %v", err)
	}
	if _, err := a.Restore(geometry.Far); !errors.Is(err, geometry.ErrInvalidGeometry) {
		t.Fatalf("expected restore without host width to fail, got %v", err)
	}
}
