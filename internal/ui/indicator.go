package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/edgemenu/internal/geometry"
	"github.com/atomicstack/edgemenu/internal/indicator"
	"github.com/atomicstack/edgemenu/internal/logging/events"
)

// frameMsg advances the running indicator plan. Frames from a replaced plan
// carry a stale generation and are dropped.
type frameMsg struct {
	gen int
}

func (m *Model) frameCmd() tea.Cmd {
	gen := m.animGen
	return m.tick(m.player.FrameInterval(), func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

// startPlan hands plan to the player starting from column, the indicator's
// on-screen position sampled before the animator switched anchors; stored
// anchor offsets go stale across resizes. An interrupted plan is not
// completed.
func (m *Model) startPlan(plan indicator.Plan, column float64) tea.Cmd {
	if m.player.Active() {
		events.Indicator.Interrupted(m.player.Plan().Kind.String())
	}
	from := indicator.OffsetFor(plan.Anchor, column, m.animator.HostWidth(), m.animator.Metrics().Size.Width)
	targets := make([]float64, len(plan.Steps))
	for i, step := range plan.Steps {
		targets[i] = step.Target
	}
	events.Indicator.Plan(plan.Kind.String(), plan.Anchor.String(), targets, plan.Total())
	m.player.Start(plan, from)
	m.animGen++
	if !m.player.Active() {
		m.completePlan(plan)
		return nil
	}
	return m.frameCmd()
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(frameMsg)
	if !ok || frame.gen != m.animGen || !m.player.Active() {
		return nil
	}
	if _, done := m.player.Advance(); !done {
		return m.frameCmd()
	}
	m.completePlan(m.player.Plan())
	return nil
}

func (m *Model) completePlan(plan indicator.Plan) {
	m.animator.Complete(plan)
	events.Indicator.Complete(plan.Kind.String(), m.animator.Dominant().String())
}

// indicatorColumn is the leading column of the indicator, following the
// running plan when there is one.
func (m *Model) indicatorColumn() float64 {
	if m.player.Active() {
		plan := m.player.Plan()
		return indicator.LeftColumn(plan.Anchor, m.player.Value(), m.animator.HostWidth(), m.animator.Metrics().Size.Width)
	}
	return m.animator.LeftColumn()
}

// indicatorTop follows the highlighted row while dragging and rests at the
// configured percentage otherwise.
func (m *Model) indicatorTop() (float64, error) {
	if m.tracker.Dragging() {
		_, ih := m.appearance.Size()
		top, err := indicator.MoveIndicatorTo(m.level.Cursor, m.opts.RowHeight, float64(ih))
		if err != nil {
			return 0, err
		}
		return m.menuOffset + top, nil
	}
	return m.restingTop()
}

func (m *Model) restingTop() (float64, error) {
	_, ih := m.appearance.Size()
	return indicator.VerticalAnchorFor(m.opts.IndicatorPercent, float64(m.bodyHeight()), float64(ih))
}

// indicatorFacing picks the edge the indicator is nearest to, which decides
// which way its shape points.
func (m *Model) indicatorFacing() geometry.EdgeSide {
	iw, _ := m.appearance.Size()
	if m.indicatorColumn()+float64(iw)/2 < float64(m.width)/2 {
		return geometry.Near
	}
	return geometry.Far
}

func (m *Model) applyHostSize() {
	if m.width <= 0 {
		return
	}
	if err := m.animator.SetHostWidth(float64(m.width)); err != nil {
		events.Action.Error(err)
		return
	}
	if m.rested {
		return
	}
	if err := m.animator.Rest(m.dock); err != nil {
		events.Action.Error(err)
		return
	}
	m.rested = true
}
