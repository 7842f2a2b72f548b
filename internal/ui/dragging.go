package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/edgemenu/internal/drag"
	"github.com/atomicstack/edgemenu/internal/geometry"
	"github.com/atomicstack/edgemenu/internal/logging/events"
)

// bodyHeight is the number of rows the menu can travel in; the bottom bar
// and footer are excluded.
func (m *Model) bodyHeight() int {
	reserved := 2
	if m.showFooter {
		reserved++
	}
	if h := m.height - reserved; h > 0 {
		return h
	}
	return 0
}

func (m *Model) dragGeometry() (drag.Geometry, error) {
	rows := m.level.Len()
	menuHeight := float64(rows) * m.opts.RowHeight
	g := drag.Geometry{
		MenuHeight:     menuHeight,
		RowHeight:      m.opts.RowHeight,
		RowCount:       rows,
		AllowOffscreen: m.opts.AllowOffscreen,
	}
	if m.opts.AllowOffscreen {
		return g, nil
	}
	travel, err := geometry.TravelRange(float64(m.bodyHeight()), menuHeight)
	if err != nil {
		return g, err
	}
	g.Travel = travel
	return g, nil
}

// restingPointer is the vertical centre of the resting indicator; keyboard
// drags start there.
func (m *Model) restingPointer() (float64, error) {
	_, ih := m.appearance.Size()
	top, err := m.restingTop()
	if err != nil {
		return 0, err
	}
	return top + float64(ih)/2, nil
}

func (m *Model) beginDrag(edge geometry.EdgeSide, y float64, keyboard bool) tea.Cmd {
	if m.tracker.Dragging() {
		return nil
	}
	m.pivot = m.level.Cursor
	if err := m.tracker.Begin(y, m.pivot); err != nil {
		return m.abortDrag(err)
	}
	m.dragEdge = edge
	m.keyboard = keyboard
	m.errMsg = ""
	m.level.ClearQuery()

	traverse := edge != m.dock && m.opts.Traverse
	column := m.indicatorColumn()
	plan, err := m.animator.Reveal(m.dock, traverse)
	if err != nil {
		return m.abortDrag(err)
	}
	cmd := m.startPlan(plan, column)
	if err := m.moveTo(y); err != nil {
		return m.abortDrag(err)
	}
	return cmd
}

func (m *Model) moveTo(y float64) error {
	g, err := m.dragGeometry()
	if err != nil {
		return err
	}
	res, err := m.tracker.Move(y, g)
	if err != nil {
		return err
	}
	m.menuOffset = res.Offset
	m.pointerY = y
	m.level.SetCursor(res.Index)
	return nil
}

func (m *Model) moveToRow(index int) error {
	g, err := m.dragGeometry()
	if err != nil {
		return err
	}
	y, err := m.tracker.PointerFor(index, g)
	if err != nil {
		return err
	}
	return m.moveTo(y)
}

// stepRow moves the virtual pointer delta rows from the highlighted one.
func (m *Model) stepRow(delta int) tea.Cmd {
	if !m.tracker.Dragging() {
		return nil
	}
	if err := m.moveToRow(m.level.Cursor + delta); err != nil {
		return m.abortDrag(err)
	}
	return nil
}

func (m *Model) endDrag() tea.Cmd {
	if !m.tracker.Dragging() {
		return nil
	}
	idx := m.tracker.End()
	m.level.SetCursor(idx)
	m.level.ClearQuery()
	m.keyboard = false
	cmd := m.restoreIndicator()
	item, ok := m.level.At(idx)
	if !ok {
		return cmd
	}
	m.selection = &item
	m.errMsg = ""
	m.setInfo(fmt.Sprintf("Selected %s", item.Title()))
	events.UI.Select(item.ID, item.Title())
	if m.opts.Print {
		return tea.Quit
	}
	return cmd
}

func (m *Model) cancelDrag() tea.Cmd {
	if !m.tracker.Dragging() {
		return nil
	}
	m.tracker.Cancel()
	m.level.SetCursor(m.pivot)
	m.level.ClearQuery()
	m.keyboard = false
	return m.restoreIndicator()
}

// abortDrag ends the interaction after a core error: the session is dropped,
// the indicator goes home and the menu keeps its last valid offset.
func (m *Model) abortDrag(err error) tea.Cmd {
	events.Action.Error(err)
	m.errMsg = err.Error()
	m.forceClearInfo()
	m.tracker.Cancel()
	m.level.SetCursor(m.pivot)
	m.level.ClearQuery()
	m.keyboard = false
	return m.restoreIndicator()
}

func (m *Model) restoreIndicator() tea.Cmd {
	column := m.indicatorColumn()
	plan, err := m.animator.Restore(m.dock)
	if err != nil {
		events.Action.Error(err)
		m.player.Stop()
		return nil
	}
	return m.startPlan(plan, column)
}

func (m *Model) openKeyboardDrag(edge geometry.EdgeSide) tea.Cmd {
	if m.width <= 0 || m.bodyHeight() <= 0 {
		return nil
	}
	if !m.recognizer.Enabled(edge) {
		m.setInfo(fmt.Sprintf("Dragging from the %s edge is disabled", edgeName(edge)))
		return nil
	}
	y, err := m.restingPointer()
	if err != nil {
		events.Action.Error(err)
		m.errMsg = err.Error()
		return nil
	}
	events.UI.KeyboardDrag(edge.String(), m.level.Cursor)
	return m.beginDrag(edge, y, true)
}

func edgeName(edge geometry.EdgeSide) string {
	if edge == geometry.Far {
		return "right"
	}
	return "left"
}

func traceDragEvent(ev drag.Event) {
	switch ev.Kind {
	case drag.KindPossible:
		events.Drag.Possible(ev.Edge.String(), ev.X)
	case drag.KindFailed:
		events.Drag.Failed(ev.X)
	case drag.KindBegan:
		events.Drag.Begin(ev.Y, ev.Index)
	case drag.KindMoved:
		events.Drag.Move(ev.Y, ev.Offset, ev.Index)
	case drag.KindEnded:
		events.Drag.End(ev.Index)
	case drag.KindCancelled:
		events.Drag.Cancel(ev.Index)
	case drag.KindRejected:
		events.Drag.Rejected(ev.Err)
	}
}
