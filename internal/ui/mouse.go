package ui

import tea "github.com/charmbracelet/bubbletea"

// handleMouseMsg turns pointer events into drag lifecycle calls. Rows are
// measured from the top of the body, which is also the top of the screen.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch {
	case ev.Button == tea.MouseButtonWheelUp:
		return m.stepRow(-1)
	case ev.Button == tea.MouseButtonWheelDown:
		return m.stepRow(1)
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		return m.handlePress(ev)
	case ev.Action == tea.MouseActionMotion:
		if !m.tracker.Dragging() || m.keyboard {
			return nil
		}
		if err := m.moveTo(float64(ev.Y)); err != nil {
			return m.abortDrag(err)
		}
	case ev.Action == tea.MouseActionRelease:
		if !m.tracker.Dragging() || m.keyboard {
			return nil
		}
		if err := m.moveTo(float64(ev.Y)); err != nil {
			return m.abortDrag(err)
		}
		return m.endDrag()
	}
	return nil
}

// handlePress opens a drag when the press lands within the edge margin of an
// enabled border, or on the indicator itself.
func (m *Model) handlePress(ev tea.MouseMsg) tea.Cmd {
	if m.tracker.Dragging() || m.width <= 0 {
		return nil
	}
	edge, ok := m.tracker.Press(m.recognizer, ev.X, m.width)
	if !ok && m.zones.Get(indicatorZoneID).InBounds(ev) {
		edge, ok = m.animator.Dominant(), true
	}
	if !ok {
		return nil
	}
	return m.beginDrag(edge, float64(ev.Y), false)
}
