package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/edgemenu/internal/geometry"
)

type keyMap struct {
	OpenNear  key.Binding
	OpenFar   key.Binding
	Up        key.Binding
	Down      key.Binding
	First     key.Binding
	Last      key.Binding
	Select    key.Binding
	Cancel    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		OpenNear:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "pull from left")),
		OpenFar:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "pull from right")),
		Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		First:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		Last:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// helpBindings lists the keys that do something in the current state.
func (m *Model) helpBindings() []key.Binding {
	if m.tracker.Dragging() {
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Cancel}
	}
	return []key.Binding{m.keys.OpenNear, m.keys.OpenFar, m.keys.Quit}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.ForceQuit) {
		m.tracker.Cancel()
		return tea.Quit
	}
	if m.tracker.Dragging() {
		return m.handleDragKey(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.OpenNear):
		return m.openKeyboardDrag(geometry.Near)
	case key.Matches(keyMsg, m.keys.OpenFar):
		return m.openKeyboardDrag(geometry.Far)
	case key.Matches(keyMsg, m.keys.Up):
		m.moveResting(m.level.MoveCursorBy(-1))
	case key.Matches(keyMsg, m.keys.Down):
		m.moveResting(m.level.MoveCursorBy(1))
	case key.Matches(keyMsg, m.keys.First):
		m.moveResting(m.level.MoveCursorHome())
	case key.Matches(keyMsg, m.keys.Last):
		m.moveResting(m.level.MoveCursorEnd())
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	}
	return nil
}

// moveResting reports the row the next drag will pivot on.
func (m *Model) moveResting(moved bool) {
	if !moved {
		return
	}
	if item, ok := m.level.Current(); ok {
		m.setInfo(fmt.Sprintf("Next drag starts on %s", item.Title()))
	}
}

func (m *Model) handleDragKey(msg tea.KeyMsg) tea.Cmd {
	if handled, cmd := m.handleTextInput(msg); handled {
		return cmd
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		return m.stepRow(-1)
	case key.Matches(msg, m.keys.Down):
		return m.stepRow(1)
	case key.Matches(msg, m.keys.First):
		return m.stepRow(-m.level.Len())
	case key.Matches(msg, m.keys.Last):
		return m.stepRow(m.level.Len())
	case key.Matches(msg, m.keys.Select):
		return m.endDrag()
	case key.Matches(msg, m.keys.Cancel):
		return m.cancelDrag()
	}
	return nil
}
