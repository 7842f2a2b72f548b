package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/edgemenu/internal/logging/events"
)

const queryPlaceholder = "(type to jump)"

func (m *Model) updateQueryCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.queryCursor, cmd = m.queryCursor.Update(msg)
	return cmd
}

func (m *Model) noteQueryCursorChange(before int) {
	if before != m.level.QueryCursorPos() {
		m.queryCursorDirty = true
	}
}

// handleTextInput feeds the type-ahead query while a drag is open. The
// pointer jumps to the best match after every edit.
func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	current := m.level
	before := current.QueryCursorPos()
	var (
		best    int
		changed bool
	)
	switch msg.Type {
	case tea.KeyCtrlU:
		if current.Query == "" {
			return false, nil
		}
		current.ClearQuery()
		m.noteQueryCursorChange(before)
		return true, nil
	case tea.KeyCtrlW:
		best, changed = current.DeleteQueryWordBackward()
		if changed {
			events.Query.Backspace(current.Query)
		}
	case tea.KeyBackspace:
		best, changed = current.DeleteQueryRuneBackward()
		if changed {
			events.Query.Backspace(current.Query)
		}
	case tea.KeyRunes, tea.KeySpace:
		text := string(msg.Runes)
		if msg.Type == tea.KeySpace {
			text = " "
		}
		best, changed = current.InsertQueryText(text)
		if changed {
			events.Query.Append(current.Query)
		}
	default:
		return false, nil
	}
	if !changed {
		return true, nil
	}
	m.noteQueryCursorChange(before)
	if best < 0 {
		return true, nil
	}
	events.Query.Match(current.Query, best)
	if err := m.moveToRow(best); err != nil {
		return true, m.abortDrag(err)
	}
	return true, nil
}

func (m *Model) queryPrompt() string {
	if !m.tracker.Dragging() {
		return ""
	}
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.queryCursor.Style = styles.Cursor.Copy()
	}
	if styles.Query != nil {
		m.queryCursor.TextStyle = styles.Query.Copy()
	} else {
		m.queryCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.QueryPrompt != nil {
		prompt = styles.QueryPrompt.Render(prompt)
	}
	text := m.level.Query
	if text == "" {
		runes := []rune(queryPlaceholder)
		if styles.QueryPlaceholder != nil {
			m.queryCursor.TextStyle = styles.QueryPlaceholder.Copy()
		}
		caret := m.renderQueryCursor(string(runes[0]))
		return prompt + caret + render(styles.QueryPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := m.level.QueryCursorPos()
	before := render(styles.Query, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Query, string(runes[pos+1:]))
	}
	return prompt + before + m.renderQueryCursor(caretRune) + after
}

func (m *Model) renderQueryCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.queryCursor.SetChar(char)

	base := m.queryCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.queryCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
