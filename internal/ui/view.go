package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/edgemenu/internal/geometry"
	"github.com/atomicstack/edgemenu/internal/logging/events"
	"github.com/atomicstack/edgemenu/internal/theme"
)

const (
	idleHint       = "drag from the screen edge or press [ / ]"
	selectedMarker = "▸ "
	menuPadding    = 4
	menuGap        = 1
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	out := m.renderBody(m.bodyHeight())

	var status styledLine
	if m.errMsg != "" {
		status = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	} else if info := m.currentInfo(); info != "" {
		status = styledLine{text: info, style: styles.Info}
	}
	bottom := []styledLine{status, {text: m.queryPrompt(), raw: true}}
	if m.showFooter {
		m.help.Width = m.width
		bottom = append(bottom, styledLine{text: m.help.ShortHelpView(m.helpBindings()), raw: true})
	}
	bottom = applyWidth(bottom, m.width)
	out = append(out, renderLines(bottom))
	return m.zones.Scan(strings.Join(out, "\n"))
}

// renderBody paints the backdrop, the pulled-out menu column while a drag
// is open, and the indicator on top.
func (m *Model) renderBody(height int) []string {
	if height <= 0 || m.width <= 0 {
		return nil
	}
	rows := make([]string, height)
	blank := strings.Repeat(" ", m.width)
	for i := range rows {
		rows[i] = blank
	}
	if m.tracker.Dragging() {
		m.overlayMenu(rows)
	} else {
		hint := truncateText(idleHint, m.width)
		if styles.Hint != nil {
			hint = styles.Hint.Render(hint)
		}
		rows[height/2] = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hint)
	}
	m.overlayIndicator(rows)
	return rows
}

func (m *Model) menuColumnWidth() int {
	widest := 0
	for _, item := range m.level.Items {
		if w := ansi.StringWidth(item.Title()); w > widest {
			widest = w
		}
	}
	width := widest + menuPadding
	if limit := m.width / 2; width > limit {
		width = limit
	}
	if width < 1 {
		width = 1
	}
	return width
}

// menuColumnX places the column beside the indicator on the side the drag
// came from.
func (m *Model) menuColumnX(width int) int {
	iw, _ := m.appearance.Size()
	x := iw + menuGap
	if m.dragEdge == geometry.Far {
		x = m.width - iw - menuGap - width
	}
	return geometry.ClampInt(x, 0, m.width-width)
}

func (m *Model) overlayMenu(rows []string) {
	width := m.menuColumnWidth()
	x := m.menuColumnX(width)
	rh := m.opts.RowHeight
	for i, item := range m.level.Items {
		top := m.menuOffset + float64(i)*rh
		first := int(math.Floor(top))
		last := int(math.Floor(top+rh)) - 1
		if last < first {
			last = first
		}
		for y := first; y <= last; y++ {
			if y < 0 || y >= len(rows) {
				continue
			}
			label := ""
			if y == first {
				label = item.Title()
			}
			rows[y] = overlay(rows[y], x, m.renderRow(label, i, width), m.width)
		}
	}
}

func (m *Model) renderRow(label string, idx, width int) string {
	style := styles.Row
	prefix := "  "
	switch {
	case idx == m.level.Cursor:
		style = styles.SelectedRow
		prefix = selectedMarker
	case m.level.IsMatch(idx):
		style = styles.RowMatch
	}
	text := ""
	if label != "" {
		text = truncate.StringWithTail(prefix+label, uint(width), "…")
	}
	if pad := width - ansi.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	if style == nil {
		return text
	}
	return style.Render(text)
}

func (m *Model) overlayIndicator(rows []string) {
	iw, ih := m.appearance.Size()
	topf, err := m.indicatorTop()
	if err != nil {
		return
	}
	col := int(math.Round(m.indicatorColumn()))
	top := int(math.Round(topf))
	from := geometry.ClampInt(col, 0, m.width)
	to := geometry.ClampInt(col+iw, 0, m.width)
	if from >= to {
		return
	}
	shape := m.appearance.Shape(m.indicatorFacing(), theme.Frame{X: col, Y: top, Width: iw, Height: ih})
	style := m.appearance.Style()
	marked := false
	for i, line := range shape {
		y := top + i
		if y < 0 || y >= len(rows) {
			continue
		}
		visible := style.Render(ansi.Cut(line, from-col, to-col))
		if !marked {
			visible = m.zones.Mark(indicatorZoneID, visible)
			marked = true
		}
		rows[y] = overlay(rows[y], from, visible, m.width)
	}
}

// overlay replaces the cells of base starting at column x with content.
func overlay(base string, x int, content string, width int) string {
	end := x + ansi.StringWidth(content)
	result := ansi.Cut(base, 0, x) + content
	if end < width {
		result += ansi.Cut(base, end, width)
	}
	return result
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	m.applyHostSize()
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if ansi.StringWidth(text) > width {
				text = truncate.StringWithTail(text, uint(width), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.style == nil {
			out[i] = line.text
			continue
		}
		out[i] = line.style.Render(line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
