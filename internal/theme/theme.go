package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Hint             *lipgloss.Style
	Row              *lipgloss.Style
	RowMatch         *lipgloss.Style
	SelectedRow      *lipgloss.Style
	Error            *lipgloss.Style
	Info             *lipgloss.Style
	Footer           *lipgloss.Style
	QueryPrompt      *lipgloss.Style
	Query            *lipgloss.Style
	QueryPlaceholder *lipgloss.Style
	Cursor           *lipgloss.Style
}

var defaultStyles = Styles{
	Hint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Row: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("235")),
	),
	RowMatch: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Background(lipgloss.Color("235")).Underline(true),
	),
	SelectedRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	QueryPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Query: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	QueryPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
