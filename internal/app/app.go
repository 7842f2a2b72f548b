package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/edgemenu/internal/geometry"
	"github.com/atomicstack/edgemenu/internal/logging/events"
	"github.com/atomicstack/edgemenu/internal/menu"
	"github.com/atomicstack/edgemenu/internal/theme"
	"github.com/atomicstack/edgemenu/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Edges            []geometry.EdgeSide
	AllowOffscreen   bool
	Traverse         bool
	EdgeMargin       int
	RowHeight        float64
	BorderMargin     float64
	Bounce           geometry.BounceOffsets
	IndicatorWidth   int
	IndicatorHeight  int
	IndicatorPercent float64
	Items            []menu.Item
	Width            int
	Height           int
	ShowFooter       bool
	Print            bool
}

// DefaultConfig returns the built-in settings; indicator scalars come from
// the default appearance.
func DefaultConfig() Config {
	look := theme.NewDefaultAppearance()
	return Config{
		Edges:            []geometry.EdgeSide{geometry.Near, geometry.Far},
		Traverse:         true,
		EdgeMargin:       2,
		RowHeight:        2,
		BorderMargin:     look.Margin,
		Bounce:           look.Bounce,
		IndicatorWidth:   look.Width,
		IndicatorHeight:  look.Height,
		IndicatorPercent: 50,
		Items:            menu.DefaultItems(),
		ShowFooter:       true,
	}
}

// Options converts the configuration into UI options.
func (c Config) Options() ui.Options {
	look := theme.NewDefaultAppearance()
	look.Width = c.IndicatorWidth
	look.Height = c.IndicatorHeight
	look.Margin = c.BorderMargin
	look.Bounce = c.Bounce
	return ui.Options{
		Width:            c.Width,
		Height:           c.Height,
		ShowFooter:       c.ShowFooter,
		Print:            c.Print,
		Items:            c.Items,
		Edges:            c.Edges,
		EdgeMargin:       c.EdgeMargin,
		AllowOffscreen:   c.AllowOffscreen,
		Traverse:         c.Traverse,
		RowHeight:        c.RowHeight,
		IndicatorPercent: c.IndicatorPercent,
		Appearance:       look,
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	return run(cfg, os.Stdout)
}

func run(cfg Config, out io.Writer, opts ...tea.ProgramOption) error {
	model, err := ui.NewModel(cfg.Options())
	if err != nil {
		return fmt.Errorf("build ui: %w", err)
	}
	defer model.Close()
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	program := tea.NewProgram(model, opts...)
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}
	return report(final, cfg.Print, out)
}

func report(final tea.Model, printID bool, out io.Writer) error {
	m, ok := final.(*ui.Model)
	if !ok {
		return nil
	}
	item, ok := m.Selection()
	if !ok {
		events.App.Exit("")
		return nil
	}
	events.App.Exit(item.ID)
	if !printID {
		return nil
	}
	_, err := fmt.Fprintln(out, item.ID)
	return err
}
