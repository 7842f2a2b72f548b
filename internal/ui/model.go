package ui

import (
	"errors"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/atomicstack/edgemenu/internal/animation"
	"github.com/atomicstack/edgemenu/internal/drag"
	"github.com/atomicstack/edgemenu/internal/geometry"
	"github.com/atomicstack/edgemenu/internal/indicator"
	"github.com/atomicstack/edgemenu/internal/menu"
	"github.com/atomicstack/edgemenu/internal/theme"
	uistate "github.com/atomicstack/edgemenu/internal/ui/state"
)

type level = uistate.Level

var styles = theme.Default()

const indicatorZoneID = "edgemenu-indicator"

type msgHandler func(tea.Msg) tea.Cmd

type tickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width            int
	Height           int
	ShowFooter       bool
	Print            bool
	Items            []menu.Item
	Edges            []geometry.EdgeSide
	EdgeMargin       int
	AllowOffscreen   bool
	Traverse         bool
	RowHeight        float64
	IndicatorPercent float64
	Appearance       theme.Appearance
	Timing           *indicator.Timing
	FPS              int
}

// Model implements the Bubble Tea model for the pull-out menu.
type Model struct {
	opts        Options
	level       *level
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	tracker     *drag.Tracker
	recognizer  drag.Recognizer
	unsubscribe func()
	animator    *indicator.Animator
	player      *animation.Player
	appearance  theme.Appearance
	dock        geometry.EdgeSide
	rested      bool
	animGen     int
	tick        tickFunc

	dragEdge   geometry.EdgeSide
	keyboard   bool
	pivot      int
	menuOffset float64
	pointerY   float64
	selection  *menu.Item

	zones            *zone.Manager
	keys             keyMap
	help             help.Model
	queryCursor      cursor.Model
	queryCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the model, its drag tracker and indicator animator.
func NewModel(opts Options) (*Model, error) {
	if len(opts.Edges) == 0 {
		return nil, errors.New("no edges enabled")
	}
	if !geometry.Positive(opts.RowHeight) {
		return nil, errors.New("row height must be positive")
	}
	if opts.Appearance == nil {
		opts.Appearance = theme.NewDefaultAppearance()
	}
	items := opts.Items
	if len(items) == 0 {
		items = menu.DefaultItems()
	}
	timing := indicator.DefaultTiming()
	if opts.Timing != nil {
		timing = *opts.Timing
	}
	w, h := opts.Appearance.Size()
	animator, err := indicator.New(indicator.Metrics{
		Size:         indicator.Size{Width: float64(w), Height: float64(h)},
		BorderMargin: opts.Appearance.BorderMargin(),
		Bounce:       opts.Appearance.BounceOffsets(),
	}, timing)
	if err != nil {
		return nil, err
	}

	m := &Model{
		opts:       opts,
		showFooter: opts.ShowFooter,
		tracker:    drag.New(),
		recognizer: drag.NewRecognizer(opts.Edges, opts.EdgeMargin),
		animator:   animator,
		player:     animation.NewPlayer(opts.FPS),
		appearance: opts.Appearance,
		dock:       opts.Edges[0],
		tick:       tea.Tick,
		zones:      zone.New(),
		keys:       newKeyMap(),
		help:       help.New(),
	}
	m.level = uistate.NewLevel(items)
	m.level.SetCursor(m.level.RestingRow(opts.IndicatorPercent))
	m.unsubscribe = m.tracker.Subscribe(traceDragEvent)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.applyHostSize()
	if styles.Footer != nil {
		m.help.Styles.ShortDesc = styles.Footer.Copy()
		m.help.Styles.ShortSeparator = styles.Footer.Copy()
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Query != nil {
		c.TextStyle = styles.Query.Copy()
	}
	c.SetChar(" ")
	m.queryCursor = c
	m.registerHandlers()
	return m, nil
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.queryCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateQueryCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Selection returns the most recently selected item.
func (m *Model) Selection() (menu.Item, bool) {
	if m.selection == nil {
		return menu.Item{}, false
	}
	return *m.selection, true
}

// Close releases the tracker subscription and the zone manager.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	if m.zones != nil {
		m.zones.Close()
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.queryCursorDirty {
		m.queryCursorDirty = false
		m.queryCursor.Blink = false
		if cmd := m.queryCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
