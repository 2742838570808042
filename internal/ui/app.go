package ui

import (
	"context"
	"errors"
	"log"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/carousel"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/feed"
	"github.com/five82/marquee/internal/frameloop"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
)

const (
	stripTop  = 2 // header and a spacer line sit above the strip
	speedStep = 2 // cells per second
)

// fadePalette is cycled by the fade color key. The empty entry follows the
// theme background.
var fadePalette = []string{"", "#000000", "#ffffff", "#bd93f9"}

// Options configures the UI.
type Options struct {
	Config    config.Config
	Items     []config.Item // shown until the feed delivers; defaults when empty
	Store     *state.Store
	Feed      <-chan feed.Update // nil when no items file is watched
	Prefs     prefs.Prefs
	PrefsPath string
	Clock     frameloop.Clock
	Logger    carousel.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store     *state.Store
	feed      <-chan feed.Update
	prefs     prefs.Prefs
	prefsPath string
	logger    carousel.Logger
	base      carousel.Options

	// Engine
	clock    frameloop.Clock
	loop     *frameloop.Loop
	strip    *terminalStrip
	carousel *carousel.Carousel

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	pressed  bool
	hovering bool
}

// New creates a new Bubble Tea model and starts its carousel.
func New(opts Options) Model {
	clock := opts.Clock
	if clock == nil {
		clock = frameloop.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	items := opts.Items
	if len(items) == 0 {
		items = config.DefaultItems()
	}

	base := opts.Config.Carousel
	if opts.Prefs.FadeColor != "" {
		base.FadeColor = opts.Prefs.FadeColor
	}
	base.Hooks = telemetry{store: store, now: clock.Now}
	base.Logger = logger

	m := Model{
		store:     store,
		feed:      opts.Feed,
		prefs:     opts.Prefs,
		prefsPath: prefsPath,
		logger:    logger,
		base:      base,
		clock:     clock,
		loop:      frameloop.New(clock),
		strip:     newStrip(nil, opts.Config.Gap, opts.Config.MinCardWidth),
		theme:     GetTheme(opts.Prefs.Theme),
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
	if m.feed != nil {
		m.strip.pending = 1
	}
	store.UpdateFeed(len(items), nil)
	m.rebuild(items)
	return m
}

// rebuild replaces the carousel, keeping any tunables changed at runtime.
func (m *Model) rebuild(items []config.Item) {
	opts := m.base
	if m.carousel != nil {
		opts = m.carousel.Options()
		m.carousel.Destroy()
	}
	m.pressed = false
	m.hovering = false

	m.strip.Reset(items)
	c, err := carousel.New(m.strip, m.loop, opts)
	if err != nil {
		m.logger.Printf("ui: start carousel: %v", err)
		return
	}
	m.carousel = c
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(), waitForFeed(m.feed))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.loop.Advance(m.clock.Now())
		m.observe()
		return m, frameCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.strip.Resize(msg.Width)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.BlurMsg:
		m.pressed = false
		m.carousel.PointerLeave()
		m.hover(false)
		return m, nil

	case feedMsg:
		m.applyFeed(feed.Update(msg))
		return m, waitForFeed(m.feed)

	case feedClosedMsg:
		m.feed = nil
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	c := m.carousel
	opts := c.Options()
	switch {
	case key.Matches(msg, m.keys.Quit):
		c.Destroy()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Pause):
		if c.Phase() == carousel.PhasePaused {
			c.Resume()
		} else {
			c.Pause()
		}

	case key.Matches(msg, m.keys.Reverse):
		c.SetReverseDirection(!opts.ReverseDirection)

	case key.Matches(msg, m.keys.Faster):
		c.SetSpeed(opts.Speed + speedStep)

	case key.Matches(msg, m.keys.Slower):
		c.SetSpeed(max(opts.Speed-speedStep, 0))

	case key.Matches(msg, m.keys.Remeasure):
		logger := m.logger
		c.Remeasure(func() {
			if width, ok := c.SetWidth(); ok {
				logger.Printf("ui: remeasured set width %.2f", width)
			}
		})

	case key.Matches(msg, m.keys.WiderFade):
		c.SetFadeWidth(opts.FadeWidth + 1)

	case key.Matches(msg, m.keys.NarrowerFade):
		c.SetFadeWidth(max(opts.FadeWidth-1, 0))

	case key.Matches(msg, m.keys.FadeColor):
		next := nextFadeColor(opts.FadeColor)
		c.SetFadeColor(next)
		m.prefs.FadeColor = next
		m.savePrefs()

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
	}
	m.observe()
	return m, nil
}

// handleMouse maps terminal mouse events onto the carousel's pointer model.
// Presses only count on the strip rows; a drag keeps tracking anywhere.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	c := m.carousel
	inStrip := msg.Y >= stripTop && msg.Y < stripTop+cardHeight
	x := float64(msg.X)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && inStrip {
			m.pressed = true
			c.PointerDown(carousel.MouseAt(x))
		}
	case tea.MouseActionMotion:
		if m.pressed {
			c.PointerMove(carousel.MouseAt(x))
			return
		}
		m.hover(inStrip)
	case tea.MouseActionRelease:
		if m.pressed {
			m.pressed = false
			c.PointerUp()
		}
		m.hover(inStrip)
	}
}

func (m *Model) hover(inside bool) {
	switch {
	case inside && !m.hovering:
		m.hovering = true
		m.carousel.HoverEnter()
	case !inside && m.hovering:
		m.hovering = false
		m.carousel.HoverLeave()
	}
}

// applyFeed shows a new items load. Failed or empty loads keep the current
// items on screen.
func (m *Model) applyFeed(u feed.Update) {
	m.strip.pending = 0
	if u.Err != nil {
		m.store.UpdateFeed(0, u.Err)
		return
	}
	if len(u.Items) == 0 {
		m.store.UpdateFeed(0, errEmptyFeed)
		m.logger.Printf("ui: %v, keeping current items", errEmptyFeed)
		return
	}
	m.store.UpdateFeed(len(u.Items), nil)
	if slices.Equal(u.Items, m.strip.items) {
		return
	}
	if !m.strip.Replace(u.Items) {
		m.rebuild(u.Items)
	}
}

var errEmptyFeed = errors.New("items file has no items")

func (m Model) observe() {
	c := m.carousel
	opts := c.Options()
	width, _ := c.SetWidth()
	m.store.Observe(state.Motion{
		Phase:    c.Phase().String(),
		Position: c.Position(),
		SetWidth: width,
		Velocity: c.Velocity(),
		Speed:    opts.Speed,
		Reverse:  opts.ReverseDirection,
		Ready:    c.Ready(),
	})
}

func (m Model) savePrefs() {
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Printf("ui: save prefs: %v", err)
	}
}

func nextFadeColor(current string) string {
	i := slices.Index(fadePalette, current)
	return fadePalette[(i+1)%len(fadePalette)]
}

// Messages

type frameMsg time.Time

type feedMsg feed.Update

type feedClosedMsg struct{}

// Commands

func frameCmd() tea.Cmd {
	return tea.Tick(frameloop.DefaultFrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func waitForFeed(ch <-chan feed.Update) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return feedClosedMsg{}
		}
		return feedMsg(u)
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
