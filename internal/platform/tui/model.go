package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/wow-terminal/internal/config"
	"github.com/vovakirdan/wow-terminal/internal/core"
	"github.com/vovakirdan/wow-terminal/internal/registry"
	"github.com/vovakirdan/wow-terminal/internal/shell"
)

// Options configures a terminal model.
type Options struct {
	Config config.Config

	// Initial size; replaced by the first WindowSizeMsg.
	Width  int
	Height int

	// Seed for the guessing game and backdrops. 0 means seed from the clock.
	Seed int64

	Renderer *lipgloss.Renderer
	Logger   *log.Logger
}

// transcriptLine is one wrapped row of the transcript.
type transcriptLine struct {
	text string
	echo bool
}

// Model is the Bubble Tea model of one terminal session.
type Model struct {
	cfg      config.Config
	runtime  core.RuntimeConfig
	state    shell.State
	rng      *rand.Rand
	logger   *log.Logger
	renderer *lipgloss.Renderer

	background registry.Background
	mounts     int64
	palette    Palette
	loop       Loop
	popup      Popup

	keys       KeyMap
	help       help.Model
	input      textinput.Model
	transcript viewport.Model
	lines      []transcriptLine

	frame    *core.Screen
	layout   layout
	quitting bool
}

// NewModel creates a terminal model with a fresh session state. The redraw
// loop is armed; Init schedules its first tick.
func NewModel(opts Options) Model {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Config
	interval := cfg.Interval()
	runtime := core.RuntimeConfig{
		ScreenW:  opts.Width,
		ScreenH:  opts.Height,
		Seed:     seed,
		Backdrop: cfg.Params(),
	}

	keys := DefaultKeyMap()

	input := textinput.New()
	input.Prompt = ""
	input.Focus()

	vp := viewport.New(0, 0)
	vp.KeyMap = keys.viewportKeys()
	vp.MouseWheelEnabled = true

	m := Model{
		cfg:        cfg,
		runtime:    runtime,
		state:      shell.NewState(cfg.StartTheme()),
		rng:        rand.New(rand.NewSource(seed)),
		logger:     logger,
		renderer:   opts.Renderer,
		loop:       NewLoop(interval).Start(),
		popup:      NewPopup(cfg.PopupDuration()),
		keys:       keys,
		help:       plainHelp(),
		input:      input,
		transcript: vp,
		frame:      core.NewScreen(opts.Width, opts.Height),
	}
	m.mountBackground()
	m.relayout()
	return m
}

// Init starts the redraw loop.
func (m Model) Init() tea.Cmd {
	return m.loop.Tick()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.layout.panel.Contains(msg.X, msg.Y) {
			return m, nil
		}
		var cmd tea.Cmd
		m.transcript, cmd = m.transcript.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		if !m.loop.Running() {
			m.loop = m.loop.Start()
			m.logger.Debug("backdrop resumed")
			return m, m.loop.Tick()
		}
		return m, nil

	case tea.BlurMsg:
		m.loop = m.loop.Stop()
		m.logger.Debug("backdrop paused")
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case popupExpiredMsg:
		m.popup = m.popup.Expire(msg)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.loop = m.loop.Stop()
		m.popup = m.popup.Cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleTheme):
		state, res := shell.ToggleTheme(m.state, m.rng)
		return m.apply(state, res)

	case key.Matches(msg, m.keys.Submit):
		state, res := shell.Submit(m.state, m.input.Value(), m.rng)
		if res.Ignored {
			return m, nil
		}
		m.input.Reset()
		return m.apply(state, res)

	case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.transcript, cmd = m.transcript.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// apply installs the state produced by the interpreter and runs the side
// effects it reported.
func (m Model) apply(state shell.State, res shell.Result) (tea.Model, tea.Cmd) {
	m.state = state

	var cmds []tea.Cmd
	for _, ev := range res.Events {
		switch ev.Kind {
		case shell.EventThemeChanged:
			m.mountBackground()
			if m.loop.Running() {
				// A new generation drops ticks scheduled for the old backdrop.
				m.loop = m.loop.Start()
				cmds = append(cmds, m.loop.Tick())
			}
			m.logger.Info("theme changed", "theme", ev.Theme, "background", m.palette.Background)

		case shell.EventLevelUp:
			var cmd tea.Cmd
			m.popup, cmd = m.popup.Show(fmt.Sprintf("LEVEL UP! 🌟 Level %d", ev.Level))
			cmds = append(cmds, cmd)
			m.logger.Info("level up", "level", ev.Level, "xp", m.state.XP)

		case shell.EventGameStarted:
			m.logger.Debug("guessing game started")

		case shell.EventGameWon:
			m.logger.Info("guessing game won", "tries", ev.Tries)
		}
	}

	if res.Awarded > 0 {
		m.logger.Debug("xp awarded", "amount", res.Awarded, "total", m.state.XP)
	}

	m.refreshTranscript()
	m.transcript.GotoBottom()
	return m, tea.Batch(cmds...)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.frame.Resize(msg.Width, msg.Height)

	// The surface is sized to the window, so it starts over on resize.
	if m.background != nil {
		m.background.Reset(m.backgroundConfig())
	}

	follow := m.transcript.AtBottom()
	m.relayout()
	if follow {
		m.transcript.GotoBottom()
	}
	return m, nil
}

// handleTick advances the backdrop one frame and schedules the next.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.loop.Accept(msg) {
		return m, nil
	}
	if m.background != nil {
		m.background.Step()
	}
	return m, m.loop.Tick()
}

// mountBackground replaces the backdrop with the one for the current theme.
// At most one backdrop exists per session.
func (m *Model) mountBackground() {
	m.palette = NewPalette(m.renderer, m.state.Theme)

	bg, err := registry.Create(m.palette.Background)
	if err != nil {
		m.logger.Error("cannot mount background", "id", m.palette.Background, "error", err)
		m.background = nil
		return
	}
	m.mounts++
	bg.Reset(m.backgroundConfig())
	m.background = bg
}

// backgroundConfig varies the seed per mount so remounting the same
// backdrop does not replay the same particles.
func (m *Model) backgroundConfig() core.RuntimeConfig {
	rc := m.runtime
	rc.Seed += m.mounts
	return rc
}

// relayout recomputes the chrome geometry and rewraps the transcript.
func (m *Model) relayout() {
	m.layout = computeLayout(m.runtime.ScreenW, m.runtime.ScreenH, m.cfg.Banner)
	m.transcript.Width = m.layout.transcript.W
	m.transcript.Height = m.layout.transcript.H
	m.help.Width = m.layout.footer.W
	m.refreshTranscript()
}

// refreshTranscript wraps the transcript to the panel width and hands the
// rows to the viewport, which tracks scrolling.
func (m *Model) refreshTranscript() {
	width := m.layout.transcript.W
	m.lines = make([]transcriptLine, 0, len(m.state.Transcript))
	for _, entry := range m.state.Transcript {
		echo := strings.HasPrefix(entry, shell.EchoPrefix)
		for _, line := range strings.Split(entry, "\n") {
			if width > 0 {
				line = runewidth.Wrap(line, width)
			}
			for _, row := range strings.Split(line, "\n") {
				m.lines = append(m.lines, transcriptLine{text: row, echo: echo})
			}
		}
	}

	rows := make([]string, len(m.lines))
	for i, l := range m.lines {
		rows[i] = l.text
	}
	m.transcript.SetContent(strings.Join(rows, "\n"))
}

// visibleLines returns the transcript rows inside the viewport.
func (m Model) visibleLines() []transcriptLine {
	start := core.Clamp(m.transcript.YOffset, 0, len(m.lines))
	end := core.Clamp(start+m.transcript.Height, start, len(m.lines))
	return m.lines[start:end]
}

// State returns the interpreter state.
func (m Model) State() shell.State {
	return m.state
}

// Background returns the mounted backdrop, or nil if none could be created.
func (m Model) Background() registry.Background {
	return m.background
}

// Animating reports whether the redraw loop is running.
func (m Model) Animating() bool {
	return m.loop.Running()
}

// PopupText returns the visible popup message, or empty if none is shown.
func (m Model) PopupText() string {
	if !m.popup.Visible() {
		return ""
	}
	return m.popup.Text()
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse wheel scrolls the transcript
		tea.WithReportFocus(),     // Pause the backdrop while unfocused
	)

	_, err := p.Run()
	return err
}
