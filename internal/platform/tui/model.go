package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jamesrmoro/commits-invaders/internal/audio"
	"github.com/jamesrmoro/commits-invaders/internal/calendar"
	"github.com/jamesrmoro/commits-invaders/internal/config"
	"github.com/jamesrmoro/commits-invaders/internal/contrib"
	"github.com/jamesrmoro/commits-invaders/internal/core"
	"github.com/jamesrmoro/commits-invaders/internal/loadgen"
	"github.com/jamesrmoro/commits-invaders/internal/registry"
)

// loadTimeout bounds a single calendar fetch.
const loadTimeout = 20 * time.Second

// Options configures a Model.
type Options struct {
	Source  contrib.Source
	Sound   audio.Player
	Logger  *log.Logger
	Runtime core.RuntimeConfig

	// User is loaded immediately when set; otherwise the prompt opens.
	User string

	// Suggest pre-fills the username prompt.
	Suggest string

	// HoldWindow is how long a direction key stays held after a press.
	HoldWindow time.Duration

	// Renderer styles the screen; nil uses the default renderer.
	Renderer *ScreenRenderer
}

// loadResultMsg carries a finished calendar load back into the update loop.
type loadResultMsg struct {
	token loadgen.Token
	user  string
	cells []calendar.Cell
	err   error
}

// Model is the Bubble Tea model for running Commits Invaders.
type Model struct {
	game     registry.Loadable
	screen   *core.Screen
	renderer *ScreenRenderer
	source   contrib.Source
	sound    audio.Player
	logger   *log.Logger
	config   core.RuntimeConfig
	now      func() time.Time

	keys  *KeyMapper
	holds *HoldTracker
	gen   *loadgen.Tracker
	input textinput.Model
	help  help.Model

	inputFrame core.InputFrame
	gameState  core.GameState
	user       string
	prompting  bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Loadable, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	def := core.DefaultConfig()
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.Noop{}
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = NewScreenRenderer(nil)
	}
	window := opts.HoldWindow
	if window <= 0 {
		window = 150 * time.Millisecond
	}

	ti := textinput.New()
	ti.Prompt = "GitHub user: "
	ti.Placeholder = "octocat"
	ti.CharLimit = 39
	ti.SetValue(opts.Suggest)

	h := help.New()
	h.ShowAll = false

	user := strings.TrimSpace(opts.User)
	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		renderer:   renderer,
		source:     opts.Source,
		sound:      sound,
		logger:     logger,
		config:     cfg,
		now:        time.Now,
		keys:       NewKeyMapper(),
		holds:      NewHoldTracker(window),
		gen:        &loadgen.Tracker{},
		input:      ti,
		help:       h,
		inputFrame: core.NewInputFrame(),
		user:       user,
		prompting:  user == "",
	}
	if m.prompting {
		m.input.Focus()
	}
	return m
}

// playRows leaves the bottom row for the prompt or help line.
func playRows(h int) int {
	return max(h-1, 1)
}

func (m Model) gameRuntime() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = playRows(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameRuntime())

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if !m.prompting {
		cmds = append(cmds, m.startLoad(m.user))
	} else {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

// startLoad begins fetching user's calendar and returns the command that
// delivers the result. Any load still in flight becomes stale.
func (m Model) startLoad(user string) tea.Cmd {
	token := m.gen.Next()
	m.game.BeginLoad(user)
	m.logger.Info("loading calendar", "user", user)

	src := m.source
	return func() tea.Msg {
		if src == nil {
			return loadResultMsg{token: token, user: user, err: fmt.Errorf("tui: no calendar source configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		cells, err := contrib.Load(ctx, src, user)
		return loadResultMsg{token: token, user: user, cells: cells, err: err}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompting {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case loadResultMsg:
		return m.handleLoad(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.prompting {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handlePromptKey feeds the username prompt.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		user := strings.TrimSpace(m.input.Value())
		if user == "" {
			return m, nil
		}
		m.user = user
		m.prompting = false
		m.input.Blur()
		m.input.Reset()
		m.holds.ReleaseAll()
		return m, m.startLoad(user)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.holds.Press(action, m.now())
	case core.ActionRestart:
		return m.restart()
	case core.ActionReload:
		if m.user != "" {
			m.holds.ReleaseAll()
			return m, m.startLoad(m.user)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// restart drops the current game and reopens the username prompt.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.gen.Next()
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.gameRuntime())
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.holds.ReleaseAll()
	m.prompting = true
	m.input.SetValue(m.user)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(m.gameRuntime())
	} else if !m.gameState.GameOver {
		m.game.Reset(m.gameRuntime())
	}
	return m, nil
}

// handleLoad applies a finished load unless it was superseded.
func (m Model) handleLoad(msg loadResultMsg) (tea.Model, tea.Cmd) {
	if !m.gen.IsCurrent(msg.token) {
		m.logger.Debug("dropping stale calendar load", "user", msg.user)
		return m, nil
	}

	err := msg.err
	if err == nil {
		err = m.game.Load(msg.cells)
	} else {
		m.game.FailLoad(err)
	}
	if err != nil {
		m.logger.Error("could not load calendar", "user", msg.user, "err", err)
		m.prompting = true
		m.input.SetValue(msg.user)
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd
	}

	m.logger.Info("calendar loaded", "user", msg.user, "cells", len(msg.cells))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.prompting {
		m.holds.Apply(&m.inputFrame, m.now())
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventExplosion:
			m.sound.Explosion()
		case core.EventGameEnded:
			m.holds.ReleaseAll()
			m.logger.Info("game ended", "user", m.user, "won", ev.Won, "score", ev.Score)
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(config.DataDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	name := m.user
	if name == "" {
		name = m.game.ID()
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", name, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var footer string
	if m.prompting {
		footer = m.input.View()
	} else {
		footer = m.help.View(m.keys.Keys)
	}
	return m.renderer.Render(m.screen) + "\n" + footer
}

// Prompting reports whether the username prompt is open.
func (m Model) Prompting() bool { return m.prompting }

// User returns the user whose calendar is loaded or loading.
func (m Model) User() string { return m.user }

// Run starts the Bubble Tea program for game.
func Run(game registry.Loadable, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
