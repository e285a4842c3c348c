// Package invaders implements Commits Invaders: a contribution calendar
// marches down the screen like an invader fleet and the player shoots the
// squares that hold contributions.
package invaders

import (
	"errors"
	"fmt"
	"time"

	"github.com/jamesrmoro/commits-invaders/internal/calendar"
	"github.com/jamesrmoro/commits-invaders/internal/config"
	"github.com/jamesrmoro/commits-invaders/internal/core"
	"github.com/jamesrmoro/commits-invaders/internal/registry"
)

// Game states
const (
	StateIdle    = "idle"    // waiting for a username
	StateLoading = "loading" // calendar fetch in progress
	StatePlaying = "playing"
	StatePaused  = "paused"
	StateWin     = "win"
	StateLoss    = "loss"
)

// Notices shown around loading.
const (
	LoadedTitle     = "All set!"
	FailedTitle     = "Error"
	FailedMessage   = "Could not load GitHub data."
	LoadingTitle    = "Loading"
	loadedMessageFm = "%s's contributions loaded! Use ← → and SPACE to play!"
)

// ErrNoDays is returned by Load for a calendar without a single day.
var ErrNoDays = errors.New("invaders: calendar has no days")

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Notice is a modal message. While one is shown during play the
// simulation waits for the player to dismiss it.
type Notice struct {
	Title   string
	Message string
}

// Game adapts a Session to the arcade platform: it owns the load/play state
// machine, pause handling and terminal rendering.
type Game struct {
	cfg         config.InvadersConfig
	cfgFixed    bool // cfg was injected; skip loading from disk
	pixelCanvas bool // runtime sizes are pixels rather than cells
	now         func() time.Time

	runtime core.RuntimeConfig
	session *Session
	state   string
	user    string
	cells   []calendar.Cell
	notice  *Notice
	loadErr error

	pausedAt time.Time
	scaleX   float64
	scaleY   float64
}

// Option configures a Game.
type Option func(*Game)

// WithConfig uses cfg instead of loading configuration from disk.
func WithConfig(cfg config.InvadersConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.cfgFixed = true
	}
}

// WithClock replaces the wall clock that drives the formation.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// WithPixelCanvas makes RuntimeConfig sizes pixels, for frontends that
// draw the Scene directly.
func WithPixelCanvas() Option {
	return func(g *Game) {
		g.pixelCanvas = true
	}
}

// New creates a new Commits Invaders game instance.
func New(opts ...Option) *Game {
	g := &Game{now: time.Now, state: StateIdle}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func init() {
	registry.Register("invaders", func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Commits Invaders"
}

// Reset discards any loaded calendar and returns to the idle state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.cfgFixed {
		cfg, err := config.LoadInvaders(configPath)
		if err != nil {
			cfg = config.DefaultInvadersConfig()
		}
		g.cfg = cfg
	}

	g.runtime = runtime
	g.cells = nil
	g.user = ""
	g.notice = nil
	g.loadErr = nil
	g.state = StateIdle
	g.fitScale()
	g.session = g.newSession()
}

func (g *Game) newSession() *Session {
	w, h := g.canvasSize()
	return NewSession(RulesFromConfig(g.cfg), w, h, g.runtime.Seed)
}

// canvasSize returns the simulation canvas in pixels.
func (g *Game) canvasSize() (float64, float64) {
	return float64(g.runtime.ScreenW) * g.scaleX, float64(g.runtime.ScreenH) * g.scaleY
}

// fitScale picks the pixels-per-cell scale so the loaded calendar fits the
// terminal with room to march and drop.
func (g *Game) fitScale() {
	if g.pixelCanvas {
		g.scaleX, g.scaleY = 1, 1
		return
	}
	g.scaleX = g.cfg.Terminal.PixelsPerColumn
	g.scaleY = g.cfg.Terminal.PixelsPerRow
	if g.runtime.ScreenW <= 0 || g.runtime.ScreenH <= 0 {
		return
	}

	weeks, days := 1, 7
	for _, c := range g.cells {
		weeks = max(weeks, c.Week+1)
		days = max(days, c.Day+1)
	}

	layout := RulesFromConfig(g.cfg).Layout
	needW := layout.FormationWidth(weeks) + layout.OriginX
	needH := layout.OriginY + float64(days-1)*layout.Pitch() + layout.CellSize +
		4*g.cfg.Formation.DropDistance + g.cfg.Player.LossMargin + g.cfg.Player.BottomOffset

	if cols := float64(g.runtime.ScreenW); cols*g.scaleX < needW {
		g.scaleX = needW / cols
	}
	if rows := float64(g.runtime.ScreenH); rows*g.scaleY < needH {
		g.scaleY = needH / rows
	}
}

// BeginLoad marks a calendar fetch for user as in progress.
// The previous game, if any, is stopped.
func (g *Game) BeginLoad(user string) {
	g.user = user
	g.cells = nil
	g.loadErr = nil
	g.state = StateLoading
	g.notice = &Notice{Title: LoadingTitle, Message: fmt.Sprintf("Fetching %s's contributions...", user)}
	g.fitScale()
	g.session = g.newSession()
}

// Load arms a fresh session with cells.
func (g *Game) Load(cells []calendar.Cell) error {
	if len(cells) == 0 {
		g.FailLoad(ErrNoDays)
		return ErrNoDays
	}

	g.cells = cells
	g.fitScale()
	g.session = g.newSession()
	g.session.Arm(cells)
	g.state = StatePlaying
	g.loadErr = nil
	g.notice = &Notice{Title: LoadedTitle, Message: fmt.Sprintf(loadedMessageFm, g.user)}
	return nil
}

// FailLoad records a failed fetch and returns to the idle state.
func (g *Game) FailLoad(err error) {
	g.cells = nil
	g.loadErr = err
	g.state = StateIdle
	g.notice = &Notice{Title: FailedTitle, Message: FailedMessage}
	g.fitScale()
	g.session = g.newSession()
}

// Resize adapts the canvas to a new screen size without resetting play.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
	g.fitScale()
	if g.session != nil {
		g.session.Resize(g.canvasSize())
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(g.runtime)
	}
	now := g.now()

	if g.notice != nil {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) || in.Has(core.ActionFire) {
			g.notice = nil
			g.resumeClock(now)
		} else if g.state == StatePlaying {
			g.holdClock(now)
		}
		// The key that closes a notice is not replayed into the game.
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePlaying:
			g.state = StatePaused
			g.holdClock(now)
		case StatePaused:
			g.state = StatePlaying
			g.resumeClock(now)
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	res := g.session.Tick(Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Fire:  in.Has(core.ActionFire),
	}, now)

	var events []core.Event
	for range res.Hits {
		events = append(events, core.Event{Kind: core.EventExplosion})
	}
	if res.ScoreChanged {
		events = append(events, core.Event{Kind: core.EventScoreChanged, Score: res.Score})
	}
	if res.Ended {
		title, msg := res.Outcome.Message()
		if res.Outcome == OutcomeWin {
			g.state = StateWin
		} else {
			g.state = StateLoss
		}
		g.notice = &Notice{Title: title, Message: msg}
		events = append(events, core.Event{
			Kind:    core.EventGameEnded,
			Score:   res.Score,
			Won:     res.Outcome == OutcomeWin,
			Title:   title,
			Message: msg,
		})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// holdClock remembers when the simulation stopped advancing.
func (g *Game) holdClock(now time.Time) {
	if g.pausedAt.IsZero() {
		g.pausedAt = now
	}
}

// resumeClock shifts the formation clock by the time spent on hold.
func (g *Game) resumeClock(now time.Time) {
	if g.pausedAt.IsZero() {
		return
	}
	g.session.ShiftClock(now.Sub(g.pausedAt))
	g.pausedAt = time.Time{}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.session != nil {
		score = g.session.Score()
	}
	return core.GameState{
		Score:    score,
		Running:  g.state == StatePlaying || g.state == StatePaused,
		GameOver: g.state == StateWin || g.state == StateLoss,
		Paused:   g.state == StatePaused,
	}
}

// Status returns the state name (StateIdle, StatePlaying, ...).
func (g *Game) Status() string { return g.state }

// User returns the username of the current or pending calendar.
func (g *Game) User() string { return g.user }

// LoadErr returns the error of the last failed load.
func (g *Game) LoadErr() error { return g.loadErr }

// Notice returns the modal message currently shown, if any.
func (g *Game) Notice() (Notice, bool) {
	if g.notice == nil {
		return Notice{}, false
	}
	return *g.notice, true
}

// DismissNotice hides the current modal message.
func (g *Game) DismissNotice() {
	g.notice = nil
}

// Session returns the underlying simulation.
func (g *Game) Session() *Session { return g.session }

// Scene returns the draw list for the current frame.
func (g *Game) Scene() Scene {
	if g.session == nil {
		g.Reset(g.runtime)
	}
	return BuildScene(g.session)
}

// Scale returns the pixels covered by one terminal cell.
func (g *Game) Scale() (float64, float64) { return g.scaleX, g.scaleY }
