// Package desktop runs Commits Invaders in a native window using Ebitengine.
package desktop

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/jamesrmoro/commits-invaders/internal/audio"
	"github.com/jamesrmoro/commits-invaders/internal/calendar"
	"github.com/jamesrmoro/commits-invaders/internal/contrib"
	"github.com/jamesrmoro/commits-invaders/internal/core"
	"github.com/jamesrmoro/commits-invaders/internal/games/invaders"
	"github.com/jamesrmoro/commits-invaders/internal/loadgen"
	"github.com/jamesrmoro/commits-invaders/internal/platform/desktop/widget"
)

const loadTimeout = 20 * time.Second

// Options configures the desktop frontend.
type Options struct {
	Source   contrib.Source
	Sound    audio.Player
	Logger   *log.Logger
	User     string // loaded immediately when set
	Width    int
	Height   int
	TickRate int
	Seed     int64
}

// App implements ebiten.Game.
type App struct {
	game    *invaders.Game
	loader  *loadgen.Loader
	sound   audio.Player
	logger  *log.Logger
	runtime core.RuntimeConfig

	pendingW, pendingH int

	prompt    widget.Prompt
	prompting bool
	colors    *widget.Palette
}

// NewApp creates the app and starts loading opts.User if given.
func NewApp(opts Options) *App {
	if opts.Sound == nil {
		opts.Sound = audio.Noop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1000, 640
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	a := &App{
		game:   invaders.New(invaders.WithPixelCanvas()),
		sound:  opts.Sound,
		logger: opts.Logger,
		runtime: core.RuntimeConfig{
			ScreenW:  opts.Width,
			ScreenH:  opts.Height,
			TickRate: opts.TickRate,
			Seed:     opts.Seed,
		},
		colors: widget.NewPalette(),
	}
	src := opts.Source
	a.loader = loadgen.NewLoader(func(ctx context.Context, user string) ([]calendar.Cell, error) {
		return contrib.Load(ctx, src, user)
	}, loadTimeout)

	a.game.Reset(a.runtime)
	if opts.User != "" {
		a.load(opts.User)
	} else {
		a.prompting = true
	}
	return a
}

func (a *App) load(user string) {
	a.prompting = false
	a.prompt.Set(user)
	a.game.BeginLoad(user)
	a.loader.Start(user)
	a.logger.Info("loading contributions", "user", user)
}

// Update advances the game by one tick.
func (a *App) Update() error {
	if a.pendingW > 0 && (a.pendingW != a.runtime.ScreenW || a.pendingH != a.runtime.ScreenH) {
		a.runtime.ScreenW, a.runtime.ScreenH = a.pendingW, a.pendingH
		a.game.Resize(a.runtime)
	}

	if r, ok := a.loader.Poll(); ok {
		a.handleLoad(r)
	}

	if a.prompting {
		return a.updatePrompt()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.restart()
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		if user := a.game.User(); user != "" {
			a.load(user)
		}
		return nil
	}

	res := a.game.Step(readFrame(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed))
	for _, ev := range res.Events {
		switch ev.Kind {
		case core.EventExplosion:
			a.sound.Explosion()
		case core.EventGameEnded:
			a.logger.Info("game ended", "user", a.game.User(), "won", ev.Won, "score", ev.Score)
		}
	}
	return nil
}

func (a *App) updatePrompt() error {
	a.prompt.Type(ebiten.AppendInputChars(nil))
	if repeating(ebiten.KeyBackspace) {
		a.prompt.Backspace()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		if user, ok := a.prompt.Submit(); ok {
			a.load(user)
		}
	}
	return nil
}

// restart abandons the current game and asks for a user again.
func (a *App) restart() {
	a.loader.Cancel()
	user := a.game.User()
	a.game.Reset(a.runtime)
	a.prompt.Set(user)
	a.prompting = true
}

func (a *App) handleLoad(r loadgen.Result) {
	if r.Err != nil {
		a.logger.Warn("load failed", "user", r.User, "err", r.Err)
		a.game.FailLoad(r.Err)
		a.prompt.Set(r.User)
		a.prompting = true
		return
	}
	if err := a.game.Load(r.Cells); err != nil {
		a.logger.Warn("calendar rejected", "user", r.User, "err", err)
		a.prompt.Set(r.User)
		a.prompting = true
		return
	}
	a.logger.Info("contributions loaded", "user", r.User, "cells", len(r.Cells))
}

// Layout follows the window size; the canvas is resized on the next Update.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.pendingW, a.pendingH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// repeating reports a key press plus key repeat after a short delay.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= 30 && d%3 == 0)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	app := NewApp(opts)
	defer app.sound.Close()

	ebiten.SetWindowSize(app.runtime.ScreenW, app.runtime.ScreenH)
	ebiten.SetWindowTitle("Commits Invaders")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.runtime.TickRate)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
