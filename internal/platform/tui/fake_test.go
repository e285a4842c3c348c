package tui

import (
	"maps"

	"github.com/jamesrmoro/commits-invaders/internal/calendar"
	"github.com/jamesrmoro/commits-invaders/internal/core"
)

// fakeGame records what the model asks of it.
type fakeGame struct {
	status  string
	user    string
	cells   []calendar.Cell
	loadErr error
	resets  int
	resized *core.RuntimeConfig
	frames  []core.InputFrame
	events  []core.Event
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.status = "idle"
	g.user = ""
	g.cells = nil
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, core.InputFrame{Actions: maps.Clone(in.Actions)})
	events := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: events}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "status:"+g.status)
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Running: g.status == "playing"}
}

func (g *fakeGame) BeginLoad(name string) {
	g.user = name
	g.status = "loading"
}

func (g *fakeGame) Load(cells []calendar.Cell) error {
	g.cells = cells
	g.status = "playing"
	return nil
}

func (g *fakeGame) FailLoad(err error) {
	g.loadErr = err
	g.status = "idle"
}

func (g *fakeGame) Resize(cfg core.RuntimeConfig) {
	g.resized = &cfg
}

func (g *fakeGame) lastFrame() core.InputFrame {
	if len(g.frames) == 0 {
		return core.NewInputFrame()
	}
	return g.frames[len(g.frames)-1]
}

type countingSound struct {
	explosions int
}

func (s *countingSound) Explosion() { s.explosions++ }
func (s *countingSound) Close()     {}
