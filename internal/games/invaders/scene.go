package invaders

import (
	"math"

	"github.com/jamesrmoro/commits-invaders/internal/calendar"
	"github.com/jamesrmoro/commits-invaders/internal/core"
)

// IdlePrompt is shown on an empty canvas before any calendar is loaded.
const IdlePrompt = "Load a GitHub user to get started!"

// Layer tags what a draw operation depicts.
type Layer int

const (
	LayerBackground Layer = iota
	LayerPlayer
	LayerTurret
	LayerPlate
	LayerEnemy
	LayerProjectile
	LayerParticle
	LayerText
)

// DrawOp is a single primitive in a Scene. Text ops are centred on the
// middle of Rect.
type DrawOp struct {
	Layer  Layer
	Rect   core.Box
	Fill   core.Color
	Stroke core.Color // empty for no outline
	Text   string
}

// Scene is an ordered draw list in canvas pixels. Later ops paint over
// earlier ones.
type Scene struct {
	Width  float64
	Height float64
	Ops    []DrawOp
}

// turret geometry relative to the player body
const (
	turretOffsetX = 20
	turretSize    = 10
	platePadding  = 10
)

// BuildScene describes the session as a draw list. It only reads s.
func BuildScene(s *Session) Scene {
	w, h := s.Size()
	scene := Scene{Width: w, Height: h}
	add := func(op DrawOp) { scene.Ops = append(scene.Ops, op) }

	add(DrawOp{Layer: LayerBackground, Rect: core.NewBox(0, 0, w, h), Fill: core.ColorBackground})

	p := s.Player()
	add(DrawOp{Layer: LayerPlayer, Rect: p.Box(), Fill: core.ColorPlayer})
	add(DrawOp{
		Layer: LayerTurret,
		Rect:  core.NewBox(p.X+turretOffsetX, p.Y-turretSize, turretSize, turretSize),
		Fill:  core.ColorTurret,
	})

	enemies := s.Enemies()
	if plate, ok := formationBounds(enemies); ok {
		add(DrawOp{Layer: LayerPlate, Rect: plate.Pad(platePadding), Fill: core.Color(calendar.EmptyColor)})
	}
	for i := range enemies {
		e := &enemies[i]
		if !e.Alive {
			continue
		}
		add(DrawOp{Layer: LayerEnemy, Rect: e.Box(), Fill: core.Color(e.Color), Stroke: core.ColorCellStroke})
	}

	for _, pr := range s.Projectiles() {
		add(DrawOp{Layer: LayerProjectile, Rect: pr.Box(), Fill: core.ColorBullet})
	}

	for _, pt := range s.Particles() {
		add(DrawOp{
			Layer:  LayerParticle,
			Rect:   core.NewBox(pt.X, pt.Y, pt.Size, pt.Size),
			Fill:   core.ColorParticle,
			Stroke: core.ColorParticleHi,
		})
	}

	if s.Phase() == PhaseIdle && len(enemies) == 0 {
		add(DrawOp{Layer: LayerText, Rect: core.NewBox(0, 0, w, h), Fill: core.ColorText, Text: IdlePrompt})
	}

	return scene
}

// formationBounds returns the bounding box of all alive enemies.
func formationBounds(enemies []Enemy) (core.Box, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range enemies {
		e := &enemies[i]
		if !e.Alive {
			continue
		}
		minX = math.Min(minX, e.X)
		minY = math.Min(minY, e.Y)
		maxX = math.Max(maxX, e.X+e.Width)
		maxY = math.Max(maxY, e.Y+e.Height)
	}
	if math.IsInf(minX, 1) {
		return core.Box{}, false
	}
	return core.NewBox(minX, minY, maxX-minX, maxY-minY), true
}

// Count returns how many ops belong to layer.
func (sc Scene) Count(layer Layer) int {
	n := 0
	for _, op := range sc.Ops {
		if op.Layer == layer {
			n++
		}
	}
	return n
}
