package invaders

import (
	"testing"

	"github.com/jamesrmoro/commits-invaders/internal/calendar"
	"github.com/jamesrmoro/commits-invaders/internal/core"
)

func TestIdleSceneShowsPrompt(t *testing.T) {
	s := NewSession(DefaultRules(), 800, 600, 1)
	scene := BuildScene(s)

	if scene.Width != 800 || scene.Height != 600 {
		t.Errorf("scene size %vx%v, expected 800x600", scene.Width, scene.Height)
	}
	if scene.Count(LayerText) != 1 {
		t.Fatalf("idle scene should contain the prompt")
	}
	last := scene.Ops[len(scene.Ops)-1]
	if last.Text != IdlePrompt {
		t.Errorf("prompt text = %q", last.Text)
	}
	if scene.Count(LayerPlate) != 0 || scene.Count(LayerEnemy) != 0 {
		t.Error("idle scene should have no formation")
	}
}

func TestSceneOrder(t *testing.T) {
	s := NewSession(DefaultRules(), 1000, 640, 1)
	s.Arm(gridCells(3, 7))
	for i := range 30 {
		s.Tick(Input{Fire: i%5 == 0}, ms(i))
	}

	scene := BuildScene(s)
	if scene.Ops[0].Layer != LayerBackground || scene.Ops[0].Fill != core.ColorBackground {
		t.Fatalf("first op should be the background, got %+v", scene.Ops[0])
	}
	for i := 1; i < len(scene.Ops); i++ {
		if scene.Ops[i].Layer < scene.Ops[i-1].Layer {
			t.Fatalf("op %d (%v) painted after %v", i, scene.Ops[i].Layer, scene.Ops[i-1].Layer)
		}
	}
	if scene.Count(LayerText) != 0 {
		t.Error("armed scene should not show the prompt")
	}
	if scene.Count(LayerProjectile) != len(s.Projectiles()) {
		t.Errorf("expected %d projectile ops, got %d", len(s.Projectiles()), scene.Count(LayerProjectile))
	}
}

func TestSceneGeometry(t *testing.T) {
	s := NewSession(DefaultRules(), 800, 600, 1)
	s.Arm(gridCells(2, 3))
	s.Tick(Input{}, ms(0)) // formation steps to x=65

	scene := BuildScene(s)
	p := s.Player()

	for _, op := range scene.Ops {
		switch op.Layer {
		case LayerPlayer:
			if op.Rect != p.Box() || op.Fill != core.ColorPlayer {
				t.Errorf("player op %+v", op)
			}
		case LayerTurret:
			want := core.NewBox(p.X+20, p.Y-10, 10, 10)
			if op.Rect != want || op.Fill != core.ColorTurret {
				t.Errorf("turret op %+v, expected rect %+v", op, want)
			}
		case LayerPlate:
			// alive cells span x 65..93, y 50..94, padded by 10
			want := core.NewBox(55, 40, 48, 64)
			if op.Rect != want || op.Fill != core.Color(calendar.EmptyColor) {
				t.Errorf("plate op %+v, expected rect %+v", op, want)
			}
		case LayerEnemy:
			if op.Stroke != core.ColorCellStroke {
				t.Errorf("enemy op should have the cell stroke, got %q", op.Stroke)
			}
		}
	}
}

func TestSceneSkipsDeadEnemies(t *testing.T) {
	s := NewSession(DefaultRules(), 142, 600, 1)
	s.Arm([]calendar.Cell{
		{Week: 0, Day: 0, Count: 5, Color: "#40c463"},
		{Week: 0, Day: 1, Count: 0, Color: calendar.EmptyColor},
	})
	s.Tick(Input{Fire: true}, ms(0))
	runUntilEnd(t, s, 1, 200)

	scene := BuildScene(s)
	if n := scene.Count(LayerEnemy); n != 1 {
		t.Errorf("only the surviving scenery cell should be drawn, got %d", n)
	}
	if n := scene.Count(LayerParticle); n != 12 {
		t.Errorf("expected 12 particle ops, got %d", n)
	}
}

func TestBuildSceneIsReadOnly(t *testing.T) {
	s := NewSession(DefaultRules(), 1000, 640, 1)
	s.Arm(gridCells(10, 7))
	for i := range 20 {
		s.Tick(Input{Fire: true, Right: true}, ms(i))
	}

	before := s.Snapshot()
	BuildScene(s)
	BuildScene(s)
	after := s.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("BuildScene must not change the session")
	}
}

func TestRasterize(t *testing.T) {
	scene := Scene{
		Width:  80,
		Height: 32,
		Ops: []DrawOp{
			{Layer: LayerBackground, Rect: core.NewBox(0, 0, 80, 32), Fill: core.ColorBackground},
			{Layer: LayerEnemy, Rect: core.NewBox(8, 8, 12, 12), Fill: "#40c463", Stroke: core.ColorCellStroke},
			{Layer: LayerProjectile, Rect: core.NewBox(40, 17, 4, 10), Fill: core.ColorBullet},
		},
	}
	dst := core.NewScreen(10, 4)

	Rasterize(scene, dst, 8, 8)

	if c := dst.GetCell(0, 0); c.Bg != core.ColorBackground {
		t.Errorf("background not painted, got %+v", c)
	}
	// Enemy covers the cells whose centres (12, 12) lie inside 8..20.
	if c := dst.GetCell(1, 1); c.Rune != EnemyGlyph || c.Fg != "#40c463" || c.Bg != core.ColorCellStroke {
		t.Errorf("enemy cell = %+v", c)
	}
	if c := dst.GetCell(2, 2); c.Rune == EnemyGlyph {
		t.Error("enemy should not spill into the next cell")
	}
	// A projectile narrower than a cell lands on the cell under its centre.
	c := dst.GetCell(5, 2)
	if c.Rune != ProjectileGlyph || c.Fg != core.ColorBullet || c.Bg != core.ColorBackground {
		t.Errorf("projectile cell = %+v", c)
	}
}
