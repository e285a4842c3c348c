package invaders

import (
	"math"

	"github.com/jamesrmoro/commits-invaders/internal/core"
)

// Terminal glyphs
const (
	EnemyGlyph      = '■'
	ProjectileGlyph = '┃'
	ParticleGlyph   = '*'
)

// Rasterize paints a pixel scene onto a character screen where one cell
// covers sx by sy pixels. A rectangle covers the cells whose centres lie
// inside it, or the single cell under its centre when it is smaller than
// a cell, so small neighbouring shapes stay apart.
func Rasterize(scene Scene, dst *core.Screen, sx, sy float64) {
	for _, op := range scene.Ops {
		switch op.Layer {
		case LayerText:
			cx, cy := op.Rect.Center()
			row := int(cy / sy)
			col := int(cx/sx) - len([]rune(op.Text))/2
			dst.DrawTextStyled(col, row, op.Text, op.Fill, core.ColorBackground)

		case LayerEnemy:
			paint(dst, op.Rect, sx, sy, func(c core.Cell) core.Cell {
				return core.Cell{Rune: EnemyGlyph, Fg: op.Fill, Bg: op.Stroke}
			})

		case LayerProjectile:
			paint(dst, op.Rect, sx, sy, func(c core.Cell) core.Cell {
				return core.Cell{Rune: ProjectileGlyph, Fg: op.Fill, Bg: c.Bg}
			})

		case LayerParticle:
			paint(dst, op.Rect, sx, sy, func(c core.Cell) core.Cell {
				return core.Cell{Rune: ParticleGlyph, Fg: op.Fill, Bg: c.Bg}
			})

		default:
			paint(dst, op.Rect, sx, sy, func(c core.Cell) core.Cell {
				return core.Cell{Rune: ' ', Fg: op.Fill, Bg: op.Fill}
			})
		}
	}
}

// paint applies fn to every cell covered by r.
func paint(dst *core.Screen, r core.Box, sx, sy float64, fn func(core.Cell) core.Cell) {
	x0, x1 := span(r.X, r.Right(), sx)
	y0, y1 := span(r.Y, r.Bottom(), sy)
	for y := max(y0, 0); y < min(y1, dst.Height()); y++ {
		for x := max(x0, 0); x < min(x1, dst.Width()); x++ {
			dst.SetCell(x, y, fn(dst.GetCell(x, y)))
		}
	}
}

// span returns the half-open cell range covering [lo, hi) at scale s.
func span(lo, hi, s float64) (int, int) {
	first := int(math.Ceil(lo/s - 0.5))
	last := int(math.Ceil(hi/s - 0.5)) // exclusive
	if last <= first {
		c := int(math.Floor((lo + hi) / 2 / s))
		return c, c + 1
	}
	return first, last
}
