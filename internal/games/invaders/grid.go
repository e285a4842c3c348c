package invaders

import "github.com/jamesrmoro/commits-invaders/internal/calendar"

// GridLayout positions calendar cells on the canvas.
type GridLayout struct {
	CellSize float64
	Spacing  float64
	OriginX  float64
	OriginY  float64
}

// Pitch is the distance between neighbouring cells.
func (l GridLayout) Pitch() float64 {
	return l.CellSize + l.Spacing
}

// BuildFormation places one live enemy per cell: weeks run left to right,
// days top to bottom. The result preserves the order of cells.
func BuildFormation(cells []calendar.Cell, layout GridLayout) []Enemy {
	enemies := make([]Enemy, len(cells))
	pitch := layout.Pitch()
	for i, c := range cells {
		enemies[i] = Enemy{
			X:      layout.OriginX + float64(c.Week)*pitch,
			Y:      layout.OriginY + float64(c.Day)*pitch,
			Width:  layout.CellSize,
			Height: layout.CellSize,
			Count:  c.Count,
			Color:  c.Color,
			Date:   c.Date,
			Alive:  true,
		}
	}
	return enemies
}

// FormationWidth returns the pixel width a calendar with the given number
// of weeks occupies, origin included.
func (l GridLayout) FormationWidth(weeks int) float64 {
	if weeks <= 0 {
		return l.OriginX
	}
	return l.OriginX + float64(weeks-1)*l.Pitch() + l.CellSize
}
