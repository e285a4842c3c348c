package invaders

import (
	"math"
	"time"
)

// FormationState is the marching state of the enemy block.
type FormationState struct {
	Direction    int // +1 right, -1 left
	MoveInterval time.Duration
	DropDistance float64
	LastMove     time.Time // zero until the first move, so the first tick moves
}

// FormationRules are the fixed parameters of formation movement.
type FormationRules struct {
	HorizontalStep float64
	EdgeMargin     float64
	IntervalStep   time.Duration
	MinInterval    time.Duration
}

// NewFormationState returns the state of a freshly built formation.
func NewFormationState(interval time.Duration, drop float64) FormationState {
	return FormationState{
		Direction:    1,
		MoveInterval: interval,
		DropDistance: drop,
	}
}

// Due reports whether enough wall-clock time has passed for the next move.
func (f FormationState) Due(now time.Time) bool {
	return now.Sub(f.LastMove) >= f.MoveInterval
}

// Advance moves the formation one step if it is due and returns the new state
// and whether a drop happened. Enemies are moved in place.
//
// Extents come from every alive enemy, scenery included. When the block
// reaches an edge in its direction of travel it reverses, drops one row and
// marches faster; otherwise it steps sideways.
func (f FormationState) Advance(enemies []Enemy, now time.Time, canvasW float64, rules FormationRules) (FormationState, bool) {
	if !f.Due(now) {
		return f, false
	}

	left, right := math.Inf(1), math.Inf(-1)
	for i := range enemies {
		if !enemies[i].Alive {
			continue
		}
		left = math.Min(left, enemies[i].X)
		right = math.Max(right, enemies[i].X+enemies[i].Width)
	}

	next := f
	next.LastMove = now

	if math.IsInf(left, 1) {
		return next, false
	}

	drop := (f.Direction > 0 && right >= canvasW-rules.EdgeMargin) ||
		(f.Direction < 0 && left <= rules.EdgeMargin)

	if drop {
		next.Direction = -f.Direction
		for i := range enemies {
			if enemies[i].Alive {
				enemies[i].Y += f.DropDistance
			}
		}
		next.MoveInterval = min(f.MoveInterval, max(f.MoveInterval-rules.IntervalStep, rules.MinInterval))
		return next, true
	}

	dx := float64(f.Direction) * rules.HorizontalStep
	for i := range enemies {
		if enemies[i].Alive {
			enemies[i].X += dx
		}
	}
	return next, false
}
