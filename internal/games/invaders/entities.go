package invaders

import "github.com/jamesrmoro/commits-invaders/internal/core"

// Enemy is one contribution square in the formation.
type Enemy struct {
	X, Y          float64
	Width, Height float64
	Count         int    // contributions that day
	Color         string // hex colour, calendar.EmptyColor for scenery
	Date          string
	Alive         bool
}

// Box returns the enemy's bounding box.
func (e *Enemy) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.Width, e.Height)
}

// Player is the turret at the bottom of the canvas.
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Projectile is a shot travelling up the canvas.
type Projectile struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

// Box returns the projectile's bounding box.
func (p *Projectile) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Particle is a short-lived fragment of an explosion.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   float64 // ticks remaining
}
