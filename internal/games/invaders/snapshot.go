package invaders

import "math"

// Snapshot is a flat copy of a session for replay checks and debugging.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick          uint64
	Phase         int
	Outcome       int
	Score         int
	PlayerX       float64
	PlayerY       float64
	Direction     int
	MoveInterval  int64 // nanoseconds
	Remaining     int
	Projectiles   int
	ParticleCount int

	// Each enemy is 3 values: X, Y, Alive (0 or 1)
	EnemyData []float64

	RNGState uint64
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	data := make([]float64, 0, len(s.enemies)*3)
	for i := range s.enemies {
		e := &s.enemies[i]
		alive := 0.0
		if e.Alive {
			alive = 1
		}
		data = append(data, e.X, e.Y, alive)
	}

	return Snapshot{
		Tick:          s.ticks,
		Phase:         int(s.phase),
		Outcome:       int(s.outcome),
		Score:         s.score,
		PlayerX:       s.player.X,
		PlayerY:       s.player.Y,
		Direction:     s.formation.Direction,
		MoveInterval:  int64(s.formation.MoveInterval),
		Remaining:     s.Remaining(),
		Projectiles:   len(s.projectiles),
		ParticleCount: len(s.particles),
		EnemyData:     data,
		RNGState:      s.rng.state,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MoveInterval)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Projectiles)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + snap.RNGState

	return h
}
