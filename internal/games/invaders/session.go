package invaders

import (
	"math"
	"time"

	"github.com/jamesrmoro/commits-invaders/internal/calendar"
	"github.com/jamesrmoro/commits-invaders/internal/config"
	"github.com/jamesrmoro/commits-invaders/internal/core"
)

// Rules gathers every tunable of the simulation.
type Rules struct {
	Player          config.PlayerConfig
	Projectile      config.ProjectileConfig
	Layout          GridLayout
	Formation       FormationRules
	InitialInterval time.Duration
	DropDistance    float64
	Particles       ParticleRules
}

// RulesFromConfig converts loaded configuration into simulation rules.
func RulesFromConfig(cfg config.InvadersConfig) Rules {
	return Rules{
		Player:     cfg.Player,
		Projectile: cfg.Projectile,
		Layout: GridLayout{
			CellSize: cfg.Grid.CellSize,
			Spacing:  cfg.Grid.Spacing,
			OriginX:  cfg.Grid.OriginX,
			OriginY:  cfg.Grid.OriginY,
		},
		Formation: FormationRules{
			HorizontalStep: cfg.Formation.HorizontalStep,
			EdgeMargin:     cfg.Formation.EdgeMargin,
			IntervalStep:   cfg.Formation.IntervalStep,
			MinInterval:    cfg.Formation.MinInterval,
		},
		InitialInterval: cfg.Formation.InitialInterval,
		DropDistance:    cfg.Formation.DropDistance,
		Particles: ParticleRules{
			Count:     cfg.Particles.Count,
			Spread:    cfg.Particles.Spread,
			MinSize:   cfg.Particles.MinSize,
			SizeRange: cfg.Particles.SizeRange,
			MinLife:   cfg.Particles.MinLife,
			LifeRange: cfg.Particles.LifeRange,
		},
	}
}

// DefaultRules returns the rules of the built-in configuration.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultInvadersConfig())
}

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhaseIdle    Phase = iota // no calendar loaded yet
	PhaseRunning              // armed and simulating
	PhaseEnded                // win or loss reached
)

// Input is the player's intent for one tick.
type Input struct {
	Left  bool // held
	Right bool // held
	Fire  bool // pressed since the previous tick
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Score        int
	ScoreChanged bool
	Hits         []HitEvent
	Dropped      bool // the formation moved down a row
	Outcome      Outcome
	Ended        bool // the session ended on this tick
}

// Session is one game: a formation built from a calendar, the player and
// everything in flight. It is not safe for concurrent use.
type Session struct {
	rules  Rules
	width  float64
	height float64
	rng    *RNG

	phase       Phase
	outcome     Outcome
	player      Player
	enemies     []Enemy
	projectiles []Projectile
	particles   []Particle
	formation   FormationState

	score               int
	initialDestructible int
	ticks               uint64
}

// NewSession creates an idle session on a canvas of the given pixel size.
func NewSession(rules Rules, width, height float64, seed int64) *Session {
	s := &Session{
		rules:     rules,
		width:     width,
		height:    height,
		rng:       NewRNG(seed),
		formation: NewFormationState(rules.InitialInterval, rules.DropDistance),
	}
	s.player = Player{
		Width:  rules.Player.Width,
		Height: rules.Player.Height,
		Speed:  rules.Player.Speed,
	}
	s.placePlayer()
	return s
}

// placePlayer centres the player horizontally near the bottom edge.
func (s *Session) placePlayer() {
	s.player.X = s.width/2 - s.player.Width/2
	s.player.Y = s.height - s.rules.Player.BottomOffset
	s.clampPlayer()
}

func (s *Session) clampPlayer() {
	s.player.X = core.ClampF(s.player.X, 0, math.Max(0, s.width-s.player.Width))
}

// Arm builds the formation from cells and starts the simulation. Any state
// from a previous run is discarded.
func (s *Session) Arm(cells []calendar.Cell) {
	s.enemies = BuildFormation(cells, s.rules.Layout)
	s.projectiles = s.projectiles[:0]
	s.particles = s.particles[:0]
	s.formation = NewFormationState(s.rules.InitialInterval, s.rules.DropDistance)
	s.score = 0
	s.ticks = 0
	s.outcome = OutcomeNone
	s.initialDestructible = countDestructible(s.enemies)
	s.placePlayer()
	s.phase = PhaseRunning
}

func countDestructible(enemies []Enemy) int {
	n := 0
	for i := range enemies {
		if enemies[i].Alive && calendar.IsDestructible(enemies[i].Color) {
			n++
		}
	}
	return n
}

// Tick advances the simulation by one frame. now drives the formation
// cadence; everything else moves a fixed amount per tick. Idle and ended
// sessions ignore ticks.
func (s *Session) Tick(in Input, now time.Time) TickResult {
	if s.phase != PhaseRunning {
		return TickResult{Score: s.score, Outcome: s.outcome}
	}
	s.ticks++

	s.updatePlayer(in)
	s.updateProjectiles()

	var dropped bool
	s.formation, dropped = s.formation.Advance(s.enemies, now, s.width, s.rules.Formation)

	s.particles = StepParticles(s.particles)

	var hits []HitEvent
	s.projectiles, hits = ResolveHits(s.projectiles, s.enemies)
	for _, h := range hits {
		s.score++
		s.particles = SpawnBurst(s.particles, s.rng, h.X, h.Y, s.rules.Particles)
	}

	res := TickResult{
		Score:        s.score,
		ScoreChanged: len(hits) > 0,
		Hits:         hits,
		Dropped:      dropped,
	}

	if o := Evaluate(s.enemies, s.player, s.rules.Player.LossMargin); o != OutcomeNone {
		s.outcome = o
		s.phase = PhaseEnded
		res.Ended = true
	}
	res.Outcome = s.outcome
	return res
}

func (s *Session) updatePlayer(in Input) {
	if in.Left {
		s.player.X -= s.player.Speed
	}
	if in.Right {
		s.player.X += s.player.Speed
	}
	s.clampPlayer()

	if in.Fire {
		pw := s.rules.Projectile.Width
		s.projectiles = append(s.projectiles, Projectile{
			X:      s.player.X + s.player.Width/2 - pw/2,
			Y:      s.player.Y,
			Width:  pw,
			Height: s.rules.Projectile.Height,
			Speed:  s.rules.Projectile.Speed,
		})
	}
}

func (s *Session) updateProjectiles() {
	live := s.projectiles[:0]
	for _, p := range s.projectiles {
		p.Y -= p.Speed
		if p.Y > -p.Height {
			live = append(live, p)
		}
	}
	s.projectiles = live
}

// Resize changes the canvas size and re-places the player without
// resetting the game.
func (s *Session) Resize(width, height float64) {
	s.width = width
	s.height = height
	s.placePlayer()
}

// ShiftClock moves the formation's last-move time forward by d, so time
// spent paused does not count towards the next move.
func (s *Session) ShiftClock(d time.Duration) {
	if s.formation.LastMove.IsZero() {
		return
	}
	s.formation.LastMove = s.formation.LastMove.Add(d)
}

// Phase returns the lifecycle stage.
func (s *Session) Phase() Phase { return s.phase }

// Outcome returns the terminal outcome, OutcomeNone while running.
func (s *Session) Outcome() Outcome { return s.outcome }

// Score returns the number of destroyed enemies.
func (s *Session) Score() int { return s.score }

// Ticks returns how many ticks were simulated since Arm.
func (s *Session) Ticks() uint64 { return s.ticks }

// Size returns the canvas size in pixels.
func (s *Session) Size() (width, height float64) { return s.width, s.height }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Enemies returns the formation. Callers must not modify it.
func (s *Session) Enemies() []Enemy { return s.enemies }

// Projectiles returns the projectiles in flight. Callers must not modify it.
func (s *Session) Projectiles() []Projectile { return s.projectiles }

// Particles returns the live particles. Callers must not modify it.
func (s *Session) Particles() []Particle { return s.particles }

// Formation returns the formation's marching state.
func (s *Session) Formation() FormationState { return s.formation }

// InitialDestructible returns how many destructible enemies the formation
// started with.
func (s *Session) InitialDestructible() int { return s.initialDestructible }

// Remaining returns how many destructible enemies are still alive.
func (s *Session) Remaining() int { return countDestructible(s.enemies) }
