package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default Commits Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Player: PlayerConfig{
			Width:        50,
			Height:       30,
			Speed:        5,
			BottomOffset: 60,
			LossMargin:   50,
		},
		Projectile: ProjectileConfig{
			Width:  4,
			Height: 10,
			Speed:  7,
		},
		Grid: GridConfig{
			CellSize: 12,
			Spacing:  4,
			OriginX:  50,
			OriginY:  50,
		},
		Formation: FormationConfig{
			InitialInterval: 800 * time.Millisecond,
			MinInterval:     200 * time.Millisecond,
			IntervalStep:    50 * time.Millisecond,
			DropDistance:    20,
			HorizontalStep:  15,
			EdgeMargin:      10,
		},
		Particles: ParticleConfig{
			Count:     12,
			Spread:    4,
			MinSize:   2,
			SizeRange: 2,
			MinLife:   20,
			LifeRange: 10,
		},
		Terminal: TerminalConfig{
			PixelsPerColumn: 8,
			PixelsPerRow:    16,
			HoldWindow:      150 * time.Millisecond,
		},
		Desktop: DesktopConfig{
			Width:  1000,
			Height: 640,
		},
	}
}
