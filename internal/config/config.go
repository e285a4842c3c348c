// Package config provides YAML-based game configuration loading for the
// invaders game and its frontends.
package config

import (
	"errors"
	"fmt"
	"time"
)

// InvadersConfig contains all configuration for the Commits Invaders game.
// Distances are in canvas pixels; the terminal frontend scales them to cells.
type InvadersConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Grid       GridConfig       `yaml:"grid"`
	Formation  FormationConfig  `yaml:"formation"`
	Particles  ParticleConfig   `yaml:"particles"`
	Terminal   TerminalConfig   `yaml:"terminal"`
	Desktop    DesktopConfig    `yaml:"desktop"`
}

// PlayerConfig defines the turret ship.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // pixels per tick while held
	BottomOffset float64 `yaml:"bottom_offset"` // y = canvas height - offset
	LossMargin   float64 `yaml:"loss_margin"`   // enemies closer than this above the player end the game
}

// ProjectileConfig defines the player's shots.
type ProjectileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// GridConfig defines where the calendar lattice is laid out.
type GridConfig struct {
	CellSize float64 `yaml:"cell_size"`
	Spacing  float64 `yaml:"spacing"`
	OriginX  float64 `yaml:"origin_x"`
	OriginY  float64 `yaml:"origin_y"`
}

// FormationConfig defines the marching cadence of the enemy block.
type FormationConfig struct {
	InitialInterval time.Duration `yaml:"initial_interval"`
	MinInterval     time.Duration `yaml:"min_interval"`
	IntervalStep    time.Duration `yaml:"interval_step"` // subtracted after every drop
	DropDistance    float64       `yaml:"drop_distance"`
	HorizontalStep  float64       `yaml:"horizontal_step"`
	EdgeMargin      float64       `yaml:"edge_margin"`
}

// ParticleConfig defines the explosion burst.
type ParticleConfig struct {
	Count     int     `yaml:"count"`
	Spread    float64 `yaml:"spread"` // velocity range, centred on zero
	MinSize   float64 `yaml:"min_size"`
	SizeRange float64 `yaml:"size_range"`
	MinLife   float64 `yaml:"min_life"`
	LifeRange float64 `yaml:"life_range"`
}

// TerminalConfig defines how canvas pixels map to terminal cells.
type TerminalConfig struct {
	PixelsPerColumn float64       `yaml:"pixels_per_column"`
	PixelsPerRow    float64       `yaml:"pixels_per_row"`
	HoldWindow      time.Duration `yaml:"hold_window"` // how long a key press counts as held
}

// DesktopConfig defines the desktop window.
type DesktopConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Validate reports every nonsensical value in cfg.
func (cfg InvadersConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(cfg.Player.Width > 0 && cfg.Player.Height > 0, "player size must be positive")
	check(cfg.Player.Speed > 0, "player speed must be positive, got %v", cfg.Player.Speed)
	check(cfg.Player.BottomOffset >= cfg.Player.Height, "player bottom_offset %v is smaller than its height", cfg.Player.BottomOffset)
	check(cfg.Player.LossMargin >= 0, "player loss_margin must not be negative")
	check(cfg.Projectile.Width > 0 && cfg.Projectile.Height > 0, "projectile size must be positive")
	check(cfg.Projectile.Speed > 0, "projectile speed must be positive, got %v", cfg.Projectile.Speed)
	check(cfg.Grid.CellSize > 0, "grid cell_size must be positive")
	check(cfg.Grid.Spacing >= 0, "grid spacing must not be negative")
	check(cfg.Formation.MinInterval > 0, "formation min_interval must be positive")
	check(cfg.Formation.InitialInterval >= cfg.Formation.MinInterval,
		"formation initial_interval %v is below min_interval %v", cfg.Formation.InitialInterval, cfg.Formation.MinInterval)
	check(cfg.Formation.IntervalStep >= 0, "formation interval_step must not be negative")
	check(cfg.Formation.DropDistance > 0, "formation drop_distance must be positive")
	check(cfg.Formation.HorizontalStep > 0, "formation horizontal_step must be positive")
	check(cfg.Particles.Count >= 0, "particle count must not be negative")
	check(cfg.Particles.MinLife > 0, "particle min_life must be positive")
	check(cfg.Terminal.PixelsPerColumn > 0 && cfg.Terminal.PixelsPerRow > 0, "terminal pixel scale must be positive")
	check(cfg.Desktop.Width > 0 && cfg.Desktop.Height > 0, "desktop size must be positive")

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid invaders config: %w", err)
	}
	return nil
}
