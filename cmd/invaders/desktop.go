package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jamesrmoro/commits-invaders/internal/audio"
	"github.com/jamesrmoro/commits-invaders/internal/config"
	"github.com/jamesrmoro/commits-invaders/internal/platform/desktop"
)

var flagMute bool

var desktopCmd = &cobra.Command{
	Use:   "desktop [user]",
	Short: "Play in a native window",
	Long: `Open a window and play with real key hold and sound.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Fire
  Enter/Esc        - Dismiss a message
  P                - Pause
  R                - Restart with another user
  L                - Reload the calendar
  Q                - Quit

Examples:
  invaders desktop
  invaders desktop octocat --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDesktop,
}

func init() {
	desktopCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runDesktop(_ *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	source, store, err := openSource(logger)
	if err != nil {
		return err
	}
	defer closeStore(store)

	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return err
	}

	var sound audio.Player = audio.Noop{}
	if !flagMute {
		bp, err := audio.NewBeepPlayer(0)
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			sound = bp
		}
	}

	opts := desktop.Options{
		Source:   source,
		Sound:    sound,
		Logger:   logger,
		Width:    cfg.Desktop.Width,
		Height:   cfg.Desktop.Height,
		TickRate: flagFPS,
		Seed:     seed(),
	}
	if len(args) == 1 {
		opts.User = args[0]
	}
	return desktop.Run(opts)
}
