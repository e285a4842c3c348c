package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jamesrmoro/commits-invaders/internal/audio"
	"github.com/jamesrmoro/commits-invaders/internal/config"
	"github.com/jamesrmoro/commits-invaders/internal/core"
	"github.com/jamesrmoro/commits-invaders/internal/platform/tui"
	"github.com/jamesrmoro/commits-invaders/internal/registry"
)

var flagSound bool

var playCmd = &cobra.Command{
	Use:   "play [user]",
	Short: "Play in the terminal",
	Long: `Load a user's contribution calendar and play in the terminal.
Without a user a prompt asks for one.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Fire
  Enter/Esc        - Dismiss a message
  P                - Pause
  R                - Restart with another user
  L                - Reload the calendar
  Ctrl+S           - Save a screenshot
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Examples:
  invaders play
  invaders play octocat
  invaders play octocat --file ./octocat.json
  invaders play octocat --offline`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play explosion sounds")
}

func runPlay(_ *cobra.Command, args []string) error {
	var user string
	if len(args) == 1 {
		user = args[0]
	}
	return playTerminal(user)
}

// playTerminal runs the terminal frontend, loading user when set.
func playTerminal(user string) error {
	logger, logFile, err := fileLogger()
	if err != nil {
		return err
	}
	defer logFile.Close()

	source, store, err := openSource(logger)
	if err != nil {
		return err
	}
	defer closeStore(store)

	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return err
	}

	game, err := registry.CreateLoadable("invaders")
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	var sound audio.Player = audio.Noop{}
	if flagSound {
		bp, err := audio.NewBeepPlayer(0)
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			sound = bp
		}
	}
	defer sound.Close()

	return tui.Run(game, tui.Options{
		Source: source,
		Sound:  sound,
		Logger: logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     seed(),
		},
		User:       user,
		HoldWindow: cfg.Terminal.HoldWindow,
	})
}
