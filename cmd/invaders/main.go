// invaders turns a GitHub contribution calendar into a space shooter.
//
// Usage:
//
//	invaders play [user]      - Play in the terminal
//	invaders desktop [user]   - Play in a native window
//	invaders serve            - Serve the game over SSH
//	invaders fetch <user>     - Fetch a calendar and print a summary
//	invaders cache <command>  - Inspect the local calendar cache
//	invaders list             - List registered games
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for the explosion particles
//	--db <path>       - Calendar cache (default: ~/.arcade/invaders.db)
//	--config <path>   - Custom game config YAML
//	--token <token>   - GitHub token (default: $GITHUB_TOKEN)
//	--file <path>     - Read calendars from a JSON/YAML file or directory
//	--endpoint <url>  - Read calendars from a contributions proxy
//	--offline         - Only use the cache
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jamesrmoro/commits-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagToken    string
	flagFile     string
	flagEndpoint string
	flagOffline  bool
	flagCacheTTL time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Commits Invaders - shoot down your GitHub contributions",
	Long: `Commits Invaders turns a GitHub contribution calendar into a formation
of invaders. Every day with contributions is an enemy; empty days drift
along as scenery.

Available commands:
  play     - Play in the terminal
  desktop  - Play in a native window
  serve    - Serve the game over SSH
  fetch    - Fetch a calendar and print a summary
  cache    - Inspect the local calendar cache
  list     - List registered games

Examples:
  invaders play octocat
  invaders desktop torvalds
  invaders play --file ./calendars/
  invaders serve --ssh :2222
  invaders cache browse`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/invaders.db", "Path to calendar cache database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "GitHub token (default: $GITHUB_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "Read calendars from a JSON/YAML file or directory")
	rootCmd.PersistentFlags().StringVar(&flagEndpoint, "endpoint", "", "Read calendars from a contributions proxy URL")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "Only serve calendars from the cache")
	rootCmd.PersistentFlags().DurationVar(&flagCacheTTL, "cache-ttl", time.Hour, "How long a cached calendar stays fresh")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		invaders.SetConfigPath(flagConfig)
	}

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(cacheCmd)
}
