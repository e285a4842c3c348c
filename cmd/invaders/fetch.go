package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jamesrmoro/commits-invaders/internal/calendar"
)

var flagOut string

var fetchCmd = &cobra.Command{
	Use:   "fetch <user>",
	Short: "Fetch a calendar and print a summary",
	Long: `Fetch a user's contribution calendar through the configured source
(and cache) and print what the formation would look like.

With --out the calendar is written as JSON (or YAML for .yaml/.yml),
ready to be replayed with --file.

Examples:
  invaders fetch octocat
  invaders fetch octocat --out ./calendars/octocat.json
  invaders fetch octocat --offline`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&flagOut, "out", "", "Write the calendar to this file")
}

func runFetch(_ *cobra.Command, args []string) error {
	user := args[0]

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	source, store, err := openSource(logger)
	if err != nil {
		return err
	}
	defer closeStore(store)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	weeks, err := source.Contributions(ctx, user)
	if err != nil {
		return err
	}
	cells, err := calendar.Flatten(weeks)
	if err != nil {
		return err
	}

	if flagOut != "" {
		if err := writeCalendar(flagOut, weeks); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", flagOut)
	}

	s := calendar.Stats(cells)
	fmt.Printf("@%s\n\n", user)
	fmt.Printf("  Weeks:          %d (%d active)\n", s.Weeks, s.ActiveWeeks)
	fmt.Printf("  Days:           %d\n", s.Days)
	fmt.Printf("  Contributions:  %d\n", s.Total)
	fmt.Printf("  Invaders:       %d\n", s.Destructible)
	if s.BusiestCount > 0 {
		fmt.Printf("  Busiest day:    %s (%d)\n", s.BusiestDay, s.BusiestCount)
	}
	return nil
}

func writeCalendar(path string, weeks []calendar.Week) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = calendar.EncodeYAML(f, weeks)
	default:
		err = calendar.Encode(f, weeks)
	}
	if err != nil {
		return err
	}
	return f.Close()
}
