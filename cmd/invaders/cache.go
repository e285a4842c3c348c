package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jamesrmoro/commits-invaders/internal/platform/tui"
	"github.com/jamesrmoro/commits-invaders/internal/storage"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the local calendar cache",
	Long: `Fetched calendars are cached in a SQLite database (see --db) so
replays do not hit the GitHub API, and so --offline has something to play.

Examples:
  invaders cache list
  invaders cache browse
  invaders cache clear`,
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached calendars",
	Args:  cobra.NoArgs,
	RunE:  runCacheList,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [user]",
	Short: "Remove one or all cached calendars",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCacheClear,
}

var cacheBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick a cached calendar and play it offline",
	Args:  cobra.NoArgs,
	RunE:  runCacheBrowse,
}

func init() {
	cacheCmd.AddCommand(cacheListCmd, cacheClearCmd, cacheBrowseCmd)
}

func runCacheList(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.ListCalendars()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No cached calendars.")
		return nil
	}

	maxUserLen := 4 // "User" header
	for _, e := range entries {
		maxUserLen = max(maxUserLen, len(e.Username))
	}

	now := time.Now()
	fmt.Printf("  %-*s  %5s  %7s  %s\n", maxUserLen, "User", "Weeks", "Commits", "Age")
	fmt.Printf("  %-*s  %5s  %7s  %s\n", maxUserLen, "----", "-----", "-------", "---")
	for _, e := range entries {
		fmt.Printf("  %-*s  %5d  %7d  %s\n", maxUserLen, e.Username, e.Weeks, e.Total,
			now.Sub(e.FetchedAt).Truncate(time.Second))
	}
	return nil
}

func runCacheClear(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 1 {
		if err := store.DeleteCalendar(args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed %s from the cache.\n", args[0])
		return nil
	}

	n, err := store.Clear()
	if err != nil {
		return err
	}
	fmt.Printf("Removed %d cached calendar(s).\n", n)
	return nil
}

func runCacheBrowse(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	user, err := tui.RunCacheBrowser(store, width, height)
	store.Close()
	if err != nil || user == "" {
		return err
	}

	flagOffline = true
	return playTerminal(user)
}
