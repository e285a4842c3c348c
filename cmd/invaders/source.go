package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jamesrmoro/commits-invaders/internal/config"
	"github.com/jamesrmoro/commits-invaders/internal/contrib"
	"github.com/jamesrmoro/commits-invaders/internal/storage"
)

// newLogger builds the CLI logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "invaders",
	}), nil
}

// fileLogger logs to ~/.arcade/invaders.log, for frontends that own the
// terminal. The returned closer must be called on exit.
func fileLogger() (*log.Logger, io.Closer, error) {
	dir := config.DataDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "invaders.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

// upstream picks where fresh calendars come from; nil means offline.
func upstream(logger *log.Logger) (contrib.Source, error) {
	switch {
	case flagOffline:
		return nil, nil
	case flagFile != "":
		return &contrib.FileSource{Path: flagFile}, nil
	case flagEndpoint != "":
		return &contrib.EndpointSource{URL: flagEndpoint}, nil
	}

	token := flagToken
	if token == "" {
		token = config.GetEnv(config.EnvGitHubToken, "")
	}
	if token == "" {
		return nil, fmt.Errorf("%w; or use --file, --endpoint or --offline", contrib.ErrNoToken)
	}
	return contrib.NewGitHubClient(token, logger), nil
}

// openSource builds the calendar source chain. Without a cache database
// the upstream source is used directly.
func openSource(logger *log.Logger) (contrib.Source, *storage.Store, error) {
	next, err := upstream(logger)
	if err != nil {
		return nil, nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		if next == nil {
			return nil, nil, fmt.Errorf("offline mode needs the cache: %w", err)
		}
		logger.Warn("calendar cache unavailable", "db", flagDBPath, "err", err)
		return next, nil, nil
	}

	return &contrib.CachedSource{
		Store:  store,
		Next:   next,
		TTL:    flagCacheTTL,
		Logger: logger,
	}, store, nil
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}

// seed resolves --seed, 0 meaning the current time.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
