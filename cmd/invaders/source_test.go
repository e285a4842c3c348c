package main

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/jamesrmoro/commits-invaders/internal/contrib"
)

// withFlags resets the source flags after the test.
func withFlags(t *testing.T) {
	t.Helper()
	saved := struct {
		token, file, endpoint, db string
		offline                   bool
	}{flagToken, flagFile, flagEndpoint, flagDBPath, flagOffline}
	t.Cleanup(func() {
		flagToken, flagFile, flagEndpoint, flagDBPath, flagOffline =
			saved.token, saved.file, saved.endpoint, saved.db, saved.offline
	})
	flagToken, flagFile, flagEndpoint, flagOffline = "", "", "", false
}

func TestUpstreamSelection(t *testing.T) {
	logger := log.New(io.Discard)

	tests := []struct {
		name  string
		setup func()
		check func(t *testing.T, src contrib.Source)
	}{
		{"offline", func() { flagOffline = true }, func(t *testing.T, src contrib.Source) {
			if src != nil {
				t.Errorf("offline should have no upstream, got %T", src)
			}
		}},
		{"file", func() { flagFile = "cal.json" }, func(t *testing.T, src contrib.Source) {
			if fs, ok := src.(*contrib.FileSource); !ok || fs.Path != "cal.json" {
				t.Errorf("expected FileSource, got %#v", src)
			}
		}},
		{"endpoint", func() { flagEndpoint = "http://localhost/api" }, func(t *testing.T, src contrib.Source) {
			if es, ok := src.(*contrib.EndpointSource); !ok || es.URL != "http://localhost/api" {
				t.Errorf("expected EndpointSource, got %#v", src)
			}
		}},
		{"token", func() { flagToken = "secret" }, func(t *testing.T, src contrib.Source) {
			if gh, ok := src.(*contrib.GitHubClient); !ok || gh.Token != "secret" {
				t.Errorf("expected GitHubClient, got %#v", src)
			}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			withFlags(t)
			tc.setup()
			src, err := upstream(logger)
			if err != nil {
				t.Fatalf("upstream returned error: %v", err)
			}
			tc.check(t, src)
		})
	}
}

func TestUpstreamNeedsToken(t *testing.T) {
	withFlags(t)
	t.Setenv("GITHUB_TOKEN", "")

	if _, err := upstream(log.New(io.Discard)); !errors.Is(err, contrib.ErrNoToken) {
		t.Errorf("expected ErrNoToken, got %v", err)
	}
}

func TestOpenSourceWrapsCache(t *testing.T) {
	withFlags(t)
	flagOffline = true
	flagDBPath = filepath.Join(t.TempDir(), "cache.db")

	src, store, err := openSource(log.New(io.Discard))
	if err != nil {
		t.Fatalf("openSource returned error: %v", err)
	}
	defer closeStore(store)

	cached, ok := src.(*contrib.CachedSource)
	if !ok {
		t.Fatalf("expected CachedSource, got %T", src)
	}
	if cached.Next != nil || cached.TTL != flagCacheTTL {
		t.Errorf("unexpected cache wiring %+v", cached)
	}
}
