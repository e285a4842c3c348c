package contrib

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jamesrmoro/commits-invaders/internal/calendar"
	"github.com/jamesrmoro/commits-invaders/internal/storage"
)

// DefaultCacheTTL is how long a cached calendar is served without refetching.
const DefaultCacheTTL = time.Hour

// CacheStore is the part of storage.Store the cache needs.
type CacheStore interface {
	Calendar(user string) (*storage.CachedCalendar, error)
	SaveCalendar(user string, weeks []calendar.Week, fetchedAt time.Time) error
}

// CachedSource serves calendars from Store while they are younger than
// TTL and otherwise asks Next, saving what it returns. When Next fails a
// stale entry is served instead. A nil Next makes the source offline:
// any cached entry is served whatever its age.
type CachedSource struct {
	Store  CacheStore
	Next   Source
	TTL    time.Duration
	Now    func() time.Time
	Logger *log.Logger
}

// Contributions implements Source.
func (c *CachedSource) Contributions(ctx context.Context, user string) ([]calendar.Week, error) {
	logger := c.Logger
	if logger == nil {
		logger = discardLogger()
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	cached, err := c.Store.Calendar(user)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		logger.Warn("calendar cache read failed", "user", user, "err", err)
		cached = nil
	}

	if cached != nil && (c.Next == nil || cached.Age(now()) < c.TTL) {
		logger.Debug("calendar cache hit", "user", user, "age", cached.Age(now()).Round(time.Second))
		return cached.Data, nil
	}
	if c.Next == nil {
		return nil, &FetchError{User: user, Err: storage.ErrNotFound}
	}

	weeks, err := c.Next.Contributions(ctx, user)
	if err != nil {
		if cached != nil {
			logger.Warn("fetch failed, serving stale calendar", "user", user, "err", err)
			return cached.Data, nil
		}
		return nil, err
	}

	if err := c.Store.SaveCalendar(user, weeks, now()); err != nil {
		logger.Warn("calendar cache write failed", "user", user, "err", err)
	}
	return weeks, nil
}
