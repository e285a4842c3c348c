// Package contrib fetches contribution calendars from GitHub, from a
// contributions proxy endpoint, from local files or from the local cache.
package contrib

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jamesrmoro/commits-invaders/internal/calendar"
)

// ErrEmptyUser is returned when a source is asked for a blank username.
var ErrEmptyUser = errors.New("contrib: empty username")

// Source yields the contribution calendar of a user.
type Source interface {
	Contributions(ctx context.Context, user string) ([]calendar.Week, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, user string) ([]calendar.Week, error)

// Contributions calls f.
func (f SourceFunc) Contributions(ctx context.Context, user string) ([]calendar.Week, error) {
	return f(ctx, user)
}

// FetchError reports a transport or API failure while fetching a calendar.
type FetchError struct {
	User   string
	Status int // HTTP status, 0 when no response was received
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("contrib: fetch %s: status %d: %v", e.User, e.Status, e.Err)
	}
	return fmt.Sprintf("contrib: fetch %s: %v", e.User, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Load fetches user's calendar from src and flattens it into cells.
func Load(ctx context.Context, src Source, user string) ([]calendar.Cell, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return nil, ErrEmptyUser
	}
	weeks, err := src.Contributions(ctx, user)
	if err != nil {
		return nil, err
	}
	return calendar.Flatten(weeks)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
