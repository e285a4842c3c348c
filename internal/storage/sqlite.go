// Package storage caches fetched contribution calendars in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jamesrmoro/commits-invaders/internal/calendar"
)

// ErrNotFound is returned when no calendar is cached for a user.
var ErrNotFound = errors.New("storage: calendar not cached")

// timeLayout is how fetched_at is written; it carries no zone and is UTC.
const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the calendar cache.
type Store struct {
	db *sql.DB
}

// CalendarEntry describes one cached calendar without its payload.
type CalendarEntry struct {
	Username  string
	Weeks     int
	Total     int
	FetchedAt time.Time
}

// CachedCalendar is a cached calendar together with its metadata.
type CachedCalendar struct {
	CalendarEntry
	Data []calendar.Week
}

// Age returns how long ago the calendar was fetched.
func (c *CachedCalendar) Age(now time.Time) time.Duration {
	return now.Sub(c.FetchedAt)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions share one store; serialise writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS calendars (
			username TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			weeks INTEGER NOT NULL DEFAULT 0,
			total INTEGER NOT NULL DEFAULT 0,
			fetched_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_calendars_fetched ON calendars(fetched_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// key normalises a username; GitHub logins are case-insensitive.
func key(user string) string {
	return strings.ToLower(strings.TrimSpace(user))
}

// SaveCalendar stores weeks for user, replacing any previous entry.
func (s *Store) SaveCalendar(user string, weeks []calendar.Week, fetchedAt time.Time) error {
	if key(user) == "" {
		return fmt.Errorf("storage: empty username")
	}

	var buf bytes.Buffer
	if err := calendar.Encode(&buf, weeks); err != nil {
		return fmt.Errorf("storage: cannot encode calendar: %w", err)
	}

	total := 0
	for _, w := range weeks {
		for _, d := range w.Days {
			total += d.Count
		}
	}

	_, err := s.db.Exec(
		`INSERT INTO calendars (username, payload, weeks, total, fetched_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(username) DO UPDATE SET
		   payload = excluded.payload,
		   weeks = excluded.weeks,
		   total = excluded.total,
		   fetched_at = excluded.fetched_at`,
		key(user), buf.String(), len(weeks), total, fetchedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save calendar: %w", err)
	}
	return nil
}

// Calendar returns the cached calendar for user, or ErrNotFound.
func (s *Store) Calendar(user string) (*CachedCalendar, error) {
	var c CachedCalendar
	var payload string
	var fetchedAt any

	err := s.db.QueryRow(
		`SELECT username, payload, weeks, total, fetched_at
		 FROM calendars
		 WHERE username = ?`,
		key(user),
	).Scan(&c.Username, &payload, &c.Weeks, &c.Total, &fetchedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query calendar: %w", err)
	}

	c.FetchedAt = parseTime(fetchedAt)
	c.Data, err = calendar.DecodeJSON([]byte(payload))
	if err != nil {
		return nil, fmt.Errorf("storage: corrupt cache entry for %s: %w", c.Username, err)
	}
	return &c, nil
}

// ListCalendars returns every cached calendar, most recently fetched first.
func (s *Store) ListCalendars() ([]CalendarEntry, error) {
	rows, err := s.db.Query(
		`SELECT username, weeks, total, fetched_at
		 FROM calendars
		 ORDER BY fetched_at DESC, username`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query calendars: %w", err)
	}
	defer rows.Close()

	var entries []CalendarEntry
	for rows.Next() {
		var e CalendarEntry
		var fetchedAt any
		if err := rows.Scan(&e.Username, &e.Weeks, &e.Total, &fetchedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.FetchedAt = parseTime(fetchedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteCalendar removes the cached calendar for user. Deleting a user
// that is not cached is not an error.
func (s *Store) DeleteCalendar(user string) error {
	_, err := s.db.Exec("DELETE FROM calendars WHERE username = ?", key(user))
	if err != nil {
		return fmt.Errorf("storage: cannot delete calendar: %w", err)
	}
	return nil
}

// Clear removes every cached calendar and returns how many were deleted.
func (s *Store) Clear() (int64, error) {
	res, err := s.db.Exec("DELETE FROM calendars")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear calendars: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n, nil
}

// parseTime handles the driver returning either time.Time or the raw string.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v.UTC()
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
