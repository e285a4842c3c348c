// Package loadgen guards asynchronous calendar loads against resets that
// happen while a fetch is still in flight.
package loadgen

import "sync/atomic"

// Token identifies one load attempt.
type Token uint64

// Tracker hands out monotonically increasing tokens. Only the most recent
// token is current; results carrying an older one are stale.
// The zero value is ready to use and safe for concurrent use.
type Tracker struct {
	gen atomic.Uint64
}

// Next invalidates every outstanding token and returns a new current one.
func (t *Tracker) Next() Token {
	return Token(t.gen.Add(1))
}

// Current returns the latest token handed out (0 before the first Next).
func (t *Tracker) Current() Token {
	return Token(t.gen.Load())
}

// IsCurrent reports whether tok is still the latest token.
func (t *Tracker) IsCurrent(tok Token) bool {
	return tok != 0 && t.gen.Load() == uint64(tok)
}
