package loadgen

import (
	"context"
	"sync"
	"time"

	"github.com/jamesrmoro/commits-invaders/internal/calendar"
)

// FetchFunc loads the cells of user's calendar.
type FetchFunc func(ctx context.Context, user string) ([]calendar.Cell, error)

// Result is the outcome of one load.
type Result struct {
	Token Token
	User  string
	Cells []calendar.Cell
	Err   error
}

// Loader runs loads in the background for frame-driven loops that poll
// once per frame. Starting a load cancels and invalidates the previous
// one; Poll never returns a stale result.
type Loader struct {
	tracker Tracker
	fetch   FetchFunc
	timeout time.Duration
	results chan Result

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewLoader creates a loader. A zero timeout means no deadline.
func NewLoader(fetch FetchFunc, timeout time.Duration) *Loader {
	return &Loader{
		fetch:   fetch,
		timeout: timeout,
		results: make(chan Result, 8),
	}
}

// Start begins loading user and returns the token of the new load.
func (l *Loader) Start(user string) Token {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if l.timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), l.timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	l.cancel = cancel
	tok := l.tracker.Next()
	l.mu.Unlock()

	go func() {
		defer cancel()
		cells, err := l.fetch(ctx, user)
		l.deliver(Result{Token: tok, User: user, Cells: cells, Err: err})
	}()
	return tok
}

// deliver queues r without blocking. Stale results are dropped, and a
// full queue is drained of stale entries to make room.
func (l *Loader) deliver(r Result) {
	for l.tracker.IsCurrent(r.Token) {
		select {
		case l.results <- r:
			return
		case old := <-l.results:
			if l.tracker.IsCurrent(old.Token) {
				// A newer load already landed; r is stale.
				select {
				case l.results <- old:
				default:
				}
				return
			}
		}
	}
}

// Cancel aborts the load in flight, if any; its result will be dropped.
func (l *Loader) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.tracker.Next()
}

// Poll returns the result of the current load if it has finished.
// It does not block.
func (l *Loader) Poll() (Result, bool) {
	for {
		select {
		case r := <-l.results:
			if l.tracker.IsCurrent(r.Token) {
				return r, true
			}
		default:
			return Result{}, false
		}
	}
}
