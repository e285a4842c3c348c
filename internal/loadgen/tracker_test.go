package loadgen

import (
	"sync"
	"testing"
)

func TestTrackerZeroValue(t *testing.T) {
	var tr Tracker
	if tr.Current() != 0 {
		t.Errorf("Current() = %d, expected 0", tr.Current())
	}
	if tr.IsCurrent(0) {
		t.Error("the zero token is never current")
	}
}

func TestTrackerInvalidatesOlderTokens(t *testing.T) {
	var tr Tracker

	first := tr.Next()
	if !tr.IsCurrent(first) {
		t.Fatal("fresh token should be current")
	}

	second := tr.Next()
	if second <= first {
		t.Errorf("tokens should increase: %d then %d", first, second)
	}
	if tr.IsCurrent(first) {
		t.Error("older token should be stale")
	}
	if !tr.IsCurrent(second) || tr.Current() != second {
		t.Error("newest token should be current")
	}
}

func TestTrackerConcurrentNext(t *testing.T) {
	var tr Tracker
	var wg sync.WaitGroup
	seen := make(chan Token, 100)

	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- tr.Next()
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[Token]bool)
	for tok := range seen {
		if unique[tok] {
			t.Fatalf("token %d handed out twice", tok)
		}
		unique[tok] = true
	}
	if tr.Current() != 100 {
		t.Errorf("Current() = %d, expected 100", tr.Current())
	}
}
