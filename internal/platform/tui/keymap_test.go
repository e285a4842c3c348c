package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jamesrmoro/commits-invaders/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", keyMsg("a"), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", keyMsg("d"), core.ActionRight, false},
		{"space", keyMsg(" "), core.ActionFire, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"p", keyMsg("p"), core.ActionPause, false},
		{"r", keyMsg("r"), core.ActionRestart, false},
		{"l", keyMsg("l"), core.ActionReload, false},
		{"q", keyMsg("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", keyMsg("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey = (%v, %v), expected (%v, %v)", action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestHoldTracker(t *testing.T) {
	h := NewHoldTracker(150 * time.Millisecond)

	h.Press(core.ActionLeft, t0)
	if !h.Held(core.ActionLeft, t0.Add(149*time.Millisecond)) {
		t.Error("left should be held inside the window")
	}
	if h.Held(core.ActionLeft, t0.Add(150*time.Millisecond)) {
		t.Error("left should be released once the window elapses")
	}

	// Repeat refreshes the window.
	h.Press(core.ActionLeft, t0.Add(100*time.Millisecond))
	if !h.Held(core.ActionLeft, t0.Add(200*time.Millisecond)) {
		t.Error("repeat should extend the hold")
	}

	h.Press(core.ActionRight, t0.Add(210*time.Millisecond))
	if h.Held(core.ActionLeft, t0.Add(210*time.Millisecond)) {
		t.Error("right should release left")
	}

	frame := core.NewInputFrame()
	h.Apply(&frame, t0.Add(220*time.Millisecond))
	if !frame.Has(core.ActionRight) || frame.Has(core.ActionLeft) {
		t.Errorf("unexpected frame %+v", frame.Actions)
	}

	h.ReleaseAll()
	if h.Held(core.ActionRight, t0.Add(220*time.Millisecond)) {
		t.Error("ReleaseAll should forget every key")
	}
}
