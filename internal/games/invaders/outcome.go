package invaders

import "github.com/jamesrmoro/commits-invaders/internal/calendar"

// Outcome is the terminal state of a session.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

// Evaluate decides whether the game is over. Only alive destructible enemies
// count: none left is a win, checked before the loss rule; otherwise any of
// them whose bottom edge crosses lossMargin above the player is a loss.
func Evaluate(enemies []Enemy, player Player, lossMargin float64) Outcome {
	threshold := player.Y - lossMargin
	remaining := 0
	breached := false
	for i := range enemies {
		e := &enemies[i]
		if !e.Alive || !calendar.IsDestructible(e.Color) {
			continue
		}
		remaining++
		if e.Y+e.Height > threshold {
			breached = true
		}
	}

	switch {
	case remaining == 0:
		return OutcomeWin
	case breached:
		return OutcomeLoss
	default:
		return OutcomeNone
	}
}

// Messages shown when a session ends.
const (
	WinTitle    = "Congratulations!"
	WinMessage  = "You destroyed every commit!"
	LossTitle   = "Game Over!"
	LossMessage = "The commits got too close!"
)

// Message returns the dialog title and text for a terminal outcome.
func (o Outcome) Message() (title, text string) {
	switch o {
	case OutcomeWin:
		return WinTitle, WinMessage
	case OutcomeLoss:
		return LossTitle, LossMessage
	default:
		return "", ""
	}
}
