package invaders

import (
	"fmt"

	"github.com/jamesrmoro/commits-invaders/internal/core"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	Rasterize(g.Scene(), dst, g.scaleX, g.scaleY)

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score, the user and the commits left on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.FillRect(core.NewRect(0, 0, dst.Width(), 1), ' ', core.ColorText, core.ColorBackground)

	score := fmt.Sprintf("Score: %d", g.session.Score())
	dst.DrawTextStyled(1, 0, score, core.ColorText, core.ColorBackground)

	if g.user != "" {
		label := "@" + g.user
		dst.DrawTextCentered(0, label, core.ColorPlayer, core.ColorBackground)
	}

	var right string
	switch g.state {
	case StatePlaying, StatePaused, StateWin, StateLoss:
		right = fmt.Sprintf("Commits: %d/%d", g.session.Remaining(), g.session.InitialDestructible())
	case StateLoading:
		right = "Loading..."
	default:
		right = g.Title()
	}
	dst.DrawTextStyled(dst.Width()-len([]rune(right))-1, 0, right, core.ColorText, core.ColorBackground)
}

// renderOverlay draws pause and notice boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	if n, ok := g.Notice(); ok {
		var hint string
		switch g.state {
		case StateWin, StateLoss:
			hint = "R: new user  L: play again  Q: quit"
		case StatePlaying:
			hint = "Press SPACE or ENTER to start"
		case StateIdle:
			hint = "Press ENTER to continue"
		}
		drawDialog(dst, n.Title, n.Message, hint)
		return
	}

	if g.state == StatePaused {
		drawDialog(dst, "PAUSED", "Press P to resume", "")
	}
}

// drawDialog draws a centred box with a title, a message and an optional hint.
func drawDialog(dst *core.Screen, title, msg, hint string) {
	lines := []string{msg}
	if hint != "" {
		lines = append(lines, "", hint)
	}

	w := len([]rune(title))
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 4

	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.FillRect(box, ' ', core.ColorText, core.ColorBackground)
	dst.DrawBox(box)

	dst.DrawTextCentered(box.Y+1, title, core.ColorPlayer, core.ColorBackground)
	for i, l := range lines {
		dst.DrawTextStyled(box.X+2, box.Y+3+i, l, core.ColorText, core.ColorBackground)
	}
}
