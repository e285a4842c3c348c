package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/jamesrmoro/commits-invaders/internal/core"
	"github.com/jamesrmoro/commits-invaders/internal/games/invaders"
	"github.com/jamesrmoro/commits-invaders/internal/platform/desktop/widget"
)

var face = basicfont.Face7x13

const (
	lineHeight = 13
	hudMargin  = 10
)

// Draw paints the scene followed by the HUD and any overlay.
func (a *App) Draw(screen *ebiten.Image) {
	scene := a.game.Scene()
	for _, op := range scene.Ops {
		if a.prompting && op.Layer == invaders.LayerText {
			continue
		}
		a.drawOp(screen, op)
	}
	a.drawHUD(screen)

	w, h := scene.Width, scene.Height
	n, hasNotice := a.game.Notice()
	switch {
	case a.prompting:
		lines := []string{invaders.IdlePrompt}
		if hasNotice {
			lines = []string{n.Title, n.Message}
		}
		lines = append(lines, "GitHub user: "+a.prompt.Value()+"_", "enter to load, esc to quit")
		a.drawDialog(screen, w, h, lines...)
	case hasNotice && a.game.Status() == invaders.StateLoading:
		a.drawDialog(screen, w, h, n.Title, n.Message)
	case hasNotice:
		a.drawDialog(screen, w, h, n.Title, n.Message, "enter to continue")
	case a.game.Status() == invaders.StatePaused:
		a.drawDialog(screen, w, h, "Paused", "p to resume")
	}
}

func (a *App) drawOp(screen *ebiten.Image, op invaders.DrawOp) {
	r := op.Rect
	switch op.Layer {
	case invaders.LayerBackground:
		screen.Fill(a.colors.Color(op.Fill))
	case invaders.LayerText:
		a.drawCentered(screen, op.Text, r, a.colors.Color(op.Fill))
	default:
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), a.colors.Color(op.Fill), false)
		if op.Stroke != "" {
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, a.colors.Color(op.Stroke), false)
		}
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	s := a.game.Session()
	if s == nil {
		return
	}
	fg := a.colors.Color(core.ColorText)
	w := float64(screen.Bounds().Dx())
	y := hudMargin + face.Metrics().Ascent.Ceil()

	text.Draw(screen, fmt.Sprintf("Score: %d", s.Score()), face, hudMargin, y, fg)
	if user := a.game.User(); user != "" {
		label := "@" + user
		text.Draw(screen, label, face, int(widget.Center(w, textWidth(label))), y, fg)
	}
	if s.InitialDestructible() > 0 {
		label := fmt.Sprintf("Remaining: %d", s.Remaining())
		text.Draw(screen, label, face, int(w-textWidth(label))-hudMargin, y, fg)
	}
}

// drawDialog shows lines in a framed box centred on the window.
func (a *App) drawDialog(screen *ebiten.Image, w, h float64, lines ...string) {
	box := widget.Dialog(w, h, lines, textWidth, lineHeight)
	vector.DrawFilledRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), a.colors.Color(core.ColorBackground), false)
	vector.StrokeRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), 2, a.colors.Color(core.ColorCellStroke), false)

	col := a.colors.Color(core.ColorText)
	y := box.Y + widget.DialogPadding
	for _, l := range lines {
		a.drawCentered(screen, l, core.NewBox(box.X, y, box.W, lineHeight), col)
		y += lineHeight + widget.DialogGap
	}
}

func (a *App) drawCentered(screen *ebiten.Image, s string, r core.Box, col color.Color) {
	x := r.X + widget.Center(r.W, textWidth(s))
	y := r.Y + widget.Center(r.H, lineHeight) + float64(face.Metrics().Ascent.Ceil())
	text.Draw(screen, s, face, int(x), int(y), col)
}

func textWidth(s string) float64 {
	return float64(font.MeasureString(face, s).Ceil())
}
