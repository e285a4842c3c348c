package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jamesrmoro/commits-invaders/internal/core"
)

// edge-triggered keys per action
var edgeKeys = map[core.Action][]ebiten.Key{
	core.ActionFire:    {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionBack:    {ebiten.KeyEscape},
	core.ActionPause:   {ebiten.KeyP},
}

// readFrame builds the input for one tick. Movement follows held keys,
// everything else fires once per press.
func readFrame(pressed, justPressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	if pressed(ebiten.KeyArrowLeft) || pressed(ebiten.KeyA) {
		frame.Set(core.ActionLeft)
	}
	if pressed(ebiten.KeyArrowRight) || pressed(ebiten.KeyD) {
		frame.Set(core.ActionRight)
	}
	for action, keys := range edgeKeys {
		for _, k := range keys {
			if justPressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	return frame
}
