package widget

import "github.com/jamesrmoro/commits-invaders/internal/core"

// Dialog sizing in pixels.
const (
	DialogPadding = 16
	DialogGap     = 8
)

// Dialog returns a box centred in a w x h window that fits lines of text
// measured by width, each lineH tall.
func Dialog(w, h float64, lines []string, width func(string) float64, lineH float64) core.Box {
	var widest float64
	for _, l := range lines {
		widest = max(widest, width(l))
	}
	bw := widest + 2*DialogPadding
	bh := float64(len(lines))*lineH + float64(max(len(lines)-1, 0))*DialogGap + 2*DialogPadding
	return core.NewBox((w-bw)/2, (h-bh)/2, bw, bh)
}

// Center returns the offset that centres inner within outer.
func Center(outer, inner float64) float64 {
	return (outer - inner) / 2
}
