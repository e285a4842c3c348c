package widget

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jamesrmoro/commits-invaders/internal/core"
)

// Fallback is used for colours that fail to parse.
var Fallback = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}

// Palette converts hex colours to image colours, caching each result.
type Palette struct {
	cache map[core.Color]color.RGBA
}

func NewPalette() *Palette {
	return &Palette{cache: make(map[core.Color]color.RGBA)}
}

// Color returns c as an opaque RGBA.
func (p *Palette) Color(c core.Color) color.RGBA {
	if rgba, ok := p.cache[c]; ok {
		return rgba
	}
	rgba := Fallback
	if parsed, err := colorful.Hex(string(c)); err == nil {
		r, g, b := parsed.Clamped().RGB255()
		rgba = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	p.cache[c] = rgba
	return rgba
}

// Len reports how many colours are cached.
func (p *Palette) Len() int { return len(p.cache) }
