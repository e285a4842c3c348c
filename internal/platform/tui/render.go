package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jamesrmoro/commits-invaders/internal/core"
)

type cellColors struct {
	fg, bg core.Color
}

// ScreenRenderer converts Screen buffers to styled strings. Styles are
// cached per colour pair and bound to one lipgloss renderer, so SSH
// sessions get their own colour profile.
type ScreenRenderer struct {
	r      *lipgloss.Renderer
	styles map[cellColors]lipgloss.Style
}

// NewScreenRenderer creates a renderer; nil uses the default lipgloss renderer.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{r: r, styles: make(map[cellColors]lipgloss.Style)}
}

// Renderer returns the underlying lipgloss renderer.
func (sr *ScreenRenderer) Renderer() *lipgloss.Renderer { return sr.r }

func (sr *ScreenRenderer) style(c cellColors) lipgloss.Style {
	if st, ok := sr.styles[c]; ok {
		return st
	}
	st := sr.r.NewStyle()
	if c.fg != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(c.fg))
	}
	if c.bg != core.ColorDefault {
		st = st.Background(lipgloss.Color(c.bg))
	}
	sr.styles[c] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			colors := cellColors{cell.Fg, cell.Bg}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellColors{cell.Fg, cell.Bg}) != colors {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if colors == (cellColors{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(colors).Render(run.String()))
		}
	}
	return sb.String()
}
