package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jessedye/matrix-rain/internal/core"
)

// styleCache memoizes lipgloss styles per color. The fade math yields
// a small palette per scheme, so the cache stays tiny.
var styleCache = map[core.RGB]lipgloss.Style{}

func styleFor(c core.RGB) lipgloss.Style {
	if s, ok := styleCache[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	styleCache[c] = s
	return s
}

// RenderScreen converts a screen buffer to a styled string for display.
// Adjacent cells with the same color are grouped to minimize ANSI
// escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.Cell(x, y).Fg

			var run strings.Builder
			for x < s.Width() {
				cell := s.Cell(x, y)
				if cell.Fg != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == (core.RGB{}) {
				// Blank and black cells need no styling.
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(startColor).Render(run.String()))
			}
		}
	}
	return sb.String()
}
