package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dash-runner/internal/core"
)

// ScreenRenderer turns screen buffers into styled terminal output for one
// lipgloss renderer. SSH sessions get their own so each client's color
// profile is respected.
type ScreenRenderer struct {
	styles []lipgloss.Style
}

var defaultScreens = NewScreenRenderer(lipgloss.DefaultRenderer())

// NewScreenRenderer builds a style for every palette color.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	colors := core.Colors()
	sr := &ScreenRenderer{styles: make([]lipgloss.Style, len(colors))}
	for _, c := range colors {
		style := r.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		sr.styles[c] = style
	}
	return sr
}

func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if int(c) < len(sr.styles) {
		return sr.styles[c]
	}
	return sr.styles[core.ColorDefault]
}

// Render converts s to a string, one styled run per stretch of same-colored
// cells so the escape sequences stay few.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		current := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				sb.WriteString(sr.style(current).Render(run.String()))
				run.Reset()
				current = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(sr.style(current).Render(run.String()))
			run.Reset()
		}
	}
	return sb.String()
}

// RenderScreen renders s with the process-wide lipgloss renderer.
func RenderScreen(s *core.Screen) string {
	return defaultScreens.Render(s)
}
