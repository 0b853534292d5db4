package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pixelpit/brickout/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderFrame converts a frame buffer to a styled string for the terminal.
// Adjacent cells with the same color are grouped into runs to keep the ANSI
// escape overhead down.
func RenderFrame(fb *core.FrameBuffer) string {
	var sb strings.Builder
	sb.Grow(fb.Width()*fb.Height()*2 + fb.Height())

	for y := 0; y < fb.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < fb.Width() {
			startColor := fb.Get(x, y).Color

			var run strings.Builder
			for x < fb.Width() {
				cell := fb.Get(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
