package toast

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay composites the toast stack over background at the configured
// corner. The background's own layout is untouched apart from the cells the
// stack covers, so callers can mount toasts over any view.
func (r *Renderer) Overlay(background string, width, height int) string {
	stack := r.View()
	if stack == "" {
		return background
	}

	stackW := lipgloss.Width(stack)
	stackH := lipgloss.Height(stack)

	x := 1
	if !r.opts.Position.Left() {
		x = max(width-stackW-1, 0)
	}

	y := 0
	if !r.opts.Position.Top() {
		y = max(height-stackH, 0)
	}

	return placeOverlay(x, y, stack, background)
}

// placeOverlay splices fg into bg with its top-left corner at (x, y).
func placeOverlay(x, y int, fg, bg string) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for i, fgLine := range fgLines {
		row := y + i
		for row >= len(bgLines) {
			bgLines = append(bgLines, "")
		}

		line := bgLines[row]
		if w := ansi.StringWidth(line); w < x {
			line += strings.Repeat(" ", x-w)
		}

		left := ansi.Truncate(line, x, "")
		right := ansi.TruncateLeft(line, x+ansi.StringWidth(fgLine), "")
		bgLines[row] = left + fgLine + right
	}

	return strings.Join(bgLines, "\n")
}
