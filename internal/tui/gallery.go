package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"

	"github.com/colonyops/toaster/internal/core/logging"
	"github.com/colonyops/toaster/internal/core/styles"
)

// galleryMarkdown is the showcase background. Toasts are composited over it
// without affecting its layout.
const galleryMarkdown = `# Component showcase

## %[1]s Button
Primary, secondary and ghost variants with keyboard focus rings.

## %[2]s Accordion
Collapsible sections that keep their content mounted while closed.

## %[3]s Badge
Inline status markers: ` + "`new`" + `, ` + "`beta`" + `, ` + "`deprecated`" + `.

## %[4]s Tooltip
Hover and focus hints anchored to their trigger.

## %[5]s Input
Text fields with inline validation messages.

## %[6]s Toast
Transient notifications. Use the keys below to enqueue them, then tab to
focus a card, enter to run its action, and x to close it.
`

// Gallery renders the background page and caches the result per width and
// theme.
type Gallery struct {
	log    zerolog.Logger
	width  int
	theme  string
	cached string
}

// NewGallery constructs an empty gallery.
func NewGallery() *Gallery {
	return &Gallery{log: logging.Component("gallery")}
}

// Markdown returns the gallery source.
func (g *Gallery) Markdown() string {
	return fmt.Sprintf(galleryMarkdown,
		styles.IconButton,
		styles.IconAccordion,
		styles.IconBadge,
		styles.IconTooltip,
		styles.IconInput,
		styles.IconBell,
	)
}

// Render returns the gallery wrapped to width using the active theme.
func (g *Gallery) Render(width int, theme string) string {
	if g.cached != "" && g.width == width && g.theme == theme {
		return g.cached
	}

	md := g.Markdown()
	out, err := g.render(md, width)
	if err != nil {
		g.log.Warn().Err(err).Msg("gallery render failed, using plain text")
		out = md
	}

	g.width = width
	g.theme = theme
	g.cached = strings.TrimRight(out, "\n")
	return g.cached
}

func (g *Gallery) render(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}

	return r.Render(md)
}
