package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/toaster/internal/core/styles"
	"github.com/colonyops/toaster/pkg/tuitest"
)

func TestGallery_Markdown_lists_widgets(t *testing.T) {
	md := NewGallery().Markdown()

	for _, name := range []string{"Button", "Accordion", "Badge", "Tooltip", "Input", "Toast"} {
		assert.Contains(t, md, name)
	}
	assert.Contains(t, md, styles.IconBell)
}

func TestGallery_Render_caches_per_width_and_theme(t *testing.T) {
	g := NewGallery()

	first := g.Render(80, "tokyo-night")
	assert.Contains(t, tuitest.StripANSI(first), "Component showcase")
	assert.Equal(t, first, g.Render(80, "tokyo-night"))

	g.Render(60, "tokyo-night")
	assert.Equal(t, 60, g.width)

	g.Render(60, "gruvbox")
	assert.Equal(t, "gruvbox", g.theme)
}
