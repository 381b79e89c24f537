// Package styles holds the shared palette, icons, and lipgloss styles.
package styles

import (
	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style

	// Text styles.
	TextPrimaryStyle lipgloss.Style
	TextMutedStyle   lipgloss.Style
	TextErrorStyle   lipgloss.Style
	TextWarningStyle lipgloss.Style
	TextSuccessStyle lipgloss.Style

	// Toast card styles, one per notification kind.
	ToastSuccessStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastInfoStyle    lipgloss.Style

	ToastTitleStyle         lipgloss.Style
	ToastFocusedStyle       lipgloss.Style
	ToastFadedStyle         lipgloss.Style
	ToastActionStyle        lipgloss.Style
	ToastActionFocusedStyle lipgloss.Style
	ToastCloseStyle         lipgloss.Style

	// Showcase gallery styles.
	GalleryFrameStyle lipgloss.Style
	GalleryTitleStyle lipgloss.Style
	GalleryItemStyle  lipgloss.Style
	HelpBarStyle      lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Foreground(ColorForeground)

	ToastSuccessStyle = toastBase.BorderForeground(ColorSuccess)
	ToastErrorStyle = toastBase.BorderForeground(ColorError)
	ToastWarningStyle = toastBase.BorderForeground(ColorWarning)
	ToastInfoStyle = toastBase.BorderForeground(ColorPrimary)

	ToastTitleStyle = lipgloss.NewStyle().Bold(true)
	ToastFocusedStyle = lipgloss.NewStyle().BorderStyle(lipgloss.ThickBorder())
	ToastFadedStyle = lipgloss.NewStyle().Faint(true)
	ToastActionStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorForeground)
	ToastActionFocusedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
	ToastCloseStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	GalleryFrameStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	GalleryTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	GalleryItemStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	HelpBarStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		PaddingLeft(1)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c lipgloss.Color) *string {
	if c == "" {
		return nil
	}
	hex := string(c)
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() ansi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = primary
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary
	cfg.Code.Color = secondary

	return cfg
}
