package toast

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/colonyops/toaster/internal/core/logging"
	"github.com/colonyops/toaster/internal/core/notify"
	"github.com/colonyops/toaster/internal/core/styles"
)

const (
	// CloseLabel is the accessible name of every card's dismiss control.
	CloseLabel = "Close"
	// AlertRole marks every card as an assertive announcement.
	AlertRole = "alert"
)

// CardProps is everything a presenter needs to draw one card.
type CardProps struct {
	Card
	Width int
}

// Presenter draws a single card. Implementations own the visual styling; the
// renderer owns dismissal and activation.
type Presenter interface {
	Present(props CardProps) string
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(CardProps) string

func (f PresenterFunc) Present(props CardProps) string { return f(props) }

// Announcer receives the alert text of every newly mounted card, the terminal
// counterpart of an assertive live region.
type Announcer func(n notify.Notification, text string)

// ErrorReporter receives failures from action callbacks.
type ErrorReporter func(err error)

// AlertText is the plain-text announcement for a notification.
func AlertText(n notify.Notification) string {
	var b strings.Builder
	b.WriteString(AlertRole + ": ")
	b.WriteString(string(n.Kind))
	b.WriteString(": ")
	if n.Title != "" {
		b.WriteString(n.Title)
		b.WriteString(": ")
	}
	b.WriteString(n.Message)
	return b.String()
}

func logAnnouncer(log zerolog.Logger) Announcer {
	return func(n notify.Notification, text string) {
		ctx := logging.WithNotificationID(context.Background(), string(n.ID))
		log.Debug().Ctx(ctx).Str("role", "alert").Msg(text)
	}
}

func logErrorReporter(log zerolog.Logger) ErrorReporter {
	return func(err error) {
		ctx := context.Background()
		var actionErr *ActionError
		if errors.As(err, &actionErr) {
			ctx = logging.WithNotificationID(ctx, string(actionErr.ID))
		}
		log.Error().Ctx(ctx).Err(err).Msg("toast action failed")
	}
}

// DefaultPresenter renders cards with the shared theme styles.
type DefaultPresenter struct{}

func (DefaultPresenter) Present(p CardProps) string {
	icon, style := kindStyle(p.Notification.Kind)
	if p.Focused {
		style = style.BorderStyle(lipgloss.ThickBorder())
	}

	inner := max(p.Width-4, 1) // border + horizontal padding

	heading := icon + " " + styles.TextMutedStyle.Render(AlertRole)
	if p.Notification.Title != "" {
		heading += " " + styles.ToastTitleStyle.Render(p.Notification.Title)
	}
	closeCtl := styles.ToastCloseStyle.Render(styles.IconClose + " " + CloseLabel)
	gap := max(inner-lipgloss.Width(heading)-lipgloss.Width(closeCtl), 1)

	lines := []string{
		heading + strings.Repeat(" ", gap) + closeCtl,
		p.Notification.Message,
	}

	if p.Notification.HasAction() {
		btn := styles.ToastActionStyle
		if p.Focused {
			btn = styles.ToastActionFocusedStyle
		}
		lines = append(lines, btn.Render(p.Notification.Action.Label))
	}

	content := strings.Join(lines, "\n")
	if p.Phase == PhaseEntering || p.Phase == PhaseExiting {
		content = styles.ToastFadedStyle.Render(content)
	}

	return style.Width(p.Width - 2).Render(content)
}

func kindStyle(k notify.Kind) (string, lipgloss.Style) {
	switch k {
	case notify.KindSuccess:
		return styles.IconNotifySuccess, styles.ToastSuccessStyle
	case notify.KindError:
		return styles.IconNotifyError, styles.ToastErrorStyle
	case notify.KindWarning:
		return styles.IconNotifyWarning, styles.ToastWarningStyle
	default:
		return styles.IconNotifyInfo, styles.ToastInfoStyle
	}
}

func overflowLine(hidden, width int) string {
	return styles.TextMutedStyle.Width(width).Align(lipgloss.Right).Render(fmt.Sprintf("+%d more", hidden))
}
