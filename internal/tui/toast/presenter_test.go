package toast

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/toaster/internal/core/notify"
	"github.com/colonyops/toaster/internal/core/styles"
	"github.com/colonyops/toaster/pkg/tuitest"
)

func TestAlertText(t *testing.T) {
	tests := []struct {
		name string
		n    notify.Notification
		want string
	}{
		{
			name: "message only",
			n:    notify.Notification{Kind: notify.KindSuccess, Message: "Saved"},
			want: "alert: success: Saved",
		},
		{
			name: "with title",
			n:    notify.Notification{Kind: notify.KindError, Title: "Sync", Message: "offline"},
			want: "alert: error: Sync: offline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AlertText(tt.n))
		})
	}
}

func TestDefaultPresenter(t *testing.T) {
	props := CardProps{
		Card: Card{
			Notification: notify.Notification{
				Kind:    notify.KindWarning,
				Title:   "Disk",
				Message: "almost full",
				Action:  &notify.Action{Label: "Clean up", OnActivate: func() error { return nil }},
			},
			Phase: PhaseVisible,
		},
		Width: 40,
	}

	out := DefaultPresenter{}.Present(props)
	plain := tuitest.StripANSI(out)

	assert.Equal(t, 40, lipgloss.Width(out))
	assert.Contains(t, plain, "Disk")
	assert.Contains(t, plain, "almost full")
	assert.Contains(t, plain, "Clean up")
	assert.Contains(t, plain, styles.IconClose+" "+CloseLabel, "every card has a labelled close control")
	assert.Contains(t, plain, AlertRole, "every card carries the alert marker")

	heading := tuitest.LineOf(plain, "Disk")
	message := tuitest.LineOf(plain, "almost full")
	require.NotEqual(t, -1, heading)
	assert.Less(t, heading, message)
}

func TestDefaultPresenter_without_action(t *testing.T) {
	out := DefaultPresenter{}.Present(CardProps{
		Card:  Card{Notification: notify.Notification{Kind: notify.KindInfo, Message: "hello"}},
		Width: 30,
	})

	plain := tuitest.StripANSI(out)
	assert.Contains(t, plain, "hello")
	assert.Contains(t, plain, AlertRole)
	assert.Contains(t, plain, CloseLabel)
	assert.NotContains(t, plain, "Clean up")
	assert.Equal(t, 30, lipgloss.Width(out))
}

func TestPresenterFunc(t *testing.T) {
	p := PresenterFunc(func(props CardProps) string { return "custom:" + props.Notification.Message })
	assert.Equal(t, "custom:x", p.Present(CardProps{Card: Card{Notification: notify.Notification{Message: "x"}}}))
}

func TestParsePosition(t *testing.T) {
	pos, err := ParsePosition("top-left")
	require.NoError(t, err)
	assert.True(t, pos.Top())
	assert.True(t, pos.Left())

	pos, err = ParsePosition("bottom-right")
	require.NoError(t, err)
	assert.False(t, pos.Top())
	assert.False(t, pos.Left())

	_, err = ParsePosition("center")
	assert.Error(t, err)
}
