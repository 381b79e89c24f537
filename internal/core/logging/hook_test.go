package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name  string
		ctx   context.Context
		want  map[string]string
		unset []string
	}{
		{
			name:  "background context",
			ctx:   context.Background(),
			unset: []string{"command", "notification_id"},
		},
		{
			name:  "command only",
			ctx:   WithCommand(context.Background(), "compose"),
			want:  map[string]string{"command": "compose"},
			unset: []string{"notification_id"},
		},
		{
			name: "both",
			ctx:  WithNotificationID(WithCommand(context.Background(), "showcase"), "abc"),
			want: map[string]string{"command": "showcase", "notification_id": "abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Hook(ContextHook{})

			logger.Info().Ctx(tt.ctx).Msg("hello")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			for k, v := range tt.want {
				assert.Equal(t, v, entry[k])
			}
			for _, k := range tt.unset {
				assert.NotContains(t, entry, k)
			}
		})
	}
}
