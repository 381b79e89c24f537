package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCommand(t *testing.T) {
	ctx := WithCommand(context.Background(), "showcase")
	assert.Equal(t, "showcase", GetCommand(ctx))
}

func TestWithNotificationID(t *testing.T) {
	ctx := WithNotificationID(context.Background(), "n-1")
	assert.Equal(t, "n-1", GetNotificationID(ctx))
}

func TestContextValues_NotPresent(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetCommand(ctx))
	assert.Empty(t, GetNotificationID(ctx))
}
