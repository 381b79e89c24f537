package validate

import (
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "hello", false},
		{"valid with spaces", "hello world", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Required(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "Required(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestRequiredField(t *testing.T) {
	err := RequiredField("message", " ")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Contains(t, fieldErrs[0].Field, "message")

	assert.NoError(t, RequiredField("message", "ok"))
}

func TestOneOf(t *testing.T) {
	v := OneOf("a", "b")
	assert.NoError(t, v("a"))

	err := v("c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `c`)
}

func TestAtLeast(t *testing.T) {
	v := AtLeast(2)
	assert.NoError(t, v(2))
	assert.Error(t, v(1))
}

func TestPositiveDuration(t *testing.T) {
	assert.NoError(t, PositiveDuration(time.Millisecond))
	assert.Error(t, PositiveDuration(0))
	assert.Error(t, PositiveDuration(-time.Second))
}
