package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/toaster/internal/core/config"
	"github.com/colonyops/toaster/internal/printer"
	"github.com/colonyops/toaster/pkg/tuitest"
)

func runConfigValidate(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	flags := &Flags{Config: &cfg}
	root := &cli.Command{
		Name:           "toaster",
		Writer:         &out,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	app := NewConfigValidateCmd(flags).Register(root)

	ctx := printer.WithPrinter(context.Background(), printer.New(&out))
	err := app.Run(ctx, append([]string{"toaster", "config", "validate"}, args...))
	return tuitest.StripANSI(out.String()), err
}

func TestConfigValidate_valid(t *testing.T) {
	out, err := runConfigValidate(t, config.DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}

func TestConfigValidate_invalid_text(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Toast.Position = "middle"
	cfg.Toast.Width = 5

	out, err := runConfigValidate(t, cfg)

	var exitErr cli.ExitCoder
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, out, "toast.position")
	assert.Contains(t, out, "toast.width")
	assert.Contains(t, out, "2 error(s) found")
}

func TestConfigValidate_json(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Toast.Lifetime = -1

	out, err := runConfigValidate(t, cfg, "--format", "json")
	require.NoError(t, err)

	var got struct {
		Valid    bool `json:"valid"`
		Warnings []struct {
			Item string `json:"item"`
		} `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Valid)
	require.Len(t, got.Warnings, 1)
	assert.Equal(t, "lifetime", got.Warnings[0].Item)
}

func TestFieldIssues_plain_error(t *testing.T) {
	issues := fieldIssues(errors.New("boom"))
	require.Len(t, issues, 1)
	assert.Empty(t, issues[0].Field)
	assert.Equal(t, "boom", issues[0].Message)

	assert.Nil(t, fieldIssues(nil))
}
