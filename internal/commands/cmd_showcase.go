package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/toaster/internal/core/logging"
	"github.com/colonyops/toaster/internal/core/notify"
	"github.com/colonyops/toaster/internal/tui"
)

var errNotTerminal = errors.New("the showcase needs an interactive terminal")

type ShowcaseCmd struct {
	flags *Flags

	ticker bool
}

// NewShowcaseCmd creates a new showcase command
func NewShowcaseCmd(flags *Flags) *ShowcaseCmd {
	return &ShowcaseCmd{flags: flags}
}

// Flags returns the showcase flags for registration on the root command
func (cmd *ShowcaseCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "ticker",
			Usage:       "publish a toast from a background goroutine every showcase.ticker_interval",
			Sources:     cli.EnvVars("TOASTER_TICKER"),
			Destination: &cmd.ticker,
		},
	}
}

// Run executes the showcase. Exported for use as default command.
func (cmd *ShowcaseCmd) Run(ctx context.Context, _ *cli.Command) error {
	return cmd.run(logging.WithCommand(ctx, "showcase"), nil)
}

func (cmd *ShowcaseCmd) run(ctx context.Context, initial []notify.Payload) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	cfg := cmd.flags.Config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	var warnings []string
	for _, w := range cfg.Warnings() {
		warnings = append(warnings, fmt.Sprintf("%s %s: %s", w.Category, w.Item, w.Message))
	}

	buf := tui.NewNotificationBuffer()
	if cmd.ticker {
		ticker := tui.NewTicker(buf, cfg.Showcase.TickerInterval)
		ticker.Start(ctx)
		defer ticker.Stop()
	}

	m, err := tui.New(cfg, tui.Options{
		Warnings: warnings,
		Initial:  initial,
		Buffer:   buf,
	})
	if err != nil {
		return fmt.Errorf("create showcase: %w", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run showcase: %w", err)
	}

	log.Debug().Ctx(ctx).Msg("showcase exited")
	return nil
}
