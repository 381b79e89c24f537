package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/toaster/internal/core/logging"
	"github.com/colonyops/toaster/internal/core/notify"
	"github.com/colonyops/toaster/internal/core/styles"
	"github.com/colonyops/toaster/internal/core/validate"
	"github.com/colonyops/toaster/internal/printer"
	"github.com/colonyops/toaster/pkg/iojson"
)

// composeInput is the JSON shape accepted by `toaster compose --file`.
type composeInput struct {
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Lifetime string `json:"lifetime"`
}

type ComposeCmd struct {
	flags    *Flags
	showcase *ShowcaseCmd
	reader   iojson.FileReader[composeInput]
}

// NewComposeCmd creates a new compose command
func NewComposeCmd(flags *Flags, showcase *ShowcaseCmd) *ComposeCmd {
	return &ComposeCmd{flags: flags, showcase: showcase}
}

// Register adds the compose command to the application
func (cmd *ComposeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "compose",
		Usage:     "Build a notification and open the showcase with it queued",
		UsageText: "toaster compose [options]",
		Description: `Builds a single notification and opens the showcase with it on screen.

Input is read as JSON from --file or piped stdin:
  {"kind": "warning", "title": "Disk", "message": "almost full", "lifetime": "10s"}

Without input, an interactive form prompts for the fields.`,
		Flags:  []cli.Flag{cmd.reader.Flag()},
		Action: cmd.run,
	})

	return app
}

func (cmd *ComposeCmd) run(ctx context.Context, _ *cli.Command) error {
	ctx = logging.WithCommand(ctx, "compose")

	in, err := cmd.reader.Read()
	if errors.Is(err, iojson.ErrNoInput) {
		in, err = cmd.runForm()
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
	}
	if err != nil {
		return fmt.Errorf("read notification: %w", err)
	}

	payload, err := in.payload()
	if err != nil {
		return err
	}

	if err := payload.Validate(); err != nil {
		p := printer.Ctx(ctx)
		printValidation(p, err)
		return cli.Exit("", 1)
	}

	return cmd.showcase.run(ctx, []notify.Payload{payload})
}

func (in composeInput) payload() (notify.Payload, error) {
	p := notify.Payload{
		Kind:    notify.Kind(strings.ToLower(strings.TrimSpace(in.Kind))),
		Title:   in.Title,
		Message: in.Message,
	}

	switch in.Lifetime {
	case "":
	case "sticky":
		p.Lifetime = -1
	default:
		d, err := time.ParseDuration(in.Lifetime)
		if err != nil {
			return p, fmt.Errorf("parse lifetime: %w", err)
		}
		p.Lifetime = d
	}

	return p, nil
}

func (cmd *ComposeCmd) runForm() (composeInput, error) {
	fmt.Println(styles.CommandHeaderStyle.Render(styles.IconBell + " compose a toast"))
	fmt.Println()

	in := composeInput{Kind: string(notify.KindInfo)}

	kinds := make([]huh.Option[string], 0, len(notify.Kinds()))
	for _, k := range notify.Kinds() {
		kinds = append(kinds, huh.NewOption(string(k), string(k)))
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Kind").
				Options(kinds...).
				Value(&in.Kind),
			huh.NewInput().
				Title("Title").
				Description("Optional heading").
				Value(&in.Title),
			huh.NewInput().
				Title("Message").
				Validate(validate.Required).
				Value(&in.Message),
			huh.NewInput().
				Title("Lifetime").
				Description(`Duration such as 8s, "sticky", or empty for the default`).
				Validate(validateLifetime).
				Value(&in.Lifetime),
		),
	).WithTheme(styles.FormTheme()).Run()

	return in, err
}

func validateLifetime(s string) error {
	_, err := composeInput{Lifetime: s}.payload()
	return err
}
