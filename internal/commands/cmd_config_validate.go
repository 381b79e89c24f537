package commands

import (
	"context"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/toaster/internal/core/config"
	"github.com/colonyops/toaster/internal/printer"
	"github.com/colonyops/toaster/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "toaster config validate [options]",
				Description: "Validates the configuration file, checking toast placement, sizes, animation timing, and theme.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type fieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	err := cfg.Validate()
	warnings := cfg.Warnings()

	if cmd.format == "json" {
		out := struct {
			Valid    bool                       `json:"valid"`
			Errors   []fieldIssue               `json:"errors,omitempty"`
			Warnings []config.ValidationWarning `json:"warnings,omitempty"`
		}{
			Valid:    err == nil,
			Errors:   fieldIssues(err),
			Warnings: warnings,
		}
		if encErr := iojson.Encode(c.Root().Writer, out); encErr != nil {
			return encErr
		}
		if err != nil {
			return cli.Exit("", 1)
		}
		return nil
	}

	p := printer.Ctx(ctx)

	for _, w := range warnings {
		p.Warnf("%s: %s", w.Category, w.Message)
		if w.Item != "" {
			p.Printf("  Item: %s", w.Item)
		}
	}

	if err != nil {
		printValidation(p, err)
		return cli.Exit("", 1)
	}

	p.Successf("Configuration is valid")
	return nil
}

// fieldIssues flattens criterio field errors, falling back to a single
// unnamed issue for any other error.
func fieldIssues(err error) []fieldIssue {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []fieldIssue{{Message: err.Error()}}
	}

	out := make([]fieldIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, fieldIssue{Field: fe.Field, Message: fe.Err.Error()})
	}
	return out
}

func printValidation(p *printer.Printer, err error) {
	issues := fieldIssues(err)
	for _, issue := range issues {
		if issue.Field == "" {
			p.Errorf("%s", issue.Message)
			continue
		}
		p.Errorf("%s: %s", issue.Field, issue.Message)
	}

	p.Printf("")
	p.Errorf("%d error(s) found", len(issues))
}
