package config

import (
	"fmt"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/toaster/internal/core/styles"
	"github.com/colonyops/toaster/internal/core/validate"
)

const minToastWidth = 20

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is valid. Field errors are returned
// as criterio.FieldErrors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("toast.position", c.Toast.Position, validate.OneOf(Positions()...)),
		criterio.Run("toast.width", c.Toast.Width, validate.AtLeast(minToastWidth)),
		criterio.Run("toast.max_visible", c.Toast.MaxVisible, validate.AtLeast(0)),
		criterio.Run("toast.enter_frames", c.Toast.EnterFrames, validate.AtLeast(0)),
		criterio.Run("toast.exit_frames", c.Toast.ExitFrames, validate.AtLeast(0)),
		criterio.Run("toast.frame_interval", c.Toast.FrameInterval, validate.PositiveDuration),
		criterio.Run("tui.theme", c.TUI.Theme, isTheme),
		criterio.Run("showcase.ticker_interval", c.Showcase.TickerInterval, validate.PositiveDuration),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Toast.Lifetime > 0 {
		animation := time.Duration(c.Toast.EnterFrames+c.Toast.ExitFrames) * c.Toast.FrameInterval
		if animation >= c.Toast.Lifetime {
			warnings = append(warnings, ValidationWarning{
				Category: "Toast",
				Item:     "lifetime",
				Message:  fmt.Sprintf("lifetime %s is shorter than the enter/exit animation (%s)", c.Toast.Lifetime, animation),
			})
		}
	}

	if c.Toast.Lifetime < 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Toast",
			Item:     "lifetime",
			Message:  "notifications never auto-expire and must be dismissed manually",
		})
	}

	return warnings
}

func isTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q, available: %v", name, styles.ThemeNames())
	}
	return nil
}
