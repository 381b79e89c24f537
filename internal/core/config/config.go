// Package config handles configuration loading and validation for toaster.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported toast stack anchors.
const (
	PositionTopRight    = "top-right"
	PositionTopLeft     = "top-left"
	PositionBottomRight = "bottom-right"
	PositionBottomLeft  = "bottom-left"
)

// Config holds the application configuration.
type Config struct {
	Toast    ToastConfig    `yaml:"toast"`
	TUI      TUIConfig      `yaml:"tui"`
	Showcase ShowcaseConfig `yaml:"showcase"`
}

// ToastConfig controls how notifications are rendered. It is read once when
// the renderer mounts.
type ToastConfig struct {
	Position      string        `yaml:"position"`       // stack anchor corner
	Lifetime      time.Duration `yaml:"lifetime"`       // default auto-expiry, negative disables
	Width         int           `yaml:"width"`          // card width in cells
	MaxVisible    int           `yaml:"max_visible"`    // render cap, 0 = unlimited
	EnterFrames   int           `yaml:"enter_frames"`   // 0 = no enter animation
	ExitFrames    int           `yaml:"exit_frames"`    // 0 = no exit animation
	FrameInterval time.Duration `yaml:"frame_interval"` // animation tick
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// ShowcaseConfig holds settings for the component showcase.
type ShowcaseConfig struct {
	// TickerInterval is how often the background producer publishes when
	// enabled with --ticker.
	TickerInterval time.Duration `yaml:"ticker_interval"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Toast: ToastConfig{
			Position:      PositionBottomRight,
			Lifetime:      5 * time.Second,
			Width:         50,
			MaxVisible:    0,
			EnterFrames:   3,
			ExitFrames:    3,
			FrameInterval: 60 * time.Millisecond,
		},
		TUI: TUIConfig{
			Theme: "tokyo-night",
		},
		Showcase: ShowcaseConfig{
			TickerInterval: 4 * time.Second,
		},
	}
}

// Load reads configuration from the given path and validates it. If
// configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg, err := Read(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read parses the config file and applies defaults without validating.
func Read(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Toast.Position == "" {
		c.Toast.Position = defaults.Toast.Position
	}
	if c.Toast.Lifetime == 0 {
		c.Toast.Lifetime = defaults.Toast.Lifetime
	}
	if c.Toast.Width == 0 {
		c.Toast.Width = defaults.Toast.Width
	}
	if c.Toast.FrameInterval == 0 {
		c.Toast.FrameInterval = defaults.Toast.FrameInterval
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.Showcase.TickerInterval == 0 {
		c.Showcase.TickerInterval = defaults.Showcase.TickerInterval
	}
}

// Positions returns every supported stack anchor.
func Positions() []string {
	return []string{PositionTopRight, PositionTopLeft, PositionBottomRight, PositionBottomLeft}
}
