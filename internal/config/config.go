// Package config provides the window and display settings for the game.
// Settings are loaded from an optional JSON file on top of the defaults.
// Gameplay tuning is deliberately absent: every player gets the same game.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidConfig is returned when a loaded config cannot drive the game.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the display settings.
type Config struct {
	Window WindowConfig `json:"window"`
	Fonts  FontConfig   `json:"fonts"`
	TPS    int          `json:"tps"` // Logic ticks per second
}

// WindowConfig defines the window and playfield. The playfield always
// matches the window size.
type WindowConfig struct {
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// FontConfig defines text sizes in points.
type FontConfig struct {
	ButtonSize float64 `json:"button_size"`
	ScoreSize  float64 `json:"score_size"`
}

// DefaultConfig returns the classic 540x540 layout at 60 ticks per second.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Pong",
			Width:  540,
			Height: 540,
		},
		Fonts: FontConfig{
			ButtonSize: 25,
			ScoreSize:  15,
		},
		TPS: 60,
	}
}

// Load loads the config from a JSON file. A missing file yields the
// defaults; fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that sizes and rates are positive.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	}
	if c.Fonts.ButtonSize <= 0 || c.Fonts.ScoreSize <= 0 {
		return fmt.Errorf("%w: font sizes %v/%v", ErrInvalidConfig, c.Fonts.ButtonSize, c.Fonts.ScoreSize)
	}
	return nil
}
