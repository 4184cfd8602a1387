// Package config loads the YAML configuration for the snake game: theme,
// bell, logging and SSH server settings.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Config contains all configuration for the game.
type Config struct {
	Theme  Theme  `yaml:"theme"`
	Bell   bool   `yaml:"bell"`
	Log    Log    `yaml:"log"`
	Server Server `yaml:"server"`
}

// Theme defines the glyphs and colors the game is drawn with.
type Theme struct {
	SnakeGlyph  string `yaml:"snake_glyph"`
	FoodGlyph   string `yaml:"food_glyph"`
	SnakeColor  string `yaml:"snake_color"`
	FoodColor   string `yaml:"food_color"`
	BorderColor string `yaml:"border_color"`
}

// Log defines where diagnostics go.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Server defines the SSH server parameters.
type Server struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme: Theme{
			SnakeGlyph:  "*",
			FoodGlyph:   "#",
			SnakeColor:  "default",
			FoodColor:   "default",
			BorderColor: "default",
		},
		Bell: true,
		Log: Log{
			Level: "info",
		},
		Server: Server{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error

	if _, err := glyph(c.Theme.SnakeGlyph); err != nil {
		errs = append(errs, fmt.Errorf("theme.snake_glyph: %w", err))
	}
	if _, err := glyph(c.Theme.FoodGlyph); err != nil {
		errs = append(errs, fmt.Errorf("theme.food_glyph: %w", err))
	}
	for field, name := range map[string]string{
		"theme.snake_color":  c.Theme.SnakeColor,
		"theme.food_color":   c.Theme.FoodColor,
		"theme.border_color": c.Theme.BorderColor,
	} {
		if _, err := core.ParseColor(name); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Server.IdleTimeout < 0 {
		errs = append(errs, errors.New("server.idle_timeout: must not be negative"))
	}

	return errors.Join(errs...)
}

// GameTheme converts the theme section to the renderer's theme.
func (c Config) GameTheme() (snake.Theme, error) {
	if err := c.Validate(); err != nil {
		return snake.Theme{}, err
	}

	// Validate has checked every field below.
	snakeGlyph, _ := glyph(c.Theme.SnakeGlyph)
	foodGlyph, _ := glyph(c.Theme.FoodGlyph)
	snakeColor, _ := core.ParseColor(c.Theme.SnakeColor)
	foodColor, _ := core.ParseColor(c.Theme.FoodColor)
	borderColor, _ := core.ParseColor(c.Theme.BorderColor)

	return snake.Theme{
		SnakeGlyph:  snakeGlyph,
		FoodGlyph:   foodGlyph,
		SnakeColor:  snakeColor,
		FoodColor:   foodColor,
		BorderColor: borderColor,
	}, nil
}

// glyph returns the single rune of s.
func glyph(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("glyph %q must be exactly one character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
