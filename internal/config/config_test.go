package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
theme:
  snake_glyph: "o"
  food_color: red
bell: false
server:
  idle_timeout: 90s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Theme.SnakeGlyph != "o" || cfg.Theme.FoodColor != "red" {
		t.Errorf("theme = %+v", cfg.Theme)
	}
	if cfg.Bell {
		t.Error("bell should be disabled")
	}
	if cfg.Server.IdleTimeout != 90*time.Second {
		t.Errorf("idle timeout = %v", cfg.Server.IdleTimeout)
	}
	// Missing fields keep defaults
	if cfg.Theme.FoodGlyph != "#" || cfg.Server.Address != ":23234" || cfg.Log.Level != "info" {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "theme: [", "failed to parse"},
		{"long glyph", "theme:\n  snake_glyph: \"**\"\n", "theme.snake_glyph"},
		{"empty glyph", "theme:\n  food_glyph: \"\"\n", "theme.food_glyph"},
		{"unknown color", "theme:\n  border_color: mauve\n", "theme.border_color"},
		{"unknown level", "log:\n  level: loud\n", "log.level"},
		{"negative timeout", "server:\n  idle_timeout: -1s\n", "server.idle_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("a missing --config file should be an error")
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".snake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("bell: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Bell {
		t.Error("user config was not picked up")
	}
}

func TestGameTheme(t *testing.T) {
	cfg := Default()
	cfg.Theme.SnakeGlyph = "█"
	cfg.Theme.SnakeColor = "Green"
	cfg.Theme.BorderColor = "blue"

	theme, err := cfg.GameTheme()
	if err != nil {
		t.Fatalf("GameTheme() error: %v", err)
	}

	want := snake.Theme{
		SnakeGlyph:  '█',
		FoodGlyph:   '#',
		SnakeColor:  core.ColorGreen,
		FoodColor:   core.ColorDefault,
		BorderColor: core.ColorBlue,
	}
	if theme != want {
		t.Errorf("GameTheme() = %+v, expected %+v", theme, want)
	}
	if def, _ := Default().GameTheme(); def != snake.DefaultTheme() {
		t.Errorf("default theme = %+v, expected %+v", def, snake.DefaultTheme())
	}
}

func TestLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")
	logger, closeFn, err := Log{Level: "debug", File: path}.Logger("snake")
	if err != nil {
		t.Fatalf("Logger() error: %v", err)
	}
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, expected debug", logger.GetLevel())
	}

	logger.Info("hello", "score", 3)
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "score=3") {
		t.Errorf("log file = %q", data)
	}

	if _, _, err := (Log{Level: "nope"}).Logger(""); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
