// Package config holds the snaek settings file: window, game, debug and asset
// options encoded as TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is where the game looks for its settings when no path is given.
const DefaultFile = "~/.config/snaek/config.toml"

// Config is the complete settings file.
type Config struct {
	Window Window `toml:"window"`
	Game   Game   `toml:"game"`
	Debug  Debug  `toml:"debug"`
	Assets Assets `toml:"assets"`
}

// Window configures the host window.
type Window struct {
	Title       string `toml:"title"`
	Scale       int    `toml:"scale"` // integer upscale of the logical viewport
	TPS         int    `toml:"tps"`
	Undecorated bool   `toml:"undecorated"`
}

// Game configures the snake rules.
type Game struct {
	Cols         int     `toml:"cols"`
	Rows         int     `toml:"rows"`
	StepInterval float32 `toml:"step_interval"` // seconds between steps
	Seed         uint64  `toml:"seed"`          // 0 picks a random seed
}

// Debug enables the toolkit's debug checks and tooling.
type Debug struct {
	Enabled         bool   `toml:"enabled"`
	ShowFPS         bool   `toml:"show_fps"`
	Script          string `toml:"script"` // YAML or JSON test script run on startup
	ScreenshotDir   string `toml:"screenshot_dir"`
	ScreenshotScale int    `toml:"screenshot_scale"`
}

// Assets points at optional image files. Empty paths use built-in artwork.
type Assets struct {
	Sheet     string `toml:"sheet"`      // snaek sprite sheet PNG
	FontSheet string `toml:"font_sheet"` // ascii-chars PNG
	Font      string `toml:"font"`       // BMFont .fnt describing FontSheet
}

// Default returns the settings used when no file overrides them.
func Default() Config {
	return Config{
		Window: Window{
			Title:       "Snaek",
			Scale:       4,
			TPS:         60,
			Undecorated: true,
		},
		Game: Game{
			Cols:         11,
			Rows:         11,
			StepInterval: 0.15,
		},
		Debug: Debug{
			ScreenshotDir:   "screenshots",
			ScreenshotScale: 1,
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Window.Scale < 1:
		return fmt.Errorf("config: window.scale must be at least 1, got %d", c.Window.Scale)
	case c.Window.TPS < 1:
		return fmt.Errorf("config: window.tps must be at least 1, got %d", c.Window.TPS)
	case c.Game.Cols < 2 || c.Game.Rows < 1:
		return fmt.Errorf("config: game grid %dx%d is too small", c.Game.Cols, c.Game.Rows)
	case c.Game.StepInterval <= 0:
		return fmt.Errorf("config: game.step_interval must be positive, got %v", c.Game.StepInterval)
	}
	return nil
}

// Load reads the TOML file at path over the defaults. A leading ~ expands to
// the home directory. A missing file returns the defaults along with an error
// matching os.ErrNotExist.
func Load(path string) (Config, error) {
	cfg := Default()
	path, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Default(), fmt.Errorf("config: %s:%d:%d: %w", path, row, col, err)
		}
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	cfg.expandPaths()
	return cfg, nil
}

// Save writes cfg to path as TOML, creating parent directories.
func Save(path string, cfg Config) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// expandPaths resolves ~ in every path setting. Paths that fail to expand are
// left as written.
func (c *Config) expandPaths() {
	for _, p := range []*string{
		&c.Debug.Script,
		&c.Debug.ScreenshotDir,
		&c.Assets.Sheet,
		&c.Assets.FontSheet,
		&c.Assets.Font,
	} {
		if expanded, err := homedir.Expand(*p); err == nil {
			*p = expanded
		}
	}
}
