package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 11, cfg.Game.Cols)
	assert.Equal(t, 4, cfg.Window.Scale)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Window.Scale = 2
	cfg.Game.Seed = 99
	cfg.Debug.Enabled = true
	cfg.Assets.Sheet = "sheet.png"
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[game]\nstep_interval = 0.3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, cfg.Game.StepInterval, 1e-6)
	assert.Equal(t, Default().Window, cfg.Window)
	assert.Equal(t, 11, cfg.Game.Rows)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		msg  string
	}{
		{"syntax", "[window\n", "config.toml:1"},
		{"unknown key", "[window]\nzoom = 3\n", "config.toml"},
		{"invalid scale", "[window]\nscale = 0\n", "window.scale"},
		{"invalid grid", "[game]\ncols = 1\n", "too small"},
		{"invalid interval", "[game]\nstep_interval = -1.0\n", "step_interval"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o644))

			cfg, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestLoadExpandsHome(t *testing.T) {
	home, err := homedir.Dir()
	if err != nil {
		t.Skip("no home directory")
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[assets]\nsheet = \"~/snaek/sheet.png\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "snaek", "sheet.png"), cfg.Assets.Sheet)
}
