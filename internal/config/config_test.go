package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"contacts/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err, "a missing config file falls back to env and defaults")
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "US", cfg.LocalCountry)
	require.Equal(t, "m", cfg.Units.DefaultLength)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"environment: production\nlocalCountry: CA\nunits:\n  defaultLength: km\n",
	), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "CA", cfg.LocalCountry)
	require.Equal(t, "km", cfg.Units.DefaultLength)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LOCAL_COUNTRY", "AU")
	t.Setenv("UNITS_DEFAULT_LENGTH", "ft")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, "AU", cfg.LocalCountry)
	require.Equal(t, "ft", cfg.Units.DefaultLength)
}
