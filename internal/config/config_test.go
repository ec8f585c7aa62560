package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvPrefix+"_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, DefaultExportsDir, cfg.Paths.ExportsDir)
	assert.NotEmpty(t, cfg.Database.DSN)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "foamcli.yaml")
	require.NoError(t, os.WriteFile(file, []byte("server:\n  port: 9000\nlogging:\n  level: debug\n"), 0644))

	t.Setenv(EnvPrefix+"_CONFIG_FILE", file)
	t.Setenv(EnvPrefix+"_SERVER_PORT", "9100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{name: "bad log level", env: "_LOGGING_LEVEL", value: "verbose"},
		{name: "bad log format", env: "_LOGGING_FORMAT", value: "xml"},
		{name: "bad port", env: "_SERVER_PORT", value: "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvPrefix+"_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
			t.Setenv(EnvPrefix+tt.env, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestNewPaths(t *testing.T) {
	base := t.TempDir()

	paths, err := NewPaths(base, PathsConfig{ExportsDir: "out"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "out"), paths.ExportsDir)
	assert.Equal(t, filepath.Join(base, DefaultDataDir), paths.DataDir)

	require.NoError(t, paths.EnsureDirectories())
	info, err := os.Stat(paths.ExportsDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.Equal(t, filepath.Join(base, "out", "f.xlsx"), paths.GetExportPath("f.xlsx"))
}
