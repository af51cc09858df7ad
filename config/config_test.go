package config

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/udcheck/incident"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "udcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("UDCHECK_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ud", cfg.Lang)
	assert.Equal(t, 5, cfg.Level)
	assert.Equal(t, 0, cfg.MaxErrors)
	assert.Equal(t, 20, cfg.MaxStore)
	assert.Equal(t, "text", cfg.Format)
	assert.True(t, cfg.Color)
	assert.Equal(t, incident.DeferFile, cfg.Scope())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("UDCHECK_CONFIG", "")
	t.Setenv("UDCHECK_LANG", "en")
	t.Setenv("UDCHECK_LEVEL", "3")
	t.Setenv("UDCHECK_DEFER_SCOPE", "run")
	t.Setenv("UDCHECK_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, 3, cfg.Level)
	assert.Equal(t, incident.DeferRun, cfg.Scope())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadYAML(t *testing.T) {
	path := writeYAML(t, `
lang: de
level: 2
max_errors: 10
format: json
log:
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Lang)
	assert.Equal(t, 2, cfg.Level)
	assert.Equal(t, 10, cfg.MaxErrors)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 20, cfg.MaxStore, "unset fields keep their default")
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, "level: 2\n")
	t.Setenv("UDCHECK_LEVEL", "4")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Level)
}

func TestLoadConfigFromEnvPath(t *testing.T) {
	path := writeYAML(t, "lang: fr\n")
	t.Setenv("UDCHECK_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Lang)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDoesNotValidate(t *testing.T) {
	t.Setenv("UDCHECK_CONFIG", "")
	t.Setenv("UDCHECK_LEVEL", "9")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Level)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidLevel)

	cfg.Level = 2
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Lang: "ud", Level: 5, MaxStore: 20, Format: "text", DeferScope: "file"}
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"level zero", func(c *Config) { c.Level = 0 }},
		{"level six", func(c *Config) { c.Level = 6 }},
		{"negative max errors", func(c *Config) { c.MaxErrors = -1 }},
		{"negative max store", func(c *Config) { c.MaxStore = -1 }},
		{"format", func(c *Config) { c.Format = "xml" }},
		{"defer scope", func(c *Config) { c.DeferScope = "forever" }},
		{"empty lang", func(c *Config) { c.Lang = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg = valid()
	cfg.Level = 9
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidLevel)
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newHandler(LogConfig{Level: "warn", Format: "json"}, &buf))

	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown", "file", "a.conllu")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "a.conllu", rec["file"])

	h := newHandler(LogConfig{Level: "debug"}, &buf)
	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
}
