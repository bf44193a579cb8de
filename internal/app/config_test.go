package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vackup/internal/domain"
)

// isolate points the config search paths at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig("", "")
	require.NoError(t, err)

	assert.Equal(t, "docker", cfg.Engine.Binary)
	assert.Equal(t, "busybox", cfg.Helper.Image)
	assert.Equal(t, "/vackup-volume", cfg.Helper.VolumeMount)
	assert.Equal(t, "/vackup", cfg.Helper.ExportMount)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.Logging.File.Enabled)
	assert.Equal(t, "10MB", cfg.Logging.File.MaxSize)
	assert.Equal(t, "4w", cfg.Logging.File.MaxAge)
	assert.Equal(t, "127.0.0.1:7777", cfg.Server.Addr)
	assert.Zero(t, cfg.Server.RateLimit)
}

func TestLoadConfig_FileFromSearchPath(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "vackup", "vackup.yaml"), `
helper:
  image: alpine:3.20
export:
  default_dir: /srv/backups
logging:
  level: debug
  format: json
`)

	cfg, err := LoadConfig("", "")
	require.NoError(t, err)
	assert.Equal(t, "alpine:3.20", cfg.Helper.Image)
	assert.Equal(t, "/srv/backups", cfg.Export.DefaultDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfig_ExplicitPathMustExist(t *testing.T) {
	dir := isolate(t)

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"), "")
	require.Error(t, err)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "engine:\n  binary: podman\nserver:\n  rate_limit: 2\n")
	t.Setenv("VACKUP_ENGINE_BINARY", "nerdctl")

	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, "nerdctl", cfg.Engine.Binary)
	assert.Equal(t, 2.0, cfg.Server.RateLimit)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "VACKUP_ENGINE_HOST=unix:///run/user/1000/docker.sock\n")
	t.Cleanup(func() { os.Unsetenv("VACKUP_ENGINE_HOST") })

	cfg, err := LoadConfig("", envFile)
	require.NoError(t, err)
	assert.Equal(t, "unix:///run/user/1000/docker.sock", cfg.Engine.Host)
}

func TestLoadConfig_MissingDotEnvIsIgnored(t *testing.T) {
	dir := isolate(t)

	_, err := LoadConfig("", filepath.Join(dir, ".env"))
	require.NoError(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		var c Config
		c.Engine.Binary = "docker"
		c.Helper.Image = "busybox"
		c.Helper.VolumeMount = "/vackup-volume"
		c.Helper.ExportMount = "/vackup"
		c.Logging.Level = "info"
		c.Logging.Format = "console"
		return c
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }},
		{name: "empty binary", mutate: func(c *Config) { c.Engine.Binary = " " }},
		{name: "empty image", mutate: func(c *Config) { c.Helper.Image = "" }},
		{name: "relative mount", mutate: func(c *Config) { c.Helper.VolumeMount = "data" }},
		{name: "root mount", mutate: func(c *Config) { c.Helper.ExportMount = "/" }},
		{name: "same mounts", mutate: func(c *Config) { c.Helper.ExportMount = c.Helper.VolumeMount }},
		{name: "negative rate", mutate: func(c *Config) { c.Server.RateLimit = -1 }},
		{name: "bad log size", mutate: func(c *Config) {
			c.Logging.File.Enabled = true
			c.Logging.File.MaxSize = "ten"
			c.Logging.File.MaxAge = "1w"
		}},
		{name: "bad log age", mutate: func(c *Config) {
			c.Logging.File.Enabled = true
			c.Logging.File.MaxSize = "10MB"
			c.Logging.File.MaxAge = "soon"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), domain.ErrInvalidConfig)
		})
	}
}

func TestConfig_LogRotation(t *testing.T) {
	tests := []struct {
		size, age        string
		wantMB, wantDays int
	}{
		{size: "10MB", age: "4w", wantMB: 10, wantDays: 28},
		{size: "1.5MB", age: "36h", wantMB: 2, wantDays: 2},
		{size: "512KB", age: "0", wantMB: 1, wantDays: 0},
		{size: "1GB", age: "1M", wantMB: 1024, wantDays: 30},
	}

	for _, tt := range tests {
		t.Run(tt.size+"/"+tt.age, func(t *testing.T) {
			var c Config
			c.Logging.File.MaxSize = tt.size
			c.Logging.File.MaxAge = tt.age

			mb, days, err := c.logRotation()
			require.NoError(t, err)
			assert.Equal(t, tt.wantMB, mb)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}

func TestInitLogger_JSONConsoleAndFile(t *testing.T) {
	dir := t.TempDir()
	var cfg Config
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
	cfg.Logging.File.Enabled = true
	cfg.Logging.File.Path = filepath.Join(dir, "logs", "vackup.log")
	cfg.Logging.File.MaxSize = "1MB"
	cfg.Logging.File.MaxAge = "1d"

	var console bytes.Buffer
	log, cleanup, err := initLogger(cfg, LoggerOptions{Console: &console})
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Msg("visible")
	cleanup()

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), `"message":"visible"`)

	data, err := os.ReadFile(cfg.Logging.File.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
}

func TestInitLogger_LevelOverride(t *testing.T) {
	var cfg Config
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"

	var console bytes.Buffer
	log, _, err := initLogger(cfg, LoggerOptions{Console: &console, LevelOverride: "debug"})
	require.NoError(t, err)
	log.Debug().Msg("shown")
	assert.Contains(t, console.String(), "shown")

	_, _, err = initLogger(cfg, LoggerOptions{LevelOverride: "shouty"})
	require.Error(t, err)
}

func TestNew_WiresService(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "vackup.yaml"), "engine:\n  binary: /bin/true\n")

	var console bytes.Buffer
	a, err := New(context.Background(), Options{Console: &console, LogLevel: "debug"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Equal(t, "/bin/true", a.Runner.Binary())
	require.NotNil(t, a.Volumes)
	assert.True(t, strings.Contains(console.String(), "application wired"))
}
