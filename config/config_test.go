package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 10, cfg.MaxIterations)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agent.yaml")
	content := []byte("model: gpt-5.2\nmax_iterations: 5\nlog:\n  level: debug\n  format: json\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gpt-5.2", cfg.Model)
	assert.Equal(t, 5, cfg.MaxIterations)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agent.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: gpt-5.2\nmax_iterations: 5\n"), 0o644))

	t.Setenv("AGENT_MODEL", "claude-opus-4-6")
	t.Setenv("AGENT_MAX_ITERATIONS", "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "claude-opus-4-6", cfg.Model)
	assert.Equal(t, 7, cfg.MaxIterations)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().MaxIterations, cfg.MaxIterations)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.MaxIterations = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Log.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Log.Level = "loudest"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.ToolOutputLimit = -1
	assert.Error(t, cfg.Validate())
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	logger.Debug("configured")
	_ = logger.Sync()

	_, err = NewLogger(LogConfig{Level: "nonsense", Format: "console"})
	assert.Error(t, err)
}
