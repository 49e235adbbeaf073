package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LOG_LEVEL", "WORDS_ANSWERS_FILE", "WORDS_ALLOWED_FILE", "SOLVER_STRATEGY",
		"SOLVER_WORKERS", "SOLVER_VERBOSE", "SOLVER_OPENER", "SOLVER_MAX_GUESSES", "DAILY_SALT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "solver.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
strategy: frequency
workers: 3
opener: crane
verbose: true
`), 0o644))
	t.Setenv("SOLVER_WORKERS", "5")
	t.Setenv("SOLVER_MAX_GUESSES", "8")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "frequency", cfg.Strategy)
	assert.Equal(t, 5, cfg.Workers)
	assert.Equal(t, 8, cfg.MaxGuesses)
	assert.Equal(t, "crane", cfg.Opener)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: [1"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)

	t.Setenv("SOLVER_WORKERS", "many")
	_, err = Load("")
	assert.ErrorContains(t, err, "SOLVER_WORKERS")

	t.Setenv("SOLVER_WORKERS", "")
	t.Setenv("SOLVER_VERBOSE", "perhaps")
	_, err = Load("")
	assert.ErrorContains(t, err, "SOLVER_VERBOSE")
}
