/*
File    : apscript/config/config_test.go
Package : config
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasColorOnAndNoLimits(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.Color)
	assert.Zero(t, cfg.Seed)
	assert.Zero(t, cfg.StepBudget)
}

func TestLoad_OverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "apscript.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 7\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.EqualValues(t, 7, cfg.Seed)
	assert.True(t, cfg.Color, "unset fields keep Default()'s value")
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
