package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "toml", cfg.Format)
	assert.Equal(t, 4, cfg.Concurrency)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handparser.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
room        = "stars"
format      = "json"
concurrency = 8
debug       = true
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "stars", cfg.Room)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.True(t, cfg.Debug)
}

func TestLoadConfigPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handparser.hcl")
	require.NoError(t, os.WriteFile(path, []byte("room = \"pkr\"\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "pkr", cfg.Room)
	assert.Equal(t, "toml", cfg.Format)
	assert.Equal(t, 4, cfg.Concurrency)
}

func TestLoadConfigRejectsBadHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte("room = \n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
