package main

import (
	log "log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)

	path := filepath.Join(t.TempDir(), "dllist.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"values":[-5,-2,-9],"log_level":"debug"}`), 0o644))
	config, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []int{-5, -2, -9}, config.Values)
	lvl, err := config.Level()
	require.NoError(t, err)
	assert.Equal(t, log.LevelDebug, lvl)

	require.NoError(t, os.WriteFile(path, []byte(`{"values":`), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = (&Config{LogLevel: "loud"}).Level()
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	assert.NoError(t, run(DefaultConfig()))
	assert.NoError(t, run(&Config{}))
	assert.NoError(t, run(&Config{Values: []int{3}}))
}
