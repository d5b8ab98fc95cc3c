package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-hextiles/model"
	"github.com/sheikhrachel/go-hextiles/utils"
)

func TestEmbeddedInput(t *testing.T) {
	config := utils.DefaultConfig()

	paths, err := loadPaths(config)
	require.NoError(t, err)

	game, initial, err := initializeGame(config, paths)
	require.NoError(t, err)
	assert.Equal(t, 10, initial)

	stats := utils.NewStats()
	runGenerations(game, config.Generations, stats)
	assert.Equal(t, 2208, game.BlackTileCount())
	assert.Equal(t, 100, stats.TotalGenerations)
}

func TestInputFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "floor.txt")
	require.NoError(t, os.WriteFile(path, []byte("esew\nsen\n"), 0o644))

	config := utils.DefaultConfig()
	config.InputFile = path

	paths, err := loadPaths(config)
	require.NoError(t, err)

	_, _, err = initializeGame(config, paths)
	require.Error(t, err)
	assert.IsType(t, &model.MalformedTokenError{}, errors.Cause(err))
}

func TestDefaultConfigKeepsStdoutClean(t *testing.T) {
	dir := t.TempDir()
	missing := []string{filepath.Join(dir, "config.json"), filepath.Join(dir, "config.yaml")}

	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = w

	config, err := loadConfigFrom(missing)

	os.Stdout = stdout
	require.NoError(t, w.Close())
	printed, readErr := io.ReadAll(r)
	require.NoError(t, readErr)

	require.NoError(t, err)
	assert.Equal(t, utils.DefaultConfig(), config)
	assert.Empty(t, printed)
}
