package main

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-hextiles/model"
	"github.com/sheikhrachel/go-hextiles/utils"
)

var configFiles = []string{"config.json", "config.yaml"}

// loadConfig tries each known config file and falls back to defaults
func loadConfig() (utils.Config, error) {
	return loadConfigFrom(configFiles)
}

func loadConfigFrom(names []string) (utils.Config, error) {
	for _, name := range names {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		return utils.LoadConfig(name)
	}
	fmt.Fprintf(os.Stderr, "Using default configuration (%s not found)\n", strings.Join(names, ", "))
	return utils.DefaultConfig(), nil
}

// loadPaths returns the tile paths, from config.InputFile or the embedded input
func loadPaths(config utils.Config) ([]string, error) {
	if config.InputFile == "" {
		return slices.Collect(model.Lines(embeddedInput)), nil
	}

	f, err := os.Open(config.InputFile)
	if err != nil {
		return nil, errors.Wrapf(err, "[loadPaths] failed to open input: %+v", config.InputFile)
	}
	defer f.Close()

	return model.ScanLines(f)
}

// initializeGame builds the starting floor and the game that will flip it
func initializeGame(config utils.Config, paths []string) (*model.TileGame, int, error) {
	black, err := model.BuildBlackTiles(slices.Values(paths))
	if err != nil {
		return nil, 0, err
	}

	opts := model.GameOptions{Workers: config.WorkerCount()}
	if config.UseMemoryPool {
		opts.Pool = model.NewTileSetPool()
	}

	return model.NewTileGame(black, opts), black.Len(), nil
}

// displayGameInfo shows the run settings
func displayGameInfo(config utils.Config, paths []string) {
	fmt.Printf("Features: Memory Pool: %v, Parallel: %v (workers: %d)\n",
		config.UseMemoryPool, config.UseParallel, config.WorkerCount())
	fmt.Printf("Paths: %d | Generations: %d\n", len(paths), config.Generations)
}

// runGenerations advances the game, timing every generation into stats
func runGenerations(game *model.TileGame, generations int, stats *utils.Stats) {
	for generation := 1; generation <= generations; generation++ {
		frameStart := time.Now()
		game.Advance()
		stats.Update(generation, game.BlackTileCount(), time.Since(frameStart))
	}
}

// displayGameStatus shows the final performance summary
func displayGameStatus(game *model.TileGame, stats *utils.Stats) {
	boundingInfo := "empty floor"
	if bounds, ok := game.State().Bounds(); ok {
		boundingInfo = fmt.Sprintf("Bounding box: %d tiles", bounds.Size())
	}

	fmt.Printf("Day: %d | Black: %d | %s\n",
		stats.TotalGenerations, stats.BlackTiles, boundingInfo)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
}
