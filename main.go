package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/sheikhrachel/go-hextiles/utils"
)

//go:embed input.txt
var embeddedInput string

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	paths, err := loadPaths(config)
	if err != nil {
		return err
	}
	if config.Verbose {
		displayGameInfo(config, paths)
	}

	game, initial, err := initializeGame(config, paths)
	if err != nil {
		return err
	}
	fmt.Printf("part 1: %d\n", initial)

	if config.Verbose {
		stats := utils.NewStats()
		runGenerations(game, config.Generations, stats)
		displayGameStatus(game, stats)
	} else {
		game.AdvanceN(config.Generations)
	}
	fmt.Printf("part 2: %d\n", game.BlackTileCount())

	return nil
}
