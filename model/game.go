package model

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-hextiles/rules"
)

// GameOptions tunes how TileGame computes generations. The zero value
// advances sequentially without pooling.
type GameOptions struct {
	Pool    *TileSetPool // recycles discarded generations when non-nil
	Workers int          // >1 splits each generation across goroutines
}

// TileGame owns the black tiles of a floor and advances them one day at a time
type TileGame struct {
	state TileSet
	opts  GameOptions
}

// NewTileGame starts a game from a copy of black
func NewTileGame(black TileSet, opts GameOptions) *TileGame {
	return &TileGame{state: black.Clone(), opts: opts}
}

// BlackTileCount returns the number of black tiles
func (g *TileGame) BlackTileCount() int {
	return g.state.Len()
}

// State returns a copy of the current black tiles
func (g *TileGame) State() TileSet {
	return g.state.Clone()
}

// Advance replaces the current black tiles with the next generation
func (g *TileGame) Advance() {
	var next TileSet
	if g.opts.Workers > 1 {
		next = g.nextGenerationParallel()
	} else {
		next = g.nextGeneration()
	}

	TileSetToPool(g.state, g.opts.Pool)
	g.state = next
}

// AdvanceN advances count generations
func (g *TileGame) AdvanceN(count int) {
	for range count {
		g.Advance()
	}
}

func (g *TileGame) newSet() TileSet {
	if g.opts.Pool != nil {
		return g.opts.Pool.Get()
	}
	return make(TileSet, len(g.state))
}

// nextGeneration evaluates every black tile and every white tile touching one
// against the frozen current state
func (g *TileGame) nextGeneration() TileSet {
	next := g.newSet()

	for tile := range g.state {
		if rules.ApplyTileRules(g.state.CountBlackNeighbors(tile), true) {
			next[tile] = struct{}{}
		}
	}

	for tile := range g.state.WhiteCandidates() {
		if rules.ApplyTileRules(g.state.CountBlackNeighbors(tile), false) {
			next[tile] = struct{}{}
		}
	}

	return next
}

// nextGenerationParallel splits the candidate tiles across workers. Workers
// only read g.state and write to their own result slice; the next set is
// assembled after every worker has finished.
func (g *TileGame) nextGenerationParallel() TileSet {
	type candidate struct {
		tile  Axial
		black bool
	}

	candidates := make([]candidate, 0, len(g.state)*4)
	for tile := range g.state {
		candidates = append(candidates, candidate{tile: tile, black: true})
	}
	for tile := range g.state.WhiteCandidates() {
		candidates = append(candidates, candidate{tile: tile})
	}

	var (
		eg              errgroup.Group
		numWorkers      = g.opts.Workers
		tilesPerWorker  = (len(candidates) + numWorkers - 1) / numWorkers // Ceiling division
		survivorsByPart = make([][]Axial, numWorkers)
	)

	for i := range numWorkers {
		var (
			start = i * tilesPerWorker
			end   = min(start+tilesPerWorker, len(candidates))
		)
		if start >= len(candidates) {
			break
		}

		eg.Go(func() error {
			for _, c := range candidates[start:end] {
				if rules.ApplyTileRules(g.state.CountBlackNeighbors(c.tile), c.black) {
					survivorsByPart[i] = append(survivorsByPart[i], c.tile)
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel processing: %v\n", err)
	}

	next := g.newSet()
	for _, part := range survivorsByPart {
		for _, tile := range part {
			next[tile] = struct{}{}
		}
	}
	return next
}
