package model

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExampleGame(t *testing.T, opts GameOptions) *TileGame {
	t.Helper()

	black, err := BuildBlackTiles(slices.Values(loadExample(t)))
	require.NoError(t, err)
	return NewTileGame(black, opts)
}

func TestAdvanceOneDay(t *testing.T) {
	game := newExampleGame(t, GameOptions{})
	game.Advance()
	assert.Equal(t, 15, game.BlackTileCount())
}

func TestAdvanceNDays(t *testing.T) {
	tests := []struct {
		name string
		opts GameOptions
	}{
		{name: "sequential"},
		{name: "pooled", opts: GameOptions{Pool: NewTileSetPool()}},
		{name: "parallel", opts: GameOptions{Workers: 4}},
		{name: "parallel pooled", opts: GameOptions{Pool: NewTileSetPool(), Workers: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := newExampleGame(t, tt.opts)

			game.AdvanceN(10)
			assert.Equal(t, 37, game.BlackTileCount())

			game.AdvanceN(10)
			assert.Equal(t, 132, game.BlackTileCount())

			game.AdvanceN(80)
			assert.Equal(t, 2208, game.BlackTileCount())
		})
	}
}

func TestAdvanceNZeroIsNoop(t *testing.T) {
	game := newExampleGame(t, GameOptions{})
	before := game.State()

	game.AdvanceN(0)
	assert.Equal(t, before.Sorted(), game.State().Sorted())
}

func TestAdvanceNComposes(t *testing.T) {
	for _, split := range [][2]int{{0, 7}, {3, 4}, {7, 0}, {1, 6}} {
		t.Run(fmt.Sprintf("%d+%d", split[0], split[1]), func(t *testing.T) {
			whole := newExampleGame(t, GameOptions{})
			whole.AdvanceN(split[0] + split[1])

			parts := newExampleGame(t, GameOptions{Pool: NewTileSetPool()})
			parts.AdvanceN(split[0])
			parts.AdvanceN(split[1])

			assert.Equal(t, whole.State().Sorted(), parts.State().Sorted())
		})
	}
}

func TestEmptyFloorIsFixedPoint(t *testing.T) {
	for _, opts := range []GameOptions{{}, {Workers: 4}} {
		game := NewTileGame(NewTileSet(), opts)
		game.Advance()
		game.AdvanceN(5)
		assert.Equal(t, 0, game.BlackTileCount())
	}
}

func TestAdvanceSmallPatterns(t *testing.T) {
	// a lone tile has no black neighbors and nothing can flip next to it
	lone := NewTileGame(NewTileSet(Axial{}), GameOptions{})
	lone.Advance()
	assert.Equal(t, 0, lone.BlackTileCount())

	// two adjacent tiles survive and each common neighbor turns black
	pair := NewTileGame(NewTileSet(Axial{}, Axial{Q: 1, R: 0}), GameOptions{})
	pair.Advance()
	expects := NewTileSet(Axial{}, Axial{Q: 1, R: 0}, Axial{Q: 1, R: -1}, Axial{Q: 0, R: 1})
	assert.Equal(t, expects.Sorted(), pair.State().Sorted())
}

func TestNewTileGameCopiesState(t *testing.T) {
	black := NewTileSet(Axial{}, Axial{Q: 1, R: 0})
	game := NewTileGame(black, GameOptions{Pool: NewTileSetPool()})

	game.AdvanceN(3)
	assert.Equal(t, 2, black.Len())

	state := game.State()
	state.Toggle(Axial{Q: 9, R: 9})
	assert.False(t, game.State().Contains(Axial{Q: 9, R: 9}))
}
