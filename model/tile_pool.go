package model

import "sync"

// TileSetToPool returns a tile set to the pool for reuse
func TileSetToPool(set TileSet, pool *TileSetPool) {
	if pool == nil || set == nil {
		return
	}

	pool.Put(set)
}

// TileSetPool recycles the map storage of discarded generations
type TileSetPool struct {
	pool sync.Pool
}

func NewTileSetPool() *TileSetPool {
	return &TileSetPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(TileSet)
			},
		},
	}
}

// Get retrieves an empty tile set from the pool
func (p *TileSetPool) Get() TileSet {
	return p.pool.Get().(TileSet)
}

// Put returns a tile set to the pool, clearing its tiles
func (p *TileSetPool) Put(s TileSet) {
	clear(s)
	p.pool.Put(s)
}
