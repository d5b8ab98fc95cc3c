package model

import (
	"cmp"
	"slices"
)

// TileSet holds the black tiles of a floor; every tile not in the set is white
type TileSet map[Axial]struct{}

// NewTileSet creates a TileSet containing tiles
func NewTileSet(tiles ...Axial) TileSet {
	s := make(TileSet, len(tiles))
	for _, t := range tiles {
		s[t] = struct{}{}
	}
	return s
}

// Contains reports whether tile is black
func (s TileSet) Contains(tile Axial) bool {
	_, ok := s[tile]
	return ok
}

// Toggle flips tile between black and white and reports whether it is now black
func (s TileSet) Toggle(tile Axial) bool {
	if s.Contains(tile) {
		delete(s, tile)
		return false
	}
	s[tile] = struct{}{}
	return true
}

// Len returns the number of black tiles
func (s TileSet) Len() int { return len(s) }

// CountBlackNeighbors counts how many of tile's six neighbors are black
func (s TileSet) CountBlackNeighbors(tile Axial) (count int) {
	for _, n := range tile.Neighbors() {
		if s.Contains(n) {
			count++
		}
	}
	return
}

// WhiteCandidates returns every white tile adjacent to at least one black tile
func (s TileSet) WhiteCandidates() TileSet {
	candidates := make(TileSet, len(s)*2)
	for tile := range s {
		for _, n := range tile.Neighbors() {
			if !s.Contains(n) {
				candidates[n] = struct{}{}
			}
		}
	}
	return candidates
}

// Clone returns an independent copy of s
func (s TileSet) Clone() TileSet {
	c := make(TileSet, len(s))
	for t := range s {
		c[t] = struct{}{}
	}
	return c
}

// Equal reports whether s and o hold the same tiles
func (s TileSet) Equal(o TileSet) bool {
	if len(s) != len(o) {
		return false
	}
	for t := range s {
		if !o.Contains(t) {
			return false
		}
	}
	return true
}

// Sorted lists the tiles ordered by r, then q
func (s TileSet) Sorted() []Axial {
	tiles := make([]Axial, 0, len(s))
	for t := range s {
		tiles = append(tiles, t)
	}
	slices.SortFunc(tiles, func(a, b Axial) int {
		if c := cmp.Compare(a.R, b.R); c != 0 {
			return c
		}
		return cmp.Compare(a.Q, b.Q)
	})
	return tiles
}

// Bounds is the axial bounding box of a TileSet
type Bounds struct {
	MinQ, MaxQ, MinR, MaxR int
}

// Size returns the number of coordinates inside the box
func (b Bounds) Size() int {
	return (b.MaxQ - b.MinQ + 1) * (b.MaxR - b.MinR + 1)
}

// Bounds returns the bounding box of the black tiles; ok is false for an empty set
func (s TileSet) Bounds() (b Bounds, ok bool) {
	for t := range s {
		if !ok {
			b = Bounds{MinQ: t.Q, MaxQ: t.Q, MinR: t.R, MaxR: t.R}
			ok = true
			continue
		}
		b.MinQ = min(b.MinQ, t.Q)
		b.MaxQ = max(b.MaxQ, t.Q)
		b.MinR = min(b.MinR, t.R)
		b.MaxR = max(b.MaxR, t.R)
	}
	return
}
