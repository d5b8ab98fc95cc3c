package model

import "fmt"

// Axial identifies a hex tile by its axial coordinates (q, r)
type Axial struct {
	Q int
	R int
}

// Add returns a+b in axial space
func (a Axial) Add(b Axial) Axial { return Axial{Q: a.Q + b.Q, R: a.R + b.R} }

// Step moves one tile in direction d
func (a Axial) Step(d Direction) Axial { return a.Add(d.Delta()) }

// Neighbors returns the six adjacent tiles, in the order
// (q+1,r-1), (q+1,r), (q,r+1), (q-1,r+1), (q-1,r), (q,r-1)
func (a Axial) Neighbors() [6]Axial {
	return [6]Axial{
		{Q: a.Q + 1, R: a.R - 1},
		{Q: a.Q + 1, R: a.R},
		{Q: a.Q, R: a.R + 1},
		{Q: a.Q - 1, R: a.R + 1},
		{Q: a.Q - 1, R: a.R},
		{Q: a.Q, R: a.R - 1},
	}
}

func (a Axial) String() string {
	return fmt.Sprintf("(%d, %d)", a.Q, a.R)
}
