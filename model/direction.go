package model

// Direction is one of the six neighbors of a pointy-top hex tile
type Direction int

const (
	East Direction = iota
	SouthEast
	SouthWest
	West
	NorthWest
	NorthEast
)

// directionDeltas maps each Direction to its axial offset
var directionDeltas = [...]Axial{
	East:      {Q: 1, R: 0},
	SouthEast: {Q: 0, R: 1},
	SouthWest: {Q: -1, R: 1},
	West:      {Q: -1, R: 0},
	NorthWest: {Q: 0, R: -1},
	NorthEast: {Q: 1, R: -1},
}

var directionTokens = [...]string{
	East:      "e",
	SouthEast: "se",
	SouthWest: "sw",
	West:      "w",
	NorthWest: "nw",
	NorthEast: "ne",
}

// AllDirections returns the six directions in table order
func AllDirections() []Direction {
	return []Direction{East, SouthEast, SouthWest, West, NorthWest, NorthEast}
}

// IsValid reports whether d is one of the six hex directions
func (d Direction) IsValid() bool {
	return d >= East && d <= NorthEast
}

// Delta returns the axial offset of a single step in direction d
func (d Direction) Delta() Axial {
	if !d.IsValid() {
		return Axial{}
	}
	return directionDeltas[d]
}

// String returns the path token for d
func (d Direction) String() string {
	if !d.IsValid() {
		return "?"
	}
	return directionTokens[d]
}
