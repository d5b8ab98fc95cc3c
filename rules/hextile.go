package rules

/*
ApplyTileRules decides whether a hex tile is black in the next generation.

A black tile stays black with exactly 1 or 2 black neighbors; a white tile
turns black with exactly 2 black neighbors.
*/
func ApplyTileRules(blackNeighbors int, black bool) bool {
	if black {
		return blackNeighbors == 1 || blackNeighbors == 2
	}
	return blackNeighbors == 2
}
