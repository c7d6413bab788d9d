package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Toggles reports whether the rules flip the cell this generation:
// a live cell with fewer than 2 or more than 3 neighbors dies, a dead cell with exactly 3 is born.
func Toggles(neighbors int, alive bool) bool {
	return ApplyConwayRules(neighbors, alive) != alive
}
