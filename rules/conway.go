package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

/*
NextCell returns the next state of a cell together with its newborn marker.

A survivor loses the newborn marker, a birth gains it. The marker of a dead
cell is never read, so it is left false.
*/
func NextCell(alive bool, neighbors int) (nextAlive, newborn bool) {
	if !ApplyConwayRules(neighbors, alive) {
		return false, false
	}
	return true, !alive
}
