package rules

const (
	// BirthNeighbors is the exact live-neighbor count that brings a dead cell to life.
	BirthNeighbors = 3
	// SurvivalMinNeighbors and SurvivalMaxNeighbors bound the live-neighbor count
	// that keeps a live cell alive.
	SurvivalMinNeighbors = 2
	SurvivalMaxNeighbors = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A dead cell is born on exactly 3 live neighbors, a live cell survives on 2 or 3,
and every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if !alive {
		return neighbors == BirthNeighbors
	}
	return neighbors >= SurvivalMinNeighbors && neighbors <= SurvivalMaxNeighbors
}
