package rules

const (
	// SurviveLow and SurviveHigh bound the live neighbor counts that keep a live cell alive
	SurviveLow  = 2
	SurviveHigh = 3
	// Birth is the exact live neighbor count that brings a dead cell to life
	Birth = 3
)

// Offset is a (row, col) displacement from a cell to one of its neighbors
type Offset struct {
	Row int
	Col int
}

// MooreNeighborhood lists the 8 offsets surrounding a cell, the cell itself excluded
var MooreNeighborhood = [8]Offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbors, a dead cell is born with exactly 3.
neighbors must not include the cell itself.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= SurviveLow && neighbors <= SurviveHigh
	}
	return neighbors == Birth
}
