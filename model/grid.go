package model

import "iter"

// Coord identifies a cell by 0-indexed row and column
type Coord struct {
	Row int
	Col int
}

// Grid is the read-only rectangular shape shared by boards and constructs.
// Alive is unchecked: callers stay within Rows() x Cols().
type Grid interface {
	Rows() int
	Cols() int
	Alive(row, col int) bool
}

// LiveCells yields the coordinates of every live cell of g in row-major order.
// The sequence is lazy and can be ranged over again for the same result while g is unchanged.
func LiveCells(g Grid) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for r := range g.Rows() {
			for c := range g.Cols() {
				if g.Alive(r, c) && !yield(Coord{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// CollectLive drains LiveCells into a slice
func CollectLive(g Grid) []Coord {
	var coords []Coord
	for p := range LiveCells(g) {
		coords = append(coords, p)
	}
	return coords
}

// allocCells returns rows x cols cells backed by a single slice
func allocCells(rows, cols int) [][]bool {
	cells := make([][]bool, rows)
	buf := make([]bool, rows*cols)
	for i := range cells {
		start := i * cols
		cells[i] = buf[start : start+cols : start+cols]
	}
	return cells
}
