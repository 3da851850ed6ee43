package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

const (
	liveSymbol = 'O'
	deadSymbol = '.'
)

// Board represents the game board: a fixed rows x cols grid of live or dead cells.
// A Board is not safe for concurrent mutation.
type Board struct {
	rows  int
	cols  int
	cells [][]bool
}

// NewBoard creates a rows x cols board with every cell dead
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewBoard] %dx%d", rows, cols)
	}
	return newBoard(rows, cols), nil
}

func newBoard(rows, cols int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: allocCells(rows, cols),
	}
}

// Rows returns the number of rows
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns
func (b *Board) Cols() int {
	return b.cols
}

// Alive reports the state of an in-range cell without bounds checking
func (b *Board) Alive(row, col int) bool {
	return b.cells[row][col]
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) checkBounds(op string, row, col int) error {
	if !b.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "[Board.%s] (%d, %d) on %dx%d board", op, row, col, b.rows, b.cols)
	}
	return nil
}

// Get returns the state of a cell
func (b *Board) Get(row, col int) (bool, error) {
	if err := b.checkBounds("Get", row, col); err != nil {
		return false, err
	}
	return b.cells[row][col], nil
}

// SetAlive marks a cell alive
func (b *Board) SetAlive(row, col int) error {
	if err := b.checkBounds("SetAlive", row, col); err != nil {
		return err
	}
	b.cells[row][col] = true
	return nil
}

// SetDead marks a cell dead
func (b *Board) SetDead(row, col int) error {
	if err := b.checkBounds("SetDead", row, col); err != nil {
		return err
	}
	b.cells[row][col] = false
	return nil
}

// Toggle flips a cell, alive becomes dead and dead becomes alive
func (b *Board) Toggle(row, col int) error {
	if err := b.checkBounds("Toggle", row, col); err != nil {
		return err
	}
	b.cells[row][col] = !b.cells[row][col]
	return nil
}

// Load stamps every live cell of g onto the board with its top-left corner at (topRow, leftCol).
// Dead cells of g leave the board untouched. If g would not fit entirely the board is left unmodified.
func (b *Board) Load(g Grid, topRow, leftCol int) error {
	// topRow+g.Rows() would overflow for offsets near math.MaxInt
	if topRow < 0 || leftCol < 0 || topRow > b.rows-g.Rows() || leftCol > b.cols-g.Cols() {
		return errors.Wrapf(ErrOutOfBounds, "[Board.Load] %dx%d construct at (%d, %d) on %dx%d board",
			g.Rows(), g.Cols(), topRow, leftCol, b.rows, b.cols)
	}
	for p := range LiveCells(g) {
		b.cells[topRow+p.Row][leftCol+p.Col] = true
	}
	return nil
}

// Clear kills all cells
func (b *Board) Clear() {
	for r := range b.cells {
		clear(b.cells[r])
	}
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	c := newBoard(b.rows, b.cols)
	for r := range b.cells {
		copy(c.cells[r], b.cells[r])
	}
	return c
}

// Equal reports whether both boards have the same dimensions and cell states
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// CountAlive returns the total number of living cells
func (b *Board) CountAlive() (count int) {
	for r := range b.cells {
		for _, alive := range b.cells[r] {
			if alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 digest of the cell layout
func (b *Board) Hash() string {
	h := md5.New()
	row := make([]byte, b.cols)
	for r := range b.cells {
		for c, alive := range b.cells[r] {
			if alive {
				row[c] = 1
			} else {
				row[c] = 0
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the board one row per line, 'O' for live cells and '.' for dead ones
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.cols + 1))
	for r := range b.cells {
		for _, alive := range b.cells[r] {
			if alive {
				sb.WriteByte(liveSymbol)
			} else {
				sb.WriteByte(deadSymbol)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Randomize overwrites every cell, each alive with probability density
func (b *Board) Randomize(density float64, rng *rand.Rand) {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = rng.Float64() < density
		}
	}
}

// InjectRandomLife sets count random cells alive
func (b *Board) InjectRandomLife(count int, rng *rand.Rand) {
	for range count {
		b.cells[rng.Intn(b.rows)][rng.Intn(b.cols)] = true
	}
}
