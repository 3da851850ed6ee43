package model

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Strategy selects how the next generation is computed. All strategies produce identical boards.
type Strategy string

const (
	StrategySequential Strategy = "sequential"
	StrategyParallel   Strategy = "parallel"
	StrategyBounded    Strategy = "bounded"
)

// ParseStrategy maps a name to a Strategy, case-insensitively
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(strings.ToLower(strings.TrimSpace(name))); s {
	case StrategySequential, StrategyParallel, StrategyBounded:
		return s, nil
	}
	return "", errors.Wrapf(ErrUnknownStrategy, "[ParseStrategy] %q", name)
}

// CountNeighbors counts live cells in the Moore neighborhood of (row, col).
// Cells beyond the edge do not exist and never count.
func (b *Board) CountNeighbors(row, col int) int {
	count := 0
	for _, o := range rules.MooreNeighborhood {
		nr, nc := row+o.Row, col+o.Col
		if b.inBounds(nr, nc) && b.cells[nr][nc] {
			count++
		}
	}
	return count
}

// nextFrom fills next for rows [startRow, endRow) and cols [startCol, endCol) from b.
// next must start out all dead and have b's dimensions.
func (b *Board) nextFrom(next *Board, startRow, endRow, startCol, endCol int) {
	for r := startRow; r < endRow; r++ {
		for c := startCol; c < endCol; c++ {
			if rules.ApplyConwayRules(b.CountNeighbors(r, c), b.cells[r][c]) {
				next.cells[r][c] = true
			}
		}
	}
}

// Advance returns the next generation as a new board. b is not modified.
func (b *Board) Advance() *Board {
	next := newBoard(b.rows, b.cols)
	b.nextFrom(next, 0, b.rows, 0, b.cols)
	return next
}

// AdvanceParallel calculates the next generation with rows split across workers.
// workers <= 0 uses one worker per CPU.
func (b *Board) AdvanceParallel(workers int, pool *BoardPool) *Board {
	next := pool.Get(b.rows, b.cols)

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	var (
		eg            errgroup.Group
		rowsPerWorker = (b.rows + workers - 1) / workers
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, b.rows)
		)
		if startRow >= b.rows {
			break
		}

		eg.Go(func() error {
			b.nextFrom(next, startRow, endRow, 0, b.cols)
			return nil
		})
	}
	// workers never fail
	_ = eg.Wait()

	return next
}

// LiveBounds returns the smallest rectangle holding every live cell. ok is false for an empty board.
func (b *Board) LiveBounds() (top, left, bottom, right int, ok bool) {
	for r := range b.cells {
		for c, alive := range b.cells[r] {
			if !alive {
				continue
			}
			if !ok {
				top, bottom, left, right, ok = r, r, c, c, true
				continue
			}
			bottom = r
			left = min(left, c)
			right = max(right, c)
		}
	}
	return
}

// BoundingBoxSize returns the area of the live bounding box
func (b *Board) BoundingBoxSize() int {
	top, left, bottom, right, ok := b.LiveBounds()
	if !ok {
		return 0
	}
	return (bottom - top + 1) * (right - left + 1)
}

// AdvanceBounded calculates the next generation only within the live bounding box plus a one cell margin.
// Nothing outside that margin can be born, so the result equals Advance.
func (b *Board) AdvanceBounded(pool *BoardPool) *Board {
	next := pool.Get(b.rows, b.cols)

	top, left, bottom, right, ok := b.LiveBounds()
	if !ok {
		return next
	}
	b.nextFrom(next,
		max(0, top-1), min(b.rows, bottom+2),
		max(0, left-1), min(b.cols, right+2))
	return next
}

// NextGeneration calculates the next generation with the given strategy
func (b *Board) NextGeneration(strategy Strategy, workers int, pool *BoardPool) *Board {
	switch strategy {
	case StrategyParallel:
		return b.AdvanceParallel(workers, pool)
	case StrategyBounded:
		return b.AdvanceBounded(pool)
	default:
		next := pool.Get(b.rows, b.cols)
		b.nextFrom(next, 0, b.rows, 0, b.cols)
		return next
	}
}
