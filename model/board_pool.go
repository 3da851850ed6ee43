package model

import "sync"

type boardShape struct{ rows, cols int }

// BoardPool recycles boards between generations, keeping one free list per
// board shape so a recycled board never has to be reallocated.
// A nil *BoardPool is valid and always allocates.
type BoardPool struct {
	mu     sync.Mutex
	shapes map[boardShape]*sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{shapes: make(map[boardShape]*sync.Pool)}
}

func (p *BoardPool) freeList(rows, cols int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()

	shape := boardShape{rows: rows, cols: cols}
	free, ok := p.shapes[shape]
	if !ok {
		free = &sync.Pool{New: func() any { return newBoard(rows, cols) }}
		p.shapes[shape] = free
	}
	return free
}

// Get returns an all-dead board of the requested dimensions
func (p *BoardPool) Get(rows, cols int) *Board {
	if p == nil {
		return newBoard(rows, cols)
	}
	return p.freeList(rows, cols).Get().(*Board)
}

// Put clears b and hands it back. The caller must not use it afterwards.
func (p *BoardPool) Put(b *Board) {
	if p == nil || b == nil {
		return
	}
	b.Clear()
	p.freeList(b.rows, b.cols).Put(b)
}
