package model

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []Strategy{StrategySequential, StrategyParallel, StrategyBounded}

// assertNext checks every strategy maps initial to want
func assertNext(t *testing.T, initial, want *Board) {
	t.Helper()
	assert.True(t, want.Equal(initial.Advance()), "Advance:\n%s", initial.Advance())
	for _, s := range strategies {
		for _, pool := range []*BoardPool{nil, NewBoardPool()} {
			got := initial.NextGeneration(s, 3, pool)
			assert.True(t, want.Equal(got), "%s (pool %v):\n%s", s, pool != nil, got)
		}
	}
}

func TestAdvance_BlinkerBlockStraggler(t *testing.T) {
	assertNext(t,
		mustBoard(t,
			".........",
			"..O......",
			"..O......",
			"..O......",
			".........",
			"..O..OO..",
			".....OO..",
			".........",
			".........",
		),
		mustBoard(t,
			".........",
			".........",
			".OOO.....",
			".........",
			".........",
			".....OO..",
			".....OO..",
			".........",
			".........",
		))
}

func TestAdvance_GliderBeaconEdgeBlinker(t *testing.T) {
	assertNext(t,
		mustBoard(t,
			"......OOO",
			"..O......",
			"...O.....",
			".OOO.....",
			".........",
			".......OO",
			".......OO",
			".....OO..",
			".....OO..",
		),
		mustBoard(t,
			".......O.",
			".......O.",
			".O.O.....",
			"..OO.....",
			"..O......",
			".......OO",
			"........O",
			".....O...",
			".....OO..",
		))
}

func TestAdvance_DoesNotMutateInput(t *testing.T) {
	b := emptyBoard(t, 7, 7)
	require.NoError(t, b.Load(Glider, 1, 1))
	before := b.Clone()
	for _, s := range strategies {
		next := b.NextGeneration(s, 0, nil)
		assert.NotSame(t, b, next)
		assert.True(t, before.Equal(b), "%s mutated its input", s)
	}
}

func TestAdvance_BlinkerOscillates(t *testing.T) {
	b := emptyBoard(t, 5, 5)
	require.NoError(t, b.Load(Blinker, 2, 1))

	vertical := emptyBoard(t, 5, 5)
	for r := 1; r <= 3; r++ {
		require.NoError(t, vertical.SetAlive(r, 2))
	}

	next := b.Advance()
	assert.True(t, vertical.Equal(next), next.String())
	assert.True(t, b.Equal(next.Advance()))
}

func TestAdvance_StillLifes(t *testing.T) {
	for _, c := range []Construct{Block, Beehive} {
		t.Run(c.Name(), func(t *testing.T) {
			b := emptyBoard(t, c.Rows()+4, c.Cols()+4)
			require.NoError(t, b.Load(c, 2, 2))
			assertNext(t, b, b.Clone())
		})
	}
}

func TestAdvance_Period2Oscillators(t *testing.T) {
	for _, c := range []Construct{Blinker, Toad, Beacon} {
		t.Run(c.Name(), func(t *testing.T) {
			b := emptyBoard(t, c.Rows()+4, c.Cols()+4)
			require.NoError(t, b.Load(c, 2, 2))
			next := b.Advance()
			assert.False(t, b.Equal(next))
			assert.True(t, b.Equal(next.Advance()))
		})
	}
}

func TestAdvance_GliderTranslates(t *testing.T) {
	b := emptyBoard(t, 10, 10)
	require.NoError(t, b.Load(Glider, 1, 1))
	for range 4 {
		b = b.Advance()
	}
	want := emptyBoard(t, 10, 10)
	require.NoError(t, want.Load(Glider, 2, 2))
	assert.True(t, want.Equal(b), b.String())
}

func TestAdvance_CornerDoesNotWrap(t *testing.T) {
	b := emptyBoard(t, 5, 5)
	require.NoError(t, b.SetAlive(0, 0))
	// would be neighbours of (0,0) on a torus
	require.NoError(t, b.SetAlive(4, 4))
	require.NoError(t, b.SetAlive(0, 4))
	require.NoError(t, b.SetAlive(4, 0))

	assert.Zero(t, b.CountNeighbors(0, 0))
	assert.Zero(t, b.Advance().CountAlive())
}

func TestAdvance_EdgeBlockSurvives(t *testing.T) {
	b := emptyBoard(t, 4, 4)
	require.NoError(t, b.Load(Block, 0, 0))
	assertNext(t, b, b.Clone())
}

func TestCountNeighbors(t *testing.T) {
	b := mustBoard(t,
		"OOO",
		"OOO",
		"OOO",
	)
	assert.Equal(t, 8, b.CountNeighbors(1, 1))
	assert.Equal(t, 3, b.CountNeighbors(0, 0))
	assert.Equal(t, 5, b.CountNeighbors(0, 1))
	assert.Equal(t, 3, b.CountNeighbors(2, 2))
}

func TestAdvance_SingleCellBoard(t *testing.T) {
	b := mustBoard(t, "O")
	assertNext(t, b, mustBoard(t, "."))
}

func TestAdvance_StrategiesAgreeOnRandomBoards(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	pool := NewBoardPool()
	for i := range 20 {
		rows, cols := 1+rng.Intn(40), 1+rng.Intn(40)
		b := emptyBoard(t, rows, cols)
		b.Randomize(rng.Float64(), rng)
		want := b.Advance()
		for _, s := range strategies {
			for _, workers := range []int{0, 1, 7, 64} {
				got := b.NextGeneration(s, workers, pool)
				require.True(t, want.Equal(got), "case %d %s workers=%d", i, s, workers)
				pool.Put(got)
			}
		}
	}
}

func TestLiveBounds(t *testing.T) {
	_, _, _, _, ok := emptyBoard(t, 3, 3).LiveBounds()
	assert.False(t, ok)
	assert.Zero(t, emptyBoard(t, 3, 3).BoundingBoxSize())

	b := mustBoard(t,
		".....",
		"...O.",
		".O...",
		".....",
	)
	top, left, bottom, right, ok := b.LiveBounds()
	require.True(t, ok)
	assert.Equal(t, [4]int{1, 1, 2, 3}, [4]int{top, left, bottom, right})
	assert.Equal(t, 6, b.BoundingBoxSize())
}

func TestParseStrategy(t *testing.T) {
	for _, s := range strategies {
		got, err := ParseStrategy(" " + string(s) + " ")
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := ParseStrategy("Parallel")
	require.NoError(t, err)
	assert.Equal(t, StrategyParallel, got)

	_, err = ParseStrategy("toroidal")
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
}

func BenchmarkNextGeneration(b *testing.B) {
	board, _ := NewBoard(200, 200)
	board.Randomize(0.3, rand.New(rand.NewSource(1)))
	pool := NewBoardPool()
	for _, s := range strategies {
		b.Run(fmt.Sprint(s), func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				pool.Put(board.NextGeneration(s, 0, pool))
			}
		})
	}
}
