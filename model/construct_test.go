package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveCells_RowMajor(t *testing.T) {
	b := emptyBoard(t, 4, 5)
	require.NoError(t, b.SetAlive(0, 0))
	require.NoError(t, b.SetAlive(2, 3))
	require.NoError(t, b.SetAlive(1, 1))
	assert.Equal(t, []Coord{{0, 0}, {1, 1}, {2, 3}}, CollectLive(b))
}

func TestLiveCells_Construct(t *testing.T) {
	assert.Equal(t, []Coord{
		{0, 0},
		{1, 0}, {1, 1}, {1, 2},
		{2, 0}, {2, 1},
		{3, 0},
		{4, 0},
	}, CollectLive(construct1))
	assert.Equal(t, []Coord{{0, 2}, {1, 0}, {1, 1}, {1, 2}}, CollectLive(construct2))
}

func TestLiveCells_Restartable(t *testing.T) {
	seq := LiveCells(Glider)
	var first, second []Coord
	for p := range seq {
		first = append(first, p)
	}
	for p := range seq {
		second = append(second, p)
	}
	assert.Equal(t, first, second)
	assert.Len(t, first, 5)
}

func TestLiveCells_EarlyBreak(t *testing.T) {
	var got []Coord
	for p := range LiveCells(Block) {
		got = append(got, p)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []Coord{{0, 0}, {0, 1}}, got)
}

func TestLiveCells_Empty(t *testing.T) {
	assert.Empty(t, CollectLive(emptyBoard(t, 3, 3)))
}

func TestNewConstruct_CopiesInput(t *testing.T) {
	in := [][]bool{{true, false}, {false, true}}
	c, err := NewConstruct(in)
	require.NoError(t, err)
	in[0][0] = false
	assert.True(t, c.Alive(0, 0))
	assert.Equal(t, 2, c.Rows())
	assert.Equal(t, 2, c.Cols())
}

func TestNewConstruct_Malformed(t *testing.T) {
	tests := map[string][][]bool{
		"nil":       nil,
		"empty row": {{}},
		"ragged":    {{true, true}, {true}},
	}
	for name, cells := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewConstruct(cells)
			assert.True(t, errors.Is(err, ErrMalformedGrid), "got %v", err)
		})
	}
}

func TestParseConstruct(t *testing.T) {
	c, err := ParseConstruct("#.1", "0 O")
	require.NoError(t, err)
	assert.Equal(t, []Coord{{0, 0}, {0, 2}, {1, 2}}, CollectLive(c))

	_, err = ParseConstruct("O?")
	assert.True(t, errors.Is(err, ErrMalformedGrid))

	_, err = ParseConstruct("OO", "O")
	assert.True(t, errors.Is(err, ErrMalformedGrid))

	_, err = ParseConstruct()
	assert.True(t, errors.Is(err, ErrMalformedGrid))
}

func TestMustParseConstruct_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseConstruct("bad", "x") })
}

func TestLookupConstruct(t *testing.T) {
	for _, name := range ConstructNames() {
		c, err := LookupConstruct(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
		assert.Greater(t, c.Rows(), 0)
	}

	_, err := LookupConstruct("gosper")
	assert.True(t, errors.Is(err, ErrUnknownConstruct))
}

func TestConstructNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"beacon", "beehive", "blinker", "block", "glider", "lwss", "toad"}, ConstructNames())
}
