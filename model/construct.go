package model

import (
	"sort"

	"github.com/pkg/errors"
)

// Construct is an immutable rectangular pattern loaded onto a board as a stamp
type Construct struct {
	name  string
	cells [][]bool
}

// NewConstruct copies cells into a construct. Rows must be non-empty and of equal length.
func NewConstruct(cells [][]bool) (Construct, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return Construct{}, errors.Wrap(ErrMalformedGrid, "[NewConstruct] empty pattern")
	}
	cols := len(cells[0])
	out := allocCells(len(cells), cols)
	for r, row := range cells {
		if len(row) != cols {
			return Construct{}, errors.Wrapf(ErrMalformedGrid, "[NewConstruct] row %d has %d cells, want %d", r, len(row), cols)
		}
		copy(out[r], row)
	}
	return Construct{cells: out}, nil
}

// ParseConstruct builds a construct from plaintext rows.
// 'O', '#' and '1' are live cells, '.', '0' and ' ' are dead.
func ParseConstruct(rows ...string) (Construct, error) {
	cells := make([][]bool, len(rows))
	for r, line := range rows {
		cells[r] = make([]bool, 0, len(line))
		for c, ch := range line {
			switch ch {
			case 'O', '#', '1':
				cells[r] = append(cells[r], true)
			case '.', '0', ' ':
				cells[r] = append(cells[r], false)
			default:
				return Construct{}, errors.Wrapf(ErrMalformedGrid, "[ParseConstruct] unexpected %q at (%d, %d)", ch, r, c)
			}
		}
	}
	return NewConstruct(cells)
}

// MustParseConstruct is like ParseConstruct but panics on malformed input
func MustParseConstruct(name string, rows ...string) Construct {
	c, err := ParseConstruct(rows...)
	if err != nil {
		panic(errors.Wrapf(err, "construct %q", name))
	}
	c.name = name
	return c
}

// Name returns the catalogue name, empty for ad hoc constructs
func (c Construct) Name() string {
	return c.name
}

// Rows returns the pattern height
func (c Construct) Rows() int {
	return len(c.cells)
}

// Cols returns the pattern width
func (c Construct) Cols() int {
	if len(c.cells) == 0 {
		return 0
	}
	return len(c.cells[0])
}

// Alive reports the state of an in-range cell
func (c Construct) Alive(row, col int) bool {
	return c.cells[row][col]
}

var catalogue = map[string]Construct{}

func register(c Construct) Construct {
	catalogue[c.name] = c
	return c
}

// Canonical constructs
var (
	Block   = register(MustParseConstruct("block", "OO", "OO"))
	Beehive = register(MustParseConstruct("beehive", ".OO.", "O..O", ".OO."))
	Blinker = register(MustParseConstruct("blinker", "OOO"))
	Toad    = register(MustParseConstruct("toad", ".OOO", "OOO."))
	Beacon  = register(MustParseConstruct("beacon", "OO..", "OO..", "..OO", "..OO"))
	Glider  = register(MustParseConstruct("glider", ".O.", "..O", "OOO"))
	LWSS    = register(MustParseConstruct("lwss", ".O..O", "O....", "O...O", "OOOO."))
)

// LookupConstruct returns the catalogue construct registered under name
func LookupConstruct(name string) (Construct, error) {
	c, ok := catalogue[name]
	if !ok {
		return Construct{}, errors.Wrapf(ErrUnknownConstruct, "[LookupConstruct] %q", name)
	}
	return c, nil
}

// ConstructNames lists the catalogue in sorted order
func ConstructNames() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
