package model

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned when a coordinate, or a construct placed at an offset,
	// falls outside the board
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrInvalidDimension is returned when a board is requested with a non-positive size
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrMalformedGrid is returned when construct input is empty, ragged or holds an unknown cell symbol
	ErrMalformedGrid = errors.New("malformed grid")
	// ErrUnknownConstruct is returned by LookupConstruct for names missing from the catalogue
	ErrUnknownConstruct = errors.New("unknown construct")
	// ErrUnknownStrategy is returned by ParseStrategy
	ErrUnknownStrategy = errors.New("unknown strategy")
)
