package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid is requested with a non-positive size.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrOutOfRange is returned when a row/column pair falls outside the grid.
	ErrOutOfRange = errors.New("cell coordinates out of range")
	// ErrInvalidState is returned for a State value other than Dead or Alive.
	ErrInvalidState = errors.New("invalid cell state")
)
