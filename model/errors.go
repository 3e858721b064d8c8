package model

import "github.com/pkg/errors"

var (
	// ErrInvalidIndex is returned when a cell index falls outside [0, dimension²)
	ErrInvalidIndex = errors.New("invalid cell index")
	// ErrInvalidDimension is returned when a grid is requested with dimension <= 0
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrUnknownPattern is returned for a pattern name not in Patterns
	ErrUnknownPattern = errors.New("unknown pattern")
)
