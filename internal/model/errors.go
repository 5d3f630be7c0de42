package model

import "errors"

var (
	// ErrInvalidSquare is returned when algebraic notation cannot be parsed.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidDimensions is returned by NewBoard for unsupported sizes.
	ErrInvalidDimensions = errors.New("invalid board dimensions")
)
