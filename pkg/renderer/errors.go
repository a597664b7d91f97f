package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: frame width and height must be positive")
	ErrNoScene           = errors.New("renderer: no scene defined")
)
