package gocube

import "errors"

// Sentinel errors for the gocube package.
var (
	// Construction errors
	ErrInvalidDimension  = errors.New("gocube: dimension must be >= 2")
	ErrInvalidConvention = errors.New("gocube: invalid axis convention")
	ErrInvalidPalette    = errors.New("gocube: invalid color palette")
	ErrInvalidCubieSize  = errors.New("gocube: cubie size must be positive")

	// Face errors
	ErrInvalidFace = errors.New("gocube: invalid face identifier")

	// State errors
	ErrStateLength      = errors.New("gocube: facelet string too short")
	ErrInvalidState     = errors.New("gocube: invalid facelet character")
	ErrAmbiguousPalette = errors.New("gocube: palette has repeated colors")

	// Solving errors
	ErrUnsupportedDimension = errors.New("gocube: solving is only supported for 3x3 cubes")
)
