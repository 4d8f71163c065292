package cubekit

import "errors"

// Sentinel errors for the cubekit package.
var (
	// Construction errors
	ErrVectorSize   = errors.New("cubekit: vector requires exactly 3 components")
	ErrMatrixSize   = errors.New("cubekit: matrix requires exactly 9 components")
	ErrColorCount   = errors.New("cubekit: piece requires exactly 3 color slots")
	ErrUnknownColor = errors.New("cubekit: unknown color")
	ErrColorShape   = errors.New("cubekit: blank color slots must match zero coordinates")

	// Parsing errors
	ErrInvalidNotation = errors.New("cubekit: invalid move notation")

	// Geometric precondition errors
	ErrInvalidAxis = errors.New("cubekit: axis must have exactly two zero components")
)
