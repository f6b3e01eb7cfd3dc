// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Panicking constructors and methods panic with an error wrapping one of
// these; Parse and ParseDirection return them.

package grid

import "errors"

var (
	// ErrEmptyGrid indicates input text has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates text rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrBadWidth indicates a non-positive width for a flat slice.
	ErrBadWidth = errors.New("grid: width must be > 0")

	// ErrShapeMismatch indicates a flat slice whose length is not a multiple of width.
	ErrShapeMismatch = errors.New("grid: length is not a multiple of width")

	// ErrDirectionRange indicates a direction component outside [-1, 1].
	ErrDirectionRange = errors.New("grid: direction component out of range")

	// ErrUnknownDirection indicates a rune that names no direction.
	ErrUnknownDirection = errors.New("grid: unknown direction")

	// ErrOutOfBounds indicates a point outside the grid for a checked operation.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
)
