// SPDX-License-Identifier: MIT
// Package bitvec: sentinel error set.
// Panicking methods panic with an error that wraps one of these sentinels,
// so a recover site can still match it with errors.Is.

package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity indicates a vector longer than MaxLen bits was requested.
	ErrCapacity = errors.New("bitvec: capacity exceeds 64 bits")

	// ErrOutOfRange indicates a bit index or slice range outside [0, Len()).
	ErrOutOfRange = errors.New("bitvec: index out of range")

	// ErrSizeMismatch indicates a binary operation between vectors of different length.
	ErrSizeMismatch = errors.New("bitvec: size mismatch")

	// ErrInvalidChar indicates a rune that is neither the true nor the false rune.
	ErrInvalidChar = errors.New("bitvec: invalid character")

	// ErrSameAlphabet indicates that the true and false runes are identical.
	ErrSameAlphabet = errors.New("bitvec: true and false runes must differ")
)

// fail panics with err wrapped in method context.
func fail(method string, err error, format string, args ...any) {
	panic(fmt.Errorf("BitVec64.%s(%s): %w", method, fmt.Sprintf(format, args...), err))
}
