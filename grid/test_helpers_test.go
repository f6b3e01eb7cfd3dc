// SPDX-License-Identifier: MIT
// Package grid_test contains shared fixtures and helpers.

package grid_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/katalvlaran/gridbits/grid"
	"github.com/stretchr/testify/require"
)

// digits is the 3×3 fixture used across grid tests.
const digits = "123\n456\n789"

// identity maps a rune onto itself.
func identity(r rune) rune { return r }

// requirePanicsIs asserts that fn panics with an error matching target.
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	fn()
}

// regionPoints collects a region in row-major order.
func regionPoints(r *grid.Region) []grid.Point {
	return slices.Collect(r.Points())
}
