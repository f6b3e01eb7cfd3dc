// Package gridbits collects two small, allocation-light building blocks for
// puzzle-style computations over short text inputs.
//
// Under the hood, everything is organized under two leaf subpackages:
//
//	bitvec/ — BitVec64: up to 64 booleans packed MSB-first into one word,
//	          with set algebra, popcounts, range extraction and (de)serialization
//	grid/   — Point, Direction (4 orthogonal + 4 diagonal unit steps),
//	          dense row-major Grid[T], roaring-backed Region, flood fill
//
// The packages do not depend on each other. Misuse (out-of-range index,
// size mismatch, malformed trusted input) panics with an error wrapping a
// package sentinel; Parse-style functions return the same errors instead.
//
// Quick ASCII example:
//
//	    .#.      grid.FromText(s, fn)      -> 3×3 Grid[T]
//	    ###      grid.Pt(1, 1).Translate(grid.Up) -> (0,1)
//	    .#.      bitvec.FromString(".#.", '#', '.').Slice(1, 2) -> 1
//
// Runnable callers live under examples/.
//
//	go get github.com/katalvlaran/gridbits
package gridbits
