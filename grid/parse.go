package grid

import (
	"fmt"
	"strings"
)

// Parse builds a grid from newline-separated rows, mapping each rune with fn.
// Carriage returns are ignored and a trailing newline is allowed. The first
// row's rune count defines the width.
// Returns ErrEmptyGrid for empty input and ErrNonRectangular when a row's
// length differs from the first.
func Parse[T any](text string, fn func(rune) T) (*Grid[T], error) {
	g, _, _, err := ParseCapture(text, fn, nil)
	return g, err
}

// FromText is Parse for trusted input; it panics on malformed text.
func FromText[T any](text string, fn func(rune) T) *Grid[T] {
	g, err := Parse(text, fn)
	if err != nil {
		panic(err)
	}
	return g
}

// ParseCapture is Parse that also reports the first cell, in row-major
// order, whose rune satisfies isMark (a start marker, say). isMark may be nil.
func ParseCapture[T any](text string, fn func(rune) T, isMark func(rune) bool) (*Grid[T], Point, bool, error) {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, Point{}, false, ErrEmptyGrid
	}

	var (
		cells  []T
		mark   Point
		found  bool
		width  = -1
		height int
	)
	for line, row := range strings.Split(text, "\n") {
		n := 0
		for _, r := range row {
			if !found && isMark != nil && isMark(r) {
				mark, found = Point{Line: line, Column: n}, true
			}
			cells = append(cells, fn(r))
			n++
		}
		switch {
		case width < 0:
			if n == 0 {
				return nil, Point{}, false, ErrEmptyGrid
			}
			width = n
		case n != width:
			return nil, Point{}, false, fmt.Errorf("grid.Parse: row %d has %d cells, want %d: %w", line, n, width, ErrNonRectangular)
		}
		height++
	}
	return &Grid[T]{width: width, height: height, cells: cells}, mark, found, nil
}

// Runes parses text into a grid of its runes.
func Runes(text string) (*Grid[rune], error) {
	return Parse(text, func(r rune) rune { return r })
}
