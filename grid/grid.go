package grid

import (
	"fmt"
	"iter"
)

// Grid is a dense Rows()×Cols() array of T stored row-major in one slice.
// len(cells) == width*height holds after every operation.
//
// A Grid may be read from many goroutines at once; concurrent writes must
// be serialized by the caller.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// New returns a width×height grid with every cell set to fill.
// Panics with ErrBadWidth if either dimension is negative, or if width is
// zero while height is not.
func New[T any](width, height int, fill T) *Grid[T] {
	if width < 0 || height < 0 || (width == 0 && height != 0) {
		panic(fmt.Errorf("grid.New(%d,%d): %w", width, height, ErrBadWidth))
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[T]{width: width, height: height, cells: cells}
}

// FromSlice wraps items as a grid of the given width; the grid takes
// ownership of items. Panics with ErrBadWidth if width <= 0 and with
// ErrShapeMismatch if len(items) is not a multiple of width.
func FromSlice[T any](items []T, width int) *Grid[T] {
	if width <= 0 {
		panic(fmt.Errorf("grid.FromSlice(width=%d): %w", width, ErrBadWidth))
	}
	if len(items)%width != 0 {
		panic(fmt.Errorf("grid.FromSlice(len=%d, width=%d): %w", len(items), width, ErrShapeMismatch))
	}
	return &Grid[T]{width: width, height: len(items) / width, cells: items}
}

// Cols returns the grid width.
func (g *Grid[T]) Cols() int { return g.width }

// Rows returns the grid height.
func (g *Grid[T]) Rows() int { return g.height }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether p addresses a cell of g.
func (g *Grid[T]) InBounds(p Point) bool {
	return p.Column >= 0 && p.Column < g.width && p.Line >= 0 && p.Line < g.height
}

// Index maps p to its row-major offset: Line*Cols() + Column. Unchecked.
func (g *Grid[T]) Index(p Point) int {
	return p.Line*g.width + p.Column
}

// PointAt converts a row-major offset back to a point.
func (g *Grid[T]) PointAt(idx int) Point {
	return Point{Line: idx / g.width, Column: idx % g.width}
}

// At returns the cell at p. Unchecked: a point outside the grid either
// panics or aliases another cell.
func (g *Grid[T]) At(p Point) T {
	return g.cells[p.Line*g.width+p.Column]
}

// Set stores v at p. Unchecked, like At.
func (g *Grid[T]) Set(p Point, v T) {
	g.cells[p.Line*g.width+p.Column] = v
}

// Ref returns a pointer to the cell at p for in-place updates. Unchecked.
func (g *Grid[T]) Ref(p Point) *T {
	return &g.cells[p.Line*g.width+p.Column]
}

// Get returns the cell at p and true, or the zero value and false when p
// is outside the grid.
func (g *Grid[T]) Get(p Point) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.At(p), true
}

// Clone returns a copy of g with its own backing slice.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}

// Grow enlarges g in place so that p is in bounds. Existing cells keep
// their coordinates; new cells are set to fill. Panics with ErrOutOfBounds
// if p has a negative component.
func (g *Grid[T]) Grow(p Point, fill T) {
	if p.Line < 0 || p.Column < 0 {
		panic(fmt.Errorf("Grid.Grow%v: %w", p, ErrOutOfBounds))
	}
	w, h := max(g.width, p.Column+1), max(g.height, p.Line+1)
	if w == g.width && h == g.height {
		return
	}
	cells := make([]T, w*h)
	for i := range cells {
		cells[i] = fill
	}
	for line := 0; line < g.height; line++ {
		copy(cells[line*w:line*w+g.width], g.cells[line*g.width:(line+1)*g.width])
	}
	g.width, g.height, g.cells = w, h, cells
}

// Points yields every coordinate of g in row-major order.
func (g *Grid[T]) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for line := 0; line < g.height; line++ {
			for column := 0; column < g.width; column++ {
				if !yield(Point{Line: line, Column: column}) {
					return
				}
			}
		}
	}
}

// All yields (point, cell) pairs in row-major order.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.cells {
			if !yield(g.PointAt(i), v) {
				return
			}
		}
	}
}

// Neighbors yields p translated by each of dirs, in order, skipping points
// outside the grid.
func (g *Grid[T]) Neighbors(p Point, dirs []Direction) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, d := range dirs {
			q := p.Translate(d)
			if !g.InBounds(q) {
				continue
			}
			if !yield(q) {
				return
			}
		}
	}
}

// Find returns the first point, in row-major order, whose cell satisfies pred.
func (g *Grid[T]) Find(pred func(T) bool) (Point, bool) {
	for i, v := range g.cells {
		if pred(v) {
			return g.PointAt(i), true
		}
	}
	return Point{}, false
}

// Count returns the number of cells satisfying pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}
	return n
}
