package grid

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Region is a set of cells of a Cols()×Rows() grid. Cells are stored as
// row-major offsets in a roaring bitmap, so large sparse or run-shaped
// regions (flood-filled areas, trenches) stay compact.
// The zero Region is not usable; call NewRegion or RegionOf.
type Region struct {
	width, height int
	rb            *roaring.Bitmap
}

// NewRegion returns an empty region for a grid of the given size.
func NewRegion(width, height int) *Region {
	if width < 0 || height < 0 {
		panic(fmt.Errorf("grid.NewRegion(%d,%d): %w", width, height, ErrBadWidth))
	}
	return &Region{width: width, height: height, rb: roaring.New()}
}

// RegionOf returns an empty region shaped like g.
func RegionOf[T any](g *Grid[T]) *Region {
	return NewRegion(g.width, g.height)
}

func (r *Region) inBounds(p Point) bool {
	return p.Column >= 0 && p.Column < r.width && p.Line >= 0 && p.Line < r.height
}

func (r *Region) offset(p Point) uint32 {
	return uint32(p.Line*r.width + p.Column)
}

// Add inserts p and reports whether it was absent.
// Panics with ErrOutOfBounds if p lies outside the region's grid.
func (r *Region) Add(p Point) bool {
	if !r.inBounds(p) {
		panic(fmt.Errorf("Region.Add%v: %w", p, ErrOutOfBounds))
	}
	return r.rb.CheckedAdd(r.offset(p))
}

// Remove deletes p and reports whether it was present.
func (r *Region) Remove(p Point) bool {
	if !r.inBounds(p) {
		return false
	}
	return r.rb.CheckedRemove(r.offset(p))
}

// Contains reports whether p is in r. Points outside the grid never are.
func (r *Region) Contains(p Point) bool {
	return r.inBounds(p) && r.rb.Contains(r.offset(p))
}

// Len returns the number of cells in r.
func (r *Region) Len() int { return int(r.rb.GetCardinality()) }

// IsEmpty reports whether r holds no cell.
func (r *Region) IsEmpty() bool { return r.rb.IsEmpty() }

// Points yields the cells of r in row-major order.
func (r *Region) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		it := r.rb.Iterator()
		for it.HasNext() {
			idx := int(it.Next())
			if !yield(Point{Line: idx / r.width, Column: idx % r.width}) {
				return
			}
		}
	}
}

// Clone returns an independent copy of r.
func (r *Region) Clone() *Region {
	return &Region{width: r.width, height: r.height, rb: r.rb.Clone()}
}

func (r *Region) sameShape(method string, other *Region) {
	if r.width != other.width || r.height != other.height {
		panic(fmt.Errorf("Region.%s(%dx%d, %dx%d): %w",
			method, r.width, r.height, other.width, other.height, ErrShapeMismatch))
	}
}

// Union returns the cells in r or other. Both must share a grid shape.
func (r *Region) Union(other *Region) *Region {
	r.sameShape("Union", other)
	return &Region{width: r.width, height: r.height, rb: roaring.Or(r.rb, other.rb)}
}

// Intersect returns the cells in both r and other. Both must share a grid shape.
func (r *Region) Intersect(other *Region) *Region {
	r.sameShape("Intersect", other)
	return &Region{width: r.width, height: r.height, rb: roaring.And(r.rb, other.rb)}
}

// Complement returns every cell of the grid that is not in r.
func (r *Region) Complement() *Region {
	rb := r.rb.Clone()
	rb.Flip(0, uint64(r.width*r.height))
	return &Region{width: r.width, height: r.height, rb: rb}
}
