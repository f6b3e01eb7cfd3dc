package grid

import "fmt"

// Point is a 2D integer coordinate. Line grows downwards, Column grows to
// the right. Points are plain values: compare with == and use as map keys.
type Point struct {
	Line, Column int
}

// Pt is shorthand for Point{Line: line, Column: column}.
func Pt(line, column int) Point {
	return Point{Line: line, Column: column}
}

// Translate returns p moved one step in d. No bounds are checked.
func (p Point) Translate(d Direction) Point {
	return Point{Line: p.Line + d.vertical, Column: p.Column + d.horizontal}
}

// Advance returns p moved n steps in d; negative n moves backwards.
func (p Point) Advance(d Direction, n int) Point {
	return Point{Line: p.Line + n*d.vertical, Column: p.Column + n*d.horizontal}
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{Line: p.Line + q.Line, Column: p.Column + q.Column}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{Line: p.Line - q.Line, Column: p.Column - q.Column}
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.Line-q.Line) + abs(p.Column-q.Column)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Line, p.Column)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
