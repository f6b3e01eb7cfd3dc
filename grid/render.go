package grid

import (
	"fmt"
	"strings"
)

// Render maps every cell to a string, producing a grid of the same shape.
// g is not modified. Useful with String for debugging output:
//
//	fmt.Print(g.Render(func(p Point, c byte) string { return string(c) }))
func (g *Grid[T]) Render(f func(Point, T) string) *Grid[string] {
	out := make([]string, len(g.cells))
	for i, v := range g.cells {
		out[i] = f(g.PointAt(i), v)
	}
	return &Grid[string]{width: g.width, height: g.height, cells: out}
}

// String writes each row's cells back to back followed by a newline, top
// row first. Strings, runes and bytes are written as text; anything else
// goes through fmt.Fprint.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for line := 0; line < g.height; line++ {
		for _, v := range g.cells[line*g.width : (line+1)*g.width] {
			switch c := any(v).(type) {
			case string:
				sb.WriteString(c)
			case rune:
				sb.WriteRune(c)
			case byte:
				sb.WriteByte(c)
			default:
				fmt.Fprint(&sb, c)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
