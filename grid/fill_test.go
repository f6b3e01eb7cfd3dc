package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridbits/grid"
	"github.com/stretchr/testify/require"
)

func open(_ grid.Point, r rune) bool { return r != '#' }

// TestFloodFillOrthogonal fills the inside of a closed loop.
func TestFloodFillOrthogonal(t *testing.T) {
	g := grid.FromText(""+
		"#####\n"+
		"#..##\n"+
		"#.#.#\n"+
		"#####", identity)
	orth := grid.Orthogonal()
	r := grid.FloodFill(g, grid.Pt(1, 1), orth[:], open)
	require.Equal(t, []grid.Point{grid.Pt(1, 1), grid.Pt(1, 2), grid.Pt(2, 1)}, regionPoints(r))
	require.False(t, r.Contains(grid.Pt(2, 3)), "(2,3) is only diagonally connected")

	all := grid.AllAround()
	r8 := grid.FloodFill(g, grid.Pt(1, 1), all[:], open)
	require.Equal(t, 4, r8.Len())
	require.True(t, r8.Contains(grid.Pt(2, 3)))
}

// TestFloodFillBlockedStart returns an empty region for a wall or outside start.
func TestFloodFillBlockedStart(t *testing.T) {
	g := grid.FromText("#.\n..", identity)
	orth := grid.Orthogonal()
	require.True(t, grid.FloodFill(g, grid.Pt(0, 0), orth[:], open).IsEmpty())
	require.True(t, grid.FloodFill(g, grid.Pt(5, 5), orth[:], open).IsEmpty())
	require.Equal(t, 3, grid.FloodFill(g, grid.Pt(1, 1), orth[:], open).Len())
}

// TestFloodFillUsesPoint lets passable depend on coordinates.
func TestFloodFillUsesPoint(t *testing.T) {
	g := grid.New(4, 4, '.')
	orth := grid.Orthogonal()
	r := grid.FloodFill(g, grid.Pt(0, 0), orth[:], func(p grid.Point, _ rune) bool {
		return p.Line+p.Column < 3
	})
	require.Equal(t, 6, r.Len())
}

// TestComponents mirrors the island fixture: three islands under 4-connectivity.
func TestComponents(t *testing.T) {
	g := grid.FromText(""+
		"01102\n"+
		"11022\n"+
		"00220\n"+
		"30000", identity)
	land := func(_ grid.Point, r rune) bool { return r != '0' }
	orth := grid.Orthogonal()

	comps := grid.Components(g, orth[:], land)
	require.Len(t, comps, 3)
	require.Equal(t,
		[]grid.Point{grid.Pt(0, 1), grid.Pt(0, 2), grid.Pt(1, 0), grid.Pt(1, 1)},
		regionPoints(comps[0]))
	require.Equal(t,
		[]grid.Point{grid.Pt(0, 4), grid.Pt(1, 3), grid.Pt(1, 4), grid.Pt(2, 2), grid.Pt(2, 3)},
		regionPoints(comps[1]))
	require.Equal(t, []grid.Point{grid.Pt(3, 0)}, regionPoints(comps[2]))

	all := grid.AllAround()
	require.Len(t, grid.Components(g, all[:], land), 2)
}

// TestComponentsEmpty returns nil when nothing is passable.
func TestComponentsEmpty(t *testing.T) {
	g := grid.New(3, 3, '#')
	orth := grid.Orthogonal()
	require.Empty(t, grid.Components(g, orth[:], open))
}
