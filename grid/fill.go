package grid

// FloodFill collects every cell reachable from start through cells for
// which passable reports true, stepping in the order given by dirs
// (typically Orthogonal() or AllAround()). The start cell is included only
// if it is in bounds and passable.
//
// Time:   O(W·H·d), where d = len(dirs).
// Memory: O(W·H) worst case for the queue; the visited set is a Region.
func FloodFill[T any](g *Grid[T], start Point, dirs []Direction, passable func(Point, T) bool) *Region {
	seen := RegionOf(g)
	if !g.InBounds(start) || !passable(start, g.At(start)) {
		return seen
	}
	fill(g, start, dirs, passable, seen)
	return seen
}

// Components partitions the passable cells of g into connected regions.
// Regions are returned in row-major order of their first cell.
//
// Time:   O(W·H·d).
// Memory: O(W·H) for the visited set and output.
func Components[T any](g *Grid[T], dirs []Direction, passable func(Point, T) bool) []*Region {
	seen := RegionOf(g)
	var comps []*Region
	for i, v := range g.cells {
		p := g.PointAt(i)
		if seen.Contains(p) || !passable(p, v) {
			continue
		}
		comp := RegionOf(g)
		fill(g, p, dirs, passable, comp)
		seen.rb.Or(comp.rb)
		comps = append(comps, comp)
	}
	return comps
}

// fill runs a BFS from a passable, in-bounds start and adds every reached
// cell to out.
func fill[T any](g *Grid[T], start Point, dirs []Direction, passable func(Point, T) bool, out *Region) {
	queue := []Point{start}
	out.Add(start)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range dirs {
			v := u.Translate(d)
			if !g.InBounds(v) || out.Contains(v) || !passable(v, g.At(v)) {
				continue
			}
			out.Add(v)
			queue = append(queue, v)
		}
	}
}
