// Package grid is a toolkit for dense 2D grids addressed by integer points.
//
// What:
//
//   - Point is a (Line, Column) coordinate. Points may be negative or lie
//     outside any grid; bounds are checked only by Grid.InBounds.
//   - Direction is one of the unit steps: four orthogonal, four diagonal,
//     plus None. Rotation, reversal and composition keep both components
//     in {-1, 0, 1}.
//   - Grid[T] stores Rows()×Cols() cells row-major in one flat slice.
//   - Region is a set of cells of one grid backed by a roaring bitmap; flood
//     fill and connected components produce Regions.
//
// Ordering:
//
//   - Orthogonal() yields Up, Down, Left, Right.
//   - AllAround() yields Up, UpRight, Right, RightDown, Down, DownLeft,
//     Left, LeftUp: clockwise from Up.
//   - Grid and Region iteration is row-major.
//
// Complexity:
//
//   - InBounds, At, Set, Translate, rotations: O(1).
//   - Parse, Render, String: O(W×H).
//   - FloodFill, Components: O(W×H×d), d = len(dirs).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed text passed to Parse.
//   - ErrBadWidth, ErrShapeMismatch: flat slice cannot form a rectangle.
//   - ErrDirectionRange: direction component outside [-1, 1].
//   - ErrUnknownDirection: rune is not one of ^ v < > U D L R.
//   - ErrOutOfBounds: checked operation received a point outside the grid.
//
// Indexed access (At, Set, Ref) is unchecked: call InBounds first when a
// point may be outside the grid.
package grid
