package grid

import "fmt"

// Direction is a unit step on the grid. Both components are always in
// {-1, 0, 1}; vertical -1 is up, horizontal -1 is left.
type Direction struct {
	vertical, horizontal int
}

// Canonical directions. Diagonals are compositions of two orthogonals.
var (
	None  = Direction{}
	Up    = Direction{vertical: -1}
	Down  = Direction{vertical: 1}
	Left  = Direction{horizontal: -1}
	Right = Direction{horizontal: 1}

	UpRight   = Up.Compose(Right)
	RightDown = Right.Compose(Down)
	DownLeft  = Down.Compose(Left)
	LeftUp    = Left.Compose(Up)
)

// Orthogonal returns the four orthogonal directions: Up, Down, Left, Right.
func Orthogonal() [4]Direction {
	return [4]Direction{Up, Down, Left, Right}
}

// AllAround returns the eight neighbours clockwise from Up:
// Up, UpRight, Right, RightDown, Down, DownLeft, Left, LeftUp.
func AllAround() [8]Direction {
	return [8]Direction{Up, UpRight, Right, RightDown, Down, DownLeft, Left, LeftUp}
}

// NewDirection builds a direction from its components.
// Panics with ErrDirectionRange if either magnitude exceeds 1.
func NewDirection(vertical, horizontal int) Direction {
	checkComponents("NewDirection", vertical, horizontal)
	return Direction{vertical: vertical, horizontal: horizontal}
}

func checkComponents(method string, vertical, horizontal int) {
	if vertical < -1 || vertical > 1 || horizontal < -1 || horizontal > 1 {
		panic(fmt.Errorf("Direction.%s(%d,%d): %w", method, vertical, horizontal, ErrDirectionRange))
	}
}

// Vertical returns the line delta of d.
func (d Direction) Vertical() int { return d.vertical }

// Horizontal returns the column delta of d.
func (d Direction) Horizontal() int { return d.horizontal }

// RotateClockwise returns d turned 90° clockwise: (v,h) -> (h,-v).
func (d Direction) RotateClockwise() Direction {
	return Direction{vertical: d.horizontal, horizontal: -d.vertical}
}

// RotateCounterclockwise returns d turned 90° counterclockwise: (v,h) -> (-h,v).
func (d Direction) RotateCounterclockwise() Direction {
	return Direction{vertical: -d.horizontal, horizontal: d.vertical}
}

// Reverse returns d turned 180°.
func (d Direction) Reverse() Direction {
	return Direction{vertical: -d.vertical, horizontal: -d.horizontal}
}

// TurnClockwise rotates d in place; same result as RotateClockwise.
func (d *Direction) TurnClockwise() {
	d.vertical, d.horizontal = d.horizontal, -d.vertical
}

// TurnCounterclockwise rotates d in place; same result as RotateCounterclockwise.
func (d *Direction) TurnCounterclockwise() {
	d.vertical, d.horizontal = -d.horizontal, d.vertical
}

// TurnAround reverses d in place.
func (d *Direction) TurnAround() {
	d.vertical, d.horizontal = -d.vertical, -d.horizontal
}

// Compose adds the components of d and other, e.g. Up.Compose(Right) is UpRight.
// Panics with ErrDirectionRange if the sum leaves [-1, 1] (Up.Compose(Up)).
func (d Direction) Compose(other Direction) Direction {
	v, h := d.vertical+other.vertical, d.horizontal+other.horizontal
	checkComponents("Compose", v, h)
	return Direction{vertical: v, horizontal: h}
}

// Accumulate adds other to d in place, with the same check as Compose.
// d is left unchanged when it panics.
func (d *Direction) Accumulate(other Direction) {
	*d = d.Compose(other)
}

// IsOpposite reports whether other is d reversed.
func (d Direction) IsOpposite(other Direction) bool {
	return d.vertical == -other.vertical && d.horizontal == -other.horizontal
}

// IsOrthogonal reports whether both directions have no vertical component,
// or both have no horizontal component. For the four orthogonal directions
// this means "on the same axis"; diagonals never match.
func (d Direction) IsOrthogonal(other Direction) bool {
	return d.vertical == 0 && other.vertical == 0 || d.horizontal == 0 && other.horizontal == 0
}

// ParseDirection maps ^/U, v/D, </L and >/R to Up, Down, Left and Right.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case '^', 'U':
		return Up, nil
	case 'v', 'D':
		return Down, nil
	case '<', 'L':
		return Left, nil
	case '>', 'R':
		return Right, nil
	}
	return None, fmt.Errorf("grid.ParseDirection(%q): %w", r, ErrUnknownDirection)
}

// DirectionFromChar is ParseDirection for trusted input; it panics on an
// unknown rune.
func DirectionFromChar(r rune) Direction {
	d, err := ParseDirection(r)
	if err != nil {
		panic(err)
	}
	return d
}

// String renders orthogonals as ^ v < >, diagonals as their two
// components (UpRight is "^>") and None as ".".
func (d Direction) String() string {
	switch d {
	case None:
		return "."
	case Up:
		return "^"
	case Down:
		return "v"
	case Left:
		return "<"
	case Right:
		return ">"
	case UpRight:
		return "^>"
	case RightDown:
		return ">v"
	case DownLeft:
		return "v<"
	case LeftUp:
		return "<^"
	}
	return fmt.Sprintf("Direction(%d,%d)", d.vertical, d.horizontal)
}
