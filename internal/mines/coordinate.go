package mines

import "fmt"

// Coordinate addresses one tile of a grid. It does no bounds checking;
// that is up to the [Grid] it is used with.
type Coordinate struct {
	Row, Col int
}

// Coordinate implements [fmt.Stringer]
func (c Coordinate) String() string {
	return fmt.Sprintf("%d:%d", c.Row, c.Col)
}

// the eight compass directions, clockwise from east
var neighborOffsets = [8]Coordinate{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}
