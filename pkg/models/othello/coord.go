package othello

import "fmt"

const (
	Size      = 8
	CellCount = Size * Size
)

// Coord is a row-major cell index, row*Size+col.
type Coord int8

// PassCoord marks the pass move.
const PassCoord Coord = -1

func NewCoord(i, j int) (Coord, error) {
	if !inside(i, j) {
		return PassCoord, fmt.Errorf("%w: (%d, %d)", ErrInvalidCoordinate, i, j)
	}
	return coord(i, j), nil
}

func coord(i, j int) Coord {
	return Coord(i*Size + j)
}

func inside(i, j int) bool {
	return i >= 0 && i < Size && j >= 0 && j < Size
}

func (c Coord) Row() int {
	return int(c) / Size
}

func (c Coord) Col() int {
	return int(c) % Size
}

func (c Coord) IsCorner() bool {
	return (c.Row() == 0 || c.Row() == Size-1) && (c.Col() == 0 || c.Col() == Size-1)
}

func (c Coord) IsEdge() bool {
	return c.Row() == 0 || c.Row() == Size-1 || c.Col() == 0 || c.Col() == Size-1
}

func (c Coord) String() string {
	if c == PassCoord {
		return "pass"
	}
	return fmt.Sprintf("(%d, %d)", c.Row(), c.Col())
}

// Direction is one of the eight rays leaving a cell.
type Direction struct {
	DI, DJ int
}

var Directions = [8]Direction{
	{-1, 0}, {1, 0}, {0, 1}, {0, -1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

var cornerCoords = [4]Coord{coord(0, 0), coord(0, Size-1), coord(Size-1, 0), coord(Size-1, Size-1)}

// Corners returns the four corner cells.
func Corners() [4]Coord {
	return cornerCoords
}
