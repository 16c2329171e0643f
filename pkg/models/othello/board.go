package othello

import (
	"fmt"
	"strings"
)

type Board struct {
	cells [CellCount]Player
	side  Player
}

// NewBoard returns the standard start: Black on (3,4) and (4,3), White on
// (3,3) and (4,4), Black to move.
func NewBoard() *Board {
	b := &Board{side: Black}
	b.cells[coord(3, 4)] = Black
	b.cells[coord(4, 3)] = Black
	b.cells[coord(3, 3)] = White
	b.cells[coord(4, 4)] = White
	return b
}

// ParseBoard reads 64 cells written as '.', 'B' or 'W' in row-major order.
// Whitespace is ignored.
func ParseBoard(s string, side Player) (*Board, error) {
	if side != Black && side != White {
		return nil, fmt.Errorf("%w: side %d", ErrInvalidBoard, side)
	}

	b := &Board{side: side}
	n := 0
	for _, r := range s {
		var p Player
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		case '.':
			p = Empty
		case 'B':
			p = Black
		case 'W':
			p = White
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ErrInvalidBoard, r)
		}

		if n == CellCount {
			return nil, fmt.Errorf("%w: more than %d cells", ErrInvalidBoard, CellCount)
		}
		b.cells[n] = p
		n++
	}

	if n != CellCount {
		return nil, fmt.Errorf("%w: %d cells", ErrInvalidBoard, n)
	}
	return b, nil
}

func (b *Board) SideToMove() Player {
	return b.side
}

func (b *Board) At(i, j int) (Player, error) {
	c, err := NewCoord(i, j)
	if err != nil {
		return Empty, err
	}
	return b.cells[c], nil
}

func (b *Board) Cell(c Coord) Player {
	return b.cells[c]
}

// runs counts, per direction, the opposing discs a disc of p placed on c
// would flip.
func (b *Board) runs(c Coord, p Player) (runs [8]int8, ok bool) {
	if b.cells[c] != Empty {
		return
	}

	i, j := c.Row(), c.Col()
	opp := p.Opponent()
	for d, dir := range Directions {
		r, k := i+dir.DI, j+dir.DJ
		var n int8
		for inside(r, k) && b.cells[coord(r, k)] == opp {
			n++
			r += dir.DI
			k += dir.DJ
		}
		if n > 0 && inside(r, k) && b.cells[coord(r, k)] == p {
			runs[d] = n
			ok = true
		}
	}
	return
}

func (b *Board) LegalMoves(p Player) (moves []Move) {
	for c := Coord(0); c < CellCount; c++ {
		if runs, ok := b.runs(c, p); ok {
			moves = append(moves, Move{Coord: c, Runs: runs})
		}
	}
	return
}

func (b *Board) HasLegalMove(p Player) bool {
	for c := Coord(0); c < CellCount; c++ {
		if _, ok := b.runs(c, p); ok {
			return true
		}
	}
	return false
}

func (b *Board) Mobility(p Player) (count int) {
	for c := Coord(0); c < CellCount; c++ {
		if _, ok := b.runs(c, p); ok {
			count++
		}
	}
	return
}

// MoveAt resolves a coordinate into the legal move of the side to move.
func (b *Board) MoveAt(i, j int) (Move, error) {
	c, err := NewCoord(i, j)
	if err != nil {
		return Pass, err
	}

	runs, ok := b.runs(c, b.side)
	if !ok {
		return Pass, fmt.Errorf("%w: %s for %s", ErrInvalidMove, c, b.side)
	}
	return Move{Coord: c, Runs: runs}, nil
}

// Apply plays m for the side to move. m must be one of
// LegalMoves(SideToMove()), or Pass when that set is empty; anything else
// fails with ErrInvalidMove and leaves the board untouched.
func (b *Board) Apply(m Move) (UndoToken, error) {
	t := UndoToken{Move: m, Side: b.side}

	if m.IsPass() {
		if b.HasLegalMove(b.side) {
			return t, fmt.Errorf("%w: %s cannot pass", ErrInvalidMove, b.side)
		}
		b.side = b.side.Opponent()
		return t, nil
	}

	if m.Coord < 0 || m.Coord >= CellCount {
		return t, fmt.Errorf("%w: cell %d", ErrInvalidCoordinate, m.Coord)
	}

	runs, ok := b.runs(m.Coord, b.side)
	if !ok || runs != m.Runs {
		return t, fmt.Errorf("%w: %s for %s", ErrInvalidMove, m.Coord, b.side)
	}

	b.flip(m, b.side)
	b.cells[m.Coord] = b.side
	b.side = b.side.Opponent()
	return t, nil
}

// Undo reverses the Apply that produced t. Tokens must be undone in LIFO
// order.
func (b *Board) Undo(t UndoToken) {
	b.side = t.Side
	if t.Move.IsPass() {
		return
	}

	b.cells[t.Move.Coord] = Empty
	b.flip(t.Move, t.Side.Opponent())
}

// flip sets every disc covered by the runs of m to p.
func (b *Board) flip(m Move, p Player) {
	i, j := m.Coord.Row(), m.Coord.Col()
	for d, n := range m.Runs {
		dir := Directions[d]
		for k := 1; k <= int(n); k++ {
			b.cells[coord(i+k*dir.DI, j+k*dir.DJ)] = p
		}
	}
}

func (b *Board) IsTerminal() bool {
	return !b.HasLegalMove(Black) && !b.HasLegalMove(White)
}

func (b *Board) DiscCount(p Player) (count int) {
	for _, c := range b.cells {
		if c == p {
			count++
		}
	}
	return
}

func (b *Board) EmptyCount() int {
	return b.DiscCount(Empty)
}

// Winner decides the game by disc count. It is only meaningful once
// IsTerminal reports true.
func (b *Board) Winner() Player {
	black, white := b.DiscCount(Black), b.DiscCount(White)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	}
	return Draw
}

func (b *Board) Clone() *Board {
	c := *b
	return &c
}

func (b *Board) Equal(o *Board) bool {
	return b.cells == o.cells && b.side == o.side
}

// String is the compact form accepted by ParseBoard, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for i := range Size {
		for j := range Size {
			sb.WriteByte(b.cells[coord(i, j)].Char())
		}
		if i < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
