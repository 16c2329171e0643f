package othello

// Player is the content of a cell and the identity of a side.
// Black is the first player (PlayerA), White the second (PlayerB).
type Player int8

const (
	Empty Player = 0
	Black Player = 1
	White Player = -1
)

// Draw is what Winner reports when both sides hold the same number of discs.
const Draw = Empty

func (p Player) Opponent() Player {
	return -p
}

func (p Player) String() string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Empty"
}

// Char is the single character used by ParseBoard and Board.String.
func (p Player) Char() byte {
	switch p {
	case Black:
		return 'B'
	case White:
		return 'W'
	}
	return '.'
}
