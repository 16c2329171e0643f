package othello

// Move is a disc placement together with the number of opposing discs it
// flips along each of Directions. The runs are computed once when the move is
// generated and reused by Apply and Undo.
type Move struct {
	Coord Coord
	Runs  [8]int8
}

var Pass = Move{Coord: PassCoord}

func (m Move) IsPass() bool {
	return m.Coord == PassCoord
}

func (m Move) Flips() (n int) {
	for _, r := range m.Runs {
		n += int(r)
	}
	return
}

func (m Move) String() string {
	return m.Coord.String()
}

// UndoToken holds everything needed to reverse one Apply.
type UndoToken struct {
	Move Move
	Side Player
}
