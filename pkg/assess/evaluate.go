package assess

import "github.com/HuXin0817/othello/pkg/models/othello"

// WinScore dominates every heuristic score, so a proven win is preferred over
// any unfinished position.
const WinScore = 1 << 20

type Weights struct {
	Material  int `json:",default=10"`
	Mobility  int `json:",default=7"`
	Corner    int `json:",default=40"`
	Edge      int `json:",default=3"`
	Stability int `json:",default=4"`
	Position  int `json:",default=1"`
}

var DefaultWeights = Weights{
	Material:  10,
	Mobility:  7,
	Corner:    40,
	Edge:      3,
	Stability: 4,
	Position:  1,
}

// positionTable favours corners and edges. The X and C squares next to a
// corner are only penalised while that corner is empty, see cellWeight.
var positionTable = [othello.CellCount]int{
	100, -20, 10, 5, 5, 10, -20, 100,
	-20, -50, -2, -2, -2, -2, -50, -20,
	10, -2, 1, 1, 1, 1, -2, 10,
	5, -2, 1, 0, 0, 1, -2, 5,
	5, -2, 1, 0, 0, 1, -2, 5,
	10, -2, 1, 1, 1, 1, -2, 10,
	-20, -50, -2, -2, -2, -2, -50, -20,
	100, -20, 10, 5, 5, 10, -20, 100,
}

// settledWeight replaces the X/C penalty once the neighbouring corner is taken.
const settledWeight = 5

// cornerOf maps X and C squares to the corner they touch.
var cornerOf = func() map[othello.Coord]othello.Coord {
	m := make(map[othello.Coord]othello.Coord)
	for _, corner := range othello.Corners() {
		ci, cj := corner.Row(), corner.Col()
		for _, d := range othello.Directions {
			if c, err := othello.NewCoord(ci+d.DI, cj+d.DJ); err == nil {
				m[c] = corner
			}
		}
	}
	return m
}()

func cellWeight(b *othello.Board, c othello.Coord) int {
	if corner, ok := cornerOf[c]; ok && b.Cell(corner) != othello.Empty {
		return settledWeight
	}
	return positionTable[c]
}

// Evaluator scores boards statically. Score is a pure function of the board
// and antisymmetric: Score(b, p) == -Score(b, p.Opponent()).
type Evaluator struct {
	Weights Weights
}

func NewEvaluator(w Weights) Evaluator {
	return Evaluator{Weights: w}
}

func (e Evaluator) Score(b *othello.Board, p othello.Player) int {
	score, _ := e.evaluate(b, p)
	return score
}

// evaluate also reports whether b is a finished game, in which case the score
// is decided by the disc count alone.
func (e Evaluator) evaluate(b *othello.Board, p othello.Player) (int, bool) {
	opp := p.Opponent()

	material := b.DiscCount(p) - b.DiscCount(opp)
	myMoves, oppMoves := b.Mobility(p), b.Mobility(opp)
	if myMoves == 0 && oppMoves == 0 {
		return terminalScore(material), true
	}

	var corners, edges, position int
	for c := othello.Coord(0); c < othello.CellCount; c++ {
		sign := owner(b.Cell(c), p)
		if sign == 0 {
			continue
		}
		if c.IsCorner() {
			corners += sign
		}
		if c.IsEdge() {
			edges += sign
		}
		position += sign * cellWeight(b, c)
	}

	w := e.Weights
	return w.Material*material +
		w.Mobility*(myMoves-oppMoves) +
		w.Corner*corners +
		w.Edge*edges +
		w.Stability*stability(b, p) +
		w.Position*position, false
}

func terminalScore(material int) int {
	switch {
	case material > 0:
		return WinScore + material
	case material < 0:
		return -WinScore + material
	}
	return 0
}

func owner(cell, p othello.Player) int {
	switch cell {
	case p:
		return 1
	case p.Opponent():
		return -1
	}
	return 0
}

// stability counts owned corners and the owner's discs around them, for both
// sides.
func stability(b *othello.Board, p othello.Player) (s int) {
	for _, corner := range othello.Corners() {
		sign := owner(b.Cell(corner), p)
		if sign == 0 {
			continue
		}

		s += sign
		for _, d := range othello.Directions {
			c, err := othello.NewCoord(corner.Row()+d.DI, corner.Col()+d.DJ)
			if err == nil && b.Cell(c) == b.Cell(corner) {
				s += sign
			}
		}
	}
	return
}
