package assess

import (
	"fmt"
	"sort"

	"github.com/HuXin0817/othello/pkg/models/othello"
)

// Line is a principal variation, one coordinate per ply from the root.
type Line []othello.Coord

// At returns the move the line suggests at ply, or PassCoord past its end.
func (l Line) At(ply int) othello.Coord {
	if ply < len(l) {
		return l[ply]
	}
	return othello.PassCoord
}

func (l Line) String() string {
	return fmt.Sprint([]othello.Coord(l))
}

const (
	tierHint = iota
	tierCorner
	tierOther
)

type rankedMove struct {
	othello.Move
	tier int
	key  int
}

// orderMoves sorts moves so that the previous iteration's choice comes first,
// then corners, then the moves leaving the opponent the fewest replies. Close
// to the horizon the reply count is replaced by the static cell weight.
// The order only affects how much gets pruned, never the search result.
func orderMoves(b *othello.Board, moves []othello.Move, depth int, hint othello.Coord) []othello.Move {
	ranked := make([]rankedMove, len(moves))
	for i, m := range moves {
		r := rankedMove{Move: m, tier: tierOther}
		switch {
		case m.Coord == hint:
			r.tier = tierHint
		case m.Coord.IsCorner():
			r.tier = tierCorner
		}

		if depth >= 2 && !m.IsPass() {
			tok := mustApply(b, m)
			r.key = b.Mobility(b.SideToMove())
			b.Undo(tok)
		} else if !m.IsPass() {
			r.key = -cellWeight(b, m.Coord)
		}
		ranked[i] = r
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].tier != ranked[j].tier {
			return ranked[i].tier < ranked[j].tier
		}
		if ranked[i].key != ranked[j].key {
			return ranked[i].key < ranked[j].key
		}
		return ranked[i].Coord < ranked[j].Coord
	})

	ordered := make([]othello.Move, len(ranked))
	for i, r := range ranked {
		ordered[i] = r.Move
	}
	return ordered
}

// FirstChoice is the move ordering's top pick for the side to move, used when
// no search depth finished in time. ok is false when the side has to pass.
func FirstChoice(b *othello.Board, hint othello.Coord) (m othello.Move, ok bool) {
	moves := b.LegalMoves(b.SideToMove())
	if len(moves) == 0 {
		return othello.Pass, false
	}
	return orderMoves(b, moves, 2, hint)[0], true
}

// mustApply plays a generated move. A rejection means move generation and
// Apply disagree, which is a Board bug.
func mustApply(b *othello.Board, m othello.Move) othello.UndoToken {
	tok, err := b.Apply(m)
	if err != nil {
		panic(fmt.Sprintf("assess: generated move rejected: %v", err))
	}
	return tok
}
