package assess

import (
	"context"
	"time"

	"github.com/HuXin0817/othello/pkg/models/othello"
)

const (
	// MaxDepth bounds the recursion: 60 placements plus room for passes.
	MaxDepth = 64
	// Inf is wider than any score the evaluator produces.
	Inf = 2 * WinScore

	DefaultCheckInterval = 1024
)

type Result struct {
	Score int
	Move  othello.Move
	// HasMove is false when the root was a leaf or the search stopped
	// before any root move was scored.
	HasMove bool
	PV      Line
	Nodes   int64
	// Completed is false when the deadline or the context stopped the search.
	Completed bool
	// Exact reports that every leaf reached was a finished game, so deeper
	// searches cannot change the result.
	Exact bool
}

// Engine is a depth-limited negamax search with alpha-beta pruning. It keeps
// no state between Search calls and is not safe for concurrent use.
type Engine struct {
	Evaluator Evaluator
	// CheckInterval is how many nodes pass between clock reads.
	CheckInterval int64
	Context       context.Context

	deadline time.Time
	hint     Line
	nodes    int64
	stopped  bool
	horizon  bool

	best    othello.Move
	hasBest bool
	pv      [MaxDepth + 2][MaxDepth + 2]othello.Coord
	pvLen   [MaxDepth + 2]int
}

func NewEngine(e Evaluator) *Engine {
	return &Engine{
		Evaluator:     e,
		CheckInterval: DefaultCheckInterval,
		Context:       context.Background(),
	}
}

// Search scores b for the side to move, looking depth plies ahead within the
// window [alpha, beta]. A zero deadline never expires. hint is the principal
// variation of a shallower search and only influences move ordering. b is
// left exactly as it was passed in, also when the search is stopped.
func (e *Engine) Search(b *othello.Board, depth, alpha, beta int, deadline time.Time, hint Line) Result {
	if depth > MaxDepth {
		depth = MaxDepth
	}

	e.deadline = deadline
	e.hint = hint
	e.nodes = 0
	e.stopped = false
	e.horizon = false
	e.hasBest = false

	score := e.negamax(b, depth, 0, alpha, beta, true)

	r := Result{
		Score:     score,
		Move:      e.best,
		HasMove:   e.hasBest,
		PV:        append(Line(nil), e.pv[0][:e.pvLen[0]]...),
		Nodes:     e.nodes,
		Completed: !e.stopped,
		Exact:     !e.stopped && !e.horizon,
	}
	if !r.HasMove {
		r.Move = othello.Pass
	}
	return r
}

// visit counts a node and reports whether the search has to unwind.
func (e *Engine) visit() bool {
	e.nodes++
	if e.stopped {
		return true
	}

	interval := e.CheckInterval
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	if e.nodes == 1 || e.nodes%interval == 0 {
		e.stopped = e.expired()
	}
	return e.stopped
}

func (e *Engine) expired() bool {
	if e.Context != nil && e.Context.Err() != nil {
		return true
	}
	return !e.deadline.IsZero() && !time.Now().Before(e.deadline)
}

func (e *Engine) leaf(b *othello.Board) int {
	score, terminal := e.Evaluator.evaluate(b, b.SideToMove())
	if !terminal {
		e.horizon = true
	}
	return score
}

func (e *Engine) negamax(b *othello.Board, depth, ply, alpha, beta int, onPV bool) int {
	e.pvLen[ply] = 0
	if e.visit() || depth <= 0 {
		return e.leaf(b)
	}

	side := b.SideToMove()
	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		if !b.HasLegalMove(side.Opponent()) {
			return e.leaf(b)
		}
		moves = []othello.Move{othello.Pass}
	}

	hint := othello.PassCoord
	if onPV {
		hint = e.hint.At(ply)
	}
	if len(moves) > 1 {
		moves = orderMoves(b, moves, depth, hint)
	}

	best := -Inf
	var bestCoord othello.Coord
	for i, m := range moves {
		// At the root a move scoring the same as the current best has to be
		// seen exactly, so ties resolve by coordinate and not by search order.
		tie := ply == 0 && i > 0 && best >= alpha
		lo := alpha
		if tie {
			lo = best - 1
		}

		tok := mustApply(b, m)
		score := -e.negamax(b, depth-1, ply+1, -beta, -lo, onPV && m.Coord == hint)
		b.Undo(tok)

		if e.stopped && i > 0 {
			break
		}

		if i == 0 || score > best || (tie && score == best && m.Coord < bestCoord) {
			best = score
			bestCoord = m.Coord
			e.updatePV(ply, m.Coord)
			if ply == 0 {
				e.best, e.hasBest = m, true
			}
		}

		if best > alpha {
			alpha = best
		}
		if alpha >= beta || e.stopped {
			break
		}
	}
	return best
}

func (e *Engine) updatePV(ply int, c othello.Coord) {
	e.pv[ply][0] = c
	n := e.pvLen[ply+1]
	copy(e.pv[ply][1:], e.pv[ply+1][:n])
	e.pvLen[ply] = n + 1
}
