package assess

import (
	"context"
	"errors"
	"time"

	"github.com/HuXin0817/othello/pkg/models/message"
	"github.com/HuXin0817/othello/pkg/models/othello"
	"github.com/zeromicro/go-zero/core/logx"
)

var ErrNoMove = errors.New("no move: game is over")

// Controller runs the Engine at increasing depths until the time budget is
// spent and answers with the best move of the deepest completed depth.
type Controller struct {
	ctx context.Context
	logx.Logger

	engine          *Engine
	safetyMargin    time.Duration
	maxDepth        int
	nextDepthFactor float64
	reports         []message.SearchReport
}

func NewController(ctx context.Context, options ...Option) *Controller {
	engine := NewEngine(NewEvaluator(DefaultWeights))
	engine.Context = ctx

	c := &Controller{
		ctx:             ctx,
		Logger:          logx.WithContext(ctx),
		engine:          engine,
		safetyMargin:    DefaultSafetyMargin,
		nextDepthFactor: DefaultNextDepthFactor,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Reports returns one entry per depth completed by the last ChooseMove.
func (c *Controller) Reports() []message.SearchReport {
	return c.reports
}

// ChooseMove picks a move for the side to move on b before deadline. b is
// searched in place and is unchanged when ChooseMove returns. A Pass is
// returned when the side to move has no legal move; ErrNoMove when the game
// is over.
func (c *Controller) ChooseMove(b *othello.Board, deadline time.Time) (othello.Move, error) {
	c.reports = nil

	side := b.SideToMove()
	moves := b.LegalMoves(side)
	switch {
	case len(moves) == 0 && b.HasLegalMove(side.Opponent()):
		c.Infof("%s has no legal move and passes", side)
		return othello.Pass, nil
	case len(moves) == 0:
		return othello.Pass, ErrNoMove
	case len(moves) == 1:
		c.Infof("%s has a single legal move %s", side, moves[0])
		return moves[0], nil
	}

	stop := deadline.Add(-c.safetyMargin)

	var (
		best  othello.Move
		found bool
		pv    Line
		last  time.Duration
	)

	for depth := 1; depth <= MaxDepth && (c.maxDepth <= 0 || depth <= c.maxDepth); depth++ {
		remaining := time.Until(stop)
		if remaining <= 0 {
			break
		}

		if found && float64(remaining) < c.nextDepthFactor*float64(last) {
			c.Infof("skip depth %d: %v left, depth %d took %v", depth, remaining, depth-1, last)
			break
		}

		start := time.Now()
		r := c.engine.Search(b, depth, -Inf, Inf, stop, pv)
		last = time.Since(start)

		if !r.Completed || !r.HasMove {
			c.Infof("depth %d interrupted after %d nodes, discarded", depth, r.Nodes)
			break
		}

		best, pv, found = r.Move, r.PV, true

		report := message.SearchReport{
			Depth:   depth,
			Score:   r.Score,
			Move:    r.Move.String(),
			PV:      r.PV.String(),
			Nodes:   r.Nodes,
			Elapsed: last,
			Exact:   r.Exact,
		}
		c.reports = append(c.reports, report)
		c.Infow("depth complete", logx.Field("report", report.String()))

		if r.Exact {
			break
		}
	}

	if !found {
		best, _ = FirstChoice(b, othello.PassCoord)
		c.Errorf("no depth completed before %v, falling back to %s", deadline.Format(time.TimeOnly), best)
	}

	return best, nil
}
