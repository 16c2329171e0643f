package assess

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/HuXin0817/othello/pkg/models/message"
	"github.com/HuXin0817/othello/pkg/models/othello"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseMoveMatchesFixedDepthSearch(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	engine := NewEngine(NewEvaluator(DefaultWeights))

	for i := 0; i < 15; i++ {
		b := randomBoard(t, rng, rng.Intn(40))
		if len(b.LegalMoves(b.SideToMove())) < 2 {
			continue
		}
		before := b.Clone()

		for depth := 1; depth <= 4; depth++ {
			c := NewController(context.Background(), WithMaxDepth(depth))
			m, err := c.ChooseMove(b, time.Now().Add(time.Minute))
			require.NoError(t, err)

			want := engine.Search(b, depth, -Inf, Inf, time.Time{}, nil)
			require.Equal(t, want.Move, m, "depth %d\n%s", depth, b)
			require.True(t, b.Equal(before))

			reports := c.Reports()
			require.NotEmpty(t, reports)
			last := reports[len(reports)-1]
			assert.LessOrEqual(t, last.Depth, depth)
			if !last.Exact {
				assert.Equal(t, depth, last.Depth)
			}
		}
	}
}

func TestChooseMoveStartPosition(t *testing.T) {
	b := othello.NewBoard()
	c := NewController(context.Background(), WithSafetyMargin(50*time.Millisecond))

	start := time.Now()
	m, err := c.ChooseMove(b, time.Now().Add(500*time.Millisecond))
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Contains(t, b.LegalMoves(othello.Black), m)
	assert.True(t, b.Equal(othello.NewBoard()))
	assert.NotEmpty(t, c.Reports())
}

func TestReportsSurviveNextChooseMove(t *testing.T) {
	c := NewController(context.Background(), WithMaxDepth(3))

	b := othello.NewBoard()
	_, err := c.ChooseMove(b, time.Now().Add(time.Minute))
	require.NoError(t, err)
	first := c.Reports()
	require.Len(t, first, 3)
	want := append([]message.SearchReport(nil), first...)

	m, err := b.MoveAt(2, 3)
	require.NoError(t, err)
	_, err = b.Apply(m)
	require.NoError(t, err)

	_, err = c.ChooseMove(b, time.Now().Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, c.Reports(), 3)
	assert.Equal(t, want, first)
}

func TestChooseMoveFallsBackWithoutTime(t *testing.T) {
	b := randomBoard(t, rand.New(rand.NewSource(5)), 10)
	want, ok := FirstChoice(b, othello.PassCoord)
	require.True(t, ok)

	c := NewController(context.Background())
	m, err := c.ChooseMove(b, time.Now().Add(-time.Second))
	require.NoError(t, err)
	assert.Equal(t, want, m)
	assert.Empty(t, c.Reports())
}

func TestChooseMovePassAndGameOver(t *testing.T) {
	c := NewController(context.Background())

	blocked := parse(t, "WB...... ........ ........ ........ ........ ........ ........ ........", othello.Black)
	m, err := c.ChooseMove(blocked, time.Now().Add(time.Second))
	require.NoError(t, err)
	assert.True(t, m.IsPass())

	over := parse(t, "B....... ........ ........ ........ ........ ........ ........ .......W", othello.Black)
	_, err = c.ChooseMove(over, time.Now().Add(time.Second))
	assert.ErrorIs(t, err, ErrNoMove)
}

func TestChooseMoveStopsWhenExact(t *testing.T) {
	b := parse(t, `
		WWWWWWWW
		WWWWWWWW
		WWWWWWWW
		WWWWWWWW
		BBBBBBBB
		BBBBBBBB
		BBBBBBBB
		BBBBBB..`, othello.White)

	c := NewController(context.Background())
	m, err := c.ChooseMove(b, time.Now().Add(10*time.Second))
	require.NoError(t, err)
	assert.Contains(t, b.LegalMoves(othello.White), m)

	reports := c.Reports()
	require.NotEmpty(t, reports)
	assert.True(t, reports[len(reports)-1].Exact)
	assert.Less(t, reports[len(reports)-1].Depth, 10)
}

func TestOrderMoves(t *testing.T) {
	b := parse(t, `
		.WB.....
		WW......
		B.WB....
		...WB...
		...BW...
		........
		........
		........`, othello.Black)
	before := b.Clone()
	moves := b.LegalMoves(othello.Black)
	require.Greater(t, len(moves), 2)

	corner, err := othello.NewCoord(0, 0)
	require.NoError(t, err)
	require.Contains(t, coordsOf(moves), corner)

	ordered := orderMoves(b, moves, 3, othello.PassCoord)
	assert.Equal(t, corner, ordered[0].Coord)
	assert.ElementsMatch(t, moves, ordered)

	hint := moves[len(moves)-1].Coord
	if hint == corner {
		hint = moves[0].Coord
	}
	ordered = orderMoves(b, moves, 3, hint)
	assert.Equal(t, hint, ordered[0].Coord)
	assert.Equal(t, corner, ordered[1].Coord)
	assert.True(t, b.Equal(before))
}

func coordsOf(moves []othello.Move) (cs []othello.Coord) {
	for _, m := range moves {
		cs = append(cs, m.Coord)
	}
	return
}
