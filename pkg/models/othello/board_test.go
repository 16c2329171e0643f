package othello

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coords(moves []Move) (cs []Coord) {
	for _, m := range moves {
		cs = append(cs, m.Coord)
	}
	return
}

func mustCoord(t *testing.T, i, j int) Coord {
	t.Helper()
	c, err := NewCoord(i, j)
	require.NoError(t, err)
	return c
}

func TestStartPositionLegalMoves(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, Black, b.SideToMove())
	assert.Equal(t, 2, b.DiscCount(Black))
	assert.Equal(t, 2, b.DiscCount(White))
	assert.Equal(t, 60, b.EmptyCount())

	want := []Coord{mustCoord(t, 2, 3), mustCoord(t, 3, 2), mustCoord(t, 4, 5), mustCoord(t, 5, 4)}
	assert.Equal(t, want, coords(b.LegalMoves(Black)))
}

func TestApplyFlipsSingleDisc(t *testing.T) {
	b := NewBoard()

	m, err := b.MoveAt(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Flips())

	_, err = b.Apply(m)
	require.NoError(t, err)

	for i := range Size {
		for j := range Size {
			p, err := b.At(i, j)
			require.NoError(t, err)
			switch {
			case i == 2 && j == 3, i == 3 && j == 3, i == 3 && j == 4, i == 4 && j == 3:
				assert.Equal(t, Black, p, "(%d, %d)", i, j)
			case i == 4 && j == 4:
				assert.Equal(t, White, p)
			default:
				assert.Equal(t, Empty, p, "(%d, %d)", i, j)
			}
		}
	}
	assert.Equal(t, White, b.SideToMove())
}

func TestApplyRejectsIllegalMoves(t *testing.T) {
	b := NewBoard()
	before := b.Clone()

	_, err := b.MoveAt(0, 0)
	assert.ErrorIs(t, err, ErrInvalidMove)

	_, err = b.MoveAt(8, 0)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = b.At(-1, 3)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = b.Apply(Move{Coord: mustCoord(t, 0, 0)})
	assert.ErrorIs(t, err, ErrInvalidMove)

	// Right cell, wrong runs.
	_, err = b.Apply(Move{Coord: mustCoord(t, 2, 3)})
	assert.ErrorIs(t, err, ErrInvalidMove)

	_, err = b.Apply(Move{Coord: 64})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = b.Apply(Pass)
	assert.ErrorIs(t, err, ErrInvalidMove)

	assert.True(t, b.Equal(before))
}

func TestApplyUndoRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for game := 0; game < 20; game++ {
		b := NewBoard()
		var tokens []UndoToken
		var snapshots []*Board

		for !b.IsTerminal() {
			moves := b.LegalMoves(b.SideToMove())
			m := Pass
			if len(moves) > 0 {
				m = moves[rng.Intn(len(moves))]
			}

			before := b.Clone()
			total := b.DiscCount(Black) + b.DiscCount(White) + b.EmptyCount()
			tok, err := b.Apply(m)
			require.NoError(t, err)
			require.Equal(t, 64, total)
			require.Equal(t, total, b.DiscCount(Black)+b.DiscCount(White)+b.EmptyCount())

			if !m.IsPass() {
				require.Equal(t, before.EmptyCount()-1, b.EmptyCount())
			}

			b.Undo(tok)
			require.True(t, b.Equal(before), "undo after %s\n%s", m, before)

			_, err = b.Apply(m)
			require.NoError(t, err)
			tokens = append(tokens, tok)
			snapshots = append(snapshots, before)
		}

		for k := len(tokens) - 1; k >= 0; k-- {
			b.Undo(tokens[k])
			require.True(t, b.Equal(snapshots[k]))
		}
		require.True(t, b.Equal(NewBoard()))
	}
}

func TestForcedPass(t *testing.T) {
	b, err := ParseBoard(`
		WB......
		........
		........
		........
		........
		........
		........
		........`, Black)
	require.NoError(t, err)

	assert.Empty(t, b.LegalMoves(Black))
	assert.True(t, b.HasLegalMove(White))
	assert.False(t, b.IsTerminal())

	before := b.Clone()
	tok, err := b.Apply(Pass)
	require.NoError(t, err)
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, before.String(), b.String())

	b.Undo(tok)
	assert.True(t, b.Equal(before))
}

func TestTerminalAndWinner(t *testing.T) {
	cases := []struct {
		name   string
		board  string
		winner Player
	}{
		{
			name:   "isolated discs draw",
			board:  "B.......  ........  ........  ........  ........  ........  ........  .......W",
			winner: Draw,
		},
		{
			name:   "black wipes out white",
			board:  "BBBBBBBB  BBBBBBBB  BBBBBBBB  BBBBBBBB  ........  ........  ........  ........",
			winner: Black,
		},
		{
			name:   "full board white ahead",
			board:  "WWWWWWWW  WWWWWWWW  WWWWWWWW  WWWWWWWW  WWWWWWWW  BBBBBBBB  BBBBBBBB  BBBBBBBB",
			winner: White,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := ParseBoard(c.board, Black)
			require.NoError(t, err)
			assert.True(t, b.IsTerminal())
			assert.Empty(t, b.LegalMoves(Black))
			assert.Empty(t, b.LegalMoves(White))
			assert.Equal(t, c.winner, b.Winner())
		})
	}

	assert.False(t, NewBoard().IsTerminal())
}

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard(NewBoard().String(), Black)
	require.NoError(t, err)
	assert.True(t, b.Equal(NewBoard()))

	_, err = ParseBoard("BW", Black)
	assert.ErrorIs(t, err, ErrInvalidBoard)

	_, err = ParseBoard(NewBoard().String()+"B", Black)
	assert.ErrorIs(t, err, ErrInvalidBoard)

	_, err = ParseBoard(NewBoard().String(), Empty)
	assert.ErrorIs(t, err, ErrInvalidBoard)
}

func TestCoord(t *testing.T) {
	c := mustCoord(t, 7, 0)
	assert.Equal(t, 7, c.Row())
	assert.Equal(t, 0, c.Col())
	assert.True(t, c.IsCorner())
	assert.True(t, mustCoord(t, 3, 0).IsEdge())
	assert.False(t, mustCoord(t, 3, 3).IsEdge())
	assert.Equal(t, "(7, 0)", c.String())
	assert.Equal(t, "pass", PassCoord.String())
}
