package message

import (
	"testing"
	"time"

	"github.com/HuXin0817/othello/pkg/models/othello"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovingInformationMessage(t *testing.T) {
	uid := NewGameUid()
	before := othello.NewBoard()
	after := before.Clone()

	m, err := after.MoveAt(2, 3)
	require.NoError(t, err)
	_, err = after.Apply(m)
	require.NoError(t, err)

	msg := NewMovingInformation(uid, 1, before, m, after)
	assert.Equal(t, "Black", msg.Player)
	assert.Equal(t, "(2, 3)", msg.Move)
	assert.Equal(t, 4, msg.Black)
	assert.Equal(t, 1, msg.White)

	decoded, err := NewMovingInformationMessage(msg.String())
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)

	board, err := othello.ParseBoard(decoded.Board, othello.Black)
	require.NoError(t, err)
	assert.True(t, board.Equal(before))
}

func TestGameUid(t *testing.T) {
	uid := NewGameUid()
	parsed, err := ParseGameUid(string(uid))
	require.NoError(t, err)
	assert.Equal(t, uid, parsed)
	assert.Contains(t, uid.ProgressKey(), string(uid))

	_, err = ParseGameUid("not-a-uuid")
	assert.Error(t, err)
}

func TestTimeStamp(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 15, 250*int(time.Millisecond), time.UTC)
	ts := NewTimeStamp(now)
	assert.Equal(t, TimeStamp("2024-05-01 12:30:15.250"), ts)
	assert.True(t, ts.Time().Equal(now))

	local := now.In(time.FixedZone("UTC+8", 8*60*60))
	assert.Equal(t, ts, NewTimeStamp(local))

	later := NewTimeStamp(now.Add(time.Millisecond))
	assert.Less(t, string(ts), string(later))

	parsed, err := ParseTimeStamp(string(ts))
	require.NoError(t, err)
	assert.Equal(t, ts, parsed)

	_, err = ParseTimeStamp("yesterday")
	assert.Error(t, err)
	assert.True(t, TimeStamp("yesterday").Time().IsZero())
}
