package message

import (
	"github.com/HuXin0817/othello/pkg/models/othello"
	"github.com/bytedance/sonic"
)

// MovingInformationMessage describes one played move together with the board
// it was played on.
type MovingInformationMessage struct {
	TimeStamp
	GameUid
	StepCount int
	Board     string
	Player    string
	Move      string
	Black     int
	White     int
}

func NewMovingInformation(uid GameUid, step int, before *othello.Board, m othello.Move, after *othello.Board) MovingInformationMessage {
	return MovingInformationMessage{
		TimeStamp: NowTimeStamp(),
		GameUid:   uid,
		StepCount: step,
		Board:     before.String(),
		Player:    before.SideToMove().String(),
		Move:      m.String(),
		Black:     after.DiscCount(othello.Black),
		White:     after.DiscCount(othello.White),
	}
}

func NewMovingInformationMessage(str string) (newMovingInformationMessage MovingInformationMessage, err error) {
	err = sonic.UnmarshalString(str, &newMovingInformationMessage)
	return
}

func (m MovingInformationMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}
