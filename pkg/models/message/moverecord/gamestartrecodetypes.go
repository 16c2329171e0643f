package moverecord

import "github.com/HuXin0817/othello/pkg/models/message"

type GameStartRecode struct {
	Meta `bson:",inline"`

	GameUid   message.GameUid `bson:"gameUid"`
	AIBlack   bool            `bson:"aiBlack"`
	AIWhite   bool            `bson:"aiWhite"`
	TimeLimit string          `bson:"timeLimit"`
}
