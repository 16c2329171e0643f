package moverecord

import "github.com/HuXin0817/othello/pkg/models/message"

type GameEndRecode struct {
	Meta `bson:",inline"`

	GameUid message.GameUid `bson:"gameUid"`
	Winner  string          `bson:"winner"`
	Black   int             `bson:"black"`
	White   int             `bson:"white"`
}
