package moverecord

import "github.com/HuXin0817/othello/pkg/models/message"

type MoveRecode struct {
	Meta `bson:",inline"`

	GameUid   message.GameUid `bson:"gameUid"`
	StepCount int             `bson:"stepCount"`
	Player    string          `bson:"player"`
	Move      string          `bson:"move"`
	Board     string          `bson:"board"`
	Black     int             `bson:"black"`
	White     int             `bson:"white"`
}
