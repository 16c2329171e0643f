package moverecord

import (
	"context"

	"github.com/HuXin0817/othello/pkg/models/message"
	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ MoveRecodeModel = (*customMoveRecodeModel)(nil)

type (
	MoveRecodeModel interface {
		Insert(ctx context.Context, data *MoveRecode) error
		// FindAll returns the moves of the game in play order.
		FindAll(ctx context.Context, uid message.GameUid) ([]*MoveRecode, error)
	}

	customMoveRecodeModel struct {
		conn *mon.Model
	}
)

func NewMoveRecodeModel(url, db, collection string) (MoveRecodeModel, error) {
	conn, err := mon.NewModel(url, db, collection)
	if err != nil {
		return nil, err
	}
	return &customMoveRecodeModel{conn: conn}, nil
}

func (m *customMoveRecodeModel) Insert(ctx context.Context, data *MoveRecode) error {
	data.touch()
	_, err := m.conn.InsertOne(ctx, data)
	return err
}

func (m *customMoveRecodeModel) FindAll(ctx context.Context, uid message.GameUid) ([]*MoveRecode, error) {
	var data []*MoveRecode
	filter := bson.M{"gameUid": uid}
	if err := m.conn.Find(ctx, &data, filter, options.Find().SetSort(bson.D{{Key: "stepCount", Value: 1}})); err != nil {
		return nil, err
	}
	return data, nil
}
