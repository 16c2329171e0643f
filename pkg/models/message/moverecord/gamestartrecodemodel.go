package moverecord

import (
	"context"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
)

var _ GameStartRecodeModel = (*customGameStartRecodeModel)(nil)

type (
	GameStartRecodeModel interface {
		Insert(ctx context.Context, data *GameStartRecode) error
		FindOne(ctx context.Context, id string) (*GameStartRecode, error)
	}

	customGameStartRecodeModel struct {
		conn *mon.Model
	}
)

func NewGameStartRecodeModel(url, db, collection string) (GameStartRecodeModel, error) {
	conn, err := mon.NewModel(url, db, collection)
	if err != nil {
		return nil, err
	}
	return &customGameStartRecodeModel{conn: conn}, nil
}

func (m *customGameStartRecodeModel) Insert(ctx context.Context, data *GameStartRecode) error {
	data.touch()
	_, err := m.conn.InsertOne(ctx, data)
	return err
}

func (m *customGameStartRecodeModel) FindOne(ctx context.Context, id string) (*GameStartRecode, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var data GameStartRecode
	switch err = m.conn.FindOne(ctx, &data, bson.M{"_id": oid}); err {
	case nil:
		return &data, nil
	case mon.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}
