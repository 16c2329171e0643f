package moverecord

import (
	"context"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
)

var _ GameEndRecodeModel = (*customGameEndRecodeModel)(nil)

type (
	GameEndRecodeModel interface {
		Insert(ctx context.Context, data *GameEndRecode) error
		FindOne(ctx context.Context, id string) (*GameEndRecode, error)
	}

	customGameEndRecodeModel struct {
		conn *mon.Model
	}
)

func NewGameEndRecodeModel(url, db, collection string) (GameEndRecodeModel, error) {
	conn, err := mon.NewModel(url, db, collection)
	if err != nil {
		return nil, err
	}
	return &customGameEndRecodeModel{conn: conn}, nil
}

func (m *customGameEndRecodeModel) Insert(ctx context.Context, data *GameEndRecode) error {
	data.touch()
	_, err := m.conn.InsertOne(ctx, data)
	return err
}

func (m *customGameEndRecodeModel) FindOne(ctx context.Context, id string) (*GameEndRecode, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var data GameEndRecode
	switch err = m.conn.FindOne(ctx, &data, bson.M{"_id": oid}); err {
	case nil:
		return &data, nil
	case mon.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}
