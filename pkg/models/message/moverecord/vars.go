package moverecord

import (
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound        = mon.ErrNotFound
	ErrInvalidObjectId = errors.New("invalid objectId")
)

// Meta holds the fields every stored recode carries.
type Meta struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`
}

func (m *Meta) touch() {
	now := time.Now()
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
		m.CreateAt = now
	}
	m.UpdateAt = now
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return oid, ErrInvalidObjectId
	}
	return oid, nil
}
