package message

import (
	"fmt"

	"github.com/google/uuid"
)

// GameUid identifies one game session across logs and stored records.
type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

func ParseGameUid(s string) (GameUid, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return GameUid(id.String()), nil
}

// ProgressKey is the redis key holding the latest step of the game.
func (g GameUid) ProgressKey() string {
	return fmt.Sprintf("othello:%s:progress", g)
}

func (g GameUid) LockName() string {
	return fmt.Sprintf("othello:%s:lock", g)
}
