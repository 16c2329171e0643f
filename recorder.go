package main

import (
	"context"
	"time"

	"github.com/HuXin0817/othello/pkg/models/message"
	"github.com/HuXin0817/othello/pkg/models/message/moverecord"
	"github.com/HuXin0817/othello/pkg/models/model"
	"github.com/HuXin0817/othello/pkg/models/othello"
	"github.com/HuXin0817/othello/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const progressExpireSeconds = 24 * 60 * 60

// Recorder ships played moves to the configured stores in the background.
// Without redis or mongo it only logs. A nil Recorder records nothing.
type Recorder struct {
	ctx context.Context
	logx.Logger

	uid    message.GameUid
	pusher *pusher.Pusher[message.MovingInformationMessage]

	rds  *redis.Redis
	lock *model.RedisLock

	starts moverecord.GameStartRecodeModel
	moves  moverecord.MoveRecodeModel
	ends   moverecord.GameEndRecodeModel
}

func NewRecorder(ctx context.Context, c Config, uid message.GameUid) *Recorder {
	r := newRecorder(ctx, uid)

	if c.Redis.Host != "" {
		rds, err := redis.NewRedis(c.Redis)
		if err != nil {
			r.Errorf("redis disabled: %v", err)
		} else {
			r.useRedis(rds)
		}
	}

	if c.MongoConf.Url != "" {
		if err := r.useMongo(c.MongoConf.Url, c.MongoConf.DataBaseName); err != nil {
			r.Errorf("mongo disabled: %v", err)
		}
	}

	r.start(c.PushInterval)
	return r
}

func newRecorder(ctx context.Context, uid message.GameUid) *Recorder {
	// Records of the last moves are still flushed after an interrupt.
	ctx = context.WithoutCancel(ctx)
	return &Recorder{
		ctx:    ctx,
		Logger: logx.WithContext(ctx),
		uid:    uid,
	}
}

func (r *Recorder) useRedis(rds *redis.Redis) {
	r.rds = rds
	r.lock = model.NewLock(rds, r.uid.LockName())
}

func (r *Recorder) useMongo(url, db string) error {
	starts, err := moverecord.NewGameStartRecodeModel(url, db, "game_start")
	if err != nil {
		return err
	}
	moves, err := moverecord.NewMoveRecodeModel(url, db, "move")
	if err != nil {
		return err
	}
	ends, err := moverecord.NewGameEndRecodeModel(url, db, "game_end")
	if err != nil {
		return err
	}

	r.starts, r.moves, r.ends = starts, moves, ends
	return nil
}

func (r *Recorder) start(interval time.Duration) {
	r.pusher = pusher.NewPusher(
		pusher.WithPushLogic(r.push),
		pusher.WithPushInterval[message.MovingInformationMessage](interval),
	)
	r.pusher.Start()
}

func (r *Recorder) RecordStart(aiBlack, aiWhite bool, timeLimit time.Duration) {
	if r == nil {
		return
	}

	r.Infow("game start",
		logx.Field("game", r.uid),
		logx.Field("aiBlack", aiBlack),
		logx.Field("aiWhite", aiWhite),
		logx.Field("timeLimit", timeLimit.String()))

	if r.starts == nil {
		return
	}
	if err := r.starts.Insert(r.ctx, &moverecord.GameStartRecode{
		GameUid:   r.uid,
		AIBlack:   aiBlack,
		AIWhite:   aiWhite,
		TimeLimit: timeLimit.String(),
	}); err != nil {
		r.Errorf("insert game start of %s: %v", r.uid, err)
	}
}

func (r *Recorder) RecordMove(m message.MovingInformationMessage) {
	if r == nil {
		return
	}
	r.pusher.AddMessages(m)
}

func (r *Recorder) RecordEnd(b *othello.Board) {
	if r == nil {
		return
	}

	end := moverecord.GameEndRecode{
		GameUid: r.uid,
		Winner:  b.Winner().String(),
		Black:   b.DiscCount(othello.Black),
		White:   b.DiscCount(othello.White),
	}
	if end.Black == end.White {
		end.Winner = "Draw"
	}

	r.Infow("game over",
		logx.Field("game", r.uid),
		logx.Field("winner", end.Winner),
		logx.Field("black", end.Black),
		logx.Field("white", end.White))

	if r.ends == nil {
		return
	}
	if err := r.ends.Insert(r.ctx, &end); err != nil {
		r.Errorf("insert game end of %s: %v", r.uid, err)
	}
}

// Progress returns the latest move published to redis.
func (r *Recorder) Progress(ctx context.Context) (message.MovingInformationMessage, bool, error) {
	if r == nil || r.rds == nil {
		return message.MovingInformationMessage{}, false, nil
	}

	str, err := r.rds.GetCtx(ctx, r.uid.ProgressKey())
	if err != nil || str == "" {
		return message.MovingInformationMessage{}, false, err
	}

	m, err := message.NewMovingInformationMessage(str)
	return m, err == nil, err
}

// Close flushes the buffered moves.
func (r *Recorder) Close() {
	if r == nil {
		return
	}
	r.pusher.Stop()
}

// push stores every message and publishes the last one as the game's
// progress. Store failures are logged and dropped; a retried batch would
// insert the stored moves twice.
func (r *Recorder) push(messages ...message.MovingInformationMessage) error {
	for _, m := range messages {
		r.Infow("move", logx.Field("game", m.GameUid), logx.Field("step", m.StepCount),
			logx.Field("player", m.Player), logx.Field("move", m.Move))

		if r.moves == nil {
			continue
		}
		if err := r.moves.Insert(r.ctx, &moverecord.MoveRecode{
			GameUid:   m.GameUid,
			StepCount: m.StepCount,
			Player:    m.Player,
			Move:      m.Move,
			Board:     m.Board,
			Black:     m.Black,
			White:     m.White,
		}); err != nil {
			r.Errorf("insert step %d of %s: %v", m.StepCount, m.GameUid, err)
		}
	}

	if r.rds == nil || len(messages) == 0 {
		return nil
	}

	last := messages[len(messages)-1]
	if err := r.lock.Do(r.ctx, func() error {
		return r.rds.SetexCtx(r.ctx, r.uid.ProgressKey(), last.String(), progressExpireSeconds)
	}); err != nil {
		r.Errorf("publish progress of %s: %v", r.uid, err)
	}
	return nil
}
