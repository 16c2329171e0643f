package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/HuXin0817/othello/pkg/models/message"
	"github.com/HuXin0817/othello/pkg/models/model"
	"github.com/HuXin0817/othello/pkg/models/othello"
	"github.com/HuXin0817/othello/pkg/pprof"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	configFile  = flag.String("f", "etc/othello.yaml", "the config file")
	AIBlackConf = flag.String("AIBlack", "OFF", "AI plays Black")
	AIWhiteConf = flag.String("AIWhite", "ON", "AI plays White")

	GameUid = message.NewGameUid()
)

func main() {
	flag.Parse()

	var c Config
	conf.MustLoad(*configFile, &c)
	logx.MustSetup(c.Log)
	defer logx.Close()

	if c.Pprof != "" {
		pprof.Start(c.Pprof)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ai := map[othello.Player]bool{
		othello.Black: bool(model.NewConfig(*AIBlackConf)),
		othello.White: bool(model.NewConfig(*AIWhiteConf)),
	}

	recorder := NewRecorder(ctx, c, GameUid)
	defer recorder.Close()

	game := NewGame(ctx, c, GameUid, ai, recorder, os.Stdout)
	if err := game.Run(os.Stdin); err != nil && ctx.Err() == nil {
		logx.Errorf("game %s stopped: %v", GameUid, err)
	}
}
