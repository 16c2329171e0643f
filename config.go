package main

import (
	"time"

	"github.com/HuXin0817/othello/pkg/assess"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	Name string `json:",default=othello"`
	Log  logx.LogConf

	TimeLimit       time.Duration `json:",default=30s"`
	SafetyMargin    time.Duration `json:",default=300ms"`
	MaxDepth        int           `json:",optional"`
	NextDepthFactor float64       `json:",default=1.5"`
	Weights         assess.Weights
	Countdown       bool `json:",default=true"`
	Colors          bool `json:",default=true"`

	Redis     redis.RedisConf `json:",optional"`
	MongoConf struct {
		Url          string `json:",optional"`
		DataBaseName string `json:",default=othello"`
	} `json:"Mongo,optional"`
	PushInterval time.Duration `json:",default=1s"`

	Pprof string `json:",optional"`
}

func (c Config) ControllerOptions() []assess.Option {
	return []assess.Option{
		assess.WithEvaluator(assess.NewEvaluator(c.Weights)),
		assess.WithSafetyMargin(c.SafetyMargin),
		assess.WithMaxDepth(c.MaxDepth),
		assess.WithNextDepthFactor(c.NextDepthFactor),
	}
}
