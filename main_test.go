package main

import (
	"os"
	"testing"
	"time"

	"github.com/HuXin0817/othello/pkg/assess"
	"github.com/zeromicro/go-zero/core/logx"
)

func TestMain(m *testing.M) {
	logx.Disable()
	os.Exit(m.Run())
}

func testConfig() Config {
	return Config{
		TimeLimit:       10 * time.Second,
		SafetyMargin:    100 * time.Millisecond,
		MaxDepth:        1,
		NextDepthFactor: assess.DefaultNextDepthFactor,
		Weights:         assess.DefaultWeights,
		PushInterval:    time.Hour,
	}
}
