package main

import (
	"testing"
	"time"

	"github.com/HuXin0817/othello/pkg/assess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/conf"
)

func TestConfigDefaults(t *testing.T) {
	var c Config
	require.NoError(t, conf.LoadFromYamlBytes([]byte("Name: othello\n"), &c))

	assert.Equal(t, 30*time.Second, c.TimeLimit)
	assert.Equal(t, 300*time.Millisecond, c.SafetyMargin)
	assert.Equal(t, 0, c.MaxDepth)
	assert.Equal(t, 1.5, c.NextDepthFactor)
	assert.Equal(t, assess.DefaultWeights, c.Weights)
	assert.True(t, c.Countdown)
	assert.Empty(t, c.Redis.Host)
	assert.Empty(t, c.MongoConf.Url)
	assert.Empty(t, c.Pprof)
}

func TestConfigMongoDefaults(t *testing.T) {
	var c Config
	require.NoError(t, conf.LoadFromYamlBytes([]byte("Mongo:\n  Url: mongodb://127.0.0.1:27017\n"), &c))

	assert.Equal(t, "mongodb://127.0.0.1:27017", c.MongoConf.Url)
	assert.Equal(t, "othello", c.MongoConf.DataBaseName)
}

func TestConfigFile(t *testing.T) {
	var c Config
	require.NoError(t, conf.Load("etc/othello.yaml", &c))

	assert.Equal(t, "othello", c.Name)
	assert.Equal(t, 30*time.Second, c.TimeLimit)
	assert.Equal(t, assess.DefaultWeights, c.Weights)
	assert.Len(t, c.ControllerOptions(), 4)
}
