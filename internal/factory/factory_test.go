package factory

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/azulboard/internal/storage/memory"
	redisstorage "github.com/mcoot/azulboard/internal/storage/redis"
)

func TestNewDefaultsToMemory(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)
	assert.IsType(t, &memory.Storage{}, app.Storage)
	assert.NoError(t, app.Close())
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	_, err := New(Config{StorageType: "sqlite"})
	assert.Error(t, err)
}

func TestNewRedisRequiresConfig(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	assert.Error(t, err)
}

func TestNewWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mr.Addr()

	app, err := New(Config{StorageType: StorageTypeRedis, RedisConfig: &redisCfg})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	record, err := app.SessionController.CreateBoard(context.Background(), "alice")
	require.NoError(t, err)

	stored, err := app.SessionController.GetBoard(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.Player)
	assert.True(t, mr.Exists("azul:board:"+string(record.ID)))
}
