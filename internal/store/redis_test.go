package store

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func setupRedis(t *testing.T) RedisKV {
	t.Helper()

	c := context.Background()
	container, err := tcRedis.Run(c, "redis:7-alpine")
	if err != nil {
		t.Skipf("skipping redis tests: could not start redis container: %s", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed terminating redis container with error: %s", err)
		}
	})

	connString, err := container.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting redis connection string with error: %s", err)
	}
	opts, err := redis.ParseURL(connString)
	if err != nil {
		t.Fatalf("failed parsing redis connection string with error: %s", err)
	}

	return NewRedisKV(redis.NewClient(opts))
}

func TestRedisKVMissingKey(t *testing.T) {
	kv := setupRedis(t)

	_, err := kv.Get(context.Background(), KEY_USERS)

	assert.ErrorIs(t, err, ErrKeyMissing)
}

func TestRedisKVRoundTrip(t *testing.T) {
	kv := setupRedis(t)
	c := context.Background()

	err := kv.Set(c, KEY_CART, `[{"id":1,"quantity":2}]`)
	assert.NoError(t, err)

	value, err := kv.Get(c, KEY_CART)
	assert.NoError(t, err)
	assert.Equal(t, `[{"id":1,"quantity":2}]`, value)

	err = kv.Del(c, KEY_CART)
	assert.NoError(t, err)

	_, err = kv.Get(c, KEY_CART)
	assert.ErrorIs(t, err, ErrKeyMissing)
}
