package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/organicstore/storefront/internal/constants"
	inOtel "github.com/organicstore/storefront/internal/otel"
)

type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) RedisKV {
	return RedisKV{client: client}
}

func (s RedisKV) Get(c context.Context, key string) (string, error) {
	c, span := inOtel.Tracer.Start(c, "RedisKV Get")
	defer span.End()

	value, err := s.client.Get(c, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyMissing
		}
		err = fmt.Errorf("failed getting key=%s with error=%w", key, err)
		inOtel.RecordError(err, span)
		return "", err
	}
	return value, nil
}

func (s RedisKV) Set(c context.Context, key string, value string) error {
	c, span := inOtel.Tracer.Start(c, "RedisKV Set")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "RedisKV Set").
		Str(constants.KEY_STORAGE_KEY, key).
		Logger()

	err := s.client.Set(c, key, value, 0).Err()
	if err != nil {
		err = fmt.Errorf("failed setting key=%s with error=%w", key, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	return nil
}

func (s RedisKV) Del(c context.Context, key string) error {
	c, span := inOtel.Tracer.Start(c, "RedisKV Del")
	defer span.End()

	err := s.client.Del(c, key).Err()
	if err != nil {
		err = fmt.Errorf("failed deleting key=%s with error=%w", key, err)
		inOtel.RecordError(err, span)
		return err
	}
	return nil
}
