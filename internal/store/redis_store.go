package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	redisKeyPrefix     = "peta:store:"
	RedisChangeChannel = "peta:store:changes"
)

// RedisStore shares the store between API, worker and consumer processes.
// Changes are announced on RedisChangeChannel with the key as payload.
type RedisStore struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, logger: zap.L().Named("store.redis")}
}

func RedisKey(key string) string {
	return redisKeyPrefix + key
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, RedisKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, RedisKey(key), value, 0).Err(); err != nil {
		return err
	}
	if err := s.rdb.Publish(ctx, RedisChangeChannel, key).Err(); err != nil {
		// value is already written; subscribers just miss this notification
		s.logger.Warn("publish store change failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}

func (s *RedisStore) Subscribe(ctx context.Context, keys ...string) (<-chan Change, error) {
	pubsub := s.rdb.Subscribe(ctx, RedisChangeChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	sub := &subscription{keys: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		sub.keys[k] = struct{}{}
	}

	out := make(chan Change, subscriberBuffer)
	go func() {
		defer close(out)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				if !sub.wants(msg.Payload) {
					continue
				}
				value, _, err := s.Get(ctx, msg.Payload)
				if err != nil {
					s.logger.Warn("load changed key failed", zap.String("key", msg.Payload), zap.Error(err))
					continue
				}
				select {
				case out <- Change{Key: msg.Payload, Value: value, At: time.Now()}:
				default:
				}
			}
		}
	}()

	return out, nil
}
