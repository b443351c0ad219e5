package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisGetter is the subset of redis.Cmdable the loader calls.
type RedisGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisLoader reads each document from the string value at prefix+name.
type RedisLoader struct {
	client RedisGetter
	prefix string
}

// NewRedisLoader creates the loader. A *redis.Client satisfies RedisGetter.
func NewRedisLoader(client RedisGetter, prefix string) (*RedisLoader, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: redis client is required", ErrInvalidConfig)
	}
	return &RedisLoader{client: client, prefix: prefix}, nil
}

func (l *RedisLoader) Load(ctx context.Context, name string) (*Document, error) {
	if name == "" {
		return nil, ErrInvalidName
	}

	content, err := l.client.Get(ctx, l.prefix+name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrLoadFailed, err)
	}
	return &Document{Name: name, Content: content, LoadedAt: time.Now()}, nil
}
