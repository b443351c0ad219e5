package redis

import (
	"github.com/dmitrymomot/wrapkit/pkg/document"
)

// DocumentLoader returns a document loader reading keys under cfg.KeyPrefix.
func DocumentLoader(client document.RedisGetter, cfg Config) (*document.RedisLoader, error) {
	return document.NewRedisLoader(client, cfg.KeyPrefix)
}
