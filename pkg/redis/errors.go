package redis

import "errors"

var (
	ErrEmptyConnectionURL = errors.New("redis.errors.empty_connection_url")
	ErrInvalidURL         = errors.New("redis.errors.invalid_url")
	ErrNotReady           = errors.New("redis.errors.not_ready")
	ErrHealthcheckFailed  = errors.New("redis.errors.healthcheck_failed")
)
