package redis

import "time"

// Config describes how to reach the Redis server holding cached documents.
type Config struct {
	// ConnectionURL has the form redis://:password@host:6379/0.
	ConnectionURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0" yaml:"url"`
	// KeyPrefix is prepended to document names.
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"wrapkit:doc:" yaml:"key_prefix"`

	// RetryAttempts is the total number of ping attempts.
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3" yaml:"retry_attempts"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s" yaml:"retry_interval"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s" yaml:"connect_timeout"`
}
