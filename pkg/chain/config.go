package chain

import (
	"fmt"
	"time"
)

// Config describes how a chain is composed. Wrappers are listed outermost first.
type Config struct {
	Wrappers      []string      `env:"WRAPKIT_WRAPPERS" envSeparator:"," envDefault:"timing,retry,logging" yaml:"wrappers"`
	RetryAttempts int           `env:"WRAPKIT_RETRY_ATTEMPTS" envDefault:"3" yaml:"retry_attempts"`
	RetryDelay    time.Duration `env:"WRAPKIT_RETRY_DELAY" envDefault:"0s" yaml:"retry_delay"`
	RequiredRole  string        `env:"WRAPKIT_REQUIRED_ROLE" envDefault:"ADMIN" yaml:"required_role"`
}

// DefaultConfig mirrors the env defaults for callers that do not load config.
func DefaultConfig() Config {
	return Config{
		Wrappers:      []string{"timing", "retry", "logging"},
		RetryAttempts: 3,
		RequiredRole:  "ADMIN",
	}
}

// Validate checks the values wrappers rely on.
func (c Config) Validate() error {
	if c.RetryAttempts < 1 {
		return fmt.Errorf("%w: retry attempts must be at least 1, got %d", ErrInvalidConfig, c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("%w: retry delay must not be negative", ErrInvalidConfig)
	}
	return nil
}
