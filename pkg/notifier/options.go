package notifier

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/wrapkit/pkg/backoff"
)

// Observer receives the elapsed time and outcome of every timed call.
type Observer func(elapsed time.Duration, ok bool)

type options struct {
	logger   *slog.Logger
	backoff  backoff.Strategy
	observer Observer
}

// Option configures a wrapper. Options that do not apply to a wrapper are ignored.
type Option func(*options)

// WithLogger sets the logger used by the wrapper. Nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBackoff sets the delay strategy between retry attempts.
func WithBackoff(s backoff.Strategy) Option {
	return func(o *options) {
		if s != nil {
			o.backoff = s
		}
	}
}

// WithObserver registers a callback invoked by the timing wrapper after each call.
func WithObserver(fn Observer) Option {
	return func(o *options) {
		o.observer = fn
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:  slog.Default(),
		backoff: backoff.None{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}
