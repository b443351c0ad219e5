package notifier

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/wrapkit/pkg/backoff"
	"github.com/dmitrymomot/wrapkit/pkg/logger"
)

type retryNotifier struct {
	next     Notifier
	attempts int
	backoff  backoff.Strategy
	logger   *slog.Logger
}

// NewRetry calls next up to attempts times in total, stopping at the first
// success. attempts below 1 is treated as 1. The delay before each retry
// comes from WithBackoff (none by default); a context cancelled while
// waiting ends the loop with false. Every attempt shares one call id.
func NewRetry(next Notifier, attempts int, opts ...Option) Notifier {
	o := newOptions(opts)
	return &retryNotifier{
		next:     next,
		attempts: max(attempts, 1),
		backoff:  o.backoff,
		logger:   o.logger,
	}
}

func (r *retryNotifier) Send(ctx context.Context, recipient, message string) bool {
	ctx, _ = logger.EnsureCallID(ctx)

	for attempt := 1; attempt <= r.attempts; attempt++ {
		if attempt > 1 {
			if err := backoff.Sleep(ctx, r.backoff.Next(attempt-1)); err != nil {
				r.logger.LogAttrs(ctx, slog.LevelWarn, "Retry aborted",
					logger.Component("retry"),
					logger.Attempt(attempt),
					logger.Error(err),
				)
				return false
			}
		}

		if r.next.Send(ctx, recipient, message) {
			return true
		}

		r.logger.LogAttrs(ctx, slog.LevelDebug, "Notification attempt failed",
			logger.Component("retry"),
			logger.Attempt(attempt),
			logger.MaxAttempts(r.attempts),
		)
	}

	r.logger.LogAttrs(ctx, slog.LevelWarn, "Retries exhausted",
		logger.Component("retry"),
		logger.MaxAttempts(r.attempts),
	)
	return false
}
