package notifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/wrapkit/pkg/logger"
)

type timingNotifier struct {
	next     Notifier
	logger   *slog.Logger
	observer Observer
}

// NewTiming measures each delegated call, successful or not, and logs the
// elapsed time. The optional observer set with WithObserver receives the
// same measurement.
func NewTiming(next Notifier, opts ...Option) Notifier {
	o := newOptions(opts)
	return &timingNotifier{next: next, logger: o.logger, observer: o.observer}
}

func (t *timingNotifier) Send(ctx context.Context, recipient, message string) bool {
	start := time.Now()
	ok := t.next.Send(ctx, recipient, message)
	elapsed := time.Since(start)

	t.logger.LogAttrs(ctx, slog.LevelInfo, "Execution time",
		logger.Component("timing"),
		logger.Duration(elapsed),
		logger.Outcome(ok),
	)
	if t.observer != nil {
		t.observer(elapsed, ok)
	}
	return ok
}
