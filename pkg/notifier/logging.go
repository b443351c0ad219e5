package notifier

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/wrapkit/pkg/logger"
)

type loggingNotifier struct {
	next   Notifier
	logger *slog.Logger
}

// NewLogging records the recipient and message before delegating and the
// outcome afterwards. It delegates exactly once and returns next's result.
// A call id is added to the context if the caller did not set one.
func NewLogging(next Notifier, opts ...Option) Notifier {
	o := newOptions(opts)
	return &loggingNotifier{next: next, logger: o.logger}
}

func (l *loggingNotifier) Send(ctx context.Context, recipient, message string) bool {
	ctx, _ = logger.EnsureCallID(ctx)

	l.logger.LogAttrs(ctx, slog.LevelInfo, "Sending notification",
		logger.Component("logging"),
		logger.Recipient(recipient),
		logger.Message(message),
	)

	ok := l.next.Send(ctx, recipient, message)

	level := slog.LevelInfo
	if !ok {
		level = slog.LevelWarn
	}
	l.logger.LogAttrs(ctx, level, "Notification call finished",
		logger.Component("logging"),
		logger.Recipient(recipient),
		logger.Outcome(ok),
	)
	return ok
}
