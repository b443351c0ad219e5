package notifier

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/wrapkit/pkg/logger"
)

// Service is client code that depends only on the Notifier capability.
type Service struct {
	notifier Notifier
	logger   *slog.Logger
}

// NewService creates a Service. A nil logger means slog.Default().
func NewService(n Notifier, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{notifier: n, logger: log}
}

// Notify sends message and reports the outcome.
func (s *Service) Notify(ctx context.Context, recipient, message string) bool {
	if s.notifier.Send(ctx, recipient, message) {
		s.logger.InfoContext(ctx, "Notification sent", logger.Recipient(recipient))
		return true
	}
	s.logger.WarnContext(ctx, "Notification failed", logger.Recipient(recipient))
	return false
}
