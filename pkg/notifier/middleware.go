package notifier

import (
	"log/slog"

	"github.com/dmitrymomot/wrapkit/pkg/access"
	"github.com/dmitrymomot/wrapkit/pkg/backoff"
	"github.com/dmitrymomot/wrapkit/pkg/chain"
)

// Wrapper names understood by NewRegistry.
const (
	WrapperLogging = "logging"
	WrapperRetry   = "retry"
	WrapperTiming  = "timing"
	WrapperAccess  = "access"
)

// Logging returns NewLogging as a chain middleware.
func Logging(opts ...Option) chain.Middleware[Notifier] {
	return func(next Notifier) Notifier { return NewLogging(next, opts...) }
}

// Retry returns NewRetry as a chain middleware.
func Retry(attempts int, opts ...Option) chain.Middleware[Notifier] {
	return func(next Notifier) Notifier { return NewRetry(next, attempts, opts...) }
}

// Timing returns NewTiming as a chain middleware.
func Timing(opts ...Option) chain.Middleware[Notifier] {
	return func(next Notifier) Notifier { return NewTiming(next, opts...) }
}

// AccessControl returns NewAccessControl as a chain middleware.
func AccessControl(policy access.Policy) chain.Middleware[Notifier] {
	return func(next Notifier) Notifier { return NewAccessControl(next, policy) }
}

// NewRegistry registers every notifier wrapper configured from cfg. The
// "access" wrapper reads the caller's role from the context and requires
// cfg.RequiredRole.
func NewRegistry(cfg chain.Config, log *slog.Logger) (*chain.Registry[Notifier], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var strategy backoff.Strategy = backoff.None{}
	if cfg.RetryDelay > 0 {
		strategy = backoff.Constant{Interval: cfg.RetryDelay}
	}
	required := cfg.RequiredRole
	if required == "" {
		required = access.DefaultRequiredRole
	}

	return chain.NewRegistry[Notifier]().
		Register(WrapperLogging, Logging(WithLogger(log))).
		Register(WrapperRetry, Retry(cfg.RetryAttempts, WithLogger(log), WithBackoff(strategy))).
		Register(WrapperTiming, Timing(WithLogger(log))).
		Register(WrapperAccess, AccessControl(access.RequireContextRole(required))), nil
}

// Build assembles cfg.Wrappers around terminal, outermost first.
func Build(terminal Notifier, cfg chain.Config, log *slog.Logger) (Notifier, error) {
	reg, err := NewRegistry(cfg, log)
	if err != nil {
		return nil, err
	}
	return reg.Build(terminal, cfg.Wrappers)
}
