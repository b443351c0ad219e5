package document

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/wrapkit/pkg/access"
	"github.com/dmitrymomot/wrapkit/pkg/chain"
	"github.com/dmitrymomot/wrapkit/pkg/logger"
)

// AccessTimeFormat is the layout of the timestamp in access log messages.
const AccessTimeFormat = time.RFC3339

type accessReader struct {
	next   Reader
	policy access.Policy
}

// NewAccessControl returns AccessDenied without calling next when policy
// denies the call, so nothing downstream is loaded or logged. Otherwise it
// delegates exactly once.
func NewAccessControl(next Reader, policy access.Policy) Reader {
	return &accessReader{next: next, policy: policy}
}

func (a *accessReader) Read(ctx context.Context) string {
	if !a.policy.Allow(ctx) {
		return AccessDenied
	}
	return a.next.Read(ctx)
}

type loggingReader struct {
	next   Reader
	logger *slog.Logger
	now    func() time.Time
}

// NewLogging delegates once and, when the result is document content rather
// than a sentinel, writes exactly one record:
// "Document accessed at <RFC 3339 timestamp>".
func NewLogging(next Reader, opts ...Option) Reader {
	o := newOptions(opts)
	return &loggingReader{next: next, logger: o.logger, now: o.now}
}

func (l *loggingReader) Read(ctx context.Context) string {
	content := l.next.Read(ctx)
	if IsSentinel(content) {
		return content
	}
	attrs := []slog.Attr{logger.Component("logging")}
	if named, ok := l.next.(interface{ Name() string }); ok {
		attrs = append(attrs, logger.Document(named.Name()))
	}
	l.logger.LogAttrs(ctx, slog.LevelInfo, "Document accessed at "+l.now().Format(AccessTimeFormat), attrs...)
	return content
}

// AccessControl returns NewAccessControl as a chain middleware.
func AccessControl(policy access.Policy) chain.Middleware[Reader] {
	return func(next Reader) Reader { return NewAccessControl(next, policy) }
}

// Logging returns NewLogging as a chain middleware.
func Logging(opts ...Option) chain.Middleware[Reader] {
	return func(next Reader) Reader { return NewLogging(next, opts...) }
}
