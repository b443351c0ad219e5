// Package logger builds *slog.Logger instances for wrapkit chains and
// provides the attribute helpers every wrapper uses, so log keys stay
// identical no matter which chain emitted the record.
//
// New creates a logger configured by functional options: output format
// (text or json), minimum level, static attributes and ContextExtractor
// callbacks. The concrete slog handler is wrapped by a context handler
// which runs the extractors on every record. The default extractors inject
// the chain call id (see WithCallID) so that the "before" and "after"
// records written by different wrappers of one invocation can be correlated.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "notifications"),
//	)
//	logger.SetAsDefault(log)
//
//	ctx := logger.WithCallID(context.Background(), logger.NewCallID())
//	log.InfoContext(ctx, "sending notification",
//	    logger.Recipient("user@example.com"),
//	    logger.Attempt(1),
//	)
//
// # Error Handling
//
// Error produces an attribute only when the supplied error is non-nil:
//
//	log.Info("processed", logger.Error(err))
package logger
