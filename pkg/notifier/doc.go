// Package notifier implements the notification send chain.
//
// Notifier is the single capability: Send(ctx, recipient, message) bool.
// Terminal adapters translate foreign SDK contracts into it without adding
// behavior:
//
//   - EmailAdapter over legacy.EmailSDK (status codes, 200 is success)
//   - SMSAdapter over legacy.SMSGateway (ok/error record)
//   - PostmarkAdapter over github.com/mrz1836/postmark (error code 0 is success)
//
// Wrappers each hold exactly one next Notifier and add one behavior:
//
//   - NewLogging logs the call before and the outcome after delegating
//   - NewRetry re-sends up to N total attempts until the first success
//   - NewTiming logs how long the delegate took
//   - NewAccessControl returns false without delegating when its policy denies
//
// Wrappers compose in any order and the outcome of a call does not depend on
// the order; only the observable side effects do. Logging outside Retry sees
// one call per Send, Logging inside Retry sees one call per attempt.
//
//	sdk := legacy.NewEmailSDK(log)
//	n := chain.Chain[notifier.Notifier](notifier.NewEmailAdapter(sdk),
//	    notifier.Timing(notifier.WithLogger(log)),
//	    notifier.Retry(3, notifier.WithLogger(log)),
//	    notifier.Logging(notifier.WithLogger(log)),
//	)
//	notifier.NewService(n, log).Notify(ctx, "user@example.com", "Welcome!")
//
// Build does the same from a chain.Config, so the order can come from the
// environment or a YAML file.
package notifier
