package notifier

import "context"

// Notifier is the send capability every chain link implements.
// Failure is reported in-band as false; implementations never panic on
// delivery problems.
type Notifier interface {
	Send(ctx context.Context, recipient, message string) bool
}

// Func adapts an ordinary function to Notifier.
type Func func(ctx context.Context, recipient, message string) bool

func (f Func) Send(ctx context.Context, recipient, message string) bool {
	return f(ctx, recipient, message)
}
