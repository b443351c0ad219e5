package notifier

import (
	"context"

	"github.com/dmitrymomot/wrapkit/pkg/access"
)

type accessNotifier struct {
	next   Notifier
	policy access.Policy
}

// NewAccessControl returns false without calling next when policy denies
// the call; otherwise it delegates exactly once.
func NewAccessControl(next Notifier, policy access.Policy) Notifier {
	return &accessNotifier{next: next, policy: policy}
}

func (a *accessNotifier) Send(ctx context.Context, recipient, message string) bool {
	if !a.policy.Allow(ctx) {
		return false
	}
	return a.next.Send(ctx, recipient, message)
}
