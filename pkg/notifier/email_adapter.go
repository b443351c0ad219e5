package notifier

import (
	"context"

	"github.com/dmitrymomot/wrapkit/pkg/legacy"
)

// EmailAdapter exposes legacy.EmailSDK as a Notifier.
type EmailAdapter struct {
	sdk *legacy.EmailSDK
}

// NewEmailAdapter wraps sdk without modifying it.
func NewEmailAdapter(sdk *legacy.EmailSDK) *EmailAdapter {
	return &EmailAdapter{sdk: sdk}
}

// Send maps status 200 to true; 400, 500 and any undocumented code are failures.
func (a *EmailAdapter) Send(_ context.Context, recipient, message string) bool {
	return a.sdk.SendEmail(recipient, message) == legacy.StatusOK
}
