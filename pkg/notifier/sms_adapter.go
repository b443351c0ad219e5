package notifier

import (
	"context"

	"github.com/dmitrymomot/wrapkit/pkg/legacy"
)

// SMSAdapter exposes legacy.SMSGateway as a Notifier; recipient is the phone number.
type SMSAdapter struct {
	gateway *legacy.SMSGateway
}

// NewSMSAdapter wraps gateway without modifying it.
func NewSMSAdapter(gateway *legacy.SMSGateway) *SMSAdapter {
	return &SMSAdapter{gateway: gateway}
}

// Send reports the gateway's ok flag. A record with an error value is a
// failure even if ok is set.
func (a *SMSAdapter) Send(_ context.Context, recipient, message string) bool {
	res := a.gateway.Transmit(recipient, message)
	return res.OK && res.Error == ""
}
