package legacy

import (
	"log/slog"
	"strings"
)

// Error values carried by SMSResult.
const (
	SMSErrInvalidPhoneNumber = "invalid_phone_number"
	SMSErrEmptyMessage       = "empty_message"
	SMSErrGatewayFailure     = "gateway_failure"
)

// SMSResult is the gateway's response record.
type SMSResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// SMSGateway transmits text messages to E.164-style numbers.
type SMSGateway struct {
	logger *slog.Logger
}

// NewSMSGateway creates the SDK. A nil logger means slog.Default().
func NewSMSGateway(logger *slog.Logger) *SMSGateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &SMSGateway{logger: logger}
}

// Transmit rejects numbers without a leading "+" and empty texts, and
// simulates a gateway failure for texts mentioning "fail".
func (g *SMSGateway) Transmit(phoneNumber, text string) SMSResult {
	g.logger.Info("[SmsGatewaySDK] Sending SMS", slog.String("phone_number", phoneNumber))

	if !strings.HasPrefix(phoneNumber, "+") {
		return SMSResult{Error: SMSErrInvalidPhoneNumber}
	}
	if text == "" {
		return SMSResult{Error: SMSErrEmptyMessage}
	}
	if strings.Contains(strings.ToLower(text), "fail") {
		return SMSResult{Error: SMSErrGatewayFailure}
	}
	return SMSResult{OK: true}
}
