package legacy

import (
	"log/slog"
	"strings"
)

// Status codes returned by EmailSDK.SendEmail.
const (
	StatusOK          = 200
	StatusBadRequest  = 400
	StatusServerError = 500
)

// EmailSDK reports delivery with HTTP-like status codes.
type EmailSDK struct {
	logger *slog.Logger
}

// NewEmailSDK creates the SDK. A nil logger means slog.Default().
func NewEmailSDK(logger *slog.Logger) *EmailSDK {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmailSDK{logger: logger}
}

// SendEmail returns 400 for an address without "@" or an empty body, 500
// when the body mentions "fail" in any case, and 200 otherwise.
func (s *EmailSDK) SendEmail(address, body string) int {
	s.logger.Info("[LegacyEmailSDK] Sending email", slog.String("address", address))

	if address == "" || !strings.Contains(address, "@") {
		return StatusBadRequest
	}
	if body == "" {
		return StatusBadRequest
	}
	if strings.Contains(strings.ToLower(body), "fail") {
		return StatusServerError
	}
	return StatusOK
}
