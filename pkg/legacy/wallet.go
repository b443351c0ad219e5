package legacy

import (
	"fmt"
	"log/slog"
)

// Wallet response statuses and reasons.
const (
	WalletStatusSuccess = "success"
	WalletStatusError   = "error"

	WalletReasonInvalidAmount       = "invalid_amount"
	WalletReasonUnsupportedCurrency = "unsupported_currency"
	WalletReasonLimitExceeded       = "limit_exceeded"
)

// WalletLimit is the largest single transfer in major units.
const WalletLimit = 5000

// WalletResponse is the wallet's response record.
type WalletResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// WalletAPI transfers money in major currency units; only USD is supported.
type WalletAPI struct {
	logger *slog.Logger
}

// NewWalletAPI creates the SDK. A nil logger means slog.Default().
func NewWalletAPI(logger *slog.Logger) *WalletAPI {
	if logger == nil {
		logger = slog.Default()
	}
	return &WalletAPI{logger: logger}
}

// SendMoney validates amount, currency and the transfer limit, in that order.
func (w *WalletAPI) SendMoney(amount float64, currency string) WalletResponse {
	w.logger.Info("[WalletAPI] Sending money", slog.String("amount", fmt.Sprintf("%.2f %s", amount, currency)))

	switch {
	case amount <= 0:
		return WalletResponse{Status: WalletStatusError, Reason: WalletReasonInvalidAmount}
	case currency != "USD":
		return WalletResponse{Status: WalletStatusError, Reason: WalletReasonUnsupportedCurrency}
	case amount > WalletLimit:
		return WalletResponse{Status: WalletStatusError, Reason: WalletReasonLimitExceeded}
	}
	return WalletResponse{Status: WalletStatusSuccess}
}
