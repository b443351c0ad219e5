package legacy

import "log/slog"

// Bank responses.
const (
	BankOK       = "OK"
	BankDeclined = "DECLINED"
)

// BankMaxCents is the largest single payment the bank accepts.
const BankMaxCents = 100_000

// BankAPI charges amounts expressed in cents.
type BankAPI struct {
	logger *slog.Logger
}

// NewBankAPI creates the SDK. A nil logger means slog.Default().
func NewBankAPI(logger *slog.Logger) *BankAPI {
	if logger == nil {
		logger = slog.Default()
	}
	return &BankAPI{logger: logger}
}

// MakePayment declines non-positive amounts and amounts above BankMaxCents.
func (b *BankAPI) MakePayment(cents int64) string {
	b.logger.Info("[LegacyBankAPI] Processing payment", slog.Int64("cents", cents))

	if cents <= 0 || cents > BankMaxCents {
		return BankDeclined
	}
	return BankOK
}
