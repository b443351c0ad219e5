// Package payment adapts incompatible payment SDKs to one Processor
// capability and provides the checkout client that depends on it.
//
// BankAdapter converts major currency units to cents for legacy.BankAPI;
// WalletAdapter forwards a fixed currency to legacy.WalletAPI. Both report
// the SDK outcome in-band as a bool.
package payment

import (
	"context"
	"log/slog"
	"math"

	"github.com/dmitrymomot/wrapkit/pkg/access"
	"github.com/dmitrymomot/wrapkit/pkg/legacy"
	"github.com/dmitrymomot/wrapkit/pkg/logger"
)

// DefaultCurrency is used by WalletAdapter when none is given.
const DefaultCurrency = "USD"

// Processor charges an amount in major currency units.
type Processor interface {
	Pay(ctx context.Context, amount float64) bool
}

// Func adapts an ordinary function to Processor.
type Func func(ctx context.Context, amount float64) bool

func (f Func) Pay(ctx context.Context, amount float64) bool { return f(ctx, amount) }

// ToMinorUnits converts a major-unit amount to minor units, rounding half
// away from zero.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// BankAdapter exposes legacy.BankAPI as a Processor.
type BankAdapter struct {
	api *legacy.BankAPI
}

func NewBankAdapter(api *legacy.BankAPI) *BankAdapter {
	return &BankAdapter{api: api}
}

// Pay succeeds only when the bank answers "OK".
func (a *BankAdapter) Pay(_ context.Context, amount float64) bool {
	return a.api.MakePayment(ToMinorUnits(amount)) == legacy.BankOK
}

// WalletAdapter exposes legacy.WalletAPI as a Processor.
type WalletAdapter struct {
	api      *legacy.WalletAPI
	currency string
}

// NewWalletAdapter creates the adapter. An empty currency means DefaultCurrency.
func NewWalletAdapter(api *legacy.WalletAPI, currency string) *WalletAdapter {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &WalletAdapter{api: api, currency: currency}
}

// Pay succeeds only when the wallet status is "success".
func (a *WalletAdapter) Pay(_ context.Context, amount float64) bool {
	return a.api.SendMoney(amount, a.currency).Status == legacy.WalletStatusSuccess
}

// WithAccessControl returns false without calling next when policy denies.
func WithAccessControl(next Processor, policy access.Policy) Processor {
	return Func(func(ctx context.Context, amount float64) bool {
		if !policy.Allow(ctx) {
			return false
		}
		return next.Pay(ctx, amount)
	})
}

// WithLogging logs the amount before and the outcome after delegating once.
// A nil logger means slog.Default().
func WithLogging(next Processor, log *slog.Logger) Processor {
	if log == nil {
		log = slog.Default()
	}
	return Func(func(ctx context.Context, amount float64) bool {
		ctx, _ = logger.EnsureCallID(ctx)
		log.InfoContext(ctx, "Processing payment", logger.Component("logging"), logger.Amount(amount))
		ok := next.Pay(ctx, amount)
		log.InfoContext(ctx, "Payment call finished", logger.Component("logging"), logger.Outcome(ok))
		return ok
	})
}

// CheckoutService is client code that depends only on Processor.
type CheckoutService struct {
	processor Processor
	logger    *slog.Logger
}

// NewCheckoutService creates the service. A nil logger means slog.Default().
func NewCheckoutService(p Processor, log *slog.Logger) *CheckoutService {
	if log == nil {
		log = slog.Default()
	}
	return &CheckoutService{processor: p, logger: log}
}

// Checkout charges amount and reports the outcome.
func (s *CheckoutService) Checkout(ctx context.Context, amount float64) bool {
	if s.processor.Pay(ctx, amount) {
		s.logger.InfoContext(ctx, "Payment successful", logger.Amount(amount))
		return true
	}
	s.logger.WarnContext(ctx, "Payment failed", logger.Amount(amount))
	return false
}
