package service

import (
	"context"
	"fmt"

	"tokenpay-core/internal/core/domain"
	"tokenpay-core/pkg/apperror"

	"github.com/shopspring/decimal"
)

// DefaultFeeEngine implements ports.FeeEngine with a flat + percentage rule:
// fee = flat + amount * percent, rounded to cents, waived entirely for users
// holding a waiver subscription.
type DefaultFeeEngine struct {
	flat    decimal.Decimal
	percent decimal.Decimal
}

// NewDefaultFeeEngine parses the configured flat fee and percentage fraction.
func NewDefaultFeeEngine(flat, percent string) (*DefaultFeeEngine, error) {
	f, err := decimal.NewFromString(flat)
	if err != nil {
		return nil, fmt.Errorf("parse flat fee %q: %w", flat, err)
	}
	p, err := decimal.NewFromString(percent)
	if err != nil {
		return nil, fmt.Errorf("parse fee percent %q: %w", percent, err)
	}
	if f.IsNegative() || p.IsNegative() {
		return nil, fmt.Errorf("fee parameters must be non-negative: flat=%s percent=%s", flat, percent)
	}
	return &DefaultFeeEngine{flat: f, percent: p}, nil
}

// Quote computes the fee breakdown. Deterministic for identical inputs.
func (e *DefaultFeeEngine) Quote(_ context.Context, amount decimal.Decimal, _ string, hasWaiverSubscription bool) (domain.FeeQuote, error) {
	if !amount.IsPositive() {
		return domain.FeeQuote{}, apperror.ErrInvalidAmount()
	}
	if hasWaiverSubscription {
		return domain.NewFeeQuote(amount, decimal.Zero), nil
	}
	fee := e.flat.Add(amount.Mul(e.percent)).Round(2)
	return domain.NewFeeQuote(amount, fee), nil
}
