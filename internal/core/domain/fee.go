package domain

import "github.com/shopspring/decimal"

// FeeQuote is an immutable fee breakdown for a payable amount. It is recomputed
// whenever the amount, currency, or waiver status changes.
type FeeQuote struct {
	Amount     decimal.Decimal `json:"amount"`
	ServiceFee decimal.Decimal `json:"service_fee"`
	Total      decimal.Decimal `json:"total"` // Amount + ServiceFee
}

// NewFeeQuote builds a quote, deriving Total from the parts.
func NewFeeQuote(amount, serviceFee decimal.Decimal) FeeQuote {
	return FeeQuote{
		Amount:     amount,
		ServiceFee: serviceFee,
		Total:      amount.Add(serviceFee),
	}
}
