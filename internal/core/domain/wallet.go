package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletKind classifies a funding source.
type WalletKind string

const (
	WalletKindPrimary    WalletKind = "PRIMARY"
	WalletKindToken      WalletKind = "TOKEN"
	WalletKindBankAcct   WalletKind = "BANK_ACCOUNT"
	WalletKindCreditCard WalletKind = "CREDIT_CARD"
)

// Wallet represents a user funding source with a fiat or token balance.
// Wallets are created by account provisioning and mutated only by settlement
// application; they are deactivated rather than deleted.
type Wallet struct {
	ID               uuid.UUID        `json:"id"`
	UserID           uuid.UUID        `json:"user_id"`
	Kind             WalletKind       `json:"kind"`
	Currency         string           `json:"currency"` // fiat code or token symbol
	Balance          decimal.Decimal  `json:"balance"`
	AvailableBalance *decimal.Decimal `json:"available_balance,omitempty"` // hold override, <= Balance when set
	IsActive         bool             `json:"is_active"`
	IsDefault        bool             `json:"is_default"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// Available returns the spendable balance: the hold override when present,
// otherwise the full balance.
func (w *Wallet) Available() decimal.Decimal {
	if w.AvailableBalance != nil {
		return *w.AvailableBalance
	}
	return w.Balance
}

// EligibleFor reports whether this wallet can fund at least minAvailable in the
// given currency. Token wallets are never eligible as a payment method; token
// coverage is applied separately.
func (w *Wallet) EligibleFor(currency string, minAvailable decimal.Decimal) bool {
	return w.IsActive &&
		w.Kind != WalletKindToken &&
		w.Currency == currency &&
		w.Available().GreaterThanOrEqual(minAvailable)
}
