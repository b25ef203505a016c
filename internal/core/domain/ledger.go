package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TokenTransactionType classifies a token ledger movement.
type TokenTransactionType string

const (
	TokenTxPurchase   TokenTransactionType = "PURCHASE"
	TokenTxTransfer   TokenTransactionType = "TRANSFER"
	TokenTxReward     TokenTransactionType = "REWARD"
	TokenTxRedemption TokenTransactionType = "REDEMPTION"
)

// IsCredit reports whether this movement increases the token balance.
// Purchases and rewards are credits; transfers and redemptions are debits.
func (t TokenTransactionType) IsCredit() bool {
	return t == TokenTxPurchase || t == TokenTxReward
}

// Signed applies the movement direction to an unsigned token quantity.
func (t TokenTransactionType) Signed(tokens decimal.Decimal) decimal.Decimal {
	if t.IsCredit() {
		return tokens
	}
	return tokens.Neg()
}

// TokenLedgerEntry is an immutable, append-only record of a token balance
// change. Balance is the running total after this entry, computed at write
// time from the prior last entry for the user. The current balance for a user
// is the balance of the chronologically last entry.
type TokenLedgerEntry struct {
	ID                uuid.UUID            `json:"id"`
	UserID            uuid.UUID            `json:"user_id"`
	TransactionType   TokenTransactionType `json:"transaction_type"`
	Tokens            decimal.Decimal      `json:"tokens"` // unsigned magnitude; direction from TransactionType
	Balance           decimal.Decimal      `json:"balance"`
	Date              time.Time            `json:"date"`
	Description       string               `json:"description"`
	RelatedPurchaseID *uuid.UUID           `json:"related_purchase_id,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
}

// ReplayBalances recomputes the running balance over entries sorted by date
// ascending and reports whether every stored balance matches. Used to audit
// the append-only invariant.
func ReplayBalances(entries []TokenLedgerEntry) (decimal.Decimal, bool) {
	balance := decimal.Zero
	for _, e := range entries {
		balance = balance.Add(e.TransactionType.Signed(e.Tokens))
		if !balance.Equal(e.Balance) {
			return balance, false
		}
	}
	return balance, true
}
