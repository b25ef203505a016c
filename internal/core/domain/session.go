package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SessionStep is the discriminator of the payment session state machine.
// Steps advance in fixed order; no skipping forward without validation.
type SessionStep string

const (
	StepSelectBusiness SessionStep = "SELECT_BUSINESS"
	StepAmount         SessionStep = "AMOUNT"
	StepPaymentMethod  SessionStep = "PAYMENT_METHOD"
	StepReview         SessionStep = "REVIEW"
	StepProcessing     SessionStep = "PROCESSING"
	StepSuccess        SessionStep = "SUCCESS"
)

// PaymentSession is a single in-flight consumer-to-business payment.
// It is interaction-scoped: never persisted mid-flow; the durable artifact it
// produces on success is the TransactionRecord.
type PaymentSession struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"user_id"`
	Step             SessionStep     `json:"step"`
	BusinessID       *uuid.UUID      `json:"business_id,omitempty"`
	DeepLinked       bool            `json:"deep_linked"` // business pre-selected at entry
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	UseTokenCoverage bool            `json:"use_token_coverage"`
	SelectedWalletID *uuid.UUID      `json:"selected_wallet_id,omitempty"`
	Note             *string         `json:"note,omitempty"`
	Quote            *FeeQuote       `json:"quote,omitempty"`
	Coverage         *CoverageResult `json:"coverage,omitempty"`
	EligibleWallets  []Wallet        `json:"eligible_wallets,omitempty"`
	TransactionID    *uuid.UUID      `json:"transaction_id,omitempty"` // non-nil iff Step == SUCCESS
	Attempts         int             `json:"attempts"`                 // settlement attempts so far
	LastError        *string         `json:"last_error,omitempty"`     // attached on return from PROCESSING
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// IsTerminal reports whether the session reached its final state.
func (s *PaymentSession) IsTerminal() bool {
	return s.Step == StepSuccess
}

// AcceptsInput reports whether user mutations are allowed. PROCESSING is a
// commit point: no input is handled until a terminal outcome or a return to
// REVIEW with an error.
func (s *PaymentSession) AcceptsInput() bool {
	return s.Step != StepProcessing && s.Step != StepSuccess
}

// RemainingFiat returns the fiat share still payable, or the full total when
// no coverage has been computed yet.
func (s *PaymentSession) RemainingFiat() decimal.Decimal {
	if s.Coverage != nil {
		return s.Coverage.RemainingFiat
	}
	if s.Quote != nil {
		return s.Quote.Total
	}
	return s.Amount
}

// WalletEligible reports whether the given wallet is in the current eligible set.
func (s *PaymentSession) WalletEligible(walletID uuid.UUID) bool {
	for _, w := range s.EligibleWallets {
		if w.ID == walletID {
			return true
		}
	}
	return false
}
