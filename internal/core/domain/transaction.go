package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus is the final disposition of a settled payment.
type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFailed  TransactionStatus = "FAILED"
)

// TransactionRecord is the durable artifact produced by a completed payment
// session: the full fee and coverage breakdown plus the gateway reference.
type TransactionRecord struct {
	ID            uuid.UUID         `json:"id"` // gateway-issued transaction ID
	UserID        uuid.UUID         `json:"user_id"`
	BusinessID    uuid.UUID         `json:"business_id"`
	Amount        decimal.Decimal   `json:"amount"`
	ServiceFee    decimal.Decimal   `json:"service_fee"`
	Total         decimal.Decimal   `json:"total"`
	TokenCoverage decimal.Decimal   `json:"token_coverage"`
	FiatAmount    decimal.Decimal   `json:"fiat_amount"`
	Currency      string            `json:"currency"`
	WalletID      *uuid.UUID        `json:"wallet_id,omitempty"` // nil when tokens covered the full total
	Note          *string           `json:"note,omitempty"`
	Status        TransactionStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}
