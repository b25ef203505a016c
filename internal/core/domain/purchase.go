package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseStatus is the lifecycle state of a token purchase.
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "PENDING"
	PurchaseStatusCompleted PurchaseStatus = "COMPLETED"
	PurchaseStatusFailed    PurchaseStatus = "FAILED"
)

// TokenPurchase is one acquisition of loyalty tokens at the fixed catalog
// price. CertificateURL is issued only when the purchase completes.
type TokenPurchase struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	Tokens         decimal.Decimal `json:"tokens"` // > 0
	CostPerToken   decimal.Decimal `json:"cost_per_token"`
	TotalCost      decimal.Decimal `json:"total_cost"` // Tokens * CostPerToken
	Currency       string          `json:"currency"`
	PurchaseDate   time.Time       `json:"purchase_date"`
	Status         PurchaseStatus  `json:"status"`
	TransactionID  *uuid.UUID      `json:"transaction_id,omitempty"`
	CertificateURL *string         `json:"certificate_url,omitempty"`
	RecurringID    *uuid.UUID      `json:"recurring_id,omitempty"` // set when synthesized by the scheduler
	CreatedAt      time.Time       `json:"created_at"`
}

// NewTokenPurchase builds a pending purchase at the catalog price.
func NewTokenPurchase(userID uuid.UUID, tokens, costPerToken decimal.Decimal, currency string, at time.Time) *TokenPurchase {
	return &TokenPurchase{
		ID:           uuid.New(),
		UserID:       userID,
		Tokens:       tokens,
		CostPerToken: costPerToken,
		TotalCost:    tokens.Mul(costPerToken),
		Currency:     currency,
		PurchaseDate: at,
		Status:       PurchaseStatusPending,
		CreatedAt:    at,
	}
}
