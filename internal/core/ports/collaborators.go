package ports

import (
	"context"
	"time"

	"tokenpay-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeeEngine quotes the service fee for a payable amount. It must be
// deterministic for identical inputs: a session re-quotes on every amount edit.
type FeeEngine interface {
	Quote(ctx context.Context, amount decimal.Decimal, currency string, hasWaiverSubscription bool) (domain.FeeQuote, error)
}

// SubscriptionStatus reports whether a user holds a fee-waiver subscription.
// Queried once per session quote.
type SubscriptionStatus interface {
	HasWaiver(ctx context.Context, userID uuid.UUID) (bool, error)
}

// ChargeRequest is the input to the settlement gateway.
type ChargeRequest struct {
	IdempotencyKey string
	WalletID       uuid.UUID
	Amount         decimal.Decimal
	Currency       string
	Metadata       map[string]string
}

// ChargeResult is the gateway's settlement outcome.
type ChargeResult struct {
	TransactionID uuid.UUID
}

// SettlementGateway is the only collaborator that moves real money. It must be
// called at most once per idempotency key and its result is the sole trigger
// for a session reaching SUCCESS.
type SettlementGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// BusinessSummary is the directory's read-only view of a payee business.
type BusinessSummary struct {
	ID       uuid.UUID
	Name     string
	Category string
}

// BusinessDirectory resolves payee businesses. Lookup failure means the
// business does not exist.
type BusinessDirectory interface {
	Lookup(ctx context.Context, businessID uuid.UUID) (*BusinessSummary, error)
}

// Clock is injected for testability of schedule computation and trigger
// evaluation.
type Clock interface {
	Now() time.Time
}

// CertificateIssuer issues a purchase certificate. Invoked only when a token
// purchase transitions to COMPLETED.
type CertificateIssuer interface {
	Issue(ctx context.Context, tokenPurchaseID uuid.UUID) (string, error)
}
