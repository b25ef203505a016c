package ports

import (
	"context"
	"time"

	"tokenpay-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Service Ports (Business Logic) ---

// WalletLedger is the source of truth for balances: it applies debits, credits
// and token deltas atomically and produces the auditable running-balance view.
type WalletLedger interface {
	// EligibleWallets returns active wallets of the requested currency whose
	// available balance is at least minAvailable, excluding token wallets.
	EligibleWallets(ctx context.Context, userID uuid.UUID, currency string, minAvailable decimal.Decimal) ([]domain.Wallet, error)
	// ApplyDebit atomically checks and decrements a wallet's balance.
	ApplyDebit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) (*domain.Wallet, error)
	// ApplyCredit atomically increments a wallet's balance (settlement application).
	ApplyCredit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) (*domain.Wallet, error)
	// ApplyTokenDelta appends one ledger entry, computing the running balance
	// from the prior last entry for the user. The only way token balance changes.
	ApplyTokenDelta(ctx context.Context, userID uuid.UUID, tokens decimal.Decimal, txType domain.TokenTransactionType, description string, relatedID *uuid.UUID) (*domain.TokenLedgerEntry, error)
	// TokenBalance returns the balance of the chronologically last ledger entry.
	TokenBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	// TokenHistory returns the paginated ledger view for a user.
	TokenHistory(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]domain.TokenLedgerEntry, int64, error)
}

// StartSessionRequest begins a payment session. A non-nil BusinessID models a
// deep-linked entry: the flow starts at the amount step and backing out of it
// exits the flow entirely.
type StartSessionRequest struct {
	UserID     uuid.UUID
	BusinessID *uuid.UUID
	Currency   string
}

// PaymentSessionService drives the step-ordered payment state machine.
type PaymentSessionService interface {
	Start(ctx context.Context, req StartSessionRequest) (*domain.PaymentSession, error)
	Get(ctx context.Context, sessionID uuid.UUID) (*domain.PaymentSession, error)
	SelectBusiness(ctx context.Context, sessionID, businessID uuid.UUID) (*domain.PaymentSession, error)
	SetAmount(ctx context.Context, sessionID uuid.UUID, amount decimal.Decimal) (*domain.PaymentSession, error)
	SetUseTokenCoverage(ctx context.Context, sessionID uuid.UUID, use bool) (*domain.PaymentSession, error)
	SelectWallet(ctx context.Context, sessionID, walletID uuid.UUID) (*domain.PaymentSession, error)
	SetNote(ctx context.Context, sessionID uuid.UUID, note string) (*domain.PaymentSession, error)
	// Next advances one step after validating the current step's guard.
	// Guard failures leave the step unchanged.
	Next(ctx context.Context, sessionID uuid.UUID) (*domain.PaymentSession, error)
	// Back navigates one step backward. A deep-linked session backing out of
	// the amount step exits the flow: the session is discarded and nil returned.
	Back(ctx context.Context, sessionID uuid.UUID) (*domain.PaymentSession, error)
	// Confirm commits the session: REVIEW -> PROCESSING -> SUCCESS, or back to
	// REVIEW with an attached error on settlement failure.
	Confirm(ctx context.Context, sessionID uuid.UUID) (*domain.PaymentSession, error)
	// Abandon discards an in-flight session.
	Abandon(ctx context.Context, sessionID uuid.UUID) error
}

// CreateRecurringRequest sets up a new recurring token purchase.
type CreateRecurringRequest struct {
	UserID            uuid.UUID
	TokensPerPurchase decimal.Decimal
	Frequency         domain.Frequency
	PaymentMethodID   uuid.UUID
}

// EditRecurringRequest updates an active recurring purchase. Nil fields are
// left unchanged. A frequency change re-bases the next purchase date from now.
type EditRecurringRequest struct {
	TokensPerPurchase *decimal.Decimal
	Frequency         *domain.Frequency
}

// RecurringService manages recurring token-purchase subscriptions.
type RecurringService interface {
	Create(ctx context.Context, req CreateRecurringRequest) (*domain.RecurringPurchase, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.RecurringPurchase, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.RecurringPurchase, error)
	Edit(ctx context.Context, id uuid.UUID, req EditRecurringRequest) (*domain.RecurringPurchase, error)
	Pause(ctx context.Context, id uuid.UUID) (*domain.RecurringPurchase, error)
	Resume(ctx context.Context, id uuid.UUID) (*domain.RecurringPurchase, error)
	// Cancel is terminal and idempotent: cancelling twice is a no-op.
	Cancel(ctx context.Context, id uuid.UUID) (*domain.RecurringPurchase, error)
	// Trigger fires one due subscription. Guarded by a per-(subscription,
	// due date) idempotency key; a duplicate trigger is a silent no-op.
	Trigger(ctx context.Context, id uuid.UUID, now time.Time) (*domain.TokenPurchase, error)
	// RunDue triggers every due subscription; for an external cron sweep.
	RunDue(ctx context.Context, now time.Time) (int, error)
}

// TransactionReader exposes the durable payment history.
type TransactionReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]domain.TransactionRecord, int64, error)
}
