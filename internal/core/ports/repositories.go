package ports

import (
	"context"
	"time"

	"tokenpay-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID, currency string) ([]domain.Wallet, error)
	UpdateBalances(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance, available decimal.Decimal) error
}

// LedgerRepository defines persistence for the append-only token ledger.
// Entries are never edited in place.
type LedgerRepository interface {
	// LockUser serializes ledger appends for one user within the transaction.
	LockUser(ctx context.Context, tx pgx.Tx, userID uuid.UUID) error
	Append(ctx context.Context, tx pgx.Tx, entry *domain.TokenLedgerEntry) error
	// GetLast returns the chronologically last entry for a user, or nil if none.
	GetLast(ctx context.Context, userID uuid.UUID) (*domain.TokenLedgerEntry, error)
	GetLastInTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.TokenLedgerEntry, error)
	List(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]domain.TokenLedgerEntry, int64, error)
}

// RecurringRepository defines persistence for recurring purchases.
type RecurringRepository interface {
	Create(ctx context.Context, r *domain.RecurringPurchase) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RecurringPurchase, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.RecurringPurchase, error)
	// ListDue returns active subscriptions with a due date at or before now.
	ListDue(ctx context.Context, now time.Time) ([]domain.RecurringPurchase, error)
	Update(ctx context.Context, r *domain.RecurringPurchase) error
}

// PurchaseRepository defines persistence for token purchases.
type PurchaseRepository interface {
	Create(ctx context.Context, p *domain.TokenPurchase) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TokenPurchase, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PurchaseStatus, transactionID *uuid.UUID, certificateURL *string) error
}

// TransactionRepository defines persistence for settled payment records.
type TransactionRepository interface {
	Create(ctx context.Context, rec *domain.TransactionRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TransactionRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]domain.TransactionRecord, int64, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TriggerGuard records trigger idempotency keys so an at-least-once external
// scheduler cannot double-charge a due recurring purchase.
type TriggerGuard interface {
	// Acquire atomically claims a trigger key. Returns true if this caller won
	// the claim, false if the key was already recorded.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}
