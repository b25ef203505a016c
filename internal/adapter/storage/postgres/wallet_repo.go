package postgres

import (
	"context"
	"errors"
	"fmt"

	"tokenpay-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepo implements ports.WalletRepository. Balances are stored as NUMERIC
// and travel through SQL as decimal strings.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

const walletColumns = `id, user_id, kind, currency, balance, available_balance, is_active, is_default, created_at, updated_at`

// Create inserts a new wallet.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, user_id, kind, currency, balance, available_balance, is_active, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	var available *string
	if w.AvailableBalance != nil {
		s := w.AvailableBalance.String()
		available = &s
	}

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.UserID, string(w.Kind), w.Currency, w.Balance.String(),
		available, w.IsActive, w.IsDefault, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByID fetches a wallet by its UUID (without locking).
func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`
	return scanWallet(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches a wallet by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1 FOR UPDATE`
	return scanWallet(tx.QueryRow(ctx, query, id))
}

// ListActiveByUser fetches a user's active wallets in the given currency,
// default wallet first.
func (r *WalletRepo) ListActiveByUser(ctx context.Context, userID uuid.UUID, currency string) ([]domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets
		WHERE user_id = $1 AND currency = $2 AND is_active = TRUE
		ORDER BY is_default DESC, created_at ASC`

	rows, err := r.pool.Query(ctx, query, userID, currency)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, *w)
	}
	return wallets, rows.Err()
}

// UpdateBalances updates a wallet's balance and available balance within a
// transaction. Callers must hold the row lock taken by GetByIDForUpdate.
func (r *WalletRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance, available decimal.Decimal) error {
	query := `UPDATE wallets SET balance = $1, available_balance = $2, updated_at = NOW() WHERE id = $3`

	tag, err := tx.Exec(ctx, query, balance.String(), available.String(), walletID)
	if err != nil {
		return fmt.Errorf("update wallet balances: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	return nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	var kind, balance string
	var available *string

	err := row.Scan(
		&w.ID, &w.UserID, &kind, &w.Currency, &balance,
		&available, &w.IsActive, &w.IsDefault, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan wallet: %w", err)
	}

	w.Kind = domain.WalletKind(kind)
	w.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("parse balance: %w", err)
	}
	if available != nil {
		d, err := decimal.NewFromString(*available)
		if err != nil {
			return nil, fmt.Errorf("parse available balance: %w", err)
		}
		w.AvailableBalance = &d
	}
	return w, nil
}
