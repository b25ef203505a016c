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

// LedgerRepo implements ports.LedgerRepository over the append-only
// token_ledger table. Rows are inserted, never updated or deleted.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

const ledgerColumns = `id, user_id, transaction_type, tokens, balance, date, description, related_purchase_id, created_at`

// LockUser serializes ledger appends for one user within the transaction.
// A transaction-scoped advisory lock is used because FOR UPDATE on the last
// row cannot serialize two concurrent first appends.
func (r *LedgerRepo) LockUser(ctx context.Context, tx pgx.Tx, userID uuid.UUID) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, userID)
	if err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	return nil
}

// Append inserts one ledger entry within a transaction.
func (r *LedgerRepo) Append(ctx context.Context, tx pgx.Tx, e *domain.TokenLedgerEntry) error {
	query := `INSERT INTO token_ledger (id, user_id, transaction_type, tokens, balance, date, description, related_purchase_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.UserID, string(e.TransactionType), e.Tokens.String(), e.Balance.String(),
		e.Date, e.Description, e.RelatedPurchaseID, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// GetLast returns the chronologically last entry for a user, or nil if the
// ledger is empty.
func (r *LedgerRepo) GetLast(ctx context.Context, userID uuid.UUID) (*domain.TokenLedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM token_ledger
		WHERE user_id = $1 ORDER BY date DESC, created_at DESC LIMIT 1`
	return scanLedgerEntry(r.pool.QueryRow(ctx, query, userID))
}

// GetLastInTx is GetLast inside a transaction holding the user's advisory lock.
func (r *LedgerRepo) GetLastInTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.TokenLedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM token_ledger
		WHERE user_id = $1 ORDER BY date DESC, created_at DESC LIMIT 1`
	return scanLedgerEntry(tx.QueryRow(ctx, query, userID))
}

// List fetches the user's ledger newest first with pagination.
func (r *LedgerRepo) List(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]domain.TokenLedgerEntry, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM token_ledger WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ledger entries: %w", err)
	}

	query := `SELECT ` + ledgerColumns + ` FROM token_ledger
		WHERE user_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.TokenLedgerEntry
	for rows.Next() {
		e, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, *e)
	}
	return entries, total, rows.Err()
}

func scanLedgerEntry(row pgx.Row) (*domain.TokenLedgerEntry, error) {
	e := &domain.TokenLedgerEntry{}
	var txType, tokens, balance string

	err := row.Scan(
		&e.ID, &e.UserID, &txType, &tokens, &balance,
		&e.Date, &e.Description, &e.RelatedPurchaseID, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan ledger entry: %w", err)
	}

	e.TransactionType = domain.TokenTransactionType(txType)
	if e.Tokens, err = decimal.NewFromString(tokens); err != nil {
		return nil, fmt.Errorf("parse tokens: %w", err)
	}
	if e.Balance, err = decimal.NewFromString(balance); err != nil {
		return nil, fmt.Errorf("parse balance: %w", err)
	}
	return e, nil
}
