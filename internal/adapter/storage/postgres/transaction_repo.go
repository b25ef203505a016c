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

// TransactionRepo implements ports.TransactionRepository over the durable
// payment history.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const transactionColumns = `id, user_id, business_id, amount, service_fee, total, token_coverage, fiat_amount, currency, wallet_id, note, status, created_at`

// Create inserts a settled payment record.
func (r *TransactionRepo) Create(ctx context.Context, t *domain.TransactionRecord) error {
	query := `INSERT INTO transactions (id, user_id, business_id, amount, service_fee, total, token_coverage, fiat_amount, currency, wallet_id, note, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.UserID, t.BusinessID,
		t.Amount.String(), t.ServiceFee.String(), t.Total.String(),
		t.TokenCoverage.String(), t.FiatAmount.String(), t.Currency,
		t.WalletID, t.Note, string(t.Status), t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID fetches a transaction record by UUID.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TransactionRecord, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	return scanTransactionRecord(r.pool.QueryRow(ctx, query, id))
}

// ListByUser fetches a user's transactions newest first with pagination.
func (r *TransactionRepo) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]domain.TransactionRecord, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var records []domain.TransactionRecord
	for rows.Next() {
		t, err := scanTransactionRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, *t)
	}
	return records, total, rows.Err()
}

func scanTransactionRecord(row pgx.Row) (*domain.TransactionRecord, error) {
	t := &domain.TransactionRecord{}
	var amount, serviceFee, total, tokenCoverage, fiatAmount, status string

	err := row.Scan(
		&t.ID, &t.UserID, &t.BusinessID, &amount, &serviceFee, &total,
		&tokenCoverage, &fiatAmount, &t.Currency, &t.WalletID, &t.Note,
		&status, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}

	t.Status = domain.TransactionStatus(status)
	if t.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse amount: %w", err)
	}
	if t.ServiceFee, err = decimal.NewFromString(serviceFee); err != nil {
		return nil, fmt.Errorf("parse service fee: %w", err)
	}
	if t.Total, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if t.TokenCoverage, err = decimal.NewFromString(tokenCoverage); err != nil {
		return nil, fmt.Errorf("parse token coverage: %w", err)
	}
	if t.FiatAmount, err = decimal.NewFromString(fiatAmount); err != nil {
		return nil, fmt.Errorf("parse fiat amount: %w", err)
	}
	return t, nil
}
