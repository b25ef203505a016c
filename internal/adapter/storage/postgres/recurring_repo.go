package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tokenpay-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// RecurringRepo implements ports.RecurringRepository.
type RecurringRepo struct {
	pool Pool
}

// NewRecurringRepo creates a new RecurringRepo.
func NewRecurringRepo(pool Pool) *RecurringRepo {
	return &RecurringRepo{pool: pool}
}

const recurringColumns = `id, user_id, tokens_per_purchase, frequency, next_purchase_date, status, payment_method_id, start_date, cancelled_at, created_at, updated_at`

// Create inserts a new recurring purchase.
func (r *RecurringRepo) Create(ctx context.Context, rp *domain.RecurringPurchase) error {
	query := `INSERT INTO recurring_purchases (id, user_id, tokens_per_purchase, frequency, next_purchase_date, status, payment_method_id, start_date, cancelled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		rp.ID, rp.UserID, rp.TokensPerPurchase.String(), string(rp.Frequency),
		rp.NextPurchaseDate, string(rp.Status), rp.PaymentMethodID,
		rp.StartDate, rp.CancelledAt, rp.CreatedAt, rp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert recurring purchase: %w", err)
	}
	return nil
}

// GetByID fetches a recurring purchase by UUID.
func (r *RecurringRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RecurringPurchase, error) {
	query := `SELECT ` + recurringColumns + ` FROM recurring_purchases WHERE id = $1`
	return scanRecurring(r.pool.QueryRow(ctx, query, id))
}

// ListByUser fetches all of a user's recurring purchases, cancelled included.
func (r *RecurringRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.RecurringPurchase, error) {
	query := `SELECT ` + recurringColumns + ` FROM recurring_purchases
		WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list recurring purchases: %w", err)
	}
	defer rows.Close()

	return collectRecurring(rows)
}

// ListDue returns active subscriptions with a due date at or before now.
func (r *RecurringRepo) ListDue(ctx context.Context, now time.Time) ([]domain.RecurringPurchase, error) {
	query := `SELECT ` + recurringColumns + ` FROM recurring_purchases
		WHERE status = 'ACTIVE' AND next_purchase_date <= $1
		ORDER BY next_purchase_date ASC`

	rows, err := r.pool.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("list due recurring purchases: %w", err)
	}
	defer rows.Close()

	return collectRecurring(rows)
}

// Update persists the mutable fields of a recurring purchase.
func (r *RecurringRepo) Update(ctx context.Context, rp *domain.RecurringPurchase) error {
	query := `UPDATE recurring_purchases
		SET tokens_per_purchase = $1, frequency = $2, next_purchase_date = $3,
			status = $4, cancelled_at = $5, updated_at = $6
		WHERE id = $7`

	tag, err := r.pool.Exec(ctx, query,
		rp.TokensPerPurchase.String(), string(rp.Frequency), rp.NextPurchaseDate,
		string(rp.Status), rp.CancelledAt, rp.UpdatedAt, rp.ID,
	)
	if err != nil {
		return fmt.Errorf("update recurring purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recurring purchase not found: %s", rp.ID)
	}
	return nil
}

func collectRecurring(rows pgx.Rows) ([]domain.RecurringPurchase, error) {
	var list []domain.RecurringPurchase
	for rows.Next() {
		rp, err := scanRecurring(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *rp)
	}
	return list, rows.Err()
}

func scanRecurring(row pgx.Row) (*domain.RecurringPurchase, error) {
	rp := &domain.RecurringPurchase{}
	var tokens, frequency, status string

	err := row.Scan(
		&rp.ID, &rp.UserID, &tokens, &frequency, &rp.NextPurchaseDate,
		&status, &rp.PaymentMethodID, &rp.StartDate, &rp.CancelledAt,
		&rp.CreatedAt, &rp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan recurring purchase: %w", err)
	}

	rp.Frequency = domain.Frequency(frequency)
	rp.Status = domain.RecurringStatus(status)
	if rp.TokensPerPurchase, err = decimal.NewFromString(tokens); err != nil {
		return nil, fmt.Errorf("parse tokens per purchase: %w", err)
	}
	return rp, nil
}
