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

// PurchaseRepo implements ports.PurchaseRepository.
type PurchaseRepo struct {
	pool Pool
}

// NewPurchaseRepo creates a new PurchaseRepo.
func NewPurchaseRepo(pool Pool) *PurchaseRepo {
	return &PurchaseRepo{pool: pool}
}

const purchaseColumns = `id, user_id, tokens, cost_per_token, total_cost, currency, purchase_date, status, transaction_id, certificate_url, recurring_id, created_at`

// Create inserts a new token purchase.
func (r *PurchaseRepo) Create(ctx context.Context, p *domain.TokenPurchase) error {
	query := `INSERT INTO token_purchases (id, user_id, tokens, cost_per_token, total_cost, currency, purchase_date, status, transaction_id, certificate_url, recurring_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.UserID, p.Tokens.String(), p.CostPerToken.String(), p.TotalCost.String(),
		p.Currency, p.PurchaseDate, string(p.Status), p.TransactionID,
		p.CertificateURL, p.RecurringID, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert token purchase: %w", err)
	}
	return nil
}

// GetByID fetches a token purchase by UUID.
func (r *PurchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TokenPurchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM token_purchases WHERE id = $1`
	return scanPurchase(r.pool.QueryRow(ctx, query, id))
}

// UpdateStatus moves a purchase through its lifecycle. Nil transaction ID and
// certificate URL leave the stored values untouched.
func (r *PurchaseRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PurchaseStatus, transactionID *uuid.UUID, certificateURL *string) error {
	query := `UPDATE token_purchases
		SET status = $1,
			transaction_id = COALESCE($2, transaction_id),
			certificate_url = COALESCE($3, certificate_url)
		WHERE id = $4`

	tag, err := r.pool.Exec(ctx, query, string(status), transactionID, certificateURL, id)
	if err != nil {
		return fmt.Errorf("update purchase status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("token purchase not found: %s", id)
	}
	return nil
}

func scanPurchase(row pgx.Row) (*domain.TokenPurchase, error) {
	p := &domain.TokenPurchase{}
	var tokens, costPerToken, totalCost, status string

	err := row.Scan(
		&p.ID, &p.UserID, &tokens, &costPerToken, &totalCost,
		&p.Currency, &p.PurchaseDate, &status, &p.TransactionID,
		&p.CertificateURL, &p.RecurringID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan token purchase: %w", err)
	}

	p.Status = domain.PurchaseStatus(status)
	if p.Tokens, err = decimal.NewFromString(tokens); err != nil {
		return nil, fmt.Errorf("parse tokens: %w", err)
	}
	if p.CostPerToken, err = decimal.NewFromString(costPerToken); err != nil {
		return nil, fmt.Errorf("parse cost per token: %w", err)
	}
	if p.TotalCost, err = decimal.NewFromString(totalCost); err != nil {
		return nil, fmt.Errorf("parse total cost: %w", err)
	}
	return p, nil
}
