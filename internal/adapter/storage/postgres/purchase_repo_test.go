package postgres

import (
	"context"
	"testing"
	"time"

	"tokenpay-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func purchaseTestColumns() []string {
	return []string{"id", "user_id", "tokens", "cost_per_token", "total_cost", "currency", "purchase_date", "status", "transaction_id", "certificate_url", "recurring_id", "created_at"}
}

func TestPurchaseRepo_CreateAndGet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPurchaseRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.NewTokenPurchase(uuid.New(), decimal.RequireFromString("10"), decimal.RequireFromString("1.00"), "USD", now)

	mock.ExpectExec("INSERT INTO token_purchases").
		WithArgs(p.ID, p.UserID, "10", "1.00", "10.00", "USD", p.PurchaseDate,
			string(p.Status), (*uuid.UUID)(nil), (*string)(nil), (*uuid.UUID)(nil), p.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), p))

	mock.ExpectQuery("SELECT .+ FROM token_purchases WHERE id").
		WithArgs(p.ID).
		WillReturnRows(pgxmock.NewRows(purchaseTestColumns()).AddRow(
			p.ID, p.UserID, p.Tokens.String(), p.CostPerToken.String(), p.TotalCost.String(),
			p.Currency, p.PurchaseDate, string(p.Status), p.TransactionID,
			p.CertificateURL, p.RecurringID, p.CreatedAt,
		))

	result, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.PurchaseStatusPending, result.Status)
	assert.True(t, result.TotalCost.Equal(p.TotalCost))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchaseRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPurchaseRepo(mock)
	id := uuid.New()
	txID := uuid.New()
	cert := "https://certs.example/abc"

	mock.ExpectExec("UPDATE token_purchases").
		WithArgs(string(domain.PurchaseStatusCompleted), &txID, &cert, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateStatus(context.Background(), id, domain.PurchaseStatusCompleted, &txID, &cert)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchaseRepo_UpdateStatus_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPurchaseRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE token_purchases").
		WithArgs(string(domain.PurchaseStatusFailed), (*uuid.UUID)(nil), (*string)(nil), id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateStatus(context.Background(), id, domain.PurchaseStatusFailed, nil, nil)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
