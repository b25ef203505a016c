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

func transactionTestColumns() []string {
	return []string{"id", "user_id", "business_id", "amount", "service_fee", "total", "token_coverage", "fiat_amount", "currency", "wallet_id", "note", "status", "created_at"}
}

func newTestTransaction(userID uuid.UUID) *domain.TransactionRecord {
	walletID := uuid.New()
	return &domain.TransactionRecord{
		ID:            uuid.New(),
		UserID:        userID,
		BusinessID:    uuid.New(),
		Amount:        decimal.RequireFromString("100"),
		ServiceFee:    decimal.RequireFromString("3"),
		Total:         decimal.RequireFromString("103"),
		TokenCoverage: decimal.RequireFromString("20"),
		FiatAmount:    decimal.RequireFromString("83"),
		Currency:      "USD",
		WalletID:      &walletID,
		Status:        domain.TransactionStatusSuccess,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func transactionRow(rec *domain.TransactionRecord) *pgxmock.Rows {
	return pgxmock.NewRows(transactionTestColumns()).AddRow(
		rec.ID, rec.UserID, rec.BusinessID,
		rec.Amount.String(), rec.ServiceFee.String(), rec.Total.String(),
		rec.TokenCoverage.String(), rec.FiatAmount.String(), rec.Currency,
		rec.WalletID, rec.Note, string(rec.Status), rec.CreatedAt,
	)
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	rec := newTestTransaction(uuid.New())

	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(rec.ID, rec.UserID, rec.BusinessID, "100", "3", "103", "20", "83",
			rec.Currency, rec.WalletID, (*string)(nil), string(rec.Status), rec.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	rec := newTestTransaction(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE id").
		WithArgs(rec.ID).
		WillReturnRows(transactionRow(rec))

	result, err := repo.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Total.Equal(rec.Total))
	assert.True(t, result.TokenCoverage.Equal(rec.TokenCoverage))
	// The coverage split must still reconcile after a round trip.
	assert.True(t, result.TokenCoverage.Add(result.FiatAmount).Equal(result.Total))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	userID := uuid.New()
	rec := newTestTransaction(userID)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery("SELECT .+ FROM transactions").
		WithArgs(userID, 10, 10).
		WillReturnRows(transactionRow(rec))

	records, total, err := repo.ListByUser(context.Background(), userID, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, records, 1)
	assert.Equal(t, rec.ID, records[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
