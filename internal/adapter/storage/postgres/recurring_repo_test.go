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

func recurringTestColumns() []string {
	return []string{"id", "user_id", "tokens_per_purchase", "frequency", "next_purchase_date", "status", "payment_method_id", "start_date", "cancelled_at", "created_at", "updated_at"}
}

func newTestRecurring(userID uuid.UUID) *domain.RecurringPurchase {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.RecurringPurchase{
		ID:                uuid.New(),
		UserID:            userID,
		TokensPerPurchase: decimal.RequireFromString("15"),
		Frequency:         domain.FrequencyMonthly,
		NextPurchaseDate:  now.AddDate(0, 1, 0),
		Status:            domain.RecurringStatusActive,
		PaymentMethodID:   uuid.New(),
		StartDate:         now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func recurringRow(rp *domain.RecurringPurchase) *pgxmock.Rows {
	return pgxmock.NewRows(recurringTestColumns()).AddRow(
		rp.ID, rp.UserID, rp.TokensPerPurchase.String(), string(rp.Frequency),
		rp.NextPurchaseDate, string(rp.Status), rp.PaymentMethodID,
		rp.StartDate, rp.CancelledAt, rp.CreatedAt, rp.UpdatedAt,
	)
}

func TestRecurringRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRecurringRepo(mock)
	rp := newTestRecurring(uuid.New())

	mock.ExpectExec("INSERT INTO recurring_purchases").
		WithArgs(rp.ID, rp.UserID, "15", string(rp.Frequency), rp.NextPurchaseDate,
			string(rp.Status), rp.PaymentMethodID, rp.StartDate, (*time.Time)(nil), rp.CreatedAt, rp.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), rp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecurringRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRecurringRepo(mock)
	rp := newTestRecurring(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM recurring_purchases WHERE id").
		WithArgs(rp.ID).
		WillReturnRows(recurringRow(rp))

	result, err := repo.GetByID(context.Background(), rp.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.FrequencyMonthly, result.Frequency)
	assert.True(t, result.TokensPerPurchase.Equal(rp.TokensPerPurchase))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecurringRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRecurringRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM recurring_purchases WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(recurringTestColumns()))

	result, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecurringRepo_ListDue(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRecurringRepo(mock)
	now := time.Now().UTC()
	rp := newTestRecurring(uuid.New())
	rp.NextPurchaseDate = now.AddDate(0, 0, -1)

	mock.ExpectQuery("SELECT .+ FROM recurring_purchases .+ status = 'ACTIVE' AND next_purchase_date").
		WithArgs(now).
		WillReturnRows(recurringRow(rp))

	due, err := repo.ListDue(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, rp.ID, due[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecurringRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRecurringRepo(mock)
	rp := newTestRecurring(uuid.New())
	cancelled := time.Now().UTC()
	rp.Status = domain.RecurringStatusCancelled
	rp.CancelledAt = &cancelled

	mock.ExpectExec("UPDATE recurring_purchases").
		WithArgs("15", string(rp.Frequency), rp.NextPurchaseDate,
			string(rp.Status), rp.CancelledAt, rp.UpdatedAt, rp.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.Update(context.Background(), rp))
	assert.NoError(t, mock.ExpectationsWereMet())
}
