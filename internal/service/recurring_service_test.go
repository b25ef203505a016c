package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tokenpay-core/internal/core/domain"
	"tokenpay-core/internal/core/ports"
	"tokenpay-core/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recurringTestDeps struct {
	svc           *RecurringServiceImpl
	recurringRepo *mocks.MockRecurringRepository
	purchaseRepo  *mocks.MockPurchaseRepository
	walletRepo    *mocks.MockWalletRepository
	ledger        *mocks.MockWalletLedger
	gateway       *mocks.MockSettlementGateway
	guard         *mocks.MockTriggerGuard
	certs         *mocks.MockCertificateIssuer
	ctrl          *gomock.Controller
}

var recurringNow = time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC)

func setupRecurringService(t *testing.T) *recurringTestDeps {
	ctrl := gomock.NewController(t)
	d := &recurringTestDeps{
		recurringRepo: mocks.NewMockRecurringRepository(ctrl),
		purchaseRepo:  mocks.NewMockPurchaseRepository(ctrl),
		walletRepo:    mocks.NewMockWalletRepository(ctrl),
		ledger:        mocks.NewMockWalletLedger(ctrl),
		gateway:       mocks.NewMockSettlementGateway(ctrl),
		guard:         mocks.NewMockTriggerGuard(ctrl),
		certs:         mocks.NewMockCertificateIssuer(ctrl),
		ctrl:          ctrl,
	}
	svc, err := NewRecurringService(
		d.recurringRepo, d.purchaseRepo, d.walletRepo, d.ledger,
		d.gateway, d.guard, d.certs,
		fixedClock{t: recurringNow},
		"1.00", "USD", 48*time.Hour, zerolog.Nop(),
	)
	require.NoError(t, err)
	d.svc = svc
	return d
}

// ==================== Create Tests ====================

func TestRecurringService_Create_Success(t *testing.T) {
	d := setupRecurringService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	walletID := uuid.New()

	d.walletRepo.EXPECT().GetByID(ctx, walletID).Return(&domain.Wallet{
		ID: walletID, Kind: domain.WalletKindCreditCard, Currency: "USD", IsActive: true,
	}, nil)
	d.recurringRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	r, err := d.svc.Create(ctx, ports.CreateRecurringRequest{
		UserID:            userID,
		TokensPerPurchase: decimal.RequireFromString("10"),
		Frequency:         domain.FrequencyMonthly,
		PaymentMethodID:   walletID,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RecurringStatusActive, r.Status)
	// Created Jan 31: the first monthly firing clamps to Feb 29 (leap year).
	assert.Equal(t, time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC), r.NextPurchaseDate)
}

func TestRecurringService_Create_RejectsBelowMinimum(t *testing.T) {
	d := setupRecurringService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Create(context.Background(), ports.CreateRecurringRequest{
		UserID:            uuid.New(),
		TokensPerPurchase: decimal.RequireFromString("0.5"),
		Frequency:         domain.FrequencyWeekly,
		PaymentMethodID:   uuid.New(),
	})
	assert.Equal(t, "VAL_009", appCode(t, err))
}

func TestRecurringService_Create_RejectsTokenWallet(t *testing.T) {
	d := setupRecurringService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	d.walletRepo.EXPECT().GetByID(ctx, walletID).Return(&domain.Wallet{
		ID: walletID, Kind: domain.WalletKindToken, IsActive: true,
	}, nil)

	_, err := d.svc.Create(ctx, ports.CreateRecurringRequest{
		UserID:            uuid.New(),
		TokensPerPurchase: decimal.RequireFromString("5"),
		Frequency:         domain.FrequencyWeekly,
		PaymentMethodID:   walletID,
	})
	assert.Equal(t, "VAL_000", appCode(t, err))
}

// ==================== Edit Tests ====================

func TestRecurringService_Edit_FrequencyChangeRebasesFromNow(t *testing.T) {
	d := setupRecurringService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	weekly := domain.FrequencyWeekly

	d.recurringRepo.EXPECT().GetByID(ctx, id).Return(&domain.RecurringPurchase{
		ID:                id,
		TokensPerPurchase: decimal.RequireFromString("10"),
		Frequency:         domain.FrequencyMonthly,
		NextPurchaseDate:  time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC),
		Status:            domain.RecurringStatusActive,
	}, nil)
	d.recurringRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	r, err := d.svc.Edit(ctx, id, ports.EditRecurringRequest{Frequency: &weekly})
	require.NoError(t, err)
	// Re-based from now (Jan 31 + 7d), not from the old Feb 29 anchor.
	assert.Equal(t, recurringNow.AddDate(0, 0, 7), r.NextPurchaseDate)
}

func TestRecurringService_Edit_QuantityOnlyKeepsSchedule(t *testing.T) {
	d := setupRecurringService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	next := time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC)
	qty := decimal.RequireFromString("25")

	d.recurringRepo.EXPECT().GetByID(ctx, id).Return(&domain.RecurringPurchase{
		ID:                id,
		TokensPerPurchase: decimal.RequireFromString("10"),
		Frequency:         domain.FrequencyMonthly,
		NextPurchaseDate:  next,
		Status:            domain.RecurringStatusActive,
	}, nil)
	d.recurringRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	r, err := d.svc.Edit(ctx, id, ports.EditRecurringRequest{TokensPerPurchase: &qty})
	require.NoError(t, err)
	assert.True(t, r.TokensPerPurchase.Equal(qty))
	assert.Equal(t, next, r.NextPurchaseDate)
}

func TestRecurringService_Edit_CancelledRejected(t *testing.T) {
	d := setupRecurringService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	weekly := domain.FrequencyWeekly

	d.recurringRepo.EXPECT().GetByID(ctx, id).Return(&domain.RecurringPurchase{
		ID: id, Status: domain.RecurringStatusCancelled,
	}, nil)

	_, err := d.svc.Edit(ctx, id, ports.EditRecurringRequest{Frequency: &weekly})
	assert.Equal(t, "VAL_007", appCode(t, err))
}

// ==================== Pause / Resume / Cancel Tests ====================

func TestRecurringService_PauseResume_KeepsSchedule(t *testing.T) {
	d := setupRecurringService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	next := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	d.recurringRepo.EXPECT().GetByID(ctx, id).Return(&domain.RecurringPurchase{
		ID: id, Status: domain.RecurringStatusActive, NextPurchaseDate: next,
	}, nil)
	d.recurringRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	r, err := d.svc.Pause(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.RecurringStatusPaused, r.Status)
	assert.Equal(t, next, r.NextPurchaseDate)

	d.recurringRepo.EXPECT().GetByID(ctx, id).Return(&domain.RecurringPurchase{
		ID: id, Status: domain.RecurringStatusPaused, NextPurchaseDate: next,
	}, nil)
	d.recurringRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	r, err = d.svc.Resume(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.RecurringStatusActive, r.Status)
	// Resume does not advance the schedule: a date that passed while paused
	// makes the subscription immediately due.
	assert.Equal(t, next, r.NextPurchaseDate)
}

func TestRecurringService_Cancel_Idempotent(t *testing.T) {
	d := setupRecurringService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()

	d.recurringRepo.EXPECT().GetByID(ctx, id).Return(&domain.RecurringPurchase{
		ID: id, Status: domain.RecurringStatusActive,
	}, nil)
	d.recurringRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	r, err := d.svc.Cancel(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.RecurringStatusCancelled, r.Status)
	require.NotNil(t, r.CancelledAt)

	// Second cancel: no Update call, same terminal state.
	d.recurringRepo.EXPECT().GetByID(ctx, id).Return(r, nil)
	again, err := d.svc.Cancel(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.RecurringStatusCancelled, again.Status)
}

// ==================== Trigger Tests ====================

func dueRecurring(id, userID, walletID uuid.UUID, due time.Time) *domain.RecurringPurchase {
	return &domain.RecurringPurchase{
		ID:                id,
		UserID:            userID,
		TokensPerPurchase: decimal.RequireFromString("10"),
		Frequency:         domain.FrequencyWeekly,
		NextPurchaseDate:  due,
		Status:            domain.RecurringStatusActive,
		PaymentMethodID:   walletID,
	}
}

func TestRecurringService_Trigger_Success(t *testing.T) {
	d := setupRecurringService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()
	walletID := uuid.New()
	gatewayTxID := uuid.New()
	due := recurringNow.AddDate(0, 0, -2) // fired late

	d.recurringRepo.EXPECT().GetByID(ctx, id).Return(dueRecurring(id, userID, walletID, due), nil)
	d.guard.EXPECT().Acquire(ctx, domain.BuildTriggerKey(id, due), 48*time.Hour).Return(true, nil)

	var created *domain.TokenPurchase
	d.purchaseRepo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.TokenPurchase) error {
			created = p
			return nil
		})
	d.gateway.EXPECT().Charge(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.ChargeRequest) (*ports.ChargeResult, error) {
			assert.Equal(t, domain.BuildTriggerKey(id, due), req.IdempotencyKey)
			assert.Equal(t, walletID, req.WalletID)
			assert.True(t, req.Amount.Equal(decimal.RequireFromString("10"))) // 10 tokens at 1.00
			return &ports.ChargeResult{TransactionID: gatewayTxID}, nil
		})
	d.ledger.EXPECT().ApplyTokenDelta(ctx, userID, decEq("10"), domain.TokenTxPurchase, gomock.Any(), gomock.Any()).
		Return(&domain.TokenLedgerEntry{Balance: decimal.RequireFromString("10")}, nil)
	d.certs.EXPECT().Issue(ctx, gomock.Any()).Return("https://certs.example/abc", nil)
	d.purchaseRepo.EXPECT().UpdateStatus(ctx, gomock.Any(), domain.PurchaseStatusCompleted, &gatewayTxID, gomock.Any()).Return(nil)

	var advanced *domain.RecurringPurchase
	d.recurringRepo.EXPECT().Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.RecurringPurchase) error {
			advanced = r
			return nil
		})

	purchase, err := d.svc.Trigger(ctx, id, recurringNow)
	require.NoError(t, err)
	require.NotNil(t, purchase)
	assert.Equal(t, domain.PurchaseStatusCompleted, purchase.Status)
	require.NotNil(t, created)
	assert.Equal(t, &id, created.RecurringID)

	// The schedule advances from the due date, not from when the trigger ran:
	// firing two days late must not drift the cadence.
	require.NotNil(t, advanced)
	assert.Equal(t, due.AddDate(0, 0, 7), advanced.NextPurchaseDate)
}

func TestRecurringService_Trigger_DuplicateIsNoOp(t *testing.T) {
	d := setupRecurringService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	due := recurringNow.AddDate(0, 0, -1)

	d.recurringRepo.EXPECT().GetByID(ctx, id).Return(dueRecurring(id, uuid.New(), uuid.New(), due), nil)
	d.guard.EXPECT().Acquire(ctx, domain.BuildTriggerKey(id, due), 48*time.Hour).Return(false, nil)

	// No purchase, no charge, no ledger movement.
	purchase, err := d.svc.Trigger(ctx, id, recurringNow)
	require.NoError(t, err)
	assert.Nil(t, purchase)
}

func TestRecurringService_Trigger_NotDue(t *testing.T) {
	d := setupRecurringService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	future := recurringNow.AddDate(0, 0, 3)

	d.recurringRepo.EXPECT().GetByID(ctx, id).Return(dueRecurring(id, uuid.New(), uuid.New(), future), nil)

	_, err := d.svc.Trigger(ctx, id, recurringNow)
	assert.Equal(t, "VAL_008", appCode(t, err))
}

func TestRecurringService_Trigger_NotActive(t *testing.T) {
	d := setupRecurringService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	r := dueRecurring(id, uuid.New(), uuid.New(), recurringNow.AddDate(0, 0, -1))
	r.Status = domain.RecurringStatusPaused

	d.recurringRepo.EXPECT().GetByID(ctx, id).Return(r, nil)

	_, err := d.svc.Trigger(ctx, id, recurringNow)
	assert.Equal(t, "VAL_007", appCode(t, err))
}

func TestRecurringService_Trigger_ChargeFailureMarksFailedAndAdvances(t *testing.T) {
	d := setupRecurringService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	due := recurringNow.AddDate(0, 0, -1)

	d.recurringRepo.EXPECT().GetByID(ctx, id).Return(dueRecurring(id, uuid.New(), uuid.New(), due), nil)
	d.guard.EXPECT().Acquire(ctx, gomock.Any(), gomock.Any()).Return(true, nil)
	d.purchaseRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.gateway.EXPECT().Charge(ctx, gomock.Any()).Return(nil, errors.New("card declined"))
	d.purchaseRepo.EXPECT().UpdateStatus(ctx, gomock.Any(), domain.PurchaseStatusFailed, nil, nil).Return(nil)

	var advanced *domain.RecurringPurchase
	d.recurringRepo.EXPECT().Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.RecurringPurchase) error {
			advanced = r
			return nil
		})

	_, err := d.svc.Trigger(ctx, id, recurringNow)
	assert.Equal(t, "SET_001", appCode(t, err))
	require.NotNil(t, advanced)
	assert.Equal(t, due.AddDate(0, 0, 7), advanced.NextPurchaseDate)
}

// A failure after a successful charge (here: the token credit) leaves the
// purchase PENDING and the schedule unadvanced. Recovery waits for the
// trigger-guard TTL: the retry re-claims the same key and the gateway replays
// the idempotent charge instead of billing twice.
func TestRecurringService_Trigger_PostChargeFailureLeavesPendingForRetry(t *testing.T) {
	d := setupRecurringService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()
	due := recurringNow.AddDate(0, 0, -1)
	gatewayTxID := uuid.New()

	d.recurringRepo.EXPECT().GetByID(ctx, id).Return(dueRecurring(id, userID, uuid.New(), due), nil).Times(2)
	d.guard.EXPECT().Acquire(ctx, domain.BuildTriggerKey(id, due), 48*time.Hour).Return(true, nil).Times(2)
	d.purchaseRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)
	// The gateway replays the same transaction for the same idempotency key.
	d.gateway.EXPECT().Charge(ctx, gomock.Any()).Return(&ports.ChargeResult{TransactionID: gatewayTxID}, nil).Times(2)

	// First attempt: the credit fails after the money moved. No completion, no
	// failure marker, no schedule advance.
	d.ledger.EXPECT().ApplyTokenDelta(ctx, userID, decEq("10"), domain.TokenTxPurchase, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("ledger down"))

	_, err := d.svc.Trigger(ctx, id, recurringNow)
	assert.Equal(t, "SYS_001", appCode(t, err))

	// Retry once the guard TTL lapses: the same due firing completes end to end.
	d.ledger.EXPECT().ApplyTokenDelta(ctx, userID, decEq("10"), domain.TokenTxPurchase, gomock.Any(), gomock.Any()).
		Return(&domain.TokenLedgerEntry{Balance: decimal.RequireFromString("10")}, nil)
	d.certs.EXPECT().Issue(ctx, gomock.Any()).Return("https://certs.example/retry", nil)
	d.purchaseRepo.EXPECT().UpdateStatus(ctx, gomock.Any(), domain.PurchaseStatusCompleted, &gatewayTxID, gomock.Any()).Return(nil)
	d.recurringRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	purchase, err := d.svc.Trigger(ctx, id, recurringNow)
	require.NoError(t, err)
	require.NotNil(t, purchase)
	assert.Equal(t, domain.PurchaseStatusCompleted, purchase.Status)
	assert.Equal(t, &gatewayTxID, purchase.TransactionID)
}

// ==================== RunDue Tests ====================

func TestRecurringService_RunDue_SkipsDuplicatesAndFailures(t *testing.T) {
	d := setupRecurringService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	walletID := uuid.New()
	due := recurringNow.AddDate(0, 0, -1)

	ok := dueRecurring(uuid.New(), userID, walletID, due)
	dup := dueRecurring(uuid.New(), userID, walletID, due)

	d.recurringRepo.EXPECT().ListDue(ctx, recurringNow).Return([]domain.RecurringPurchase{*ok, *dup}, nil)

	// First fires end to end.
	d.recurringRepo.EXPECT().GetByID(ctx, ok.ID).Return(ok, nil)
	d.guard.EXPECT().Acquire(ctx, domain.BuildTriggerKey(ok.ID, due), gomock.Any()).Return(true, nil)
	d.purchaseRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.gateway.EXPECT().Charge(ctx, gomock.Any()).Return(&ports.ChargeResult{TransactionID: uuid.New()}, nil)
	d.ledger.EXPECT().ApplyTokenDelta(ctx, userID, gomock.Any(), domain.TokenTxPurchase, gomock.Any(), gomock.Any()).
		Return(&domain.TokenLedgerEntry{Balance: decimal.RequireFromString("10")}, nil)
	d.certs.EXPECT().Issue(ctx, gomock.Any()).Return("", errors.New("issuer down")) // best-effort
	d.purchaseRepo.EXPECT().UpdateStatus(ctx, gomock.Any(), domain.PurchaseStatusCompleted, gomock.Any(), nil).Return(nil)
	d.recurringRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	// Second loses the guard claim: another sweep already fired it.
	d.recurringRepo.EXPECT().GetByID(ctx, dup.ID).Return(dup, nil)
	d.guard.EXPECT().Acquire(ctx, domain.BuildTriggerKey(dup.ID, due), gomock.Any()).Return(false, nil)

	fired, err := d.svc.RunDue(ctx, recurringNow)
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
}
