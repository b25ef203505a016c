package service

import (
	"context"
	"fmt"
	"time"

	"tokenpay-core/internal/core/domain"
	"tokenpay-core/internal/core/ports"
	"tokenpay-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RecurringServiceImpl implements ports.RecurringService.
// Triggering is safe under at-least-once delivery: every due firing claims a
// (subscription, due date) key in the trigger guard before any money moves.
type RecurringServiceImpl struct {
	recurringRepo ports.RecurringRepository
	purchaseRepo  ports.PurchaseRepository
	walletRepo    ports.WalletRepository
	ledger        ports.WalletLedger
	gateway       ports.SettlementGateway
	guard         ports.TriggerGuard
	certs         ports.CertificateIssuer
	clock         ports.Clock

	costPerToken decimal.Decimal
	currency     string
	triggerTTL   time.Duration
	log          zerolog.Logger
}

// NewRecurringService creates a new RecurringServiceImpl. costPerToken is the
// fixed catalog price as a decimal string.
func NewRecurringService(
	recurringRepo ports.RecurringRepository,
	purchaseRepo ports.PurchaseRepository,
	walletRepo ports.WalletRepository,
	ledger ports.WalletLedger,
	gateway ports.SettlementGateway,
	guard ports.TriggerGuard,
	certs ports.CertificateIssuer,
	clock ports.Clock,
	costPerToken string,
	currency string,
	triggerTTL time.Duration,
	log zerolog.Logger,
) (*RecurringServiceImpl, error) {
	cost, err := decimal.NewFromString(costPerToken)
	if err != nil {
		return nil, fmt.Errorf("parse cost per token %q: %w", costPerToken, err)
	}
	if !cost.IsPositive() {
		return nil, fmt.Errorf("cost per token must be positive: %s", costPerToken)
	}
	return &RecurringServiceImpl{
		recurringRepo: recurringRepo,
		purchaseRepo:  purchaseRepo,
		walletRepo:    walletRepo,
		ledger:        ledger,
		gateway:       gateway,
		guard:         guard,
		certs:         certs,
		clock:         clock,
		costPerToken:  cost,
		currency:      currency,
		triggerTTL:    triggerTTL,
		log:           log,
	}, nil
}

// Create sets up a recurring purchase. The first firing is one full period
// after setup.
func (s *RecurringServiceImpl) Create(ctx context.Context, req ports.CreateRecurringRequest) (*domain.RecurringPurchase, error) {
	one := decimal.NewFromInt(1)
	if req.TokensPerPurchase.LessThan(one) {
		return nil, apperror.ErrInvalidTokenQuantity()
	}
	if !req.Frequency.Valid() {
		return nil, apperror.Validation("invalid frequency")
	}

	wallet, err := s.walletRepo.GetByID(ctx, req.PaymentMethodID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get payment method: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("payment method")
	}
	if !wallet.IsActive {
		return nil, apperror.ErrWalletInactive()
	}
	if wallet.Kind == domain.WalletKindToken {
		return nil, apperror.Validation("token wallet cannot fund a recurring purchase")
	}

	now := s.clock.Now()
	r := &domain.RecurringPurchase{
		ID:                uuid.New(),
		UserID:            req.UserID,
		TokensPerPurchase: req.TokensPerPurchase,
		Frequency:         req.Frequency,
		NextPurchaseDate:  domain.ComputeNext(now, req.Frequency),
		Status:            domain.RecurringStatusActive,
		PaymentMethodID:   req.PaymentMethodID,
		StartDate:         now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.recurringRepo.Create(ctx, r); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create recurring: %w", err))
	}

	s.log.Info().
		Str("recurring_id", r.ID.String()).
		Str("user_id", r.UserID.String()).
		Str("frequency", string(r.Frequency)).
		Time("next_purchase", r.NextPurchaseDate).
		Msg("recurring purchase created")

	return r, nil
}

// Get returns the recurring purchase by ID.
func (s *RecurringServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.RecurringPurchase, error) {
	r, err := s.recurringRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get recurring: %w", err))
	}
	if r == nil {
		return nil, apperror.ErrNotFound("recurring purchase")
	}
	return r, nil
}

// ListByUser returns all recurring purchases of a user, cancelled included.
func (s *RecurringServiceImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.RecurringPurchase, error) {
	list, err := s.recurringRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list recurring: %w", err))
	}
	return list, nil
}

// Edit updates quantity and frequency. A frequency change re-bases the next
// purchase date from now, not from the previous anchor.
func (s *RecurringServiceImpl) Edit(ctx context.Context, id uuid.UUID, req ports.EditRecurringRequest) (*domain.RecurringPurchase, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status == domain.RecurringStatusCancelled {
		return nil, apperror.ErrSubscriptionNotActive()
	}

	if req.TokensPerPurchase != nil {
		if req.TokensPerPurchase.LessThan(decimal.NewFromInt(1)) {
			return nil, apperror.ErrInvalidTokenQuantity()
		}
		r.TokensPerPurchase = *req.TokensPerPurchase
	}
	if req.Frequency != nil && *req.Frequency != r.Frequency {
		if !req.Frequency.Valid() {
			return nil, apperror.Validation("invalid frequency")
		}
		r.Frequency = *req.Frequency
		r.NextPurchaseDate = domain.ComputeNext(s.clock.Now(), r.Frequency)
	}

	r.UpdatedAt = s.clock.Now()
	if err := s.recurringRepo.Update(ctx, r); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update recurring: %w", err))
	}
	return r, nil
}

// Pause suspends firing. The next purchase date is kept as-is; pausing a
// paused subscription is a no-op.
func (s *RecurringServiceImpl) Pause(ctx context.Context, id uuid.UUID) (*domain.RecurringPurchase, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch r.Status {
	case domain.RecurringStatusCancelled:
		return nil, apperror.ErrSubscriptionNotActive()
	case domain.RecurringStatusPaused:
		return r, nil
	}

	r.Status = domain.RecurringStatusPaused
	r.UpdatedAt = s.clock.Now()
	if err := s.recurringRepo.Update(ctx, r); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update recurring: %w", err))
	}
	return r, nil
}

// Resume reactivates a paused subscription without advancing the schedule: a
// next purchase date that passed while paused makes the subscription
// immediately due.
func (s *RecurringServiceImpl) Resume(ctx context.Context, id uuid.UUID) (*domain.RecurringPurchase, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch r.Status {
	case domain.RecurringStatusCancelled:
		return nil, apperror.ErrSubscriptionNotActive()
	case domain.RecurringStatusActive:
		return r, nil
	}

	r.Status = domain.RecurringStatusActive
	r.UpdatedAt = s.clock.Now()
	if err := s.recurringRepo.Update(ctx, r); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update recurring: %w", err))
	}
	return r, nil
}

// Cancel is terminal and idempotent. The entity is retained for audit with a
// cancellation marker; it is never deleted.
func (s *RecurringServiceImpl) Cancel(ctx context.Context, id uuid.UUID) (*domain.RecurringPurchase, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status == domain.RecurringStatusCancelled {
		return r, nil
	}

	now := s.clock.Now()
	r.Status = domain.RecurringStatusCancelled
	r.CancelledAt = &now
	r.UpdatedAt = now
	if err := s.recurringRepo.Update(ctx, r); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update recurring: %w", err))
	}

	s.log.Info().Str("recurring_id", r.ID.String()).Msg("recurring purchase cancelled")
	return r, nil
}

// Trigger fires one due subscription. A duplicate trigger for the same due
// date loses the guard claim and returns (nil, nil). On success the next
// purchase date advances from the due date, so firing late does not drift
// the schedule.
func (s *RecurringServiceImpl) Trigger(ctx context.Context, id uuid.UUID, now time.Time) (*domain.TokenPurchase, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.IsActive() {
		return nil, apperror.ErrSubscriptionNotActive()
	}
	if !r.IsDue(now) {
		return nil, apperror.ErrSubscriptionNotDue()
	}

	due := r.NextPurchaseDate
	key := domain.BuildTriggerKey(r.ID, due)
	won, err := s.guard.Acquire(ctx, key, s.triggerTTL)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("acquire trigger key: %w", err))
	}
	if !won {
		s.log.Debug().
			Str("recurring_id", r.ID.String()).
			Str("trigger_key", key).
			Msg("duplicate trigger suppressed")
		return nil, nil
	}

	purchase := domain.NewTokenPurchase(r.UserID, r.TokensPerPurchase, s.costPerToken, s.currency, now)
	purchase.RecurringID = &r.ID
	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create purchase: %w", err))
	}

	res, err := s.gateway.Charge(ctx, ports.ChargeRequest{
		IdempotencyKey: key,
		WalletID:       r.PaymentMethodID,
		Amount:         purchase.TotalCost,
		Currency:       purchase.Currency,
		Metadata: map[string]string{
			"recurring_id": r.ID.String(),
			"purchase_id":  purchase.ID.String(),
		},
	})
	if err != nil {
		// The firing is consumed: mark the purchase failed and advance the
		// schedule so the failure is visible instead of retried forever.
		if uerr := s.purchaseRepo.UpdateStatus(ctx, purchase.ID, domain.PurchaseStatusFailed, nil, nil); uerr != nil {
			s.log.Error().Err(uerr).Str("purchase_id", purchase.ID.String()).Msg("failed to mark purchase failed")
		}
		s.advance(ctx, r, due)
		return nil, apperror.ErrSettlementFailed(err)
	}

	desc := fmt.Sprintf("Recurring purchase of %s tokens", purchase.Tokens.String())
	entry, err := s.ledger.ApplyTokenDelta(ctx, r.UserID, purchase.Tokens, domain.TokenTxPurchase, desc, &purchase.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit tokens: %w", err))
	}

	// Certificate issuance is best-effort: a completed purchase without a
	// certificate is still completed.
	var certURL *string
	if url, err := s.certs.Issue(ctx, purchase.ID); err != nil {
		s.log.Warn().Err(err).Str("purchase_id", purchase.ID.String()).Msg("certificate issuance failed")
	} else if url != "" {
		certURL = &url
	}

	if err := s.purchaseRepo.UpdateStatus(ctx, purchase.ID, domain.PurchaseStatusCompleted, &res.TransactionID, certURL); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("complete purchase: %w", err))
	}
	purchase.Status = domain.PurchaseStatusCompleted
	purchase.TransactionID = &res.TransactionID
	purchase.CertificateURL = certURL

	s.advance(ctx, r, due)

	s.log.Info().
		Str("recurring_id", r.ID.String()).
		Str("purchase_id", purchase.ID.String()).
		Str("tokens", purchase.Tokens.String()).
		Str("balance", entry.Balance.String()).
		Time("next_purchase", r.NextPurchaseDate).
		Msg("recurring purchase triggered")

	return purchase, nil
}

// RunDue triggers every due subscription and returns how many completed.
// Individual failures are logged and skipped so one broken subscription
// cannot stall the sweep.
func (s *RecurringServiceImpl) RunDue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.recurringRepo.ListDue(ctx, now)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("list due: %w", err))
	}

	fired := 0
	for _, r := range due {
		purchase, err := s.Trigger(ctx, r.ID, now)
		if err != nil {
			s.log.Warn().Err(err).Str("recurring_id", r.ID.String()).Msg("due trigger failed")
			continue
		}
		if purchase != nil {
			fired++
		}
	}

	s.log.Info().Int("due", len(due)).Int("fired", fired).Msg("due sweep finished")
	return fired, nil
}

// advance moves the schedule one period past the due date.
func (s *RecurringServiceImpl) advance(ctx context.Context, r *domain.RecurringPurchase, due time.Time) {
	r.NextPurchaseDate = domain.ComputeNext(due, r.Frequency)
	r.UpdatedAt = s.clock.Now()
	if err := s.recurringRepo.Update(ctx, r); err != nil {
		s.log.Error().Err(err).Str("recurring_id", r.ID.String()).Msg("failed to advance schedule")
	}
}
