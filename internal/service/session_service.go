package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tokenpay-core/internal/core/domain"
	"tokenpay-core/internal/core/ports"
	"tokenpay-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// SessionServiceImpl implements ports.PaymentSessionService.
// Sessions are interaction-scoped and held in memory: the only durable artifact
// a session produces is the TransactionRecord written on success. A single
// mutex serializes session mutations; settlement I/O runs outside it, with the
// PROCESSING step acting as the per-session lock that keeps at most one
// settlement attempt in flight.
type SessionServiceImpl struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*domain.PaymentSession

	ledger    ports.WalletLedger
	fees      ports.FeeEngine
	subs      ports.SubscriptionStatus
	directory ports.BusinessDirectory
	gateway   ports.SettlementGateway
	txRepo    ports.TransactionRepository
	clock     ports.Clock

	settlementTimeout time.Duration
	maxAttempts       int
	log               zerolog.Logger
}

// NewSessionService creates a new SessionServiceImpl.
func NewSessionService(
	ledger ports.WalletLedger,
	fees ports.FeeEngine,
	subs ports.SubscriptionStatus,
	directory ports.BusinessDirectory,
	gateway ports.SettlementGateway,
	txRepo ports.TransactionRepository,
	clock ports.Clock,
	settlementTimeout time.Duration,
	maxAttempts int,
	log zerolog.Logger,
) *SessionServiceImpl {
	return &SessionServiceImpl{
		sessions:          make(map[uuid.UUID]*domain.PaymentSession),
		ledger:            ledger,
		fees:              fees,
		subs:              subs,
		directory:         directory,
		gateway:           gateway,
		txRepo:            txRepo,
		clock:             clock,
		settlementTimeout: settlementTimeout,
		maxAttempts:       maxAttempts,
		log:               log,
	}
}

// Start begins a session. A pre-selected business deep-links straight to the
// amount step; backing out of that step later exits the flow entirely.
func (s *SessionServiceImpl) Start(ctx context.Context, req ports.StartSessionRequest) (*domain.PaymentSession, error) {
	if req.Currency == "" {
		return nil, apperror.Validation("currency is required")
	}

	now := s.clock.Now()
	sess := &domain.PaymentSession{
		ID:        uuid.New(),
		UserID:    req.UserID,
		Step:      domain.StepSelectBusiness,
		Currency:  req.Currency,
		Amount:    decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if req.BusinessID != nil {
		biz, err := s.directory.Lookup(ctx, *req.BusinessID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lookup business: %w", err))
		}
		if biz == nil {
			return nil, apperror.ErrNotFound("business")
		}
		sess.BusinessID = req.BusinessID
		sess.DeepLinked = true
		sess.Step = domain.StepAmount
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.log.Info().
		Str("session_id", sess.ID.String()).
		Str("user_id", req.UserID.String()).
		Bool("deep_linked", sess.DeepLinked).
		Msg("payment session started")

	return sess, nil
}

// Get returns the session by ID.
func (s *SessionServiceImpl) Get(_ context.Context, sessionID uuid.UUID) (*domain.PaymentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(sessionID)
}

// SelectBusiness sets the payee. Only valid on the business selection step.
func (s *SessionServiceImpl) SelectBusiness(ctx context.Context, sessionID, businessID uuid.UUID) (*domain.PaymentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.mutable(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step != domain.StepSelectBusiness {
		return nil, apperror.ErrInvalidStep("select_business")
	}

	biz, err := s.directory.Lookup(ctx, businessID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup business: %w", err))
	}
	if biz == nil {
		return nil, apperror.ErrNotFound("business")
	}

	sess.BusinessID = &businessID
	sess.UpdatedAt = s.clock.Now()
	return sess, nil
}

// SetAmount sets the payable amount and recomputes the quote, the coverage
// split, and the eligible wallet set.
func (s *SessionServiceImpl) SetAmount(ctx context.Context, sessionID uuid.UUID, amount decimal.Decimal) (*domain.PaymentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.mutable(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step != domain.StepAmount {
		return nil, apperror.ErrInvalidStep("set_amount")
	}
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	sess.Amount = amount
	if err := s.requote(ctx, sess); err != nil {
		return nil, err
	}
	sess.UpdatedAt = s.clock.Now()
	return sess, nil
}

// SetUseTokenCoverage toggles token coverage and recomputes the split. Turning
// it on with a zero token balance is allowed; the toggle simply has no effect.
func (s *SessionServiceImpl) SetUseTokenCoverage(ctx context.Context, sessionID uuid.UUID, use bool) (*domain.PaymentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.mutable(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step != domain.StepAmount && sess.Step != domain.StepPaymentMethod {
		return nil, apperror.ErrInvalidStep("set_use_token_coverage")
	}

	sess.UseTokenCoverage = use
	if sess.Quote != nil {
		if err := s.requote(ctx, sess); err != nil {
			return nil, err
		}
	}
	sess.UpdatedAt = s.clock.Now()
	return sess, nil
}

// SelectWallet chooses the fiat payment method from the eligible set.
func (s *SessionServiceImpl) SelectWallet(_ context.Context, sessionID, walletID uuid.UUID) (*domain.PaymentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.mutable(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step != domain.StepPaymentMethod {
		return nil, apperror.ErrInvalidStep("select_wallet")
	}
	if !sess.WalletEligible(walletID) {
		return nil, apperror.ErrNoEligibleWallet()
	}

	sess.SelectedWalletID = &walletID
	sess.UpdatedAt = s.clock.Now()
	return sess, nil
}

// SetNote attaches an optional note on the review step.
func (s *SessionServiceImpl) SetNote(_ context.Context, sessionID uuid.UUID, note string) (*domain.PaymentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.mutable(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step != domain.StepReview {
		return nil, apperror.ErrInvalidStep("set_note")
	}

	if note == "" {
		sess.Note = nil
	} else {
		sess.Note = &note
	}
	sess.UpdatedAt = s.clock.Now()
	return sess, nil
}

// Next advances one step after validating the current step's guard. A guard
// failure leaves the step unchanged.
func (s *SessionServiceImpl) Next(ctx context.Context, sessionID uuid.UUID) (*domain.PaymentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.mutable(sessionID)
	if err != nil {
		return nil, err
	}

	switch sess.Step {
	case domain.StepSelectBusiness:
		if sess.BusinessID == nil {
			return nil, apperror.ErrNoBusinessSelected()
		}
		sess.Step = domain.StepAmount

	case domain.StepAmount:
		if !sess.Amount.IsPositive() || sess.Quote == nil {
			return nil, apperror.ErrInvalidAmount()
		}
		// Refresh eligibility at the step boundary: balances may have moved
		// since the amount was entered.
		if err := s.requote(ctx, sess); err != nil {
			return nil, err
		}
		if sess.Coverage.RemainingFiat.IsPositive() && len(sess.EligibleWallets) == 0 {
			return nil, apperror.ErrNoEligibleWallet()
		}
		sess.Step = domain.StepPaymentMethod

	case domain.StepPaymentMethod:
		// A fully token-covered payment needs no wallet.
		if sess.Coverage.RemainingFiat.IsPositive() && sess.SelectedWalletID == nil {
			return nil, apperror.ErrNoPaymentMethodSelected()
		}
		sess.Step = domain.StepReview

	default:
		return nil, apperror.ErrInvalidStep("next")
	}

	sess.UpdatedAt = s.clock.Now()
	return sess, nil
}

// Back navigates one step backward. A deep-linked session backing out of the
// amount step exits the flow: the session is discarded and nil returned.
func (s *SessionServiceImpl) Back(_ context.Context, sessionID uuid.UUID) (*domain.PaymentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.mutable(sessionID)
	if err != nil {
		return nil, err
	}

	switch sess.Step {
	case domain.StepAmount:
		if sess.DeepLinked {
			delete(s.sessions, sess.ID)
			s.log.Info().Str("session_id", sess.ID.String()).Msg("deep-linked session exited")
			return nil, nil
		}
		sess.Step = domain.StepSelectBusiness
	case domain.StepPaymentMethod:
		sess.Step = domain.StepAmount
	case domain.StepReview:
		sess.Step = domain.StepPaymentMethod
	default:
		return nil, apperror.ErrInvalidStep("back")
	}

	sess.UpdatedAt = s.clock.Now()
	return sess, nil
}

// Confirm commits the session: REVIEW -> PROCESSING, settle, then SUCCESS, or
// back to REVIEW with an attached error. Attempts are bounded; the session ID
// is the settlement idempotency key so retries can never double-charge.
// PROCESSING is a logical lock: once the step is flipped the session rejects
// input, so the settlement I/O runs without holding the service mutex and a
// slow gateway cannot stall unrelated sessions.
func (s *SessionServiceImpl) Confirm(ctx context.Context, sessionID uuid.UUID) (*domain.PaymentSession, error) {
	sess, fiat, err := s.beginSettlement(sessionID)
	if err != nil {
		return nil, err
	}

	txID, appErr := s.settle(ctx, sess, fiat)

	s.mu.Lock()
	defer s.mu.Unlock()

	if appErr != nil {
		msg := appErr.Message
		sess.Step = domain.StepReview
		sess.LastError = &msg
		sess.UpdatedAt = s.clock.Now()
		s.log.Warn().
			Str("session_id", sess.ID.String()).
			Int("attempt", sess.Attempts).
			Err(appErr).
			Msg("settlement attempt failed")
		return nil, appErr
	}

	sess.Step = domain.StepSuccess
	sess.TransactionID = &txID
	sess.UpdatedAt = s.clock.Now()

	s.log.Info().
		Str("session_id", sess.ID.String()).
		Str("transaction_id", txID.String()).
		Str("total", sess.Quote.Total.String()).
		Str("token_coverage", sess.Coverage.TokenCoverage.String()).
		Msg("payment session settled")

	return sess, nil
}

// beginSettlement validates the review-step guards and flips the session to
// PROCESSING under the mutex. No further input is accepted once the step is
// flipped, so the caller can settle without the lock.
func (s *SessionServiceImpl) beginSettlement(sessionID uuid.UUID) (*domain.PaymentSession, decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.find(sessionID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if sess.Step != domain.StepReview {
		if !sess.AcceptsInput() {
			return nil, decimal.Zero, apperror.ErrSessionLocked()
		}
		return nil, decimal.Zero, apperror.ErrInvalidStep("confirm")
	}
	if sess.BusinessID == nil || sess.Quote == nil || sess.Coverage == nil {
		return nil, decimal.Zero, apperror.ErrInvalidStep("confirm")
	}
	fiat := sess.Coverage.RemainingFiat
	if fiat.IsPositive() && sess.SelectedWalletID == nil {
		return nil, decimal.Zero, apperror.ErrNoPaymentMethodSelected()
	}
	if sess.Attempts >= s.maxAttempts {
		return nil, decimal.Zero, apperror.ErrSettlementExhausted()
	}

	sess.Step = domain.StepProcessing
	sess.Attempts++
	sess.LastError = nil
	sess.UpdatedAt = s.clock.Now()
	return sess, fiat, nil
}

// Abandon discards an in-flight session. Unknown IDs are a no-op.
func (s *SessionServiceImpl) Abandon(_ context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	if sess.Step == domain.StepProcessing {
		return apperror.ErrSessionLocked()
	}
	delete(s.sessions, sessionID)
	return nil
}

// settle performs the irreversible part of Confirm: charge the gateway for the
// fiat share, apply the local debit, redeem the token coverage, and persist the
// transaction record. Returns the gateway-issued transaction ID.
func (s *SessionServiceImpl) settle(ctx context.Context, sess *domain.PaymentSession, fiat decimal.Decimal) (uuid.UUID, *apperror.AppError) {
	var txID uuid.UUID

	if fiat.IsPositive() {
		chargeCtx, cancel := context.WithTimeout(ctx, s.settlementTimeout)
		defer cancel()

		res, err := s.gateway.Charge(chargeCtx, ports.ChargeRequest{
			IdempotencyKey: sess.ID.String(),
			WalletID:       *sess.SelectedWalletID,
			Amount:         fiat,
			Currency:       sess.Currency,
			Metadata: map[string]string{
				"business_id": sess.BusinessID.String(),
				"user_id":     sess.UserID.String(),
			},
		})
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(chargeCtx.Err(), context.DeadlineExceeded) {
				return uuid.Nil, apperror.ErrSettlementTimeout(err)
			}
			return uuid.Nil, apperror.ErrSettlementFailed(err)
		}
		txID = res.TransactionID

		if _, err := s.ledger.ApplyDebit(ctx, *sess.SelectedWalletID, fiat); err != nil {
			var ae *apperror.AppError
			if errors.As(err, &ae) && ae.Code == "PAY_001" {
				return uuid.Nil, ae
			}
			return uuid.Nil, apperror.InternalError(fmt.Errorf("apply debit: %w", err))
		}
	} else {
		// Fully token-covered: no gateway charge, mint the reference locally.
		txID = uuid.New()
	}

	if sess.Coverage.TokenCoverage.IsPositive() {
		desc := "Payment to business " + sess.BusinessID.String()
		if _, err := s.ledger.ApplyTokenDelta(ctx, sess.UserID, sess.Coverage.TokenCoverage, domain.TokenTxRedemption, desc, nil); err != nil {
			return uuid.Nil, apperror.InternalError(fmt.Errorf("redeem tokens: %w", err))
		}
	}

	rec := &domain.TransactionRecord{
		ID:            txID,
		UserID:        sess.UserID,
		BusinessID:    *sess.BusinessID,
		Amount:        sess.Quote.Amount,
		ServiceFee:    sess.Quote.ServiceFee,
		Total:         sess.Quote.Total,
		TokenCoverage: sess.Coverage.TokenCoverage,
		FiatAmount:    fiat,
		Currency:      sess.Currency,
		WalletID:      sess.SelectedWalletID,
		Note:          sess.Note,
		Status:        domain.TransactionStatusSuccess,
		CreatedAt:     s.clock.Now(),
	}
	if err := s.txRepo.Create(ctx, rec); err != nil {
		return uuid.Nil, apperror.ErrDatabaseError(fmt.Errorf("persist transaction: %w", err))
	}

	return txID, nil
}

// requote recomputes the fee quote, the coverage split, and the eligible
// wallet set for the session's current amount and toggles. A previously
// selected wallet that falls out of the eligible set is cleared.
func (s *SessionServiceImpl) requote(ctx context.Context, sess *domain.PaymentSession) error {
	waiver, err := s.subs.HasWaiver(ctx, sess.UserID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("check waiver: %w", err))
	}

	quote, err := s.fees.Quote(ctx, sess.Amount, sess.Currency, waiver)
	if err != nil {
		return err
	}

	tokenBalance, err := s.ledger.TokenBalance(ctx, sess.UserID)
	if err != nil {
		return err
	}

	coverage := domain.SplitCoverage(quote.Total, tokenBalance, sess.UseTokenCoverage)

	eligible, err := s.ledger.EligibleWallets(ctx, sess.UserID, sess.Currency, coverage.RemainingFiat)
	if err != nil {
		return err
	}

	sess.Quote = &quote
	sess.Coverage = &coverage
	sess.EligibleWallets = eligible
	if sess.SelectedWalletID != nil && !sess.WalletEligible(*sess.SelectedWalletID) {
		sess.SelectedWalletID = nil
	}
	return nil
}

// find returns the session or a not-found error. Callers hold s.mu.
func (s *SessionServiceImpl) find(sessionID uuid.UUID) (*domain.PaymentSession, error) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, apperror.ErrNotFound("session")
	}
	return sess, nil
}

// mutable returns the session if it still accepts input. Callers hold s.mu.
func (s *SessionServiceImpl) mutable(sessionID uuid.UUID) (*domain.PaymentSession, error) {
	sess, err := s.find(sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.AcceptsInput() {
		return nil, apperror.ErrSessionLocked()
	}
	return sess, nil
}
