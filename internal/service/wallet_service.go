package service

import (
	"context"
	"fmt"

	"tokenpay-core/internal/core/domain"
	"tokenpay-core/internal/core/ports"
	"tokenpay-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// WalletServiceImpl implements ports.WalletLedger.
// Fiat balances mutate under FOR UPDATE row locks; token balance mutates only
// by appending ledger entries under a per-user advisory lock.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	ledgerRepo ports.LedgerRepository
	transactor ports.DBTransactor
	clock      ports.Clock
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	ledgerRepo ports.LedgerRepository,
	transactor ports.DBTransactor,
	clock ports.Clock,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		transactor: transactor,
		clock:      clock,
		log:        log,
	}
}

// EligibleWallets returns the wallets that can fund minAvailable in the given
// currency. Token wallets are excluded; coverage is applied separately.
func (s *WalletServiceImpl) EligibleWallets(ctx context.Context, userID uuid.UUID, currency string, minAvailable decimal.Decimal) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListActiveByUser(ctx, userID, currency)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list wallets: %w", err))
	}

	eligible := make([]domain.Wallet, 0, len(wallets))
	for _, w := range wallets {
		if w.EligibleFor(currency, minAvailable) {
			eligible = append(eligible, w)
		}
	}
	return eligible, nil
}

// ApplyDebit atomically checks and decrements a wallet's balance. The check and
// the write happen under the same row lock so two concurrent debits can never
// both pass the funds check.
func (s *WalletServiceImpl) ApplyDebit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, walletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	if !wallet.IsActive {
		return nil, apperror.ErrWalletInactive()
	}
	if wallet.Available().LessThan(amount) {
		return nil, apperror.ErrInsufficientFunds()
	}

	newBalance := wallet.Balance.Sub(amount)
	newAvailable := wallet.Available().Sub(amount)
	if err := s.walletRepo.UpdateBalances(ctx, dbTx, wallet.ID, newBalance, newAvailable); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update balances: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	wallet.Balance = newBalance
	wallet.AvailableBalance = &newAvailable
	wallet.UpdatedAt = s.clock.Now()

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("amount", amount.String()).
		Str("balance", newBalance.String()).
		Msg("wallet debited")

	return wallet, nil
}

// ApplyCredit atomically increments a wallet's balance.
func (s *WalletServiceImpl) ApplyCredit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, walletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	if !wallet.IsActive {
		return nil, apperror.ErrWalletInactive()
	}

	newBalance := wallet.Balance.Add(amount)
	newAvailable := wallet.Available().Add(amount)
	if err := s.walletRepo.UpdateBalances(ctx, dbTx, wallet.ID, newBalance, newAvailable); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update balances: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	wallet.Balance = newBalance
	wallet.AvailableBalance = &newAvailable
	wallet.UpdatedAt = s.clock.Now()

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("amount", amount.String()).
		Str("balance", newBalance.String()).
		Msg("wallet credited")

	return wallet, nil
}

// ApplyTokenDelta appends one ledger entry with a running balance computed
// from the user's last entry. Appends for one user are serialized by an
// advisory lock so the running balance can never fork.
func (s *WalletServiceImpl) ApplyTokenDelta(ctx context.Context, userID uuid.UUID, tokens decimal.Decimal, txType domain.TokenTransactionType, description string, relatedID *uuid.UUID) (*domain.TokenLedgerEntry, error) {
	if !tokens.IsPositive() {
		return nil, apperror.Validation("token delta must be positive")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.ledgerRepo.LockUser(ctx, dbTx, userID); err != nil {
		return nil, apperror.ErrSchedulingConflict(fmt.Errorf("lock ledger: %w", err))
	}

	last, err := s.ledgerRepo.GetLastInTx(ctx, dbTx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("read last entry: %w", err))
	}

	prior := decimal.Zero
	if last != nil {
		prior = last.Balance
	}
	newBalance := prior.Add(txType.Signed(tokens))
	if newBalance.IsNegative() {
		return nil, apperror.ErrInsufficientTokens()
	}

	now := s.clock.Now()
	entry := &domain.TokenLedgerEntry{
		ID:                uuid.New(),
		UserID:            userID,
		TransactionType:   txType,
		Tokens:            tokens,
		Balance:           newBalance,
		Date:              now,
		Description:       description,
		RelatedPurchaseID: relatedID,
		CreatedAt:         now,
	}
	if err := s.ledgerRepo.Append(ctx, dbTx, entry); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("append entry: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Str("type", string(txType)).
		Str("tokens", tokens.String()).
		Str("balance", newBalance.String()).
		Msg("token ledger entry appended")

	return entry, nil
}

// TokenBalance is the balance of the chronologically last ledger entry.
// Not the maximum, not a recomputed sum: the last entry is authoritative.
func (s *WalletServiceImpl) TokenBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	last, err := s.ledgerRepo.GetLast(ctx, userID)
	if err != nil {
		return decimal.Zero, apperror.ErrDatabaseError(fmt.Errorf("read last entry: %w", err))
	}
	if last == nil {
		return decimal.Zero, nil
	}
	return last.Balance, nil
}

// TokenHistory returns the paginated ledger view for a user.
func (s *WalletServiceImpl) TokenHistory(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]domain.TokenLedgerEntry, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	entries, total, err := s.ledgerRepo.List(ctx, userID, page, pageSize)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(fmt.Errorf("list entries: %w", err))
	}
	return entries, total, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
