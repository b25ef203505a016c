package service

import (
	"context"
	"fmt"

	"tokenpay-core/internal/core/domain"
	"tokenpay-core/internal/core/ports"
	"tokenpay-core/pkg/apperror"

	"github.com/google/uuid"
)

// TransactionReaderImpl implements ports.TransactionReader over the durable
// payment history.
type TransactionReaderImpl struct {
	txRepo ports.TransactionRepository
}

// NewTransactionReader creates a new TransactionReaderImpl.
func NewTransactionReader(txRepo ports.TransactionRepository) *TransactionReaderImpl {
	return &TransactionReaderImpl{txRepo: txRepo}
}

// ListByUser returns the paginated payment history of a user.
func (s *TransactionReaderImpl) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]domain.TransactionRecord, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	records, total, err := s.txRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(fmt.Errorf("list transactions: %w", err))
	}
	return records, total, nil
}
