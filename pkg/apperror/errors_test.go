package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	e := New("VAL_002", "Invalid amount", http.StatusBadRequest)
	assert.Equal(t, "[VAL_002] Invalid amount", e.Error())
}

func TestAppError_ErrorWithWrapped(t *testing.T) {
	inner := errors.New("connection reset")
	e := Wrap("SET_001", "Settlement gateway failure", http.StatusBadGateway, inner)
	assert.Equal(t, "[SET_001] Settlement gateway failure: connection reset", e.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	e := Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, inner)
	assert.ErrorIs(t, e, inner)
}

func TestAppError_UnwrapNil(t *testing.T) {
	e := New("VAL_001", "No business selected", http.StatusBadRequest)
	assert.Nil(t, e.Unwrap())
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"no business selected", ErrNoBusinessSelected(), "VAL_001", http.StatusBadRequest},
		{"invalid amount", ErrInvalidAmount(), "VAL_002", http.StatusBadRequest},
		{"no eligible wallet", ErrNoEligibleWallet(), "VAL_003", http.StatusBadRequest},
		{"no payment method", ErrNoPaymentMethodSelected(), "VAL_004", http.StatusBadRequest},
		{"invalid step", ErrInvalidStep("confirm"), "VAL_005", http.StatusConflict},
		{"session locked", ErrSessionLocked(), "VAL_006", http.StatusConflict},
		{"subscription not active", ErrSubscriptionNotActive(), "VAL_007", http.StatusConflict},
		{"subscription not due", ErrSubscriptionNotDue(), "VAL_008", http.StatusConflict},
		{"invalid token quantity", ErrInvalidTokenQuantity(), "VAL_009", http.StatusBadRequest},
		{"insufficient funds", ErrInsufficientFunds(), "PAY_001", http.StatusPaymentRequired},
		{"insufficient tokens", ErrInsufficientTokens(), "PAY_002", http.StatusPaymentRequired},
		{"not found", ErrNotFound("wallet"), "PAY_004", http.StatusNotFound},
		{"wallet inactive", ErrWalletInactive(), "PAY_005", http.StatusUnprocessableEntity},
		{"settlement failed", ErrSettlementFailed(errors.New("x")), "SET_001", http.StatusBadGateway},
		{"settlement timeout", ErrSettlementTimeout(errors.New("x")), "SET_002", http.StatusGatewayTimeout},
		{"settlement exhausted", ErrSettlementExhausted(), "SET_003", http.StatusBadGateway},
		{"scheduling conflict", ErrSchedulingConflict(errors.New("x")), "SCH_001", http.StatusConflict},
		{"rate limit", ErrRateLimitExceeded(), "RATE_001", http.StatusTooManyRequests},
		{"database", ErrDatabaseError(errors.New("x")), "SYS_001", http.StatusInternalServerError},
		{"internal", InternalError(errors.New("x")), "SYS_001", http.StatusInternalServerError},
		{"validation", Validation("bad input"), "VAL_000", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestErrNotFound_Message(t *testing.T) {
	e := ErrNotFound("recurring purchase")
	assert.Equal(t, "recurring purchase not found", e.Message)
}

func TestErrorsAs(t *testing.T) {
	var target *AppError
	wrapped := fmt.Errorf("handler: %w", ErrInsufficientFunds())
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "PAY_001", target.Code)
}
