package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Session Guard Validation (VAL) ----
// Guard failures are user-correctable, surfaced inline, never logged as incidents.

func ErrNoBusinessSelected() *AppError {
	return New("VAL_001", "No business selected", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_002", "Invalid amount", http.StatusBadRequest)
}

func ErrNoEligibleWallet() *AppError {
	return New("VAL_003", "No eligible wallet for the remaining amount", http.StatusBadRequest)
}

func ErrNoPaymentMethodSelected() *AppError {
	return New("VAL_004", "No payment method selected", http.StatusBadRequest)
}

func ErrInvalidStep(action string) *AppError {
	return New("VAL_005", fmt.Sprintf("Action %q is not valid for the current step", action), http.StatusConflict)
}

func ErrSessionLocked() *AppError {
	return New("VAL_006", "Session is processing and cannot accept input", http.StatusConflict)
}

func ErrSubscriptionNotActive() *AppError {
	return New("VAL_007", "Recurring purchase is not active", http.StatusConflict)
}

func ErrSubscriptionNotDue() *AppError {
	return New("VAL_008", "Recurring purchase is not due", http.StatusConflict)
}

func ErrInvalidTokenQuantity() *AppError {
	return New("VAL_009", "Token quantity must be at least 1", http.StatusBadRequest)
}

// ---- Funds & Lookup (PAY) ----

func ErrInsufficientFunds() *AppError {
	return New("PAY_001", "Insufficient available balance in wallet", http.StatusPaymentRequired)
}

func ErrInsufficientTokens() *AppError {
	return New("PAY_002", "Insufficient token balance", http.StatusPaymentRequired)
}

func ErrNotFound(entity string) *AppError {
	return New("PAY_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrWalletInactive() *AppError {
	return New("PAY_005", "Wallet is deactivated", http.StatusUnprocessableEntity)
}

// ---- Settlement (SET) ----

// ErrSettlementFailed is retryable by re-attempting from review; the session
// idempotency key prevents duplicate charges.
func ErrSettlementFailed(err error) *AppError {
	return Wrap("SET_001", "Settlement gateway failure", http.StatusBadGateway, err)
}

func ErrSettlementTimeout(err error) *AppError {
	return Wrap("SET_002", "Settlement gateway timed out", http.StatusGatewayTimeout, err)
}

func ErrSettlementExhausted() *AppError {
	return New("SET_003", "Settlement failed after maximum attempts; start a new session", http.StatusBadGateway)
}

// ---- Scheduling (SCH) ----

// ErrSchedulingConflict signals a concurrent ledger append ordering violation.
// Retried transactionally, never surfaced to the user.
func ErrSchedulingConflict(err error) *AppError {
	return Wrap("SCH_001", "Concurrent ledger append conflict", http.StatusConflict, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a guard-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}
