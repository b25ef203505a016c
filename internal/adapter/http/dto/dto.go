package dto

// StartSessionRequest is the request body for starting a payment session.
// A present business_id deep-links the flow straight to the amount step.
type StartSessionRequest struct {
	BusinessID *string `json:"business_id,omitempty" binding:"omitempty,uuid"`
	Currency   string  `json:"currency" binding:"required,len=3"`
}

// SelectBusinessRequest is the request body for the business selection step.
type SelectBusinessRequest struct {
	BusinessID string `json:"business_id" binding:"required,uuid"`
}

// SetAmountRequest is the request body for the amount step.
// Amount is a decimal string to avoid float rounding on the wire.
type SetAmountRequest struct {
	Amount string `json:"amount" binding:"required,decimal_gt0"`
}

// SetCoverageRequest toggles token coverage for the session.
type SetCoverageRequest struct {
	UseTokenCoverage *bool `json:"use_token_coverage" binding:"required"`
}

// SelectWalletRequest picks the fiat payment method.
type SelectWalletRequest struct {
	WalletID string `json:"wallet_id" binding:"required,uuid"`
}

// SetNoteRequest attaches or clears the optional payment note.
type SetNoteRequest struct {
	Note string `json:"note" binding:"max=500"`
}

// CreateRecurringRequest is the request body for a new recurring purchase.
type CreateRecurringRequest struct {
	TokensPerPurchase string `json:"tokens_per_purchase" binding:"required,decimal_gt0"`
	Frequency         string `json:"frequency" binding:"required"`
	PaymentMethodID   string `json:"payment_method_id" binding:"required,uuid"`
}

// EditRecurringRequest updates a recurring purchase. Omitted fields are left
// unchanged.
type EditRecurringRequest struct {
	TokensPerPurchase *string `json:"tokens_per_purchase,omitempty" binding:"omitempty,decimal_gt0"`
	Frequency         *string `json:"frequency,omitempty"`
}

// FeeQuoteResponse is the fee breakdown attached to a session.
type FeeQuoteResponse struct {
	Amount     string `json:"amount"`
	ServiceFee string `json:"service_fee"`
	Total      string `json:"total"`
}

// CoverageResponse is the token/fiat split attached to a session.
type CoverageResponse struct {
	TokenCoverage string `json:"token_coverage"`
	RemainingFiat string `json:"remaining_fiat"`
}

// WalletResponse is the wire view of a funding source.
type WalletResponse struct {
	ID               string  `json:"id"`
	Kind             string  `json:"kind"`
	Currency         string  `json:"currency"`
	Balance          string  `json:"balance"`
	AvailableBalance *string `json:"available_balance,omitempty"`
	IsActive         bool    `json:"is_active"`
	IsDefault        bool    `json:"is_default"`
}

// SessionResponse is the wire view of a payment session.
type SessionResponse struct {
	ID               string            `json:"id"`
	UserID           string            `json:"user_id"`
	Step             string            `json:"step"`
	BusinessID       *string           `json:"business_id,omitempty"`
	DeepLinked       bool              `json:"deep_linked"`
	Amount           string            `json:"amount"`
	Currency         string            `json:"currency"`
	UseTokenCoverage bool              `json:"use_token_coverage"`
	SelectedWalletID *string           `json:"selected_wallet_id,omitempty"`
	Note             *string           `json:"note,omitempty"`
	Quote            *FeeQuoteResponse `json:"quote,omitempty"`
	Coverage         *CoverageResponse `json:"coverage,omitempty"`
	EligibleWallets  []WalletResponse  `json:"eligible_wallets,omitempty"`
	TransactionID    *string           `json:"transaction_id,omitempty"`
	Attempts         int               `json:"attempts"`
	LastError        *string           `json:"last_error,omitempty"`
	CreatedAt        string            `json:"created_at"`
	UpdatedAt        string            `json:"updated_at"`
}

// TokenBalanceResponse is the response for the token balance query.
type TokenBalanceResponse struct {
	Balance string `json:"balance"`
}

// LedgerEntryResponse is the wire view of one token ledger entry.
type LedgerEntryResponse struct {
	ID              string  `json:"id"`
	TransactionType string  `json:"transaction_type"`
	Tokens          string  `json:"tokens"`
	Balance         string  `json:"balance"`
	Date            string  `json:"date"`
	Description     string  `json:"description"`
	RelatedID       *string `json:"related_purchase_id,omitempty"`
}

// LedgerListResponse wraps the paginated token history.
type LedgerListResponse struct {
	Items      []LedgerEntryResponse `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
}

// TransactionResponse is the wire view of a settled payment.
type TransactionResponse struct {
	ID            string  `json:"id"`
	BusinessID    string  `json:"business_id"`
	Amount        string  `json:"amount"`
	ServiceFee    string  `json:"service_fee"`
	Total         string  `json:"total"`
	TokenCoverage string  `json:"token_coverage"`
	FiatAmount    string  `json:"fiat_amount"`
	Currency      string  `json:"currency"`
	WalletID      *string `json:"wallet_id,omitempty"`
	Note          *string `json:"note,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

// TransactionListResponse wraps the paginated payment history.
type TransactionListResponse struct {
	Items      []TransactionResponse `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
}

// RecurringResponse is the wire view of a recurring purchase.
type RecurringResponse struct {
	ID                string  `json:"id"`
	TokensPerPurchase string  `json:"tokens_per_purchase"`
	Frequency         string  `json:"frequency"`
	NextPurchaseDate  string  `json:"next_purchase_date"`
	Status            string  `json:"status"`
	PaymentMethodID   string  `json:"payment_method_id"`
	StartDate         string  `json:"start_date"`
	CancelledAt       *string `json:"cancelled_at,omitempty"`
}

// PurchaseResponse is the wire view of a token purchase.
type PurchaseResponse struct {
	ID             string  `json:"id"`
	Tokens         string  `json:"tokens"`
	CostPerToken   string  `json:"cost_per_token"`
	TotalCost      string  `json:"total_cost"`
	Currency       string  `json:"currency"`
	PurchaseDate   string  `json:"purchase_date"`
	Status         string  `json:"status"`
	TransactionID  *string `json:"transaction_id,omitempty"`
	CertificateURL *string `json:"certificate_url,omitempty"`
	RecurringID    *string `json:"recurring_id,omitempty"`
}

// RunDueResponse reports how many due subscriptions fired in a sweep.
type RunDueResponse struct {
	Fired int `json:"fired"`
}
