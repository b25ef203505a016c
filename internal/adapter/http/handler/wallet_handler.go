package handler

import (
	"math"

	"tokenpay-core/internal/adapter/http/dto"
	"tokenpay-core/internal/core/domain"
	"tokenpay-core/internal/core/ports"
	"tokenpay-core/pkg/apperror"
	"tokenpay-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// WalletHandler serves wallet and token balance endpoints.
type WalletHandler struct {
	ledger ports.WalletLedger
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledger ports.WalletLedger) *WalletHandler {
	return &WalletHandler{ledger: ledger}
}

// ListEligible handles GET /api/v1/wallets.
func (h *WalletHandler) ListEligible(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	currency := c.Query("currency")
	if currency == "" {
		response.Error(c, apperror.Validation("currency query parameter is required"))
		return
	}

	minAvailable := decimal.Zero
	if raw := c.Query("min_available"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil || d.IsNegative() {
			response.Error(c, apperror.Validation("invalid min_available"))
			return
		}
		minAvailable = d
	}

	wallets, err := h.ledger.EligibleWallets(c.Request.Context(), userID, currency, minAvailable)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.WalletResponse, 0, len(wallets))
	for _, w := range wallets {
		w := w
		items = append(items, toWalletResponse(&w))
	}
	response.OK(c, items)
}

// TokenBalance handles GET /api/v1/tokens/balance.
func (h *WalletHandler) TokenBalance(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	balance, err := h.ledger.TokenBalance(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TokenBalanceResponse{Balance: balance.String()})
}

// TokenHistory handles GET /api/v1/tokens/history.
func (h *WalletHandler) TokenHistory(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	entries, total, err := h.ledger.TokenHistory(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, toLedgerEntryResponse(e))
	}

	response.OK(c, dto.LedgerListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	})
}

// toWalletResponse converts domain.Wallet to DTO.
func toWalletResponse(w *domain.Wallet) dto.WalletResponse {
	resp := dto.WalletResponse{
		ID:        w.ID.String(),
		Kind:      string(w.Kind),
		Currency:  w.Currency,
		Balance:   w.Balance.String(),
		IsActive:  w.IsActive,
		IsDefault: w.IsDefault,
	}
	if w.AvailableBalance != nil {
		s := w.AvailableBalance.String()
		resp.AvailableBalance = &s
	}
	return resp
}

// toLedgerEntryResponse converts domain.TokenLedgerEntry to DTO.
func toLedgerEntryResponse(e domain.TokenLedgerEntry) dto.LedgerEntryResponse {
	resp := dto.LedgerEntryResponse{
		ID:              e.ID.String(),
		TransactionType: string(e.TransactionType),
		Tokens:          e.Tokens.String(),
		Balance:         e.Balance.String(),
		Date:            e.Date.Format(timeFormat),
		Description:     e.Description,
	}
	if e.RelatedPurchaseID != nil {
		id := e.RelatedPurchaseID.String()
		resp.RelatedID = &id
	}
	return resp
}
