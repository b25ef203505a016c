package handler

import (
	"math"

	"tokenpay-core/internal/adapter/http/dto"
	"tokenpay-core/internal/core/domain"
	"tokenpay-core/internal/core/ports"
	"tokenpay-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransactionHandler serves the durable payment history.
type TransactionHandler struct {
	txReader ports.TransactionReader
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txReader ports.TransactionReader) *TransactionHandler {
	return &TransactionHandler{txReader: txReader}
}

// List handles GET /api/v1/transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	records, total, err := h.txReader.ListByUser(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(records))
	for _, r := range records {
		items = append(items, toTransactionResponse(r))
	}

	response.OK(c, dto.TransactionListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	})
}

// toTransactionResponse converts domain.TransactionRecord to DTO.
func toTransactionResponse(r domain.TransactionRecord) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:            r.ID.String(),
		BusinessID:    r.BusinessID.String(),
		Amount:        r.Amount.String(),
		ServiceFee:    r.ServiceFee.String(),
		Total:         r.Total.String(),
		TokenCoverage: r.TokenCoverage.String(),
		FiatAmount:    r.FiatAmount.String(),
		Currency:      r.Currency,
		Note:          r.Note,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt.Format(timeFormat),
	}
	if r.WalletID != nil {
		id := r.WalletID.String()
		resp.WalletID = &id
	}
	return resp
}
