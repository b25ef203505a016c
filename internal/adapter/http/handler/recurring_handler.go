package handler

import (
	"context"

	"tokenpay-core/internal/adapter/http/dto"
	"tokenpay-core/internal/core/domain"
	"tokenpay-core/internal/core/ports"
	"tokenpay-core/pkg/apperror"
	"tokenpay-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringHandler serves recurring token-purchase endpoints.
type RecurringHandler struct {
	recurringSvc ports.RecurringService
	clock        ports.Clock
}

// NewRecurringHandler creates a new RecurringHandler.
func NewRecurringHandler(recurringSvc ports.RecurringService, clock ports.Clock) *RecurringHandler {
	return &RecurringHandler{recurringSvc: recurringSvc, clock: clock}
}

// Create handles POST /api/v1/recurring.
func (h *RecurringHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	tokens, err := decimal.NewFromString(req.TokensPerPurchase)
	if err != nil {
		response.Error(c, apperror.ErrInvalidTokenQuantity())
		return
	}
	paymentMethodID, err := uuid.Parse(req.PaymentMethodID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid payment_method_id"))
		return
	}

	rec, err := h.recurringSvc.Create(c.Request.Context(), ports.CreateRecurringRequest{
		UserID:            userID,
		TokensPerPurchase: tokens,
		Frequency:         domain.Frequency(req.Frequency),
		PaymentMethodID:   paymentMethodID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toRecurringResponse(rec))
}

// List handles GET /api/v1/recurring.
func (h *RecurringHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	recs, err := h.recurringSvc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.RecurringResponse, 0, len(recs))
	for _, r := range recs {
		r := r
		items = append(items, toRecurringResponse(&r))
	}
	response.OK(c, items)
}

// Get handles GET /api/v1/recurring/:id.
func (h *RecurringHandler) Get(c *gin.Context) {
	rec, ok := h.owned(c)
	if !ok {
		return
	}
	response.OK(c, toRecurringResponse(rec))
}

// Edit handles PUT /api/v1/recurring/:id.
func (h *RecurringHandler) Edit(c *gin.Context) {
	rec, ok := h.owned(c)
	if !ok {
		return
	}

	var req dto.EditRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	edit := ports.EditRecurringRequest{}
	if req.TokensPerPurchase != nil {
		tokens, err := decimal.NewFromString(*req.TokensPerPurchase)
		if err != nil {
			response.Error(c, apperror.ErrInvalidTokenQuantity())
			return
		}
		edit.TokensPerPurchase = &tokens
	}
	if req.Frequency != nil {
		freq := domain.Frequency(*req.Frequency)
		edit.Frequency = &freq
	}

	updated, err := h.recurringSvc.Edit(c.Request.Context(), rec.ID, edit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toRecurringResponse(updated))
}

// Pause handles POST /api/v1/recurring/:id/pause.
func (h *RecurringHandler) Pause(c *gin.Context) {
	h.transition(c, h.recurringSvc.Pause)
}

// Resume handles POST /api/v1/recurring/:id/resume.
func (h *RecurringHandler) Resume(c *gin.Context) {
	h.transition(c, h.recurringSvc.Resume)
}

// Cancel handles POST /api/v1/recurring/:id/cancel.
func (h *RecurringHandler) Cancel(c *gin.Context) {
	h.transition(c, h.recurringSvc.Cancel)
}

// Trigger handles POST /api/v1/recurring/:id/trigger — fires one due
// subscription now. Exposed for the external scheduler.
func (h *RecurringHandler) Trigger(c *gin.Context) {
	rec, ok := h.owned(c)
	if !ok {
		return
	}

	purchase, err := h.recurringSvc.Trigger(c.Request.Context(), rec.ID, h.clock.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	if purchase == nil {
		// Another trigger already claimed this firing.
		response.NoContent(c)
		return
	}
	response.Created(c, toPurchaseResponse(purchase))
}

// RunDue handles POST /api/v1/recurring/run-due — sweeps every due
// subscription. Exposed for the external cron.
func (h *RecurringHandler) RunDue(c *gin.Context) {
	fired, err := h.recurringSvc.RunDue(c.Request.Context(), h.clock.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.RunDueResponse{Fired: fired})
}

func (h *RecurringHandler) transition(
	c *gin.Context,
	op func(ctx context.Context, id uuid.UUID) (*domain.RecurringPurchase, error),
) {
	rec, ok := h.owned(c)
	if !ok {
		return
	}

	updated, err := op(c.Request.Context(), rec.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toRecurringResponse(updated))
}

// owned resolves the path subscription and enforces ownership. Foreign
// subscriptions surface as not-found.
func (h *RecurringHandler) owned(c *gin.Context) (*domain.RecurringPurchase, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return nil, false
	}
	id, ok := pathID(c)
	if !ok {
		return nil, false
	}

	rec, err := h.recurringSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	if rec.UserID != userID {
		response.Error(c, apperror.ErrNotFound("Recurring purchase"))
		return nil, false
	}
	return rec, true
}

// toRecurringResponse converts domain.RecurringPurchase to DTO.
func toRecurringResponse(r *domain.RecurringPurchase) dto.RecurringResponse {
	resp := dto.RecurringResponse{
		ID:                r.ID.String(),
		TokensPerPurchase: r.TokensPerPurchase.String(),
		Frequency:         string(r.Frequency),
		NextPurchaseDate:  r.NextPurchaseDate.Format(timeFormat),
		Status:            string(r.Status),
		PaymentMethodID:   r.PaymentMethodID.String(),
		StartDate:         r.StartDate.Format(timeFormat),
	}
	if r.CancelledAt != nil {
		s := r.CancelledAt.Format(timeFormat)
		resp.CancelledAt = &s
	}
	return resp
}

// toPurchaseResponse converts domain.TokenPurchase to DTO.
func toPurchaseResponse(p *domain.TokenPurchase) dto.PurchaseResponse {
	resp := dto.PurchaseResponse{
		ID:             p.ID.String(),
		Tokens:         p.Tokens.String(),
		CostPerToken:   p.CostPerToken.String(),
		TotalCost:      p.TotalCost.String(),
		Currency:       p.Currency,
		PurchaseDate:   p.PurchaseDate.Format(timeFormat),
		Status:         string(p.Status),
		CertificateURL: p.CertificateURL,
	}
	if p.TransactionID != nil {
		id := p.TransactionID.String()
		resp.TransactionID = &id
	}
	if p.RecurringID != nil {
		id := p.RecurringID.String()
		resp.RecurringID = &id
	}
	return resp
}
