package handler

import (
	"tokenpay-core/internal/adapter/http/dto"
	"tokenpay-core/internal/core/domain"
	"tokenpay-core/internal/core/ports"
	"tokenpay-core/pkg/apperror"
	"tokenpay-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SessionHandler drives the payment session flow endpoints.
type SessionHandler struct {
	sessionSvc ports.PaymentSessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionSvc ports.PaymentSessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// Start handles POST /api/v1/sessions.
func (h *SessionHandler) Start(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	start := ports.StartSessionRequest{
		UserID:   userID,
		Currency: req.Currency,
	}
	if req.BusinessID != nil {
		businessID, err := uuid.Parse(*req.BusinessID)
		if err != nil {
			response.Error(c, apperror.Validation("invalid business_id"))
			return
		}
		start.BusinessID = &businessID
	}

	sess, err := h.sessionSvc.Start(c.Request.Context(), start)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toSessionResponse(sess))
}

// Get handles GET /api/v1/sessions/:id.
func (h *SessionHandler) Get(c *gin.Context) {
	sess, ok := h.ownedSession(c)
	if !ok {
		return
	}
	response.OK(c, toSessionResponse(sess))
}

// SelectBusiness handles POST /api/v1/sessions/:id/business.
func (h *SessionHandler) SelectBusiness(c *gin.Context) {
	sessionID, ok := h.ownedSessionID(c)
	if !ok {
		return
	}

	var req dto.SelectBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid business_id"))
		return
	}

	sess, err := h.sessionSvc.SelectBusiness(c.Request.Context(), sessionID, businessID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toSessionResponse(sess))
}

// SetAmount handles PUT /api/v1/sessions/:id/amount.
func (h *SessionHandler) SetAmount(c *gin.Context) {
	sessionID, ok := h.ownedSessionID(c)
	if !ok {
		return
	}

	var req dto.SetAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	sess, err := h.sessionSvc.SetAmount(c.Request.Context(), sessionID, amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toSessionResponse(sess))
}

// SetCoverage handles PUT /api/v1/sessions/:id/coverage.
func (h *SessionHandler) SetCoverage(c *gin.Context) {
	sessionID, ok := h.ownedSessionID(c)
	if !ok {
		return
	}

	var req dto.SetCoverageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	sess, err := h.sessionSvc.SetUseTokenCoverage(c.Request.Context(), sessionID, *req.UseTokenCoverage)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toSessionResponse(sess))
}

// SelectWallet handles PUT /api/v1/sessions/:id/wallet.
func (h *SessionHandler) SelectWallet(c *gin.Context) {
	sessionID, ok := h.ownedSessionID(c)
	if !ok {
		return
	}

	var req dto.SelectWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	walletID, err := uuid.Parse(req.WalletID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid wallet_id"))
		return
	}

	sess, err := h.sessionSvc.SelectWallet(c.Request.Context(), sessionID, walletID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toSessionResponse(sess))
}

// SetNote handles PUT /api/v1/sessions/:id/note.
func (h *SessionHandler) SetNote(c *gin.Context) {
	sessionID, ok := h.ownedSessionID(c)
	if !ok {
		return
	}

	var req dto.SetNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	sess, err := h.sessionSvc.SetNote(c.Request.Context(), sessionID, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toSessionResponse(sess))
}

// Next handles POST /api/v1/sessions/:id/next.
func (h *SessionHandler) Next(c *gin.Context) {
	sessionID, ok := h.ownedSessionID(c)
	if !ok {
		return
	}

	sess, err := h.sessionSvc.Next(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toSessionResponse(sess))
}

// Back handles POST /api/v1/sessions/:id/back. A deep-linked session backing
// out of the amount step exits the flow and returns 204.
func (h *SessionHandler) Back(c *gin.Context) {
	sessionID, ok := h.ownedSessionID(c)
	if !ok {
		return
	}

	sess, err := h.sessionSvc.Back(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if sess == nil {
		response.NoContent(c)
		return
	}
	response.OK(c, toSessionResponse(sess))
}

// Confirm handles POST /api/v1/sessions/:id/confirm.
func (h *SessionHandler) Confirm(c *gin.Context) {
	sessionID, ok := h.ownedSessionID(c)
	if !ok {
		return
	}

	sess, err := h.sessionSvc.Confirm(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toSessionResponse(sess))
}

// Abandon handles DELETE /api/v1/sessions/:id.
func (h *SessionHandler) Abandon(c *gin.Context) {
	sessionID, ok := h.ownedSessionID(c)
	if !ok {
		return
	}

	if err := h.sessionSvc.Abandon(c.Request.Context(), sessionID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ownedSession resolves the path session and enforces that it belongs to the
// caller. Foreign sessions surface as not-found to avoid leaking existence.
func (h *SessionHandler) ownedSession(c *gin.Context) (*domain.PaymentSession, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return nil, false
	}
	sessionID, ok := pathID(c)
	if !ok {
		return nil, false
	}

	sess, err := h.sessionSvc.Get(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	if sess.UserID != userID {
		response.Error(c, apperror.ErrNotFound("Session"))
		return nil, false
	}
	return sess, true
}

// ownedSessionID is ownedSession for mutation endpoints: it returns just the
// verified session ID.
func (h *SessionHandler) ownedSessionID(c *gin.Context) (uuid.UUID, bool) {
	sess, ok := h.ownedSession(c)
	if !ok {
		return uuid.Nil, false
	}
	return sess.ID, true
}

// toSessionResponse converts domain.PaymentSession to DTO.
func toSessionResponse(s *domain.PaymentSession) dto.SessionResponse {
	resp := dto.SessionResponse{
		ID:               s.ID.String(),
		UserID:           s.UserID.String(),
		Step:             string(s.Step),
		DeepLinked:       s.DeepLinked,
		Amount:           s.Amount.String(),
		Currency:         s.Currency,
		UseTokenCoverage: s.UseTokenCoverage,
		Note:             s.Note,
		Attempts:         s.Attempts,
		LastError:        s.LastError,
		CreatedAt:        s.CreatedAt.Format(timeFormat),
		UpdatedAt:        s.UpdatedAt.Format(timeFormat),
	}
	if s.BusinessID != nil {
		id := s.BusinessID.String()
		resp.BusinessID = &id
	}
	if s.SelectedWalletID != nil {
		id := s.SelectedWalletID.String()
		resp.SelectedWalletID = &id
	}
	if s.TransactionID != nil {
		id := s.TransactionID.String()
		resp.TransactionID = &id
	}
	if s.Quote != nil {
		resp.Quote = &dto.FeeQuoteResponse{
			Amount:     s.Quote.Amount.String(),
			ServiceFee: s.Quote.ServiceFee.String(),
			Total:      s.Quote.Total.String(),
		}
	}
	if s.Coverage != nil {
		resp.Coverage = &dto.CoverageResponse{
			TokenCoverage: s.Coverage.TokenCoverage.String(),
			RemainingFiat: s.Coverage.RemainingFiat.String(),
		}
	}
	for _, w := range s.EligibleWallets {
		w := w
		resp.EligibleWallets = append(resp.EligibleWallets, toWalletResponse(&w))
	}
	return resp
}
