package handler

import (
	"strconv"

	"tokenpay-core/internal/adapter/http/middleware"
	redisStore "tokenpay-core/internal/adapter/storage/redis"
	"tokenpay-core/internal/core/ports"
	"tokenpay-core/pkg/apperror"
	"tokenpay-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02T15:04:05Z07:00"

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SessionSvc     ports.PaymentSessionService
	Ledger         ports.WalletLedger
	RecurringSvc   ports.RecurringService
	TxReader       ports.TransactionReader
	Clock          ports.Clock
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes — caller identity from the edge-supplied header
	v1 := r.Group("/api/v1", middleware.UserContext())

	sessionHandler := NewSessionHandler(deps.SessionSvc)
	sessions := v1.Group("/sessions")
	{
		sessions.POST("", rl("sessions"), sessionHandler.Start)
		sessions.GET("/:id", rl("reads"), sessionHandler.Get)
		sessions.POST("/:id/business", rl("sessions"), sessionHandler.SelectBusiness)
		sessions.PUT("/:id/amount", rl("sessions"), sessionHandler.SetAmount)
		sessions.PUT("/:id/coverage", rl("sessions"), sessionHandler.SetCoverage)
		sessions.PUT("/:id/wallet", rl("sessions"), sessionHandler.SelectWallet)
		sessions.PUT("/:id/note", rl("sessions"), sessionHandler.SetNote)
		sessions.POST("/:id/next", rl("sessions"), sessionHandler.Next)
		sessions.POST("/:id/back", rl("sessions"), sessionHandler.Back)
		sessions.POST("/:id/confirm", rl("confirm"), sessionHandler.Confirm)
		sessions.DELETE("/:id", rl("sessions"), sessionHandler.Abandon)
	}

	walletHandler := NewWalletHandler(deps.Ledger)
	wallets := v1.Group("/wallets")
	{
		wallets.GET("", rl("reads"), walletHandler.ListEligible)
	}

	tokens := v1.Group("/tokens")
	{
		tokens.GET("/balance", rl("reads"), walletHandler.TokenBalance)
		tokens.GET("/history", rl("reads"), walletHandler.TokenHistory)
	}

	txHandler := NewTransactionHandler(deps.TxReader)
	transactions := v1.Group("/transactions")
	{
		transactions.GET("", rl("reads"), txHandler.List)
	}

	recurringHandler := NewRecurringHandler(deps.RecurringSvc, deps.Clock)
	recurring := v1.Group("/recurring")
	{
		recurring.POST("", rl("recurring"), recurringHandler.Create)
		recurring.GET("", rl("reads"), recurringHandler.List)
		recurring.POST("/run-due", rl("recurring"), recurringHandler.RunDue)
		recurring.GET("/:id", rl("reads"), recurringHandler.Get)
		recurring.PUT("/:id", rl("recurring"), recurringHandler.Edit)
		recurring.POST("/:id/pause", rl("recurring"), recurringHandler.Pause)
		recurring.POST("/:id/resume", rl("recurring"), recurringHandler.Resume)
		recurring.POST("/:id/cancel", rl("recurring"), recurringHandler.Cancel)
		recurring.POST("/:id/trigger", rl("recurring"), recurringHandler.Trigger)
	}

	return r
}

// currentUser returns the caller identity placed by middleware.UserContext.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	uid, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.Validation("missing user identity"))
		return uuid.Nil, false
	}
	return uid.(uuid.UUID), true
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

// pageParams parses page/page_size query parameters with defaults.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
