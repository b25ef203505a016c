// Package sandbox provides in-process stand-ins for the external
// collaborators: a settlement gateway, a business directory, a subscription
// lookup and a certificate issuer. They are deterministic and safe for
// local development; production deployments swap in real integrations.
package sandbox

import (
	"context"
	"fmt"
	"sync"

	"tokenpay-core/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Gateway implements ports.SettlementGateway. Charges always succeed and are
// idempotent: the same key yields the same transaction ID.
type Gateway struct {
	mu      sync.Mutex
	charges map[string]uuid.UUID
	log     zerolog.Logger
}

// NewGateway creates a sandbox settlement gateway.
func NewGateway(log zerolog.Logger) *Gateway {
	return &Gateway{
		charges: make(map[string]uuid.UUID),
		log:     log,
	}
}

// Charge settles a payment. A repeated idempotency key returns the original
// transaction ID without moving money twice.
func (g *Gateway) Charge(_ context.Context, req ports.ChargeRequest) (*ports.ChargeResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if txID, ok := g.charges[req.IdempotencyKey]; ok {
		g.log.Debug().Str("key", req.IdempotencyKey).Msg("idempotent charge replay")
		return &ports.ChargeResult{TransactionID: txID}, nil
	}

	txID := uuid.New()
	g.charges[req.IdempotencyKey] = txID

	g.log.Info().
		Str("key", req.IdempotencyKey).
		Str("wallet_id", req.WalletID.String()).
		Str("amount", req.Amount.String()).
		Str("currency", req.Currency).
		Msg("sandbox charge settled")

	return &ports.ChargeResult{TransactionID: txID}, nil
}

// Directory implements ports.BusinessDirectory over a seeded in-memory set.
type Directory struct {
	mu         sync.RWMutex
	businesses map[uuid.UUID]ports.BusinessSummary
}

// NewDirectory creates an empty sandbox directory.
func NewDirectory() *Directory {
	return &Directory{businesses: make(map[uuid.UUID]ports.BusinessSummary)}
}

// Register adds a business to the directory.
func (d *Directory) Register(b ports.BusinessSummary) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.businesses[b.ID] = b
}

// Lookup resolves a business. Returns nil when the business does not exist.
func (d *Directory) Lookup(_ context.Context, businessID uuid.UUID) (*ports.BusinessSummary, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	b, ok := d.businesses[businessID]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// Subscriptions implements ports.SubscriptionStatus over a set of waiver
// holders.
type Subscriptions struct {
	mu      sync.RWMutex
	waivers map[uuid.UUID]struct{}
}

// NewSubscriptions creates an empty sandbox subscription lookup.
func NewSubscriptions() *Subscriptions {
	return &Subscriptions{waivers: make(map[uuid.UUID]struct{})}
}

// GrantWaiver marks a user as holding a fee-waiver subscription.
func (s *Subscriptions) GrantWaiver(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waivers[userID] = struct{}{}
}

// HasWaiver reports whether the user holds a fee-waiver subscription.
func (s *Subscriptions) HasWaiver(_ context.Context, userID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.waivers[userID]
	return ok, nil
}

// Certificates implements ports.CertificateIssuer with deterministic URLs.
type Certificates struct {
	baseURL string
}

// NewCertificates creates a sandbox certificate issuer.
func NewCertificates(baseURL string) *Certificates {
	if baseURL == "" {
		baseURL = "https://certificates.sandbox.local"
	}
	return &Certificates{baseURL: baseURL}
}

// Issue returns the certificate URL for a completed token purchase.
func (c *Certificates) Issue(_ context.Context, tokenPurchaseID uuid.UUID) (string, error) {
	return fmt.Sprintf("%s/%s.pdf", c.baseURL, tokenPurchaseID), nil
}
