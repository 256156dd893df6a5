package domain

import (
	"context"
	"time"
)

// OrderLine is one purchased item inside a confirmed order.
type OrderLine struct {
	ProductID int
	Quantity  int
	UnitPrice float64
}

// ConfirmedOrder is the read model the attribution flow consumes. Total is
// derived from the lines at fetch time.
type ConfirmedOrder struct {
	ID     int
	UserID int
	Total  float64
	Lines  []OrderLine
}

// OrderSource provides read access to confirmed orders and their line items.
type OrderSource interface {
	GetConfirmedOrder(ctx context.Context, orderID int) (*ConfirmedOrder, error)
}

// CacheRepository defines caching operations
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
	Exists(ctx context.Context, key string) (bool, error)
	SetMulti(ctx context.Context, pairs map[string]interface{}, expiration time.Duration) error
	GetMulti(ctx context.Context, keys ...string) ([]string, error)
	Close() error
}

// AuditLogger defines audit logging operations for the commission domain
type AuditLogger interface {
	LogAffiliateRequest(ctx context.Context, userID, affiliateID int) error
	LogAffiliateDecision(ctx context.Context, adminID, affiliateID int, approved bool, reason string) error
	LogProductTermsUpdated(ctx context.Context, adminID, affiliateID, productID int) error
	LogSaleAttributed(ctx context.Context, affiliateID, orderID int, commission float64) error
	LogWithdrawalRequested(ctx context.Context, affiliateID, withdrawalID int, amount float64) error
	LogWithdrawalDecision(ctx context.Context, adminID, withdrawalID int, status string) error
	LogLedgerAdjustment(ctx context.Context, adminID, affiliateID int, amount float64, reason string) error
	LogLedgerDrift(ctx context.Context, affiliateID int, recorded, computed float64) error
}

// TokenBlacklist defines JWT token blacklist operations
type TokenBlacklist interface {
	Add(ctx context.Context, token string, expiration time.Duration) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}
