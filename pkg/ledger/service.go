// Package ledger owns AffiliateBalance and AffiliateTransaction. Every
// balance mutation flows through this service; other services never touch
// balance fields directly.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jordanlanch/affiliatedb/ent"
	"github.com/jordanlanch/affiliatedb/ent/affiliatebalance"
	"github.com/jordanlanch/affiliatedb/ent/affiliatetransaction"
	"github.com/jordanlanch/affiliatedb/pkg/domain"
	"github.com/jordanlanch/affiliatedb/pkg/logger"
	"github.com/jordanlanch/affiliatedb/pkg/money"
)

const (
	// casRetryAttempts bounds the optimistic-concurrency retry loop on the
	// materialized balance row.
	casRetryAttempts = 5

	balanceCacheTTL = 5 * time.Minute

	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ErrBalanceConflict signals that another writer updated the balance row
// between our read and our compare-and-swap write. Callers embedding a
// posting in their own transaction must roll back and retry their whole unit
// of work when they see it.
var ErrBalanceConflict = errors.New("balance row changed concurrently")

// Service is the balance ledger
type Service struct {
	db     *ent.Client
	cache  domain.CacheRepository
	audit  domain.AuditLogger
	logger logger.Logger
}

// NewService creates a new ledger service. cache may be nil; balance reads
// then always hit the database.
func NewService(db *ent.Client, cache domain.CacheRepository, audit domain.AuditLogger, log logger.Logger) *Service {
	return &Service{db: db, cache: cache, audit: audit, logger: log}
}

// BalanceSnapshot is the read model served to balance queries.
type BalanceSnapshot struct {
	AffiliateID    int       `json:"affiliate_id"`
	CurrentBalance float64   `json:"current_balance"`
	TotalEarned    float64   `json:"total_earned"`
	TotalWithdrawn float64   `json:"total_withdrawn"`
	LastUpdated    time.Time `json:"last_updated"`
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	Type  string
	From  *time.Time
	To    *time.Time
	Page  int
	Limit int
}

// GetOrCreateBalance returns the balance row for an affiliate, initializing
// it to zero on first use. Idempotent under concurrent callers thanks to the
// unique affiliate_id constraint.
func (s *Service) GetOrCreateBalance(ctx context.Context, affiliateID int) (*ent.AffiliateBalance, error) {
	return getOrCreateBalance(ctx, s.db.AffiliateBalance, affiliateID)
}

func getOrCreateBalance(ctx context.Context, c *ent.AffiliateBalanceClient, affiliateID int) (*ent.AffiliateBalance, error) {
	bal, err := c.Query().
		Where(affiliatebalance.AffiliateIDEQ(affiliateID)).
		Only(ctx)
	if err == nil {
		return bal, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query balance: %w", err)
	}

	bal, err = c.Create().
		SetAffiliateID(affiliateID).
		Save(ctx)
	if err != nil {
		// Lost the creation race; the row exists now.
		if ent.IsConstraintError(err) {
			return c.Query().
				Where(affiliatebalance.AffiliateIDEQ(affiliateID)).
				Only(ctx)
		}
		return nil, fmt.Errorf("failed to create balance: %w", err)
	}
	return bal, nil
}

// validateAmount enforces the sign convention per entry type.
func validateAmount(txType affiliatetransaction.Type, amount float64) error {
	if money.Equal(amount, 0) {
		return domain.NewValidationError("Transaction amount must not be zero")
	}
	switch txType {
	case affiliatetransaction.TypeCommission:
		if amount < 0 {
			return domain.NewValidationError("Commission transactions must be positive")
		}
	case affiliatetransaction.TypeWithdrawal:
		if amount > 0 {
			return domain.NewValidationError("Withdrawal transactions must be negative")
		}
	}
	return nil
}

// PostTransaction atomically appends a ledger entry and folds its signed
// amount into the materialized balance. A debit that would drive the balance
// negative fails with InsufficientBalance and writes nothing.
func (s *Service) PostTransaction(ctx context.Context, affiliateID int, txType affiliatetransaction.Type, amount float64, description string, referenceID int) (*ent.AffiliateTransaction, error) {
	if err := validateAmount(txType, amount); err != nil {
		return nil, err
	}

	var txn *ent.AffiliateTransaction
	var err error
	for attempt := 0; attempt < casRetryAttempts; attempt++ {
		txn, err = s.postOnce(ctx, affiliateID, txType, amount, description, referenceID)
		if err == nil {
			break
		}
		if !errors.Is(err, ErrBalanceConflict) {
			return nil, err
		}
	}
	if err != nil {
		return nil, domain.NewConflictError("Balance is being updated concurrently, please retry")
	}

	s.InvalidateBalance(ctx, affiliateID)
	return txn, nil
}

// postOnce is a single optimistic attempt in its own transaction.
func (s *Service) postOnce(ctx context.Context, affiliateID int, txType affiliatetransaction.Type, amount float64, description string, referenceID int) (*ent.AffiliateTransaction, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txn, err := s.PostTransactionTx(ctx, tx, affiliateID, txType, amount, description, referenceID)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return txn, nil
}

// PostTransactionTx appends a ledger entry inside the caller's transaction:
// read the balance, check the non-negative invariant, append the entry and
// swap the balance row only if it still carries the value we read. The caller
// owns commit and rollback, and must retry its whole unit of work on
// ErrBalanceConflict. The caller is also responsible for invalidating the
// balance cache after a successful commit.
func (s *Service) PostTransactionTx(ctx context.Context, tx *ent.Tx, affiliateID int, txType affiliatetransaction.Type, amount float64, description string, referenceID int) (*ent.AffiliateTransaction, error) {
	if err := validateAmount(txType, amount); err != nil {
		return nil, err
	}

	bal, err := getOrCreateBalance(ctx, tx.AffiliateBalance, affiliateID)
	if err != nil {
		return nil, err
	}

	newBalance := money.Add(bal.CurrentBalance, amount)
	if newBalance < 0 {
		return nil, domain.NewInsufficientBalanceError(-amount, bal.CurrentBalance)
	}

	create := tx.AffiliateTransaction.
		Create().
		SetBalanceID(bal.ID).
		SetType(txType).
		SetAmount(money.Round(amount)).
		SetDescription(description)
	if referenceID != 0 {
		create = create.SetReferenceID(referenceID)
	}
	txn, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	update := tx.AffiliateBalance.
		UpdateOneID(bal.ID).
		Where(affiliatebalance.CurrentBalanceEQ(bal.CurrentBalance)).
		SetCurrentBalance(newBalance)
	if amount > 0 {
		update = update.SetTotalEarned(money.Add(bal.TotalEarned, amount))
	} else {
		update = update.SetTotalWithdrawn(money.Add(bal.TotalWithdrawn, -amount))
	}
	if _, err = update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrBalanceConflict
		}
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	return txn, nil
}

// GetBalance returns the balance snapshot for an affiliate, served from the
// cache when fresh.
func (s *Service) GetBalance(ctx context.Context, affiliateID int) (*BalanceSnapshot, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, balanceKey(affiliateID)); err == nil && cached != "" {
			var snap BalanceSnapshot
			if err := json.Unmarshal([]byte(cached), &snap); err == nil {
				return &snap, nil
			}
		}
	}

	bal, err := s.GetOrCreateBalance(ctx, affiliateID)
	if err != nil {
		return nil, err
	}

	snap := &BalanceSnapshot{
		AffiliateID:    bal.AffiliateID,
		CurrentBalance: bal.CurrentBalance,
		TotalEarned:    bal.TotalEarned,
		TotalWithdrawn: bal.TotalWithdrawn,
		LastUpdated:    bal.LastUpdated,
	}

	if s.cache != nil {
		if data, err := json.Marshal(snap); err == nil {
			if err := s.cache.Set(ctx, balanceKey(affiliateID), string(data), balanceCacheTTL); err != nil {
				s.logger.Warn("failed to cache balance snapshot", "affiliate_id", affiliateID, "error", err)
			}
		}
	}
	return snap, nil
}

// ListTransactions returns one page of an affiliate's statement, newest
// first, with the total row count for pagination.
func (s *Service) ListTransactions(ctx context.Context, affiliateID int, filter TransactionFilter) ([]*ent.AffiliateTransaction, int, error) {
	bal, err := s.GetOrCreateBalance(ctx, affiliateID)
	if err != nil {
		return nil, 0, err
	}

	q := s.db.AffiliateTransaction.
		Query().
		Where(affiliatetransaction.BalanceIDEQ(bal.ID))

	if filter.Type != "" {
		tt := affiliatetransaction.Type(filter.Type)
		if err := affiliatetransaction.TypeValidator(tt); err != nil {
			return nil, 0, domain.NewValidationError(fmt.Sprintf("Invalid transaction type: %s", filter.Type))
		}
		q = q.Where(affiliatetransaction.TypeEQ(tt))
	}
	if filter.From != nil {
		q = q.Where(affiliatetransaction.TransactionDateGTE(*filter.From))
	}
	if filter.To != nil {
		q = q.Where(affiliatetransaction.TransactionDateLTE(*filter.To))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	txns, err := q.
		Order(ent.Desc(affiliatetransaction.FieldTransactionDate), ent.Desc(affiliatetransaction.FieldID)).
		Offset((page - 1) * limit).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, total, nil
}

// Adjust posts a signed adjustment entry on behalf of an admin, leaving an
// audit trail. This is the only sanctioned path for manual corrections.
func (s *Service) Adjust(ctx context.Context, adminID, affiliateID int, amount float64, reason string) (*ent.AffiliateTransaction, error) {
	if reason == "" {
		return nil, domain.NewValidationError("An adjustment reason is required")
	}

	txn, err := s.PostTransaction(ctx, affiliateID, affiliatetransaction.TypeAdjustment, amount, reason, 0)
	if err != nil {
		return nil, err
	}

	if err := s.audit.LogLedgerAdjustment(ctx, adminID, affiliateID, amount, reason); err != nil {
		s.logger.Warn("failed to write adjustment audit entry", "error", err)
	}
	return txn, nil
}

// Reconcile recomputes an affiliate's balance from the transaction log and
// compares it to the materialized row. Drift is reported and audited, never
// auto-corrected; an admin fixes it through Adjust with the audit trail
// pointing at the cause.
func (s *Service) Reconcile(ctx context.Context, affiliateID int) error {
	bal, err := s.GetOrCreateBalance(ctx, affiliateID)
	if err != nil {
		return err
	}

	txns, err := s.db.AffiliateTransaction.
		Query().
		Where(affiliatetransaction.BalanceIDEQ(bal.ID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query transactions: %w", err)
	}

	sum := money.FromFloat(0)
	for _, txn := range txns {
		sum = sum.Add(money.FromFloat(txn.Amount))
	}
	computed := money.ToFloat(sum)

	drifted := !money.Equal(bal.CurrentBalance, computed) ||
		!money.Equal(bal.CurrentBalance, money.Sub(bal.TotalEarned, bal.TotalWithdrawn))
	if !drifted {
		return nil
	}

	if err := s.audit.LogLedgerDrift(ctx, affiliateID, bal.CurrentBalance, computed); err != nil {
		s.logger.Error("failed to write ledger drift audit entry", "error", err)
	}
	s.logger.Error("ledger drift detected",
		"affiliate_id", affiliateID,
		"recorded", bal.CurrentBalance,
		"computed", computed)
	return domain.NewLedgerDriftError(affiliateID, bal.CurrentBalance, computed)
}

// ReconcileAll sweeps every balance row and returns the drift errors found.
func (s *Service) ReconcileAll(ctx context.Context) []error {
	balances, err := s.db.AffiliateBalance.Query().All(ctx)
	if err != nil {
		return []error{fmt.Errorf("failed to list balances: %w", err)}
	}

	var drifts []error
	for _, bal := range balances {
		if err := s.Reconcile(ctx, bal.AffiliateID); err != nil {
			drifts = append(drifts, err)
		}
	}
	return drifts
}

// InvalidateBalance drops the cached snapshot after a ledger write.
func (s *Service) InvalidateBalance(ctx context.Context, affiliateID int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, balanceKey(affiliateID)); err != nil {
		s.logger.Warn("failed to invalidate balance cache", "affiliate_id", affiliateID, "error", err)
	}
}

func balanceKey(affiliateID int) string {
	return fmt.Sprintf("balance:affiliate:%d", affiliateID)
}
