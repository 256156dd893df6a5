// Package withdrawal drives payout requests through their approval state
// machine. The ledger is only touched on settlement; approval is a logical
// reservation re-validated when the payout is marked paid.
package withdrawal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jordanlanch/affiliatedb/ent"
	entaffiliate "github.com/jordanlanch/affiliatedb/ent/affiliate"
	"github.com/jordanlanch/affiliatedb/ent/affiliatetransaction"
	"github.com/jordanlanch/affiliatedb/ent/withdrawalrequest"
	"github.com/jordanlanch/affiliatedb/pkg/domain"
	"github.com/jordanlanch/affiliatedb/pkg/ledger"
	"github.com/jordanlanch/affiliatedb/pkg/logger"
	"github.com/jordanlanch/affiliatedb/pkg/money"
)

const settlementRetryAttempts = 5

// transitions is the single source of truth for the state machine. Missing
// states (rejected, paid) are terminal.
var transitions = map[withdrawalrequest.Status][]withdrawalrequest.Status{
	withdrawalrequest.StatusPending:  {withdrawalrequest.StatusApproved, withdrawalrequest.StatusRejected},
	withdrawalrequest.StatusApproved: {withdrawalrequest.StatusPaid, withdrawalrequest.StatusRejected},
}

func canTransition(from, to withdrawalrequest.Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Service is the withdrawal workflow
type Service struct {
	db        *ent.Client
	ledger    *ledger.Service
	audit     domain.AuditLogger
	logger    logger.Logger
	minAmount float64
}

// NewService creates a new withdrawal service
func NewService(db *ent.Client, led *ledger.Service, audit domain.AuditLogger, log logger.Logger, minAmount float64) *Service {
	return &Service{db: db, ledger: led, audit: audit, logger: log, minAmount: minAmount}
}

// RequestFilter narrows a withdrawal listing.
type RequestFilter struct {
	AffiliateID int
	Status      string
	Page        int
	Limit       int
}

// CreateRequest opens a pending withdrawal for an approved affiliate. The
// amount is checked against the current balance but not debited; settlement
// re-validates it. One pending request per affiliate at a time.
func (s *Service) CreateRequest(ctx context.Context, affiliateID int, amount float64, paymentMethod, paymentDetails string) (*ent.WithdrawalRequest, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("Withdrawal amount must be positive")
	}
	if money.Less(amount, s.minAmount) {
		return nil, domain.NewValidationError(fmt.Sprintf("Withdrawal amount must be at least %.2f", s.minAmount))
	}
	if paymentMethod == "" {
		return nil, domain.NewValidationError("A payment method is required")
	}

	aff, err := s.db.Affiliate.Get(ctx, affiliateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("Affiliate")
		}
		return nil, fmt.Errorf("failed to get affiliate: %w", err)
	}
	if aff.RequestStatus != entaffiliate.RequestStatusApproved {
		return nil, domain.NewIneligibleAffiliateError(string(aff.RequestStatus))
	}

	pending, err := s.db.WithdrawalRequest.
		Query().
		Where(
			withdrawalrequest.AffiliateIDEQ(affiliateID),
			withdrawalrequest.StatusEQ(withdrawalrequest.StatusPending),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawals: %w", err)
	}
	if pending {
		return nil, domain.NewConflictError("A pending withdrawal request already exists")
	}

	snap, err := s.ledger.GetBalance(ctx, affiliateID)
	if err != nil {
		return nil, err
	}
	if money.Less(snap.CurrentBalance, amount) {
		return nil, domain.NewInsufficientBalanceError(amount, snap.CurrentBalance)
	}

	wr, err := s.db.WithdrawalRequest.
		Create().
		SetAffiliateID(affiliateID).
		SetAmount(money.Round(amount)).
		SetPaymentMethod(paymentMethod).
		SetPaymentDetails(paymentDetails).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create withdrawal request: %w", err)
	}

	if err := s.audit.LogWithdrawalRequested(ctx, affiliateID, wr.ID, wr.Amount); err != nil {
		s.logger.Warn("failed to write withdrawal request audit entry", "error", err)
	}
	s.logger.Info("withdrawal requested",
		"withdrawal_id", wr.ID,
		"affiliate_id", affiliateID,
		"amount", wr.Amount)
	return wr, nil
}

// GetRequest returns one withdrawal request
func (s *Service) GetRequest(ctx context.Context, withdrawalID int) (*ent.WithdrawalRequest, error) {
	wr, err := s.db.WithdrawalRequest.Get(ctx, withdrawalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("Withdrawal request")
		}
		return nil, fmt.Errorf("failed to get withdrawal request: %w", err)
	}
	return wr, nil
}

// ProcessRequest applies an admin decision. Approval and rejection never
// touch the ledger; marking paid settles through the ledger with the balance
// re-validated inside the same transaction. The status swap is guarded so two
// admins cannot process the same request twice.
func (s *Service) ProcessRequest(ctx context.Context, adminID, withdrawalID int, newStatus, adminNotes string) (*ent.WithdrawalRequest, *ent.AffiliateTransaction, error) {
	target := withdrawalrequest.Status(newStatus)
	if err := withdrawalrequest.StatusValidator(target); err != nil {
		return nil, nil, domain.NewValidationError(fmt.Sprintf("Invalid withdrawal status: %s", newStatus))
	}

	wr, err := s.GetRequest(ctx, withdrawalID)
	if err != nil {
		return nil, nil, err
	}
	if !canTransition(wr.Status, target) {
		return nil, nil, domain.NewInvalidTransitionError(string(wr.Status), string(target))
	}

	var txn *ent.AffiliateTransaction
	var updated *ent.WithdrawalRequest
	if target == withdrawalrequest.StatusPaid {
		updated, txn, err = s.settle(ctx, wr, adminNotes)
	} else {
		updated, err = s.db.WithdrawalRequest.
			UpdateOneID(wr.ID).
			Where(withdrawalrequest.StatusEQ(wr.Status)).
			SetStatus(target).
			SetAdminNotes(adminNotes).
			SetProcessedAt(time.Now()).
			Save(ctx)
		if ent.IsNotFound(err) {
			err = domain.NewConflictError("Withdrawal request was processed concurrently")
		}
	}
	if err != nil {
		return nil, nil, err
	}

	if err := s.audit.LogWithdrawalDecision(ctx, adminID, withdrawalID, string(target)); err != nil {
		s.logger.Warn("failed to write withdrawal decision audit entry", "error", err)
	}
	s.logger.Info("withdrawal processed",
		"withdrawal_id", withdrawalID,
		"status", string(target),
		"admin_id", adminID)
	return updated, txn, nil
}

// settle debits the ledger and marks the request paid in one transaction.
// The balance may have dropped since approval, so the non-negative check
// inside the ledger posting is the authoritative one.
func (s *Service) settle(ctx context.Context, wr *ent.WithdrawalRequest, adminNotes string) (*ent.WithdrawalRequest, *ent.AffiliateTransaction, error) {
	var updated *ent.WithdrawalRequest
	var txn *ent.AffiliateTransaction
	var err error

	for attempt := 0; attempt < settlementRetryAttempts; attempt++ {
		updated, txn, err = s.settleOnce(ctx, wr, adminNotes)
		if err == nil || !errors.Is(err, ledger.ErrBalanceConflict) {
			break
		}
	}
	if errors.Is(err, ledger.ErrBalanceConflict) {
		return nil, nil, domain.NewConflictError("Balance is being updated concurrently, please retry")
	}
	if err != nil {
		return nil, nil, err
	}

	s.ledger.InvalidateBalance(ctx, wr.AffiliateID)
	return updated, txn, nil
}

func (s *Service) settleOnce(ctx context.Context, wr *ent.WithdrawalRequest, adminNotes string) (*ent.WithdrawalRequest, *ent.AffiliateTransaction, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txn, err := s.ledger.PostTransactionTx(ctx, tx, wr.AffiliateID,
		affiliatetransaction.TypeWithdrawal, -wr.Amount,
		fmt.Sprintf("Withdrawal payout %d via %s", wr.ID, wr.PaymentMethod), wr.ID)
	if err != nil {
		return nil, nil, err
	}

	updated, err := tx.WithdrawalRequest.
		UpdateOneID(wr.ID).
		Where(withdrawalrequest.StatusEQ(withdrawalrequest.StatusApproved)).
		SetStatus(withdrawalrequest.StatusPaid).
		SetAdminNotes(adminNotes).
		SetTransactionID(txn.ID).
		SetProcessedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			err = domain.NewConflictError("Withdrawal request was processed concurrently")
		} else {
			err = fmt.Errorf("failed to mark withdrawal paid: %w", err)
		}
		return nil, nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, txn, nil
}

// ListRequests returns one page of withdrawal requests, newest first, with
// the total row count for pagination.
func (s *Service) ListRequests(ctx context.Context, filter RequestFilter) ([]*ent.WithdrawalRequest, int, error) {
	q := s.db.WithdrawalRequest.Query()

	if filter.AffiliateID != 0 {
		q = q.Where(withdrawalrequest.AffiliateIDEQ(filter.AffiliateID))
	}
	if filter.Status != "" {
		st := withdrawalrequest.Status(filter.Status)
		if err := withdrawalrequest.StatusValidator(st); err != nil {
			return nil, 0, domain.NewValidationError(fmt.Sprintf("Invalid withdrawal status: %s", filter.Status))
		}
		q = q.Where(withdrawalrequest.StatusEQ(st))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count withdrawals: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	wrs, err := q.
		Order(ent.Desc(withdrawalrequest.FieldRequestedAt), ent.Desc(withdrawalrequest.FieldID)).
		Offset((page - 1) * limit).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	return wrs, total, nil
}
