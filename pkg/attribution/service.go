// Package attribution records exactly one Sale per confirmed order and
// credits the referring affiliate's ledger in the same unit of work. It is
// the single commission-calculation path; both checkout completion and
// payment webhooks land here.
package attribution

import (
	"context"
	"errors"
	"fmt"

	"github.com/jordanlanch/affiliatedb/ent"
	entaffiliate "github.com/jordanlanch/affiliatedb/ent/affiliate"
	"github.com/jordanlanch/affiliatedb/ent/affiliatetransaction"
	"github.com/jordanlanch/affiliatedb/ent/sale"
	"github.com/jordanlanch/affiliatedb/pkg/affiliate"
	"github.com/jordanlanch/affiliatedb/pkg/commission"
	"github.com/jordanlanch/affiliatedb/pkg/domain"
	"github.com/jordanlanch/affiliatedb/pkg/ledger"
	"github.com/jordanlanch/affiliatedb/pkg/logger"
	"github.com/jordanlanch/affiliatedb/pkg/money"
)

// attributionRetryAttempts bounds retries of the whole unit of work when the
// balance row moves under us.
const attributionRetryAttempts = 5

// Service is the sale attribution service
type Service struct {
	db         *ent.Client
	affiliates *affiliate.Service
	orders     domain.OrderSource
	ledger     *ledger.Service
	audit      domain.AuditLogger
	logger     logger.Logger
}

// NewService creates a new attribution service
func NewService(db *ent.Client, affiliates *affiliate.Service, orders domain.OrderSource, led *ledger.Service, audit domain.AuditLogger, log logger.Logger) *Service {
	return &Service{
		db:         db,
		affiliates: affiliates,
		orders:     orders,
		ledger:     led,
		audit:      audit,
		logger:     log,
	}
}

// LineSummary is one commission-earning line in a sale summary.
type LineSummary struct {
	ProductID  int     `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	Commission float64 `json:"commission"`
}

// SaleSummary describes one attributed sale.
type SaleSummary struct {
	SaleID            int           `json:"sale_id"`
	AffiliateID       int           `json:"affiliate_id"`
	OrderID           int           `json:"order_id"`
	Commission        float64       `json:"commission"`
	Lines             []LineSummary `json:"lines,omitempty"`
	AlreadyAttributed bool          `json:"already_attributed"`
}

// AttributeSale attributes a confirmed order to the affiliate behind a
// referral code. Retrying with the same order and code is a no-op returning
// the existing summary; a different code for an already-attributed order is
// a conflict.
func (s *Service) AttributeSale(ctx context.Context, orderID int, code string) (*SaleSummary, error) {
	aff, err := s.affiliates.ResolveByReferralCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if aff.RequestStatus != entaffiliate.RequestStatusApproved {
		return nil, domain.NewIneligibleAffiliateError(string(aff.RequestStatus))
	}

	order, err := s.orders.GetConfirmedOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(order.Lines) == 0 {
		return nil, domain.NewValidationError("Order has no line items")
	}

	if summary, err := s.existingAttribution(ctx, orderID, aff.ID); summary != nil || err != nil {
		return summary, err
	}

	terms := make([]affiliate.CommissionTerms, len(order.Lines))
	for i, line := range order.Lines {
		terms[i], err = s.affiliates.ResolveCommissionTerms(ctx, aff, line.ProductID)
		if err != nil {
			return nil, err
		}
	}

	breakdown := commission.ForOrder(order.Lines, terms)
	if breakdown.Total.IsZero() {
		return nil, domain.NewNoEligibleCommissionError(orderID)
	}
	total := money.ToFloat(breakdown.Total)

	var saleRow *ent.Sale
	for attempt := 0; attempt < attributionRetryAttempts; attempt++ {
		saleRow, err = s.recordSale(ctx, aff.ID, orderID, total)
		if err == nil || !errors.Is(err, ledger.ErrBalanceConflict) {
			break
		}
	}
	if errors.Is(err, ledger.ErrBalanceConflict) {
		return nil, domain.NewConflictError("Balance is being updated concurrently, please retry")
	}
	if err != nil {
		// A concurrent attribution may have won the unique order_id race.
		if ent.IsConstraintError(err) {
			if summary, lookupErr := s.existingAttribution(ctx, orderID, aff.ID); summary != nil || lookupErr != nil {
				return summary, lookupErr
			}
		}
		return nil, err
	}

	s.ledger.InvalidateBalance(ctx, aff.ID)
	if err := s.audit.LogSaleAttributed(ctx, aff.ID, orderID, total); err != nil {
		s.logger.Warn("failed to write attribution audit entry", "error", err)
	}
	s.logger.Info("sale attributed",
		"order_id", orderID,
		"affiliate_id", aff.ID,
		"commission", total)

	summary := &SaleSummary{
		SaleID:      saleRow.ID,
		AffiliateID: aff.ID,
		OrderID:     orderID,
		Commission:  total,
	}
	for _, line := range breakdown.Lines {
		summary.Lines = append(summary.Lines, LineSummary{
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			Commission: money.ToFloat(line.Amount),
		})
	}
	return summary, nil
}

// existingAttribution resolves the idempotency rule: same affiliate gets the
// recorded summary back, a different affiliate gets a conflict. Returns
// (nil, nil) when the order is unattributed.
func (s *Service) existingAttribution(ctx context.Context, orderID, affiliateID int) (*SaleSummary, error) {
	existing, err := s.db.Sale.
		Query().
		Where(sale.OrderIDEQ(orderID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query sale: %w", err)
	}

	if existing.AffiliateID != affiliateID {
		return nil, domain.NewDuplicateAttributionError(orderID)
	}
	return &SaleSummary{
		SaleID:            existing.ID,
		AffiliateID:       existing.AffiliateID,
		OrderID:           existing.OrderID,
		Commission:        existing.Commission,
		AlreadyAttributed: true,
	}, nil
}

// recordSale inserts the Sale row and posts the commission credit in one
// transaction. Either both land or neither does.
func (s *Service) recordSale(ctx context.Context, affiliateID, orderID int, total float64) (*ent.Sale, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	saleRow, err := tx.Sale.
		Create().
		SetAffiliateID(affiliateID).
		SetOrderID(orderID).
		SetCommission(total).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	_, err = s.ledger.PostTransactionTx(ctx, tx, affiliateID,
		affiliatetransaction.TypeCommission, total,
		fmt.Sprintf("Commission for order %d", orderID), orderID)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return saleRow, nil
}
