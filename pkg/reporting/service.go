// Package reporting aggregates ledger and withdrawal data for dashboards.
// It only reads; rendering to CSV or other export formats happens upstream.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jordanlanch/affiliatedb/ent"
	"github.com/jordanlanch/affiliatedb/ent/affiliatetransaction"
	"github.com/jordanlanch/affiliatedb/ent/withdrawalrequest"
	"github.com/jordanlanch/affiliatedb/pkg/ledger"
	"github.com/jordanlanch/affiliatedb/pkg/money"
)

// defaultPeriod is used when the caller gives no date range.
const defaultPeriod = 30 * 24 * time.Hour

// Service is the financial reporting service
type Service struct {
	db     *ent.Client
	ledger *ledger.Service
}

// NewService creates a new reporting service
func NewService(db *ent.Client, led *ledger.Service) *Service {
	return &Service{db: db, ledger: led}
}

// WithdrawalStats aggregates withdrawal requests by status.
type WithdrawalStats struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// Report is the aggregate view over one period, optionally scoped to one
// affiliate.
type Report struct {
	From             time.Time                  `json:"from"`
	To               time.Time                  `json:"to"`
	CommissionCount  int                        `json:"commission_count"`
	CommissionTotal  float64                    `json:"commission_total"`
	AdjustmentCount  int                        `json:"adjustment_count"`
	AdjustmentTotal  float64                    `json:"adjustment_total"`
	Withdrawals      map[string]WithdrawalStats `json:"withdrawals"`
	Affiliate        *ledger.BalanceSnapshot    `json:"affiliate,omitempty"`
}

// GenerateFinancialReport aggregates commissions and withdrawals over a date
// range. A zero range defaults to the last 30 days. When affiliateID is
// non-zero the report is scoped to that affiliate and includes its balance
// snapshot.
func (s *Service) GenerateFinancialReport(ctx context.Context, affiliateID int, from, to time.Time) (*Report, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.Add(-defaultPeriod)
	}
	if from.After(to) {
		return nil, fmt.Errorf("report period starts after it ends")
	}

	report := &Report{
		From:        from,
		To:          to,
		Withdrawals: make(map[string]WithdrawalStats),
	}

	txQuery := s.db.AffiliateTransaction.
		Query().
		Where(
			affiliatetransaction.TransactionDateGTE(from),
			affiliatetransaction.TransactionDateLTE(to),
		)
	wrQuery := s.db.WithdrawalRequest.
		Query().
		Where(
			withdrawalrequest.RequestedAtGTE(from),
			withdrawalrequest.RequestedAtLTE(to),
		)

	if affiliateID != 0 {
		bal, err := s.ledger.GetOrCreateBalance(ctx, affiliateID)
		if err != nil {
			return nil, err
		}
		txQuery = txQuery.Where(affiliatetransaction.BalanceIDEQ(bal.ID))
		wrQuery = wrQuery.Where(withdrawalrequest.AffiliateIDEQ(affiliateID))

		snap, err := s.ledger.GetBalance(ctx, affiliateID)
		if err != nil {
			return nil, err
		}
		report.Affiliate = snap
	}

	txns, err := txQuery.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	commissionTotal := decimal.Zero
	adjustmentTotal := decimal.Zero
	for _, txn := range txns {
		switch txn.Type {
		case affiliatetransaction.TypeCommission:
			report.CommissionCount++
			commissionTotal = commissionTotal.Add(money.FromFloat(txn.Amount))
		case affiliatetransaction.TypeAdjustment:
			report.AdjustmentCount++
			adjustmentTotal = adjustmentTotal.Add(money.FromFloat(txn.Amount))
		}
	}
	report.CommissionTotal = money.ToFloat(commissionTotal)
	report.AdjustmentTotal = money.ToFloat(adjustmentTotal)

	wrs, err := wrQuery.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawals: %w", err)
	}

	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	for _, wr := range wrs {
		status := string(wr.Status)
		counts[status]++
		totals[status] = totals[status].Add(money.FromFloat(wr.Amount))
	}
	for status, count := range counts {
		report.Withdrawals[status] = WithdrawalStats{
			Count: count,
			Total: money.ToFloat(totals[status]),
		}
	}

	return report, nil
}
