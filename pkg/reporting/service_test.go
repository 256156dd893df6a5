package reporting

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/affiliatedb/ent"
	"github.com/jordanlanch/affiliatedb/ent/affiliatetransaction"
	"github.com/jordanlanch/affiliatedb/ent/enttest"
	"github.com/jordanlanch/affiliatedb/ent/withdrawalrequest"
	"github.com/jordanlanch/affiliatedb/pkg/audit"
	"github.com/jordanlanch/affiliatedb/pkg/ledger"
	"github.com/jordanlanch/affiliatedb/pkg/logger"
)

func setupTest(t *testing.T) (*ent.Client, *Service, *ledger.Service, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	ledgerSvc := ledger.NewService(client, nil, audit.NewService(client), logger.New("error", "text"))
	return client, NewService(client, ledgerSvc), ledgerSvc, func() { client.Close() }
}

func seedWithdrawal(t *testing.T, client *ent.Client, affiliateID int, amount float64, status withdrawalrequest.Status) {
	_, err := client.WithdrawalRequest.
		Create().
		SetAffiliateID(affiliateID).
		SetAmount(amount).
		SetStatus(status).
		SetPaymentMethod("paypal").
		SetPaymentDetails("a@b.c").
		Save(context.Background())
	require.NoError(t, err)
}

func TestGenerateFinancialReport(t *testing.T) {
	client, service, ledgerSvc, cleanup := setupTest(t)
	defer cleanup()
	ctx := context.Background()

	// Affiliate 1: two commissions and one adjustment. Affiliate 2: one.
	_, err := ledgerSvc.PostTransaction(ctx, 1, affiliatetransaction.TypeCommission, 26.0, "commission", 10)
	require.NoError(t, err)
	_, err = ledgerSvc.PostTransaction(ctx, 1, affiliatetransaction.TypeCommission, 4.5, "commission", 11)
	require.NoError(t, err)
	_, err = ledgerSvc.PostTransaction(ctx, 1, affiliatetransaction.TypeAdjustment, -0.5, "correction", 0)
	require.NoError(t, err)
	_, err = ledgerSvc.PostTransaction(ctx, 2, affiliatetransaction.TypeCommission, 100.0, "commission", 12)
	require.NoError(t, err)

	seedWithdrawal(t, client, 1, 15.0, withdrawalrequest.StatusPending)
	seedWithdrawal(t, client, 1, 10.0, withdrawalrequest.StatusPaid)
	seedWithdrawal(t, client, 2, 50.0, withdrawalrequest.StatusRejected)

	t.Run("Success - Platform-wide report over the default period", func(t *testing.T) {
		report, err := service.GenerateFinancialReport(ctx, 0, time.Time{}, time.Time{})

		require.NoError(t, err)
		assert.Equal(t, 3, report.CommissionCount)
		assert.Equal(t, 130.5, report.CommissionTotal)
		assert.Equal(t, 1, report.AdjustmentCount)
		assert.Equal(t, -0.5, report.AdjustmentTotal)
		assert.Nil(t, report.Affiliate)

		assert.Equal(t, 1, report.Withdrawals["pending"].Count)
		assert.Equal(t, 15.0, report.Withdrawals["pending"].Total)
		assert.Equal(t, 1, report.Withdrawals["paid"].Count)
		assert.Equal(t, 1, report.Withdrawals["rejected"].Count)
		assert.Equal(t, 50.0, report.Withdrawals["rejected"].Total)
	})

	t.Run("Success - Scoped to one affiliate with balance snapshot", func(t *testing.T) {
		report, err := service.GenerateFinancialReport(ctx, 1, time.Time{}, time.Time{})

		require.NoError(t, err)
		assert.Equal(t, 2, report.CommissionCount)
		assert.Equal(t, 30.5, report.CommissionTotal)
		require.NotNil(t, report.Affiliate)
		assert.Equal(t, 30.0, report.Affiliate.CurrentBalance)

		assert.Equal(t, 1, report.Withdrawals["pending"].Count)
		_, hasRejected := report.Withdrawals["rejected"]
		assert.False(t, hasRejected)
	})

	t.Run("Success - Period excludes out-of-range activity", func(t *testing.T) {
		from := time.Now().Add(-90 * 24 * time.Hour)
		to := time.Now().Add(-60 * 24 * time.Hour)

		report, err := service.GenerateFinancialReport(ctx, 0, from, to)

		require.NoError(t, err)
		assert.Equal(t, 0, report.CommissionCount)
		assert.Empty(t, report.Withdrawals)
	})

	t.Run("Failure - Inverted period", func(t *testing.T) {
		from := time.Now()
		to := from.Add(-time.Hour)

		_, err := service.GenerateFinancialReport(ctx, 0, from, to)
		require.Error(t, err)
	})
}
