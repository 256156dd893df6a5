package ledger

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/affiliatedb/ent"
	"github.com/jordanlanch/affiliatedb/ent/affiliatetransaction"
	"github.com/jordanlanch/affiliatedb/ent/auditlog"
	"github.com/jordanlanch/affiliatedb/ent/enttest"
	"github.com/jordanlanch/affiliatedb/pkg/audit"
	"github.com/jordanlanch/affiliatedb/pkg/domain"
	"github.com/jordanlanch/affiliatedb/pkg/logger"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func newTestService(client *ent.Client) *Service {
	return NewService(client, nil, audit.NewService(client), logger.New("error", "text"))
}

func TestGetOrCreateBalance(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := newTestService(client)

	t.Run("Success - Initializes to zero", func(t *testing.T) {
		bal, err := service.GetOrCreateBalance(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, 1, bal.AffiliateID)
		assert.Equal(t, 0.0, bal.CurrentBalance)
		assert.Equal(t, 0.0, bal.TotalEarned)
		assert.Equal(t, 0.0, bal.TotalWithdrawn)
	})

	t.Run("Success - Idempotent, returns the same row", func(t *testing.T) {
		first, err := service.GetOrCreateBalance(ctx, 2)
		require.NoError(t, err)

		second, err := service.GetOrCreateBalance(ctx, 2)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)

		count, err := client.AffiliateBalance.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestPostTransaction(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := newTestService(client)

	t.Run("Success - Commission credit updates balance and totals", func(t *testing.T) {
		txn, err := service.PostTransaction(ctx, 1, affiliatetransaction.TypeCommission, 26.0, "Commission for order 7", 7)

		require.NoError(t, err)
		assert.Equal(t, 26.0, txn.Amount)
		assert.Equal(t, affiliatetransaction.TypeCommission, txn.Type)
		assert.Equal(t, 7, txn.ReferenceID)

		bal, err := service.GetOrCreateBalance(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 26.0, bal.CurrentBalance)
		assert.Equal(t, 26.0, bal.TotalEarned)
		assert.Equal(t, 0.0, bal.TotalWithdrawn)
	})

	t.Run("Success - Balance is the running sum of entries", func(t *testing.T) {
		amounts := []float64{10.0, 5.5, -8.25, 0.75, -4.0}
		for _, amount := range amounts {
			txType := affiliatetransaction.TypeAdjustment
			_, err := service.PostTransaction(ctx, 2, txType, amount, "adjustment", 0)
			require.NoError(t, err)
		}

		bal, err := service.GetOrCreateBalance(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 4.0, bal.CurrentBalance)
		assert.Equal(t, 16.25, bal.TotalEarned)
		assert.Equal(t, 12.25, bal.TotalWithdrawn)
		assert.Equal(t, bal.CurrentBalance, bal.TotalEarned-bal.TotalWithdrawn)

		require.NoError(t, service.Reconcile(ctx, 2))
	})

	t.Run("Failure - Debit below zero writes nothing", func(t *testing.T) {
		_, err := service.PostTransaction(ctx, 3, affiliatetransaction.TypeCommission, 20.0, "seed", 0)
		require.NoError(t, err)

		before, err := client.AffiliateTransaction.Query().Count(ctx)
		require.NoError(t, err)

		_, err = service.PostTransaction(ctx, 3, affiliatetransaction.TypeWithdrawal, -30.0, "too big", 0)
		require.Error(t, err)
		assert.True(t, domain.IsInsufficientBalance(err))

		after, err := client.AffiliateTransaction.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)

		bal, err := service.GetOrCreateBalance(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, 20.0, bal.CurrentBalance)
	})

	t.Run("Failure - Zero amount is rejected", func(t *testing.T) {
		_, err := service.PostTransaction(ctx, 4, affiliatetransaction.TypeAdjustment, 0.0, "noop", 0)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - Sign convention is enforced", func(t *testing.T) {
		_, err := service.PostTransaction(ctx, 4, affiliatetransaction.TypeCommission, -5.0, "bad", 0)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))

		_, err = service.PostTransaction(ctx, 4, affiliatetransaction.TypeWithdrawal, 5.0, "bad", 0)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestGetBalance(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := newTestService(client)

	t.Run("Success - Snapshot reflects the balance row", func(t *testing.T) {
		_, err := service.PostTransaction(ctx, 1, affiliatetransaction.TypeCommission, 12.5, "seed", 0)
		require.NoError(t, err)

		snap, err := service.GetBalance(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, snap.AffiliateID)
		assert.Equal(t, 12.5, snap.CurrentBalance)
		assert.Equal(t, 12.5, snap.TotalEarned)
	})

	t.Run("Success - Unknown affiliate gets a zero snapshot", func(t *testing.T) {
		snap, err := service.GetBalance(ctx, 99)
		require.NoError(t, err)
		assert.Equal(t, 0.0, snap.CurrentBalance)
	})
}

func TestListTransactions(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := newTestService(client)

	_, err := service.PostTransaction(ctx, 1, affiliatetransaction.TypeCommission, 10.0, "commission 1", 11)
	require.NoError(t, err)
	_, err = service.PostTransaction(ctx, 1, affiliatetransaction.TypeCommission, 20.0, "commission 2", 12)
	require.NoError(t, err)
	_, err = service.PostTransaction(ctx, 1, affiliatetransaction.TypeWithdrawal, -5.0, "payout", 1)
	require.NoError(t, err)

	t.Run("Success - All entries, newest first", func(t *testing.T) {
		txns, total, err := service.ListTransactions(ctx, 1, TransactionFilter{})

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, txns, 3)
	})

	t.Run("Success - Filter by type", func(t *testing.T) {
		txns, total, err := service.ListTransactions(ctx, 1, TransactionFilter{Type: "withdrawal"})

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, txns, 1)
		assert.Equal(t, -5.0, txns[0].Amount)
	})

	t.Run("Success - Pagination", func(t *testing.T) {
		txns, total, err := service.ListTransactions(ctx, 1, TransactionFilter{Page: 2, Limit: 2})

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, txns, 1)
	})

	t.Run("Success - Date filter excludes older entries", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		txns, total, err := service.ListTransactions(ctx, 1, TransactionFilter{From: &future})

		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, txns)
	})

	t.Run("Failure - Invalid type filter", func(t *testing.T) {
		_, _, err := service.ListTransactions(ctx, 1, TransactionFilter{Type: "bonus"})

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestAdjust(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := newTestService(client)

	t.Run("Success - Credit adjustment with audit trail", func(t *testing.T) {
		txn, err := service.Adjust(ctx, 42, 1, 15.0, "migration correction")

		require.NoError(t, err)
		assert.Equal(t, affiliatetransaction.TypeAdjustment, txn.Type)

		entries, err := client.AuditLog.Query().
			Where(auditlog.ActionEQ(auditlog.ActionLedgerAdjustment)).
			All(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Failure - Adjustment cannot overdraw", func(t *testing.T) {
		_, err := service.Adjust(ctx, 42, 1, -100.0, "bad correction")

		require.Error(t, err)
		assert.True(t, domain.IsInsufficientBalance(err))
	})

	t.Run("Failure - Reason is required", func(t *testing.T) {
		_, err := service.Adjust(ctx, 42, 1, 5.0, "")

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestReconcile(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := newTestService(client)

	t.Run("Success - Clean ledger reconciles", func(t *testing.T) {
		_, err := service.PostTransaction(ctx, 1, affiliatetransaction.TypeCommission, 30.0, "seed", 0)
		require.NoError(t, err)
		_, err = service.PostTransaction(ctx, 1, affiliatetransaction.TypeWithdrawal, -10.0, "payout", 0)
		require.NoError(t, err)

		assert.NoError(t, service.Reconcile(ctx, 1))
	})

	t.Run("Failure - Tampered balance surfaces drift and audits it", func(t *testing.T) {
		bal, err := service.GetOrCreateBalance(ctx, 1)
		require.NoError(t, err)

		// Corrupt the materialized view behind the ledger's back.
		_, err = client.AffiliateBalance.UpdateOneID(bal.ID).
			SetCurrentBalance(999.0).
			Save(ctx)
		require.NoError(t, err)

		err = service.Reconcile(ctx, 1)
		require.Error(t, err)
		assert.True(t, domain.IsLedgerDrift(err))

		entries, err := client.AuditLog.Query().
			Where(auditlog.ActionEQ(auditlog.ActionLedgerDrift)).
			All(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, auditlog.SeverityCritical, entries[0].Severity)
	})

	t.Run("Success - ReconcileAll collects per-affiliate drift", func(t *testing.T) {
		_, err := service.PostTransaction(ctx, 2, affiliatetransaction.TypeCommission, 5.0, "seed", 0)
		require.NoError(t, err)

		drifts := service.ReconcileAll(ctx)
		assert.Len(t, drifts, 1) // only affiliate 1 was tampered with
	})
}
