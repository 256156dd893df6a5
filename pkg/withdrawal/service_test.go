package withdrawal

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/affiliatedb/ent"
	entaffiliate "github.com/jordanlanch/affiliatedb/ent/affiliate"
	"github.com/jordanlanch/affiliatedb/ent/affiliatetransaction"
	"github.com/jordanlanch/affiliatedb/ent/enttest"
	"github.com/jordanlanch/affiliatedb/ent/withdrawalrequest"
	"github.com/jordanlanch/affiliatedb/pkg/audit"
	"github.com/jordanlanch/affiliatedb/pkg/domain"
	"github.com/jordanlanch/affiliatedb/pkg/ledger"
	"github.com/jordanlanch/affiliatedb/pkg/logger"
)

const adminID = 99

func setupTest(t *testing.T) (*ent.Client, *Service, *ledger.Service, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	log := logger.New("error", "text")
	auditSvc := audit.NewService(client)
	ledgerSvc := ledger.NewService(client, nil, auditSvc, log)
	service := NewService(client, ledgerSvc, auditSvc, log, 1.0)
	return client, service, ledgerSvc, func() { client.Close() }
}

func createApprovedAffiliate(t *testing.T, client *ent.Client, userID int, code string) *ent.Affiliate {
	aff, err := client.Affiliate.
		Create().
		SetUserID(userID).
		SetReferralCode(code).
		SetCommissionRate(0.10).
		SetIsGlobal(true).
		SetRequestStatus(entaffiliate.RequestStatusApproved).
		Save(context.Background())
	require.NoError(t, err)
	return aff
}

func creditBalance(t *testing.T, ledgerSvc *ledger.Service, affiliateID int, amount float64) {
	_, err := ledgerSvc.PostTransaction(context.Background(), affiliateID,
		affiliatetransaction.TypeCommission, amount, "test credit", 0)
	require.NoError(t, err)
}

func TestCreateRequest(t *testing.T) {
	client, service, ledgerSvc, cleanup := setupTest(t)
	defer cleanup()
	ctx := context.Background()

	aff := createApprovedAffiliate(t, client, 1, "REFAAAA0001")
	creditBalance(t, ledgerSvc, aff.ID, 100.0)

	t.Run("Success - Pending request leaves the balance untouched", func(t *testing.T) {
		wr, err := service.CreateRequest(ctx, aff.ID, 60.0, "bank_transfer", "IBAN XX00")

		require.NoError(t, err)
		assert.Equal(t, withdrawalrequest.StatusPending, wr.Status)
		assert.Equal(t, 60.0, wr.Amount)

		bal, err := ledgerSvc.GetOrCreateBalance(ctx, aff.ID)
		require.NoError(t, err)
		assert.Equal(t, 100.0, bal.CurrentBalance)
	})

	t.Run("Failure - Second pending request conflicts", func(t *testing.T) {
		_, err := service.CreateRequest(ctx, aff.ID, 10.0, "bank_transfer", "IBAN XX00")

		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("Failure - Amount above balance", func(t *testing.T) {
		aff2 := createApprovedAffiliate(t, client, 2, "REFBBBB0002")
		creditBalance(t, ledgerSvc, aff2.ID, 20.0)

		_, err := service.CreateRequest(ctx, aff2.ID, 50.0, "paypal", "a@b.c")

		require.Error(t, err)
		assert.True(t, domain.IsInsufficientBalance(err))
	})

	t.Run("Failure - Non-positive amount", func(t *testing.T) {
		_, err := service.CreateRequest(ctx, aff.ID, 0.0, "paypal", "a@b.c")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))

		_, err = service.CreateRequest(ctx, aff.ID, -5.0, "paypal", "a@b.c")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - Below the minimum amount", func(t *testing.T) {
		_, err := service.CreateRequest(ctx, aff.ID, 0.5, "paypal", "a@b.c")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - Unapproved affiliate", func(t *testing.T) {
		pending, err := client.Affiliate.
			Create().
			SetUserID(3).
			SetReferralCode("REFCCCC0003").
			SetRequestStatus(entaffiliate.RequestStatusPending).
			Save(ctx)
		require.NoError(t, err)

		_, err = service.CreateRequest(ctx, pending.ID, 10.0, "paypal", "a@b.c")
		require.Error(t, err)
		assert.True(t, domain.IsIneligibleAffiliate(err))
	})

	t.Run("Failure - Unknown affiliate", func(t *testing.T) {
		_, err := service.CreateRequest(ctx, 4242, 10.0, "paypal", "a@b.c")
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestProcessRequest_Lifecycle(t *testing.T) {
	client, service, ledgerSvc, cleanup := setupTest(t)
	defer cleanup()
	ctx := context.Background()

	aff := createApprovedAffiliate(t, client, 1, "REFAAAA0001")
	creditBalance(t, ledgerSvc, aff.ID, 100.0)

	wr, err := service.CreateRequest(ctx, aff.ID, 60.0, "bank_transfer", "IBAN XX00")
	require.NoError(t, err)

	t.Run("Success - Approval does not debit", func(t *testing.T) {
		updated, txn, err := service.ProcessRequest(ctx, adminID, wr.ID, "approved", "looks good")

		require.NoError(t, err)
		assert.Nil(t, txn)
		assert.Equal(t, withdrawalrequest.StatusApproved, updated.Status)
		assert.NotNil(t, updated.ProcessedAt)

		bal, err := ledgerSvc.GetOrCreateBalance(ctx, aff.ID)
		require.NoError(t, err)
		assert.Equal(t, 100.0, bal.CurrentBalance)
	})

	t.Run("Success - Marking paid settles through the ledger", func(t *testing.T) {
		updated, txn, err := service.ProcessRequest(ctx, adminID, wr.ID, "paid", "payout sent")

		require.NoError(t, err)
		require.NotNil(t, txn)
		assert.Equal(t, withdrawalrequest.StatusPaid, updated.Status)
		assert.Equal(t, -60.0, txn.Amount)
		assert.Equal(t, affiliatetransaction.TypeWithdrawal, txn.Type)
		require.NotNil(t, updated.TransactionID)
		assert.Equal(t, txn.ID, *updated.TransactionID)

		bal, err := ledgerSvc.GetOrCreateBalance(ctx, aff.ID)
		require.NoError(t, err)
		assert.Equal(t, 40.0, bal.CurrentBalance)
		assert.Equal(t, 60.0, bal.TotalWithdrawn)
	})

	t.Run("Failure - Next request above the reduced balance", func(t *testing.T) {
		_, err := service.CreateRequest(ctx, aff.ID, 80.0, "bank_transfer", "IBAN XX00")

		require.Error(t, err)
		assert.True(t, domain.IsInsufficientBalance(err))
	})

	t.Run("Failure - Paid is terminal", func(t *testing.T) {
		_, _, err := service.ProcessRequest(ctx, adminID, wr.ID, "rejected", "too late")

		require.Error(t, err)
		assert.True(t, domain.IsInvalidTransition(err))
	})
}

func TestProcessRequest_RejectionNeverDebits(t *testing.T) {
	client, service, ledgerSvc, cleanup := setupTest(t)
	defer cleanup()
	ctx := context.Background()

	aff := createApprovedAffiliate(t, client, 1, "REFAAAA0001")
	creditBalance(t, ledgerSvc, aff.ID, 100.0)

	wr, err := service.CreateRequest(ctx, aff.ID, 30.0, "paypal", "a@b.c")
	require.NoError(t, err)

	t.Run("Success - Rejection from pending", func(t *testing.T) {
		updated, txn, err := service.ProcessRequest(ctx, adminID, wr.ID, "rejected", "details mismatch")

		require.NoError(t, err)
		assert.Nil(t, txn)
		assert.Equal(t, withdrawalrequest.StatusRejected, updated.Status)

		bal, err := ledgerSvc.GetOrCreateBalance(ctx, aff.ID)
		require.NoError(t, err)
		assert.Equal(t, 100.0, bal.CurrentBalance)

		count, err := client.AffiliateTransaction.Query().
			Where(affiliatetransaction.TypeEQ(affiliatetransaction.TypeWithdrawal)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("Success - Rejection from approved is a reversal", func(t *testing.T) {
		wr2, err := service.CreateRequest(ctx, aff.ID, 25.0, "paypal", "a@b.c")
		require.NoError(t, err)

		_, _, err = service.ProcessRequest(ctx, adminID, wr2.ID, "approved", "")
		require.NoError(t, err)

		updated, txn, err := service.ProcessRequest(ctx, adminID, wr2.ID, "rejected", "changed my mind")
		require.NoError(t, err)
		assert.Nil(t, txn)
		assert.Equal(t, withdrawalrequest.StatusRejected, updated.Status)

		bal, err := ledgerSvc.GetOrCreateBalance(ctx, aff.ID)
		require.NoError(t, err)
		assert.Equal(t, 100.0, bal.CurrentBalance)
	})
}

func TestProcessRequest_InvalidTransitions(t *testing.T) {
	client, service, ledgerSvc, cleanup := setupTest(t)
	defer cleanup()
	ctx := context.Background()

	aff := createApprovedAffiliate(t, client, 1, "REFAAAA0001")
	creditBalance(t, ledgerSvc, aff.ID, 100.0)

	wr, err := service.CreateRequest(ctx, aff.ID, 10.0, "paypal", "a@b.c")
	require.NoError(t, err)

	t.Run("Failure - Pending cannot be marked paid directly", func(t *testing.T) {
		_, _, err := service.ProcessRequest(ctx, adminID, wr.ID, "paid", "")

		require.Error(t, err)
		assert.True(t, domain.IsInvalidTransition(err))
	})

	t.Run("Failure - Pending cannot return to pending", func(t *testing.T) {
		_, _, err := service.ProcessRequest(ctx, adminID, wr.ID, "pending", "")

		require.Error(t, err)
		assert.True(t, domain.IsInvalidTransition(err))
	})

	t.Run("Failure - Unknown status value", func(t *testing.T) {
		_, _, err := service.ProcessRequest(ctx, adminID, wr.ID, "settled", "")

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - Unknown withdrawal", func(t *testing.T) {
		_, _, err := service.ProcessRequest(ctx, adminID, 4242, "approved", "")

		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestProcessRequest_SettlementRevalidatesBalance(t *testing.T) {
	client, service, ledgerSvc, cleanup := setupTest(t)
	defer cleanup()
	ctx := context.Background()

	aff := createApprovedAffiliate(t, client, 1, "REFAAAA0001")
	creditBalance(t, ledgerSvc, aff.ID, 100.0)

	wr, err := service.CreateRequest(ctx, aff.ID, 60.0, "bank_transfer", "IBAN XX00")
	require.NoError(t, err)

	_, _, err = service.ProcessRequest(ctx, adminID, wr.ID, "approved", "")
	require.NoError(t, err)

	// Other activity drains the balance between approval and payout.
	_, err = ledgerSvc.Adjust(ctx, adminID, aff.ID, -50.0, "chargeback correction")
	require.NoError(t, err)

	t.Run("Failure - Payout above the remaining balance leaves status unchanged", func(t *testing.T) {
		_, _, err := service.ProcessRequest(ctx, adminID, wr.ID, "paid", "")

		require.Error(t, err)
		assert.True(t, domain.IsInsufficientBalance(err))

		current, err := service.GetRequest(ctx, wr.ID)
		require.NoError(t, err)
		assert.Equal(t, withdrawalrequest.StatusApproved, current.Status)

		bal, err := ledgerSvc.GetOrCreateBalance(ctx, aff.ID)
		require.NoError(t, err)
		assert.Equal(t, 50.0, bal.CurrentBalance)
	})

	t.Run("Success - Payout succeeds once the balance recovers", func(t *testing.T) {
		creditBalance(t, ledgerSvc, aff.ID, 30.0)

		updated, txn, err := service.ProcessRequest(ctx, adminID, wr.ID, "paid", "")
		require.NoError(t, err)
		assert.Equal(t, withdrawalrequest.StatusPaid, updated.Status)
		assert.Equal(t, -60.0, txn.Amount)

		bal, err := ledgerSvc.GetOrCreateBalance(ctx, aff.ID)
		require.NoError(t, err)
		assert.Equal(t, 20.0, bal.CurrentBalance)
	})
}

func TestListRequests(t *testing.T) {
	client, service, ledgerSvc, cleanup := setupTest(t)
	defer cleanup()
	ctx := context.Background()

	affA := createApprovedAffiliate(t, client, 1, "REFAAAA0001")
	affB := createApprovedAffiliate(t, client, 2, "REFBBBB0002")
	creditBalance(t, ledgerSvc, affA.ID, 100.0)
	creditBalance(t, ledgerSvc, affB.ID, 100.0)

	wrA, err := service.CreateRequest(ctx, affA.ID, 10.0, "paypal", "a@b.c")
	require.NoError(t, err)
	_, err = service.CreateRequest(ctx, affB.ID, 20.0, "paypal", "b@b.c")
	require.NoError(t, err)
	_, _, err = service.ProcessRequest(ctx, adminID, wrA.ID, "rejected", "no")
	require.NoError(t, err)

	t.Run("Success - All requests", func(t *testing.T) {
		wrs, total, err := service.ListRequests(ctx, RequestFilter{})

		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, wrs, 2)
	})

	t.Run("Success - Filter by affiliate", func(t *testing.T) {
		wrs, total, err := service.ListRequests(ctx, RequestFilter{AffiliateID: affB.ID})

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, wrs, 1)
		assert.Equal(t, 20.0, wrs[0].Amount)
	})

	t.Run("Success - Filter by status", func(t *testing.T) {
		wrs, total, err := service.ListRequests(ctx, RequestFilter{Status: "rejected"})

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, wrs, 1)
		assert.Equal(t, wrA.ID, wrs[0].ID)
	})

	t.Run("Failure - Invalid status filter", func(t *testing.T) {
		_, _, err := service.ListRequests(ctx, RequestFilter{Status: "settled"})

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}
