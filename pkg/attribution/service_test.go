package attribution

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
	"github.com/jordanlanch/affiliatedb/ent/productcommission"
	"github.com/jordanlanch/affiliatedb/pkg/affiliate"
	"github.com/jordanlanch/affiliatedb/pkg/audit"
	"github.com/jordanlanch/affiliatedb/pkg/domain"
	"github.com/jordanlanch/affiliatedb/pkg/ledger"
	"github.com/jordanlanch/affiliatedb/pkg/logger"
	"github.com/jordanlanch/affiliatedb/pkg/orders"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func newTestService(client *ent.Client) (*Service, *ledger.Service) {
	log := logger.New("error", "text")
	auditSvc := audit.NewService(client)
	affiliates := affiliate.NewService(client, auditSvc, log)
	ledgerSvc := ledger.NewService(client, nil, auditSvc, log)
	orderSvc := orders.NewService(client)
	return NewService(client, affiliates, orderSvc, ledgerSvc, auditSvc, log), ledgerSvc
}

func createTestAffiliate(t *testing.T, client *ent.Client, code string, status entaffiliate.RequestStatus, rate float64, isGlobal bool) *ent.Affiliate {
	aff, err := client.Affiliate.
		Create().
		SetUserID(int(code[len(code)-1])).
		SetReferralCode(code).
		SetCommissionRate(rate).
		SetIsGlobal(isGlobal).
		SetRequestStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return aff
}

func createTestOrder(t *testing.T, client *ent.Client, userID int, lines ...[3]float64) *ent.Order {
	ctx := context.Background()

	total := 0.0
	for _, l := range lines {
		total += l[1] * l[2]
	}
	o, err := client.Order.
		Create().
		SetUserID(userID).
		SetTotal(total).
		Save(ctx)
	require.NoError(t, err)

	for _, l := range lines {
		_, err := client.OrderItem.
			Create().
			SetOrderID(o.ID).
			SetProductID(int(l[0])).
			SetPrice(l[1]).
			SetQuantity(int(l[2])).
			Save(ctx)
		require.NoError(t, err)
	}
	return o
}

func TestAttributeSale(t *testing.T) {
	t.Run("Success - Two line order with global rate and fixed override", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		ctx := context.Background()
		service, ledgerSvc := newTestService(client)

		aff := createTestAffiliate(t, client, "REFAAAA0001", entaffiliate.RequestStatusApproved, 0.10, true)

		// Line B carries an approved fixed override of 8.0 per unit.
		_, err := client.ProductCommission.
			Create().
			SetAffiliateID(aff.ID).
			SetProductID(2).
			SetCommissionType(productcommission.CommissionTypeFixed).
			SetCommissionValue(8.0).
			SetStatus(productcommission.StatusApproved).
			Save(ctx)
		require.NoError(t, err)

		// Line A: 100.0 x 1 at the 10% global rate. Line B: 50.0 x 2 fixed.
		order := createTestOrder(t, client, 500, [3]float64{1, 100.0, 1}, [3]float64{2, 50.0, 2})

		summary, err := service.AttributeSale(ctx, order.ID, aff.ReferralCode)

		require.NoError(t, err)
		assert.Equal(t, 26.0, summary.Commission)
		assert.Equal(t, aff.ID, summary.AffiliateID)
		assert.False(t, summary.AlreadyAttributed)
		require.Len(t, summary.Lines, 2)
		assert.Equal(t, 10.0, summary.Lines[0].Commission)
		assert.Equal(t, 16.0, summary.Lines[1].Commission)

		// One sale, one ledger entry, balance credited by exactly the total.
		saleCount, err := client.Sale.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, saleCount)

		txns, err := client.AffiliateTransaction.Query().
			Where(affiliatetransaction.TypeEQ(affiliatetransaction.TypeCommission)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, 26.0, txns[0].Amount)
		assert.Equal(t, order.ID, txns[0].ReferenceID)

		bal, err := ledgerSvc.GetOrCreateBalance(ctx, aff.ID)
		require.NoError(t, err)
		assert.Equal(t, 26.0, bal.CurrentBalance)
	})

	t.Run("Success - Retry with same code is idempotent", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		ctx := context.Background()
		service, ledgerSvc := newTestService(client)

		aff := createTestAffiliate(t, client, "REFBBBB0002", entaffiliate.RequestStatusApproved, 0.10, true)
		order := createTestOrder(t, client, 500, [3]float64{1, 100.0, 1})

		first, err := service.AttributeSale(ctx, order.ID, aff.ReferralCode)
		require.NoError(t, err)

		second, err := service.AttributeSale(ctx, order.ID, aff.ReferralCode)
		require.NoError(t, err)
		assert.True(t, second.AlreadyAttributed)
		assert.Equal(t, first.SaleID, second.SaleID)
		assert.Equal(t, first.Commission, second.Commission)

		saleCount, err := client.Sale.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, saleCount)

		txnCount, err := client.AffiliateTransaction.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, txnCount)

		bal, err := ledgerSvc.GetOrCreateBalance(ctx, aff.ID)
		require.NoError(t, err)
		assert.Equal(t, 10.0, bal.CurrentBalance)
	})

	t.Run("Failure - Different code for an attributed order conflicts", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		ctx := context.Background()
		service, ledgerSvc := newTestService(client)

		affA := createTestAffiliate(t, client, "REFCCCC0003", entaffiliate.RequestStatusApproved, 0.10, true)
		affB := createTestAffiliate(t, client, "REFDDDD0004", entaffiliate.RequestStatusApproved, 0.20, true)
		order := createTestOrder(t, client, 500, [3]float64{1, 100.0, 1})

		_, err := service.AttributeSale(ctx, order.ID, affA.ReferralCode)
		require.NoError(t, err)

		_, err = service.AttributeSale(ctx, order.ID, affB.ReferralCode)
		require.Error(t, err)
		assert.True(t, domain.IsDuplicateAttribution(err))

		// Ledger reflects only the first attribution.
		balB, err := ledgerSvc.GetOrCreateBalance(ctx, affB.ID)
		require.NoError(t, err)
		assert.Equal(t, 0.0, balB.CurrentBalance)
	})

	t.Run("Failure - Unknown referral code", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		service, _ := newTestService(client)

		order := createTestOrder(t, client, 500, [3]float64{1, 100.0, 1})

		_, err := service.AttributeSale(context.Background(), order.ID, "REFNOPE0000")
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Failure - Blocked affiliate is ineligible regardless of terms", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		ctx := context.Background()
		service, _ := newTestService(client)

		aff := createTestAffiliate(t, client, "REFEEEE0005", entaffiliate.RequestStatusBlocked, 0.50, true)
		order := createTestOrder(t, client, 500, [3]float64{1, 100.0, 1})

		_, err := service.AttributeSale(ctx, order.ID, aff.ReferralCode)
		require.Error(t, err)
		assert.True(t, domain.IsIneligibleAffiliate(err))
	})

	t.Run("Failure - Pending affiliate is ineligible", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		ctx := context.Background()
		service, _ := newTestService(client)

		aff := createTestAffiliate(t, client, "REFFFFF0006", entaffiliate.RequestStatusPending, 0.10, true)
		order := createTestOrder(t, client, 500, [3]float64{1, 100.0, 1})

		_, err := service.AttributeSale(ctx, order.ID, aff.ReferralCode)
		require.Error(t, err)
		assert.True(t, domain.IsIneligibleAffiliate(err))
	})

	t.Run("Failure - Order does not exist", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		service, _ := newTestService(client)

		aff := createTestAffiliate(t, client, "REFGGGG0007", entaffiliate.RequestStatusApproved, 0.10, true)

		_, err := service.AttributeSale(context.Background(), 12345, aff.ReferralCode)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Failure - Order without line items", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		ctx := context.Background()
		service, _ := newTestService(client)

		aff := createTestAffiliate(t, client, "REFHHHH0008", entaffiliate.RequestStatusApproved, 0.10, true)
		order := createTestOrder(t, client, 500)

		_, err := service.AttributeSale(ctx, order.ID, aff.ReferralCode)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - No eligible commission writes nothing", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		ctx := context.Background()
		service, _ := newTestService(client)

		// Not global and no product override: no line can earn.
		aff := createTestAffiliate(t, client, "REFIIII0009", entaffiliate.RequestStatusApproved, 0.10, false)
		order := createTestOrder(t, client, 500, [3]float64{1, 100.0, 1}, [3]float64{2, 50.0, 2})

		_, err := service.AttributeSale(ctx, order.ID, aff.ReferralCode)
		require.Error(t, err)
		assert.True(t, domain.IsNoEligibleCommission(err))

		saleCount, err := client.Sale.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, saleCount)

		txnCount, err := client.AffiliateTransaction.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, txnCount)
	})

	t.Run("Success - Pending override falls back to global rate", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		ctx := context.Background()
		service, _ := newTestService(client)

		aff := createTestAffiliate(t, client, "REFJJJJ0010", entaffiliate.RequestStatusApproved, 0.10, true)
		_, err := client.ProductCommission.
			Create().
			SetAffiliateID(aff.ID).
			SetProductID(1).
			SetCommissionType(productcommission.CommissionTypePercentage).
			SetCommissionValue(50.0).
			SetStatus(productcommission.StatusPending).
			Save(ctx)
		require.NoError(t, err)

		order := createTestOrder(t, client, 500, [3]float64{1, 100.0, 1})

		summary, err := service.AttributeSale(ctx, order.ID, aff.ReferralCode)
		require.NoError(t, err)
		// 10% global rate applies, not the unapproved 50% override.
		assert.Equal(t, 10.0, summary.Commission)
	})
}
