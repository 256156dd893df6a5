package affiliate

import (
	"context"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/affiliatedb/ent"
	entaffiliate "github.com/jordanlanch/affiliatedb/ent/affiliate"
	"github.com/jordanlanch/affiliatedb/ent/auditlog"
	"github.com/jordanlanch/affiliatedb/ent/enttest"
	"github.com/jordanlanch/affiliatedb/ent/productcommission"
	"github.com/jordanlanch/affiliatedb/pkg/audit"
	"github.com/jordanlanch/affiliatedb/pkg/domain"
	"github.com/jordanlanch/affiliatedb/pkg/logger"
)

const adminID = 99

func setupTest(t *testing.T) (*ent.Client, *Service, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	service := NewService(client, audit.NewService(client), logger.New("error", "text"))
	return client, service, func() { client.Close() }
}

func TestRequestAffiliation(t *testing.T) {
	client, service, cleanup := setupTest(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("Success - Creates a pending affiliate with a referral code", func(t *testing.T) {
		aff, err := service.RequestAffiliation(ctx, 1, 0.05, false)

		require.NoError(t, err)
		assert.Equal(t, entaffiliate.RequestStatusPending, aff.RequestStatus)
		assert.True(t, strings.HasPrefix(aff.ReferralCode, "REF"))
		assert.Len(t, aff.ReferralCode, 11)
		assert.Equal(t, 0.05, aff.CommissionRate)
		assert.False(t, aff.IsGlobal)

		entries, err := client.AuditLog.Query().
			Where(auditlog.ActionEQ(auditlog.ActionAffiliateRequest)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, entries)
	})

	t.Run("Failure - One affiliate record per user", func(t *testing.T) {
		_, err := service.RequestAffiliation(ctx, 1, 0.05, false)

		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("Failure - Rate outside the 0-1 fraction range", func(t *testing.T) {
		_, err := service.RequestAffiliation(ctx, 2, 5.0, false)

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Success - Codes are unique across affiliates", func(t *testing.T) {
		a2, err := service.RequestAffiliation(ctx, 3, 0.05, true)
		require.NoError(t, err)
		a3, err := service.RequestAffiliation(ctx, 4, 0.10, true)
		require.NoError(t, err)

		assert.NotEqual(t, a2.ReferralCode, a3.ReferralCode)
	})
}

func TestProcessRequest(t *testing.T) {
	client, service, cleanup := setupTest(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("Success - Approve a pending request", func(t *testing.T) {
		aff, err := service.RequestAffiliation(ctx, 1, 0.10, true)
		require.NoError(t, err)

		updated, err := service.ProcessRequest(ctx, adminID, aff.ID, true, "")
		require.NoError(t, err)
		assert.Equal(t, entaffiliate.RequestStatusApproved, updated.RequestStatus)

		entries, err := client.AuditLog.Query().
			Where(auditlog.ActionEQ(auditlog.ActionAffiliateApproved)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, entries)
	})

	t.Run("Failure - Approving twice is an invalid transition", func(t *testing.T) {
		aff, err := service.GetByUserID(ctx, 1)
		require.NoError(t, err)

		_, err = service.ProcessRequest(ctx, adminID, aff.ID, true, "")
		require.Error(t, err)
		assert.True(t, domain.IsInvalidTransition(err))
	})

	t.Run("Success - Block an approved affiliate with a reason", func(t *testing.T) {
		aff, err := service.GetByUserID(ctx, 1)
		require.NoError(t, err)

		updated, err := service.ProcessRequest(ctx, adminID, aff.ID, false, "fraudulent activity")
		require.NoError(t, err)
		assert.Equal(t, entaffiliate.RequestStatusBlocked, updated.RequestStatus)
		assert.Equal(t, "fraudulent activity", updated.Reason)
	})

	t.Run("Failure - Blocking requires a reason", func(t *testing.T) {
		aff, err := service.RequestAffiliation(ctx, 2, 0.05, false)
		require.NoError(t, err)

		_, err = service.ProcessRequest(ctx, adminID, aff.ID, false, "  ")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - Blocked is terminal", func(t *testing.T) {
		aff, err := service.GetByUserID(ctx, 1)
		require.NoError(t, err)

		_, err = service.ProcessRequest(ctx, adminID, aff.ID, false, "again")
		require.Error(t, err)
		assert.True(t, domain.IsInvalidTransition(err))
	})

	t.Run("Failure - Unknown affiliate", func(t *testing.T) {
		_, err := service.ProcessRequest(ctx, adminID, 4242, true, "")
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestResolveByReferralCode(t *testing.T) {
	_, service, cleanup := setupTest(t)
	defer cleanup()
	ctx := context.Background()

	aff, err := service.RequestAffiliation(ctx, 1, 0.05, false)
	require.NoError(t, err)

	t.Run("Success - Code resolves to its affiliate", func(t *testing.T) {
		found, err := service.ResolveByReferralCode(ctx, aff.ReferralCode)

		require.NoError(t, err)
		assert.Equal(t, aff.ID, found.ID)
	})

	t.Run("Failure - Unknown code", func(t *testing.T) {
		_, err := service.ResolveByReferralCode(ctx, "REF00000000")

		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestListRequests(t *testing.T) {
	_, service, cleanup := setupTest(t)
	defer cleanup()
	ctx := context.Background()

	a1, err := service.RequestAffiliation(ctx, 1, 0.05, false)
	require.NoError(t, err)
	_, err = service.RequestAffiliation(ctx, 2, 0.05, false)
	require.NoError(t, err)
	_, err = service.ProcessRequest(ctx, adminID, a1.ID, true, "")
	require.NoError(t, err)

	t.Run("Success - Filter by status", func(t *testing.T) {
		pending, err := service.ListRequests(ctx, "pending")
		require.NoError(t, err)
		assert.Len(t, pending, 1)

		approved, err := service.ListRequests(ctx, "approved")
		require.NoError(t, err)
		assert.Len(t, approved, 1)
	})

	t.Run("Success - No filter returns everything", func(t *testing.T) {
		all, err := service.ListRequests(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("Failure - Invalid status", func(t *testing.T) {
		_, err := service.ListRequests(ctx, "suspended")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestAffiliateLink(t *testing.T) {
	_, service, cleanup := setupTest(t)
	defer cleanup()
	ctx := context.Background()

	aff, err := service.RequestAffiliation(ctx, 1, 0.05, false)
	require.NoError(t, err)

	t.Run("Failure - Pending affiliate has no link", func(t *testing.T) {
		_, err := service.AffiliateLink(ctx, 1, "https://shop.example.com/")

		require.Error(t, err)
		assert.True(t, domain.IsIneligibleAffiliate(err))
	})

	t.Run("Success - Approved affiliate gets a link with its code", func(t *testing.T) {
		_, err := service.ProcessRequest(ctx, adminID, aff.ID, true, "")
		require.NoError(t, err)

		link, err := service.AffiliateLink(ctx, 1, "https://shop.example.com/")
		require.NoError(t, err)
		assert.Equal(t, "https://shop.example.com?ref="+aff.ReferralCode, link)
	})

	t.Run("Failure - User without an affiliate record", func(t *testing.T) {
		_, err := service.AffiliateLink(ctx, 42, "https://shop.example.com")

		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestUpsertProductTerms(t *testing.T) {
	client, service, cleanup := setupTest(t)
	defer cleanup()
	ctx := context.Background()

	aff, err := service.RequestAffiliation(ctx, 1, 0.05, false)
	require.NoError(t, err)

	t.Run("Success - Creates terms for a new pair", func(t *testing.T) {
		terms, err := service.UpsertProductTerms(ctx, adminID, aff.ID, 7, "percentage", 12.5, "approved")

		require.NoError(t, err)
		assert.Equal(t, productcommission.CommissionTypePercentage, terms.CommissionType)
		assert.Equal(t, 12.5, terms.CommissionValue)
	})

	t.Run("Success - Updates the existing pair instead of duplicating", func(t *testing.T) {
		terms, err := service.UpsertProductTerms(ctx, adminID, aff.ID, 7, "fixed", 3.0, "approved")

		require.NoError(t, err)
		assert.Equal(t, productcommission.CommissionTypeFixed, terms.CommissionType)

		count, err := client.ProductCommission.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Failure - Percentage above 100", func(t *testing.T) {
		_, err := service.UpsertProductTerms(ctx, adminID, aff.ID, 8, "percentage", 150.0, "approved")

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - Negative value", func(t *testing.T) {
		_, err := service.UpsertProductTerms(ctx, adminID, aff.ID, 8, "fixed", -1.0, "approved")

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - Unknown commission type", func(t *testing.T) {
		_, err := service.UpsertProductTerms(ctx, adminID, aff.ID, 8, "tiered", 5.0, "approved")

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - Unknown affiliate", func(t *testing.T) {
		_, err := service.UpsertProductTerms(ctx, adminID, 4242, 8, "fixed", 5.0, "approved")

		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestResolveCommissionTerms(t *testing.T) {
	_, service, cleanup := setupTest(t)
	defer cleanup()
	ctx := context.Background()

	global, err := service.RequestAffiliation(ctx, 1, 0.10, true)
	require.NoError(t, err)
	restricted, err := service.RequestAffiliation(ctx, 2, 0.10, false)
	require.NoError(t, err)

	t.Run("Success - Approved override wins over the global rate", func(t *testing.T) {
		_, err := service.UpsertProductTerms(ctx, adminID, global.ID, 7, "fixed", 8.0, "approved")
		require.NoError(t, err)

		terms, err := service.ResolveCommissionTerms(ctx, global, 7)
		require.NoError(t, err)
		assert.Equal(t, TermsFixed, terms.Kind)
		assert.Equal(t, 8.0, terms.Value)
	})

	t.Run("Success - Global affiliate falls back to its rate as a percentage", func(t *testing.T) {
		terms, err := service.ResolveCommissionTerms(ctx, global, 8)

		require.NoError(t, err)
		assert.Equal(t, TermsPercentage, terms.Kind)
		assert.Equal(t, 10.0, terms.Value)
	})

	t.Run("Success - Pending override is ignored", func(t *testing.T) {
		_, err := service.UpsertProductTerms(ctx, adminID, restricted.ID, 7, "percentage", 50.0, "pending")
		require.NoError(t, err)

		terms, err := service.ResolveCommissionTerms(ctx, restricted, 7)
		require.NoError(t, err)
		assert.Equal(t, TermsNone, terms.Kind)
	})

	t.Run("Success - Non-global affiliate without override earns nothing", func(t *testing.T) {
		terms, err := service.ResolveCommissionTerms(ctx, restricted, 9)

		require.NoError(t, err)
		assert.Equal(t, TermsNone, terms.Kind)
		assert.False(t, terms.Eligible())
	})
}
