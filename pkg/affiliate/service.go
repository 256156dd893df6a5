package affiliate

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/jordanlanch/affiliatedb/ent"
	"github.com/jordanlanch/affiliatedb/ent/affiliate"
	"github.com/jordanlanch/affiliatedb/ent/productcommission"
	"github.com/jordanlanch/affiliatedb/ent/sale"
	"github.com/jordanlanch/affiliatedb/pkg/domain"
	"github.com/jordanlanch/affiliatedb/pkg/logger"
)

const (
	referralCodePrefix = "REF"
	referralCodeLength = 8
	codeRetryAttempts  = 5
)

// Service is the affiliate directory: enrollment requests, admin decisions,
// referral code resolution and commission terms resolution.
type Service struct {
	db     *ent.Client
	audit  domain.AuditLogger
	logger logger.Logger
}

// NewService creates a new affiliate directory service
func NewService(db *ent.Client, audit domain.AuditLogger, log logger.Logger) *Service {
	return &Service{db: db, audit: audit, logger: log}
}

// RequestAffiliation enrolls a user into the referral program with a pending
// status. A user can hold at most one affiliate record; the referral code is
// issued here and never changes.
func (s *Service) RequestAffiliation(ctx context.Context, userID int, commissionRate float64, isGlobal bool) (*ent.Affiliate, error) {
	existing, err := s.db.Affiliate.
		Query().
		Where(affiliate.UserIDEQ(userID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query affiliate: %w", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError("User already has an affiliate record")
	}

	if commissionRate < 0 || commissionRate > 1 {
		return nil, domain.NewValidationError("Commission rate must be a fraction between 0 and 1")
	}

	var aff *ent.Affiliate
	for attempt := 0; attempt < codeRetryAttempts; attempt++ {
		code, err := generateReferralCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate referral code: %w", err)
		}

		aff, err = s.db.Affiliate.
			Create().
			SetUserID(userID).
			SetReferralCode(code).
			SetCommissionRate(commissionRate).
			SetIsGlobal(isGlobal).
			SetRequestStatus(affiliate.RequestStatusPending).
			Save(ctx)
		if err == nil {
			break
		}
		// Regenerate on code collision, anything else is fatal.
		if !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to create affiliate: %w", err)
		}
		aff = nil
	}
	if aff == nil {
		return nil, domain.NewInternalError(fmt.Errorf("could not issue a unique referral code after %d attempts", codeRetryAttempts))
	}

	if err := s.audit.LogAffiliateRequest(ctx, userID, aff.ID); err != nil {
		s.logger.Warn("failed to write affiliate request audit entry", "error", err)
	}

	s.logger.Info("affiliation requested", "user_id", userID, "affiliate_id", aff.ID)
	return aff, nil
}

// GetByUserID returns the affiliate record owned by a user
func (s *Service) GetByUserID(ctx context.Context, userID int) (*ent.Affiliate, error) {
	aff, err := s.db.Affiliate.
		Query().
		Where(affiliate.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("Affiliate")
		}
		return nil, fmt.Errorf("failed to query affiliate: %w", err)
	}
	return aff, nil
}

// ResolveByReferralCode resolves a referral code to its affiliate
func (s *Service) ResolveByReferralCode(ctx context.Context, code string) (*ent.Affiliate, error) {
	aff, err := s.db.Affiliate.
		Query().
		Where(affiliate.ReferralCodeEQ(code)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("Affiliate")
		}
		return nil, fmt.Errorf("failed to query affiliate: %w", err)
	}
	return aff, nil
}

// ProcessRequest applies an admin decision to an affiliation request.
// Approval requires a pending request; blocking is allowed from pending or
// approved and records the reason. Blocked is terminal.
func (s *Service) ProcessRequest(ctx context.Context, adminID, affiliateID int, approve bool, reason string) (*ent.Affiliate, error) {
	aff, err := s.db.Affiliate.Get(ctx, affiliateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("Affiliate")
		}
		return nil, fmt.Errorf("failed to get affiliate: %w", err)
	}

	if approve {
		if aff.RequestStatus != affiliate.RequestStatusPending {
			return nil, domain.NewInvalidTransitionError(string(aff.RequestStatus), string(affiliate.RequestStatusApproved))
		}
		aff, err = s.db.Affiliate.
			UpdateOneID(affiliateID).
			SetRequestStatus(affiliate.RequestStatusApproved).
			Save(ctx)
	} else {
		if aff.RequestStatus == affiliate.RequestStatusBlocked {
			return nil, domain.NewInvalidTransitionError(string(aff.RequestStatus), string(affiliate.RequestStatusBlocked))
		}
		if strings.TrimSpace(reason) == "" {
			return nil, domain.NewValidationError("A reason is required when blocking an affiliate")
		}
		aff, err = s.db.Affiliate.
			UpdateOneID(affiliateID).
			SetRequestStatus(affiliate.RequestStatusBlocked).
			SetReason(reason).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update affiliate status: %w", err)
	}

	if err := s.audit.LogAffiliateDecision(ctx, adminID, affiliateID, approve, reason); err != nil {
		s.logger.Warn("failed to write affiliate decision audit entry", "error", err)
	}

	s.logger.Info("affiliation request processed",
		"affiliate_id", affiliateID,
		"approved", approve,
		"admin_id", adminID)
	return aff, nil
}

// ListRequests lists affiliate records, optionally filtered by request status
func (s *Service) ListRequests(ctx context.Context, status string) ([]*ent.Affiliate, error) {
	q := s.db.Affiliate.Query()
	if status != "" {
		st := affiliate.RequestStatus(status)
		if err := affiliate.RequestStatusValidator(st); err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("Invalid request status: %s", status))
		}
		q = q.Where(affiliate.RequestStatusEQ(st))
	}

	affs, err := q.Order(ent.Desc(affiliate.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list affiliates: %w", err)
	}
	return affs, nil
}

// AffiliateLink builds the shareable referral link for an approved affiliate
func (s *Service) AffiliateLink(ctx context.Context, userID int, baseURL string) (string, error) {
	aff, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	if aff.RequestStatus != affiliate.RequestStatusApproved {
		return "", domain.NewIneligibleAffiliateError(string(aff.RequestStatus))
	}
	return fmt.Sprintf("%s?ref=%s", strings.TrimRight(baseURL, "/"), aff.ReferralCode), nil
}

// ListSales returns the sales attributed to a user's affiliate record,
// newest first
func (s *Service) ListSales(ctx context.Context, userID int) ([]*ent.Sale, error) {
	aff, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	sales, err := s.db.Sale.
		Query().
		Where(sale.AffiliateIDEQ(aff.ID)).
		Order(ent.Desc(sale.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}

// UpsertProductTerms creates or replaces the per-product commission terms for
// an affiliate. At most one row exists per affiliate/product pair.
func (s *Service) UpsertProductTerms(ctx context.Context, adminID, affiliateID, productID int, commissionType string, value float64, status string) (*ent.ProductCommission, error) {
	ct := productcommission.CommissionType(commissionType)
	if err := productcommission.CommissionTypeValidator(ct); err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("Invalid commission type: %s", commissionType))
	}
	st := productcommission.Status(status)
	if err := productcommission.StatusValidator(st); err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("Invalid terms status: %s", status))
	}
	if value < 0 {
		return nil, domain.NewValidationError("Commission value must not be negative")
	}
	if ct == productcommission.CommissionTypePercentage && value > 100 {
		return nil, domain.NewValidationError("Percentage commission value must not exceed 100")
	}

	if _, err := s.db.Affiliate.Get(ctx, affiliateID); err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("Affiliate")
		}
		return nil, fmt.Errorf("failed to get affiliate: %w", err)
	}

	existing, err := s.db.ProductCommission.
		Query().
		Where(
			productcommission.AffiliateIDEQ(affiliateID),
			productcommission.ProductIDEQ(productID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query product terms: %w", err)
	}

	var terms *ent.ProductCommission
	if existing != nil {
		terms, err = s.db.ProductCommission.
			UpdateOneID(existing.ID).
			SetCommissionType(ct).
			SetCommissionValue(value).
			SetStatus(st).
			Save(ctx)
	} else {
		terms, err = s.db.ProductCommission.
			Create().
			SetAffiliateID(affiliateID).
			SetProductID(productID).
			SetCommissionType(ct).
			SetCommissionValue(value).
			SetStatus(st).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to upsert product terms: %w", err)
	}

	if err := s.audit.LogProductTermsUpdated(ctx, adminID, affiliateID, productID); err != nil {
		s.logger.Warn("failed to write product terms audit entry", "error", err)
	}

	return terms, nil
}

// ResolveCommissionTerms resolves the commission policy for one affiliate and
// product: an approved product override wins; otherwise the affiliate's
// global rate applies only when the affiliate is global. Anything else earns
// nothing on that product.
func (s *Service) ResolveCommissionTerms(ctx context.Context, aff *ent.Affiliate, productID int) (CommissionTerms, error) {
	override, err := s.db.ProductCommission.
		Query().
		Where(
			productcommission.AffiliateIDEQ(aff.ID),
			productcommission.ProductIDEQ(productID),
			productcommission.StatusEQ(productcommission.StatusApproved),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return NoCommission(), fmt.Errorf("failed to query product terms: %w", err)
	}

	if override != nil {
		switch override.CommissionType {
		case productcommission.CommissionTypeFixed:
			return FixedPerUnit(override.CommissionValue), nil
		default:
			return Percentage(override.CommissionValue), nil
		}
	}

	if aff.IsGlobal {
		// The global rate is stored as a fraction, the calculator expects 0-100.
		return Percentage(aff.CommissionRate * 100), nil
	}

	return NoCommission(), nil
}

// generateReferralCode issues a code like REF1A2B3C4D from a
// cryptographically secure source
func generateReferralCode() (string, error) {
	bytes := make([]byte, referralCodeLength/2)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return referralCodePrefix + strings.ToUpper(hex.EncodeToString(bytes)), nil
}
