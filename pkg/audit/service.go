// Package audit records a durable trail for every state-changing decision in
// the commission domain. Audit failures are reported to callers but never
// block the business operation itself.
package audit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jordanlanch/affiliatedb/ent"
	"github.com/jordanlanch/affiliatedb/ent/auditlog"
)

// Service handles audit logging
type Service struct {
	db *ent.Client
}

// NewService creates a new audit service
func NewService(db *ent.Client) *Service {
	return &Service{
		db: db,
	}
}

// LogEntry represents an audit log entry
type LogEntry struct {
	UserID       *int
	Action       auditlog.Action
	ResourceType string
	ResourceID   string
	Metadata     map[string]interface{}
	Severity     auditlog.Severity
	Description  string
}

// Log creates a new audit log entry
func (s *Service) Log(ctx context.Context, entry LogEntry) error {
	// Create context with timeout
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	create := s.db.AuditLog.Create().
		SetAction(entry.Action).
		SetSeverity(entry.Severity).
		SetResourceType(entry.ResourceType).
		SetResourceID(entry.ResourceID).
		SetDescription(entry.Description)

	if entry.UserID != nil {
		create = create.SetUserID(*entry.UserID)
	}
	if entry.Metadata != nil {
		create = create.SetMetadata(entry.Metadata)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to write audit entry: %w", err)
	}
	return nil
}

// LogAffiliateRequest records a new affiliation request
func (s *Service) LogAffiliateRequest(ctx context.Context, userID, affiliateID int) error {
	return s.Log(ctx, LogEntry{
		UserID:       &userID,
		Action:       auditlog.ActionAffiliateRequest,
		Severity:     auditlog.SeverityInfo,
		ResourceType: "affiliate",
		ResourceID:   strconv.Itoa(affiliateID),
		Description:  "User requested affiliation",
	})
}

// LogAffiliateDecision records an admin approving or blocking an affiliate
func (s *Service) LogAffiliateDecision(ctx context.Context, adminID, affiliateID int, approved bool, reason string) error {
	action := auditlog.ActionAffiliateApproved
	description := "Affiliate approved"
	if !approved {
		action = auditlog.ActionAffiliateBlocked
		description = "Affiliate blocked"
	}
	return s.Log(ctx, LogEntry{
		UserID:       &adminID,
		Action:       action,
		Severity:     auditlog.SeverityInfo,
		ResourceType: "affiliate",
		ResourceID:   strconv.Itoa(affiliateID),
		Description:  description,
		Metadata:     map[string]interface{}{"reason": reason},
	})
}

// LogProductTermsUpdated records an admin changing per-product terms
func (s *Service) LogProductTermsUpdated(ctx context.Context, adminID, affiliateID, productID int) error {
	return s.Log(ctx, LogEntry{
		UserID:       &adminID,
		Action:       auditlog.ActionProductTermsUpdated,
		Severity:     auditlog.SeverityInfo,
		ResourceType: "affiliate",
		ResourceID:   strconv.Itoa(affiliateID),
		Description:  "Product commission terms updated",
		Metadata:     map[string]interface{}{"product_id": productID},
	})
}

// LogSaleAttributed records a successful attribution
func (s *Service) LogSaleAttributed(ctx context.Context, affiliateID, orderID int, commission float64) error {
	return s.Log(ctx, LogEntry{
		Action:       auditlog.ActionSaleAttributed,
		Severity:     auditlog.SeverityInfo,
		ResourceType: "sale",
		ResourceID:   strconv.Itoa(orderID),
		Description:  "Sale attributed to affiliate",
		Metadata: map[string]interface{}{
			"affiliate_id": affiliateID,
			"order_id":     orderID,
			"commission":   commission,
		},
	})
}

// LogWithdrawalRequested records a new withdrawal request
func (s *Service) LogWithdrawalRequested(ctx context.Context, affiliateID, withdrawalID int, amount float64) error {
	return s.Log(ctx, LogEntry{
		Action:       auditlog.ActionWithdrawalRequested,
		Severity:     auditlog.SeverityInfo,
		ResourceType: "withdrawal",
		ResourceID:   strconv.Itoa(withdrawalID),
		Description:  "Withdrawal requested",
		Metadata: map[string]interface{}{
			"affiliate_id": affiliateID,
			"amount":       amount,
		},
	})
}

// LogWithdrawalDecision records an admin decision on a withdrawal request
func (s *Service) LogWithdrawalDecision(ctx context.Context, adminID, withdrawalID int, status string) error {
	var action auditlog.Action
	switch status {
	case "approved":
		action = auditlog.ActionWithdrawalApproved
	case "rejected":
		action = auditlog.ActionWithdrawalRejected
	case "paid":
		action = auditlog.ActionWithdrawalPaid
	default:
		return fmt.Errorf("unknown withdrawal decision: %s", status)
	}
	return s.Log(ctx, LogEntry{
		UserID:       &adminID,
		Action:       action,
		Severity:     auditlog.SeverityInfo,
		ResourceType: "withdrawal",
		ResourceID:   strconv.Itoa(withdrawalID),
		Description:  fmt.Sprintf("Withdrawal %s", status),
	})
}

// LogLedgerAdjustment records a manual balance correction
func (s *Service) LogLedgerAdjustment(ctx context.Context, adminID, affiliateID int, amount float64, reason string) error {
	return s.Log(ctx, LogEntry{
		UserID:       &adminID,
		Action:       auditlog.ActionLedgerAdjustment,
		Severity:     auditlog.SeverityWarning,
		ResourceType: "balance",
		ResourceID:   strconv.Itoa(affiliateID),
		Description:  "Manual ledger adjustment",
		Metadata: map[string]interface{}{
			"amount": amount,
			"reason": reason,
		},
	})
}

// LogLedgerDrift records a mismatch between the materialized balance and the
// transaction log
func (s *Service) LogLedgerDrift(ctx context.Context, affiliateID int, recorded, computed float64) error {
	return s.Log(ctx, LogEntry{
		Action:       auditlog.ActionLedgerDrift,
		Severity:     auditlog.SeverityCritical,
		ResourceType: "balance",
		ResourceID:   strconv.Itoa(affiliateID),
		Description:  "Ledger drift detected",
		Metadata: map[string]interface{}{
			"recorded": recorded,
			"computed": computed,
		},
	})
}
