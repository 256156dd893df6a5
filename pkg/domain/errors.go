package domain

import "fmt"

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeIneligibleAffiliate  = "INELIGIBLE_AFFILIATE"
	ErrCodeDuplicateAttribution = "DUPLICATE_ATTRIBUTION"
	ErrCodeNoEligibleCommission = "NO_ELIGIBLE_COMMISSION"
	ErrCodeInsufficientBalance  = "INSUFFICIENT_BALANCE"
	ErrCodeInvalidTransition    = "INVALID_TRANSITION"
	ErrCodeLedgerDrift          = "LEDGER_DRIFT"
	ErrCodeUnauthorized         = "UNAUTHORIZED"
	ErrCodeForbidden            = "FORBIDDEN"
	ErrCodeInternal             = "INTERNAL_ERROR"
	ErrCodeConflict             = "CONFLICT"
	ErrCodeBadRequest           = "BAD_REQUEST"
)

// Error constructors

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string) error {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError creates a new validation error
func NewValidationError(msg string) error {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// NewIneligibleAffiliateError creates an error for affiliates that are not
// approved to earn commissions
func NewIneligibleAffiliateError(status string) error {
	return &DomainError{
		Code:    ErrCodeIneligibleAffiliate,
		Message: fmt.Sprintf("Affiliate is not approved (status: %s)", status),
	}
}

// NewDuplicateAttributionError creates an error for orders already attributed
// to a different affiliate
func NewDuplicateAttributionError(orderID int) error {
	return &DomainError{
		Code:    ErrCodeDuplicateAttribution,
		Message: fmt.Sprintf("Order %d is already attributed to another affiliate", orderID),
	}
}

// NewNoEligibleCommissionError creates an error for orders whose items yield
// no commission under the affiliate's terms
func NewNoEligibleCommissionError(orderID int) error {
	return &DomainError{
		Code:    ErrCodeNoEligibleCommission,
		Message: fmt.Sprintf("Order %d has no commission-eligible items for this affiliate", orderID),
	}
}

// NewInsufficientBalanceError creates an error for debits exceeding the
// available balance
func NewInsufficientBalanceError(requested, available float64) error {
	return &DomainError{
		Code:    ErrCodeInsufficientBalance,
		Message: fmt.Sprintf("Requested amount %.2f exceeds available balance %.2f", requested, available),
	}
}

// NewInvalidTransitionError creates an error for disallowed withdrawal
// status transitions
func NewInvalidTransitionError(from, to string) error {
	return &DomainError{
		Code:    ErrCodeInvalidTransition,
		Message: fmt.Sprintf("Cannot transition withdrawal from %s to %s", from, to),
	}
}

// NewLedgerDriftError creates an error reporting a mismatch between the
// materialized balance and the transaction log
func NewLedgerDriftError(affiliateID int, recorded, computed float64) error {
	return &DomainError{
		Code:    ErrCodeLedgerDrift,
		Message: fmt.Sprintf("Balance drift for affiliate %d: recorded %.2f, ledger sum %.2f", affiliateID, recorded, computed),
	}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError() error {
	return &DomainError{
		Code:    ErrCodeUnauthorized,
		Message: "Authentication required",
	}
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(msg string) error {
	return &DomainError{
		Code:    ErrCodeForbidden,
		Message: msg,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(err error) error {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: "An internal error occurred",
		Err:     err,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(msg string) error {
	return &DomainError{
		Code:    ErrCodeConflict,
		Message: msg,
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(msg string) error {
	return &DomainError{
		Code:    ErrCodeBadRequest,
		Message: msg,
	}
}

// Helper functions to check error types

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeNotFound
	}
	return false
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeValidation
	}
	return false
}

// IsIneligibleAffiliate checks if the error is an ineligible affiliate error
func IsIneligibleAffiliate(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeIneligibleAffiliate
	}
	return false
}

// IsDuplicateAttribution checks if the error is a duplicate attribution error
func IsDuplicateAttribution(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeDuplicateAttribution
	}
	return false
}

// IsNoEligibleCommission checks if the error is a no eligible commission error
func IsNoEligibleCommission(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeNoEligibleCommission
	}
	return false
}

// IsInsufficientBalance checks if the error is an insufficient balance error
func IsInsufficientBalance(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeInsufficientBalance
	}
	return false
}

// IsInvalidTransition checks if the error is an invalid transition error
func IsInvalidTransition(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeInvalidTransition
	}
	return false
}

// IsLedgerDrift checks if the error is a ledger drift error
func IsLedgerDrift(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeLedgerDrift
	}
	return false
}

// IsUnauthorized checks if the error is an unauthorized error
func IsUnauthorized(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeUnauthorized
	}
	return false
}

// IsForbidden checks if the error is a forbidden error
func IsForbidden(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeForbidden
	}
	return false
}

// IsInternal checks if the error is an internal error
func IsInternal(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeInternal
	}
	return false
}

// IsConflict checks if the error is a conflict error
func IsConflict(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeConflict
	}
	return false
}

// IsBadRequest checks if the error is a bad request error
func IsBadRequest(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeBadRequest
	}
	return false
}

// GetErrorCode extracts the error code from a domain error
func GetErrorCode(err error) string {
	if de, ok := err.(*DomainError); ok {
		return de.Code
	}
	return ErrCodeInternal
}
