// Package models holds the request and response shapes of the HTTP API.
package models

import "time"

// ErrorResponse is the envelope for all error replies
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AffiliationRequest is the body for requesting enrollment
type AffiliationRequest struct {
	CommissionRate float64 `json:"commission_rate" validate:"gte=0,lte=1"`
	IsGlobal       bool    `json:"is_global"`
}

// ProcessAffiliationRequest is the admin decision body
type ProcessAffiliationRequest struct {
	Approve *bool  `json:"approve" validate:"required"`
	Reason  string `json:"reason"`
}

// ProductTermsRequest sets per-product commission terms
type ProductTermsRequest struct {
	CommissionType  string  `json:"commission_type" validate:"required,oneof=percentage fixed"`
	CommissionValue float64 `json:"commission_value" validate:"gte=0"`
	Status          string  `json:"status" validate:"required,oneof=pending approved blocked"`
}

// PaymentConfirmedRequest is the normalized payment event body
type PaymentConfirmedRequest struct {
	OrderID      int    `json:"order_id" validate:"required,gt=0"`
	ReferralCode string `json:"referral_code" validate:"required"`
}

// WithdrawalCreateRequest opens a withdrawal request
type WithdrawalCreateRequest struct {
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod  string  `json:"payment_method" validate:"required"`
	PaymentDetails string  `json:"payment_details" validate:"required"`
}

// WithdrawalProcessRequest is the admin decision body for a withdrawal
type WithdrawalProcessRequest struct {
	Status     string `json:"status" validate:"required,oneof=approved rejected paid"`
	AdminNotes string `json:"admin_notes"`
}

// AdjustmentRequest posts a manual ledger correction
type AdjustmentRequest struct {
	AffiliateID int     `json:"affiliate_id" validate:"required,gt=0"`
	Amount      float64 `json:"amount" validate:"required"`
	Reason      string  `json:"reason" validate:"required"`
}

// AffiliateResponse is the public view of an affiliate record
type AffiliateResponse struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	ReferralCode   string    `json:"referral_code"`
	CommissionRate float64   `json:"commission_rate"`
	IsGlobal       bool      `json:"is_global"`
	RequestStatus  string    `json:"request_status"`
	Reason         string    `json:"reason,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// SaleResponse is the public view of an attributed sale
type SaleResponse struct {
	ID          int       `json:"id"`
	AffiliateID int       `json:"affiliate_id"`
	OrderID     int       `json:"order_id"`
	Commission  float64   `json:"commission"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionResponse is one ledger statement line
type TransactionResponse struct {
	ID              int       `json:"id"`
	Type            string    `json:"type"`
	Amount          float64   `json:"amount"`
	Description     string    `json:"description"`
	ReferenceID     int       `json:"reference_id,omitempty"`
	TransactionDate time.Time `json:"transaction_date"`
}

// TransactionListResponse is a paginated statement
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
}

// WithdrawalResponse is the public view of a withdrawal request
type WithdrawalResponse struct {
	ID            int        `json:"id"`
	AffiliateID   int        `json:"affiliate_id"`
	Amount        float64    `json:"amount"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"payment_method"`
	AdminNotes    string     `json:"admin_notes,omitempty"`
	RequestedAt   time.Time  `json:"requested_at"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
}

// WithdrawalListResponse is a paginated withdrawal listing
type WithdrawalListResponse struct {
	Withdrawals []WithdrawalResponse `json:"withdrawals"`
	Total       int                  `json:"total"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
}
