// Code generated by ent, DO NOT EDIT.

package affiliate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the affiliate type in the database.
	Label = "affiliate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldReferralCode holds the string denoting the referral_code field in the database.
	FieldReferralCode = "referral_code"
	// FieldCommissionRate holds the string denoting the commission_rate field in the database.
	FieldCommissionRate = "commission_rate"
	// FieldIsGlobal holds the string denoting the is_global field in the database.
	FieldIsGlobal = "is_global"
	// FieldRequestStatus holds the string denoting the request_status field in the database.
	FieldRequestStatus = "request_status"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the affiliate in the database.
	Table = "affiliates"
)

// Columns holds all SQL columns for affiliate fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldReferralCode,
	FieldCommissionRate,
	FieldIsGlobal,
	FieldRequestStatus,
	FieldReason,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ReferralCodeValidator is a validator for the "referral_code" field. It is called by the builders before save.
	ReferralCodeValidator func(string) error
	// DefaultCommissionRate holds the default value on creation for the "commission_rate" field.
	DefaultCommissionRate float64
	// DefaultIsGlobal holds the default value on creation for the "is_global" field.
	DefaultIsGlobal bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// RequestStatus defines the type for the "request_status" enum field.
type RequestStatus string

// RequestStatusPending is the default value of the RequestStatus enum.
const DefaultRequestStatus = RequestStatusPending

// RequestStatus values.
const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusBlocked  RequestStatus = "blocked"
)

func (rs RequestStatus) String() string {
	return string(rs)
}

// RequestStatusValidator is a validator for the "request_status" field enum values. It is called by the builders before save.
func RequestStatusValidator(rs RequestStatus) error {
	switch rs {
	case RequestStatusPending, RequestStatusApproved, RequestStatusBlocked:
		return nil
	default:
		return fmt.Errorf("affiliate: invalid enum value for request_status field: %q", rs)
	}
}

// OrderOption defines the ordering options for the Affiliate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByReferralCode orders the results by the referral_code field.
func ByReferralCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferralCode, opts...).ToFunc()
}

// ByCommissionRate orders the results by the commission_rate field.
func ByCommissionRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommissionRate, opts...).ToFunc()
}

// ByIsGlobal orders the results by the is_global field.
func ByIsGlobal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsGlobal, opts...).ToFunc()
}

// ByRequestStatus orders the results by the request_status field.
func ByRequestStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestStatus, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
