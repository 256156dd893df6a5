// Code generated by ent, DO NOT EDIT.

package affiliatetransaction

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the affiliatetransaction type in the database.
	Label = "affiliate_transaction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBalanceID holds the string denoting the balance_id field in the database.
	FieldBalanceID = "balance_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldReferenceID holds the string denoting the reference_id field in the database.
	FieldReferenceID = "reference_id"
	// FieldTransactionDate holds the string denoting the transaction_date field in the database.
	FieldTransactionDate = "transaction_date"
	// Table holds the table name of the affiliatetransaction in the database.
	Table = "affiliate_transactions"
)

// Columns holds all SQL columns for affiliatetransaction fields.
var Columns = []string{
	FieldID,
	FieldBalanceID,
	FieldType,
	FieldAmount,
	FieldDescription,
	FieldReferenceID,
	FieldTransactionDate,
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
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// DefaultTransactionDate holds the default value on creation for the "transaction_date" field.
	DefaultTransactionDate func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeCommission Type = "commission"
	TypeWithdrawal Type = "withdrawal"
	TypeAdjustment Type = "adjustment"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeCommission, TypeWithdrawal, TypeAdjustment:
		return nil
	default:
		return fmt.Errorf("affiliatetransaction: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the AffiliateTransaction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBalanceID orders the results by the balance_id field.
func ByBalanceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBalanceID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByReferenceID orders the results by the reference_id field.
func ByReferenceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceID, opts...).ToFunc()
}

// ByTransactionDate orders the results by the transaction_date field.
func ByTransactionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransactionDate, opts...).ToFunc()
}
