// Code generated by ent, DO NOT EDIT.

package affiliatebalance

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the affiliatebalance type in the database.
	Label = "affiliate_balance"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAffiliateID holds the string denoting the affiliate_id field in the database.
	FieldAffiliateID = "affiliate_id"
	// FieldCurrentBalance holds the string denoting the current_balance field in the database.
	FieldCurrentBalance = "current_balance"
	// FieldTotalEarned holds the string denoting the total_earned field in the database.
	FieldTotalEarned = "total_earned"
	// FieldTotalWithdrawn holds the string denoting the total_withdrawn field in the database.
	FieldTotalWithdrawn = "total_withdrawn"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// Table holds the table name of the affiliatebalance in the database.
	Table = "affiliate_balances"
)

// Columns holds all SQL columns for affiliatebalance fields.
var Columns = []string{
	FieldID,
	FieldAffiliateID,
	FieldCurrentBalance,
	FieldTotalEarned,
	FieldTotalWithdrawn,
	FieldLastUpdated,
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
	// DefaultCurrentBalance holds the default value on creation for the "current_balance" field.
	DefaultCurrentBalance float64
	// DefaultTotalEarned holds the default value on creation for the "total_earned" field.
	DefaultTotalEarned float64
	// DefaultTotalWithdrawn holds the default value on creation for the "total_withdrawn" field.
	DefaultTotalWithdrawn float64
	// DefaultLastUpdated holds the default value on creation for the "last_updated" field.
	DefaultLastUpdated func() time.Time
	// UpdateDefaultLastUpdated holds the default value on update for the "last_updated" field.
	UpdateDefaultLastUpdated func() time.Time
)

// OrderOption defines the ordering options for the AffiliateBalance queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAffiliateID orders the results by the affiliate_id field.
func ByAffiliateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAffiliateID, opts...).ToFunc()
}

// ByCurrentBalance orders the results by the current_balance field.
func ByCurrentBalance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentBalance, opts...).ToFunc()
}

// ByTotalEarned orders the results by the total_earned field.
func ByTotalEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalEarned, opts...).ToFunc()
}

// ByTotalWithdrawn orders the results by the total_withdrawn field.
func ByTotalWithdrawn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalWithdrawn, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}
