// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Affiliate is the predicate function for affiliate builders.
type Affiliate func(*sql.Selector)

// AffiliateBalance is the predicate function for affiliatebalance builders.
type AffiliateBalance func(*sql.Selector)

// AffiliateTransaction is the predicate function for affiliatetransaction builders.
type AffiliateTransaction func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Order is the predicate function for order builders.
type Order func(*sql.Selector)

// OrderItem is the predicate function for orderitem builders.
type OrderItem func(*sql.Selector)

// Product is the predicate function for product builders.
type Product func(*sql.Selector)

// ProductCommission is the predicate function for productcommission builders.
type ProductCommission func(*sql.Selector)

// Sale is the predicate function for sale builders.
type Sale func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WithdrawalRequest is the predicate function for withdrawalrequest builders.
type WithdrawalRequest func(*sql.Selector)
