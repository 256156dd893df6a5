// Code generated by ent, DO NOT EDIT.

package affiliatetransaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/affiliatedb/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldLTE(FieldID, id))
}

// BalanceID applies equality check predicate on the "balance_id" field. It's identical to BalanceIDEQ.
func BalanceID(v int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldEQ(FieldBalanceID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldEQ(FieldAmount, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldEQ(FieldDescription, v))
}

// ReferenceID applies equality check predicate on the "reference_id" field. It's identical to ReferenceIDEQ.
func ReferenceID(v int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldEQ(FieldReferenceID, v))
}

// TransactionDate applies equality check predicate on the "transaction_date" field. It's identical to TransactionDateEQ.
func TransactionDate(v time.Time) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldEQ(FieldTransactionDate, v))
}

// BalanceIDEQ applies the EQ predicate on the "balance_id" field.
func BalanceIDEQ(v int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldEQ(FieldBalanceID, v))
}

// BalanceIDNEQ applies the NEQ predicate on the "balance_id" field.
func BalanceIDNEQ(v int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldNEQ(FieldBalanceID, v))
}

// BalanceIDIn applies the In predicate on the "balance_id" field.
func BalanceIDIn(vs ...int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldIn(FieldBalanceID, vs...))
}

// BalanceIDNotIn applies the NotIn predicate on the "balance_id" field.
func BalanceIDNotIn(vs ...int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldNotIn(FieldBalanceID, vs...))
}

// BalanceIDGT applies the GT predicate on the "balance_id" field.
func BalanceIDGT(v int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldGT(FieldBalanceID, v))
}

// BalanceIDGTE applies the GTE predicate on the "balance_id" field.
func BalanceIDGTE(v int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldGTE(FieldBalanceID, v))
}

// BalanceIDLT applies the LT predicate on the "balance_id" field.
func BalanceIDLT(v int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldLT(FieldBalanceID, v))
}

// BalanceIDLTE applies the LTE predicate on the "balance_id" field.
func BalanceIDLTE(v int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldLTE(FieldBalanceID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldNotIn(FieldType, vs...))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldLTE(FieldAmount, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldContainsFold(FieldDescription, v))
}

// ReferenceIDEQ applies the EQ predicate on the "reference_id" field.
func ReferenceIDEQ(v int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldEQ(FieldReferenceID, v))
}

// ReferenceIDNEQ applies the NEQ predicate on the "reference_id" field.
func ReferenceIDNEQ(v int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldNEQ(FieldReferenceID, v))
}

// ReferenceIDIn applies the In predicate on the "reference_id" field.
func ReferenceIDIn(vs ...int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldIn(FieldReferenceID, vs...))
}

// ReferenceIDNotIn applies the NotIn predicate on the "reference_id" field.
func ReferenceIDNotIn(vs ...int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldNotIn(FieldReferenceID, vs...))
}

// ReferenceIDGT applies the GT predicate on the "reference_id" field.
func ReferenceIDGT(v int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldGT(FieldReferenceID, v))
}

// ReferenceIDGTE applies the GTE predicate on the "reference_id" field.
func ReferenceIDGTE(v int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldGTE(FieldReferenceID, v))
}

// ReferenceIDLT applies the LT predicate on the "reference_id" field.
func ReferenceIDLT(v int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldLT(FieldReferenceID, v))
}

// ReferenceIDLTE applies the LTE predicate on the "reference_id" field.
func ReferenceIDLTE(v int) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldLTE(FieldReferenceID, v))
}

// ReferenceIDIsNil applies the IsNil predicate on the "reference_id" field.
func ReferenceIDIsNil() predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldIsNull(FieldReferenceID))
}

// ReferenceIDNotNil applies the NotNil predicate on the "reference_id" field.
func ReferenceIDNotNil() predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldNotNull(FieldReferenceID))
}

// TransactionDateEQ applies the EQ predicate on the "transaction_date" field.
func TransactionDateEQ(v time.Time) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldEQ(FieldTransactionDate, v))
}

// TransactionDateNEQ applies the NEQ predicate on the "transaction_date" field.
func TransactionDateNEQ(v time.Time) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldNEQ(FieldTransactionDate, v))
}

// TransactionDateIn applies the In predicate on the "transaction_date" field.
func TransactionDateIn(vs ...time.Time) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldIn(FieldTransactionDate, vs...))
}

// TransactionDateNotIn applies the NotIn predicate on the "transaction_date" field.
func TransactionDateNotIn(vs ...time.Time) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldNotIn(FieldTransactionDate, vs...))
}

// TransactionDateGT applies the GT predicate on the "transaction_date" field.
func TransactionDateGT(v time.Time) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldGT(FieldTransactionDate, v))
}

// TransactionDateGTE applies the GTE predicate on the "transaction_date" field.
func TransactionDateGTE(v time.Time) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldGTE(FieldTransactionDate, v))
}

// TransactionDateLT applies the LT predicate on the "transaction_date" field.
func TransactionDateLT(v time.Time) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldLT(FieldTransactionDate, v))
}

// TransactionDateLTE applies the LTE predicate on the "transaction_date" field.
func TransactionDateLTE(v time.Time) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.FieldLTE(FieldTransactionDate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AffiliateTransaction) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AffiliateTransaction) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AffiliateTransaction) predicate.AffiliateTransaction {
	return predicate.AffiliateTransaction(sql.NotPredicates(p))
}
