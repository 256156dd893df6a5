// Code generated by ent, DO NOT EDIT.

package affiliatebalance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/affiliatedb/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldLTE(FieldID, id))
}

// AffiliateID applies equality check predicate on the "affiliate_id" field. It's identical to AffiliateIDEQ.
func AffiliateID(v int) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldEQ(FieldAffiliateID, v))
}

// CurrentBalance applies equality check predicate on the "current_balance" field. It's identical to CurrentBalanceEQ.
func CurrentBalance(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldEQ(FieldCurrentBalance, v))
}

// TotalEarned applies equality check predicate on the "total_earned" field. It's identical to TotalEarnedEQ.
func TotalEarned(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldEQ(FieldTotalEarned, v))
}

// TotalWithdrawn applies equality check predicate on the "total_withdrawn" field. It's identical to TotalWithdrawnEQ.
func TotalWithdrawn(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldEQ(FieldTotalWithdrawn, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldEQ(FieldLastUpdated, v))
}

// AffiliateIDEQ applies the EQ predicate on the "affiliate_id" field.
func AffiliateIDEQ(v int) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldEQ(FieldAffiliateID, v))
}

// AffiliateIDNEQ applies the NEQ predicate on the "affiliate_id" field.
func AffiliateIDNEQ(v int) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldNEQ(FieldAffiliateID, v))
}

// AffiliateIDIn applies the In predicate on the "affiliate_id" field.
func AffiliateIDIn(vs ...int) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldIn(FieldAffiliateID, vs...))
}

// AffiliateIDNotIn applies the NotIn predicate on the "affiliate_id" field.
func AffiliateIDNotIn(vs ...int) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldNotIn(FieldAffiliateID, vs...))
}

// AffiliateIDGT applies the GT predicate on the "affiliate_id" field.
func AffiliateIDGT(v int) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldGT(FieldAffiliateID, v))
}

// AffiliateIDGTE applies the GTE predicate on the "affiliate_id" field.
func AffiliateIDGTE(v int) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldGTE(FieldAffiliateID, v))
}

// AffiliateIDLT applies the LT predicate on the "affiliate_id" field.
func AffiliateIDLT(v int) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldLT(FieldAffiliateID, v))
}

// AffiliateIDLTE applies the LTE predicate on the "affiliate_id" field.
func AffiliateIDLTE(v int) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldLTE(FieldAffiliateID, v))
}

// CurrentBalanceEQ applies the EQ predicate on the "current_balance" field.
func CurrentBalanceEQ(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldEQ(FieldCurrentBalance, v))
}

// CurrentBalanceNEQ applies the NEQ predicate on the "current_balance" field.
func CurrentBalanceNEQ(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldNEQ(FieldCurrentBalance, v))
}

// CurrentBalanceIn applies the In predicate on the "current_balance" field.
func CurrentBalanceIn(vs ...float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldIn(FieldCurrentBalance, vs...))
}

// CurrentBalanceNotIn applies the NotIn predicate on the "current_balance" field.
func CurrentBalanceNotIn(vs ...float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldNotIn(FieldCurrentBalance, vs...))
}

// CurrentBalanceGT applies the GT predicate on the "current_balance" field.
func CurrentBalanceGT(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldGT(FieldCurrentBalance, v))
}

// CurrentBalanceGTE applies the GTE predicate on the "current_balance" field.
func CurrentBalanceGTE(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldGTE(FieldCurrentBalance, v))
}

// CurrentBalanceLT applies the LT predicate on the "current_balance" field.
func CurrentBalanceLT(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldLT(FieldCurrentBalance, v))
}

// CurrentBalanceLTE applies the LTE predicate on the "current_balance" field.
func CurrentBalanceLTE(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldLTE(FieldCurrentBalance, v))
}

// TotalEarnedEQ applies the EQ predicate on the "total_earned" field.
func TotalEarnedEQ(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldEQ(FieldTotalEarned, v))
}

// TotalEarnedNEQ applies the NEQ predicate on the "total_earned" field.
func TotalEarnedNEQ(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldNEQ(FieldTotalEarned, v))
}

// TotalEarnedIn applies the In predicate on the "total_earned" field.
func TotalEarnedIn(vs ...float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldIn(FieldTotalEarned, vs...))
}

// TotalEarnedNotIn applies the NotIn predicate on the "total_earned" field.
func TotalEarnedNotIn(vs ...float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldNotIn(FieldTotalEarned, vs...))
}

// TotalEarnedGT applies the GT predicate on the "total_earned" field.
func TotalEarnedGT(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldGT(FieldTotalEarned, v))
}

// TotalEarnedGTE applies the GTE predicate on the "total_earned" field.
func TotalEarnedGTE(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldGTE(FieldTotalEarned, v))
}

// TotalEarnedLT applies the LT predicate on the "total_earned" field.
func TotalEarnedLT(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldLT(FieldTotalEarned, v))
}

// TotalEarnedLTE applies the LTE predicate on the "total_earned" field.
func TotalEarnedLTE(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldLTE(FieldTotalEarned, v))
}

// TotalWithdrawnEQ applies the EQ predicate on the "total_withdrawn" field.
func TotalWithdrawnEQ(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldEQ(FieldTotalWithdrawn, v))
}

// TotalWithdrawnNEQ applies the NEQ predicate on the "total_withdrawn" field.
func TotalWithdrawnNEQ(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldNEQ(FieldTotalWithdrawn, v))
}

// TotalWithdrawnIn applies the In predicate on the "total_withdrawn" field.
func TotalWithdrawnIn(vs ...float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldIn(FieldTotalWithdrawn, vs...))
}

// TotalWithdrawnNotIn applies the NotIn predicate on the "total_withdrawn" field.
func TotalWithdrawnNotIn(vs ...float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldNotIn(FieldTotalWithdrawn, vs...))
}

// TotalWithdrawnGT applies the GT predicate on the "total_withdrawn" field.
func TotalWithdrawnGT(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldGT(FieldTotalWithdrawn, v))
}

// TotalWithdrawnGTE applies the GTE predicate on the "total_withdrawn" field.
func TotalWithdrawnGTE(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldGTE(FieldTotalWithdrawn, v))
}

// TotalWithdrawnLT applies the LT predicate on the "total_withdrawn" field.
func TotalWithdrawnLT(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldLT(FieldTotalWithdrawn, v))
}

// TotalWithdrawnLTE applies the LTE predicate on the "total_withdrawn" field.
func TotalWithdrawnLTE(v float64) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldLTE(FieldTotalWithdrawn, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AffiliateBalance) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AffiliateBalance) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AffiliateBalance) predicate.AffiliateBalance {
	return predicate.AffiliateBalance(sql.NotPredicates(p))
}
