// Code generated by ent, DO NOT EDIT.

package productcommission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/affiliatedb/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldLTE(FieldID, id))
}

// AffiliateID applies equality check predicate on the "affiliate_id" field. It's identical to AffiliateIDEQ.
func AffiliateID(v int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldEQ(FieldAffiliateID, v))
}

// ProductID applies equality check predicate on the "product_id" field. It's identical to ProductIDEQ.
func ProductID(v int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldEQ(FieldProductID, v))
}

// CommissionValue applies equality check predicate on the "commission_value" field. It's identical to CommissionValueEQ.
func CommissionValue(v float64) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldEQ(FieldCommissionValue, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldEQ(FieldUpdatedAt, v))
}

// AffiliateIDEQ applies the EQ predicate on the "affiliate_id" field.
func AffiliateIDEQ(v int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldEQ(FieldAffiliateID, v))
}

// AffiliateIDNEQ applies the NEQ predicate on the "affiliate_id" field.
func AffiliateIDNEQ(v int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldNEQ(FieldAffiliateID, v))
}

// AffiliateIDIn applies the In predicate on the "affiliate_id" field.
func AffiliateIDIn(vs ...int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldIn(FieldAffiliateID, vs...))
}

// AffiliateIDNotIn applies the NotIn predicate on the "affiliate_id" field.
func AffiliateIDNotIn(vs ...int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldNotIn(FieldAffiliateID, vs...))
}

// AffiliateIDGT applies the GT predicate on the "affiliate_id" field.
func AffiliateIDGT(v int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldGT(FieldAffiliateID, v))
}

// AffiliateIDGTE applies the GTE predicate on the "affiliate_id" field.
func AffiliateIDGTE(v int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldGTE(FieldAffiliateID, v))
}

// AffiliateIDLT applies the LT predicate on the "affiliate_id" field.
func AffiliateIDLT(v int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldLT(FieldAffiliateID, v))
}

// AffiliateIDLTE applies the LTE predicate on the "affiliate_id" field.
func AffiliateIDLTE(v int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldLTE(FieldAffiliateID, v))
}

// ProductIDEQ applies the EQ predicate on the "product_id" field.
func ProductIDEQ(v int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldEQ(FieldProductID, v))
}

// ProductIDNEQ applies the NEQ predicate on the "product_id" field.
func ProductIDNEQ(v int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldNEQ(FieldProductID, v))
}

// ProductIDIn applies the In predicate on the "product_id" field.
func ProductIDIn(vs ...int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldIn(FieldProductID, vs...))
}

// ProductIDNotIn applies the NotIn predicate on the "product_id" field.
func ProductIDNotIn(vs ...int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldNotIn(FieldProductID, vs...))
}

// ProductIDGT applies the GT predicate on the "product_id" field.
func ProductIDGT(v int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldGT(FieldProductID, v))
}

// ProductIDGTE applies the GTE predicate on the "product_id" field.
func ProductIDGTE(v int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldGTE(FieldProductID, v))
}

// ProductIDLT applies the LT predicate on the "product_id" field.
func ProductIDLT(v int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldLT(FieldProductID, v))
}

// ProductIDLTE applies the LTE predicate on the "product_id" field.
func ProductIDLTE(v int) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldLTE(FieldProductID, v))
}

// CommissionTypeEQ applies the EQ predicate on the "commission_type" field.
func CommissionTypeEQ(v CommissionType) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldEQ(FieldCommissionType, v))
}

// CommissionTypeNEQ applies the NEQ predicate on the "commission_type" field.
func CommissionTypeNEQ(v CommissionType) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldNEQ(FieldCommissionType, v))
}

// CommissionTypeIn applies the In predicate on the "commission_type" field.
func CommissionTypeIn(vs ...CommissionType) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldIn(FieldCommissionType, vs...))
}

// CommissionTypeNotIn applies the NotIn predicate on the "commission_type" field.
func CommissionTypeNotIn(vs ...CommissionType) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldNotIn(FieldCommissionType, vs...))
}

// CommissionValueEQ applies the EQ predicate on the "commission_value" field.
func CommissionValueEQ(v float64) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldEQ(FieldCommissionValue, v))
}

// CommissionValueNEQ applies the NEQ predicate on the "commission_value" field.
func CommissionValueNEQ(v float64) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldNEQ(FieldCommissionValue, v))
}

// CommissionValueIn applies the In predicate on the "commission_value" field.
func CommissionValueIn(vs ...float64) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldIn(FieldCommissionValue, vs...))
}

// CommissionValueNotIn applies the NotIn predicate on the "commission_value" field.
func CommissionValueNotIn(vs ...float64) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldNotIn(FieldCommissionValue, vs...))
}

// CommissionValueGT applies the GT predicate on the "commission_value" field.
func CommissionValueGT(v float64) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldGT(FieldCommissionValue, v))
}

// CommissionValueGTE applies the GTE predicate on the "commission_value" field.
func CommissionValueGTE(v float64) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldGTE(FieldCommissionValue, v))
}

// CommissionValueLT applies the LT predicate on the "commission_value" field.
func CommissionValueLT(v float64) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldLT(FieldCommissionValue, v))
}

// CommissionValueLTE applies the LTE predicate on the "commission_value" field.
func CommissionValueLTE(v float64) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldLTE(FieldCommissionValue, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProductCommission {
	return predicate.ProductCommission(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProductCommission) predicate.ProductCommission {
	return predicate.ProductCommission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProductCommission) predicate.ProductCommission {
	return predicate.ProductCommission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProductCommission) predicate.ProductCommission {
	return predicate.ProductCommission(sql.NotPredicates(p))
}
