// Code generated by ent, DO NOT EDIT.

package affiliate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/affiliatedb/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldUserID, v))
}

// ReferralCode applies equality check predicate on the "referral_code" field. It's identical to ReferralCodeEQ.
func ReferralCode(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldReferralCode, v))
}

// CommissionRate applies equality check predicate on the "commission_rate" field. It's identical to CommissionRateEQ.
func CommissionRate(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldCommissionRate, v))
}

// IsGlobal applies equality check predicate on the "is_global" field. It's identical to IsGlobalEQ.
func IsGlobal(v bool) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldIsGlobal, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLTE(FieldUserID, v))
}

// ReferralCodeEQ applies the EQ predicate on the "referral_code" field.
func ReferralCodeEQ(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldReferralCode, v))
}

// ReferralCodeNEQ applies the NEQ predicate on the "referral_code" field.
func ReferralCodeNEQ(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldReferralCode, v))
}

// ReferralCodeIn applies the In predicate on the "referral_code" field.
func ReferralCodeIn(vs ...string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldReferralCode, vs...))
}

// ReferralCodeNotIn applies the NotIn predicate on the "referral_code" field.
func ReferralCodeNotIn(vs ...string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldReferralCode, vs...))
}

// ReferralCodeGT applies the GT predicate on the "referral_code" field.
func ReferralCodeGT(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGT(FieldReferralCode, v))
}

// ReferralCodeGTE applies the GTE predicate on the "referral_code" field.
func ReferralCodeGTE(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGTE(FieldReferralCode, v))
}

// ReferralCodeLT applies the LT predicate on the "referral_code" field.
func ReferralCodeLT(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLT(FieldReferralCode, v))
}

// ReferralCodeLTE applies the LTE predicate on the "referral_code" field.
func ReferralCodeLTE(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLTE(FieldReferralCode, v))
}

// ReferralCodeContains applies the Contains predicate on the "referral_code" field.
func ReferralCodeContains(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldContains(FieldReferralCode, v))
}

// ReferralCodeHasPrefix applies the HasPrefix predicate on the "referral_code" field.
func ReferralCodeHasPrefix(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldHasPrefix(FieldReferralCode, v))
}

// ReferralCodeHasSuffix applies the HasSuffix predicate on the "referral_code" field.
func ReferralCodeHasSuffix(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldHasSuffix(FieldReferralCode, v))
}

// ReferralCodeEqualFold applies the EqualFold predicate on the "referral_code" field.
func ReferralCodeEqualFold(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEqualFold(FieldReferralCode, v))
}

// ReferralCodeContainsFold applies the ContainsFold predicate on the "referral_code" field.
func ReferralCodeContainsFold(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldContainsFold(FieldReferralCode, v))
}

// CommissionRateEQ applies the EQ predicate on the "commission_rate" field.
func CommissionRateEQ(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldCommissionRate, v))
}

// CommissionRateNEQ applies the NEQ predicate on the "commission_rate" field.
func CommissionRateNEQ(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldCommissionRate, v))
}

// CommissionRateIn applies the In predicate on the "commission_rate" field.
func CommissionRateIn(vs ...float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldCommissionRate, vs...))
}

// CommissionRateNotIn applies the NotIn predicate on the "commission_rate" field.
func CommissionRateNotIn(vs ...float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldCommissionRate, vs...))
}

// CommissionRateGT applies the GT predicate on the "commission_rate" field.
func CommissionRateGT(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGT(FieldCommissionRate, v))
}

// CommissionRateGTE applies the GTE predicate on the "commission_rate" field.
func CommissionRateGTE(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGTE(FieldCommissionRate, v))
}

// CommissionRateLT applies the LT predicate on the "commission_rate" field.
func CommissionRateLT(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLT(FieldCommissionRate, v))
}

// CommissionRateLTE applies the LTE predicate on the "commission_rate" field.
func CommissionRateLTE(v float64) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLTE(FieldCommissionRate, v))
}

// IsGlobalEQ applies the EQ predicate on the "is_global" field.
func IsGlobalEQ(v bool) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldIsGlobal, v))
}

// IsGlobalNEQ applies the NEQ predicate on the "is_global" field.
func IsGlobalNEQ(v bool) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldIsGlobal, v))
}

// RequestStatusEQ applies the EQ predicate on the "request_status" field.
func RequestStatusEQ(v RequestStatus) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldRequestStatus, v))
}

// RequestStatusNEQ applies the NEQ predicate on the "request_status" field.
func RequestStatusNEQ(v RequestStatus) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldRequestStatus, v))
}

// RequestStatusIn applies the In predicate on the "request_status" field.
func RequestStatusIn(vs ...RequestStatus) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldRequestStatus, vs...))
}

// RequestStatusNotIn applies the NotIn predicate on the "request_status" field.
func RequestStatusNotIn(vs ...RequestStatus) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldRequestStatus, vs...))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldContainsFold(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Affiliate {
	return predicate.Affiliate(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Affiliate) predicate.Affiliate {
	return predicate.Affiliate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Affiliate) predicate.Affiliate {
	return predicate.Affiliate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Affiliate) predicate.Affiliate {
	return predicate.Affiliate(sql.NotPredicates(p))
}
