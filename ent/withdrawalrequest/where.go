// Code generated by ent, DO NOT EDIT.

package withdrawalrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/affiliatedb/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldLTE(FieldID, id))
}

// AffiliateID applies equality check predicate on the "affiliate_id" field. It's identical to AffiliateIDEQ.
func AffiliateID(v int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldAffiliateID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldAmount, v))
}

// PaymentMethod applies equality check predicate on the "payment_method" field. It's identical to PaymentMethodEQ.
func PaymentMethod(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentDetails applies equality check predicate on the "payment_details" field. It's identical to PaymentDetailsEQ.
func PaymentDetails(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldPaymentDetails, v))
}

// AdminNotes applies equality check predicate on the "admin_notes" field. It's identical to AdminNotesEQ.
func AdminNotes(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldAdminNotes, v))
}

// TransactionID applies equality check predicate on the "transaction_id" field. It's identical to TransactionIDEQ.
func TransactionID(v int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldTransactionID, v))
}

// RequestedAt applies equality check predicate on the "requested_at" field. It's identical to RequestedAtEQ.
func RequestedAt(v time.Time) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldRequestedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldProcessedAt, v))
}

// AffiliateIDEQ applies the EQ predicate on the "affiliate_id" field.
func AffiliateIDEQ(v int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldAffiliateID, v))
}

// AffiliateIDNEQ applies the NEQ predicate on the "affiliate_id" field.
func AffiliateIDNEQ(v int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNEQ(FieldAffiliateID, v))
}

// AffiliateIDIn applies the In predicate on the "affiliate_id" field.
func AffiliateIDIn(vs ...int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldIn(FieldAffiliateID, vs...))
}

// AffiliateIDNotIn applies the NotIn predicate on the "affiliate_id" field.
func AffiliateIDNotIn(vs ...int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNotIn(FieldAffiliateID, vs...))
}

// AffiliateIDGT applies the GT predicate on the "affiliate_id" field.
func AffiliateIDGT(v int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldGT(FieldAffiliateID, v))
}

// AffiliateIDGTE applies the GTE predicate on the "affiliate_id" field.
func AffiliateIDGTE(v int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldGTE(FieldAffiliateID, v))
}

// AffiliateIDLT applies the LT predicate on the "affiliate_id" field.
func AffiliateIDLT(v int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldLT(FieldAffiliateID, v))
}

// AffiliateIDLTE applies the LTE predicate on the "affiliate_id" field.
func AffiliateIDLTE(v int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldLTE(FieldAffiliateID, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldLTE(FieldAmount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// PaymentMethodEQ applies the EQ predicate on the "payment_method" field.
func PaymentMethodEQ(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentMethodNEQ applies the NEQ predicate on the "payment_method" field.
func PaymentMethodNEQ(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNEQ(FieldPaymentMethod, v))
}

// PaymentMethodIn applies the In predicate on the "payment_method" field.
func PaymentMethodIn(vs ...string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldIn(FieldPaymentMethod, vs...))
}

// PaymentMethodNotIn applies the NotIn predicate on the "payment_method" field.
func PaymentMethodNotIn(vs ...string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNotIn(FieldPaymentMethod, vs...))
}

// PaymentMethodGT applies the GT predicate on the "payment_method" field.
func PaymentMethodGT(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldGT(FieldPaymentMethod, v))
}

// PaymentMethodGTE applies the GTE predicate on the "payment_method" field.
func PaymentMethodGTE(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldGTE(FieldPaymentMethod, v))
}

// PaymentMethodLT applies the LT predicate on the "payment_method" field.
func PaymentMethodLT(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldLT(FieldPaymentMethod, v))
}

// PaymentMethodLTE applies the LTE predicate on the "payment_method" field.
func PaymentMethodLTE(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldLTE(FieldPaymentMethod, v))
}

// PaymentMethodContains applies the Contains predicate on the "payment_method" field.
func PaymentMethodContains(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldContains(FieldPaymentMethod, v))
}

// PaymentMethodHasPrefix applies the HasPrefix predicate on the "payment_method" field.
func PaymentMethodHasPrefix(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldHasPrefix(FieldPaymentMethod, v))
}

// PaymentMethodHasSuffix applies the HasSuffix predicate on the "payment_method" field.
func PaymentMethodHasSuffix(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldHasSuffix(FieldPaymentMethod, v))
}

// PaymentMethodEqualFold applies the EqualFold predicate on the "payment_method" field.
func PaymentMethodEqualFold(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEqualFold(FieldPaymentMethod, v))
}

// PaymentMethodContainsFold applies the ContainsFold predicate on the "payment_method" field.
func PaymentMethodContainsFold(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldContainsFold(FieldPaymentMethod, v))
}

// PaymentDetailsEQ applies the EQ predicate on the "payment_details" field.
func PaymentDetailsEQ(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldPaymentDetails, v))
}

// PaymentDetailsNEQ applies the NEQ predicate on the "payment_details" field.
func PaymentDetailsNEQ(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNEQ(FieldPaymentDetails, v))
}

// PaymentDetailsIn applies the In predicate on the "payment_details" field.
func PaymentDetailsIn(vs ...string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldIn(FieldPaymentDetails, vs...))
}

// PaymentDetailsNotIn applies the NotIn predicate on the "payment_details" field.
func PaymentDetailsNotIn(vs ...string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNotIn(FieldPaymentDetails, vs...))
}

// PaymentDetailsGT applies the GT predicate on the "payment_details" field.
func PaymentDetailsGT(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldGT(FieldPaymentDetails, v))
}

// PaymentDetailsGTE applies the GTE predicate on the "payment_details" field.
func PaymentDetailsGTE(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldGTE(FieldPaymentDetails, v))
}

// PaymentDetailsLT applies the LT predicate on the "payment_details" field.
func PaymentDetailsLT(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldLT(FieldPaymentDetails, v))
}

// PaymentDetailsLTE applies the LTE predicate on the "payment_details" field.
func PaymentDetailsLTE(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldLTE(FieldPaymentDetails, v))
}

// PaymentDetailsContains applies the Contains predicate on the "payment_details" field.
func PaymentDetailsContains(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldContains(FieldPaymentDetails, v))
}

// PaymentDetailsHasPrefix applies the HasPrefix predicate on the "payment_details" field.
func PaymentDetailsHasPrefix(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldHasPrefix(FieldPaymentDetails, v))
}

// PaymentDetailsHasSuffix applies the HasSuffix predicate on the "payment_details" field.
func PaymentDetailsHasSuffix(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldHasSuffix(FieldPaymentDetails, v))
}

// PaymentDetailsEqualFold applies the EqualFold predicate on the "payment_details" field.
func PaymentDetailsEqualFold(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEqualFold(FieldPaymentDetails, v))
}

// PaymentDetailsContainsFold applies the ContainsFold predicate on the "payment_details" field.
func PaymentDetailsContainsFold(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldContainsFold(FieldPaymentDetails, v))
}

// AdminNotesEQ applies the EQ predicate on the "admin_notes" field.
func AdminNotesEQ(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldAdminNotes, v))
}

// AdminNotesNEQ applies the NEQ predicate on the "admin_notes" field.
func AdminNotesNEQ(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNEQ(FieldAdminNotes, v))
}

// AdminNotesIn applies the In predicate on the "admin_notes" field.
func AdminNotesIn(vs ...string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldIn(FieldAdminNotes, vs...))
}

// AdminNotesNotIn applies the NotIn predicate on the "admin_notes" field.
func AdminNotesNotIn(vs ...string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNotIn(FieldAdminNotes, vs...))
}

// AdminNotesGT applies the GT predicate on the "admin_notes" field.
func AdminNotesGT(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldGT(FieldAdminNotes, v))
}

// AdminNotesGTE applies the GTE predicate on the "admin_notes" field.
func AdminNotesGTE(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldGTE(FieldAdminNotes, v))
}

// AdminNotesLT applies the LT predicate on the "admin_notes" field.
func AdminNotesLT(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldLT(FieldAdminNotes, v))
}

// AdminNotesLTE applies the LTE predicate on the "admin_notes" field.
func AdminNotesLTE(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldLTE(FieldAdminNotes, v))
}

// AdminNotesContains applies the Contains predicate on the "admin_notes" field.
func AdminNotesContains(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldContains(FieldAdminNotes, v))
}

// AdminNotesHasPrefix applies the HasPrefix predicate on the "admin_notes" field.
func AdminNotesHasPrefix(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldHasPrefix(FieldAdminNotes, v))
}

// AdminNotesHasSuffix applies the HasSuffix predicate on the "admin_notes" field.
func AdminNotesHasSuffix(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldHasSuffix(FieldAdminNotes, v))
}

// AdminNotesIsNil applies the IsNil predicate on the "admin_notes" field.
func AdminNotesIsNil() predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldIsNull(FieldAdminNotes))
}

// AdminNotesNotNil applies the NotNil predicate on the "admin_notes" field.
func AdminNotesNotNil() predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNotNull(FieldAdminNotes))
}

// AdminNotesEqualFold applies the EqualFold predicate on the "admin_notes" field.
func AdminNotesEqualFold(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEqualFold(FieldAdminNotes, v))
}

// AdminNotesContainsFold applies the ContainsFold predicate on the "admin_notes" field.
func AdminNotesContainsFold(v string) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldContainsFold(FieldAdminNotes, v))
}

// TransactionIDEQ applies the EQ predicate on the "transaction_id" field.
func TransactionIDEQ(v int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldTransactionID, v))
}

// TransactionIDNEQ applies the NEQ predicate on the "transaction_id" field.
func TransactionIDNEQ(v int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNEQ(FieldTransactionID, v))
}

// TransactionIDIn applies the In predicate on the "transaction_id" field.
func TransactionIDIn(vs ...int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldIn(FieldTransactionID, vs...))
}

// TransactionIDNotIn applies the NotIn predicate on the "transaction_id" field.
func TransactionIDNotIn(vs ...int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNotIn(FieldTransactionID, vs...))
}

// TransactionIDGT applies the GT predicate on the "transaction_id" field.
func TransactionIDGT(v int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldGT(FieldTransactionID, v))
}

// TransactionIDGTE applies the GTE predicate on the "transaction_id" field.
func TransactionIDGTE(v int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldGTE(FieldTransactionID, v))
}

// TransactionIDLT applies the LT predicate on the "transaction_id" field.
func TransactionIDLT(v int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldLT(FieldTransactionID, v))
}

// TransactionIDLTE applies the LTE predicate on the "transaction_id" field.
func TransactionIDLTE(v int) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldLTE(FieldTransactionID, v))
}

// TransactionIDIsNil applies the IsNil predicate on the "transaction_id" field.
func TransactionIDIsNil() predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldIsNull(FieldTransactionID))
}

// TransactionIDNotNil applies the NotNil predicate on the "transaction_id" field.
func TransactionIDNotNil() predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNotNull(FieldTransactionID))
}

// RequestedAtEQ applies the EQ predicate on the "requested_at" field.
func RequestedAtEQ(v time.Time) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldRequestedAt, v))
}

// RequestedAtNEQ applies the NEQ predicate on the "requested_at" field.
func RequestedAtNEQ(v time.Time) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNEQ(FieldRequestedAt, v))
}

// RequestedAtIn applies the In predicate on the "requested_at" field.
func RequestedAtIn(vs ...time.Time) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldIn(FieldRequestedAt, vs...))
}

// RequestedAtNotIn applies the NotIn predicate on the "requested_at" field.
func RequestedAtNotIn(vs ...time.Time) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNotIn(FieldRequestedAt, vs...))
}

// RequestedAtGT applies the GT predicate on the "requested_at" field.
func RequestedAtGT(v time.Time) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldGT(FieldRequestedAt, v))
}

// RequestedAtGTE applies the GTE predicate on the "requested_at" field.
func RequestedAtGTE(v time.Time) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldGTE(FieldRequestedAt, v))
}

// RequestedAtLT applies the LT predicate on the "requested_at" field.
func RequestedAtLT(v time.Time) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldLT(FieldRequestedAt, v))
}

// RequestedAtLTE applies the LTE predicate on the "requested_at" field.
func RequestedAtLTE(v time.Time) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldLTE(FieldRequestedAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.FieldNotNull(FieldProcessedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WithdrawalRequest) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WithdrawalRequest) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WithdrawalRequest) predicate.WithdrawalRequest {
	return predicate.WithdrawalRequest(sql.NotPredicates(p))
}
