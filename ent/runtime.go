// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jordanlanch/affiliatedb/ent/affiliate"
	"github.com/jordanlanch/affiliatedb/ent/affiliatebalance"
	"github.com/jordanlanch/affiliatedb/ent/affiliatetransaction"
	"github.com/jordanlanch/affiliatedb/ent/auditlog"
	"github.com/jordanlanch/affiliatedb/ent/order"
	"github.com/jordanlanch/affiliatedb/ent/orderitem"
	"github.com/jordanlanch/affiliatedb/ent/product"
	"github.com/jordanlanch/affiliatedb/ent/productcommission"
	"github.com/jordanlanch/affiliatedb/ent/sale"
	"github.com/jordanlanch/affiliatedb/ent/schema"
	"github.com/jordanlanch/affiliatedb/ent/user"
	"github.com/jordanlanch/affiliatedb/ent/withdrawalrequest"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	affiliateFields := schema.Affiliate{}.Fields()
	_ = affiliateFields
	// affiliateDescReferralCode is the schema descriptor for referral_code field.
	affiliateDescReferralCode := affiliateFields[1].Descriptor()
	// affiliate.ReferralCodeValidator is a validator for the "referral_code" field. It is called by the builders before save.
	affiliate.ReferralCodeValidator = func() func(string) error {
		validators := affiliateDescReferralCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(referral_code string) error {
			for _, fn := range fns {
				if err := fn(referral_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// affiliateDescCommissionRate is the schema descriptor for commission_rate field.
	affiliateDescCommissionRate := affiliateFields[2].Descriptor()
	// affiliate.DefaultCommissionRate holds the default value on creation for the commission_rate field.
	affiliate.DefaultCommissionRate = affiliateDescCommissionRate.Default.(float64)
	// affiliateDescIsGlobal is the schema descriptor for is_global field.
	affiliateDescIsGlobal := affiliateFields[3].Descriptor()
	// affiliate.DefaultIsGlobal holds the default value on creation for the is_global field.
	affiliate.DefaultIsGlobal = affiliateDescIsGlobal.Default.(bool)
	// affiliateDescCreatedAt is the schema descriptor for created_at field.
	affiliateDescCreatedAt := affiliateFields[6].Descriptor()
	// affiliate.DefaultCreatedAt holds the default value on creation for the created_at field.
	affiliate.DefaultCreatedAt = affiliateDescCreatedAt.Default.(func() time.Time)
	// affiliateDescUpdatedAt is the schema descriptor for updated_at field.
	affiliateDescUpdatedAt := affiliateFields[7].Descriptor()
	// affiliate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	affiliate.DefaultUpdatedAt = affiliateDescUpdatedAt.Default.(func() time.Time)
	// affiliate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	affiliate.UpdateDefaultUpdatedAt = affiliateDescUpdatedAt.UpdateDefault.(func() time.Time)
	affiliatebalanceFields := schema.AffiliateBalance{}.Fields()
	_ = affiliatebalanceFields
	// affiliatebalanceDescCurrentBalance is the schema descriptor for current_balance field.
	affiliatebalanceDescCurrentBalance := affiliatebalanceFields[1].Descriptor()
	// affiliatebalance.DefaultCurrentBalance holds the default value on creation for the current_balance field.
	affiliatebalance.DefaultCurrentBalance = affiliatebalanceDescCurrentBalance.Default.(float64)
	// affiliatebalanceDescTotalEarned is the schema descriptor for total_earned field.
	affiliatebalanceDescTotalEarned := affiliatebalanceFields[2].Descriptor()
	// affiliatebalance.DefaultTotalEarned holds the default value on creation for the total_earned field.
	affiliatebalance.DefaultTotalEarned = affiliatebalanceDescTotalEarned.Default.(float64)
	// affiliatebalanceDescTotalWithdrawn is the schema descriptor for total_withdrawn field.
	affiliatebalanceDescTotalWithdrawn := affiliatebalanceFields[3].Descriptor()
	// affiliatebalance.DefaultTotalWithdrawn holds the default value on creation for the total_withdrawn field.
	affiliatebalance.DefaultTotalWithdrawn = affiliatebalanceDescTotalWithdrawn.Default.(float64)
	// affiliatebalanceDescLastUpdated is the schema descriptor for last_updated field.
	affiliatebalanceDescLastUpdated := affiliatebalanceFields[4].Descriptor()
	// affiliatebalance.DefaultLastUpdated holds the default value on creation for the last_updated field.
	affiliatebalance.DefaultLastUpdated = affiliatebalanceDescLastUpdated.Default.(func() time.Time)
	// affiliatebalance.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	affiliatebalance.UpdateDefaultLastUpdated = affiliatebalanceDescLastUpdated.UpdateDefault.(func() time.Time)
	affiliatetransactionFields := schema.AffiliateTransaction{}.Fields()
	_ = affiliatetransactionFields
	// affiliatetransactionDescDescription is the schema descriptor for description field.
	affiliatetransactionDescDescription := affiliatetransactionFields[3].Descriptor()
	// affiliatetransaction.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	affiliatetransaction.DescriptionValidator = affiliatetransactionDescDescription.Validators[0].(func(string) error)
	// affiliatetransactionDescTransactionDate is the schema descriptor for transaction_date field.
	affiliatetransactionDescTransactionDate := affiliatetransactionFields[5].Descriptor()
	// affiliatetransaction.DefaultTransactionDate holds the default value on creation for the transaction_date field.
	affiliatetransaction.DefaultTransactionDate = affiliatetransactionDescTransactionDate.Default.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[7].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	orderFields := schema.Order{}.Fields()
	_ = orderFields
	// orderDescCreatedAt is the schema descriptor for created_at field.
	orderDescCreatedAt := orderFields[3].Descriptor()
	// order.DefaultCreatedAt holds the default value on creation for the created_at field.
	order.DefaultCreatedAt = orderDescCreatedAt.Default.(func() time.Time)
	// orderDescUpdatedAt is the schema descriptor for updated_at field.
	orderDescUpdatedAt := orderFields[4].Descriptor()
	// order.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	order.DefaultUpdatedAt = orderDescUpdatedAt.Default.(func() time.Time)
	// order.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	order.UpdateDefaultUpdatedAt = orderDescUpdatedAt.UpdateDefault.(func() time.Time)
	orderitemFields := schema.OrderItem{}.Fields()
	_ = orderitemFields
	// orderitemDescQuantity is the schema descriptor for quantity field.
	orderitemDescQuantity := orderitemFields[2].Descriptor()
	// orderitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	orderitem.QuantityValidator = orderitemDescQuantity.Validators[0].(func(int) error)
	productFields := schema.Product{}.Fields()
	_ = productFields
	// productDescName is the schema descriptor for name field.
	productDescName := productFields[0].Descriptor()
	// product.NameValidator is a validator for the "name" field. It is called by the builders before save.
	product.NameValidator = func() func(string) error {
		validators := productDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// productDescStock is the schema descriptor for stock field.
	productDescStock := productFields[3].Descriptor()
	// product.DefaultStock holds the default value on creation for the stock field.
	product.DefaultStock = productDescStock.Default.(int)
	// productDescCreatedAt is the schema descriptor for created_at field.
	productDescCreatedAt := productFields[4].Descriptor()
	// product.DefaultCreatedAt holds the default value on creation for the created_at field.
	product.DefaultCreatedAt = productDescCreatedAt.Default.(func() time.Time)
	// productDescUpdatedAt is the schema descriptor for updated_at field.
	productDescUpdatedAt := productFields[5].Descriptor()
	// product.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	product.DefaultUpdatedAt = productDescUpdatedAt.Default.(func() time.Time)
	// product.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	product.UpdateDefaultUpdatedAt = productDescUpdatedAt.UpdateDefault.(func() time.Time)
	productcommissionFields := schema.ProductCommission{}.Fields()
	_ = productcommissionFields
	// productcommissionDescCommissionValue is the schema descriptor for commission_value field.
	productcommissionDescCommissionValue := productcommissionFields[3].Descriptor()
	// productcommission.CommissionValueValidator is a validator for the "commission_value" field. It is called by the builders before save.
	productcommission.CommissionValueValidator = productcommissionDescCommissionValue.Validators[0].(func(float64) error)
	// productcommissionDescCreatedAt is the schema descriptor for created_at field.
	productcommissionDescCreatedAt := productcommissionFields[5].Descriptor()
	// productcommission.DefaultCreatedAt holds the default value on creation for the created_at field.
	productcommission.DefaultCreatedAt = productcommissionDescCreatedAt.Default.(func() time.Time)
	// productcommissionDescUpdatedAt is the schema descriptor for updated_at field.
	productcommissionDescUpdatedAt := productcommissionFields[6].Descriptor()
	// productcommission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	productcommission.DefaultUpdatedAt = productcommissionDescUpdatedAt.Default.(func() time.Time)
	// productcommission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	productcommission.UpdateDefaultUpdatedAt = productcommissionDescUpdatedAt.UpdateDefault.(func() time.Time)
	saleFields := schema.Sale{}.Fields()
	_ = saleFields
	// saleDescCommission is the schema descriptor for commission field.
	saleDescCommission := saleFields[2].Descriptor()
	// sale.CommissionValidator is a validator for the "commission" field. It is called by the builders before save.
	sale.CommissionValidator = saleDescCommission.Validators[0].(func(float64) error)
	// saleDescCreatedAt is the schema descriptor for created_at field.
	saleDescCreatedAt := saleFields[3].Descriptor()
	// sale.DefaultCreatedAt holds the default value on creation for the created_at field.
	sale.DefaultCreatedAt = saleDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = func() func(string) error {
		validators := userDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[5].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	withdrawalrequestFields := schema.WithdrawalRequest{}.Fields()
	_ = withdrawalrequestFields
	// withdrawalrequestDescPaymentMethod is the schema descriptor for payment_method field.
	withdrawalrequestDescPaymentMethod := withdrawalrequestFields[3].Descriptor()
	// withdrawalrequest.PaymentMethodValidator is a validator for the "payment_method" field. It is called by the builders before save.
	withdrawalrequest.PaymentMethodValidator = func() func(string) error {
		validators := withdrawalrequestDescPaymentMethod.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(payment_method string) error {
			for _, fn := range fns {
				if err := fn(payment_method); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// withdrawalrequestDescRequestedAt is the schema descriptor for requested_at field.
	withdrawalrequestDescRequestedAt := withdrawalrequestFields[7].Descriptor()
	// withdrawalrequest.DefaultRequestedAt holds the default value on creation for the requested_at field.
	withdrawalrequest.DefaultRequestedAt = withdrawalrequestDescRequestedAt.Default.(func() time.Time)
}
