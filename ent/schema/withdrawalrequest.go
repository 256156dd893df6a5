package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WithdrawalRequest holds the schema definition for the WithdrawalRequest
// entity: one instance of the payout state machine.
type WithdrawalRequest struct {
	ent.Schema
}

// Fields of the WithdrawalRequest.
func (WithdrawalRequest) Fields() []ent.Field {
	return []ent.Field{
		field.Int("affiliate_id").
			Immutable(),
		field.Float("amount").
			Immutable().
			Comment("Requested amount, must be positive"),
		field.Enum("status").
			Values("pending", "approved", "rejected", "paid").
			Default("pending").
			Comment("rejected and paid are terminal"),
		field.String("payment_method").
			NotEmpty().
			MaxLen(50),
		field.Text("payment_details").
			Sensitive(),
		field.Text("admin_notes").
			Optional(),
		field.Int("transaction_id").
			Optional().
			Nillable().
			Comment("Ledger transaction created on settlement"),
		field.Time("requested_at").
			Default(time.Now).
			Immutable(),
		field.Time("processed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the WithdrawalRequest.
func (WithdrawalRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("affiliate_id"),
		index.Fields("status"),
		index.Fields("requested_at"),
	}
}
