package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AffiliateTransaction holds the schema definition for the append-only
// ledger entry. Amounts are signed: positive for commissions and adjustment
// credits, negative for withdrawals and adjustment debits.
type AffiliateTransaction struct {
	ent.Schema
}

// Fields of the AffiliateTransaction.
func (AffiliateTransaction) Fields() []ent.Field {
	return []ent.Field{
		field.Int("balance_id").
			Immutable(),
		field.Enum("type").
			Values("commission", "withdrawal", "adjustment").
			Immutable(),
		field.Float("amount").
			Immutable().
			Comment("Signed amount, rounded to 2 decimal places"),
		field.String("description").
			MaxLen(255).
			Immutable(),
		field.Int("reference_id").
			Optional().
			Immutable().
			Comment("Related sale, order or withdrawal ID"),
		field.Time("transaction_date").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AffiliateTransaction.
func (AffiliateTransaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("balance_id"),
		index.Fields("type"),
		index.Fields("transaction_date"),
	}
}
