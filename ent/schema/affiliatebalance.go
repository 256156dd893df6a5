package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AffiliateBalance holds the schema definition for the AffiliateBalance
// entity. current_balance is a materialized view over the transaction log,
// never a second source of truth; the ledger reconciliation verifies it.
type AffiliateBalance struct {
	ent.Schema
}

// Fields of the AffiliateBalance.
func (AffiliateBalance) Fields() []ent.Field {
	return []ent.Field{
		field.Int("affiliate_id").
			Unique(),
		field.Float("current_balance").
			Default(0.0).
			Comment("Equals total_earned - total_withdrawn, never negative"),
		field.Float("total_earned").
			Default(0.0).
			Comment("Monotonically non-decreasing"),
		field.Float("total_withdrawn").
			Default(0.0).
			Comment("Monotonically non-decreasing"),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AffiliateBalance.
func (AffiliateBalance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("affiliate_id").Unique(),
	}
}
