package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Sale holds the schema definition for the Sale entity: the immutable record
// that attributes one completed order to one affiliate.
type Sale struct {
	ent.Schema
}

// Fields of the Sale.
func (Sale) Fields() []ent.Field {
	return []ent.Field{
		field.Int("affiliate_id").
			Immutable(),
		field.Int("order_id").
			Unique().
			Immutable().
			Comment("At most one sale per order: the exactly-once guarantee"),
		field.Float("commission").
			Min(0).
			Immutable().
			Comment("Total commission, rounded to 2 decimal places"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Sale.
func (Sale) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_id").Unique(),
		index.Fields("affiliate_id"),
	}
}
