package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProductCommission holds the schema definition for per-product commission
// terms between one affiliate and one product. An approved row overrides the
// affiliate's global rate for that product.
type ProductCommission struct {
	ent.Schema
}

// Fields of the ProductCommission.
func (ProductCommission) Fields() []ent.Field {
	return []ent.Field{
		field.Int("affiliate_id"),
		field.Int("product_id"),
		field.Enum("commission_type").
			Values("percentage", "fixed").
			Comment("percentage: 0-100 of line value; fixed: amount per unit"),
		field.Float("commission_value").
			Min(0).
			Comment("Percentage (0-100) or fixed amount per unit"),
		field.Enum("status").
			Values("pending", "approved", "blocked").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ProductCommission.
func (ProductCommission) Indexes() []ent.Index {
	return []ent.Index{
		// At most one terms row per affiliate/product pair.
		index.Fields("affiliate_id", "product_id").Unique(),
		index.Fields("product_id"),
	}
}
