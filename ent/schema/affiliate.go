package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Affiliate holds the schema definition for the Affiliate entity.
type Affiliate struct {
	ent.Schema
}

// Fields of the Affiliate.
func (Affiliate) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Unique().
			Comment("User associated with this affiliate account"),
		field.String("referral_code").
			Unique().
			NotEmpty().
			MaxLen(32).
			Immutable().
			Comment("Unique referral tracking code, issued once"),
		field.Float("commission_rate").
			Default(0.05).
			Comment("Global commission rate as a fraction (0.05 = 5%)"),
		field.Bool("is_global").
			Default(false).
			Comment("Whether the affiliate may earn on any product"),
		field.Enum("request_status").
			Values("pending", "approved", "blocked").
			Default("pending").
			Comment("Affiliation request status"),
		field.Text("reason").
			Optional().
			Comment("Admin reason, set when the request is blocked"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Affiliate.
func (Affiliate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("referral_code").Unique(),
		index.Fields("user_id").Unique(),
		index.Fields("request_status"),
	}
}
