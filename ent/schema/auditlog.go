package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Optional().
			Nillable().
			Comment("Acting user (null for system actions)"),
		field.Enum("action").
			Values(
				"affiliate_request",
				"affiliate_approved",
				"affiliate_blocked",
				"product_terms_updated",
				"sale_attributed",
				"withdrawal_requested",
				"withdrawal_approved",
				"withdrawal_rejected",
				"withdrawal_paid",
				"ledger_adjustment",
				"ledger_drift",
			).
			Comment("Action performed"),
		field.String("resource_type").
			Optional().
			Comment("Type of resource affected (affiliate, sale, withdrawal, balance)"),
		field.String("resource_id").
			Optional().
			Comment("ID of affected resource"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Additional context data"),
		field.Enum("severity").
			Values("info", "warning", "error", "critical").
			Default("info"),
		field.String("description").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("action"),
		index.Fields("severity"),
		index.Fields("created_at"),
	}
}
