// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/affiliatedb/ent/affiliate"
)

// Affiliate is the model entity for the Affiliate schema.
type Affiliate struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// User associated with this affiliate account
	UserID int `json:"user_id,omitempty"`
	// Unique referral tracking code, issued once
	ReferralCode string `json:"referral_code,omitempty"`
	// Global commission rate as a fraction (0.05 = 5%)
	CommissionRate float64 `json:"commission_rate,omitempty"`
	// Whether the affiliate may earn on any product
	IsGlobal bool `json:"is_global,omitempty"`
	// Affiliation request status
	RequestStatus affiliate.RequestStatus `json:"request_status,omitempty"`
	// Admin reason, set when the request is blocked
	Reason string `json:"reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Affiliate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case affiliate.FieldIsGlobal:
			values[i] = new(sql.NullBool)
		case affiliate.FieldCommissionRate:
			values[i] = new(sql.NullFloat64)
		case affiliate.FieldID, affiliate.FieldUserID:
			values[i] = new(sql.NullInt64)
		case affiliate.FieldReferralCode, affiliate.FieldRequestStatus, affiliate.FieldReason:
			values[i] = new(sql.NullString)
		case affiliate.FieldCreatedAt, affiliate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Affiliate fields.
func (a *Affiliate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case affiliate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			a.ID = int(value.Int64)
		case affiliate.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				a.UserID = int(value.Int64)
			}
		case affiliate.FieldReferralCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field referral_code", values[i])
			} else if value.Valid {
				a.ReferralCode = value.String
			}
		case affiliate.FieldCommissionRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field commission_rate", values[i])
			} else if value.Valid {
				a.CommissionRate = value.Float64
			}
		case affiliate.FieldIsGlobal:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_global", values[i])
			} else if value.Valid {
				a.IsGlobal = value.Bool
			}
		case affiliate.FieldRequestStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_status", values[i])
			} else if value.Valid {
				a.RequestStatus = affiliate.RequestStatus(value.String)
			}
		case affiliate.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				a.Reason = value.String
			}
		case affiliate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				a.CreatedAt = value.Time
			}
		case affiliate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				a.UpdatedAt = value.Time
			}
		default:
			a.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Affiliate.
// This includes values selected through modifiers, order, etc.
func (a *Affiliate) Value(name string) (ent.Value, error) {
	return a.selectValues.Get(name)
}

// Update returns a builder for updating this Affiliate.
// Note that you need to call Affiliate.Unwrap() before calling this method if this Affiliate
// was returned from a transaction, and the transaction was committed or rolled back.
func (a *Affiliate) Update() *AffiliateUpdateOne {
	return NewAffiliateClient(a.config).UpdateOne(a)
}

// Unwrap unwraps the Affiliate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (a *Affiliate) Unwrap() *Affiliate {
	_tx, ok := a.config.driver.(*txDriver)
	if !ok {
		panic("ent: Affiliate is not a transactional entity")
	}
	a.config.driver = _tx.drv
	return a
}

// String implements the fmt.Stringer.
func (a *Affiliate) String() string {
	var builder strings.Builder
	builder.WriteString("Affiliate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", a.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", a.UserID))
	builder.WriteString(", ")
	builder.WriteString("referral_code=")
	builder.WriteString(a.ReferralCode)
	builder.WriteString(", ")
	builder.WriteString("commission_rate=")
	builder.WriteString(fmt.Sprintf("%v", a.CommissionRate))
	builder.WriteString(", ")
	builder.WriteString("is_global=")
	builder.WriteString(fmt.Sprintf("%v", a.IsGlobal))
	builder.WriteString(", ")
	builder.WriteString("request_status=")
	builder.WriteString(fmt.Sprintf("%v", a.RequestStatus))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(a.Reason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(a.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(a.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Affiliates is a parsable slice of Affiliate.
type Affiliates []*Affiliate
