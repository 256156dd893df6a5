// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/affiliatedb/ent/affiliatebalance"
)

// AffiliateBalance is the model entity for the AffiliateBalance schema.
type AffiliateBalance struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AffiliateID holds the value of the "affiliate_id" field.
	AffiliateID int `json:"affiliate_id,omitempty"`
	// Equals total_earned - total_withdrawn, never negative
	CurrentBalance float64 `json:"current_balance,omitempty"`
	// Monotonically non-decreasing
	TotalEarned float64 `json:"total_earned,omitempty"`
	// Monotonically non-decreasing
	TotalWithdrawn float64 `json:"total_withdrawn,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AffiliateBalance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case affiliatebalance.FieldCurrentBalance, affiliatebalance.FieldTotalEarned, affiliatebalance.FieldTotalWithdrawn:
			values[i] = new(sql.NullFloat64)
		case affiliatebalance.FieldID, affiliatebalance.FieldAffiliateID:
			values[i] = new(sql.NullInt64)
		case affiliatebalance.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AffiliateBalance fields.
func (ab *AffiliateBalance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case affiliatebalance.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ab.ID = int(value.Int64)
		case affiliatebalance.FieldAffiliateID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field affiliate_id", values[i])
			} else if value.Valid {
				ab.AffiliateID = int(value.Int64)
			}
		case affiliatebalance.FieldCurrentBalance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field current_balance", values[i])
			} else if value.Valid {
				ab.CurrentBalance = value.Float64
			}
		case affiliatebalance.FieldTotalEarned:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_earned", values[i])
			} else if value.Valid {
				ab.TotalEarned = value.Float64
			}
		case affiliatebalance.FieldTotalWithdrawn:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_withdrawn", values[i])
			} else if value.Valid {
				ab.TotalWithdrawn = value.Float64
			}
		case affiliatebalance.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				ab.LastUpdated = value.Time
			}
		default:
			ab.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AffiliateBalance.
// This includes values selected through modifiers, order, etc.
func (ab *AffiliateBalance) Value(name string) (ent.Value, error) {
	return ab.selectValues.Get(name)
}

// Update returns a builder for updating this AffiliateBalance.
// Note that you need to call AffiliateBalance.Unwrap() before calling this method if this AffiliateBalance
// was returned from a transaction, and the transaction was committed or rolled back.
func (ab *AffiliateBalance) Update() *AffiliateBalanceUpdateOne {
	return NewAffiliateBalanceClient(ab.config).UpdateOne(ab)
}

// Unwrap unwraps the AffiliateBalance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ab *AffiliateBalance) Unwrap() *AffiliateBalance {
	_tx, ok := ab.config.driver.(*txDriver)
	if !ok {
		panic("ent: AffiliateBalance is not a transactional entity")
	}
	ab.config.driver = _tx.drv
	return ab
}

// String implements the fmt.Stringer.
func (ab *AffiliateBalance) String() string {
	var builder strings.Builder
	builder.WriteString("AffiliateBalance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ab.ID))
	builder.WriteString("affiliate_id=")
	builder.WriteString(fmt.Sprintf("%v", ab.AffiliateID))
	builder.WriteString(", ")
	builder.WriteString("current_balance=")
	builder.WriteString(fmt.Sprintf("%v", ab.CurrentBalance))
	builder.WriteString(", ")
	builder.WriteString("total_earned=")
	builder.WriteString(fmt.Sprintf("%v", ab.TotalEarned))
	builder.WriteString(", ")
	builder.WriteString("total_withdrawn=")
	builder.WriteString(fmt.Sprintf("%v", ab.TotalWithdrawn))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(ab.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AffiliateBalances is a parsable slice of AffiliateBalance.
type AffiliateBalances []*AffiliateBalance
