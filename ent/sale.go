// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/affiliatedb/ent/sale"
)

// Sale is the model entity for the Sale schema.
type Sale struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AffiliateID holds the value of the "affiliate_id" field.
	AffiliateID int `json:"affiliate_id,omitempty"`
	// At most one sale per order: the exactly-once guarantee
	OrderID int `json:"order_id,omitempty"`
	// Total commission, rounded to 2 decimal places
	Commission float64 `json:"commission,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Sale) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sale.FieldCommission:
			values[i] = new(sql.NullFloat64)
		case sale.FieldID, sale.FieldAffiliateID, sale.FieldOrderID:
			values[i] = new(sql.NullInt64)
		case sale.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Sale fields.
func (s *Sale) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sale.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			s.ID = int(value.Int64)
		case sale.FieldAffiliateID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field affiliate_id", values[i])
			} else if value.Valid {
				s.AffiliateID = int(value.Int64)
			}
		case sale.FieldOrderID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order_id", values[i])
			} else if value.Valid {
				s.OrderID = int(value.Int64)
			}
		case sale.FieldCommission:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field commission", values[i])
			} else if value.Valid {
				s.Commission = value.Float64
			}
		case sale.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				s.CreatedAt = value.Time
			}
		default:
			s.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Sale.
// This includes values selected through modifiers, order, etc.
func (s *Sale) Value(name string) (ent.Value, error) {
	return s.selectValues.Get(name)
}

// Update returns a builder for updating this Sale.
// Note that you need to call Sale.Unwrap() before calling this method if this Sale
// was returned from a transaction, and the transaction was committed or rolled back.
func (s *Sale) Update() *SaleUpdateOne {
	return NewSaleClient(s.config).UpdateOne(s)
}

// Unwrap unwraps the Sale entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (s *Sale) Unwrap() *Sale {
	_tx, ok := s.config.driver.(*txDriver)
	if !ok {
		panic("ent: Sale is not a transactional entity")
	}
	s.config.driver = _tx.drv
	return s
}

// String implements the fmt.Stringer.
func (s *Sale) String() string {
	var builder strings.Builder
	builder.WriteString("Sale(")
	builder.WriteString(fmt.Sprintf("id=%v, ", s.ID))
	builder.WriteString("affiliate_id=")
	builder.WriteString(fmt.Sprintf("%v", s.AffiliateID))
	builder.WriteString(", ")
	builder.WriteString("order_id=")
	builder.WriteString(fmt.Sprintf("%v", s.OrderID))
	builder.WriteString(", ")
	builder.WriteString("commission=")
	builder.WriteString(fmt.Sprintf("%v", s.Commission))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(s.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Sales is a parsable slice of Sale.
type Sales []*Sale
