// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/affiliatedb/ent/productcommission"
)

// ProductCommission is the model entity for the ProductCommission schema.
type ProductCommission struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AffiliateID holds the value of the "affiliate_id" field.
	AffiliateID int `json:"affiliate_id,omitempty"`
	// ProductID holds the value of the "product_id" field.
	ProductID int `json:"product_id,omitempty"`
	// percentage: 0-100 of line value; fixed: amount per unit
	CommissionType productcommission.CommissionType `json:"commission_type,omitempty"`
	// Percentage (0-100) or fixed amount per unit
	CommissionValue float64 `json:"commission_value,omitempty"`
	// Status holds the value of the "status" field.
	Status productcommission.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProductCommission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case productcommission.FieldCommissionValue:
			values[i] = new(sql.NullFloat64)
		case productcommission.FieldID, productcommission.FieldAffiliateID, productcommission.FieldProductID:
			values[i] = new(sql.NullInt64)
		case productcommission.FieldCommissionType, productcommission.FieldStatus:
			values[i] = new(sql.NullString)
		case productcommission.FieldCreatedAt, productcommission.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProductCommission fields.
func (pc *ProductCommission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case productcommission.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			pc.ID = int(value.Int64)
		case productcommission.FieldAffiliateID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field affiliate_id", values[i])
			} else if value.Valid {
				pc.AffiliateID = int(value.Int64)
			}
		case productcommission.FieldProductID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field product_id", values[i])
			} else if value.Valid {
				pc.ProductID = int(value.Int64)
			}
		case productcommission.FieldCommissionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commission_type", values[i])
			} else if value.Valid {
				pc.CommissionType = productcommission.CommissionType(value.String)
			}
		case productcommission.FieldCommissionValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field commission_value", values[i])
			} else if value.Valid {
				pc.CommissionValue = value.Float64
			}
		case productcommission.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				pc.Status = productcommission.Status(value.String)
			}
		case productcommission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				pc.CreatedAt = value.Time
			}
		case productcommission.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				pc.UpdatedAt = value.Time
			}
		default:
			pc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProductCommission.
// This includes values selected through modifiers, order, etc.
func (pc *ProductCommission) Value(name string) (ent.Value, error) {
	return pc.selectValues.Get(name)
}

// Update returns a builder for updating this ProductCommission.
// Note that you need to call ProductCommission.Unwrap() before calling this method if this ProductCommission
// was returned from a transaction, and the transaction was committed or rolled back.
func (pc *ProductCommission) Update() *ProductCommissionUpdateOne {
	return NewProductCommissionClient(pc.config).UpdateOne(pc)
}

// Unwrap unwraps the ProductCommission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pc *ProductCommission) Unwrap() *ProductCommission {
	_tx, ok := pc.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProductCommission is not a transactional entity")
	}
	pc.config.driver = _tx.drv
	return pc
}

// String implements the fmt.Stringer.
func (pc *ProductCommission) String() string {
	var builder strings.Builder
	builder.WriteString("ProductCommission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pc.ID))
	builder.WriteString("affiliate_id=")
	builder.WriteString(fmt.Sprintf("%v", pc.AffiliateID))
	builder.WriteString(", ")
	builder.WriteString("product_id=")
	builder.WriteString(fmt.Sprintf("%v", pc.ProductID))
	builder.WriteString(", ")
	builder.WriteString("commission_type=")
	builder.WriteString(fmt.Sprintf("%v", pc.CommissionType))
	builder.WriteString(", ")
	builder.WriteString("commission_value=")
	builder.WriteString(fmt.Sprintf("%v", pc.CommissionValue))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", pc.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(pc.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(pc.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProductCommissions is a parsable slice of ProductCommission.
type ProductCommissions []*ProductCommission
