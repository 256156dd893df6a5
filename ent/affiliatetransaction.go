// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/affiliatedb/ent/affiliatetransaction"
)

// AffiliateTransaction is the model entity for the AffiliateTransaction schema.
type AffiliateTransaction struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// BalanceID holds the value of the "balance_id" field.
	BalanceID int `json:"balance_id,omitempty"`
	// Type holds the value of the "type" field.
	Type affiliatetransaction.Type `json:"type,omitempty"`
	// Signed amount, rounded to 2 decimal places
	Amount float64 `json:"amount,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Related sale, order or withdrawal ID
	ReferenceID int `json:"reference_id,omitempty"`
	// TransactionDate holds the value of the "transaction_date" field.
	TransactionDate time.Time `json:"transaction_date,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AffiliateTransaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case affiliatetransaction.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case affiliatetransaction.FieldID, affiliatetransaction.FieldBalanceID, affiliatetransaction.FieldReferenceID:
			values[i] = new(sql.NullInt64)
		case affiliatetransaction.FieldType, affiliatetransaction.FieldDescription:
			values[i] = new(sql.NullString)
		case affiliatetransaction.FieldTransactionDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AffiliateTransaction fields.
func (at *AffiliateTransaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case affiliatetransaction.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			at.ID = int(value.Int64)
		case affiliatetransaction.FieldBalanceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field balance_id", values[i])
			} else if value.Valid {
				at.BalanceID = int(value.Int64)
			}
		case affiliatetransaction.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				at.Type = affiliatetransaction.Type(value.String)
			}
		case affiliatetransaction.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				at.Amount = value.Float64
			}
		case affiliatetransaction.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				at.Description = value.String
			}
		case affiliatetransaction.FieldReferenceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reference_id", values[i])
			} else if value.Valid {
				at.ReferenceID = int(value.Int64)
			}
		case affiliatetransaction.FieldTransactionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_date", values[i])
			} else if value.Valid {
				at.TransactionDate = value.Time
			}
		default:
			at.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AffiliateTransaction.
// This includes values selected through modifiers, order, etc.
func (at *AffiliateTransaction) Value(name string) (ent.Value, error) {
	return at.selectValues.Get(name)
}

// Update returns a builder for updating this AffiliateTransaction.
// Note that you need to call AffiliateTransaction.Unwrap() before calling this method if this AffiliateTransaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (at *AffiliateTransaction) Update() *AffiliateTransactionUpdateOne {
	return NewAffiliateTransactionClient(at.config).UpdateOne(at)
}

// Unwrap unwraps the AffiliateTransaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (at *AffiliateTransaction) Unwrap() *AffiliateTransaction {
	_tx, ok := at.config.driver.(*txDriver)
	if !ok {
		panic("ent: AffiliateTransaction is not a transactional entity")
	}
	at.config.driver = _tx.drv
	return at
}

// String implements the fmt.Stringer.
func (at *AffiliateTransaction) String() string {
	var builder strings.Builder
	builder.WriteString("AffiliateTransaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", at.ID))
	builder.WriteString("balance_id=")
	builder.WriteString(fmt.Sprintf("%v", at.BalanceID))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", at.Type))
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", at.Amount))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(at.Description)
	builder.WriteString(", ")
	builder.WriteString("reference_id=")
	builder.WriteString(fmt.Sprintf("%v", at.ReferenceID))
	builder.WriteString(", ")
	builder.WriteString("transaction_date=")
	builder.WriteString(at.TransactionDate.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AffiliateTransactions is a parsable slice of AffiliateTransaction.
type AffiliateTransactions []*AffiliateTransaction
