// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/affiliatedb/ent/withdrawalrequest"
)

// WithdrawalRequest is the model entity for the WithdrawalRequest schema.
type WithdrawalRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AffiliateID holds the value of the "affiliate_id" field.
	AffiliateID int `json:"affiliate_id,omitempty"`
	// Requested amount, must be positive
	Amount float64 `json:"amount,omitempty"`
	// rejected and paid are terminal
	Status withdrawalrequest.Status `json:"status,omitempty"`
	// PaymentMethod holds the value of the "payment_method" field.
	PaymentMethod string `json:"payment_method,omitempty"`
	// PaymentDetails holds the value of the "payment_details" field.
	PaymentDetails string `json:"-"`
	// AdminNotes holds the value of the "admin_notes" field.
	AdminNotes string `json:"admin_notes,omitempty"`
	// Ledger transaction created on settlement
	TransactionID *int `json:"transaction_id,omitempty"`
	// RequestedAt holds the value of the "requested_at" field.
	RequestedAt time.Time `json:"requested_at,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt  *time.Time `json:"processed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WithdrawalRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case withdrawalrequest.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case withdrawalrequest.FieldID, withdrawalrequest.FieldAffiliateID, withdrawalrequest.FieldTransactionID:
			values[i] = new(sql.NullInt64)
		case withdrawalrequest.FieldStatus, withdrawalrequest.FieldPaymentMethod, withdrawalrequest.FieldPaymentDetails, withdrawalrequest.FieldAdminNotes:
			values[i] = new(sql.NullString)
		case withdrawalrequest.FieldRequestedAt, withdrawalrequest.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WithdrawalRequest fields.
func (wr *WithdrawalRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case withdrawalrequest.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			wr.ID = int(value.Int64)
		case withdrawalrequest.FieldAffiliateID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field affiliate_id", values[i])
			} else if value.Valid {
				wr.AffiliateID = int(value.Int64)
			}
		case withdrawalrequest.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				wr.Amount = value.Float64
			}
		case withdrawalrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				wr.Status = withdrawalrequest.Status(value.String)
			}
		case withdrawalrequest.FieldPaymentMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_method", values[i])
			} else if value.Valid {
				wr.PaymentMethod = value.String
			}
		case withdrawalrequest.FieldPaymentDetails:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_details", values[i])
			} else if value.Valid {
				wr.PaymentDetails = value.String
			}
		case withdrawalrequest.FieldAdminNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field admin_notes", values[i])
			} else if value.Valid {
				wr.AdminNotes = value.String
			}
		case withdrawalrequest.FieldTransactionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_id", values[i])
			} else if value.Valid {
				wr.TransactionID = new(int)
				*wr.TransactionID = int(value.Int64)
			}
		case withdrawalrequest.FieldRequestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field requested_at", values[i])
			} else if value.Valid {
				wr.RequestedAt = value.Time
			}
		case withdrawalrequest.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				wr.ProcessedAt = new(time.Time)
				*wr.ProcessedAt = value.Time
			}
		default:
			wr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WithdrawalRequest.
// This includes values selected through modifiers, order, etc.
func (wr *WithdrawalRequest) Value(name string) (ent.Value, error) {
	return wr.selectValues.Get(name)
}

// Update returns a builder for updating this WithdrawalRequest.
// Note that you need to call WithdrawalRequest.Unwrap() before calling this method if this WithdrawalRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (wr *WithdrawalRequest) Update() *WithdrawalRequestUpdateOne {
	return NewWithdrawalRequestClient(wr.config).UpdateOne(wr)
}

// Unwrap unwraps the WithdrawalRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (wr *WithdrawalRequest) Unwrap() *WithdrawalRequest {
	_tx, ok := wr.config.driver.(*txDriver)
	if !ok {
		panic("ent: WithdrawalRequest is not a transactional entity")
	}
	wr.config.driver = _tx.drv
	return wr
}

// String implements the fmt.Stringer.
func (wr *WithdrawalRequest) String() string {
	var builder strings.Builder
	builder.WriteString("WithdrawalRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", wr.ID))
	builder.WriteString("affiliate_id=")
	builder.WriteString(fmt.Sprintf("%v", wr.AffiliateID))
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", wr.Amount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", wr.Status))
	builder.WriteString(", ")
	builder.WriteString("payment_method=")
	builder.WriteString(wr.PaymentMethod)
	builder.WriteString(", ")
	builder.WriteString("payment_details=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("admin_notes=")
	builder.WriteString(wr.AdminNotes)
	builder.WriteString(", ")
	if v := wr.TransactionID; v != nil {
		builder.WriteString("transaction_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("requested_at=")
	builder.WriteString(wr.RequestedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := wr.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// WithdrawalRequests is a parsable slice of WithdrawalRequest.
type WithdrawalRequests []*WithdrawalRequest
