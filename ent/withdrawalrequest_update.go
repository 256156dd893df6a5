// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/affiliatedb/ent/predicate"
	"github.com/jordanlanch/affiliatedb/ent/withdrawalrequest"
)

// WithdrawalRequestUpdate is the builder for updating WithdrawalRequest entities.
type WithdrawalRequestUpdate struct {
	config
	hooks    []Hook
	mutation *WithdrawalRequestMutation
}

// Where appends a list predicates to the WithdrawalRequestUpdate builder.
func (wru *WithdrawalRequestUpdate) Where(ps ...predicate.WithdrawalRequest) *WithdrawalRequestUpdate {
	wru.mutation.Where(ps...)
	return wru
}

// SetStatus sets the "status" field.
func (wru *WithdrawalRequestUpdate) SetStatus(w withdrawalrequest.Status) *WithdrawalRequestUpdate {
	wru.mutation.SetStatus(w)
	return wru
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wru *WithdrawalRequestUpdate) SetNillableStatus(w *withdrawalrequest.Status) *WithdrawalRequestUpdate {
	if w != nil {
		wru.SetStatus(*w)
	}
	return wru
}

// SetPaymentMethod sets the "payment_method" field.
func (wru *WithdrawalRequestUpdate) SetPaymentMethod(s string) *WithdrawalRequestUpdate {
	wru.mutation.SetPaymentMethod(s)
	return wru
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (wru *WithdrawalRequestUpdate) SetNillablePaymentMethod(s *string) *WithdrawalRequestUpdate {
	if s != nil {
		wru.SetPaymentMethod(*s)
	}
	return wru
}

// SetPaymentDetails sets the "payment_details" field.
func (wru *WithdrawalRequestUpdate) SetPaymentDetails(s string) *WithdrawalRequestUpdate {
	wru.mutation.SetPaymentDetails(s)
	return wru
}

// SetNillablePaymentDetails sets the "payment_details" field if the given value is not nil.
func (wru *WithdrawalRequestUpdate) SetNillablePaymentDetails(s *string) *WithdrawalRequestUpdate {
	if s != nil {
		wru.SetPaymentDetails(*s)
	}
	return wru
}

// SetAdminNotes sets the "admin_notes" field.
func (wru *WithdrawalRequestUpdate) SetAdminNotes(s string) *WithdrawalRequestUpdate {
	wru.mutation.SetAdminNotes(s)
	return wru
}

// SetNillableAdminNotes sets the "admin_notes" field if the given value is not nil.
func (wru *WithdrawalRequestUpdate) SetNillableAdminNotes(s *string) *WithdrawalRequestUpdate {
	if s != nil {
		wru.SetAdminNotes(*s)
	}
	return wru
}

// ClearAdminNotes clears the value of the "admin_notes" field.
func (wru *WithdrawalRequestUpdate) ClearAdminNotes() *WithdrawalRequestUpdate {
	wru.mutation.ClearAdminNotes()
	return wru
}

// SetTransactionID sets the "transaction_id" field.
func (wru *WithdrawalRequestUpdate) SetTransactionID(i int) *WithdrawalRequestUpdate {
	wru.mutation.ResetTransactionID()
	wru.mutation.SetTransactionID(i)
	return wru
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (wru *WithdrawalRequestUpdate) SetNillableTransactionID(i *int) *WithdrawalRequestUpdate {
	if i != nil {
		wru.SetTransactionID(*i)
	}
	return wru
}

// AddTransactionID adds i to the "transaction_id" field.
func (wru *WithdrawalRequestUpdate) AddTransactionID(i int) *WithdrawalRequestUpdate {
	wru.mutation.AddTransactionID(i)
	return wru
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (wru *WithdrawalRequestUpdate) ClearTransactionID() *WithdrawalRequestUpdate {
	wru.mutation.ClearTransactionID()
	return wru
}

// SetProcessedAt sets the "processed_at" field.
func (wru *WithdrawalRequestUpdate) SetProcessedAt(t time.Time) *WithdrawalRequestUpdate {
	wru.mutation.SetProcessedAt(t)
	return wru
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (wru *WithdrawalRequestUpdate) SetNillableProcessedAt(t *time.Time) *WithdrawalRequestUpdate {
	if t != nil {
		wru.SetProcessedAt(*t)
	}
	return wru
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (wru *WithdrawalRequestUpdate) ClearProcessedAt() *WithdrawalRequestUpdate {
	wru.mutation.ClearProcessedAt()
	return wru
}

// Mutation returns the WithdrawalRequestMutation object of the builder.
func (wru *WithdrawalRequestUpdate) Mutation() *WithdrawalRequestMutation {
	return wru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wru *WithdrawalRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, wru.sqlSave, wru.mutation, wru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wru *WithdrawalRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := wru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wru *WithdrawalRequestUpdate) Exec(ctx context.Context) error {
	_, err := wru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wru *WithdrawalRequestUpdate) ExecX(ctx context.Context) {
	if err := wru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wru *WithdrawalRequestUpdate) check() error {
	if v, ok := wru.mutation.Status(); ok {
		if err := withdrawalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WithdrawalRequest.status": %w`, err)}
		}
	}
	if v, ok := wru.mutation.PaymentMethod(); ok {
		if err := withdrawalrequest.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`ent: validator failed for field "WithdrawalRequest.payment_method": %w`, err)}
		}
	}
	return nil
}

func (wru *WithdrawalRequestUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := wru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(withdrawalrequest.Table, withdrawalrequest.Columns, sqlgraph.NewFieldSpec(withdrawalrequest.FieldID, field.TypeInt))
	if ps := wru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wru.mutation.Status(); ok {
		_spec.SetField(withdrawalrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := wru.mutation.PaymentMethod(); ok {
		_spec.SetField(withdrawalrequest.FieldPaymentMethod, field.TypeString, value)
	}
	if value, ok := wru.mutation.PaymentDetails(); ok {
		_spec.SetField(withdrawalrequest.FieldPaymentDetails, field.TypeString, value)
	}
	if value, ok := wru.mutation.AdminNotes(); ok {
		_spec.SetField(withdrawalrequest.FieldAdminNotes, field.TypeString, value)
	}
	if wru.mutation.AdminNotesCleared() {
		_spec.ClearField(withdrawalrequest.FieldAdminNotes, field.TypeString)
	}
	if value, ok := wru.mutation.TransactionID(); ok {
		_spec.SetField(withdrawalrequest.FieldTransactionID, field.TypeInt, value)
	}
	if value, ok := wru.mutation.AddedTransactionID(); ok {
		_spec.AddField(withdrawalrequest.FieldTransactionID, field.TypeInt, value)
	}
	if wru.mutation.TransactionIDCleared() {
		_spec.ClearField(withdrawalrequest.FieldTransactionID, field.TypeInt)
	}
	if value, ok := wru.mutation.ProcessedAt(); ok {
		_spec.SetField(withdrawalrequest.FieldProcessedAt, field.TypeTime, value)
	}
	if wru.mutation.ProcessedAtCleared() {
		_spec.ClearField(withdrawalrequest.FieldProcessedAt, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, wru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{withdrawalrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wru.mutation.done = true
	return n, nil
}

// WithdrawalRequestUpdateOne is the builder for updating a single WithdrawalRequest entity.
type WithdrawalRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WithdrawalRequestMutation
}

// SetStatus sets the "status" field.
func (wruo *WithdrawalRequestUpdateOne) SetStatus(w withdrawalrequest.Status) *WithdrawalRequestUpdateOne {
	wruo.mutation.SetStatus(w)
	return wruo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wruo *WithdrawalRequestUpdateOne) SetNillableStatus(w *withdrawalrequest.Status) *WithdrawalRequestUpdateOne {
	if w != nil {
		wruo.SetStatus(*w)
	}
	return wruo
}

// SetPaymentMethod sets the "payment_method" field.
func (wruo *WithdrawalRequestUpdateOne) SetPaymentMethod(s string) *WithdrawalRequestUpdateOne {
	wruo.mutation.SetPaymentMethod(s)
	return wruo
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (wruo *WithdrawalRequestUpdateOne) SetNillablePaymentMethod(s *string) *WithdrawalRequestUpdateOne {
	if s != nil {
		wruo.SetPaymentMethod(*s)
	}
	return wruo
}

// SetPaymentDetails sets the "payment_details" field.
func (wruo *WithdrawalRequestUpdateOne) SetPaymentDetails(s string) *WithdrawalRequestUpdateOne {
	wruo.mutation.SetPaymentDetails(s)
	return wruo
}

// SetNillablePaymentDetails sets the "payment_details" field if the given value is not nil.
func (wruo *WithdrawalRequestUpdateOne) SetNillablePaymentDetails(s *string) *WithdrawalRequestUpdateOne {
	if s != nil {
		wruo.SetPaymentDetails(*s)
	}
	return wruo
}

// SetAdminNotes sets the "admin_notes" field.
func (wruo *WithdrawalRequestUpdateOne) SetAdminNotes(s string) *WithdrawalRequestUpdateOne {
	wruo.mutation.SetAdminNotes(s)
	return wruo
}

// SetNillableAdminNotes sets the "admin_notes" field if the given value is not nil.
func (wruo *WithdrawalRequestUpdateOne) SetNillableAdminNotes(s *string) *WithdrawalRequestUpdateOne {
	if s != nil {
		wruo.SetAdminNotes(*s)
	}
	return wruo
}

// ClearAdminNotes clears the value of the "admin_notes" field.
func (wruo *WithdrawalRequestUpdateOne) ClearAdminNotes() *WithdrawalRequestUpdateOne {
	wruo.mutation.ClearAdminNotes()
	return wruo
}

// SetTransactionID sets the "transaction_id" field.
func (wruo *WithdrawalRequestUpdateOne) SetTransactionID(i int) *WithdrawalRequestUpdateOne {
	wruo.mutation.ResetTransactionID()
	wruo.mutation.SetTransactionID(i)
	return wruo
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (wruo *WithdrawalRequestUpdateOne) SetNillableTransactionID(i *int) *WithdrawalRequestUpdateOne {
	if i != nil {
		wruo.SetTransactionID(*i)
	}
	return wruo
}

// AddTransactionID adds i to the "transaction_id" field.
func (wruo *WithdrawalRequestUpdateOne) AddTransactionID(i int) *WithdrawalRequestUpdateOne {
	wruo.mutation.AddTransactionID(i)
	return wruo
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (wruo *WithdrawalRequestUpdateOne) ClearTransactionID() *WithdrawalRequestUpdateOne {
	wruo.mutation.ClearTransactionID()
	return wruo
}

// SetProcessedAt sets the "processed_at" field.
func (wruo *WithdrawalRequestUpdateOne) SetProcessedAt(t time.Time) *WithdrawalRequestUpdateOne {
	wruo.mutation.SetProcessedAt(t)
	return wruo
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (wruo *WithdrawalRequestUpdateOne) SetNillableProcessedAt(t *time.Time) *WithdrawalRequestUpdateOne {
	if t != nil {
		wruo.SetProcessedAt(*t)
	}
	return wruo
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (wruo *WithdrawalRequestUpdateOne) ClearProcessedAt() *WithdrawalRequestUpdateOne {
	wruo.mutation.ClearProcessedAt()
	return wruo
}

// Mutation returns the WithdrawalRequestMutation object of the builder.
func (wruo *WithdrawalRequestUpdateOne) Mutation() *WithdrawalRequestMutation {
	return wruo.mutation
}

// Where appends a list predicates to the WithdrawalRequestUpdate builder.
func (wruo *WithdrawalRequestUpdateOne) Where(ps ...predicate.WithdrawalRequest) *WithdrawalRequestUpdateOne {
	wruo.mutation.Where(ps...)
	return wruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wruo *WithdrawalRequestUpdateOne) Select(field string, fields ...string) *WithdrawalRequestUpdateOne {
	wruo.fields = append([]string{field}, fields...)
	return wruo
}

// Save executes the query and returns the updated WithdrawalRequest entity.
func (wruo *WithdrawalRequestUpdateOne) Save(ctx context.Context) (*WithdrawalRequest, error) {
	return withHooks(ctx, wruo.sqlSave, wruo.mutation, wruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wruo *WithdrawalRequestUpdateOne) SaveX(ctx context.Context) *WithdrawalRequest {
	node, err := wruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wruo *WithdrawalRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := wruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wruo *WithdrawalRequestUpdateOne) ExecX(ctx context.Context) {
	if err := wruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wruo *WithdrawalRequestUpdateOne) check() error {
	if v, ok := wruo.mutation.Status(); ok {
		if err := withdrawalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WithdrawalRequest.status": %w`, err)}
		}
	}
	if v, ok := wruo.mutation.PaymentMethod(); ok {
		if err := withdrawalrequest.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`ent: validator failed for field "WithdrawalRequest.payment_method": %w`, err)}
		}
	}
	return nil
}

func (wruo *WithdrawalRequestUpdateOne) sqlSave(ctx context.Context) (_node *WithdrawalRequest, err error) {
	if err := wruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(withdrawalrequest.Table, withdrawalrequest.Columns, sqlgraph.NewFieldSpec(withdrawalrequest.FieldID, field.TypeInt))
	id, ok := wruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WithdrawalRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, withdrawalrequest.FieldID)
		for _, f := range fields {
			if !withdrawalrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != withdrawalrequest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wruo.mutation.Status(); ok {
		_spec.SetField(withdrawalrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := wruo.mutation.PaymentMethod(); ok {
		_spec.SetField(withdrawalrequest.FieldPaymentMethod, field.TypeString, value)
	}
	if value, ok := wruo.mutation.PaymentDetails(); ok {
		_spec.SetField(withdrawalrequest.FieldPaymentDetails, field.TypeString, value)
	}
	if value, ok := wruo.mutation.AdminNotes(); ok {
		_spec.SetField(withdrawalrequest.FieldAdminNotes, field.TypeString, value)
	}
	if wruo.mutation.AdminNotesCleared() {
		_spec.ClearField(withdrawalrequest.FieldAdminNotes, field.TypeString)
	}
	if value, ok := wruo.mutation.TransactionID(); ok {
		_spec.SetField(withdrawalrequest.FieldTransactionID, field.TypeInt, value)
	}
	if value, ok := wruo.mutation.AddedTransactionID(); ok {
		_spec.AddField(withdrawalrequest.FieldTransactionID, field.TypeInt, value)
	}
	if wruo.mutation.TransactionIDCleared() {
		_spec.ClearField(withdrawalrequest.FieldTransactionID, field.TypeInt)
	}
	if value, ok := wruo.mutation.ProcessedAt(); ok {
		_spec.SetField(withdrawalrequest.FieldProcessedAt, field.TypeTime, value)
	}
	if wruo.mutation.ProcessedAtCleared() {
		_spec.ClearField(withdrawalrequest.FieldProcessedAt, field.TypeTime)
	}
	_node = &WithdrawalRequest{config: wruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{withdrawalrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wruo.mutation.done = true
	return _node, nil
}
