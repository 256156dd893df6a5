// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/affiliatedb/ent/withdrawalrequest"
)

// WithdrawalRequestCreate is the builder for creating a WithdrawalRequest entity.
type WithdrawalRequestCreate struct {
	config
	mutation *WithdrawalRequestMutation
	hooks    []Hook
}

// SetAffiliateID sets the "affiliate_id" field.
func (wrc *WithdrawalRequestCreate) SetAffiliateID(i int) *WithdrawalRequestCreate {
	wrc.mutation.SetAffiliateID(i)
	return wrc
}

// SetAmount sets the "amount" field.
func (wrc *WithdrawalRequestCreate) SetAmount(f float64) *WithdrawalRequestCreate {
	wrc.mutation.SetAmount(f)
	return wrc
}

// SetStatus sets the "status" field.
func (wrc *WithdrawalRequestCreate) SetStatus(w withdrawalrequest.Status) *WithdrawalRequestCreate {
	wrc.mutation.SetStatus(w)
	return wrc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wrc *WithdrawalRequestCreate) SetNillableStatus(w *withdrawalrequest.Status) *WithdrawalRequestCreate {
	if w != nil {
		wrc.SetStatus(*w)
	}
	return wrc
}

// SetPaymentMethod sets the "payment_method" field.
func (wrc *WithdrawalRequestCreate) SetPaymentMethod(s string) *WithdrawalRequestCreate {
	wrc.mutation.SetPaymentMethod(s)
	return wrc
}

// SetPaymentDetails sets the "payment_details" field.
func (wrc *WithdrawalRequestCreate) SetPaymentDetails(s string) *WithdrawalRequestCreate {
	wrc.mutation.SetPaymentDetails(s)
	return wrc
}

// SetAdminNotes sets the "admin_notes" field.
func (wrc *WithdrawalRequestCreate) SetAdminNotes(s string) *WithdrawalRequestCreate {
	wrc.mutation.SetAdminNotes(s)
	return wrc
}

// SetNillableAdminNotes sets the "admin_notes" field if the given value is not nil.
func (wrc *WithdrawalRequestCreate) SetNillableAdminNotes(s *string) *WithdrawalRequestCreate {
	if s != nil {
		wrc.SetAdminNotes(*s)
	}
	return wrc
}

// SetTransactionID sets the "transaction_id" field.
func (wrc *WithdrawalRequestCreate) SetTransactionID(i int) *WithdrawalRequestCreate {
	wrc.mutation.SetTransactionID(i)
	return wrc
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (wrc *WithdrawalRequestCreate) SetNillableTransactionID(i *int) *WithdrawalRequestCreate {
	if i != nil {
		wrc.SetTransactionID(*i)
	}
	return wrc
}

// SetRequestedAt sets the "requested_at" field.
func (wrc *WithdrawalRequestCreate) SetRequestedAt(t time.Time) *WithdrawalRequestCreate {
	wrc.mutation.SetRequestedAt(t)
	return wrc
}

// SetNillableRequestedAt sets the "requested_at" field if the given value is not nil.
func (wrc *WithdrawalRequestCreate) SetNillableRequestedAt(t *time.Time) *WithdrawalRequestCreate {
	if t != nil {
		wrc.SetRequestedAt(*t)
	}
	return wrc
}

// SetProcessedAt sets the "processed_at" field.
func (wrc *WithdrawalRequestCreate) SetProcessedAt(t time.Time) *WithdrawalRequestCreate {
	wrc.mutation.SetProcessedAt(t)
	return wrc
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (wrc *WithdrawalRequestCreate) SetNillableProcessedAt(t *time.Time) *WithdrawalRequestCreate {
	if t != nil {
		wrc.SetProcessedAt(*t)
	}
	return wrc
}

// Mutation returns the WithdrawalRequestMutation object of the builder.
func (wrc *WithdrawalRequestCreate) Mutation() *WithdrawalRequestMutation {
	return wrc.mutation
}

// Save creates the WithdrawalRequest in the database.
func (wrc *WithdrawalRequestCreate) Save(ctx context.Context) (*WithdrawalRequest, error) {
	wrc.defaults()
	return withHooks(ctx, wrc.sqlSave, wrc.mutation, wrc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (wrc *WithdrawalRequestCreate) SaveX(ctx context.Context) *WithdrawalRequest {
	v, err := wrc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wrc *WithdrawalRequestCreate) Exec(ctx context.Context) error {
	_, err := wrc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wrc *WithdrawalRequestCreate) ExecX(ctx context.Context) {
	if err := wrc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wrc *WithdrawalRequestCreate) defaults() {
	if _, ok := wrc.mutation.Status(); !ok {
		v := withdrawalrequest.DefaultStatus
		wrc.mutation.SetStatus(v)
	}
	if _, ok := wrc.mutation.RequestedAt(); !ok {
		v := withdrawalrequest.DefaultRequestedAt()
		wrc.mutation.SetRequestedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wrc *WithdrawalRequestCreate) check() error {
	if _, ok := wrc.mutation.AffiliateID(); !ok {
		return &ValidationError{Name: "affiliate_id", err: errors.New(`ent: missing required field "WithdrawalRequest.affiliate_id"`)}
	}
	if _, ok := wrc.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "WithdrawalRequest.amount"`)}
	}
	if _, ok := wrc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WithdrawalRequest.status"`)}
	}
	if v, ok := wrc.mutation.Status(); ok {
		if err := withdrawalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WithdrawalRequest.status": %w`, err)}
		}
	}
	if _, ok := wrc.mutation.PaymentMethod(); !ok {
		return &ValidationError{Name: "payment_method", err: errors.New(`ent: missing required field "WithdrawalRequest.payment_method"`)}
	}
	if v, ok := wrc.mutation.PaymentMethod(); ok {
		if err := withdrawalrequest.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`ent: validator failed for field "WithdrawalRequest.payment_method": %w`, err)}
		}
	}
	if _, ok := wrc.mutation.PaymentDetails(); !ok {
		return &ValidationError{Name: "payment_details", err: errors.New(`ent: missing required field "WithdrawalRequest.payment_details"`)}
	}
	if _, ok := wrc.mutation.RequestedAt(); !ok {
		return &ValidationError{Name: "requested_at", err: errors.New(`ent: missing required field "WithdrawalRequest.requested_at"`)}
	}
	return nil
}

func (wrc *WithdrawalRequestCreate) sqlSave(ctx context.Context) (*WithdrawalRequest, error) {
	if err := wrc.check(); err != nil {
		return nil, err
	}
	_node, _spec := wrc.createSpec()
	if err := sqlgraph.CreateNode(ctx, wrc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	wrc.mutation.id = &_node.ID
	wrc.mutation.done = true
	return _node, nil
}

func (wrc *WithdrawalRequestCreate) createSpec() (*WithdrawalRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &WithdrawalRequest{config: wrc.config}
		_spec = sqlgraph.NewCreateSpec(withdrawalrequest.Table, sqlgraph.NewFieldSpec(withdrawalrequest.FieldID, field.TypeInt))
	)
	if value, ok := wrc.mutation.AffiliateID(); ok {
		_spec.SetField(withdrawalrequest.FieldAffiliateID, field.TypeInt, value)
		_node.AffiliateID = value
	}
	if value, ok := wrc.mutation.Amount(); ok {
		_spec.SetField(withdrawalrequest.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := wrc.mutation.Status(); ok {
		_spec.SetField(withdrawalrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := wrc.mutation.PaymentMethod(); ok {
		_spec.SetField(withdrawalrequest.FieldPaymentMethod, field.TypeString, value)
		_node.PaymentMethod = value
	}
	if value, ok := wrc.mutation.PaymentDetails(); ok {
		_spec.SetField(withdrawalrequest.FieldPaymentDetails, field.TypeString, value)
		_node.PaymentDetails = value
	}
	if value, ok := wrc.mutation.AdminNotes(); ok {
		_spec.SetField(withdrawalrequest.FieldAdminNotes, field.TypeString, value)
		_node.AdminNotes = value
	}
	if value, ok := wrc.mutation.TransactionID(); ok {
		_spec.SetField(withdrawalrequest.FieldTransactionID, field.TypeInt, value)
		_node.TransactionID = &value
	}
	if value, ok := wrc.mutation.RequestedAt(); ok {
		_spec.SetField(withdrawalrequest.FieldRequestedAt, field.TypeTime, value)
		_node.RequestedAt = value
	}
	if value, ok := wrc.mutation.ProcessedAt(); ok {
		_spec.SetField(withdrawalrequest.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	return _node, _spec
}

// WithdrawalRequestCreateBulk is the builder for creating many WithdrawalRequest entities in bulk.
type WithdrawalRequestCreateBulk struct {
	config
	err      error
	builders []*WithdrawalRequestCreate
}

// Save creates the WithdrawalRequest entities in the database.
func (wrcb *WithdrawalRequestCreateBulk) Save(ctx context.Context) ([]*WithdrawalRequest, error) {
	if wrcb.err != nil {
		return nil, wrcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wrcb.builders))
	nodes := make([]*WithdrawalRequest, len(wrcb.builders))
	mutators := make([]Mutator, len(wrcb.builders))
	for i := range wrcb.builders {
		func(i int, root context.Context) {
			builder := wrcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WithdrawalRequestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, wrcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wrcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, wrcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wrcb *WithdrawalRequestCreateBulk) SaveX(ctx context.Context) []*WithdrawalRequest {
	v, err := wrcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wrcb *WithdrawalRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := wrcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wrcb *WithdrawalRequestCreateBulk) ExecX(ctx context.Context) {
	if err := wrcb.Exec(ctx); err != nil {
		panic(err)
	}
}
