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
	"github.com/jordanlanch/affiliatedb/ent/affiliate"
	"github.com/jordanlanch/affiliatedb/ent/predicate"
)

// AffiliateUpdate is the builder for updating Affiliate entities.
type AffiliateUpdate struct {
	config
	hooks    []Hook
	mutation *AffiliateMutation
}

// Where appends a list predicates to the AffiliateUpdate builder.
func (au *AffiliateUpdate) Where(ps ...predicate.Affiliate) *AffiliateUpdate {
	au.mutation.Where(ps...)
	return au
}

// SetUserID sets the "user_id" field.
func (au *AffiliateUpdate) SetUserID(i int) *AffiliateUpdate {
	au.mutation.ResetUserID()
	au.mutation.SetUserID(i)
	return au
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (au *AffiliateUpdate) SetNillableUserID(i *int) *AffiliateUpdate {
	if i != nil {
		au.SetUserID(*i)
	}
	return au
}

// AddUserID adds i to the "user_id" field.
func (au *AffiliateUpdate) AddUserID(i int) *AffiliateUpdate {
	au.mutation.AddUserID(i)
	return au
}

// SetCommissionRate sets the "commission_rate" field.
func (au *AffiliateUpdate) SetCommissionRate(f float64) *AffiliateUpdate {
	au.mutation.ResetCommissionRate()
	au.mutation.SetCommissionRate(f)
	return au
}

// SetNillableCommissionRate sets the "commission_rate" field if the given value is not nil.
func (au *AffiliateUpdate) SetNillableCommissionRate(f *float64) *AffiliateUpdate {
	if f != nil {
		au.SetCommissionRate(*f)
	}
	return au
}

// AddCommissionRate adds f to the "commission_rate" field.
func (au *AffiliateUpdate) AddCommissionRate(f float64) *AffiliateUpdate {
	au.mutation.AddCommissionRate(f)
	return au
}

// SetIsGlobal sets the "is_global" field.
func (au *AffiliateUpdate) SetIsGlobal(b bool) *AffiliateUpdate {
	au.mutation.SetIsGlobal(b)
	return au
}

// SetNillableIsGlobal sets the "is_global" field if the given value is not nil.
func (au *AffiliateUpdate) SetNillableIsGlobal(b *bool) *AffiliateUpdate {
	if b != nil {
		au.SetIsGlobal(*b)
	}
	return au
}

// SetRequestStatus sets the "request_status" field.
func (au *AffiliateUpdate) SetRequestStatus(as affiliate.RequestStatus) *AffiliateUpdate {
	au.mutation.SetRequestStatus(as)
	return au
}

// SetNillableRequestStatus sets the "request_status" field if the given value is not nil.
func (au *AffiliateUpdate) SetNillableRequestStatus(as *affiliate.RequestStatus) *AffiliateUpdate {
	if as != nil {
		au.SetRequestStatus(*as)
	}
	return au
}

// SetReason sets the "reason" field.
func (au *AffiliateUpdate) SetReason(s string) *AffiliateUpdate {
	au.mutation.SetReason(s)
	return au
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (au *AffiliateUpdate) SetNillableReason(s *string) *AffiliateUpdate {
	if s != nil {
		au.SetReason(*s)
	}
	return au
}

// ClearReason clears the value of the "reason" field.
func (au *AffiliateUpdate) ClearReason() *AffiliateUpdate {
	au.mutation.ClearReason()
	return au
}

// SetUpdatedAt sets the "updated_at" field.
func (au *AffiliateUpdate) SetUpdatedAt(t time.Time) *AffiliateUpdate {
	au.mutation.SetUpdatedAt(t)
	return au
}

// Mutation returns the AffiliateMutation object of the builder.
func (au *AffiliateUpdate) Mutation() *AffiliateMutation {
	return au.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (au *AffiliateUpdate) Save(ctx context.Context) (int, error) {
	au.defaults()
	return withHooks(ctx, au.sqlSave, au.mutation, au.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (au *AffiliateUpdate) SaveX(ctx context.Context) int {
	affected, err := au.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (au *AffiliateUpdate) Exec(ctx context.Context) error {
	_, err := au.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (au *AffiliateUpdate) ExecX(ctx context.Context) {
	if err := au.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (au *AffiliateUpdate) defaults() {
	if _, ok := au.mutation.UpdatedAt(); !ok {
		v := affiliate.UpdateDefaultUpdatedAt()
		au.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (au *AffiliateUpdate) check() error {
	if v, ok := au.mutation.RequestStatus(); ok {
		if err := affiliate.RequestStatusValidator(v); err != nil {
			return &ValidationError{Name: "request_status", err: fmt.Errorf(`ent: validator failed for field "Affiliate.request_status": %w`, err)}
		}
	}
	return nil
}

func (au *AffiliateUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := au.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(affiliate.Table, affiliate.Columns, sqlgraph.NewFieldSpec(affiliate.FieldID, field.TypeInt))
	if ps := au.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := au.mutation.UserID(); ok {
		_spec.SetField(affiliate.FieldUserID, field.TypeInt, value)
	}
	if value, ok := au.mutation.AddedUserID(); ok {
		_spec.AddField(affiliate.FieldUserID, field.TypeInt, value)
	}
	if value, ok := au.mutation.CommissionRate(); ok {
		_spec.SetField(affiliate.FieldCommissionRate, field.TypeFloat64, value)
	}
	if value, ok := au.mutation.AddedCommissionRate(); ok {
		_spec.AddField(affiliate.FieldCommissionRate, field.TypeFloat64, value)
	}
	if value, ok := au.mutation.IsGlobal(); ok {
		_spec.SetField(affiliate.FieldIsGlobal, field.TypeBool, value)
	}
	if value, ok := au.mutation.RequestStatus(); ok {
		_spec.SetField(affiliate.FieldRequestStatus, field.TypeEnum, value)
	}
	if value, ok := au.mutation.Reason(); ok {
		_spec.SetField(affiliate.FieldReason, field.TypeString, value)
	}
	if au.mutation.ReasonCleared() {
		_spec.ClearField(affiliate.FieldReason, field.TypeString)
	}
	if value, ok := au.mutation.UpdatedAt(); ok {
		_spec.SetField(affiliate.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, au.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{affiliate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	au.mutation.done = true
	return n, nil
}

// AffiliateUpdateOne is the builder for updating a single Affiliate entity.
type AffiliateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AffiliateMutation
}

// SetUserID sets the "user_id" field.
func (auo *AffiliateUpdateOne) SetUserID(i int) *AffiliateUpdateOne {
	auo.mutation.ResetUserID()
	auo.mutation.SetUserID(i)
	return auo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (auo *AffiliateUpdateOne) SetNillableUserID(i *int) *AffiliateUpdateOne {
	if i != nil {
		auo.SetUserID(*i)
	}
	return auo
}

// AddUserID adds i to the "user_id" field.
func (auo *AffiliateUpdateOne) AddUserID(i int) *AffiliateUpdateOne {
	auo.mutation.AddUserID(i)
	return auo
}

// SetCommissionRate sets the "commission_rate" field.
func (auo *AffiliateUpdateOne) SetCommissionRate(f float64) *AffiliateUpdateOne {
	auo.mutation.ResetCommissionRate()
	auo.mutation.SetCommissionRate(f)
	return auo
}

// SetNillableCommissionRate sets the "commission_rate" field if the given value is not nil.
func (auo *AffiliateUpdateOne) SetNillableCommissionRate(f *float64) *AffiliateUpdateOne {
	if f != nil {
		auo.SetCommissionRate(*f)
	}
	return auo
}

// AddCommissionRate adds f to the "commission_rate" field.
func (auo *AffiliateUpdateOne) AddCommissionRate(f float64) *AffiliateUpdateOne {
	auo.mutation.AddCommissionRate(f)
	return auo
}

// SetIsGlobal sets the "is_global" field.
func (auo *AffiliateUpdateOne) SetIsGlobal(b bool) *AffiliateUpdateOne {
	auo.mutation.SetIsGlobal(b)
	return auo
}

// SetNillableIsGlobal sets the "is_global" field if the given value is not nil.
func (auo *AffiliateUpdateOne) SetNillableIsGlobal(b *bool) *AffiliateUpdateOne {
	if b != nil {
		auo.SetIsGlobal(*b)
	}
	return auo
}

// SetRequestStatus sets the "request_status" field.
func (auo *AffiliateUpdateOne) SetRequestStatus(as affiliate.RequestStatus) *AffiliateUpdateOne {
	auo.mutation.SetRequestStatus(as)
	return auo
}

// SetNillableRequestStatus sets the "request_status" field if the given value is not nil.
func (auo *AffiliateUpdateOne) SetNillableRequestStatus(as *affiliate.RequestStatus) *AffiliateUpdateOne {
	if as != nil {
		auo.SetRequestStatus(*as)
	}
	return auo
}

// SetReason sets the "reason" field.
func (auo *AffiliateUpdateOne) SetReason(s string) *AffiliateUpdateOne {
	auo.mutation.SetReason(s)
	return auo
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (auo *AffiliateUpdateOne) SetNillableReason(s *string) *AffiliateUpdateOne {
	if s != nil {
		auo.SetReason(*s)
	}
	return auo
}

// ClearReason clears the value of the "reason" field.
func (auo *AffiliateUpdateOne) ClearReason() *AffiliateUpdateOne {
	auo.mutation.ClearReason()
	return auo
}

// SetUpdatedAt sets the "updated_at" field.
func (auo *AffiliateUpdateOne) SetUpdatedAt(t time.Time) *AffiliateUpdateOne {
	auo.mutation.SetUpdatedAt(t)
	return auo
}

// Mutation returns the AffiliateMutation object of the builder.
func (auo *AffiliateUpdateOne) Mutation() *AffiliateMutation {
	return auo.mutation
}

// Where appends a list predicates to the AffiliateUpdate builder.
func (auo *AffiliateUpdateOne) Where(ps ...predicate.Affiliate) *AffiliateUpdateOne {
	auo.mutation.Where(ps...)
	return auo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (auo *AffiliateUpdateOne) Select(field string, fields ...string) *AffiliateUpdateOne {
	auo.fields = append([]string{field}, fields...)
	return auo
}

// Save executes the query and returns the updated Affiliate entity.
func (auo *AffiliateUpdateOne) Save(ctx context.Context) (*Affiliate, error) {
	auo.defaults()
	return withHooks(ctx, auo.sqlSave, auo.mutation, auo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (auo *AffiliateUpdateOne) SaveX(ctx context.Context) *Affiliate {
	node, err := auo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (auo *AffiliateUpdateOne) Exec(ctx context.Context) error {
	_, err := auo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (auo *AffiliateUpdateOne) ExecX(ctx context.Context) {
	if err := auo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (auo *AffiliateUpdateOne) defaults() {
	if _, ok := auo.mutation.UpdatedAt(); !ok {
		v := affiliate.UpdateDefaultUpdatedAt()
		auo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (auo *AffiliateUpdateOne) check() error {
	if v, ok := auo.mutation.RequestStatus(); ok {
		if err := affiliate.RequestStatusValidator(v); err != nil {
			return &ValidationError{Name: "request_status", err: fmt.Errorf(`ent: validator failed for field "Affiliate.request_status": %w`, err)}
		}
	}
	return nil
}

func (auo *AffiliateUpdateOne) sqlSave(ctx context.Context) (_node *Affiliate, err error) {
	if err := auo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(affiliate.Table, affiliate.Columns, sqlgraph.NewFieldSpec(affiliate.FieldID, field.TypeInt))
	id, ok := auo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Affiliate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := auo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, affiliate.FieldID)
		for _, f := range fields {
			if !affiliate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != affiliate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := auo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := auo.mutation.UserID(); ok {
		_spec.SetField(affiliate.FieldUserID, field.TypeInt, value)
	}
	if value, ok := auo.mutation.AddedUserID(); ok {
		_spec.AddField(affiliate.FieldUserID, field.TypeInt, value)
	}
	if value, ok := auo.mutation.CommissionRate(); ok {
		_spec.SetField(affiliate.FieldCommissionRate, field.TypeFloat64, value)
	}
	if value, ok := auo.mutation.AddedCommissionRate(); ok {
		_spec.AddField(affiliate.FieldCommissionRate, field.TypeFloat64, value)
	}
	if value, ok := auo.mutation.IsGlobal(); ok {
		_spec.SetField(affiliate.FieldIsGlobal, field.TypeBool, value)
	}
	if value, ok := auo.mutation.RequestStatus(); ok {
		_spec.SetField(affiliate.FieldRequestStatus, field.TypeEnum, value)
	}
	if value, ok := auo.mutation.Reason(); ok {
		_spec.SetField(affiliate.FieldReason, field.TypeString, value)
	}
	if auo.mutation.ReasonCleared() {
		_spec.ClearField(affiliate.FieldReason, field.TypeString)
	}
	if value, ok := auo.mutation.UpdatedAt(); ok {
		_spec.SetField(affiliate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Affiliate{config: auo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, auo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{affiliate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	auo.mutation.done = true
	return _node, nil
}
