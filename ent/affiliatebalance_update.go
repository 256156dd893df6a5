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
	"github.com/jordanlanch/affiliatedb/ent/affiliatebalance"
	"github.com/jordanlanch/affiliatedb/ent/predicate"
)

// AffiliateBalanceUpdate is the builder for updating AffiliateBalance entities.
type AffiliateBalanceUpdate struct {
	config
	hooks    []Hook
	mutation *AffiliateBalanceMutation
}

// Where appends a list predicates to the AffiliateBalanceUpdate builder.
func (abu *AffiliateBalanceUpdate) Where(ps ...predicate.AffiliateBalance) *AffiliateBalanceUpdate {
	abu.mutation.Where(ps...)
	return abu
}

// SetAffiliateID sets the "affiliate_id" field.
func (abu *AffiliateBalanceUpdate) SetAffiliateID(i int) *AffiliateBalanceUpdate {
	abu.mutation.ResetAffiliateID()
	abu.mutation.SetAffiliateID(i)
	return abu
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (abu *AffiliateBalanceUpdate) SetNillableAffiliateID(i *int) *AffiliateBalanceUpdate {
	if i != nil {
		abu.SetAffiliateID(*i)
	}
	return abu
}

// AddAffiliateID adds i to the "affiliate_id" field.
func (abu *AffiliateBalanceUpdate) AddAffiliateID(i int) *AffiliateBalanceUpdate {
	abu.mutation.AddAffiliateID(i)
	return abu
}

// SetCurrentBalance sets the "current_balance" field.
func (abu *AffiliateBalanceUpdate) SetCurrentBalance(f float64) *AffiliateBalanceUpdate {
	abu.mutation.ResetCurrentBalance()
	abu.mutation.SetCurrentBalance(f)
	return abu
}

// SetNillableCurrentBalance sets the "current_balance" field if the given value is not nil.
func (abu *AffiliateBalanceUpdate) SetNillableCurrentBalance(f *float64) *AffiliateBalanceUpdate {
	if f != nil {
		abu.SetCurrentBalance(*f)
	}
	return abu
}

// AddCurrentBalance adds f to the "current_balance" field.
func (abu *AffiliateBalanceUpdate) AddCurrentBalance(f float64) *AffiliateBalanceUpdate {
	abu.mutation.AddCurrentBalance(f)
	return abu
}

// SetTotalEarned sets the "total_earned" field.
func (abu *AffiliateBalanceUpdate) SetTotalEarned(f float64) *AffiliateBalanceUpdate {
	abu.mutation.ResetTotalEarned()
	abu.mutation.SetTotalEarned(f)
	return abu
}

// SetNillableTotalEarned sets the "total_earned" field if the given value is not nil.
func (abu *AffiliateBalanceUpdate) SetNillableTotalEarned(f *float64) *AffiliateBalanceUpdate {
	if f != nil {
		abu.SetTotalEarned(*f)
	}
	return abu
}

// AddTotalEarned adds f to the "total_earned" field.
func (abu *AffiliateBalanceUpdate) AddTotalEarned(f float64) *AffiliateBalanceUpdate {
	abu.mutation.AddTotalEarned(f)
	return abu
}

// SetTotalWithdrawn sets the "total_withdrawn" field.
func (abu *AffiliateBalanceUpdate) SetTotalWithdrawn(f float64) *AffiliateBalanceUpdate {
	abu.mutation.ResetTotalWithdrawn()
	abu.mutation.SetTotalWithdrawn(f)
	return abu
}

// SetNillableTotalWithdrawn sets the "total_withdrawn" field if the given value is not nil.
func (abu *AffiliateBalanceUpdate) SetNillableTotalWithdrawn(f *float64) *AffiliateBalanceUpdate {
	if f != nil {
		abu.SetTotalWithdrawn(*f)
	}
	return abu
}

// AddTotalWithdrawn adds f to the "total_withdrawn" field.
func (abu *AffiliateBalanceUpdate) AddTotalWithdrawn(f float64) *AffiliateBalanceUpdate {
	abu.mutation.AddTotalWithdrawn(f)
	return abu
}

// SetLastUpdated sets the "last_updated" field.
func (abu *AffiliateBalanceUpdate) SetLastUpdated(t time.Time) *AffiliateBalanceUpdate {
	abu.mutation.SetLastUpdated(t)
	return abu
}

// Mutation returns the AffiliateBalanceMutation object of the builder.
func (abu *AffiliateBalanceUpdate) Mutation() *AffiliateBalanceMutation {
	return abu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (abu *AffiliateBalanceUpdate) Save(ctx context.Context) (int, error) {
	abu.defaults()
	return withHooks(ctx, abu.sqlSave, abu.mutation, abu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (abu *AffiliateBalanceUpdate) SaveX(ctx context.Context) int {
	affected, err := abu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (abu *AffiliateBalanceUpdate) Exec(ctx context.Context) error {
	_, err := abu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (abu *AffiliateBalanceUpdate) ExecX(ctx context.Context) {
	if err := abu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (abu *AffiliateBalanceUpdate) defaults() {
	if _, ok := abu.mutation.LastUpdated(); !ok {
		v := affiliatebalance.UpdateDefaultLastUpdated()
		abu.mutation.SetLastUpdated(v)
	}
}

func (abu *AffiliateBalanceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(affiliatebalance.Table, affiliatebalance.Columns, sqlgraph.NewFieldSpec(affiliatebalance.FieldID, field.TypeInt))
	if ps := abu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := abu.mutation.AffiliateID(); ok {
		_spec.SetField(affiliatebalance.FieldAffiliateID, field.TypeInt, value)
	}
	if value, ok := abu.mutation.AddedAffiliateID(); ok {
		_spec.AddField(affiliatebalance.FieldAffiliateID, field.TypeInt, value)
	}
	if value, ok := abu.mutation.CurrentBalance(); ok {
		_spec.SetField(affiliatebalance.FieldCurrentBalance, field.TypeFloat64, value)
	}
	if value, ok := abu.mutation.AddedCurrentBalance(); ok {
		_spec.AddField(affiliatebalance.FieldCurrentBalance, field.TypeFloat64, value)
	}
	if value, ok := abu.mutation.TotalEarned(); ok {
		_spec.SetField(affiliatebalance.FieldTotalEarned, field.TypeFloat64, value)
	}
	if value, ok := abu.mutation.AddedTotalEarned(); ok {
		_spec.AddField(affiliatebalance.FieldTotalEarned, field.TypeFloat64, value)
	}
	if value, ok := abu.mutation.TotalWithdrawn(); ok {
		_spec.SetField(affiliatebalance.FieldTotalWithdrawn, field.TypeFloat64, value)
	}
	if value, ok := abu.mutation.AddedTotalWithdrawn(); ok {
		_spec.AddField(affiliatebalance.FieldTotalWithdrawn, field.TypeFloat64, value)
	}
	if value, ok := abu.mutation.LastUpdated(); ok {
		_spec.SetField(affiliatebalance.FieldLastUpdated, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, abu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{affiliatebalance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	abu.mutation.done = true
	return n, nil
}

// AffiliateBalanceUpdateOne is the builder for updating a single AffiliateBalance entity.
type AffiliateBalanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AffiliateBalanceMutation
}

// SetAffiliateID sets the "affiliate_id" field.
func (abuo *AffiliateBalanceUpdateOne) SetAffiliateID(i int) *AffiliateBalanceUpdateOne {
	abuo.mutation.ResetAffiliateID()
	abuo.mutation.SetAffiliateID(i)
	return abuo
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (abuo *AffiliateBalanceUpdateOne) SetNillableAffiliateID(i *int) *AffiliateBalanceUpdateOne {
	if i != nil {
		abuo.SetAffiliateID(*i)
	}
	return abuo
}

// AddAffiliateID adds i to the "affiliate_id" field.
func (abuo *AffiliateBalanceUpdateOne) AddAffiliateID(i int) *AffiliateBalanceUpdateOne {
	abuo.mutation.AddAffiliateID(i)
	return abuo
}

// SetCurrentBalance sets the "current_balance" field.
func (abuo *AffiliateBalanceUpdateOne) SetCurrentBalance(f float64) *AffiliateBalanceUpdateOne {
	abuo.mutation.ResetCurrentBalance()
	abuo.mutation.SetCurrentBalance(f)
	return abuo
}

// SetNillableCurrentBalance sets the "current_balance" field if the given value is not nil.
func (abuo *AffiliateBalanceUpdateOne) SetNillableCurrentBalance(f *float64) *AffiliateBalanceUpdateOne {
	if f != nil {
		abuo.SetCurrentBalance(*f)
	}
	return abuo
}

// AddCurrentBalance adds f to the "current_balance" field.
func (abuo *AffiliateBalanceUpdateOne) AddCurrentBalance(f float64) *AffiliateBalanceUpdateOne {
	abuo.mutation.AddCurrentBalance(f)
	return abuo
}

// SetTotalEarned sets the "total_earned" field.
func (abuo *AffiliateBalanceUpdateOne) SetTotalEarned(f float64) *AffiliateBalanceUpdateOne {
	abuo.mutation.ResetTotalEarned()
	abuo.mutation.SetTotalEarned(f)
	return abuo
}

// SetNillableTotalEarned sets the "total_earned" field if the given value is not nil.
func (abuo *AffiliateBalanceUpdateOne) SetNillableTotalEarned(f *float64) *AffiliateBalanceUpdateOne {
	if f != nil {
		abuo.SetTotalEarned(*f)
	}
	return abuo
}

// AddTotalEarned adds f to the "total_earned" field.
func (abuo *AffiliateBalanceUpdateOne) AddTotalEarned(f float64) *AffiliateBalanceUpdateOne {
	abuo.mutation.AddTotalEarned(f)
	return abuo
}

// SetTotalWithdrawn sets the "total_withdrawn" field.
func (abuo *AffiliateBalanceUpdateOne) SetTotalWithdrawn(f float64) *AffiliateBalanceUpdateOne {
	abuo.mutation.ResetTotalWithdrawn()
	abuo.mutation.SetTotalWithdrawn(f)
	return abuo
}

// SetNillableTotalWithdrawn sets the "total_withdrawn" field if the given value is not nil.
func (abuo *AffiliateBalanceUpdateOne) SetNillableTotalWithdrawn(f *float64) *AffiliateBalanceUpdateOne {
	if f != nil {
		abuo.SetTotalWithdrawn(*f)
	}
	return abuo
}

// AddTotalWithdrawn adds f to the "total_withdrawn" field.
func (abuo *AffiliateBalanceUpdateOne) AddTotalWithdrawn(f float64) *AffiliateBalanceUpdateOne {
	abuo.mutation.AddTotalWithdrawn(f)
	return abuo
}

// SetLastUpdated sets the "last_updated" field.
func (abuo *AffiliateBalanceUpdateOne) SetLastUpdated(t time.Time) *AffiliateBalanceUpdateOne {
	abuo.mutation.SetLastUpdated(t)
	return abuo
}

// Mutation returns the AffiliateBalanceMutation object of the builder.
func (abuo *AffiliateBalanceUpdateOne) Mutation() *AffiliateBalanceMutation {
	return abuo.mutation
}

// Where appends a list predicates to the AffiliateBalanceUpdate builder.
func (abuo *AffiliateBalanceUpdateOne) Where(ps ...predicate.AffiliateBalance) *AffiliateBalanceUpdateOne {
	abuo.mutation.Where(ps...)
	return abuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (abuo *AffiliateBalanceUpdateOne) Select(field string, fields ...string) *AffiliateBalanceUpdateOne {
	abuo.fields = append([]string{field}, fields...)
	return abuo
}

// Save executes the query and returns the updated AffiliateBalance entity.
func (abuo *AffiliateBalanceUpdateOne) Save(ctx context.Context) (*AffiliateBalance, error) {
	abuo.defaults()
	return withHooks(ctx, abuo.sqlSave, abuo.mutation, abuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (abuo *AffiliateBalanceUpdateOne) SaveX(ctx context.Context) *AffiliateBalance {
	node, err := abuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (abuo *AffiliateBalanceUpdateOne) Exec(ctx context.Context) error {
	_, err := abuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (abuo *AffiliateBalanceUpdateOne) ExecX(ctx context.Context) {
	if err := abuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (abuo *AffiliateBalanceUpdateOne) defaults() {
	if _, ok := abuo.mutation.LastUpdated(); !ok {
		v := affiliatebalance.UpdateDefaultLastUpdated()
		abuo.mutation.SetLastUpdated(v)
	}
}

func (abuo *AffiliateBalanceUpdateOne) sqlSave(ctx context.Context) (_node *AffiliateBalance, err error) {
	_spec := sqlgraph.NewUpdateSpec(affiliatebalance.Table, affiliatebalance.Columns, sqlgraph.NewFieldSpec(affiliatebalance.FieldID, field.TypeInt))
	id, ok := abuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AffiliateBalance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := abuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, affiliatebalance.FieldID)
		for _, f := range fields {
			if !affiliatebalance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != affiliatebalance.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := abuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := abuo.mutation.AffiliateID(); ok {
		_spec.SetField(affiliatebalance.FieldAffiliateID, field.TypeInt, value)
	}
	if value, ok := abuo.mutation.AddedAffiliateID(); ok {
		_spec.AddField(affiliatebalance.FieldAffiliateID, field.TypeInt, value)
	}
	if value, ok := abuo.mutation.CurrentBalance(); ok {
		_spec.SetField(affiliatebalance.FieldCurrentBalance, field.TypeFloat64, value)
	}
	if value, ok := abuo.mutation.AddedCurrentBalance(); ok {
		_spec.AddField(affiliatebalance.FieldCurrentBalance, field.TypeFloat64, value)
	}
	if value, ok := abuo.mutation.TotalEarned(); ok {
		_spec.SetField(affiliatebalance.FieldTotalEarned, field.TypeFloat64, value)
	}
	if value, ok := abuo.mutation.AddedTotalEarned(); ok {
		_spec.AddField(affiliatebalance.FieldTotalEarned, field.TypeFloat64, value)
	}
	if value, ok := abuo.mutation.TotalWithdrawn(); ok {
		_spec.SetField(affiliatebalance.FieldTotalWithdrawn, field.TypeFloat64, value)
	}
	if value, ok := abuo.mutation.AddedTotalWithdrawn(); ok {
		_spec.AddField(affiliatebalance.FieldTotalWithdrawn, field.TypeFloat64, value)
	}
	if value, ok := abuo.mutation.LastUpdated(); ok {
		_spec.SetField(affiliatebalance.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &AffiliateBalance{config: abuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, abuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{affiliatebalance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	abuo.mutation.done = true
	return _node, nil
}
