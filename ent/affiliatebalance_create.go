// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/affiliatedb/ent/affiliatebalance"
)

// AffiliateBalanceCreate is the builder for creating a AffiliateBalance entity.
type AffiliateBalanceCreate struct {
	config
	mutation *AffiliateBalanceMutation
	hooks    []Hook
}

// SetAffiliateID sets the "affiliate_id" field.
func (abc *AffiliateBalanceCreate) SetAffiliateID(i int) *AffiliateBalanceCreate {
	abc.mutation.SetAffiliateID(i)
	return abc
}

// SetCurrentBalance sets the "current_balance" field.
func (abc *AffiliateBalanceCreate) SetCurrentBalance(f float64) *AffiliateBalanceCreate {
	abc.mutation.SetCurrentBalance(f)
	return abc
}

// SetNillableCurrentBalance sets the "current_balance" field if the given value is not nil.
func (abc *AffiliateBalanceCreate) SetNillableCurrentBalance(f *float64) *AffiliateBalanceCreate {
	if f != nil {
		abc.SetCurrentBalance(*f)
	}
	return abc
}

// SetTotalEarned sets the "total_earned" field.
func (abc *AffiliateBalanceCreate) SetTotalEarned(f float64) *AffiliateBalanceCreate {
	abc.mutation.SetTotalEarned(f)
	return abc
}

// SetNillableTotalEarned sets the "total_earned" field if the given value is not nil.
func (abc *AffiliateBalanceCreate) SetNillableTotalEarned(f *float64) *AffiliateBalanceCreate {
	if f != nil {
		abc.SetTotalEarned(*f)
	}
	return abc
}

// SetTotalWithdrawn sets the "total_withdrawn" field.
func (abc *AffiliateBalanceCreate) SetTotalWithdrawn(f float64) *AffiliateBalanceCreate {
	abc.mutation.SetTotalWithdrawn(f)
	return abc
}

// SetNillableTotalWithdrawn sets the "total_withdrawn" field if the given value is not nil.
func (abc *AffiliateBalanceCreate) SetNillableTotalWithdrawn(f *float64) *AffiliateBalanceCreate {
	if f != nil {
		abc.SetTotalWithdrawn(*f)
	}
	return abc
}

// SetLastUpdated sets the "last_updated" field.
func (abc *AffiliateBalanceCreate) SetLastUpdated(t time.Time) *AffiliateBalanceCreate {
	abc.mutation.SetLastUpdated(t)
	return abc
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (abc *AffiliateBalanceCreate) SetNillableLastUpdated(t *time.Time) *AffiliateBalanceCreate {
	if t != nil {
		abc.SetLastUpdated(*t)
	}
	return abc
}

// Mutation returns the AffiliateBalanceMutation object of the builder.
func (abc *AffiliateBalanceCreate) Mutation() *AffiliateBalanceMutation {
	return abc.mutation
}

// Save creates the AffiliateBalance in the database.
func (abc *AffiliateBalanceCreate) Save(ctx context.Context) (*AffiliateBalance, error) {
	abc.defaults()
	return withHooks(ctx, abc.sqlSave, abc.mutation, abc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (abc *AffiliateBalanceCreate) SaveX(ctx context.Context) *AffiliateBalance {
	v, err := abc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (abc *AffiliateBalanceCreate) Exec(ctx context.Context) error {
	_, err := abc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (abc *AffiliateBalanceCreate) ExecX(ctx context.Context) {
	if err := abc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (abc *AffiliateBalanceCreate) defaults() {
	if _, ok := abc.mutation.CurrentBalance(); !ok {
		v := affiliatebalance.DefaultCurrentBalance
		abc.mutation.SetCurrentBalance(v)
	}
	if _, ok := abc.mutation.TotalEarned(); !ok {
		v := affiliatebalance.DefaultTotalEarned
		abc.mutation.SetTotalEarned(v)
	}
	if _, ok := abc.mutation.TotalWithdrawn(); !ok {
		v := affiliatebalance.DefaultTotalWithdrawn
		abc.mutation.SetTotalWithdrawn(v)
	}
	if _, ok := abc.mutation.LastUpdated(); !ok {
		v := affiliatebalance.DefaultLastUpdated()
		abc.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (abc *AffiliateBalanceCreate) check() error {
	if _, ok := abc.mutation.AffiliateID(); !ok {
		return &ValidationError{Name: "affiliate_id", err: errors.New(`ent: missing required field "AffiliateBalance.affiliate_id"`)}
	}
	if _, ok := abc.mutation.CurrentBalance(); !ok {
		return &ValidationError{Name: "current_balance", err: errors.New(`ent: missing required field "AffiliateBalance.current_balance"`)}
	}
	if _, ok := abc.mutation.TotalEarned(); !ok {
		return &ValidationError{Name: "total_earned", err: errors.New(`ent: missing required field "AffiliateBalance.total_earned"`)}
	}
	if _, ok := abc.mutation.TotalWithdrawn(); !ok {
		return &ValidationError{Name: "total_withdrawn", err: errors.New(`ent: missing required field "AffiliateBalance.total_withdrawn"`)}
	}
	if _, ok := abc.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "AffiliateBalance.last_updated"`)}
	}
	return nil
}

func (abc *AffiliateBalanceCreate) sqlSave(ctx context.Context) (*AffiliateBalance, error) {
	if err := abc.check(); err != nil {
		return nil, err
	}
	_node, _spec := abc.createSpec()
	if err := sqlgraph.CreateNode(ctx, abc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	abc.mutation.id = &_node.ID
	abc.mutation.done = true
	return _node, nil
}

func (abc *AffiliateBalanceCreate) createSpec() (*AffiliateBalance, *sqlgraph.CreateSpec) {
	var (
		_node = &AffiliateBalance{config: abc.config}
		_spec = sqlgraph.NewCreateSpec(affiliatebalance.Table, sqlgraph.NewFieldSpec(affiliatebalance.FieldID, field.TypeInt))
	)
	if value, ok := abc.mutation.AffiliateID(); ok {
		_spec.SetField(affiliatebalance.FieldAffiliateID, field.TypeInt, value)
		_node.AffiliateID = value
	}
	if value, ok := abc.mutation.CurrentBalance(); ok {
		_spec.SetField(affiliatebalance.FieldCurrentBalance, field.TypeFloat64, value)
		_node.CurrentBalance = value
	}
	if value, ok := abc.mutation.TotalEarned(); ok {
		_spec.SetField(affiliatebalance.FieldTotalEarned, field.TypeFloat64, value)
		_node.TotalEarned = value
	}
	if value, ok := abc.mutation.TotalWithdrawn(); ok {
		_spec.SetField(affiliatebalance.FieldTotalWithdrawn, field.TypeFloat64, value)
		_node.TotalWithdrawn = value
	}
	if value, ok := abc.mutation.LastUpdated(); ok {
		_spec.SetField(affiliatebalance.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// AffiliateBalanceCreateBulk is the builder for creating many AffiliateBalance entities in bulk.
type AffiliateBalanceCreateBulk struct {
	config
	err      error
	builders []*AffiliateBalanceCreate
}

// Save creates the AffiliateBalance entities in the database.
func (abcb *AffiliateBalanceCreateBulk) Save(ctx context.Context) ([]*AffiliateBalance, error) {
	if abcb.err != nil {
		return nil, abcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(abcb.builders))
	nodes := make([]*AffiliateBalance, len(abcb.builders))
	mutators := make([]Mutator, len(abcb.builders))
	for i := range abcb.builders {
		func(i int, root context.Context) {
			builder := abcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AffiliateBalanceMutation)
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
					_, err = mutators[i+1].Mutate(root, abcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, abcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, abcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (abcb *AffiliateBalanceCreateBulk) SaveX(ctx context.Context) []*AffiliateBalance {
	v, err := abcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (abcb *AffiliateBalanceCreateBulk) Exec(ctx context.Context) error {
	_, err := abcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (abcb *AffiliateBalanceCreateBulk) ExecX(ctx context.Context) {
	if err := abcb.Exec(ctx); err != nil {
		panic(err)
	}
}
