// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/affiliatedb/ent/affiliatetransaction"
)

// AffiliateTransactionCreate is the builder for creating a AffiliateTransaction entity.
type AffiliateTransactionCreate struct {
	config
	mutation *AffiliateTransactionMutation
	hooks    []Hook
}

// SetBalanceID sets the "balance_id" field.
func (atc *AffiliateTransactionCreate) SetBalanceID(i int) *AffiliateTransactionCreate {
	atc.mutation.SetBalanceID(i)
	return atc
}

// SetType sets the "type" field.
func (atc *AffiliateTransactionCreate) SetType(a affiliatetransaction.Type) *AffiliateTransactionCreate {
	atc.mutation.SetType(a)
	return atc
}

// SetAmount sets the "amount" field.
func (atc *AffiliateTransactionCreate) SetAmount(f float64) *AffiliateTransactionCreate {
	atc.mutation.SetAmount(f)
	return atc
}

// SetDescription sets the "description" field.
func (atc *AffiliateTransactionCreate) SetDescription(s string) *AffiliateTransactionCreate {
	atc.mutation.SetDescription(s)
	return atc
}

// SetReferenceID sets the "reference_id" field.
func (atc *AffiliateTransactionCreate) SetReferenceID(i int) *AffiliateTransactionCreate {
	atc.mutation.SetReferenceID(i)
	return atc
}

// SetNillableReferenceID sets the "reference_id" field if the given value is not nil.
func (atc *AffiliateTransactionCreate) SetNillableReferenceID(i *int) *AffiliateTransactionCreate {
	if i != nil {
		atc.SetReferenceID(*i)
	}
	return atc
}

// SetTransactionDate sets the "transaction_date" field.
func (atc *AffiliateTransactionCreate) SetTransactionDate(t time.Time) *AffiliateTransactionCreate {
	atc.mutation.SetTransactionDate(t)
	return atc
}

// SetNillableTransactionDate sets the "transaction_date" field if the given value is not nil.
func (atc *AffiliateTransactionCreate) SetNillableTransactionDate(t *time.Time) *AffiliateTransactionCreate {
	if t != nil {
		atc.SetTransactionDate(*t)
	}
	return atc
}

// Mutation returns the AffiliateTransactionMutation object of the builder.
func (atc *AffiliateTransactionCreate) Mutation() *AffiliateTransactionMutation {
	return atc.mutation
}

// Save creates the AffiliateTransaction in the database.
func (atc *AffiliateTransactionCreate) Save(ctx context.Context) (*AffiliateTransaction, error) {
	atc.defaults()
	return withHooks(ctx, atc.sqlSave, atc.mutation, atc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (atc *AffiliateTransactionCreate) SaveX(ctx context.Context) *AffiliateTransaction {
	v, err := atc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (atc *AffiliateTransactionCreate) Exec(ctx context.Context) error {
	_, err := atc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (atc *AffiliateTransactionCreate) ExecX(ctx context.Context) {
	if err := atc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (atc *AffiliateTransactionCreate) defaults() {
	if _, ok := atc.mutation.TransactionDate(); !ok {
		v := affiliatetransaction.DefaultTransactionDate()
		atc.mutation.SetTransactionDate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (atc *AffiliateTransactionCreate) check() error {
	if _, ok := atc.mutation.BalanceID(); !ok {
		return &ValidationError{Name: "balance_id", err: errors.New(`ent: missing required field "AffiliateTransaction.balance_id"`)}
	}
	if _, ok := atc.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "AffiliateTransaction.type"`)}
	}
	if v, ok := atc.mutation.GetType(); ok {
		if err := affiliatetransaction.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "AffiliateTransaction.type": %w`, err)}
		}
	}
	if _, ok := atc.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "AffiliateTransaction.amount"`)}
	}
	if _, ok := atc.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "AffiliateTransaction.description"`)}
	}
	if v, ok := atc.mutation.Description(); ok {
		if err := affiliatetransaction.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "AffiliateTransaction.description": %w`, err)}
		}
	}
	if _, ok := atc.mutation.TransactionDate(); !ok {
		return &ValidationError{Name: "transaction_date", err: errors.New(`ent: missing required field "AffiliateTransaction.transaction_date"`)}
	}
	return nil
}

func (atc *AffiliateTransactionCreate) sqlSave(ctx context.Context) (*AffiliateTransaction, error) {
	if err := atc.check(); err != nil {
		return nil, err
	}
	_node, _spec := atc.createSpec()
	if err := sqlgraph.CreateNode(ctx, atc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	atc.mutation.id = &_node.ID
	atc.mutation.done = true
	return _node, nil
}

func (atc *AffiliateTransactionCreate) createSpec() (*AffiliateTransaction, *sqlgraph.CreateSpec) {
	var (
		_node = &AffiliateTransaction{config: atc.config}
		_spec = sqlgraph.NewCreateSpec(affiliatetransaction.Table, sqlgraph.NewFieldSpec(affiliatetransaction.FieldID, field.TypeInt))
	)
	if value, ok := atc.mutation.BalanceID(); ok {
		_spec.SetField(affiliatetransaction.FieldBalanceID, field.TypeInt, value)
		_node.BalanceID = value
	}
	if value, ok := atc.mutation.GetType(); ok {
		_spec.SetField(affiliatetransaction.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := atc.mutation.Amount(); ok {
		_spec.SetField(affiliatetransaction.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := atc.mutation.Description(); ok {
		_spec.SetField(affiliatetransaction.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := atc.mutation.ReferenceID(); ok {
		_spec.SetField(affiliatetransaction.FieldReferenceID, field.TypeInt, value)
		_node.ReferenceID = value
	}
	if value, ok := atc.mutation.TransactionDate(); ok {
		_spec.SetField(affiliatetransaction.FieldTransactionDate, field.TypeTime, value)
		_node.TransactionDate = value
	}
	return _node, _spec
}

// AffiliateTransactionCreateBulk is the builder for creating many AffiliateTransaction entities in bulk.
type AffiliateTransactionCreateBulk struct {
	config
	err      error
	builders []*AffiliateTransactionCreate
}

// Save creates the AffiliateTransaction entities in the database.
func (atcb *AffiliateTransactionCreateBulk) Save(ctx context.Context) ([]*AffiliateTransaction, error) {
	if atcb.err != nil {
		return nil, atcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(atcb.builders))
	nodes := make([]*AffiliateTransaction, len(atcb.builders))
	mutators := make([]Mutator, len(atcb.builders))
	for i := range atcb.builders {
		func(i int, root context.Context) {
			builder := atcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AffiliateTransactionMutation)
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
					_, err = mutators[i+1].Mutate(root, atcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, atcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, atcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (atcb *AffiliateTransactionCreateBulk) SaveX(ctx context.Context) []*AffiliateTransaction {
	v, err := atcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (atcb *AffiliateTransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := atcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (atcb *AffiliateTransactionCreateBulk) ExecX(ctx context.Context) {
	if err := atcb.Exec(ctx); err != nil {
		panic(err)
	}
}
