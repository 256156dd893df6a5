// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/affiliatedb/ent/sale"
)

// SaleCreate is the builder for creating a Sale entity.
type SaleCreate struct {
	config
	mutation *SaleMutation
	hooks    []Hook
}

// SetAffiliateID sets the "affiliate_id" field.
func (sc *SaleCreate) SetAffiliateID(i int) *SaleCreate {
	sc.mutation.SetAffiliateID(i)
	return sc
}

// SetOrderID sets the "order_id" field.
func (sc *SaleCreate) SetOrderID(i int) *SaleCreate {
	sc.mutation.SetOrderID(i)
	return sc
}

// SetCommission sets the "commission" field.
func (sc *SaleCreate) SetCommission(f float64) *SaleCreate {
	sc.mutation.SetCommission(f)
	return sc
}

// SetCreatedAt sets the "created_at" field.
func (sc *SaleCreate) SetCreatedAt(t time.Time) *SaleCreate {
	sc.mutation.SetCreatedAt(t)
	return sc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (sc *SaleCreate) SetNillableCreatedAt(t *time.Time) *SaleCreate {
	if t != nil {
		sc.SetCreatedAt(*t)
	}
	return sc
}

// Mutation returns the SaleMutation object of the builder.
func (sc *SaleCreate) Mutation() *SaleMutation {
	return sc.mutation
}

// Save creates the Sale in the database.
func (sc *SaleCreate) Save(ctx context.Context) (*Sale, error) {
	sc.defaults()
	return withHooks(ctx, sc.sqlSave, sc.mutation, sc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sc *SaleCreate) SaveX(ctx context.Context) *Sale {
	v, err := sc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sc *SaleCreate) Exec(ctx context.Context) error {
	_, err := sc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sc *SaleCreate) ExecX(ctx context.Context) {
	if err := sc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sc *SaleCreate) defaults() {
	if _, ok := sc.mutation.CreatedAt(); !ok {
		v := sale.DefaultCreatedAt()
		sc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sc *SaleCreate) check() error {
	if _, ok := sc.mutation.AffiliateID(); !ok {
		return &ValidationError{Name: "affiliate_id", err: errors.New(`ent: missing required field "Sale.affiliate_id"`)}
	}
	if _, ok := sc.mutation.OrderID(); !ok {
		return &ValidationError{Name: "order_id", err: errors.New(`ent: missing required field "Sale.order_id"`)}
	}
	if _, ok := sc.mutation.Commission(); !ok {
		return &ValidationError{Name: "commission", err: errors.New(`ent: missing required field "Sale.commission"`)}
	}
	if v, ok := sc.mutation.Commission(); ok {
		if err := sale.CommissionValidator(v); err != nil {
			return &ValidationError{Name: "commission", err: fmt.Errorf(`ent: validator failed for field "Sale.commission": %w`, err)}
		}
	}
	if _, ok := sc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Sale.created_at"`)}
	}
	return nil
}

func (sc *SaleCreate) sqlSave(ctx context.Context) (*Sale, error) {
	if err := sc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	sc.mutation.id = &_node.ID
	sc.mutation.done = true
	return _node, nil
}

func (sc *SaleCreate) createSpec() (*Sale, *sqlgraph.CreateSpec) {
	var (
		_node = &Sale{config: sc.config}
		_spec = sqlgraph.NewCreateSpec(sale.Table, sqlgraph.NewFieldSpec(sale.FieldID, field.TypeInt))
	)
	if value, ok := sc.mutation.AffiliateID(); ok {
		_spec.SetField(sale.FieldAffiliateID, field.TypeInt, value)
		_node.AffiliateID = value
	}
	if value, ok := sc.mutation.OrderID(); ok {
		_spec.SetField(sale.FieldOrderID, field.TypeInt, value)
		_node.OrderID = value
	}
	if value, ok := sc.mutation.Commission(); ok {
		_spec.SetField(sale.FieldCommission, field.TypeFloat64, value)
		_node.Commission = value
	}
	if value, ok := sc.mutation.CreatedAt(); ok {
		_spec.SetField(sale.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SaleCreateBulk is the builder for creating many Sale entities in bulk.
type SaleCreateBulk struct {
	config
	err      error
	builders []*SaleCreate
}

// Save creates the Sale entities in the database.
func (scb *SaleCreateBulk) Save(ctx context.Context) ([]*Sale, error) {
	if scb.err != nil {
		return nil, scb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(scb.builders))
	nodes := make([]*Sale, len(scb.builders))
	mutators := make([]Mutator, len(scb.builders))
	for i := range scb.builders {
		func(i int, root context.Context) {
			builder := scb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SaleMutation)
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
					_, err = mutators[i+1].Mutate(root, scb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, scb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, scb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (scb *SaleCreateBulk) SaveX(ctx context.Context) []*Sale {
	v, err := scb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (scb *SaleCreateBulk) Exec(ctx context.Context) error {
	_, err := scb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scb *SaleCreateBulk) ExecX(ctx context.Context) {
	if err := scb.Exec(ctx); err != nil {
		panic(err)
	}
}
