// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/affiliatedb/ent/productcommission"
)

// ProductCommissionCreate is the builder for creating a ProductCommission entity.
type ProductCommissionCreate struct {
	config
	mutation *ProductCommissionMutation
	hooks    []Hook
}

// SetAffiliateID sets the "affiliate_id" field.
func (pcc *ProductCommissionCreate) SetAffiliateID(i int) *ProductCommissionCreate {
	pcc.mutation.SetAffiliateID(i)
	return pcc
}

// SetProductID sets the "product_id" field.
func (pcc *ProductCommissionCreate) SetProductID(i int) *ProductCommissionCreate {
	pcc.mutation.SetProductID(i)
	return pcc
}

// SetCommissionType sets the "commission_type" field.
func (pcc *ProductCommissionCreate) SetCommissionType(pt productcommission.CommissionType) *ProductCommissionCreate {
	pcc.mutation.SetCommissionType(pt)
	return pcc
}

// SetCommissionValue sets the "commission_value" field.
func (pcc *ProductCommissionCreate) SetCommissionValue(f float64) *ProductCommissionCreate {
	pcc.mutation.SetCommissionValue(f)
	return pcc
}

// SetStatus sets the "status" field.
func (pcc *ProductCommissionCreate) SetStatus(pr productcommission.Status) *ProductCommissionCreate {
	pcc.mutation.SetStatus(pr)
	return pcc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (pcc *ProductCommissionCreate) SetNillableStatus(pr *productcommission.Status) *ProductCommissionCreate {
	if pr != nil {
		pcc.SetStatus(*pr)
	}
	return pcc
}

// SetCreatedAt sets the "created_at" field.
func (pcc *ProductCommissionCreate) SetCreatedAt(t time.Time) *ProductCommissionCreate {
	pcc.mutation.SetCreatedAt(t)
	return pcc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (pcc *ProductCommissionCreate) SetNillableCreatedAt(t *time.Time) *ProductCommissionCreate {
	if t != nil {
		pcc.SetCreatedAt(*t)
	}
	return pcc
}

// SetUpdatedAt sets the "updated_at" field.
func (pcc *ProductCommissionCreate) SetUpdatedAt(t time.Time) *ProductCommissionCreate {
	pcc.mutation.SetUpdatedAt(t)
	return pcc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (pcc *ProductCommissionCreate) SetNillableUpdatedAt(t *time.Time) *ProductCommissionCreate {
	if t != nil {
		pcc.SetUpdatedAt(*t)
	}
	return pcc
}

// Mutation returns the ProductCommissionMutation object of the builder.
func (pcc *ProductCommissionCreate) Mutation() *ProductCommissionMutation {
	return pcc.mutation
}

// Save creates the ProductCommission in the database.
func (pcc *ProductCommissionCreate) Save(ctx context.Context) (*ProductCommission, error) {
	pcc.defaults()
	return withHooks(ctx, pcc.sqlSave, pcc.mutation, pcc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pcc *ProductCommissionCreate) SaveX(ctx context.Context) *ProductCommission {
	v, err := pcc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pcc *ProductCommissionCreate) Exec(ctx context.Context) error {
	_, err := pcc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcc *ProductCommissionCreate) ExecX(ctx context.Context) {
	if err := pcc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pcc *ProductCommissionCreate) defaults() {
	if _, ok := pcc.mutation.Status(); !ok {
		v := productcommission.DefaultStatus
		pcc.mutation.SetStatus(v)
	}
	if _, ok := pcc.mutation.CreatedAt(); !ok {
		v := productcommission.DefaultCreatedAt()
		pcc.mutation.SetCreatedAt(v)
	}
	if _, ok := pcc.mutation.UpdatedAt(); !ok {
		v := productcommission.DefaultUpdatedAt()
		pcc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pcc *ProductCommissionCreate) check() error {
	if _, ok := pcc.mutation.AffiliateID(); !ok {
		return &ValidationError{Name: "affiliate_id", err: errors.New(`ent: missing required field "ProductCommission.affiliate_id"`)}
	}
	if _, ok := pcc.mutation.ProductID(); !ok {
		return &ValidationError{Name: "product_id", err: errors.New(`ent: missing required field "ProductCommission.product_id"`)}
	}
	if _, ok := pcc.mutation.CommissionType(); !ok {
		return &ValidationError{Name: "commission_type", err: errors.New(`ent: missing required field "ProductCommission.commission_type"`)}
	}
	if v, ok := pcc.mutation.CommissionType(); ok {
		if err := productcommission.CommissionTypeValidator(v); err != nil {
			return &ValidationError{Name: "commission_type", err: fmt.Errorf(`ent: validator failed for field "ProductCommission.commission_type": %w`, err)}
		}
	}
	if _, ok := pcc.mutation.CommissionValue(); !ok {
		return &ValidationError{Name: "commission_value", err: errors.New(`ent: missing required field "ProductCommission.commission_value"`)}
	}
	if v, ok := pcc.mutation.CommissionValue(); ok {
		if err := productcommission.CommissionValueValidator(v); err != nil {
			return &ValidationError{Name: "commission_value", err: fmt.Errorf(`ent: validator failed for field "ProductCommission.commission_value": %w`, err)}
		}
	}
	if _, ok := pcc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProductCommission.status"`)}
	}
	if v, ok := pcc.mutation.Status(); ok {
		if err := productcommission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProductCommission.status": %w`, err)}
		}
	}
	if _, ok := pcc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProductCommission.created_at"`)}
	}
	if _, ok := pcc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProductCommission.updated_at"`)}
	}
	return nil
}

func (pcc *ProductCommissionCreate) sqlSave(ctx context.Context) (*ProductCommission, error) {
	if err := pcc.check(); err != nil {
		return nil, err
	}
	_node, _spec := pcc.createSpec()
	if err := sqlgraph.CreateNode(ctx, pcc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	pcc.mutation.id = &_node.ID
	pcc.mutation.done = true
	return _node, nil
}

func (pcc *ProductCommissionCreate) createSpec() (*ProductCommission, *sqlgraph.CreateSpec) {
	var (
		_node = &ProductCommission{config: pcc.config}
		_spec = sqlgraph.NewCreateSpec(productcommission.Table, sqlgraph.NewFieldSpec(productcommission.FieldID, field.TypeInt))
	)
	if value, ok := pcc.mutation.AffiliateID(); ok {
		_spec.SetField(productcommission.FieldAffiliateID, field.TypeInt, value)
		_node.AffiliateID = value
	}
	if value, ok := pcc.mutation.ProductID(); ok {
		_spec.SetField(productcommission.FieldProductID, field.TypeInt, value)
		_node.ProductID = value
	}
	if value, ok := pcc.mutation.CommissionType(); ok {
		_spec.SetField(productcommission.FieldCommissionType, field.TypeEnum, value)
		_node.CommissionType = value
	}
	if value, ok := pcc.mutation.CommissionValue(); ok {
		_spec.SetField(productcommission.FieldCommissionValue, field.TypeFloat64, value)
		_node.CommissionValue = value
	}
	if value, ok := pcc.mutation.Status(); ok {
		_spec.SetField(productcommission.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := pcc.mutation.CreatedAt(); ok {
		_spec.SetField(productcommission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := pcc.mutation.UpdatedAt(); ok {
		_spec.SetField(productcommission.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProductCommissionCreateBulk is the builder for creating many ProductCommission entities in bulk.
type ProductCommissionCreateBulk struct {
	config
	err      error
	builders []*ProductCommissionCreate
}

// Save creates the ProductCommission entities in the database.
func (pccb *ProductCommissionCreateBulk) Save(ctx context.Context) ([]*ProductCommission, error) {
	if pccb.err != nil {
		return nil, pccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pccb.builders))
	nodes := make([]*ProductCommission, len(pccb.builders))
	mutators := make([]Mutator, len(pccb.builders))
	for i := range pccb.builders {
		func(i int, root context.Context) {
			builder := pccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProductCommissionMutation)
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
					_, err = mutators[i+1].Mutate(root, pccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pccb *ProductCommissionCreateBulk) SaveX(ctx context.Context) []*ProductCommission {
	v, err := pccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pccb *ProductCommissionCreateBulk) Exec(ctx context.Context) error {
	_, err := pccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pccb *ProductCommissionCreateBulk) ExecX(ctx context.Context) {
	if err := pccb.Exec(ctx); err != nil {
		panic(err)
	}
}
