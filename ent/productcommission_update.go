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
	"github.com/jordanlanch/affiliatedb/ent/productcommission"
)

// ProductCommissionUpdate is the builder for updating ProductCommission entities.
type ProductCommissionUpdate struct {
	config
	hooks    []Hook
	mutation *ProductCommissionMutation
}

// Where appends a list predicates to the ProductCommissionUpdate builder.
func (pcu *ProductCommissionUpdate) Where(ps ...predicate.ProductCommission) *ProductCommissionUpdate {
	pcu.mutation.Where(ps...)
	return pcu
}

// SetAffiliateID sets the "affiliate_id" field.
func (pcu *ProductCommissionUpdate) SetAffiliateID(i int) *ProductCommissionUpdate {
	pcu.mutation.ResetAffiliateID()
	pcu.mutation.SetAffiliateID(i)
	return pcu
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (pcu *ProductCommissionUpdate) SetNillableAffiliateID(i *int) *ProductCommissionUpdate {
	if i != nil {
		pcu.SetAffiliateID(*i)
	}
	return pcu
}

// AddAffiliateID adds i to the "affiliate_id" field.
func (pcu *ProductCommissionUpdate) AddAffiliateID(i int) *ProductCommissionUpdate {
	pcu.mutation.AddAffiliateID(i)
	return pcu
}

// SetProductID sets the "product_id" field.
func (pcu *ProductCommissionUpdate) SetProductID(i int) *ProductCommissionUpdate {
	pcu.mutation.ResetProductID()
	pcu.mutation.SetProductID(i)
	return pcu
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (pcu *ProductCommissionUpdate) SetNillableProductID(i *int) *ProductCommissionUpdate {
	if i != nil {
		pcu.SetProductID(*i)
	}
	return pcu
}

// AddProductID adds i to the "product_id" field.
func (pcu *ProductCommissionUpdate) AddProductID(i int) *ProductCommissionUpdate {
	pcu.mutation.AddProductID(i)
	return pcu
}

// SetCommissionType sets the "commission_type" field.
func (pcu *ProductCommissionUpdate) SetCommissionType(pt productcommission.CommissionType) *ProductCommissionUpdate {
	pcu.mutation.SetCommissionType(pt)
	return pcu
}

// SetNillableCommissionType sets the "commission_type" field if the given value is not nil.
func (pcu *ProductCommissionUpdate) SetNillableCommissionType(pt *productcommission.CommissionType) *ProductCommissionUpdate {
	if pt != nil {
		pcu.SetCommissionType(*pt)
	}
	return pcu
}

// SetCommissionValue sets the "commission_value" field.
func (pcu *ProductCommissionUpdate) SetCommissionValue(f float64) *ProductCommissionUpdate {
	pcu.mutation.ResetCommissionValue()
	pcu.mutation.SetCommissionValue(f)
	return pcu
}

// SetNillableCommissionValue sets the "commission_value" field if the given value is not nil.
func (pcu *ProductCommissionUpdate) SetNillableCommissionValue(f *float64) *ProductCommissionUpdate {
	if f != nil {
		pcu.SetCommissionValue(*f)
	}
	return pcu
}

// AddCommissionValue adds f to the "commission_value" field.
func (pcu *ProductCommissionUpdate) AddCommissionValue(f float64) *ProductCommissionUpdate {
	pcu.mutation.AddCommissionValue(f)
	return pcu
}

// SetStatus sets the "status" field.
func (pcu *ProductCommissionUpdate) SetStatus(pr productcommission.Status) *ProductCommissionUpdate {
	pcu.mutation.SetStatus(pr)
	return pcu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (pcu *ProductCommissionUpdate) SetNillableStatus(pr *productcommission.Status) *ProductCommissionUpdate {
	if pr != nil {
		pcu.SetStatus(*pr)
	}
	return pcu
}

// SetUpdatedAt sets the "updated_at" field.
func (pcu *ProductCommissionUpdate) SetUpdatedAt(t time.Time) *ProductCommissionUpdate {
	pcu.mutation.SetUpdatedAt(t)
	return pcu
}

// Mutation returns the ProductCommissionMutation object of the builder.
func (pcu *ProductCommissionUpdate) Mutation() *ProductCommissionMutation {
	return pcu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pcu *ProductCommissionUpdate) Save(ctx context.Context) (int, error) {
	pcu.defaults()
	return withHooks(ctx, pcu.sqlSave, pcu.mutation, pcu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pcu *ProductCommissionUpdate) SaveX(ctx context.Context) int {
	affected, err := pcu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pcu *ProductCommissionUpdate) Exec(ctx context.Context) error {
	_, err := pcu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcu *ProductCommissionUpdate) ExecX(ctx context.Context) {
	if err := pcu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pcu *ProductCommissionUpdate) defaults() {
	if _, ok := pcu.mutation.UpdatedAt(); !ok {
		v := productcommission.UpdateDefaultUpdatedAt()
		pcu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pcu *ProductCommissionUpdate) check() error {
	if v, ok := pcu.mutation.CommissionType(); ok {
		if err := productcommission.CommissionTypeValidator(v); err != nil {
			return &ValidationError{Name: "commission_type", err: fmt.Errorf(`ent: validator failed for field "ProductCommission.commission_type": %w`, err)}
		}
	}
	if v, ok := pcu.mutation.CommissionValue(); ok {
		if err := productcommission.CommissionValueValidator(v); err != nil {
			return &ValidationError{Name: "commission_value", err: fmt.Errorf(`ent: validator failed for field "ProductCommission.commission_value": %w`, err)}
		}
	}
	if v, ok := pcu.mutation.Status(); ok {
		if err := productcommission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProductCommission.status": %w`, err)}
		}
	}
	return nil
}

func (pcu *ProductCommissionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pcu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(productcommission.Table, productcommission.Columns, sqlgraph.NewFieldSpec(productcommission.FieldID, field.TypeInt))
	if ps := pcu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pcu.mutation.AffiliateID(); ok {
		_spec.SetField(productcommission.FieldAffiliateID, field.TypeInt, value)
	}
	if value, ok := pcu.mutation.AddedAffiliateID(); ok {
		_spec.AddField(productcommission.FieldAffiliateID, field.TypeInt, value)
	}
	if value, ok := pcu.mutation.ProductID(); ok {
		_spec.SetField(productcommission.FieldProductID, field.TypeInt, value)
	}
	if value, ok := pcu.mutation.AddedProductID(); ok {
		_spec.AddField(productcommission.FieldProductID, field.TypeInt, value)
	}
	if value, ok := pcu.mutation.CommissionType(); ok {
		_spec.SetField(productcommission.FieldCommissionType, field.TypeEnum, value)
	}
	if value, ok := pcu.mutation.CommissionValue(); ok {
		_spec.SetField(productcommission.FieldCommissionValue, field.TypeFloat64, value)
	}
	if value, ok := pcu.mutation.AddedCommissionValue(); ok {
		_spec.AddField(productcommission.FieldCommissionValue, field.TypeFloat64, value)
	}
	if value, ok := pcu.mutation.Status(); ok {
		_spec.SetField(productcommission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := pcu.mutation.UpdatedAt(); ok {
		_spec.SetField(productcommission.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pcu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{productcommission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pcu.mutation.done = true
	return n, nil
}

// ProductCommissionUpdateOne is the builder for updating a single ProductCommission entity.
type ProductCommissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProductCommissionMutation
}

// SetAffiliateID sets the "affiliate_id" field.
func (pcuo *ProductCommissionUpdateOne) SetAffiliateID(i int) *ProductCommissionUpdateOne {
	pcuo.mutation.ResetAffiliateID()
	pcuo.mutation.SetAffiliateID(i)
	return pcuo
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (pcuo *ProductCommissionUpdateOne) SetNillableAffiliateID(i *int) *ProductCommissionUpdateOne {
	if i != nil {
		pcuo.SetAffiliateID(*i)
	}
	return pcuo
}

// AddAffiliateID adds i to the "affiliate_id" field.
func (pcuo *ProductCommissionUpdateOne) AddAffiliateID(i int) *ProductCommissionUpdateOne {
	pcuo.mutation.AddAffiliateID(i)
	return pcuo
}

// SetProductID sets the "product_id" field.
func (pcuo *ProductCommissionUpdateOne) SetProductID(i int) *ProductCommissionUpdateOne {
	pcuo.mutation.ResetProductID()
	pcuo.mutation.SetProductID(i)
	return pcuo
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (pcuo *ProductCommissionUpdateOne) SetNillableProductID(i *int) *ProductCommissionUpdateOne {
	if i != nil {
		pcuo.SetProductID(*i)
	}
	return pcuo
}

// AddProductID adds i to the "product_id" field.
func (pcuo *ProductCommissionUpdateOne) AddProductID(i int) *ProductCommissionUpdateOne {
	pcuo.mutation.AddProductID(i)
	return pcuo
}

// SetCommissionType sets the "commission_type" field.
func (pcuo *ProductCommissionUpdateOne) SetCommissionType(pt productcommission.CommissionType) *ProductCommissionUpdateOne {
	pcuo.mutation.SetCommissionType(pt)
	return pcuo
}

// SetNillableCommissionType sets the "commission_type" field if the given value is not nil.
func (pcuo *ProductCommissionUpdateOne) SetNillableCommissionType(pt *productcommission.CommissionType) *ProductCommissionUpdateOne {
	if pt != nil {
		pcuo.SetCommissionType(*pt)
	}
	return pcuo
}

// SetCommissionValue sets the "commission_value" field.
func (pcuo *ProductCommissionUpdateOne) SetCommissionValue(f float64) *ProductCommissionUpdateOne {
	pcuo.mutation.ResetCommissionValue()
	pcuo.mutation.SetCommissionValue(f)
	return pcuo
}

// SetNillableCommissionValue sets the "commission_value" field if the given value is not nil.
func (pcuo *ProductCommissionUpdateOne) SetNillableCommissionValue(f *float64) *ProductCommissionUpdateOne {
	if f != nil {
		pcuo.SetCommissionValue(*f)
	}
	return pcuo
}

// AddCommissionValue adds f to the "commission_value" field.
func (pcuo *ProductCommissionUpdateOne) AddCommissionValue(f float64) *ProductCommissionUpdateOne {
	pcuo.mutation.AddCommissionValue(f)
	return pcuo
}

// SetStatus sets the "status" field.
func (pcuo *ProductCommissionUpdateOne) SetStatus(pr productcommission.Status) *ProductCommissionUpdateOne {
	pcuo.mutation.SetStatus(pr)
	return pcuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (pcuo *ProductCommissionUpdateOne) SetNillableStatus(pr *productcommission.Status) *ProductCommissionUpdateOne {
	if pr != nil {
		pcuo.SetStatus(*pr)
	}
	return pcuo
}

// SetUpdatedAt sets the "updated_at" field.
func (pcuo *ProductCommissionUpdateOne) SetUpdatedAt(t time.Time) *ProductCommissionUpdateOne {
	pcuo.mutation.SetUpdatedAt(t)
	return pcuo
}

// Mutation returns the ProductCommissionMutation object of the builder.
func (pcuo *ProductCommissionUpdateOne) Mutation() *ProductCommissionMutation {
	return pcuo.mutation
}

// Where appends a list predicates to the ProductCommissionUpdate builder.
func (pcuo *ProductCommissionUpdateOne) Where(ps ...predicate.ProductCommission) *ProductCommissionUpdateOne {
	pcuo.mutation.Where(ps...)
	return pcuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (pcuo *ProductCommissionUpdateOne) Select(field string, fields ...string) *ProductCommissionUpdateOne {
	pcuo.fields = append([]string{field}, fields...)
	return pcuo
}

// Save executes the query and returns the updated ProductCommission entity.
func (pcuo *ProductCommissionUpdateOne) Save(ctx context.Context) (*ProductCommission, error) {
	pcuo.defaults()
	return withHooks(ctx, pcuo.sqlSave, pcuo.mutation, pcuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pcuo *ProductCommissionUpdateOne) SaveX(ctx context.Context) *ProductCommission {
	node, err := pcuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (pcuo *ProductCommissionUpdateOne) Exec(ctx context.Context) error {
	_, err := pcuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcuo *ProductCommissionUpdateOne) ExecX(ctx context.Context) {
	if err := pcuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pcuo *ProductCommissionUpdateOne) defaults() {
	if _, ok := pcuo.mutation.UpdatedAt(); !ok {
		v := productcommission.UpdateDefaultUpdatedAt()
		pcuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pcuo *ProductCommissionUpdateOne) check() error {
	if v, ok := pcuo.mutation.CommissionType(); ok {
		if err := productcommission.CommissionTypeValidator(v); err != nil {
			return &ValidationError{Name: "commission_type", err: fmt.Errorf(`ent: validator failed for field "ProductCommission.commission_type": %w`, err)}
		}
	}
	if v, ok := pcuo.mutation.CommissionValue(); ok {
		if err := productcommission.CommissionValueValidator(v); err != nil {
			return &ValidationError{Name: "commission_value", err: fmt.Errorf(`ent: validator failed for field "ProductCommission.commission_value": %w`, err)}
		}
	}
	if v, ok := pcuo.mutation.Status(); ok {
		if err := productcommission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProductCommission.status": %w`, err)}
		}
	}
	return nil
}

func (pcuo *ProductCommissionUpdateOne) sqlSave(ctx context.Context) (_node *ProductCommission, err error) {
	if err := pcuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(productcommission.Table, productcommission.Columns, sqlgraph.NewFieldSpec(productcommission.FieldID, field.TypeInt))
	id, ok := pcuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProductCommission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := pcuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, productcommission.FieldID)
		for _, f := range fields {
			if !productcommission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != productcommission.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := pcuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pcuo.mutation.AffiliateID(); ok {
		_spec.SetField(productcommission.FieldAffiliateID, field.TypeInt, value)
	}
	if value, ok := pcuo.mutation.AddedAffiliateID(); ok {
		_spec.AddField(productcommission.FieldAffiliateID, field.TypeInt, value)
	}
	if value, ok := pcuo.mutation.ProductID(); ok {
		_spec.SetField(productcommission.FieldProductID, field.TypeInt, value)
	}
	if value, ok := pcuo.mutation.AddedProductID(); ok {
		_spec.AddField(productcommission.FieldProductID, field.TypeInt, value)
	}
	if value, ok := pcuo.mutation.CommissionType(); ok {
		_spec.SetField(productcommission.FieldCommissionType, field.TypeEnum, value)
	}
	if value, ok := pcuo.mutation.CommissionValue(); ok {
		_spec.SetField(productcommission.FieldCommissionValue, field.TypeFloat64, value)
	}
	if value, ok := pcuo.mutation.AddedCommissionValue(); ok {
		_spec.AddField(productcommission.FieldCommissionValue, field.TypeFloat64, value)
	}
	if value, ok := pcuo.mutation.Status(); ok {
		_spec.SetField(productcommission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := pcuo.mutation.UpdatedAt(); ok {
		_spec.SetField(productcommission.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProductCommission{config: pcuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, pcuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{productcommission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	pcuo.mutation.done = true
	return _node, nil
}
