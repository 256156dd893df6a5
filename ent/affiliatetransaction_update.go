// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/affiliatedb/ent/affiliatetransaction"
	"github.com/jordanlanch/affiliatedb/ent/predicate"
)

// AffiliateTransactionUpdate is the builder for updating AffiliateTransaction entities.
type AffiliateTransactionUpdate struct {
	config
	hooks    []Hook
	mutation *AffiliateTransactionMutation
}

// Where appends a list predicates to the AffiliateTransactionUpdate builder.
func (atu *AffiliateTransactionUpdate) Where(ps ...predicate.AffiliateTransaction) *AffiliateTransactionUpdate {
	atu.mutation.Where(ps...)
	return atu
}

// Mutation returns the AffiliateTransactionMutation object of the builder.
func (atu *AffiliateTransactionUpdate) Mutation() *AffiliateTransactionMutation {
	return atu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (atu *AffiliateTransactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, atu.sqlSave, atu.mutation, atu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (atu *AffiliateTransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := atu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (atu *AffiliateTransactionUpdate) Exec(ctx context.Context) error {
	_, err := atu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (atu *AffiliateTransactionUpdate) ExecX(ctx context.Context) {
	if err := atu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (atu *AffiliateTransactionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(affiliatetransaction.Table, affiliatetransaction.Columns, sqlgraph.NewFieldSpec(affiliatetransaction.FieldID, field.TypeInt))
	if ps := atu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if atu.mutation.ReferenceIDCleared() {
		_spec.ClearField(affiliatetransaction.FieldReferenceID, field.TypeInt)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, atu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{affiliatetransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	atu.mutation.done = true
	return n, nil
}

// AffiliateTransactionUpdateOne is the builder for updating a single AffiliateTransaction entity.
type AffiliateTransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AffiliateTransactionMutation
}

// Mutation returns the AffiliateTransactionMutation object of the builder.
func (atuo *AffiliateTransactionUpdateOne) Mutation() *AffiliateTransactionMutation {
	return atuo.mutation
}

// Where appends a list predicates to the AffiliateTransactionUpdate builder.
func (atuo *AffiliateTransactionUpdateOne) Where(ps ...predicate.AffiliateTransaction) *AffiliateTransactionUpdateOne {
	atuo.mutation.Where(ps...)
	return atuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (atuo *AffiliateTransactionUpdateOne) Select(field string, fields ...string) *AffiliateTransactionUpdateOne {
	atuo.fields = append([]string{field}, fields...)
	return atuo
}

// Save executes the query and returns the updated AffiliateTransaction entity.
func (atuo *AffiliateTransactionUpdateOne) Save(ctx context.Context) (*AffiliateTransaction, error) {
	return withHooks(ctx, atuo.sqlSave, atuo.mutation, atuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (atuo *AffiliateTransactionUpdateOne) SaveX(ctx context.Context) *AffiliateTransaction {
	node, err := atuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (atuo *AffiliateTransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := atuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (atuo *AffiliateTransactionUpdateOne) ExecX(ctx context.Context) {
	if err := atuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (atuo *AffiliateTransactionUpdateOne) sqlSave(ctx context.Context) (_node *AffiliateTransaction, err error) {
	_spec := sqlgraph.NewUpdateSpec(affiliatetransaction.Table, affiliatetransaction.Columns, sqlgraph.NewFieldSpec(affiliatetransaction.FieldID, field.TypeInt))
	id, ok := atuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AffiliateTransaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := atuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, affiliatetransaction.FieldID)
		for _, f := range fields {
			if !affiliatetransaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != affiliatetransaction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := atuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if atuo.mutation.ReferenceIDCleared() {
		_spec.ClearField(affiliatetransaction.FieldReferenceID, field.TypeInt)
	}
	_node = &AffiliateTransaction{config: atuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, atuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{affiliatetransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	atuo.mutation.done = true
	return _node, nil
}
