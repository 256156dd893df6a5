// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/affiliatedb/ent/predicate"
	"github.com/jordanlanch/affiliatedb/ent/withdrawalrequest"
)

// WithdrawalRequestDelete is the builder for deleting a WithdrawalRequest entity.
type WithdrawalRequestDelete struct {
	config
	hooks    []Hook
	mutation *WithdrawalRequestMutation
}

// Where appends a list predicates to the WithdrawalRequestDelete builder.
func (wrd *WithdrawalRequestDelete) Where(ps ...predicate.WithdrawalRequest) *WithdrawalRequestDelete {
	wrd.mutation.Where(ps...)
	return wrd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (wrd *WithdrawalRequestDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, wrd.sqlExec, wrd.mutation, wrd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (wrd *WithdrawalRequestDelete) ExecX(ctx context.Context) int {
	n, err := wrd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (wrd *WithdrawalRequestDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(withdrawalrequest.Table, sqlgraph.NewFieldSpec(withdrawalrequest.FieldID, field.TypeInt))
	if ps := wrd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, wrd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	wrd.mutation.done = true
	return affected, err
}

// WithdrawalRequestDeleteOne is the builder for deleting a single WithdrawalRequest entity.
type WithdrawalRequestDeleteOne struct {
	wrd *WithdrawalRequestDelete
}

// Where appends a list predicates to the WithdrawalRequestDelete builder.
func (wrdo *WithdrawalRequestDeleteOne) Where(ps ...predicate.WithdrawalRequest) *WithdrawalRequestDeleteOne {
	wrdo.wrd.mutation.Where(ps...)
	return wrdo
}

// Exec executes the deletion query.
func (wrdo *WithdrawalRequestDeleteOne) Exec(ctx context.Context) error {
	n, err := wrdo.wrd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{withdrawalrequest.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (wrdo *WithdrawalRequestDeleteOne) ExecX(ctx context.Context) {
	if err := wrdo.Exec(ctx); err != nil {
		panic(err)
	}
}
