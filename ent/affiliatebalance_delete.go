// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/affiliatedb/ent/affiliatebalance"
	"github.com/jordanlanch/affiliatedb/ent/predicate"
)

// AffiliateBalanceDelete is the builder for deleting a AffiliateBalance entity.
type AffiliateBalanceDelete struct {
	config
	hooks    []Hook
	mutation *AffiliateBalanceMutation
}

// Where appends a list predicates to the AffiliateBalanceDelete builder.
func (abd *AffiliateBalanceDelete) Where(ps ...predicate.AffiliateBalance) *AffiliateBalanceDelete {
	abd.mutation.Where(ps...)
	return abd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (abd *AffiliateBalanceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, abd.sqlExec, abd.mutation, abd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (abd *AffiliateBalanceDelete) ExecX(ctx context.Context) int {
	n, err := abd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (abd *AffiliateBalanceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(affiliatebalance.Table, sqlgraph.NewFieldSpec(affiliatebalance.FieldID, field.TypeInt))
	if ps := abd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, abd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	abd.mutation.done = true
	return affected, err
}

// AffiliateBalanceDeleteOne is the builder for deleting a single AffiliateBalance entity.
type AffiliateBalanceDeleteOne struct {
	abd *AffiliateBalanceDelete
}

// Where appends a list predicates to the AffiliateBalanceDelete builder.
func (abdo *AffiliateBalanceDeleteOne) Where(ps ...predicate.AffiliateBalance) *AffiliateBalanceDeleteOne {
	abdo.abd.mutation.Where(ps...)
	return abdo
}

// Exec executes the deletion query.
func (abdo *AffiliateBalanceDeleteOne) Exec(ctx context.Context) error {
	n, err := abdo.abd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{affiliatebalance.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (abdo *AffiliateBalanceDeleteOne) ExecX(ctx context.Context) {
	if err := abdo.Exec(ctx); err != nil {
		panic(err)
	}
}
