// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/affiliatedb/ent/affiliatetransaction"
	"github.com/jordanlanch/affiliatedb/ent/predicate"
)

// AffiliateTransactionDelete is the builder for deleting a AffiliateTransaction entity.
type AffiliateTransactionDelete struct {
	config
	hooks    []Hook
	mutation *AffiliateTransactionMutation
}

// Where appends a list predicates to the AffiliateTransactionDelete builder.
func (atd *AffiliateTransactionDelete) Where(ps ...predicate.AffiliateTransaction) *AffiliateTransactionDelete {
	atd.mutation.Where(ps...)
	return atd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (atd *AffiliateTransactionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, atd.sqlExec, atd.mutation, atd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (atd *AffiliateTransactionDelete) ExecX(ctx context.Context) int {
	n, err := atd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (atd *AffiliateTransactionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(affiliatetransaction.Table, sqlgraph.NewFieldSpec(affiliatetransaction.FieldID, field.TypeInt))
	if ps := atd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, atd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	atd.mutation.done = true
	return affected, err
}

// AffiliateTransactionDeleteOne is the builder for deleting a single AffiliateTransaction entity.
type AffiliateTransactionDeleteOne struct {
	atd *AffiliateTransactionDelete
}

// Where appends a list predicates to the AffiliateTransactionDelete builder.
func (atdo *AffiliateTransactionDeleteOne) Where(ps ...predicate.AffiliateTransaction) *AffiliateTransactionDeleteOne {
	atdo.atd.mutation.Where(ps...)
	return atdo
}

// Exec executes the deletion query.
func (atdo *AffiliateTransactionDeleteOne) Exec(ctx context.Context) error {
	n, err := atdo.atd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{affiliatetransaction.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (atdo *AffiliateTransactionDeleteOne) ExecX(ctx context.Context) {
	if err := atdo.Exec(ctx); err != nil {
		panic(err)
	}
}
