// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/affiliatedb/ent/affiliate"
)

// AffiliateCreate is the builder for creating a Affiliate entity.
type AffiliateCreate struct {
	config
	mutation *AffiliateMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (ac *AffiliateCreate) SetUserID(i int) *AffiliateCreate {
	ac.mutation.SetUserID(i)
	return ac
}

// SetReferralCode sets the "referral_code" field.
func (ac *AffiliateCreate) SetReferralCode(s string) *AffiliateCreate {
	ac.mutation.SetReferralCode(s)
	return ac
}

// SetCommissionRate sets the "commission_rate" field.
func (ac *AffiliateCreate) SetCommissionRate(f float64) *AffiliateCreate {
	ac.mutation.SetCommissionRate(f)
	return ac
}

// SetNillableCommissionRate sets the "commission_rate" field if the given value is not nil.
func (ac *AffiliateCreate) SetNillableCommissionRate(f *float64) *AffiliateCreate {
	if f != nil {
		ac.SetCommissionRate(*f)
	}
	return ac
}

// SetIsGlobal sets the "is_global" field.
func (ac *AffiliateCreate) SetIsGlobal(b bool) *AffiliateCreate {
	ac.mutation.SetIsGlobal(b)
	return ac
}

// SetNillableIsGlobal sets the "is_global" field if the given value is not nil.
func (ac *AffiliateCreate) SetNillableIsGlobal(b *bool) *AffiliateCreate {
	if b != nil {
		ac.SetIsGlobal(*b)
	}
	return ac
}

// SetRequestStatus sets the "request_status" field.
func (ac *AffiliateCreate) SetRequestStatus(as affiliate.RequestStatus) *AffiliateCreate {
	ac.mutation.SetRequestStatus(as)
	return ac
}

// SetNillableRequestStatus sets the "request_status" field if the given value is not nil.
func (ac *AffiliateCreate) SetNillableRequestStatus(as *affiliate.RequestStatus) *AffiliateCreate {
	if as != nil {
		ac.SetRequestStatus(*as)
	}
	return ac
}

// SetReason sets the "reason" field.
func (ac *AffiliateCreate) SetReason(s string) *AffiliateCreate {
	ac.mutation.SetReason(s)
	return ac
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (ac *AffiliateCreate) SetNillableReason(s *string) *AffiliateCreate {
	if s != nil {
		ac.SetReason(*s)
	}
	return ac
}

// SetCreatedAt sets the "created_at" field.
func (ac *AffiliateCreate) SetCreatedAt(t time.Time) *AffiliateCreate {
	ac.mutation.SetCreatedAt(t)
	return ac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ac *AffiliateCreate) SetNillableCreatedAt(t *time.Time) *AffiliateCreate {
	if t != nil {
		ac.SetCreatedAt(*t)
	}
	return ac
}

// SetUpdatedAt sets the "updated_at" field.
func (ac *AffiliateCreate) SetUpdatedAt(t time.Time) *AffiliateCreate {
	ac.mutation.SetUpdatedAt(t)
	return ac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ac *AffiliateCreate) SetNillableUpdatedAt(t *time.Time) *AffiliateCreate {
	if t != nil {
		ac.SetUpdatedAt(*t)
	}
	return ac
}

// Mutation returns the AffiliateMutation object of the builder.
func (ac *AffiliateCreate) Mutation() *AffiliateMutation {
	return ac.mutation
}

// Save creates the Affiliate in the database.
func (ac *AffiliateCreate) Save(ctx context.Context) (*Affiliate, error) {
	ac.defaults()
	return withHooks(ctx, ac.sqlSave, ac.mutation, ac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ac *AffiliateCreate) SaveX(ctx context.Context) *Affiliate {
	v, err := ac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ac *AffiliateCreate) Exec(ctx context.Context) error {
	_, err := ac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ac *AffiliateCreate) ExecX(ctx context.Context) {
	if err := ac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ac *AffiliateCreate) defaults() {
	if _, ok := ac.mutation.CommissionRate(); !ok {
		v := affiliate.DefaultCommissionRate
		ac.mutation.SetCommissionRate(v)
	}
	if _, ok := ac.mutation.IsGlobal(); !ok {
		v := affiliate.DefaultIsGlobal
		ac.mutation.SetIsGlobal(v)
	}
	if _, ok := ac.mutation.RequestStatus(); !ok {
		v := affiliate.DefaultRequestStatus
		ac.mutation.SetRequestStatus(v)
	}
	if _, ok := ac.mutation.CreatedAt(); !ok {
		v := affiliate.DefaultCreatedAt()
		ac.mutation.SetCreatedAt(v)
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		v := affiliate.DefaultUpdatedAt()
		ac.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ac *AffiliateCreate) check() error {
	if _, ok := ac.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Affiliate.user_id"`)}
	}
	if _, ok := ac.mutation.ReferralCode(); !ok {
		return &ValidationError{Name: "referral_code", err: errors.New(`ent: missing required field "Affiliate.referral_code"`)}
	}
	if v, ok := ac.mutation.ReferralCode(); ok {
		if err := affiliate.ReferralCodeValidator(v); err != nil {
			return &ValidationError{Name: "referral_code", err: fmt.Errorf(`ent: validator failed for field "Affiliate.referral_code": %w`, err)}
		}
	}
	if _, ok := ac.mutation.CommissionRate(); !ok {
		return &ValidationError{Name: "commission_rate", err: errors.New(`ent: missing required field "Affiliate.commission_rate"`)}
	}
	if _, ok := ac.mutation.IsGlobal(); !ok {
		return &ValidationError{Name: "is_global", err: errors.New(`ent: missing required field "Affiliate.is_global"`)}
	}
	if _, ok := ac.mutation.RequestStatus(); !ok {
		return &ValidationError{Name: "request_status", err: errors.New(`ent: missing required field "Affiliate.request_status"`)}
	}
	if v, ok := ac.mutation.RequestStatus(); ok {
		if err := affiliate.RequestStatusValidator(v); err != nil {
			return &ValidationError{Name: "request_status", err: fmt.Errorf(`ent: validator failed for field "Affiliate.request_status": %w`, err)}
		}
	}
	if _, ok := ac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Affiliate.created_at"`)}
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Affiliate.updated_at"`)}
	}
	return nil
}

func (ac *AffiliateCreate) sqlSave(ctx context.Context) (*Affiliate, error) {
	if err := ac.check(); err != nil {
		return nil, err
	}
	_node, _spec := ac.createSpec()
	if err := sqlgraph.CreateNode(ctx, ac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ac.mutation.id = &_node.ID
	ac.mutation.done = true
	return _node, nil
}

func (ac *AffiliateCreate) createSpec() (*Affiliate, *sqlgraph.CreateSpec) {
	var (
		_node = &Affiliate{config: ac.config}
		_spec = sqlgraph.NewCreateSpec(affiliate.Table, sqlgraph.NewFieldSpec(affiliate.FieldID, field.TypeInt))
	)
	if value, ok := ac.mutation.UserID(); ok {
		_spec.SetField(affiliate.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := ac.mutation.ReferralCode(); ok {
		_spec.SetField(affiliate.FieldReferralCode, field.TypeString, value)
		_node.ReferralCode = value
	}
	if value, ok := ac.mutation.CommissionRate(); ok {
		_spec.SetField(affiliate.FieldCommissionRate, field.TypeFloat64, value)
		_node.CommissionRate = value
	}
	if value, ok := ac.mutation.IsGlobal(); ok {
		_spec.SetField(affiliate.FieldIsGlobal, field.TypeBool, value)
		_node.IsGlobal = value
	}
	if value, ok := ac.mutation.RequestStatus(); ok {
		_spec.SetField(affiliate.FieldRequestStatus, field.TypeEnum, value)
		_node.RequestStatus = value
	}
	if value, ok := ac.mutation.Reason(); ok {
		_spec.SetField(affiliate.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := ac.mutation.CreatedAt(); ok {
		_spec.SetField(affiliate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ac.mutation.UpdatedAt(); ok {
		_spec.SetField(affiliate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AffiliateCreateBulk is the builder for creating many Affiliate entities in bulk.
type AffiliateCreateBulk struct {
	config
	err      error
	builders []*AffiliateCreate
}

// Save creates the Affiliate entities in the database.
func (acb *AffiliateCreateBulk) Save(ctx context.Context) ([]*Affiliate, error) {
	if acb.err != nil {
		return nil, acb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(acb.builders))
	nodes := make([]*Affiliate, len(acb.builders))
	mutators := make([]Mutator, len(acb.builders))
	for i := range acb.builders {
		func(i int, root context.Context) {
			builder := acb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AffiliateMutation)
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
					_, err = mutators[i+1].Mutate(root, acb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, acb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, acb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (acb *AffiliateCreateBulk) SaveX(ctx context.Context) []*Affiliate {
	v, err := acb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (acb *AffiliateCreateBulk) Exec(ctx context.Context) error {
	_, err := acb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (acb *AffiliateCreateBulk) ExecX(ctx context.Context) {
	if err := acb.Exec(ctx); err != nil {
		panic(err)
	}
}
