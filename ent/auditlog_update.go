// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/affiliatedb/ent/auditlog"
	"github.com/jordanlanch/affiliatedb/ent/predicate"
)

// AuditLogUpdate is the builder for updating AuditLog entities.
type AuditLogUpdate struct {
	config
	hooks    []Hook
	mutation *AuditLogMutation
}

// Where appends a list predicates to the AuditLogUpdate builder.
func (alu *AuditLogUpdate) Where(ps ...predicate.AuditLog) *AuditLogUpdate {
	alu.mutation.Where(ps...)
	return alu
}

// SetUserID sets the "user_id" field.
func (alu *AuditLogUpdate) SetUserID(i int) *AuditLogUpdate {
	alu.mutation.ResetUserID()
	alu.mutation.SetUserID(i)
	return alu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (alu *AuditLogUpdate) SetNillableUserID(i *int) *AuditLogUpdate {
	if i != nil {
		alu.SetUserID(*i)
	}
	return alu
}

// AddUserID adds i to the "user_id" field.
func (alu *AuditLogUpdate) AddUserID(i int) *AuditLogUpdate {
	alu.mutation.AddUserID(i)
	return alu
}

// ClearUserID clears the value of the "user_id" field.
func (alu *AuditLogUpdate) ClearUserID() *AuditLogUpdate {
	alu.mutation.ClearUserID()
	return alu
}

// SetAction sets the "action" field.
func (alu *AuditLogUpdate) SetAction(a auditlog.Action) *AuditLogUpdate {
	alu.mutation.SetAction(a)
	return alu
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (alu *AuditLogUpdate) SetNillableAction(a *auditlog.Action) *AuditLogUpdate {
	if a != nil {
		alu.SetAction(*a)
	}
	return alu
}

// SetResourceType sets the "resource_type" field.
func (alu *AuditLogUpdate) SetResourceType(s string) *AuditLogUpdate {
	alu.mutation.SetResourceType(s)
	return alu
}

// SetNillableResourceType sets the "resource_type" field if the given value is not nil.
func (alu *AuditLogUpdate) SetNillableResourceType(s *string) *AuditLogUpdate {
	if s != nil {
		alu.SetResourceType(*s)
	}
	return alu
}

// ClearResourceType clears the value of the "resource_type" field.
func (alu *AuditLogUpdate) ClearResourceType() *AuditLogUpdate {
	alu.mutation.ClearResourceType()
	return alu
}

// SetResourceID sets the "resource_id" field.
func (alu *AuditLogUpdate) SetResourceID(s string) *AuditLogUpdate {
	alu.mutation.SetResourceID(s)
	return alu
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (alu *AuditLogUpdate) SetNillableResourceID(s *string) *AuditLogUpdate {
	if s != nil {
		alu.SetResourceID(*s)
	}
	return alu
}

// ClearResourceID clears the value of the "resource_id" field.
func (alu *AuditLogUpdate) ClearResourceID() *AuditLogUpdate {
	alu.mutation.ClearResourceID()
	return alu
}

// SetMetadata sets the "metadata" field.
func (alu *AuditLogUpdate) SetMetadata(m map[string]interface{}) *AuditLogUpdate {
	alu.mutation.SetMetadata(m)
	return alu
}

// ClearMetadata clears the value of the "metadata" field.
func (alu *AuditLogUpdate) ClearMetadata() *AuditLogUpdate {
	alu.mutation.ClearMetadata()
	return alu
}

// SetSeverity sets the "severity" field.
func (alu *AuditLogUpdate) SetSeverity(a auditlog.Severity) *AuditLogUpdate {
	alu.mutation.SetSeverity(a)
	return alu
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (alu *AuditLogUpdate) SetNillableSeverity(a *auditlog.Severity) *AuditLogUpdate {
	if a != nil {
		alu.SetSeverity(*a)
	}
	return alu
}

// SetDescription sets the "description" field.
func (alu *AuditLogUpdate) SetDescription(s string) *AuditLogUpdate {
	alu.mutation.SetDescription(s)
	return alu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (alu *AuditLogUpdate) SetNillableDescription(s *string) *AuditLogUpdate {
	if s != nil {
		alu.SetDescription(*s)
	}
	return alu
}

// ClearDescription clears the value of the "description" field.
func (alu *AuditLogUpdate) ClearDescription() *AuditLogUpdate {
	alu.mutation.ClearDescription()
	return alu
}

// Mutation returns the AuditLogMutation object of the builder.
func (alu *AuditLogUpdate) Mutation() *AuditLogMutation {
	return alu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (alu *AuditLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, alu.sqlSave, alu.mutation, alu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (alu *AuditLogUpdate) SaveX(ctx context.Context) int {
	affected, err := alu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (alu *AuditLogUpdate) Exec(ctx context.Context) error {
	_, err := alu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (alu *AuditLogUpdate) ExecX(ctx context.Context) {
	if err := alu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (alu *AuditLogUpdate) check() error {
	if v, ok := alu.mutation.Action(); ok {
		if err := auditlog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AuditLog.action": %w`, err)}
		}
	}
	if v, ok := alu.mutation.Severity(); ok {
		if err := auditlog.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "AuditLog.severity": %w`, err)}
		}
	}
	return nil
}

func (alu *AuditLogUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := alu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditlog.Table, auditlog.Columns, sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt))
	if ps := alu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := alu.mutation.UserID(); ok {
		_spec.SetField(auditlog.FieldUserID, field.TypeInt, value)
	}
	if value, ok := alu.mutation.AddedUserID(); ok {
		_spec.AddField(auditlog.FieldUserID, field.TypeInt, value)
	}
	if alu.mutation.UserIDCleared() {
		_spec.ClearField(auditlog.FieldUserID, field.TypeInt)
	}
	if value, ok := alu.mutation.Action(); ok {
		_spec.SetField(auditlog.FieldAction, field.TypeEnum, value)
	}
	if value, ok := alu.mutation.ResourceType(); ok {
		_spec.SetField(auditlog.FieldResourceType, field.TypeString, value)
	}
	if alu.mutation.ResourceTypeCleared() {
		_spec.ClearField(auditlog.FieldResourceType, field.TypeString)
	}
	if value, ok := alu.mutation.ResourceID(); ok {
		_spec.SetField(auditlog.FieldResourceID, field.TypeString, value)
	}
	if alu.mutation.ResourceIDCleared() {
		_spec.ClearField(auditlog.FieldResourceID, field.TypeString)
	}
	if value, ok := alu.mutation.Metadata(); ok {
		_spec.SetField(auditlog.FieldMetadata, field.TypeJSON, value)
	}
	if alu.mutation.MetadataCleared() {
		_spec.ClearField(auditlog.FieldMetadata, field.TypeJSON)
	}
	if value, ok := alu.mutation.Severity(); ok {
		_spec.SetField(auditlog.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := alu.mutation.Description(); ok {
		_spec.SetField(auditlog.FieldDescription, field.TypeString, value)
	}
	if alu.mutation.DescriptionCleared() {
		_spec.ClearField(auditlog.FieldDescription, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, alu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	alu.mutation.done = true
	return n, nil
}

// AuditLogUpdateOne is the builder for updating a single AuditLog entity.
type AuditLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditLogMutation
}

// SetUserID sets the "user_id" field.
func (aluo *AuditLogUpdateOne) SetUserID(i int) *AuditLogUpdateOne {
	aluo.mutation.ResetUserID()
	aluo.mutation.SetUserID(i)
	return aluo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (aluo *AuditLogUpdateOne) SetNillableUserID(i *int) *AuditLogUpdateOne {
	if i != nil {
		aluo.SetUserID(*i)
	}
	return aluo
}

// AddUserID adds i to the "user_id" field.
func (aluo *AuditLogUpdateOne) AddUserID(i int) *AuditLogUpdateOne {
	aluo.mutation.AddUserID(i)
	return aluo
}

// ClearUserID clears the value of the "user_id" field.
func (aluo *AuditLogUpdateOne) ClearUserID() *AuditLogUpdateOne {
	aluo.mutation.ClearUserID()
	return aluo
}

// SetAction sets the "action" field.
func (aluo *AuditLogUpdateOne) SetAction(a auditlog.Action) *AuditLogUpdateOne {
	aluo.mutation.SetAction(a)
	return aluo
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (aluo *AuditLogUpdateOne) SetNillableAction(a *auditlog.Action) *AuditLogUpdateOne {
	if a != nil {
		aluo.SetAction(*a)
	}
	return aluo
}

// SetResourceType sets the "resource_type" field.
func (aluo *AuditLogUpdateOne) SetResourceType(s string) *AuditLogUpdateOne {
	aluo.mutation.SetResourceType(s)
	return aluo
}

// SetNillableResourceType sets the "resource_type" field if the given value is not nil.
func (aluo *AuditLogUpdateOne) SetNillableResourceType(s *string) *AuditLogUpdateOne {
	if s != nil {
		aluo.SetResourceType(*s)
	}
	return aluo
}

// ClearResourceType clears the value of the "resource_type" field.
func (aluo *AuditLogUpdateOne) ClearResourceType() *AuditLogUpdateOne {
	aluo.mutation.ClearResourceType()
	return aluo
}

// SetResourceID sets the "resource_id" field.
func (aluo *AuditLogUpdateOne) SetResourceID(s string) *AuditLogUpdateOne {
	aluo.mutation.SetResourceID(s)
	return aluo
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (aluo *AuditLogUpdateOne) SetNillableResourceID(s *string) *AuditLogUpdateOne {
	if s != nil {
		aluo.SetResourceID(*s)
	}
	return aluo
}

// ClearResourceID clears the value of the "resource_id" field.
func (aluo *AuditLogUpdateOne) ClearResourceID() *AuditLogUpdateOne {
	aluo.mutation.ClearResourceID()
	return aluo
}

// SetMetadata sets the "metadata" field.
func (aluo *AuditLogUpdateOne) SetMetadata(m map[string]interface{}) *AuditLogUpdateOne {
	aluo.mutation.SetMetadata(m)
	return aluo
}

// ClearMetadata clears the value of the "metadata" field.
func (aluo *AuditLogUpdateOne) ClearMetadata() *AuditLogUpdateOne {
	aluo.mutation.ClearMetadata()
	return aluo
}

// SetSeverity sets the "severity" field.
func (aluo *AuditLogUpdateOne) SetSeverity(a auditlog.Severity) *AuditLogUpdateOne {
	aluo.mutation.SetSeverity(a)
	return aluo
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (aluo *AuditLogUpdateOne) SetNillableSeverity(a *auditlog.Severity) *AuditLogUpdateOne {
	if a != nil {
		aluo.SetSeverity(*a)
	}
	return aluo
}

// SetDescription sets the "description" field.
func (aluo *AuditLogUpdateOne) SetDescription(s string) *AuditLogUpdateOne {
	aluo.mutation.SetDescription(s)
	return aluo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (aluo *AuditLogUpdateOne) SetNillableDescription(s *string) *AuditLogUpdateOne {
	if s != nil {
		aluo.SetDescription(*s)
	}
	return aluo
}

// ClearDescription clears the value of the "description" field.
func (aluo *AuditLogUpdateOne) ClearDescription() *AuditLogUpdateOne {
	aluo.mutation.ClearDescription()
	return aluo
}

// Mutation returns the AuditLogMutation object of the builder.
func (aluo *AuditLogUpdateOne) Mutation() *AuditLogMutation {
	return aluo.mutation
}

// Where appends a list predicates to the AuditLogUpdate builder.
func (aluo *AuditLogUpdateOne) Where(ps ...predicate.AuditLog) *AuditLogUpdateOne {
	aluo.mutation.Where(ps...)
	return aluo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aluo *AuditLogUpdateOne) Select(field string, fields ...string) *AuditLogUpdateOne {
	aluo.fields = append([]string{field}, fields...)
	return aluo
}

// Save executes the query and returns the updated AuditLog entity.
func (aluo *AuditLogUpdateOne) Save(ctx context.Context) (*AuditLog, error) {
	return withHooks(ctx, aluo.sqlSave, aluo.mutation, aluo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aluo *AuditLogUpdateOne) SaveX(ctx context.Context) *AuditLog {
	node, err := aluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aluo *AuditLogUpdateOne) Exec(ctx context.Context) error {
	_, err := aluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aluo *AuditLogUpdateOne) ExecX(ctx context.Context) {
	if err := aluo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aluo *AuditLogUpdateOne) check() error {
	if v, ok := aluo.mutation.Action(); ok {
		if err := auditlog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AuditLog.action": %w`, err)}
		}
	}
	if v, ok := aluo.mutation.Severity(); ok {
		if err := auditlog.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "AuditLog.severity": %w`, err)}
		}
	}
	return nil
}

func (aluo *AuditLogUpdateOne) sqlSave(ctx context.Context) (_node *AuditLog, err error) {
	if err := aluo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditlog.Table, auditlog.Columns, sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt))
	id, ok := aluo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aluo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditlog.FieldID)
		for _, f := range fields {
			if !auditlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aluo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aluo.mutation.UserID(); ok {
		_spec.SetField(auditlog.FieldUserID, field.TypeInt, value)
	}
	if value, ok := aluo.mutation.AddedUserID(); ok {
		_spec.AddField(auditlog.FieldUserID, field.TypeInt, value)
	}
	if aluo.mutation.UserIDCleared() {
		_spec.ClearField(auditlog.FieldUserID, field.TypeInt)
	}
	if value, ok := aluo.mutation.Action(); ok {
		_spec.SetField(auditlog.FieldAction, field.TypeEnum, value)
	}
	if value, ok := aluo.mutation.ResourceType(); ok {
		_spec.SetField(auditlog.FieldResourceType, field.TypeString, value)
	}
	if aluo.mutation.ResourceTypeCleared() {
		_spec.ClearField(auditlog.FieldResourceType, field.TypeString)
	}
	if value, ok := aluo.mutation.ResourceID(); ok {
		_spec.SetField(auditlog.FieldResourceID, field.TypeString, value)
	}
	if aluo.mutation.ResourceIDCleared() {
		_spec.ClearField(auditlog.FieldResourceID, field.TypeString)
	}
	if value, ok := aluo.mutation.Metadata(); ok {
		_spec.SetField(auditlog.FieldMetadata, field.TypeJSON, value)
	}
	if aluo.mutation.MetadataCleared() {
		_spec.ClearField(auditlog.FieldMetadata, field.TypeJSON)
	}
	if value, ok := aluo.mutation.Severity(); ok {
		_spec.SetField(auditlog.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := aluo.mutation.Description(); ok {
		_spec.SetField(auditlog.FieldDescription, field.TypeString, value)
	}
	if aluo.mutation.DescriptionCleared() {
		_spec.ClearField(auditlog.FieldDescription, field.TypeString)
	}
	_node = &AuditLog{config: aluo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aluo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aluo.mutation.done = true
	return _node, nil
}
