// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/isprava/concierge/ent/aclconfig"
	"github.com/isprava/concierge/ent/predicate"
)

// ACLConfigUpdate is the builder for updating ACLConfig entities.
type ACLConfigUpdate struct {
	config
	hooks    []Hook
	mutation *ACLConfigMutation
}

// Where appends a list predicates to the ACLConfigUpdate builder.
func (_u *ACLConfigUpdate) Where(ps ...predicate.ACLConfig) *ACLConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDefaultPolicy sets the "default_policy" field.
func (_u *ACLConfigUpdate) SetDefaultPolicy(v aclconfig.DefaultPolicy) *ACLConfigUpdate {
	_u.mutation.SetDefaultPolicy(v)
	return _u
}

// SetNillableDefaultPolicy sets the "default_policy" field if the given value is not nil.
func (_u *ACLConfigUpdate) SetNillableDefaultPolicy(v *aclconfig.DefaultPolicy) *ACLConfigUpdate {
	if v != nil {
		_u.SetDefaultPolicy(*v)
	}
	return _u
}

// SetPublicTools sets the "public_tools" field.
func (_u *ACLConfigUpdate) SetPublicTools(v []string) *ACLConfigUpdate {
	_u.mutation.SetPublicTools(v)
	return _u
}

// AppendPublicTools appends value to the "public_tools" field.
func (_u *ACLConfigUpdate) AppendPublicTools(v []string) *ACLConfigUpdate {
	_u.mutation.AppendPublicTools(v)
	return _u
}

// ClearPublicTools clears the value of the "public_tools" field.
func (_u *ACLConfigUpdate) ClearPublicTools() *ACLConfigUpdate {
	_u.mutation.ClearPublicTools()
	return _u
}

// SetDisabledTools sets the "disabled_tools" field.
func (_u *ACLConfigUpdate) SetDisabledTools(v []string) *ACLConfigUpdate {
	_u.mutation.SetDisabledTools(v)
	return _u
}

// AppendDisabledTools appends value to the "disabled_tools" field.
func (_u *ACLConfigUpdate) AppendDisabledTools(v []string) *ACLConfigUpdate {
	_u.mutation.AppendDisabledTools(v)
	return _u
}

// ClearDisabledTools clears the value of the "disabled_tools" field.
func (_u *ACLConfigUpdate) ClearDisabledTools() *ACLConfigUpdate {
	_u.mutation.ClearDisabledTools()
	return _u
}

// SetSuperuserAcls sets the "superuser_acls" field.
func (_u *ACLConfigUpdate) SetSuperuserAcls(v []string) *ACLConfigUpdate {
	_u.mutation.SetSuperuserAcls(v)
	return _u
}

// AppendSuperuserAcls appends value to the "superuser_acls" field.
func (_u *ACLConfigUpdate) AppendSuperuserAcls(v []string) *ACLConfigUpdate {
	_u.mutation.AppendSuperuserAcls(v)
	return _u
}

// ClearSuperuserAcls clears the value of the "superuser_acls" field.
func (_u *ACLConfigUpdate) ClearSuperuserAcls() *ACLConfigUpdate {
	_u.mutation.ClearSuperuserAcls()
	return _u
}

// SetToolAcls sets the "tool_acls" field.
func (_u *ACLConfigUpdate) SetToolAcls(v map[string][]string) *ACLConfigUpdate {
	_u.mutation.SetToolAcls(v)
	return _u
}

// ClearToolAcls clears the value of the "tool_acls" field.
func (_u *ACLConfigUpdate) ClearToolAcls() *ACLConfigUpdate {
	_u.mutation.ClearToolAcls()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ACLConfigUpdate) SetUpdatedAt(v time.Time) *ACLConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ACLConfigUpdate) SetNillableUpdatedAt(v *time.Time) *ACLConfigUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ACLConfigMutation object of the builder.
func (_u *ACLConfigUpdate) Mutation() *ACLConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ACLConfigUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ACLConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ACLConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ACLConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ACLConfigUpdate) check() error {
	if v, ok := _u.mutation.DefaultPolicy(); ok {
		if err := aclconfig.DefaultPolicyValidator(v); err != nil {
			return &ValidationError{Name: "default_policy", err: fmt.Errorf(`ent: validator failed for field "ACLConfig.default_policy": %w`, err)}
		}
	}
	return nil
}

func (_u *ACLConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aclconfig.Table, aclconfig.Columns, sqlgraph.NewFieldSpec(aclconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DefaultPolicy(); ok {
		_spec.SetField(aclconfig.FieldDefaultPolicy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PublicTools(); ok {
		_spec.SetField(aclconfig.FieldPublicTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPublicTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, aclconfig.FieldPublicTools, value)
		})
	}
	if _u.mutation.PublicToolsCleared() {
		_spec.ClearField(aclconfig.FieldPublicTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.DisabledTools(); ok {
		_spec.SetField(aclconfig.FieldDisabledTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDisabledTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, aclconfig.FieldDisabledTools, value)
		})
	}
	if _u.mutation.DisabledToolsCleared() {
		_spec.ClearField(aclconfig.FieldDisabledTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.SuperuserAcls(); ok {
		_spec.SetField(aclconfig.FieldSuperuserAcls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuperuserAcls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, aclconfig.FieldSuperuserAcls, value)
		})
	}
	if _u.mutation.SuperuserAclsCleared() {
		_spec.ClearField(aclconfig.FieldSuperuserAcls, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolAcls(); ok {
		_spec.SetField(aclconfig.FieldToolAcls, field.TypeJSON, value)
	}
	if _u.mutation.ToolAclsCleared() {
		_spec.ClearField(aclconfig.FieldToolAcls, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(aclconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aclconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ACLConfigUpdateOne is the builder for updating a single ACLConfig entity.
type ACLConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ACLConfigMutation
}

// SetDefaultPolicy sets the "default_policy" field.
func (_u *ACLConfigUpdateOne) SetDefaultPolicy(v aclconfig.DefaultPolicy) *ACLConfigUpdateOne {
	_u.mutation.SetDefaultPolicy(v)
	return _u
}

// SetNillableDefaultPolicy sets the "default_policy" field if the given value is not nil.
func (_u *ACLConfigUpdateOne) SetNillableDefaultPolicy(v *aclconfig.DefaultPolicy) *ACLConfigUpdateOne {
	if v != nil {
		_u.SetDefaultPolicy(*v)
	}
	return _u
}

// SetPublicTools sets the "public_tools" field.
func (_u *ACLConfigUpdateOne) SetPublicTools(v []string) *ACLConfigUpdateOne {
	_u.mutation.SetPublicTools(v)
	return _u
}

// AppendPublicTools appends value to the "public_tools" field.
func (_u *ACLConfigUpdateOne) AppendPublicTools(v []string) *ACLConfigUpdateOne {
	_u.mutation.AppendPublicTools(v)
	return _u
}

// ClearPublicTools clears the value of the "public_tools" field.
func (_u *ACLConfigUpdateOne) ClearPublicTools() *ACLConfigUpdateOne {
	_u.mutation.ClearPublicTools()
	return _u
}

// SetDisabledTools sets the "disabled_tools" field.
func (_u *ACLConfigUpdateOne) SetDisabledTools(v []string) *ACLConfigUpdateOne {
	_u.mutation.SetDisabledTools(v)
	return _u
}

// AppendDisabledTools appends value to the "disabled_tools" field.
func (_u *ACLConfigUpdateOne) AppendDisabledTools(v []string) *ACLConfigUpdateOne {
	_u.mutation.AppendDisabledTools(v)
	return _u
}

// ClearDisabledTools clears the value of the "disabled_tools" field.
func (_u *ACLConfigUpdateOne) ClearDisabledTools() *ACLConfigUpdateOne {
	_u.mutation.ClearDisabledTools()
	return _u
}

// SetSuperuserAcls sets the "superuser_acls" field.
func (_u *ACLConfigUpdateOne) SetSuperuserAcls(v []string) *ACLConfigUpdateOne {
	_u.mutation.SetSuperuserAcls(v)
	return _u
}

// AppendSuperuserAcls appends value to the "superuser_acls" field.
func (_u *ACLConfigUpdateOne) AppendSuperuserAcls(v []string) *ACLConfigUpdateOne {
	_u.mutation.AppendSuperuserAcls(v)
	return _u
}

// ClearSuperuserAcls clears the value of the "superuser_acls" field.
func (_u *ACLConfigUpdateOne) ClearSuperuserAcls() *ACLConfigUpdateOne {
	_u.mutation.ClearSuperuserAcls()
	return _u
}

// SetToolAcls sets the "tool_acls" field.
func (_u *ACLConfigUpdateOne) SetToolAcls(v map[string][]string) *ACLConfigUpdateOne {
	_u.mutation.SetToolAcls(v)
	return _u
}

// ClearToolAcls clears the value of the "tool_acls" field.
func (_u *ACLConfigUpdateOne) ClearToolAcls() *ACLConfigUpdateOne {
	_u.mutation.ClearToolAcls()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ACLConfigUpdateOne) SetUpdatedAt(v time.Time) *ACLConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ACLConfigUpdateOne) SetNillableUpdatedAt(v *time.Time) *ACLConfigUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ACLConfigMutation object of the builder.
func (_u *ACLConfigUpdateOne) Mutation() *ACLConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the ACLConfigUpdate builder.
func (_u *ACLConfigUpdateOne) Where(ps ...predicate.ACLConfig) *ACLConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ACLConfigUpdateOne) Select(field string, fields ...string) *ACLConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ACLConfig entity.
func (_u *ACLConfigUpdateOne) Save(ctx context.Context) (*ACLConfig, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ACLConfigUpdateOne) SaveX(ctx context.Context) *ACLConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ACLConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ACLConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ACLConfigUpdateOne) check() error {
	if v, ok := _u.mutation.DefaultPolicy(); ok {
		if err := aclconfig.DefaultPolicyValidator(v); err != nil {
			return &ValidationError{Name: "default_policy", err: fmt.Errorf(`ent: validator failed for field "ACLConfig.default_policy": %w`, err)}
		}
	}
	return nil
}

func (_u *ACLConfigUpdateOne) sqlSave(ctx context.Context) (_node *ACLConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aclconfig.Table, aclconfig.Columns, sqlgraph.NewFieldSpec(aclconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ACLConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, aclconfig.FieldID)
		for _, f := range fields {
			if !aclconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != aclconfig.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DefaultPolicy(); ok {
		_spec.SetField(aclconfig.FieldDefaultPolicy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PublicTools(); ok {
		_spec.SetField(aclconfig.FieldPublicTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPublicTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, aclconfig.FieldPublicTools, value)
		})
	}
	if _u.mutation.PublicToolsCleared() {
		_spec.ClearField(aclconfig.FieldPublicTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.DisabledTools(); ok {
		_spec.SetField(aclconfig.FieldDisabledTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDisabledTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, aclconfig.FieldDisabledTools, value)
		})
	}
	if _u.mutation.DisabledToolsCleared() {
		_spec.ClearField(aclconfig.FieldDisabledTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.SuperuserAcls(); ok {
		_spec.SetField(aclconfig.FieldSuperuserAcls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuperuserAcls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, aclconfig.FieldSuperuserAcls, value)
		})
	}
	if _u.mutation.SuperuserAclsCleared() {
		_spec.ClearField(aclconfig.FieldSuperuserAcls, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolAcls(); ok {
		_spec.SetField(aclconfig.FieldToolAcls, field.TypeJSON, value)
	}
	if _u.mutation.ToolAclsCleared() {
		_spec.ClearField(aclconfig.FieldToolAcls, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(aclconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ACLConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aclconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
