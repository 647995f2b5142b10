// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/isprava/concierge/ent/predicate"
	"github.com/isprava/concierge/ent/staffuser"
)

// StaffUserUpdate is the builder for updating StaffUser entities.
type StaffUserUpdate struct {
	config
	hooks    []Hook
	mutation *StaffUserMutation
}

// Where appends a list predicates to the StaffUserUpdate builder.
func (_u *StaffUserUpdate) Where(ps ...predicate.StaffUser) *StaffUserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *StaffUserUpdate) SetEmail(v string) *StaffUserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *StaffUserUpdate) SetNillableEmail(v *string) *StaffUserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *StaffUserUpdate) SetName(v string) *StaffUserUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StaffUserUpdate) SetNillableName(v *string) *StaffUserUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAcls sets the "acls" field.
func (_u *StaffUserUpdate) SetAcls(v []string) *StaffUserUpdate {
	_u.mutation.SetAcls(v)
	return _u
}

// AppendAcls appends value to the "acls" field.
func (_u *StaffUserUpdate) AppendAcls(v []string) *StaffUserUpdate {
	_u.mutation.AppendAcls(v)
	return _u
}

// ClearAcls clears the value of the "acls" field.
func (_u *StaffUserUpdate) ClearAcls() *StaffUserUpdate {
	_u.mutation.ClearAcls()
	return _u
}

// SetActive sets the "active" field.
func (_u *StaffUserUpdate) SetActive(v bool) *StaffUserUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *StaffUserUpdate) SetNillableActive(v *bool) *StaffUserUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetAdmin sets the "admin" field.
func (_u *StaffUserUpdate) SetAdmin(v bool) *StaffUserUpdate {
	_u.mutation.SetAdmin(v)
	return _u
}

// SetNillableAdmin sets the "admin" field if the given value is not nil.
func (_u *StaffUserUpdate) SetNillableAdmin(v *bool) *StaffUserUpdate {
	if v != nil {
		_u.SetAdmin(*v)
	}
	return _u
}

// Mutation returns the StaffUserMutation object of the builder.
func (_u *StaffUserUpdate) Mutation() *StaffUserMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StaffUserUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StaffUserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StaffUserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StaffUserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StaffUserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(staffuser.Table, staffuser.Columns, sqlgraph.NewFieldSpec(staffuser.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(staffuser.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(staffuser.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Acls(); ok {
		_spec.SetField(staffuser.FieldAcls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAcls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, staffuser.FieldAcls, value)
		})
	}
	if _u.mutation.AclsCleared() {
		_spec.ClearField(staffuser.FieldAcls, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(staffuser.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Admin(); ok {
		_spec.SetField(staffuser.FieldAdmin, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staffuser.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StaffUserUpdateOne is the builder for updating a single StaffUser entity.
type StaffUserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StaffUserMutation
}

// SetEmail sets the "email" field.
func (_u *StaffUserUpdateOne) SetEmail(v string) *StaffUserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *StaffUserUpdateOne) SetNillableEmail(v *string) *StaffUserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *StaffUserUpdateOne) SetName(v string) *StaffUserUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StaffUserUpdateOne) SetNillableName(v *string) *StaffUserUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAcls sets the "acls" field.
func (_u *StaffUserUpdateOne) SetAcls(v []string) *StaffUserUpdateOne {
	_u.mutation.SetAcls(v)
	return _u
}

// AppendAcls appends value to the "acls" field.
func (_u *StaffUserUpdateOne) AppendAcls(v []string) *StaffUserUpdateOne {
	_u.mutation.AppendAcls(v)
	return _u
}

// ClearAcls clears the value of the "acls" field.
func (_u *StaffUserUpdateOne) ClearAcls() *StaffUserUpdateOne {
	_u.mutation.ClearAcls()
	return _u
}

// SetActive sets the "active" field.
func (_u *StaffUserUpdateOne) SetActive(v bool) *StaffUserUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *StaffUserUpdateOne) SetNillableActive(v *bool) *StaffUserUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetAdmin sets the "admin" field.
func (_u *StaffUserUpdateOne) SetAdmin(v bool) *StaffUserUpdateOne {
	_u.mutation.SetAdmin(v)
	return _u
}

// SetNillableAdmin sets the "admin" field if the given value is not nil.
func (_u *StaffUserUpdateOne) SetNillableAdmin(v *bool) *StaffUserUpdateOne {
	if v != nil {
		_u.SetAdmin(*v)
	}
	return _u
}

// Mutation returns the StaffUserMutation object of the builder.
func (_u *StaffUserUpdateOne) Mutation() *StaffUserMutation {
	return _u.mutation
}

// Where appends a list predicates to the StaffUserUpdate builder.
func (_u *StaffUserUpdateOne) Where(ps ...predicate.StaffUser) *StaffUserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StaffUserUpdateOne) Select(field string, fields ...string) *StaffUserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StaffUser entity.
func (_u *StaffUserUpdateOne) Save(ctx context.Context) (*StaffUser, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StaffUserUpdateOne) SaveX(ctx context.Context) *StaffUser {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StaffUserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StaffUserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StaffUserUpdateOne) sqlSave(ctx context.Context) (_node *StaffUser, err error) {
	_spec := sqlgraph.NewUpdateSpec(staffuser.Table, staffuser.Columns, sqlgraph.NewFieldSpec(staffuser.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StaffUser.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, staffuser.FieldID)
		for _, f := range fields {
			if !staffuser.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != staffuser.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(staffuser.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(staffuser.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Acls(); ok {
		_spec.SetField(staffuser.FieldAcls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAcls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, staffuser.FieldAcls, value)
		})
	}
	if _u.mutation.AclsCleared() {
		_spec.ClearField(staffuser.FieldAcls, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(staffuser.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Admin(); ok {
		_spec.SetField(staffuser.FieldAdmin, field.TypeBool, value)
	}
	_node = &StaffUser{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staffuser.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
