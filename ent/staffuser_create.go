// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/isprava/concierge/ent/staffuser"
)

// StaffUserCreate is the builder for creating a StaffUser entity.
type StaffUserCreate struct {
	config
	mutation *StaffUserMutation
	hooks    []Hook
}

// SetEmail sets the "email" field.
func (_c *StaffUserCreate) SetEmail(v string) *StaffUserCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetName sets the "name" field.
func (_c *StaffUserCreate) SetName(v string) *StaffUserCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAcls sets the "acls" field.
func (_c *StaffUserCreate) SetAcls(v []string) *StaffUserCreate {
	_c.mutation.SetAcls(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *StaffUserCreate) SetActive(v bool) *StaffUserCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *StaffUserCreate) SetNillableActive(v *bool) *StaffUserCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetAdmin sets the "admin" field.
func (_c *StaffUserCreate) SetAdmin(v bool) *StaffUserCreate {
	_c.mutation.SetAdmin(v)
	return _c
}

// SetNillableAdmin sets the "admin" field if the given value is not nil.
func (_c *StaffUserCreate) SetNillableAdmin(v *bool) *StaffUserCreate {
	if v != nil {
		_c.SetAdmin(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StaffUserCreate) SetCreatedAt(v time.Time) *StaffUserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StaffUserCreate) SetNillableCreatedAt(v *time.Time) *StaffUserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StaffUserCreate) SetID(v string) *StaffUserCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StaffUserMutation object of the builder.
func (_c *StaffUserCreate) Mutation() *StaffUserMutation {
	return _c.mutation
}

// Save creates the StaffUser in the database.
func (_c *StaffUserCreate) Save(ctx context.Context) (*StaffUser, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StaffUserCreate) SaveX(ctx context.Context) *StaffUser {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StaffUserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StaffUserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StaffUserCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := staffuser.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.Admin(); !ok {
		v := staffuser.DefaultAdmin
		_c.mutation.SetAdmin(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := staffuser.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StaffUserCreate) check() error {
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "StaffUser.email"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "StaffUser.name"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "StaffUser.active"`)}
	}
	if _, ok := _c.mutation.Admin(); !ok {
		return &ValidationError{Name: "admin", err: errors.New(`ent: missing required field "StaffUser.admin"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StaffUser.created_at"`)}
	}
	return nil
}

func (_c *StaffUserCreate) sqlSave(ctx context.Context) (*StaffUser, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected StaffUser.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StaffUserCreate) createSpec() (*StaffUser, *sqlgraph.CreateSpec) {
	var (
		_node = &StaffUser{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(staffuser.Table, sqlgraph.NewFieldSpec(staffuser.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(staffuser.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(staffuser.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Acls(); ok {
		_spec.SetField(staffuser.FieldAcls, field.TypeJSON, value)
		_node.Acls = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(staffuser.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.Admin(); ok {
		_spec.SetField(staffuser.FieldAdmin, field.TypeBool, value)
		_node.Admin = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(staffuser.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StaffUserCreateBulk is the builder for creating many StaffUser entities in bulk.
type StaffUserCreateBulk struct {
	config
	err      error
	builders []*StaffUserCreate
}

// Save creates the StaffUser entities in the database.
func (_c *StaffUserCreateBulk) Save(ctx context.Context) ([]*StaffUser, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StaffUser, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StaffUserMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StaffUserCreateBulk) SaveX(ctx context.Context) []*StaffUser {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StaffUserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StaffUserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
