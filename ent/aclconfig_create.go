// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/isprava/concierge/ent/aclconfig"
)

// ACLConfigCreate is the builder for creating a ACLConfig entity.
type ACLConfigCreate struct {
	config
	mutation *ACLConfigMutation
	hooks    []Hook
}

// SetDefaultPolicy sets the "default_policy" field.
func (_c *ACLConfigCreate) SetDefaultPolicy(v aclconfig.DefaultPolicy) *ACLConfigCreate {
	_c.mutation.SetDefaultPolicy(v)
	return _c
}

// SetNillableDefaultPolicy sets the "default_policy" field if the given value is not nil.
func (_c *ACLConfigCreate) SetNillableDefaultPolicy(v *aclconfig.DefaultPolicy) *ACLConfigCreate {
	if v != nil {
		_c.SetDefaultPolicy(*v)
	}
	return _c
}

// SetPublicTools sets the "public_tools" field.
func (_c *ACLConfigCreate) SetPublicTools(v []string) *ACLConfigCreate {
	_c.mutation.SetPublicTools(v)
	return _c
}

// SetDisabledTools sets the "disabled_tools" field.
func (_c *ACLConfigCreate) SetDisabledTools(v []string) *ACLConfigCreate {
	_c.mutation.SetDisabledTools(v)
	return _c
}

// SetSuperuserAcls sets the "superuser_acls" field.
func (_c *ACLConfigCreate) SetSuperuserAcls(v []string) *ACLConfigCreate {
	_c.mutation.SetSuperuserAcls(v)
	return _c
}

// SetToolAcls sets the "tool_acls" field.
func (_c *ACLConfigCreate) SetToolAcls(v map[string][]string) *ACLConfigCreate {
	_c.mutation.SetToolAcls(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ACLConfigCreate) SetUpdatedAt(v time.Time) *ACLConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ACLConfigCreate) SetNillableUpdatedAt(v *time.Time) *ACLConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ACLConfigCreate) SetID(v string) *ACLConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ACLConfigMutation object of the builder.
func (_c *ACLConfigCreate) Mutation() *ACLConfigMutation {
	return _c.mutation
}

// Save creates the ACLConfig in the database.
func (_c *ACLConfigCreate) Save(ctx context.Context) (*ACLConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ACLConfigCreate) SaveX(ctx context.Context) *ACLConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ACLConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ACLConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ACLConfigCreate) defaults() {
	if _, ok := _c.mutation.DefaultPolicy(); !ok {
		v := aclconfig.DefaultDefaultPolicy
		_c.mutation.SetDefaultPolicy(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := aclconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ACLConfigCreate) check() error {
	if _, ok := _c.mutation.DefaultPolicy(); !ok {
		return &ValidationError{Name: "default_policy", err: errors.New(`ent: missing required field "ACLConfig.default_policy"`)}
	}
	if v, ok := _c.mutation.DefaultPolicy(); ok {
		if err := aclconfig.DefaultPolicyValidator(v); err != nil {
			return &ValidationError{Name: "default_policy", err: fmt.Errorf(`ent: validator failed for field "ACLConfig.default_policy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ACLConfig.updated_at"`)}
	}
	return nil
}

func (_c *ACLConfigCreate) sqlSave(ctx context.Context) (*ACLConfig, error) {
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
			return nil, fmt.Errorf("unexpected ACLConfig.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ACLConfigCreate) createSpec() (*ACLConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &ACLConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(aclconfig.Table, sqlgraph.NewFieldSpec(aclconfig.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DefaultPolicy(); ok {
		_spec.SetField(aclconfig.FieldDefaultPolicy, field.TypeEnum, value)
		_node.DefaultPolicy = value
	}
	if value, ok := _c.mutation.PublicTools(); ok {
		_spec.SetField(aclconfig.FieldPublicTools, field.TypeJSON, value)
		_node.PublicTools = value
	}
	if value, ok := _c.mutation.DisabledTools(); ok {
		_spec.SetField(aclconfig.FieldDisabledTools, field.TypeJSON, value)
		_node.DisabledTools = value
	}
	if value, ok := _c.mutation.SuperuserAcls(); ok {
		_spec.SetField(aclconfig.FieldSuperuserAcls, field.TypeJSON, value)
		_node.SuperuserAcls = value
	}
	if value, ok := _c.mutation.ToolAcls(); ok {
		_spec.SetField(aclconfig.FieldToolAcls, field.TypeJSON, value)
		_node.ToolAcls = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(aclconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ACLConfigCreateBulk is the builder for creating many ACLConfig entities in bulk.
type ACLConfigCreateBulk struct {
	config
	err      error
	builders []*ACLConfigCreate
}

// Save creates the ACLConfig entities in the database.
func (_c *ACLConfigCreateBulk) Save(ctx context.Context) ([]*ACLConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ACLConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ACLConfigMutation)
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
func (_c *ACLConfigCreateBulk) SaveX(ctx context.Context) []*ACLConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ACLConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ACLConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
