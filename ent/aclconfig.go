// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/isprava/concierge/ent/aclconfig"
)

// ACLConfig is the model entity for the ACLConfig schema.
type ACLConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DefaultPolicy holds the value of the "default_policy" field.
	DefaultPolicy aclconfig.DefaultPolicy `json:"default_policy,omitempty"`
	// PublicTools holds the value of the "public_tools" field.
	PublicTools []string `json:"public_tools,omitempty"`
	// DisabledTools holds the value of the "disabled_tools" field.
	DisabledTools []string `json:"disabled_tools,omitempty"`
	// SuperuserAcls holds the value of the "superuser_acls" field.
	SuperuserAcls []string `json:"superuser_acls,omitempty"`
	// tool name → required ACL tags (OR semantics)
	ToolAcls map[string][]string `json:"tool_acls,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ACLConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case aclconfig.FieldPublicTools, aclconfig.FieldDisabledTools, aclconfig.FieldSuperuserAcls, aclconfig.FieldToolAcls:
			values[i] = new([]byte)
		case aclconfig.FieldID, aclconfig.FieldDefaultPolicy:
			values[i] = new(sql.NullString)
		case aclconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ACLConfig fields.
func (_m *ACLConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case aclconfig.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case aclconfig.FieldDefaultPolicy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_policy", values[i])
			} else if value.Valid {
				_m.DefaultPolicy = aclconfig.DefaultPolicy(value.String)
			}
		case aclconfig.FieldPublicTools:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field public_tools", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PublicTools); err != nil {
					return fmt.Errorf("unmarshal field public_tools: %w", err)
				}
			}
		case aclconfig.FieldDisabledTools:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field disabled_tools", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DisabledTools); err != nil {
					return fmt.Errorf("unmarshal field disabled_tools: %w", err)
				}
			}
		case aclconfig.FieldSuperuserAcls:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field superuser_acls", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SuperuserAcls); err != nil {
					return fmt.Errorf("unmarshal field superuser_acls: %w", err)
				}
			}
		case aclconfig.FieldToolAcls:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_acls", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolAcls); err != nil {
					return fmt.Errorf("unmarshal field tool_acls: %w", err)
				}
			}
		case aclconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ACLConfig.
// This includes values selected through modifiers, order, etc.
func (_m *ACLConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ACLConfig.
// Note that you need to call ACLConfig.Unwrap() before calling this method if this ACLConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ACLConfig) Update() *ACLConfigUpdateOne {
	return NewACLConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ACLConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ACLConfig) Unwrap() *ACLConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ACLConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ACLConfig) String() string {
	var builder strings.Builder
	builder.WriteString("ACLConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("default_policy=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultPolicy))
	builder.WriteString(", ")
	builder.WriteString("public_tools=")
	builder.WriteString(fmt.Sprintf("%v", _m.PublicTools))
	builder.WriteString(", ")
	builder.WriteString("disabled_tools=")
	builder.WriteString(fmt.Sprintf("%v", _m.DisabledTools))
	builder.WriteString(", ")
	builder.WriteString("superuser_acls=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuperuserAcls))
	builder.WriteString(", ")
	builder.WriteString("tool_acls=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolAcls))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ACLConfigs is a parsable slice of ACLConfig.
type ACLConfigs []*ACLConfig
