// Code generated by ent, DO NOT EDIT.

package aclconfig

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the aclconfig type in the database.
	Label = "acl_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "config_id"
	// FieldDefaultPolicy holds the string denoting the default_policy field in the database.
	FieldDefaultPolicy = "default_policy"
	// FieldPublicTools holds the string denoting the public_tools field in the database.
	FieldPublicTools = "public_tools"
	// FieldDisabledTools holds the string denoting the disabled_tools field in the database.
	FieldDisabledTools = "disabled_tools"
	// FieldSuperuserAcls holds the string denoting the superuser_acls field in the database.
	FieldSuperuserAcls = "superuser_acls"
	// FieldToolAcls holds the string denoting the tool_acls field in the database.
	FieldToolAcls = "tool_acls"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the aclconfig in the database.
	Table = "acl_configs"
)

// Columns holds all SQL columns for aclconfig fields.
var Columns = []string{
	FieldID,
	FieldDefaultPolicy,
	FieldPublicTools,
	FieldDisabledTools,
	FieldSuperuserAcls,
	FieldToolAcls,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// DefaultPolicy defines the type for the "default_policy" enum field.
type DefaultPolicy string

// DefaultPolicyDeny is the default value of the DefaultPolicy enum.
const DefaultDefaultPolicy = DefaultPolicyDeny

// DefaultPolicy values.
const (
	DefaultPolicyOpen DefaultPolicy = "open"
	DefaultPolicyDeny DefaultPolicy = "deny"
)

func (dp DefaultPolicy) String() string {
	return string(dp)
}

// DefaultPolicyValidator is a validator for the "default_policy" field enum values. It is called by the builders before save.
func DefaultPolicyValidator(dp DefaultPolicy) error {
	switch dp {
	case DefaultPolicyOpen, DefaultPolicyDeny:
		return nil
	default:
		return fmt.Errorf("aclconfig: invalid enum value for default_policy field: %q", dp)
	}
}

// OrderOption defines the ordering options for the ACLConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDefaultPolicy orders the results by the default_policy field.
func ByDefaultPolicy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultPolicy, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
