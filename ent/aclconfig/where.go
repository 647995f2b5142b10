// Code generated by ent, DO NOT EDIT.

package aclconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/isprava/concierge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldContainsFold(FieldID, id))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// DefaultPolicyEQ applies the EQ predicate on the "default_policy" field.
func DefaultPolicyEQ(v DefaultPolicy) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldEQ(FieldDefaultPolicy, v))
}

// DefaultPolicyNEQ applies the NEQ predicate on the "default_policy" field.
func DefaultPolicyNEQ(v DefaultPolicy) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldNEQ(FieldDefaultPolicy, v))
}

// DefaultPolicyIn applies the In predicate on the "default_policy" field.
func DefaultPolicyIn(vs ...DefaultPolicy) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldIn(FieldDefaultPolicy, vs...))
}

// DefaultPolicyNotIn applies the NotIn predicate on the "default_policy" field.
func DefaultPolicyNotIn(vs ...DefaultPolicy) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldNotIn(FieldDefaultPolicy, vs...))
}

// PublicToolsIsNil applies the IsNil predicate on the "public_tools" field.
func PublicToolsIsNil() predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldIsNull(FieldPublicTools))
}

// PublicToolsNotNil applies the NotNil predicate on the "public_tools" field.
func PublicToolsNotNil() predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldNotNull(FieldPublicTools))
}

// DisabledToolsIsNil applies the IsNil predicate on the "disabled_tools" field.
func DisabledToolsIsNil() predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldIsNull(FieldDisabledTools))
}

// DisabledToolsNotNil applies the NotNil predicate on the "disabled_tools" field.
func DisabledToolsNotNil() predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldNotNull(FieldDisabledTools))
}

// SuperuserAclsIsNil applies the IsNil predicate on the "superuser_acls" field.
func SuperuserAclsIsNil() predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldIsNull(FieldSuperuserAcls))
}

// SuperuserAclsNotNil applies the NotNil predicate on the "superuser_acls" field.
func SuperuserAclsNotNil() predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldNotNull(FieldSuperuserAcls))
}

// ToolAclsIsNil applies the IsNil predicate on the "tool_acls" field.
func ToolAclsIsNil() predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldIsNull(FieldToolAcls))
}

// ToolAclsNotNil applies the NotNil predicate on the "tool_acls" field.
func ToolAclsNotNil() predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldNotNull(FieldToolAcls))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ACLConfig {
	return predicate.ACLConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ACLConfig) predicate.ACLConfig {
	return predicate.ACLConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ACLConfig) predicate.ACLConfig {
	return predicate.ACLConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ACLConfig) predicate.ACLConfig {
	return predicate.ACLConfig(sql.NotPredicates(p))
}
