package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ACLConfig holds the schema definition for the ACLConfig entity.
// A single row (id="global") holding the canonical tool access policy;
// admin mutations mirror it into the shared cache.
type ACLConfig struct {
	ent.Schema
}

// Fields of the ACLConfig.
func (ACLConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("config_id").
			Unique().
			Immutable(),
		field.Enum("default_policy").
			Values("open", "deny").
			Default("deny"),
		field.JSON("public_tools", []string{}).
			Optional(),
		field.JSON("disabled_tools", []string{}).
			Optional(),
		field.JSON("superuser_acls", []string{}).
			Optional(),
		field.JSON("tool_acls", map[string][]string{}).
			Optional().
			Comment("tool name → required ACL tags (OR semantics)"),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Edges of the ACLConfig.
func (ACLConfig) Edges() []ent.Edge {
	return nil
}
