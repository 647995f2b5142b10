package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StaffUser holds the schema definition for the StaffUser entity.
// Staff identity is provisioned externally; the service only reads it.
type StaffUser struct {
	ent.Schema
}

// Fields of the StaffUser.
func (StaffUser) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("email").
			Unique().
			Comment("Canonical lowercase"),
		field.String("name"),
		field.JSON("acls", []string{}).
			Optional().
			Comment("ACL tag set"),
		field.Bool("active").
			Default(true),
		field.Bool("admin").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the StaffUser.
func (StaffUser) Edges() []ent.Edge {
	return nil
}

// Indexes of the StaffUser.
func (StaffUser) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").
			Unique(),
	}
}
