package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuthSession holds the schema definition for the AuthSession entity.
// One bearer token with a sliding 24h expiry.
type AuthSession struct {
	ent.Schema
}

// Fields of the AuthSession.
func (AuthSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("token").
			Unique().
			Immutable().
			Sensitive().
			Comment("Opaque high-entropy bearer token"),
		field.String("user_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at"),
		field.Time("last_accessed_at"),
	}
}

// Edges of the AuthSession.
func (AuthSession) Edges() []ent.Edge {
	return nil
}

// Indexes of the AuthSession.
func (AuthSession) Indexes() []ent.Index {
	return []ent.Index{
		// Logout-all / user lookup
		index.Fields("user_id"),
		// Expiry sweep
		index.Fields("expires_at"),
	}
}
