package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage holds the schema definition for the ChatMessage entity.
// Append-only conversation log; strictly ordered by (session_id, sequence).
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant", "tool_use", "tool_result"),
		field.Text("content"),
		field.String("tool_name").
			Optional().
			Nillable(),
		field.JSON("tool_input", map[string]interface{}{}).
			Optional(),
		field.String("tool_use_id").
			Optional().
			Nillable().
			Comment("Pairs tool_use with its tool_result"),
		field.Int("sequence").
			Immutable().
			Comment("Per-session append counter"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ChatMessage.
func (ChatMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ChatSession.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Append ordering; uniqueness makes concurrent appends detectable
		index.Fields("session_id", "sequence").
			Unique(),
		index.Fields("session_id", "created_at"),
	}
}
