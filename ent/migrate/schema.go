// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ACLConfigsColumns holds the columns for the "acl_configs" table.
	ACLConfigsColumns = []*schema.Column{
		{Name: "config_id", Type: field.TypeString, Unique: true},
		{Name: "default_policy", Type: field.TypeEnum, Enums: []string{"open", "deny"}, Default: "deny"},
		{Name: "public_tools", Type: field.TypeJSON, Nullable: true},
		{Name: "disabled_tools", Type: field.TypeJSON, Nullable: true},
		{Name: "superuser_acls", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_acls", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ACLConfigsTable holds the schema information for the "acl_configs" table.
	ACLConfigsTable = &schema.Table{
		Name:       "acl_configs",
		Columns:    ACLConfigsColumns,
		PrimaryKey: []*schema.Column{ACLConfigsColumns[0]},
	}
	// AuthSessionsColumns holds the columns for the "auth_sessions" table.
	AuthSessionsColumns = []*schema.Column{
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_accessed_at", Type: field.TypeTime},
	}
	// AuthSessionsTable holds the schema information for the "auth_sessions" table.
	AuthSessionsTable = &schema.Table{
		Name:       "auth_sessions",
		Columns:    AuthSessionsColumns,
		PrimaryKey: []*schema.Column{AuthSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "authsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{AuthSessionsColumns[1]},
			},
			{
				Name:    "authsession_expires_at",
				Unique:  false,
				Columns: []*schema.Column{AuthSessionsColumns[3]},
			},
		},
	}
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "tool_use", "tool_result"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "tool_input", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_use_id", Type: field.TypeString, Nullable: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_chat_sessions_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[8]},
				RefColumns: []*schema.Column{ChatSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_session_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{ChatMessagesColumns[8], ChatMessagesColumns[6]},
			},
			{
				Name:    "chatmessage_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[8], ChatMessagesColumns[7]},
			},
		},
	}
	// ChatSessionsColumns holds the columns for the "chat_sessions" table.
	ChatSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Default: "New chat"},
		{Name: "vertical", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChatSessionsTable holds the schema information for the "chat_sessions" table.
	ChatSessionsTable = &schema.Table{
		Name:       "chat_sessions",
		Columns:    ChatSessionsColumns,
		PrimaryKey: []*schema.Column{ChatSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatsession_user_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[1], ChatSessionsColumns[5]},
			},
		},
	}
	// StaffUsersColumns holds the columns for the "staff_users" table.
	StaffUsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "acls", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "admin", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StaffUsersTable holds the schema information for the "staff_users" table.
	StaffUsersTable = &schema.Table{
		Name:       "staff_users",
		Columns:    StaffUsersColumns,
		PrimaryKey: []*schema.Column{StaffUsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "staffuser_email",
				Unique:  true,
				Columns: []*schema.Column{StaffUsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ACLConfigsTable,
		AuthSessionsTable,
		ChatMessagesTable,
		ChatSessionsTable,
		StaffUsersTable,
	}
)

func init() {
	ChatMessagesTable.ForeignKeys[0].RefTable = ChatSessionsTable
}
