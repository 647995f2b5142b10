// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/isprava/concierge/ent/aclconfig"
	"github.com/isprava/concierge/ent/authsession"
	"github.com/isprava/concierge/ent/chatmessage"
	"github.com/isprava/concierge/ent/chatsession"
	"github.com/isprava/concierge/ent/schema"
	"github.com/isprava/concierge/ent/staffuser"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	aclconfigFields := schema.ACLConfig{}.Fields()
	_ = aclconfigFields
	// aclconfigDescUpdatedAt is the schema descriptor for updated_at field.
	aclconfigDescUpdatedAt := aclconfigFields[6].Descriptor()
	// aclconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	aclconfig.DefaultUpdatedAt = aclconfigDescUpdatedAt.Default.(func() time.Time)
	authsessionFields := schema.AuthSession{}.Fields()
	_ = authsessionFields
	// authsessionDescCreatedAt is the schema descriptor for created_at field.
	authsessionDescCreatedAt := authsessionFields[2].Descriptor()
	// authsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	authsession.DefaultCreatedAt = authsessionDescCreatedAt.Default.(func() time.Time)
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[8].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescTitle is the schema descriptor for title field.
	chatsessionDescTitle := chatsessionFields[2].Descriptor()
	// chatsession.DefaultTitle holds the default value on creation for the title field.
	chatsession.DefaultTitle = chatsessionDescTitle.Default.(string)
	// chatsessionDescCreatedAt is the schema descriptor for created_at field.
	chatsessionDescCreatedAt := chatsessionFields[4].Descriptor()
	// chatsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatsession.DefaultCreatedAt = chatsessionDescCreatedAt.Default.(func() time.Time)
	// chatsessionDescUpdatedAt is the schema descriptor for updated_at field.
	chatsessionDescUpdatedAt := chatsessionFields[5].Descriptor()
	// chatsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatsession.DefaultUpdatedAt = chatsessionDescUpdatedAt.Default.(func() time.Time)
	staffuserFields := schema.StaffUser{}.Fields()
	_ = staffuserFields
	// staffuserDescActive is the schema descriptor for active field.
	staffuserDescActive := staffuserFields[4].Descriptor()
	// staffuser.DefaultActive holds the default value on creation for the active field.
	staffuser.DefaultActive = staffuserDescActive.Default.(bool)
	// staffuserDescAdmin is the schema descriptor for admin field.
	staffuserDescAdmin := staffuserFields[5].Descriptor()
	// staffuser.DefaultAdmin holds the default value on creation for the admin field.
	staffuser.DefaultAdmin = staffuserDescAdmin.Default.(bool)
	// staffuserDescCreatedAt is the schema descriptor for created_at field.
	staffuserDescCreatedAt := staffuserFields[6].Descriptor()
	// staffuser.DefaultCreatedAt holds the default value on creation for the created_at field.
	staffuser.DefaultCreatedAt = staffuserDescCreatedAt.Default.(func() time.Time)
}
