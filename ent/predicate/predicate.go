// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ACLConfig is the predicate function for aclconfig builders.
type ACLConfig func(*sql.Selector)

// AuthSession is the predicate function for authsession builders.
type AuthSession func(*sql.Selector)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// ChatSession is the predicate function for chatsession builders.
type ChatSession func(*sql.Selector)

// StaffUser is the predicate function for staffuser builders.
type StaffUser func(*sql.Selector)
