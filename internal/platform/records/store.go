package records

import "context"

// ScopeGlobal holds device-level records; every other scope is a user ID.
const ScopeGlobal = "global"

// Record names shared by the modules. Each name addresses one logical
// JSON document inside a scope.
const (
	NameUsersIndex    = "users_index"
	NameActiveAccount = "active_account"
	NameProfile       = "profile"
	NameTopics        = "topics"
	NameSessions      = "sessions"
	NameActiveTimer   = "active_timer"
	NameObjectives    = "objectives"
	NameGymDays       = "gym_days"
	NameChatHistory   = "chat_history"
)

// Store is the persistence contract: read, replace or delete the current
// value of one named record inside a scope. Writes complete before the
// call returns; a Get after a Put observes the new value.
type Store interface {
	// Get decodes the record into out. Returns apperrors.ErrNotFound
	// when the record is absent.
	Get(ctx context.Context, scope, name string, out any) error
	Put(ctx context.Context, scope, name string, value any) error
	// Delete removes the record entirely; deleting an absent record is
	// not an error.
	Delete(ctx context.Context, scope, name string) error
}
