package models

import "time"

// ActionType is the response a user gives at the door
type ActionType string

const (
	// ActionTrick means the user tricks the visitor
	ActionTrick ActionType = "trick"

	// ActionTreat means the user treats the visitor
	ActionTreat ActionType = "treat"
)

// SpawnState tracks a monster that is currently waiting at a guild's door.
// At most one may exist per guild at a time.
type SpawnState struct {
	// ID is the unique identifier for this spawn
	ID string

	// GuildID is the guild the monster appeared in
	GuildID string

	// ChannelID is the channel the announcement was posted in; responses in
	// any other channel do not count
	ChannelID string

	// MonsterID is the visiting monster
	MonsterID int

	// Action is the response required to win the item
	Action ActionType

	// MessageID is the announcement message, filled in once the post succeeds
	MessageID string

	// CreatedAt is when the spawn was registered
	CreatedAt time.Time

	// ExpiresAt is when the monster leaves if no one answers
	ExpiresAt time.Time
}
