package models

import "time"

// OwnershipRecord records that a user owns an item in a guild. The natural
// key (GuildID, UserID, ItemID) is unique; the ledger is append-only.
type OwnershipRecord struct {
	// GuildID is the guild the item was collected in
	GuildID string

	// UserID is the owner
	UserID string

	// ItemID is the collected item
	ItemID int

	// AcquiredAt is when the item was collected
	AcquiredAt time.Time
}

// LeaderboardEntry is a derived scoreboard row for a guild
type LeaderboardEntry struct {
	// UserID is the collector
	UserID string

	// Count is the number of distinct items the user owns in the guild
	Count int

	// LastAcquiredAt is when the user reached their current count; it breaks
	// ties in favor of whoever got there first
	LastAcquiredAt time.Time
}
