package hunt

import "context"

// Service defines the interface for the trick-or-treat game
type Service interface {
	// HandleMessage runs the spawn gate for an inbound guild message and
	// registers a pending spawn when every check passes
	HandleMessage(ctx context.Context, input *HandleMessageInput) (*HandleMessageOutput, error)

	// ConfirmSpawn attaches the posted announcement message to a pending
	// spawn
	ConfirmSpawn(ctx context.Context, input *ConfirmSpawnInput) error

	// AbortSpawn drops a pending spawn whose announcement failed to post
	AbortSpawn(ctx context.Context, input *AbortSpawnInput) error

	// OpenDoor handles a user's trick or treat response
	OpenDoor(ctx context.Context, input *OpenDoorInput) (*OpenDoorOutput, error)

	// SweepExpired evicts spawns nobody answered in time and returns them
	// so the caller can announce the disappearance
	SweepExpired(ctx context.Context, input *SweepExpiredInput) (*SweepExpiredOutput, error)

	// GetScoreboard returns the guild's collection leaderboard
	GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error)

	// GetInventory returns the items a user has collected in a guild
	GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)

	// GetSettings returns the guild's configuration
	GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error)

	// UpdateSettings validates and applies a partial configuration change
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error)
}
