package hunt

import (
	"github.com/trickcord/trickcord/internal/catalog"
	"github.com/trickcord/trickcord/internal/common/clock"
	"github.com/trickcord/trickcord/internal/lottery"
	"github.com/trickcord/trickcord/internal/models"
	inventoryRepo "github.com/trickcord/trickcord/internal/repositories/inventory"
	settingsRepo "github.com/trickcord/trickcord/internal/repositories/settings"
	"github.com/trickcord/trickcord/internal/rng"
	"github.com/trickcord/trickcord/internal/spawn"
)

// DoorOutcome is the result of answering the door
type DoorOutcome string

const (
	// OutcomeNoVisitor means no monster was waiting for the responder
	OutcomeNoVisitor DoorOutcome = "no_visitor"

	// OutcomeScaredOff means the responder used the wrong action and the
	// monster fled without handing anything out
	OutcomeScaredOff DoorOutcome = "scared_off"

	// OutcomeTreated means the responder answered correctly and got an item
	OutcomeTreated DoorOutcome = "treated"
)

// Settings validation bounds, matching the configuration surface.
const (
	MinChance   = 0
	MaxChance   = 100
	MinInterval = 60
	MaxInterval = 86400
	MinTimeout  = 10
	MaxTimeout  = 3600
)

// Config holds configuration for the hunt service
type Config struct {
	// Repository dependencies
	SettingsRepo  settingsRepo.Repository
	InventoryRepo inventoryRepo.Repository

	// Static data and algorithms
	Catalog *catalog.Catalog
	Lottery *lottery.Lottery
	Tracker *spawn.Tracker

	// Service dependencies
	Random rng.Source
	Clock  clock.Clock
}

// HandleMessageInput describes an inbound guild message for the spawn gate
type HandleMessageInput struct {
	GuildID   string
	ChannelID string
	AuthorID  string

	// AuthorIsBot suppresses spawns for bot-authored messages
	AuthorIsBot bool

	// AuthorRoleIDs are checked against the guild's ignored roles
	AuthorRoleIDs []string
}

// HandleMessageOutput contains the result of the spawn gate
type HandleMessageOutput struct {
	// Spawned is true when a monster was registered for this message
	Spawned bool

	// Spawn is the registered spawn; nil unless Spawned
	Spawn *models.SpawnState

	// Monster is the visiting monster; nil unless Spawned
	Monster *models.Monster
}

// ConfirmSpawnInput contains parameters for recording the announcement
type ConfirmSpawnInput struct {
	GuildID   string
	SpawnID   string
	MessageID string
}

// AbortSpawnInput contains parameters for dropping an unannounced spawn
type AbortSpawnInput struct {
	GuildID string
	SpawnID string
}

// OpenDoorInput describes a user's trick or treat response
type OpenDoorInput struct {
	GuildID   string
	ChannelID string
	UserID    string
	Action    models.ActionType
}

// RoleChange describes a champion role transfer the caller should perform.
// Executing it is best-effort; failures are logged, never escalated.
type RoleChange struct {
	RoleID string

	// GrantToUserID is the new champion
	GrantToUserID string

	// RevokeFromUserID is the previous champion; empty when there was none
	RevokeFromUserID string
}

// OpenDoorOutput contains the result of answering the door
type OpenDoorOutput struct {
	Outcome DoorOutcome

	// Spawn and Monster identify the consumed spawn; nil for OutcomeNoVisitor
	Spawn   *models.SpawnState
	Monster *models.Monster

	// Item is the reward; nil unless OutcomeTreated
	Item *models.Item

	// Duplicate is true when the responder already owned the item; nothing
	// was recorded in that case
	Duplicate bool

	// Count is the responder's collection size after the add
	Count int

	// CollectedAll is true when Count covers the whole catalog
	CollectedAll bool

	// RoleChange is non-nil when the responder just took the champion role
	RoleChange *RoleChange
}

// SweepExpiredInput contains parameters for the expiry sweep
type SweepExpiredInput struct{}

// SweepExpiredOutput contains the spawns evicted by the sweep
type SweepExpiredOutput struct {
	Expired []*models.SpawnState
}

// GetScoreboardInput contains parameters for retrieving the leaderboard
type GetScoreboardInput struct {
	GuildID string
}

// GetScoreboardOutput contains the guild leaderboard
type GetScoreboardOutput struct {
	Entries []*models.LeaderboardEntry
}

// GetInventoryInput contains parameters for listing a user's collection
type GetInventoryInput struct {
	GuildID string
	UserID  string
}

// GetInventoryOutput contains a user's collection
type GetInventoryOutput struct {
	// Items are the collected items resolved against the catalog
	Items []models.Item

	// CatalogSize is the total number of collectible items
	CatalogSize int
}

// GetSettingsInput contains parameters for reading guild settings
type GetSettingsInput struct {
	GuildID string

	// Fresh reads the store directly, bypassing the settings cache. Set by
	// callers about to write back a value derived from the read.
	Fresh bool
}

// GetSettingsOutput contains the guild settings
type GetSettingsOutput struct {
	Settings *models.GuildSettings
}

// UpdateSettingsInput contains a partial settings change; nil fields are
// left unchanged
type UpdateSettingsInput struct {
	GuildID string

	Chance   *int
	Interval *int
	Timeout  *int
	RoleID   *string

	AllowedChannels *[]string
	IgnoredChannels *[]string
	IgnoredRoles    *[]string
}

// UpdateSettingsOutput contains the settings after the change
type UpdateSettingsOutput struct {
	Settings *models.GuildSettings
}
