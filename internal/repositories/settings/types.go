package settings

import "github.com/trickcord/trickcord/internal/models"

// GetOrCreateInput contains parameters for fetching guild settings
type GetOrCreateInput struct {
	GuildID string

	// Fresh bypasses any caching layer and reads the store directly.
	// Read-modify-write callers set it so they never compute against a
	// stale entry.
	Fresh bool
}

// GetOrCreateOutput contains the guild settings
type GetOrCreateOutput struct {
	Settings *models.GuildSettings
}

// UpdateInput contains a partial settings update; nil fields are left
// unchanged
type UpdateInput struct {
	GuildID string

	Chance   *int
	Interval *int
	Timeout  *int
	RoleID   *string

	AllowedChannels *[]string
	IgnoredChannels *[]string
	IgnoredRoles    *[]string
}

// UpdateOutput contains the settings after the update
type UpdateOutput struct {
	Settings *models.GuildSettings
}
