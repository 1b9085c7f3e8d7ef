package models

// Default guild settings, applied on first touch.
const (
	// DefaultChance is the percent chance of a spawn per eligible message
	DefaultChance = 20

	// DefaultInterval is the minimum seconds between spawns in a guild
	DefaultInterval = 300

	// DefaultTimeout is how long a monster waits before disappearing
	DefaultTimeout = 60
)

// GuildSettings holds the per-guild configuration for the bot
type GuildSettings struct {
	// GuildID is the guild these settings belong to
	GuildID string `json:"guild_id"`

	// Chance is the spawn chance as an integer percentage (0-100); it is
	// divided by 100 at the point of use
	Chance int `json:"chance"`

	// Interval is the minimum number of seconds between spawns
	Interval int `json:"interval"`

	// Timeout is how many seconds a monster waits for a response
	Timeout int `json:"timeout"`

	// RoleID is the reward role given to the guild's champion; empty when
	// no reward role is configured
	RoleID string `json:"role_id"`

	// AllowedChannels are the channels monsters may appear in
	AllowedChannels []string `json:"allowed_channels"`

	// IgnoredChannels are channels the bot never responds in, even when
	// they appear in AllowedChannels
	IgnoredChannels []string `json:"ignored_channels"`

	// IgnoredRoles are roles whose messages never trigger a spawn
	IgnoredRoles []string `json:"ignored_roles"`
}

// NewGuildSettings returns the default settings for a guild
func NewGuildSettings(guildID string) *GuildSettings {
	return &GuildSettings{
		GuildID:         guildID,
		Chance:          DefaultChance,
		Interval:        DefaultInterval,
		Timeout:         DefaultTimeout,
		AllowedChannels: []string{},
		IgnoredChannels: []string{},
		IgnoredRoles:    []string{},
	}
}
