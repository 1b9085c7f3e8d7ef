package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/trickcord/trickcord/internal/services/hunt"
)

// ConfigCommand manages the per-guild bot configuration. Restricted to
// members with Manage Server.
type ConfigCommand struct {
	BaseCommand
	huntService hunt.Service
}

// NewConfigCommand creates a new config command
func NewConfigCommand(huntService hunt.Service) *ConfigCommand {
	return &ConfigCommand{
		BaseCommand: BaseCommand{
			Name:        "config",
			Description: "Configure the trick-or-treat game for this server",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "view",
					Description: "Show the current settings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "chance",
					Description: "Set the percent chance of a visit per message",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "percent",
							Description: fmt.Sprintf("Chance between %d and %d", hunt.MinChance, hunt.MaxChance),
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "interval",
					Description: "Set the minimum seconds between visits",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "seconds",
							Description: fmt.Sprintf("Interval between %d and %d seconds", hunt.MinInterval, hunt.MaxInterval),
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "timeout",
					Description: "Set how long a visitor waits at the door",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "seconds",
							Description: fmt.Sprintf("Timeout between %d and %d seconds", hunt.MinTimeout, hunt.MaxTimeout),
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "role",
					Description: "Set the champion role, or clear it by omitting the role",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionRole,
							Name:        "role",
							Description: "Role given to whoever holds the most items",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "enable",
					Description: "Allow visits in a channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionChannel,
							Name:        "channel",
							Description: "Channel to enable",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "disable",
					Description: "Stop visits in a channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionChannel,
							Name:        "channel",
							Description: "Channel to disable",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "ignore",
					Description: "Ignore messages from a channel or role",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionChannel,
							Name:        "channel",
							Description: "Channel to ignore",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionRole,
							Name:        "role",
							Description: "Role to ignore",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "unignore",
					Description: "Stop ignoring a channel or role",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionChannel,
							Name:        "channel",
							Description: "Channel to stop ignoring",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionRole,
							Name:        "role",
							Description: "Role to stop ignoring",
							Required:    false,
						},
					},
				},
			},
		},
		huntService: huntService,
	}
}

// GetCommand returns the application command definition, restricted to
// members who can manage the guild
func (c *ConfigCommand) GetCommand() *discordgo.ApplicationCommand {
	cmd := c.BaseCommand.GetCommand()
	manageGuild := int64(discordgo.PermissionManageServer)
	cmd.DefaultMemberPermissions = &manageGuild
	return cmd
}

// Handle processes the command
func (c *ConfigCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return RespondWithEphemeralMessage(s, i, "Pick a config subcommand.")
	}

	sub := options[0]
	ctx := context.Background()

	switch sub.Name {
	case "view":
		output, err := c.huntService.GetSettings(ctx, &hunt.GetSettingsInput{GuildID: i.GuildID})
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		return RespondWithEphemeralEmbed(s, i, settingsEmbed(output.Settings), nil)

	case "chance":
		value := int(sub.Options[0].IntValue())
		return c.apply(s, i, &hunt.UpdateSettingsInput{GuildID: i.GuildID, Chance: &value},
			fmt.Sprintf("Visit chance set to **%d%%**.", value))

	case "interval":
		value := int(sub.Options[0].IntValue())
		return c.apply(s, i, &hunt.UpdateSettingsInput{GuildID: i.GuildID, Interval: &value},
			fmt.Sprintf("Visit interval set to **%d seconds**.", value))

	case "timeout":
		value := int(sub.Options[0].IntValue())
		return c.apply(s, i, &hunt.UpdateSettingsInput{GuildID: i.GuildID, Timeout: &value},
			fmt.Sprintf("Visit timeout set to **%d seconds**.", value))

	case "role":
		roleID := ""
		message := "Champion role cleared."
		for _, opt := range sub.Options {
			if opt.Name == "role" {
				roleID = opt.RoleValue(s, i.GuildID).ID
				message = fmt.Sprintf("Champion role set to <@&%s>.", roleID)
			}
		}
		return c.apply(s, i, &hunt.UpdateSettingsInput{GuildID: i.GuildID, RoleID: &roleID}, message)

	case "enable":
		channelID := sub.Options[0].ChannelValue(s).ID
		return c.updateList(s, i, listAllowed, channelID, true,
			fmt.Sprintf("Visitors may now appear in <#%s>.", channelID))

	case "disable":
		channelID := sub.Options[0].ChannelValue(s).ID
		return c.updateList(s, i, listAllowed, channelID, false,
			fmt.Sprintf("Visitors will no longer appear in <#%s>.", channelID))

	case "ignore", "unignore":
		adding := sub.Name == "ignore"
		for _, opt := range sub.Options {
			switch opt.Name {
			case "channel":
				channelID := opt.ChannelValue(s).ID
				message := fmt.Sprintf("Now ignoring <#%s>.", channelID)
				if !adding {
					message = fmt.Sprintf("No longer ignoring <#%s>.", channelID)
				}
				return c.updateList(s, i, listIgnoredChannels, channelID, adding, message)
			case "role":
				roleID := opt.RoleValue(s, i.GuildID).ID
				message := fmt.Sprintf("Now ignoring <@&%s>.", roleID)
				if !adding {
					message = fmt.Sprintf("No longer ignoring <@&%s>.", roleID)
				}
				return c.updateList(s, i, listIgnoredRoles, roleID, adding, message)
			}
		}
		return RespondWithEphemeralMessage(s, i, "Pick a channel or a role.")
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown subcommand %q.", sub.Name))
}

// apply runs a settings update and reports the result or the validation
// error back to the caller
func (c *ConfigCommand) apply(s *discordgo.Session, i *discordgo.InteractionCreate, input *hunt.UpdateSettingsInput, success string) error {
	if _, err := c.huntService.UpdateSettings(context.Background(), input); err != nil {
		return RespondWithEphemeralMessage(s, i, "❌ "+err.Error())
	}
	return RespondWithEphemeralMessage(s, i, "✅ "+success)
}

// settingsList identifies which of the guild's ID lists a config
// subcommand edits
type settingsList int

const (
	listAllowed settingsList = iota
	listIgnoredChannels
	listIgnoredRoles
)

// updateList reads the current settings, adds or removes an ID from one of
// the lists, and writes the result back
func (c *ConfigCommand) updateList(s *discordgo.Session, i *discordgo.InteractionCreate, list settingsList, id string, add bool, success string) error {
	ctx := context.Background()

	// Fresh read: the new list is computed from this value and written
	// back, so a cached entry could silently undo a recent edit.
	current, err := c.huntService.GetSettings(ctx, &hunt.GetSettingsInput{GuildID: i.GuildID, Fresh: true})
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	var existing []string
	switch list {
	case listAllowed:
		existing = current.Settings.AllowedChannels
	case listIgnoredChannels:
		existing = current.Settings.IgnoredChannels
	case listIgnoredRoles:
		existing = current.Settings.IgnoredRoles
	}

	updated := make([]string, 0, len(existing)+1)
	for _, existingID := range existing {
		if existingID != id {
			updated = append(updated, existingID)
		}
	}
	if add {
		updated = append(updated, id)
	}

	input := &hunt.UpdateSettingsInput{GuildID: i.GuildID}
	switch list {
	case listAllowed:
		input.AllowedChannels = &updated
	case listIgnoredChannels:
		input.IgnoredChannels = &updated
	case listIgnoredRoles:
		input.IgnoredRoles = &updated
	}

	return c.apply(s, i, input, success)
}
