package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/trickcord/trickcord/internal/models"
	"github.com/trickcord/trickcord/internal/services/hunt"
)

// embedColor is the accent color used on every embed the bot posts
const embedColor = 0x5865F2

// scoreboardPageSize is the number of leaderboard rows per page
const scoreboardPageSize = 10

// Component custom IDs. The door buttons ride on spawn announcements; the
// scoreboard buttons carry the page they navigate to.
const (
	ButtonDoorTrick = "door:trick"
	ButtonDoorTreat = "door:treat"

	scoreboardPagePrefix  = "scoreboard:page:"
	inventoryFilterPrefix = "inventory:rarity:"
)

// rarityFootnotes flavor the reward embed by how rare the item is
var rarityFootnotes = map[models.Rarity]string{
	models.RarityCommon:   "There's nothing special about it.",
	models.RarityUncommon: "You wonder where they got it...",
	models.RarityRare:     "You feel special.",
}

// spawnEmbed announces a visiting monster, hinting at the command it expects
func spawnEmbed(monster *models.Monster, action models.ActionType) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "A trick-or-treater has stopped by!",
		Description: fmt.Sprintf("Open the door and greet them with **/%s**!", action),
		Color:       embedColor,
		Image: &discordgo.MessageEmbedImage{
			URL: monster.ImageURL,
		},
	}
}

// spawnComponents builds the door buttons attached to an announcement
func spawnComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Trick",
					Style:    discordgo.PrimaryButton,
					CustomID: ButtonDoorTrick,
					Emoji:    &discordgo.ComponentEmoji{Name: "👻"},
				},
				discordgo.Button{
					Label:    "Treat",
					Style:    discordgo.SuccessButton,
					CustomID: ButtonDoorTreat,
					Emoji:    &discordgo.ComponentEmoji{Name: "🍬"},
				},
			},
		},
	}
}

// expiredEmbed replaces an announcement nobody answered in time
func expiredEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "The trick-or-treater disappeared...",
		Description: "No one noticed them and they left :(",
		Color:       embedColor,
	}
}

// scaredOffEmbed reports that the responder used the wrong command
func scaredOffEmbed(userID string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Oh no!",
		Description: fmt.Sprintf("<@%s> used the wrong command and seemed to scare them off.", userID),
		Color:       embedColor,
	}
}

// treatedEmbed reports a successful exchange and the item handed out
func treatedEmbed(userID string, item *models.Item, monster *models.Monster) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Happy Halloween!",
		Description: fmt.Sprintf("As a thank you for your kindness, they give <@%s> one **%s**!", userID, item.Name),
		Color:       embedColor,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: monster.ImageURL,
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: rarityFootnotes[item.Rarity],
		},
	}
}

// duplicateEmbed reports an exchange where the responder already owned the
// reward
func duplicateEmbed(userID string, item *models.Item) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Happy Halloween!",
		Description: fmt.Sprintf("They offer <@%s> one **%s**... but you already had this item!", userID, item.Name),
		Color:       embedColor,
	}
}

// collectedAllEmbed congratulates a user who completed the whole catalog
func collectedAllEmbed(userID string, catalogSize int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎃 Congratulations! 🎃",
		Description: fmt.Sprintf("<@%s> has collected all %d items! Happy Halloween!", userID, catalogSize),
		Color:       embedColor,
	}
}

// noVisitorMessage is the ephemeral reply when nothing is waiting at the door
const noVisitorMessage = "There is no one knockin' on your door."

// scoreboardEmbed renders one page of the guild leaderboard
func scoreboardEmbed(guildName string, entries []*models.LeaderboardEntry, page int) *discordgo.MessageEmbed {
	totalPages := (len(entries) + scoreboardPageSize - 1) / scoreboardPageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 0 {
		page = 0
	}
	if page >= totalPages {
		page = totalPages - 1
	}

	start := page * scoreboardPageSize
	end := start + scoreboardPageSize
	if end > len(entries) {
		end = len(entries)
	}

	var sb strings.Builder
	for idx, entry := range entries[start:end] {
		rank := start + idx + 1
		fmt.Fprintf(&sb, "**%d.** <@%s> — %d items\n", rank, entry.UserID, entry.Count)
	}
	if sb.Len() == 0 {
		sb.WriteString("No one has collected anything yet. Keep an ear out for knocking!")
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎃 Scoreboard | %s 🎃", guildName),
		Description: sb.String(),
		Color:       embedColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Page %d/%d", page+1, totalPages),
		},
	}
}

// scoreboardComponents builds the pagination buttons for a leaderboard page
func scoreboardComponents(entries int, page int) []discordgo.MessageComponent {
	totalPages := (entries + scoreboardPageSize - 1) / scoreboardPageSize
	if totalPages <= 1 {
		return nil
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Previous",
					Style:    discordgo.SecondaryButton,
					CustomID: fmt.Sprintf("%s%d", scoreboardPagePrefix, page-1),
					Disabled: page <= 0,
				},
				discordgo.Button{
					Label:    "Next",
					Style:    discordgo.SecondaryButton,
					CustomID: fmt.Sprintf("%s%d", scoreboardPagePrefix, page+1),
					Disabled: page >= totalPages-1,
				},
			},
		},
	}
}

// inventoryEmbed renders a user's collection grouped by rarity, optionally
// filtered to a single tier
func inventoryEmbed(userID string, items []models.Item, catalogSize int, filter *models.Rarity) *discordgo.MessageEmbed {
	grouped := make(map[models.Rarity][]string)
	for _, item := range items {
		grouped[item.Rarity] = append(grouped[item.Rarity], item.Name)
	}

	var fields []*discordgo.MessageEmbedField
	for _, rarity := range models.Rarities {
		if filter != nil && rarity != *filter {
			continue
		}
		names := grouped[rarity]
		if len(names) == 0 {
			continue
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  rarity.String(),
			Value: strings.Join(names, "\n"),
		})
	}

	description := fmt.Sprintf("<@%s> has collected **%d/%d** items.", userID, len(items), catalogSize)
	if len(items) == 0 {
		description = fmt.Sprintf("<@%s> hasn't collected anything yet.", userID)
	}

	return &discordgo.MessageEmbed{
		Title:       "🍬 Inventory 🍬",
		Description: description,
		Color:       embedColor,
		Fields:      fields,
	}
}

// inventoryComponents builds the rarity filter select attached to an
// inventory view. The custom ID carries the viewed user so the filter
// re-renders the same collection.
func inventoryComponents(userID string, filter *models.Rarity) []discordgo.MessageComponent {
	options := []discordgo.SelectMenuOption{
		{Label: "All rarities", Value: "all", Default: filter == nil},
	}
	for _, rarity := range models.Rarities {
		options = append(options, discordgo.SelectMenuOption{
			Label:   rarity.String(),
			Value:   rarity.String(),
			Default: filter != nil && *filter == rarity,
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    inventoryFilterPrefix + userID,
					Placeholder: "Filter by rarity",
					Options:     options,
				},
			},
		},
	}
}

// settingsEmbed renders the guild configuration view
func settingsEmbed(settings *models.GuildSettings) *discordgo.MessageEmbed {
	channelList := func(ids []string) string {
		if len(ids) == 0 {
			return "None"
		}
		mentions := make([]string, 0, len(ids))
		for _, id := range ids {
			mentions = append(mentions, fmt.Sprintf("<#%s>", id))
		}
		return strings.Join(mentions, ", ")
	}

	role := "None"
	if settings.RoleID != "" {
		role = fmt.Sprintf("<@&%s>", settings.RoleID)
	}

	roleList := "None"
	if len(settings.IgnoredRoles) > 0 {
		mentions := make([]string, 0, len(settings.IgnoredRoles))
		for _, id := range settings.IgnoredRoles {
			mentions = append(mentions, fmt.Sprintf("<@&%s>", id))
		}
		roleList = strings.Join(mentions, ", ")
	}

	return &discordgo.MessageEmbed{
		Title: "🎃 Trick-or-Treat Settings 🎃",
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Spawn chance", Value: fmt.Sprintf("%d%%", settings.Chance), Inline: true},
			{Name: "Spawn cooldown", Value: fmt.Sprintf("%ds", settings.Interval), Inline: true},
			{Name: "Visit timeout", Value: fmt.Sprintf("%ds", settings.Timeout), Inline: true},
			{Name: "Champion role", Value: role, Inline: true},
			{Name: "Enabled channels", Value: channelList(settings.AllowedChannels)},
			{Name: "Ignored channels", Value: channelList(settings.IgnoredChannels)},
			{Name: "Ignored roles", Value: roleList},
		},
	}
}

// outcomeEmbed maps a door result onto the embed to announce it with.
// Returns nil for outcomes that only warrant an ephemeral reply.
func outcomeEmbed(userID string, output *hunt.OpenDoorOutput) *discordgo.MessageEmbed {
	switch output.Outcome {
	case hunt.OutcomeScaredOff:
		return scaredOffEmbed(userID)
	case hunt.OutcomeTreated:
		if output.Duplicate {
			return duplicateEmbed(userID, output.Item)
		}
		return treatedEmbed(userID, output.Item, output.Monster)
	default:
		return nil
	}
}
