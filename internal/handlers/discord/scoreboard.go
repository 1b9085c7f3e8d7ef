package discord

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/trickcord/trickcord/internal/services/hunt"
)

// ScoreboardCommand shows the guild's collection leaderboard
type ScoreboardCommand struct {
	BaseCommand
	huntService hunt.Service
}

// NewScoreboardCommand creates a new scoreboard command
func NewScoreboardCommand(huntService hunt.Service) *ScoreboardCommand {
	return &ScoreboardCommand{
		BaseCommand: BaseCommand{
			Name:        "scoreboard",
			Description: "Show who has collected the most items",
		},
		huntService: huntService,
	}
}

// Handle processes the command
func (c *ScoreboardCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	embed, components, err := c.renderPage(s, i.GuildID, 0)
	if err != nil {
		return err
	}
	return RespondWithEmbed(s, i, embed, components)
}

// HandlePage re-renders the scoreboard at the page carried in the button's
// custom ID
func (c *ScoreboardCommand) HandlePage(s *discordgo.Session, i *discordgo.InteractionCreate, rawPage string) error {
	page, err := strconv.Atoi(rawPage)
	if err != nil {
		return fmt.Errorf("bad scoreboard page %q: %w", rawPage, err)
	}

	embed, components, err := c.renderPage(s, i.GuildID, page)
	if err != nil {
		return err
	}
	return UpdateWithEmbed(s, i, embed, components)
}

func (c *ScoreboardCommand) renderPage(s *discordgo.Session, guildID string, page int) (*discordgo.MessageEmbed, []discordgo.MessageComponent, error) {
	output, err := c.huntService.GetScoreboard(context.Background(), &hunt.GetScoreboardInput{
		GuildID: guildID,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	return scoreboardEmbed(c.guildName(s, guildID), output.Entries, page),
		scoreboardComponents(len(output.Entries), page), nil
}

// guildName resolves a display name for the scoreboard title, preferring
// the session state cache
func (c *ScoreboardCommand) guildName(s *discordgo.Session, guildID string) string {
	if guild, err := s.State.Guild(guildID); err == nil {
		return guild.Name
	}
	if guild, err := s.Guild(guildID); err == nil {
		return guild.Name
	}
	return "This Server"
}
