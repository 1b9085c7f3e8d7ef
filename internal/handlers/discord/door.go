package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/trickcord/trickcord/internal/logger"
	"github.com/trickcord/trickcord/internal/models"
	"github.com/trickcord/trickcord/internal/services/hunt"
)

// DoorResultFunc performs the side effects of a successful exchange
type DoorResultFunc func(s *discordgo.Session, guildID, channelID, userID string, output *hunt.OpenDoorOutput)

// DoorCommand answers the door with a fixed action. The bot registers two
// instances, one per action.
type DoorCommand struct {
	BaseCommand
	huntService hunt.Service
	action      models.ActionType
	applyResult DoorResultFunc
}

// NewDoorCommand creates the trick or treat command for the given action
func NewDoorCommand(huntService hunt.Service, action models.ActionType, applyResult DoorResultFunc) *DoorCommand {
	description := "Play a trick on whoever is at the door"
	if action == models.ActionTreat {
		description = "Offer a treat to whoever is at the door"
	}

	return &DoorCommand{
		BaseCommand: BaseCommand{
			Name:        string(action),
			Description: description,
		},
		huntService: huntService,
		action:      action,
		applyResult: applyResult,
	}
}

// Handle processes the command
func (c *DoorCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Member == nil || i.Member.User == nil {
		return RespondWithEphemeralMessage(s, i, "This only works inside a server.")
	}
	userID := i.Member.User.ID

	output, err := c.huntService.OpenDoor(context.Background(), &hunt.OpenDoorInput{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		UserID:    userID,
		Action:    c.action,
	})
	if err != nil {
		return fmt.Errorf("failed to open door: %w", err)
	}

	if output.Outcome == hunt.OutcomeNoVisitor {
		return RespondWithEphemeralMessage(s, i, noVisitorMessage)
	}

	if err := RespondWithEmbed(s, i, outcomeEmbed(userID, output), nil); err != nil {
		return err
	}

	// The spawn is consumed, so the announcement's buttons must go too;
	// the button path retires them via the component update instead.
	disarmAnnouncement(s, output.Spawn)

	c.applyResult(s, i.GuildID, i.ChannelID, userID, output)
	return nil
}

// disarmAnnouncement strips the door buttons from a consumed spawn's
// announcement. Best-effort; the spawn is already settled either way.
func disarmAnnouncement(s *discordgo.Session, state *models.SpawnState) {
	if state == nil || state.MessageID == "" {
		return
	}

	edit := discordgo.NewMessageEdit(state.ChannelID, state.MessageID)
	components := []discordgo.MessageComponent{}
	edit.Components = &components

	if _, err := s.ChannelMessageEditComplex(edit); err != nil {
		logger.Warn("failed to disarm announcement",
			zap.String("guild_id", state.GuildID),
			zap.String("message_id", state.MessageID),
			zap.Error(err))
	}
}
