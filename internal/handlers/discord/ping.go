package discord

import (
	"github.com/bwmarrin/discordgo"
)

// PingCommand is a simple liveness check
type PingCommand struct {
	BaseCommand
}

// NewPingCommand creates a new ping command
func NewPingCommand() *PingCommand {
	return &PingCommand{
		BaseCommand: BaseCommand{
			Name:        "ping",
			Description: "Check if the bot is responsive",
		},
	}
}

// Handle processes the command
func (c *PingCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return RespondWithEphemeralMessage(s, i, "🎃 Pong!")
}
