package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/trickcord/trickcord/internal/models"
	"github.com/trickcord/trickcord/internal/services/hunt"
)

// InventoryCommand shows the items a user has collected
type InventoryCommand struct {
	BaseCommand
	huntService hunt.Service
}

// NewInventoryCommand creates a new inventory command
func NewInventoryCommand(huntService hunt.Service) *InventoryCommand {
	return &InventoryCommand{
		BaseCommand: BaseCommand{
			Name:        "inventory",
			Description: "Show the items you've collected from trick-or-treaters",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Show another user's collection instead",
					Required:    false,
				},
			},
		},
		huntService: huntService,
	}
}

// Handle processes the command
func (c *InventoryCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Member == nil || i.Member.User == nil {
		return RespondWithEphemeralMessage(s, i, "This only works inside a server.")
	}

	userID := i.Member.User.ID
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			userID = opt.UserValue(s).ID
		}
	}

	output, err := c.huntService.GetInventory(context.Background(), &hunt.GetInventoryInput{
		GuildID: i.GuildID,
		UserID:  userID,
	})
	if err != nil {
		return fmt.Errorf("failed to get inventory: %w", err)
	}

	embed := inventoryEmbed(userID, output.Items, output.CatalogSize, nil)
	return RespondWithEphemeralEmbed(s, i, embed, inventoryComponents(userID, nil))
}

// HandleFilter re-renders an inventory view with the selected rarity filter.
// The viewed user rides in the component's custom ID.
func (c *InventoryCommand) HandleFilter(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	var filter *models.Rarity
	if values := i.MessageComponentData().Values; len(values) > 0 && values[0] != "all" {
		rarity, err := models.ParseRarity(values[0])
		if err != nil {
			return err
		}
		filter = &rarity
	}

	output, err := c.huntService.GetInventory(context.Background(), &hunt.GetInventoryInput{
		GuildID: i.GuildID,
		UserID:  userID,
	})
	if err != nil {
		return fmt.Errorf("failed to get inventory: %w", err)
	}

	embed := inventoryEmbed(userID, output.Items, output.CatalogSize, filter)
	return UpdateWithEmbed(s, i, embed, inventoryComponents(userID, filter))
}
