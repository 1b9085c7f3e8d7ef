package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/trickcord/trickcord/internal/logger"
	"github.com/trickcord/trickcord/internal/models"
	"github.com/trickcord/trickcord/internal/services/hunt"
)

// sweepInterval is how often expired spawns are collected and their
// announcements edited
const sweepInterval = time.Second

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID

	huntService hunt.Service
	config      *Config

	scoreboard *ScoreboardCommand
	inventory  *InventoryCommand

	stopSweep chan struct{}
	sweepDone sync.WaitGroup
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Hunt service
	HuntService hunt.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.HuntService == nil {
		return nil, errors.New("hunt service cannot be nil")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Spawns are driven by regular guild messages, so the message intent
	// is required on top of the default set
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		session:     session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		huntService: cfg.HuntService,
		config:      cfg,
		stopSweep:   make(chan struct{}),
	}

	// Component routing targets these, so they must exist before any
	// handler can fire
	bot.scoreboard = NewScoreboardCommand(cfg.HuntService)
	bot.inventory = NewInventoryCommand(cfg.HuntService)

	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// Start initializes the Discord connection, registers commands, and begins
// the expiry sweep
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	handlers := []CommandHandler{
		NewDoorCommand(b.huntService, models.ActionTrick, b.applyDoorResult),
		NewDoorCommand(b.huntService, models.ActionTreat, b.applyDoorResult),
		b.inventory,
		b.scoreboard,
		NewConfigCommand(b.huntService),
		NewPingCommand(),
	}
	for _, cmd := range handlers {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	b.sweepDone.Add(1)
	go b.runSweeper()

	logger.Info("bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	close(b.stopSweep)
	b.sweepDone.Wait()

	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			logger.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err))
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register the command for that specific
	// guild; otherwise register it globally
	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	logger.Debug("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID))

	return nil
}

// handleInteraction routes interactions to the appropriate handler
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		commandName := i.ApplicationCommandData().Name
		cmd, exists := b.commands[commandName]
		if !exists {
			logger.Warn("unknown command", zap.String("command", commandName))
			return
		}

		if err := cmd.Handle(s, i); err != nil {
			logger.Error("error handling command",
				zap.String("command", commandName),
				zap.Error(err))
		}

	case discordgo.InteractionMessageComponent:
		b.handleComponentInteraction(s, i)
	}
}

// handleComponentInteraction routes button and select menu interactions
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	var err error
	switch {
	case customID == ButtonDoorTrick:
		err = b.handleDoorButton(s, i, models.ActionTrick)
	case customID == ButtonDoorTreat:
		err = b.handleDoorButton(s, i, models.ActionTreat)
	case strings.HasPrefix(customID, scoreboardPagePrefix):
		err = b.scoreboard.HandlePage(s, i, strings.TrimPrefix(customID, scoreboardPagePrefix))
	case strings.HasPrefix(customID, inventoryFilterPrefix):
		err = b.inventory.HandleFilter(s, i, strings.TrimPrefix(customID, inventoryFilterPrefix))
	default:
		logger.Warn("unknown component", zap.String("custom_id", customID))
		return
	}

	if err != nil {
		logger.Error("error handling component",
			zap.String("custom_id", customID),
			zap.Error(err))
	}
}

// handleMessageCreate runs every guild message through the spawn gate and
// posts an announcement when a monster appears
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.GuildID == "" || m.Author == nil {
		return
	}

	input := &hunt.HandleMessageInput{
		GuildID:     m.GuildID,
		ChannelID:   m.ChannelID,
		AuthorID:    m.Author.ID,
		AuthorIsBot: m.Author.Bot,
	}
	if m.Member != nil {
		input.AuthorRoleIDs = m.Member.Roles
	}

	output, err := b.huntService.HandleMessage(context.Background(), input)
	if err != nil {
		logger.Error("spawn gate failed",
			zap.String("guild_id", m.GuildID),
			zap.Error(err))
		return
	}
	if !output.Spawned {
		return
	}

	msg, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{spawnEmbed(output.Monster, output.Spawn.Action)},
		Components: spawnComponents(),
	})
	if err != nil {
		// The spawn never reached the channel, so drop it rather than
		// leave an invisible monster blocking the guild
		logger.Warn("failed to post spawn announcement",
			zap.String("guild_id", m.GuildID),
			zap.String("channel_id", m.ChannelID),
			zap.Error(err))
		if abortErr := b.huntService.AbortSpawn(context.Background(), &hunt.AbortSpawnInput{
			GuildID: m.GuildID,
			SpawnID: output.Spawn.ID,
		}); abortErr != nil {
			logger.Error("failed to abort spawn", zap.Error(abortErr))
		}
		return
	}

	if err := b.huntService.ConfirmSpawn(context.Background(), &hunt.ConfirmSpawnInput{
		GuildID:   m.GuildID,
		SpawnID:   output.Spawn.ID,
		MessageID: msg.ID,
	}); err != nil {
		logger.Error("failed to confirm spawn", zap.Error(err))
	}
}

// handleDoorButton resolves a door button press on a spawn announcement
func (b *Bot) handleDoorButton(s *discordgo.Session, i *discordgo.InteractionCreate, action models.ActionType) error {
	if i.Member == nil || i.Member.User == nil {
		return RespondWithEphemeralMessage(s, i, "This only works inside a server.")
	}
	userID := i.Member.User.ID

	output, err := b.huntService.OpenDoor(context.Background(), &hunt.OpenDoorInput{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		UserID:    userID,
		Action:    action,
	})
	if err != nil {
		return err
	}

	if output.Outcome == hunt.OutcomeNoVisitor {
		return RespondWithEphemeralMessage(s, i, noVisitorMessage)
	}

	// Replace the announcement with the result and strip the buttons
	if err := UpdateWithEmbed(s, i, outcomeEmbed(userID, output), []discordgo.MessageComponent{}); err != nil {
		return err
	}

	b.applyDoorResult(s, i.GuildID, i.ChannelID, userID, output)
	return nil
}

// applyDoorResult performs the side effects of a successful exchange: the
// completion announcement and the champion role transfer. Both are
// best-effort.
func (b *Bot) applyDoorResult(s *discordgo.Session, guildID, channelID, userID string, output *hunt.OpenDoorOutput) {
	if output.CollectedAll && !output.Duplicate {
		size := output.Count
		if _, err := s.ChannelMessageSendEmbed(channelID, collectedAllEmbed(userID, size)); err != nil {
			logger.Warn("failed to announce completion",
				zap.String("guild_id", guildID),
				zap.Error(err))
		}
	}

	rc := output.RoleChange
	if rc == nil {
		return
	}

	if rc.RevokeFromUserID != "" {
		if err := s.GuildMemberRoleRemove(guildID, rc.RevokeFromUserID, rc.RoleID); err != nil {
			logger.Warn("failed to revoke champion role",
				zap.String("guild_id", guildID),
				zap.String("user_id", rc.RevokeFromUserID),
				zap.Error(err))
		}
	}

	if err := s.GuildMemberRoleAdd(guildID, rc.GrantToUserID, rc.RoleID); err != nil {
		logger.Warn("failed to grant champion role",
			zap.String("guild_id", guildID),
			zap.String("user_id", rc.GrantToUserID),
			zap.Error(err))
	}
}

// runSweeper edits announcements whose monsters left without an answer
func (b *Bot) runSweeper() {
	defer b.sweepDone.Done()

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stopSweep:
			return
		case <-ticker.C:
			b.sweepOnce()
		}
	}
}

func (b *Bot) sweepOnce() {
	output, err := b.huntService.SweepExpired(context.Background(), &hunt.SweepExpiredInput{})
	if err != nil {
		logger.Error("expiry sweep failed", zap.Error(err))
		return
	}

	for _, state := range output.Expired {
		if state.MessageID == "" {
			continue
		}

		edit := discordgo.NewMessageEdit(state.ChannelID, state.MessageID).
			SetEmbeds([]*discordgo.MessageEmbed{expiredEmbed()})
		components := []discordgo.MessageComponent{}
		edit.Components = &components

		if _, err := b.session.ChannelMessageEditComplex(edit); err != nil {
			logger.Warn("failed to edit expired announcement",
				zap.String("guild_id", state.GuildID),
				zap.String("message_id", state.MessageID),
				zap.Error(err))
		}
	}
}
