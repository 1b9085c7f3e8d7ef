package hunt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trickcord/trickcord/internal/catalog"
	"github.com/trickcord/trickcord/internal/common/clock"
	"github.com/trickcord/trickcord/internal/lottery"
	"github.com/trickcord/trickcord/internal/models"
	inventoryRepo "github.com/trickcord/trickcord/internal/repositories/inventory"
	settingsRepo "github.com/trickcord/trickcord/internal/repositories/settings"
	"github.com/trickcord/trickcord/internal/rng"
	"github.com/trickcord/trickcord/internal/spawn"
)

// service implements the Service interface
type service struct {
	settingsRepo  settingsRepo.Repository
	inventoryRepo inventoryRepo.Repository
	catalog       *catalog.Catalog
	lottery       *lottery.Lottery
	tracker       *spawn.Tracker
	random        rng.Source
	clock         clock.Clock
}

// New creates a new hunt service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}

	if cfg.InventoryRepo == nil {
		return nil, ErrNilInventoryRepo
	}

	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	if cfg.Lottery == nil {
		return nil, ErrNilLottery
	}

	if cfg.Tracker == nil {
		return nil, ErrNilTracker
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		settingsRepo:  cfg.SettingsRepo,
		inventoryRepo: cfg.InventoryRepo,
		catalog:       cfg.Catalog,
		lottery:       cfg.Lottery,
		tracker:       cfg.Tracker,
		random:        cfg.Random,
		clock:         cfg.Clock,
	}, nil
}

// HandleMessage runs the spawn gate: chance roll, channel allow-list,
// ignored channels and roles, then the tracker's cooldown and
// at-most-one-pending checks. The tracker stays the final authority even
// when the settings read suspends, so two interleaved messages cannot both
// spawn.
func (s *service) HandleMessage(ctx context.Context, input *HandleMessageInput) (*HandleMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.AuthorIsBot {
		return &HandleMessageOutput{}, nil
	}

	settingsOut, err := s.settingsRepo.GetOrCreate(ctx, &settingsRepo.GetOrCreateInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load guild settings: %w", err)
	}
	guildSettings := settingsOut.Settings

	// Chance is stored as an integer percentage.
	if s.random.Float64() > float64(guildSettings.Chance)/100 {
		return &HandleMessageOutput{}, nil
	}

	if !contains(guildSettings.AllowedChannels, input.ChannelID) {
		return &HandleMessageOutput{}, nil
	}

	if contains(guildSettings.IgnoredChannels, input.ChannelID) {
		return &HandleMessageOutput{}, nil
	}

	for _, roleID := range input.AuthorRoleIDs {
		if contains(guildSettings.IgnoredRoles, roleID) {
			return &HandleMessageOutput{}, nil
		}
	}

	// Draw an item across the whole catalog so rarer monsters knock less
	// often, then let its parent do the knocking.
	item, err := s.lottery.PickItem(s.catalog.Items(), s.random)
	if err != nil {
		return nil, fmt.Errorf("failed to pick an item: %w", err)
	}

	monster, err := s.catalog.Monster(item.ParentID)
	if err != nil {
		return nil, err
	}

	action := models.ActionTrick
	if s.random.Intn(2) == 1 {
		action = models.ActionTreat
	}

	state, err := s.tracker.TrySpawn(&spawn.TrySpawnInput{
		GuildID:   input.GuildID,
		ChannelID: input.ChannelID,
		MonsterID: monster.ID,
		Action:    action,
		Timeout:   time.Duration(guildSettings.Timeout) * time.Second,
		Cooldown:  time.Duration(guildSettings.Interval) * time.Second,
	})
	if errors.Is(err, spawn.ErrAlreadyPending) || errors.Is(err, spawn.ErrOnCooldown) {
		// Not an error: the guild is busy or resting.
		return &HandleMessageOutput{}, nil
	}
	if err != nil {
		return nil, err
	}

	return &HandleMessageOutput{
		Spawned: true,
		Spawn:   state,
		Monster: &monster,
	}, nil
}

// ConfirmSpawn attaches the posted announcement message to a pending spawn
func (s *service) ConfirmSpawn(ctx context.Context, input *ConfirmSpawnInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	s.tracker.SetMessageID(input.GuildID, input.SpawnID, input.MessageID)
	return nil
}

// AbortSpawn drops a pending spawn whose announcement failed to post
func (s *service) AbortSpawn(ctx context.Context, input *AbortSpawnInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	s.tracker.Abort(input.GuildID, input.SpawnID)
	return nil
}

// OpenDoor handles a trick or treat response. The spawn is consumed the
// moment it matches, before any store I/O, so a slow ledger write cannot
// let a second responder win the same monster.
func (s *service) OpenDoor(ctx context.Context, input *OpenDoorInput) (*OpenDoorOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	state, ok := s.tracker.Resolve(input.GuildID, input.ChannelID)
	if !ok {
		return &OpenDoorOutput{Outcome: OutcomeNoVisitor}, nil
	}

	monster, err := s.catalog.Monster(state.MonsterID)
	if err != nil {
		return nil, err
	}

	if state.Action != input.Action {
		return &OpenDoorOutput{
			Outcome: OutcomeScaredOff,
			Spawn:   state,
			Monster: &monster,
		}, nil
	}

	rarity := s.lottery.Draw(s.random)
	item, err := s.catalog.ItemForMonsterAndRarity(monster.ID, rarity)
	if err != nil {
		// Unreachable once the catalog validated; kept as a hard failure.
		return nil, err
	}

	output := &OpenDoorOutput{
		Outcome: OutcomeTreated,
		Spawn:   state,
		Monster: &monster,
		Item:    &item,
	}

	hasOut, err := s.inventoryRepo.HasItem(ctx, &inventoryRepo.HasItemInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
		ItemID:  item.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check inventory: %w", err)
	}

	if hasOut.Has {
		output.Duplicate = true
		return output, nil
	}

	// Capture the champion before the add so the role transfer can compare
	// against the pre-add standings.
	championOut, err := s.inventoryRepo.GetTopUser(ctx, &inventoryRepo.GetTopUserInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get champion: %w", err)
	}
	champion := championOut.Entry

	if _, err := s.inventoryRepo.AddItem(ctx, &inventoryRepo.AddItemInput{
		GuildID:    input.GuildID,
		UserID:     input.UserID,
		ItemID:     item.ID,
		AcquiredAt: s.clock.Now(),
	}); err != nil {
		return nil, fmt.Errorf("failed to record item: %w", err)
	}

	countOut, err := s.inventoryRepo.CountItems(ctx, &inventoryRepo.CountItemsInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	output.Count = countOut.Count
	output.CollectedAll = countOut.Count == s.catalog.Size()

	if champion != nil && (champion.UserID == input.UserID || countOut.Count <= champion.Count) {
		return output, nil
	}

	settingsOut, err := s.settingsRepo.GetOrCreate(ctx, &settingsRepo.GetOrCreateInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load guild settings: %w", err)
	}

	if settingsOut.Settings.RoleID == "" {
		return output, nil
	}

	change := &RoleChange{
		RoleID:        settingsOut.Settings.RoleID,
		GrantToUserID: input.UserID,
	}
	if champion != nil {
		change.RevokeFromUserID = champion.UserID
	}
	output.RoleChange = change

	return output, nil
}

// SweepExpired evicts every spawn past its deadline
func (s *service) SweepExpired(ctx context.Context, input *SweepExpiredInput) (*SweepExpiredOutput, error) {
	return &SweepExpiredOutput{
		Expired: s.tracker.SweepExpired(s.clock.Now()),
	}, nil
}

// GetScoreboard returns the guild leaderboard
func (s *service) GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.inventoryRepo.GetLeaderboard(ctx, &inventoryRepo.GetLeaderboardInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return &GetScoreboardOutput{
		Entries: out.Entries,
	}, nil
}

// GetInventory returns a user's collection resolved against the catalog
func (s *service) GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.inventoryRepo.GetItems(ctx, &inventoryRepo.GetItemsInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	items := make([]models.Item, 0, len(out.ItemIDs))
	for _, id := range out.ItemIDs {
		item, err := s.catalog.ItemByID(id)
		if err != nil {
			// An unknown ID means the catalog shrank under a live ledger;
			// the record is kept but cannot be displayed.
			continue
		}
		items = append(items, item)
	}

	return &GetInventoryOutput{
		Items:       items,
		CatalogSize: s.catalog.Size(),
	}, nil
}

// GetSettings returns the guild settings
func (s *service) GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.settingsRepo.GetOrCreate(ctx, &settingsRepo.GetOrCreateInput{
		GuildID: input.GuildID,
		Fresh:   input.Fresh,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load guild settings: %w", err)
	}

	return &GetSettingsOutput{
		Settings: out.Settings,
	}, nil
}

// UpdateSettings validates and applies a partial configuration change
func (s *service) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Chance != nil && (*input.Chance < MinChance || *input.Chance > MaxChance) {
		return nil, fmt.Errorf("%w: chance must be between %d and %d", ErrInvalidSetting, MinChance, MaxChance)
	}
	if input.Interval != nil && (*input.Interval < MinInterval || *input.Interval > MaxInterval) {
		return nil, fmt.Errorf("%w: interval must be between %d and %d", ErrInvalidSetting, MinInterval, MaxInterval)
	}
	if input.Timeout != nil && (*input.Timeout < MinTimeout || *input.Timeout > MaxTimeout) {
		return nil, fmt.Errorf("%w: timeout must be between %d and %d", ErrInvalidSetting, MinTimeout, MaxTimeout)
	}

	out, err := s.settingsRepo.Update(ctx, &settingsRepo.UpdateInput{
		GuildID:         input.GuildID,
		Chance:          input.Chance,
		Interval:        input.Interval,
		Timeout:         input.Timeout,
		RoleID:          input.RoleID,
		AllowedChannels: input.AllowedChannels,
		IgnoredChannels: input.IgnoredChannels,
		IgnoredRoles:    input.IgnoredRoles,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	return &UpdateSettingsOutput{
		Settings: out.Settings,
	}, nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
