package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/trickcord/trickcord/internal/models"
)

const (
	// Key prefix for Redis
	settingsKeyPrefix = "guild_settings:"

	// Attempts for the optimistic update transaction
	maxUpdateRetries = 5
)

// ErrUpdateConflict is returned when the optimistic update keeps losing
// against concurrent writers
var ErrUpdateConflict = errors.New("settings update conflicted too many times")

// Config holds configuration for the Redis settings repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed settings repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func settingsKey(guildID string) string {
	return fmt.Sprintf("%s%s", settingsKeyPrefix, guildID)
}

// GetOrCreate returns the guild's settings. The default record is written
// with SETNX so concurrent first touches agree on a single record.
func (r *redisRepository) GetOrCreate(ctx context.Context, input *GetOrCreateInput) (*GetOrCreateOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	defaults, err := json.Marshal(models.NewGuildSettings(input.GuildID))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default settings: %w", err)
	}

	key := settingsKey(input.GuildID)
	if err := r.client.SetNX(ctx, key, defaults, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to initialize settings: %w", err)
	}

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	var settings models.GuildSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return &GetOrCreateOutput{
		Settings: &settings,
	}, nil
}

// Update applies the non-nil fields of the input under an optimistic WATCH
// transaction, retrying when a concurrent writer gets in first.
func (r *redisRepository) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	key := settingsKey(input.GuildID)

	var updated *models.GuildSettings
	txn := func(tx *redis.Tx) error {
		settings := models.NewGuildSettings(input.GuildID)

		data, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(data, settings); err != nil {
				return fmt.Errorf("failed to unmarshal settings: %w", err)
			}
		}

		applyPartial(settings, input)

		out, err := json.Marshal(settings)
		if err != nil {
			return fmt.Errorf("failed to marshal settings: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, 0)
			return nil
		})
		if err != nil {
			return err
		}

		updated = settings
		return nil
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.client.Watch(ctx, txn, key)
		if err == nil {
			return &UpdateOutput{Settings: updated}, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return nil, err
		}
	}

	return nil, ErrUpdateConflict
}

func applyPartial(settings *models.GuildSettings, input *UpdateInput) {
	if input.Chance != nil {
		settings.Chance = *input.Chance
	}
	if input.Interval != nil {
		settings.Interval = *input.Interval
	}
	if input.Timeout != nil {
		settings.Timeout = *input.Timeout
	}
	if input.RoleID != nil {
		settings.RoleID = *input.RoleID
	}
	if input.AllowedChannels != nil {
		settings.AllowedChannels = *input.AllowedChannels
	}
	if input.IgnoredChannels != nil {
		settings.IgnoredChannels = *input.IgnoredChannels
	}
	if input.IgnoredRoles != nil {
		settings.IgnoredRoles = *input.IgnoredRoles
	}
}
