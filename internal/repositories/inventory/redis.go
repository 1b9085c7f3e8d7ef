package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/trickcord/trickcord/internal/models"
)

const (
	// Key prefixes for Redis
	inventoryKeyPrefix  = "inventory:"
	collectorsKeyPrefix = "collectors:"
)

// Config holds configuration for the Redis inventory repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed inventory repository
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

func inventoryKey(guildID, userID string) string {
	return fmt.Sprintf("%s%s:%s", inventoryKeyPrefix, guildID, userID)
}

func collectorsKey(guildID string) string {
	return fmt.Sprintf("%s%s", collectorsKeyPrefix, guildID)
}

// AddItem records that a user owns an item. Each user's items live in a
// sorted set scored by acquisition time; ZADD NX makes the insert
// idempotent, so re-adding an owned item reports Added=false without error.
func (r *redisRepository) AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	acquiredAt := input.AcquiredAt
	if acquiredAt.IsZero() {
		acquiredAt = time.Now()
	}

	pipe := r.client.Pipeline()

	added := pipe.ZAddNX(ctx, inventoryKey(input.GuildID, input.UserID), redis.Z{
		Score:  float64(acquiredAt.UnixMilli()),
		Member: strconv.Itoa(input.ItemID),
	})
	pipe.SAdd(ctx, collectorsKey(input.GuildID), input.UserID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to add inventory item: %w", err)
	}

	return &AddItemOutput{
		Added: added.Val() > 0,
	}, nil
}

// HasItem checks whether a user owns an item
func (r *redisRepository) HasItem(ctx context.Context, input *HasItemInput) (*HasItemOutput, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	err := r.client.ZScore(ctx, inventoryKey(input.GuildID, input.UserID), strconv.Itoa(input.ItemID)).Err()
	if errors.Is(err, redis.Nil) {
		return &HasItemOutput{Has: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check inventory item: %w", err)
	}

	return &HasItemOutput{Has: true}, nil
}

// CountItems returns how many distinct items a user owns in a guild
func (r *redisRepository) CountItems(ctx context.Context, input *CountItemsInput) (*CountItemsOutput, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	count, err := r.client.ZCard(ctx, inventoryKey(input.GuildID, input.UserID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count inventory items: %w", err)
	}

	return &CountItemsOutput{
		Count: int(count),
	}, nil
}

// GetItems returns the IDs of the items a user owns, oldest first
func (r *redisRepository) GetItems(ctx context.Context, input *GetItemsInput) (*GetItemsOutput, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	members, err := r.client.ZRange(ctx, inventoryKey(input.GuildID, input.UserID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory items: %w", err)
	}

	itemIDs := make([]int, 0, len(members))
	for _, member := range members {
		id, err := strconv.Atoi(member)
		if err != nil {
			return nil, fmt.Errorf("corrupt inventory member %q: %w", member, err)
		}
		itemIDs = append(itemIDs, id)
	}

	return &GetItemsOutput{
		ItemIDs: itemIDs,
	}, nil
}

// GetLeaderboard returns the guild scoreboard. Entries are ordered by count
// descending; ties go to the user whose most recent acquisition is older,
// i.e. whoever reached that count first.
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	userIDs, err := r.client.SMembers(ctx, collectorsKey(input.GuildID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get collectors: %w", err)
	}

	entries := make([]*models.LeaderboardEntry, 0, len(userIDs))
	for _, userID := range userIDs {
		key := inventoryKey(input.GuildID, userID)

		count, err := r.client.ZCard(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to count items for user %s: %w", userID, err)
		}
		if count == 0 {
			continue
		}

		latest, err := r.client.ZRevRangeWithScores(ctx, key, 0, 0).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get latest item for user %s: %w", userID, err)
		}

		entry := &models.LeaderboardEntry{
			UserID: userID,
			Count:  int(count),
		}
		if len(latest) > 0 {
			entry.LastAcquiredAt = time.UnixMilli(int64(latest[0].Score)).UTC()
		}

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		if !entries[i].LastAcquiredAt.Equal(entries[j].LastAcquiredAt) {
			return entries[i].LastAcquiredAt.Before(entries[j].LastAcquiredAt)
		}
		return entries[i].UserID < entries[j].UserID
	})

	return &GetLeaderboardOutput{
		Entries: entries,
	}, nil
}

// GetTopUser returns the guild champion, or a nil entry when the guild has
// no collectors
func (r *redisRepository) GetTopUser(ctx context.Context, input *GetTopUserInput) (*GetTopUserOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	leaderboard, err := r.GetLeaderboard(ctx, &GetLeaderboardInput{GuildID: input.GuildID})
	if err != nil {
		return nil, err
	}

	if len(leaderboard.Entries) == 0 {
		return &GetTopUserOutput{}, nil
	}

	return &GetTopUserOutput{
		Entry: leaderboard.Entries[0],
	}, nil
}
