package settings

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/trickcord/trickcord/internal/models"
)

const (
	// DefaultCacheSize bounds the number of guilds kept in memory
	DefaultCacheSize = 1024

	// DefaultCacheTTL bounds how stale a cached read may be
	DefaultCacheTTL = time.Minute
)

// CachedConfig holds configuration for the caching decorator
type CachedConfig struct {
	// Repo is the underlying repository
	Repo Repository

	// Size is the maximum number of cached guilds; 0 means DefaultCacheSize
	Size int

	// TTL is how long a cached entry stays valid; 0 means DefaultCacheTTL
	TTL time.Duration
}

// cachedRepository is a read-through cache in front of a settings
// repository. Settings are read on every inbound guild message, so the hot
// path should not hit the store each time. Updates write through and drop
// the cached entry.
type cachedRepository struct {
	repo  Repository
	cache *expirable.LRU[string, *models.GuildSettings]
}

// NewCached wraps a repository with an expirable LRU cache
func NewCached(cfg *CachedConfig) (*cachedRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Repo == nil {
		return nil, errors.New("repository cannot be nil")
	}

	size := cfg.Size
	if size <= 0 {
		size = DefaultCacheSize
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &cachedRepository{
		repo:  cfg.Repo,
		cache: expirable.NewLRU[string, *models.GuildSettings](size, nil, ttl),
	}, nil
}

// GetOrCreate returns cached settings when fresh, falling back to the
// underlying repository. Fresh reads skip the cache but still replace the
// entry.
func (r *cachedRepository) GetOrCreate(ctx context.Context, input *GetOrCreateInput) (*GetOrCreateOutput, error) {
	if input != nil && !input.Fresh {
		if settings, ok := r.cache.Get(input.GuildID); ok {
			return &GetOrCreateOutput{Settings: settings}, nil
		}
	}

	output, err := r.repo.GetOrCreate(ctx, input)
	if err != nil {
		return nil, err
	}

	r.cache.Add(input.GuildID, output.Settings)

	return output, nil
}

// Update writes through to the underlying repository and refreshes the
// cached entry
func (r *cachedRepository) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	output, err := r.repo.Update(ctx, input)
	if err != nil {
		if input != nil {
			r.cache.Remove(input.GuildID)
		}
		return nil, err
	}

	r.cache.Add(input.GuildID, output.Settings)

	return output, nil
}
