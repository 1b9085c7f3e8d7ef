package settings

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/trickcord/trickcord/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestGetOrCreate_Defaults() {
	output, err := s.repo.GetOrCreate(s.ctx, &GetOrCreateInput{GuildID: "guild-1"})
	s.Require().NoError(err)

	s.Equal("guild-1", output.Settings.GuildID)
	s.Equal(models.DefaultChance, output.Settings.Chance)
	s.Equal(models.DefaultInterval, output.Settings.Interval)
	s.Equal(models.DefaultTimeout, output.Settings.Timeout)
	s.Empty(output.Settings.RoleID)
	s.Empty(output.Settings.AllowedChannels)
}

func (s *RedisRepositoryTestSuite) TestGetOrCreate_DoesNotResetExisting() {
	chance := 75
	_, err := s.repo.Update(s.ctx, &UpdateInput{
		GuildID: "guild-1",
		Chance:  &chance,
	})
	s.Require().NoError(err)

	output, err := s.repo.GetOrCreate(s.ctx, &GetOrCreateInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal(75, output.Settings.Chance)
}

func (s *RedisRepositoryTestSuite) TestUpdate_Partial() {
	timeout := 120
	roleID := "role-1"
	output, err := s.repo.Update(s.ctx, &UpdateInput{
		GuildID: "guild-1",
		Timeout: &timeout,
		RoleID:  &roleID,
	})
	s.Require().NoError(err)

	// Untouched fields keep their defaults.
	s.Equal(120, output.Settings.Timeout)
	s.Equal("role-1", output.Settings.RoleID)
	s.Equal(models.DefaultChance, output.Settings.Chance)
	s.Equal(models.DefaultInterval, output.Settings.Interval)

	// The update persisted.
	got, err := s.repo.GetOrCreate(s.ctx, &GetOrCreateInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal(120, got.Settings.Timeout)
	s.Equal("role-1", got.Settings.RoleID)
}

func (s *RedisRepositoryTestSuite) TestUpdate_Channels() {
	channels := []string{"channel-1", "channel-2"}
	output, err := s.repo.Update(s.ctx, &UpdateInput{
		GuildID:         "guild-1",
		AllowedChannels: &channels,
	})
	s.Require().NoError(err)
	s.Equal(channels, output.Settings.AllowedChannels)

	// Clearing with an empty slice is distinct from leaving the field nil.
	empty := []string{}
	output, err = s.repo.Update(s.ctx, &UpdateInput{
		GuildID:         "guild-1",
		AllowedChannels: &empty,
	})
	s.Require().NoError(err)
	s.Empty(output.Settings.AllowedChannels)
}

func (s *RedisRepositoryTestSuite) TestCached_ReadThrough() {
	cached, err := NewCached(&CachedConfig{Repo: s.repo})
	s.Require().NoError(err)

	first, err := cached.GetOrCreate(s.ctx, &GetOrCreateInput{GuildID: "guild-1"})
	s.Require().NoError(err)

	// Mutate the store behind the cache's back; the cached read should not
	// see it until the entry expires or is invalidated.
	chance := 99
	_, err = s.repo.Update(s.ctx, &UpdateInput{GuildID: "guild-1", Chance: &chance})
	s.Require().NoError(err)

	second, err := cached.GetOrCreate(s.ctx, &GetOrCreateInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal(first.Settings.Chance, second.Settings.Chance)

	// An update through the cache refreshes the entry.
	interval := 600
	_, err = cached.Update(s.ctx, &UpdateInput{GuildID: "guild-1", Interval: &interval})
	s.Require().NoError(err)

	third, err := cached.GetOrCreate(s.ctx, &GetOrCreateInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal(600, third.Settings.Interval)
	s.Equal(99, third.Settings.Chance)
}

func (s *RedisRepositoryTestSuite) TestCached_FreshBypassesCache() {
	cached, err := NewCached(&CachedConfig{Repo: s.repo})
	s.Require().NoError(err)

	_, err = cached.GetOrCreate(s.ctx, &GetOrCreateInput{GuildID: "guild-1"})
	s.Require().NoError(err)

	// Edit behind the cache, as a second process would.
	channels := []string{"chan-1"}
	_, err = s.repo.Update(s.ctx, &UpdateInput{GuildID: "guild-1", AllowedChannels: &channels})
	s.Require().NoError(err)

	stale, err := cached.GetOrCreate(s.ctx, &GetOrCreateInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Empty(stale.Settings.AllowedChannels)

	// A fresh read sees the edit and replaces the cached entry.
	fresh, err := cached.GetOrCreate(s.ctx, &GetOrCreateInput{GuildID: "guild-1", Fresh: true})
	s.Require().NoError(err)
	s.Equal([]string{"chan-1"}, fresh.Settings.AllowedChannels)

	after, err := cached.GetOrCreate(s.ctx, &GetOrCreateInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal([]string{"chan-1"}, after.Settings.AllowedChannels)
}
