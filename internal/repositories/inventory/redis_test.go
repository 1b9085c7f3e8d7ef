package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
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
	s.testNow = time.Date(2026, 10, 31, 18, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestAddItem() {
	output, err := s.repo.AddItem(s.ctx, &AddItemInput{
		GuildID:    "guild-1",
		UserID:     "user-1",
		ItemID:     7,
		AcquiredAt: s.testNow,
	})
	s.Require().NoError(err)
	s.True(output.Added)

	has, err := s.repo.HasItem(s.ctx, &HasItemInput{
		GuildID: "guild-1",
		UserID:  "user-1",
		ItemID:  7,
	})
	s.Require().NoError(err)
	s.True(has.Has)
}

func (s *RedisRepositoryTestSuite) TestAddItem_Idempotent() {
	input := &AddItemInput{
		GuildID:    "guild-1",
		UserID:     "user-1",
		ItemID:     7,
		AcquiredAt: s.testNow,
	}

	first, err := s.repo.AddItem(s.ctx, input)
	s.Require().NoError(err)
	s.True(first.Added)

	// Re-adding the same item is a duplicate, not an error, and must not
	// change the count.
	second, err := s.repo.AddItem(s.ctx, input)
	s.Require().NoError(err)
	s.False(second.Added)

	count, err := s.repo.CountItems(s.ctx, &CountItemsInput{
		GuildID: "guild-1",
		UserID:  "user-1",
	})
	s.Require().NoError(err)
	s.Equal(1, count.Count)
}

func (s *RedisRepositoryTestSuite) TestHasItem_Missing() {
	has, err := s.repo.HasItem(s.ctx, &HasItemInput{
		GuildID: "guild-1",
		UserID:  "user-1",
		ItemID:  7,
	})
	s.Require().NoError(err)
	s.False(has.Has)
}

func (s *RedisRepositoryTestSuite) TestCountItems_ScopedPerGuild() {
	for i, guildID := range []string{"guild-1", "guild-1", "guild-2"} {
		_, err := s.repo.AddItem(s.ctx, &AddItemInput{
			GuildID:    guildID,
			UserID:     "user-1",
			ItemID:     i + 1,
			AcquiredAt: s.testNow,
		})
		s.Require().NoError(err)
	}

	count, err := s.repo.CountItems(s.ctx, &CountItemsInput{
		GuildID: "guild-1",
		UserID:  "user-1",
	})
	s.Require().NoError(err)
	s.Equal(2, count.Count)
}

func (s *RedisRepositoryTestSuite) TestGetItems() {
	for _, itemID := range []int{5, 3, 9} {
		_, err := s.repo.AddItem(s.ctx, &AddItemInput{
			GuildID:    "guild-1",
			UserID:     "user-1",
			ItemID:     itemID,
			AcquiredAt: s.testNow,
		})
		s.Require().NoError(err)
		s.testNow = s.testNow.Add(time.Minute)
	}

	output, err := s.repo.GetItems(s.ctx, &GetItemsInput{
		GuildID: "guild-1",
		UserID:  "user-1",
	})
	s.Require().NoError(err)
	s.Equal([]int{5, 3, 9}, output.ItemIDs)
}

func (s *RedisRepositoryTestSuite) TestGetLeaderboard_Ordering() {
	add := func(userID string, itemID int, at time.Time) {
		_, err := s.repo.AddItem(s.ctx, &AddItemInput{
			GuildID:    "guild-1",
			UserID:     userID,
			ItemID:     itemID,
			AcquiredAt: at,
		})
		s.Require().NoError(err)
	}

	// user-a and user-b both collect three items, but user-a reaches three
	// first; user-c has one item.
	add("user-a", 1, s.testNow)
	add("user-a", 2, s.testNow.Add(1*time.Minute))
	add("user-a", 3, s.testNow.Add(2*time.Minute))
	add("user-b", 1, s.testNow)
	add("user-b", 2, s.testNow.Add(1*time.Minute))
	add("user-b", 3, s.testNow.Add(5*time.Minute))
	add("user-c", 1, s.testNow)

	output, err := s.repo.GetLeaderboard(s.ctx, &GetLeaderboardInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 3)

	s.Equal("user-a", output.Entries[0].UserID)
	s.Equal(3, output.Entries[0].Count)
	s.Equal("user-b", output.Entries[1].UserID)
	s.Equal(3, output.Entries[1].Count)
	s.Equal("user-c", output.Entries[2].UserID)
	s.Equal(1, output.Entries[2].Count)
}

func (s *RedisRepositoryTestSuite) TestGetTopUser() {
	output, err := s.repo.GetTopUser(s.ctx, &GetTopUserInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Nil(output.Entry)

	_, err = s.repo.AddItem(s.ctx, &AddItemInput{
		GuildID:    "guild-1",
		UserID:     "user-1",
		ItemID:     1,
		AcquiredAt: s.testNow,
	})
	s.Require().NoError(err)

	output, err = s.repo.GetTopUser(s.ctx, &GetTopUserInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Require().NotNil(output.Entry)
	s.Equal("user-1", output.Entry.UserID)
	s.Equal(1, output.Entry.Count)
}
