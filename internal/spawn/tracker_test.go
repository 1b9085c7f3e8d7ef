package spawn

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	commonuuid "github.com/trickcord/trickcord/internal/common/uuid"
	"github.com/trickcord/trickcord/internal/models"
)

// fakeClock lets a test move time forward explicitly.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type TrackerTestSuite struct {
	suite.Suite
	clock   *fakeClock
	tracker *Tracker

	testGuildID   string
	testChannelID string
}

func (s *TrackerTestSuite) SetupTest() {
	s.clock = &fakeClock{now: time.Date(2026, 10, 31, 18, 0, 0, 0, time.UTC)}

	tracker, err := New(&Config{
		Clock: s.clock,
		UUID:  commonuuid.New(),
	})
	s.Require().NoError(err)
	s.tracker = tracker

	s.testGuildID = "test-guild-id"
	s.testChannelID = "test-channel-id"
}

func TestTrackerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackerTestSuite))
}

func (s *TrackerTestSuite) spawnInput() *TrySpawnInput {
	return &TrySpawnInput{
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		MonsterID: 1,
		Action:    models.ActionTreat,
		Timeout:   60 * time.Second,
		Cooldown:  300 * time.Second,
	}
}

func (s *TrackerTestSuite) TestTrySpawn() {
	state, err := s.tracker.TrySpawn(s.spawnInput())
	s.Require().NoError(err)

	s.NotEmpty(state.ID)
	s.Equal(s.testGuildID, state.GuildID)
	s.Equal(s.testChannelID, state.ChannelID)
	s.Equal(models.ActionTreat, state.Action)
	s.Equal(s.clock.now, state.CreatedAt)
	s.Equal(s.clock.now.Add(60*time.Second), state.ExpiresAt)
}

func (s *TrackerTestSuite) TestTrySpawn_AtMostOnePending() {
	first, err := s.tracker.TrySpawn(s.spawnInput())
	s.Require().NoError(err)

	// Every further attempt fails and leaves the original untouched,
	// regardless of elapsed time inside the window.
	for i := 0; i < 3; i++ {
		s.clock.now = s.clock.now.Add(time.Second)

		_, err = s.tracker.TrySpawn(s.spawnInput())
		s.ErrorIs(err, ErrAlreadyPending)
	}

	active, ok := s.tracker.Active(s.testGuildID)
	s.Require().True(ok)
	s.Equal(first.ID, active.ID)
	s.Equal(first.ExpiresAt, active.ExpiresAt)
}

func (s *TrackerTestSuite) TestTrySpawn_Cooldown() {
	state, err := s.tracker.TrySpawn(s.spawnInput())
	s.Require().NoError(err)

	// Resolve the spawn, then try again inside the cooldown window.
	_, ok := s.tracker.Resolve(s.testGuildID, s.testChannelID)
	s.Require().True(ok)

	s.clock.now = s.clock.now.Add(100 * time.Second)
	_, err = s.tracker.TrySpawn(s.spawnInput())
	s.ErrorIs(err, ErrOnCooldown)

	// Past the cooldown the guild is eligible again.
	s.clock.now = state.CreatedAt.Add(301 * time.Second)
	_, err = s.tracker.TrySpawn(s.spawnInput())
	s.NoError(err)
}

func (s *TrackerTestSuite) TestTrySpawn_IndependentGuilds() {
	_, err := s.tracker.TrySpawn(s.spawnInput())
	s.Require().NoError(err)

	other := s.spawnInput()
	other.GuildID = "other-guild-id"
	_, err = s.tracker.TrySpawn(other)
	s.NoError(err)
}

func (s *TrackerTestSuite) TestResolve() {
	state, err := s.tracker.TrySpawn(s.spawnInput())
	s.Require().NoError(err)

	s.clock.now = s.clock.now.Add(30 * time.Second)

	resolved, ok := s.tracker.Resolve(s.testGuildID, s.testChannelID)
	s.Require().True(ok)
	s.Equal(state.ID, resolved.ID)

	// The spawn is consumed; a second response finds nothing.
	_, ok = s.tracker.Resolve(s.testGuildID, s.testChannelID)
	s.False(ok)
}

func (s *TrackerTestSuite) TestResolve_WrongChannel() {
	_, err := s.tracker.TrySpawn(s.spawnInput())
	s.Require().NoError(err)

	_, ok := s.tracker.Resolve(s.testGuildID, "other-channel-id")
	s.False(ok)

	// Wrong-channel responses must not consume the spawn.
	_, ok = s.tracker.Active(s.testGuildID)
	s.True(ok)
}

func (s *TrackerTestSuite) TestResolve_AfterExpiry() {
	_, err := s.tracker.TrySpawn(s.spawnInput())
	s.Require().NoError(err)

	s.clock.now = s.clock.now.Add(61 * time.Second)

	// A late response loses; only the sweep may evict the spawn.
	_, ok := s.tracker.Resolve(s.testGuildID, s.testChannelID)
	s.False(ok)

	_, ok = s.tracker.Active(s.testGuildID)
	s.True(ok)
}

func (s *TrackerTestSuite) TestSweepExpired() {
	state, err := s.tracker.TrySpawn(s.spawnInput())
	s.Require().NoError(err)

	// Nothing expires inside the window.
	s.Empty(s.tracker.SweepExpired(state.ExpiresAt.Add(-time.Second)))

	expired := s.tracker.SweepExpired(state.ExpiresAt)
	s.Require().Len(expired, 1)
	s.Equal(state.ID, expired[0].ID)

	// One-shot: a second sweep yields nothing, and a late response finds
	// no spawn either.
	s.Empty(s.tracker.SweepExpired(state.ExpiresAt))

	_, ok := s.tracker.Resolve(s.testGuildID, s.testChannelID)
	s.False(ok)
}

func (s *TrackerTestSuite) TestResolveAndSweep_ExactlyOneWinner() {
	state, err := s.tracker.TrySpawn(s.spawnInput())
	s.Require().NoError(err)

	// Response lands just before the deadline, sweep runs just after: the
	// response wins and the sweep sees nothing.
	s.clock.now = state.ExpiresAt.Add(-time.Millisecond)
	_, ok := s.tracker.Resolve(s.testGuildID, s.testChannelID)
	s.True(ok)

	s.Empty(s.tracker.SweepExpired(state.ExpiresAt.Add(time.Millisecond)))

	// Opposite order on a fresh spawn: the sweep evicts first and the
	// response loses.
	s.clock.now = state.CreatedAt.Add(400 * time.Second)
	state, err = s.tracker.TrySpawn(s.spawnInput())
	s.Require().NoError(err)

	expired := s.tracker.SweepExpired(state.ExpiresAt)
	s.Require().Len(expired, 1)

	s.clock.now = state.ExpiresAt
	_, ok = s.tracker.Resolve(s.testGuildID, s.testChannelID)
	s.False(ok)
}

func (s *TrackerTestSuite) TestSetMessageID() {
	state, err := s.tracker.TrySpawn(s.spawnInput())
	s.Require().NoError(err)

	s.tracker.SetMessageID(s.testGuildID, state.ID, "test-message-id")

	active, ok := s.tracker.Active(s.testGuildID)
	s.Require().True(ok)
	s.Equal("test-message-id", active.MessageID)

	// A stale spawn ID must not overwrite the live spawn's ref.
	s.tracker.SetMessageID(s.testGuildID, "stale-spawn-id", "other-message-id")

	active, ok = s.tracker.Active(s.testGuildID)
	s.Require().True(ok)
	s.Equal("test-message-id", active.MessageID)
}

func (s *TrackerTestSuite) TestAbort() {
	state, err := s.tracker.TrySpawn(s.spawnInput())
	s.Require().NoError(err)

	s.tracker.Abort(s.testGuildID, state.ID)

	_, ok := s.tracker.Active(s.testGuildID)
	s.False(ok)

	// The cooldown stamp survives the abort.
	_, err = s.tracker.TrySpawn(s.spawnInput())
	s.ErrorIs(err, ErrOnCooldown)
}
