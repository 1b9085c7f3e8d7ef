package spawn

import (
	"errors"
	"sync"
	"time"

	"github.com/trickcord/trickcord/internal/common/clock"
	"github.com/trickcord/trickcord/internal/common/uuid"
	"github.com/trickcord/trickcord/internal/models"
)

// Define errors
var (
	ErrAlreadyPending = errors.New("a monster is already waiting in this guild")
	ErrOnCooldown     = errors.New("the guild is still on spawn cooldown")
	ErrNilConfig      = errors.New("config cannot be nil")
	ErrNilClock       = errors.New("clock cannot be nil")
	ErrNilUUID        = errors.New("uuid generator cannot be nil")
)

// Config holds configuration for the tracker
type Config struct {
	Clock clock.Clock
	UUID  uuid.UUID
}

// Tracker keeps the per-guild spawn table: at most one pending monster per
// guild plus the last-spawn cooldown stamp. All mutations for a guild go
// through one mutex, so a response and the expiry sweep can never both
// consume the same spawn.
type Tracker struct {
	mu        sync.Mutex
	spawns    map[string]*models.SpawnState
	lastSpawn map[string]time.Time

	clock clock.Clock
	uuid  uuid.UUID
}

// New creates a new tracker
func New(cfg *Config) (*Tracker, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	return &Tracker{
		spawns:    make(map[string]*models.SpawnState),
		lastSpawn: make(map[string]time.Time),
		clock:     cfg.Clock,
		uuid:      cfg.UUID,
	}, nil
}

// TrySpawnInput contains parameters for registering a spawn
type TrySpawnInput struct {
	GuildID   string
	ChannelID string
	MonsterID int

	// Action is the response required to win
	Action models.ActionType

	// Timeout is how long the monster waits before disappearing
	Timeout time.Duration

	// Cooldown is the minimum time since the guild's previous spawn
	Cooldown time.Duration
}

// TrySpawn registers a pending spawn for the guild. It fails with
// ErrAlreadyPending while another spawn is live, or ErrOnCooldown inside
// the spawn interval. The cooldown stamp and the pending state are written
// under the same lock, so concurrent attempts cannot both win.
func (t *Tracker) TrySpawn(input *TrySpawnInput) (*models.SpawnState, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.spawns[input.GuildID]; ok {
		return nil, ErrAlreadyPending
	}

	now := t.clock.Now()
	if last, ok := t.lastSpawn[input.GuildID]; ok && now.Sub(last) < input.Cooldown {
		return nil, ErrOnCooldown
	}

	state := &models.SpawnState{
		ID:        t.uuid.NewUUID(),
		GuildID:   input.GuildID,
		ChannelID: input.ChannelID,
		MonsterID: input.MonsterID,
		Action:    input.Action,
		CreatedAt: now,
		ExpiresAt: now.Add(input.Timeout),
	}

	t.spawns[input.GuildID] = state
	t.lastSpawn[input.GuildID] = now

	return copyState(state), nil
}

// SetMessageID attaches the announcement message to a pending spawn once
// the post succeeds. It is a no-op if the spawn has already been consumed.
func (t *Tracker) SetMessageID(guildID, spawnID, messageID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.spawns[guildID]
	if !ok || state.ID != spawnID {
		return
	}

	state.MessageID = messageID
}

// Abort drops a pending spawn whose announcement could not be posted. The
// cooldown stamp is kept, matching the behavior of a spawn that was never
// answered.
func (t *Tracker) Abort(guildID, spawnID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.spawns[guildID]
	if !ok || state.ID != spawnID {
		return
	}

	delete(t.spawns, guildID)
}

// Resolve consumes the guild's pending spawn for a user response. It
// matches only when the response arrived in the spawn's channel before
// expiry; otherwise it returns false without touching the state, leaving
// expired spawns to the sweep.
func (t *Tracker) Resolve(guildID, channelID string) (*models.SpawnState, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.spawns[guildID]
	if !ok {
		return nil, false
	}

	if state.ChannelID != channelID {
		return nil, false
	}

	if !t.clock.Now().Before(state.ExpiresAt) {
		return nil, false
	}

	delete(t.spawns, guildID)

	return copyState(state), true
}

// Active returns the guild's pending spawn without consuming it
func (t *Tracker) Active(guildID string) (*models.SpawnState, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.spawns[guildID]
	if !ok {
		return nil, false
	}

	return copyState(state), true
}

// SweepExpired removes every spawn whose deadline has passed and returns
// them for the caller to announce. Each expired spawn is yielded exactly
// once.
func (t *Tracker) SweepExpired(now time.Time) []*models.SpawnState {
	t.mu.Lock()
	defer t.mu.Unlock()

	var expired []*models.SpawnState
	for guildID, state := range t.spawns {
		if now.Before(state.ExpiresAt) {
			continue
		}

		delete(t.spawns, guildID)
		expired = append(expired, copyState(state))
	}

	return expired
}

func copyState(state *models.SpawnState) *models.SpawnState {
	cp := *state
	return &cp
}
