package inventory

import (
	"time"

	"github.com/trickcord/trickcord/internal/models"
)

// AddItemInput contains parameters for recording ownership of an item
type AddItemInput struct {
	GuildID string
	UserID  string
	ItemID  int

	// AcquiredAt is when the item was collected; zero means now
	AcquiredAt time.Time
}

// AddItemOutput contains the result of recording ownership
type AddItemOutput struct {
	// Added is false when the user already owned the item
	Added bool
}

// HasItemInput contains parameters for an ownership check
type HasItemInput struct {
	GuildID string
	UserID  string
	ItemID  int
}

// HasItemOutput contains the result of an ownership check
type HasItemOutput struct {
	Has bool
}

// CountItemsInput contains parameters for counting a user's items
type CountItemsInput struct {
	GuildID string
	UserID  string
}

// CountItemsOutput contains the result of counting a user's items
type CountItemsOutput struct {
	Count int
}

// GetItemsInput contains parameters for listing a user's items
type GetItemsInput struct {
	GuildID string
	UserID  string
}

// GetItemsOutput contains the result of listing a user's items
type GetItemsOutput struct {
	ItemIDs []int
}

// GetLeaderboardInput contains parameters for retrieving a guild scoreboard
type GetLeaderboardInput struct {
	GuildID string
}

// GetLeaderboardOutput contains the guild scoreboard, ordered by count
// descending with ties going to whoever reached their count first
type GetLeaderboardOutput struct {
	Entries []*models.LeaderboardEntry
}

// GetTopUserInput contains parameters for retrieving the guild champion
type GetTopUserInput struct {
	GuildID string
}

// GetTopUserOutput contains the guild champion; Entry is nil when the guild
// has no collectors yet
type GetTopUserOutput struct {
	Entry *models.LeaderboardEntry
}
