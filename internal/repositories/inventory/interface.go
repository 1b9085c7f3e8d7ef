package inventory

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/trickcord/trickcord/internal/repositories/inventory Repository

import (
	"context"
)

// Repository defines the interface for the item ownership ledger
type Repository interface {
	// AddItem records that a user owns an item. Adding an item the user
	// already owns is a no-op reported through Added, not an error.
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)

	// HasItem checks whether a user owns an item
	HasItem(ctx context.Context, input *HasItemInput) (*HasItemOutput, error)

	// CountItems returns how many distinct items a user owns in a guild
	CountItems(ctx context.Context, input *CountItemsInput) (*CountItemsOutput, error)

	// GetItems returns the IDs of the items a user owns in a guild
	GetItems(ctx context.Context, input *GetItemsInput) (*GetItemsOutput, error)

	// GetLeaderboard returns the guild scoreboard, best collector first
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetTopUser returns the guild's current champion, if anyone has
	// collected anything
	GetTopUser(ctx context.Context, input *GetTopUserInput) (*GetTopUserOutput, error)
}
