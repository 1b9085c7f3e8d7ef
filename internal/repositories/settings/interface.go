package settings

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/trickcord/trickcord/internal/repositories/settings Repository

import (
	"context"
)

// Repository defines the interface for guild settings persistence
type Repository interface {
	// GetOrCreate returns the guild's settings, creating the default record
	// on first touch. Concurrent first touches resolve to a single record.
	GetOrCreate(ctx context.Context, input *GetOrCreateInput) (*GetOrCreateOutput, error)

	// Update applies the non-nil fields of the input to the stored settings
	// and returns the result
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)
}
