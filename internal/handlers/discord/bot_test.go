package discord

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trickcord/trickcord/internal/services/hunt"
)

type stubHuntService struct{}

func (stubHuntService) HandleMessage(context.Context, *hunt.HandleMessageInput) (*hunt.HandleMessageOutput, error) {
	return &hunt.HandleMessageOutput{}, nil
}

func (stubHuntService) ConfirmSpawn(context.Context, *hunt.ConfirmSpawnInput) error { return nil }

func (stubHuntService) AbortSpawn(context.Context, *hunt.AbortSpawnInput) error { return nil }

func (stubHuntService) OpenDoor(context.Context, *hunt.OpenDoorInput) (*hunt.OpenDoorOutput, error) {
	return &hunt.OpenDoorOutput{Outcome: hunt.OutcomeNoVisitor}, nil
}

func (stubHuntService) SweepExpired(context.Context, *hunt.SweepExpiredInput) (*hunt.SweepExpiredOutput, error) {
	return &hunt.SweepExpiredOutput{}, nil
}

func (stubHuntService) GetScoreboard(context.Context, *hunt.GetScoreboardInput) (*hunt.GetScoreboardOutput, error) {
	return &hunt.GetScoreboardOutput{}, nil
}

func (stubHuntService) GetInventory(context.Context, *hunt.GetInventoryInput) (*hunt.GetInventoryOutput, error) {
	return &hunt.GetInventoryOutput{}, nil
}

func (stubHuntService) GetSettings(context.Context, *hunt.GetSettingsInput) (*hunt.GetSettingsOutput, error) {
	return &hunt.GetSettingsOutput{}, nil
}

func (stubHuntService) UpdateSettings(context.Context, *hunt.UpdateSettingsInput) (*hunt.UpdateSettingsOutput, error) {
	return &hunt.UpdateSettingsOutput{}, nil
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{})
	assert.Error(t, err)

	_, err = New(&Config{Token: "token"})
	assert.Error(t, err)
}

// Interactions can arrive as soon as the session opens, so the component
// routing targets must exist straight out of New.
func TestNew_ComponentRoutingReady(t *testing.T) {
	bot, err := New(&Config{
		Token:       "token",
		HuntService: stubHuntService{},
	})
	require.NoError(t, err)

	assert.NotNil(t, bot.scoreboard)
	assert.NotNil(t, bot.inventory)
}
