package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trickcord/trickcord/internal/models"
)

func TestNew(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	assert.NotZero(t, c.Size())
	assert.Equal(t, len(c.Items()), c.Size())
	assert.NotEmpty(t, c.Monsters())

	// Every monster must cover all three tiers.
	assert.Equal(t, 3*len(c.Monsters()), c.Size())
}

func TestItemByID(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	item, err := c.ItemByID(1)
	require.NoError(t, err)
	assert.Equal(t, 1, item.ID)

	_, err = c.ItemByID(999999)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestItemsForMonster(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	for _, monster := range c.Monsters() {
		items := c.ItemsForMonster(monster.ID)
		require.NotEmpty(t, items)

		for _, item := range items {
			assert.Equal(t, monster.ID, item.ParentID)
		}
	}

	assert.Empty(t, c.ItemsForMonster(999999))
}

func TestItemForMonsterAndRarity(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	for _, monster := range c.Monsters() {
		for _, rarity := range models.Rarities {
			item, err := c.ItemForMonsterAndRarity(monster.ID, rarity)
			require.NoError(t, err)
			assert.Equal(t, rarity, item.Rarity)
			assert.Equal(t, monster.ID, item.ParentID)
		}
	}

	_, err = c.ItemForMonsterAndRarity(999999, models.RarityCommon)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestMonster(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	monster, err := c.Monster(1)
	require.NoError(t, err)
	assert.Equal(t, 1, monster.ID)
	assert.NotEmpty(t, monster.ImageURL)

	_, err = c.Monster(999999)
	assert.ErrorIs(t, err, ErrMonsterNotFound)
}
