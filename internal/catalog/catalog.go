package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/trickcord/trickcord/internal/models"
)

//go:embed assets/items.json assets/monsters.json
var assets embed.FS

// Define errors
var (
	ErrItemNotFound    = errors.New("item not found")
	ErrMonsterNotFound = errors.New("monster not found")
)

// Catalog is the static lookup of monsters and the items they hand out.
// It is immutable after New and safe for concurrent use.
type Catalog struct {
	items         []models.Item
	itemsByID     map[int]models.Item
	itemsByParent map[int][]models.Item
	monsters      []models.Monster
	monstersByID  map[int]models.Monster
}

// New loads the bundled datasets and validates them. Every item must
// reference an existing monster and every monster must hand out at least one
// item per rarity tier, so a lottery draw can never come up empty at spawn
// time.
func New() (*Catalog, error) {
	var items []models.Item
	if err := loadAsset("assets/items.json", &items); err != nil {
		return nil, err
	}

	var monsters []models.Monster
	if err := loadAsset("assets/monsters.json", &monsters); err != nil {
		return nil, err
	}

	c := &Catalog{
		items:         items,
		itemsByID:     make(map[int]models.Item, len(items)),
		itemsByParent: make(map[int][]models.Item),
		monsters:      monsters,
		monstersByID:  make(map[int]models.Monster, len(monsters)),
	}

	for _, monster := range monsters {
		if _, ok := c.monstersByID[monster.ID]; ok {
			return nil, fmt.Errorf("duplicate monster ID %d", monster.ID)
		}
		c.monstersByID[monster.ID] = monster
	}

	for _, item := range items {
		if _, ok := c.itemsByID[item.ID]; ok {
			return nil, fmt.Errorf("duplicate item ID %d", item.ID)
		}
		if !item.Rarity.Valid() {
			return nil, fmt.Errorf("item %d has invalid rarity %d", item.ID, int(item.Rarity))
		}
		if _, ok := c.monstersByID[item.ParentID]; !ok {
			return nil, fmt.Errorf("item %d references unknown monster %d", item.ID, item.ParentID)
		}

		c.itemsByID[item.ID] = item
		c.itemsByParent[item.ParentID] = append(c.itemsByParent[item.ParentID], item)
	}

	// Every (monster, rarity) pair the lottery can draw must resolve to an
	// item. Catching a gap here keeps spawn handling infallible.
	for _, monster := range monsters {
		for _, rarity := range models.Rarities {
			if _, err := c.ItemForMonsterAndRarity(monster.ID, rarity); err != nil {
				return nil, fmt.Errorf("monster %d has no %s item", monster.ID, rarity)
			}
		}
	}

	return c, nil
}

func loadAsset(name string, v any) error {
	data, err := assets.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return nil
}

// Items returns every item in the catalog
func (c *Catalog) Items() []models.Item {
	return c.items
}

// Size returns the total number of distinct items. The "collected
// everything" check compares against this, never a hardcoded count.
func (c *Catalog) Size() int {
	return len(c.items)
}

// ItemByID looks up an item by its ID
func (c *Catalog) ItemByID(id int) (models.Item, error) {
	item, ok := c.itemsByID[id]
	if !ok {
		return models.Item{}, fmt.Errorf("%w: %d", ErrItemNotFound, id)
	}

	return item, nil
}

// ItemsForMonster returns the items a monster hands out
func (c *Catalog) ItemsForMonster(monsterID int) []models.Item {
	return c.itemsByParent[monsterID]
}

// ItemForMonsterAndRarity returns the item a monster hands out at the given
// rarity
func (c *Catalog) ItemForMonsterAndRarity(monsterID int, rarity models.Rarity) (models.Item, error) {
	for _, item := range c.itemsByParent[monsterID] {
		if item.Rarity == rarity {
			return item, nil
		}
	}

	return models.Item{}, fmt.Errorf("%w: monster %d rarity %s", ErrItemNotFound, monsterID, rarity)
}

// Monster looks up a monster by its ID
func (c *Catalog) Monster(id int) (models.Monster, error) {
	monster, ok := c.monstersByID[id]
	if !ok {
		return models.Monster{}, fmt.Errorf("%w: %d", ErrMonsterNotFound, id)
	}

	return monster, nil
}

// Monsters returns every monster in the catalog
func (c *Catalog) Monsters() []models.Monster {
	return c.monsters
}
