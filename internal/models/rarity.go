package models

import "fmt"

// Rarity represents how rare a collectible item is
type Rarity int

const (
	// RarityCommon is the most frequent tier
	RarityCommon Rarity = iota

	// RarityUncommon is the middle tier
	RarityUncommon

	// RarityRare is the top tier
	RarityRare
)

// Rarities lists all rarities in their fixed drawing order. The lottery's
// cumulative sums follow this order, which decides which tier wins an exact
// boundary draw.
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare}

// String returns the lowercase name of the rarity
func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	}
	return fmt.Sprintf("unknown(%d)", int(r))
}

// Valid reports whether the rarity is one of the known tiers
func (r Rarity) Valid() bool {
	return r >= RarityCommon && r <= RarityRare
}

// ParseRarity converts a lowercase rarity name back to its enum value
func ParseRarity(s string) (Rarity, error) {
	switch s {
	case "common":
		return RarityCommon, nil
	case "uncommon":
		return RarityUncommon, nil
	case "rare":
		return RarityRare, nil
	}
	return 0, fmt.Errorf("unknown rarity %q", s)
}
