package models

// Item is a collectible handed out by a trick-or-treater. Items are static
// data loaded once at startup and never mutated.
type Item struct {
	// ID is the unique identifier for the item
	ID int `json:"id"`

	// ParentID is the ID of the monster that hands out this item
	ParentID int `json:"parent_id"`

	// Name is the display name of the item
	Name string `json:"name"`

	// Rarity is the tier the item belongs to
	Rarity Rarity `json:"rarity"`
}

// Monster is a trick-or-treater that can knock on a guild's door
type Monster struct {
	// ID is the unique identifier for the monster
	ID int `json:"id"`

	// ImageURL points at the artwork shown in the spawn announcement
	ImageURL string `json:"image_url"`
}
