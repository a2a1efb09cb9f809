package domain

// Ingredient is a single (item, quantity) requirement line, used both by item
// recipes and by crew equipment slots
type Ingredient struct {
	Symbol   string `json:"symbol"`
	Quantity int    `json:"count"`
}

// ReferenceItem is an item definition from the reference catalog
type ReferenceItem struct {
	Symbol   string       `json:"symbol"`
	Name     string       `json:"name"`
	Rarity   int          `json:"rarity"`
	UnitCost int          `json:"cost"`
	Recipe   []Ingredient `json:"recipe,omitempty"`
}

// IsComposite reports whether the item is crafted from other items
func (i *ReferenceItem) IsComposite() bool {
	return len(i.Recipe) > 0
}

// OwnedItem is an item stack from the player save
type OwnedItem struct {
	Symbol   string `json:"symbol" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// HydratedItem is an owned item stack joined with its catalog definition
type HydratedItem struct {
	OwnedItem
	Name   string `json:"name"`
	Rarity int    `json:"rarity"`
}
