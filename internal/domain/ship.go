package domain

// ReferenceShip is the ship described by a catalog ship schematic
type ReferenceShip struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Rarity   int    `json:"rarity"`
	MaxLevel int    `json:"max_level"`
}

// OwnedShip is a ship from the player save
type OwnedShip struct {
	Symbol string `json:"symbol" validate:"required"`
	Level  int    `json:"level" validate:"gte=0"`
}

// HydratedShip is an owned ship joined with its schematic
type HydratedShip struct {
	OwnedShip
	Name     string `json:"name"`
	Rarity   int    `json:"rarity"`
	MaxLevel int    `json:"max_level"`
}
