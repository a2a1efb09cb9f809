package domain

// EquipmentSlot is one equipment requirement of a crew member, active once the
// crew reaches Level
type EquipmentSlot struct {
	Level int          `json:"level"`
	Items []Ingredient `json:"items"`
}

// ReferenceCrew is a crew definition from the reference catalog
type ReferenceCrew struct {
	Symbol         string          `json:"symbol"`
	Name           string          `json:"name"`
	MaxRarity      int             `json:"max_rarity"`
	EquipmentSlots []EquipmentSlot `json:"equipment_slots"`
}

// OwnedCrew is a crew record from the player save. Owned is false for roster
// entries the player does not have yet (the save's unOwnedCrew list).
type OwnedCrew struct {
	Symbol    string   `json:"symbol" validate:"required"`
	Level     int      `json:"level" validate:"gte=1,lte=100"`
	Rarity    int      `json:"rarity" validate:"gte=0"`
	Equipment []string `json:"equipment"`
	Owned     bool     `json:"owned"`
}

// EquippedCount returns the number of filled equipment slots, capped at the
// slot count of one level band
func (c *OwnedCrew) EquippedCount() int {
	if len(c.Equipment) > MaxEquipmentSlots {
		return MaxEquipmentSlots
	}
	return len(c.Equipment)
}

// HydratedCrew is an owned crew record joined with its catalog definition
type HydratedCrew struct {
	OwnedCrew
	Name           string          `json:"name"`
	MaxRarity      int             `json:"max_rarity"`
	EquipmentSlots []EquipmentSlot `json:"equipment_slots"`
}

// FilterOwned returns the crew the player actually has, skipping roster entries
func FilterOwned(crew []HydratedCrew) []HydratedCrew {
	owned := make([]HydratedCrew, 0, len(crew))
	for _, c := range crew {
		if c.Owned {
			owned = append(owned, c)
		}
	}
	return owned
}
