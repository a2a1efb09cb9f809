package domain

// Crew leveling constants
const (
	MaxCrewLevel      = 100
	LevelBandSize     = 10
	MinLevelBand      = 1
	MaxEquipmentSlots = 4
)

// Rarity display names indexed by rarity tier
var rarityNames = []string{
	"Basic",
	"Common",
	"Uncommon",
	"Rare",
	"Super Rare",
	"Legendary",
}

// RarityName returns the display name for a rarity tier, or "Unknown"
func RarityName(rarity int) string {
	if rarity < 0 || rarity >= len(rarityNames) {
		return "Unknown"
	}
	return rarityNames[rarity]
}

// Lookup miss kinds, used as log attribute and metric label values
const (
	KindCrew       = "crew"
	KindShip       = "ship"
	KindItem       = "item"
	KindIngredient = "ingredient"
)
