package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CrewPlanner_Go/internal/demand"
	"github.com/osse101/CrewPlanner_Go/internal/domain"
)

type fakeItems map[string]*domain.ReferenceItem

func (f fakeItems) Item(symbol string) (*domain.ReferenceItem, bool) {
	i, ok := f[symbol]
	return i, ok
}

func testTable() *demand.Table {
	tr := demand.NewTracker()
	tr.Add("tricorder")
	tr.Add("self_sealing_stem_bolt")
	return demand.Assemble([]domain.CraftCostRow{
		{CrewName: "James T. Kirk", CrewSymbol: "kirk", StartLevel: 30, CraftCost: 22, Demand: map[string]int{"tricorder": 1}},
		{CrewName: "Quark", CrewSymbol: "quark", StartLevel: 1, CraftCost: 0, Demand: map[string]int{"self_sealing_stem_bolt": 12}},
	}, tr)
}

func TestEquipmentSheet(t *testing.T) {
	items := fakeItems{"tricorder": {Symbol: "tricorder", Name: "Tricorder", Rarity: 3}}

	s := EquipmentSheet(testTable(), items)

	assert.Equal(t, SheetEquipment, s.Name)
	assert.Equal(t, []string{"Crew", "Level", "Craft cost", "Rare Tricorder", "Self Sealing Stem Bolt"}, s.Header)
	require.Len(t, s.Rows, 2)
	assert.Equal(t, []string{"James T. Kirk", "30", "22", "1", "0"}, s.Rows[0])
	assert.Equal(t, []string{"Quark", "1", "0", "0", "12"}, s.Rows[1])
	for _, row := range s.Rows {
		assert.Len(t, row, len(s.Header))
	}
}

func TestColumnHeader(t *testing.T) {
	items := fakeItems{
		"phaser":    {Symbol: "phaser", Name: "Type 2 Phaser", Rarity: 5},
		"oddity":    {Symbol: "oddity", Name: "Oddity", Rarity: 9},
		"isolinear": {Symbol: "isolinear", Name: "Isolinear Chip", Rarity: 0},
	}

	tests := []struct {
		symbol string
		want   string
	}{
		{"phaser", "Legendary Type 2 Phaser"},
		{"isolinear", "Basic Isolinear Chip"},
		{"oddity", "Unknown Oddity"},
		{"plasma_conduit", "Plasma Conduit"},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert.Equal(t, tt.want, ColumnHeader(tt.symbol, items))
		})
	}

	assert.Equal(t, "Warp Core", ColumnHeader("warp_core", nil))
}

func TestBuildSheet(t *testing.T) {
	crew := []domain.HydratedCrew{{
		OwnedCrew: domain.OwnedCrew{Symbol: "kirk", Level: 47, Rarity: 4, Equipment: []string{"0", "1"}, Owned: true},
		Name:      "James T. Kirk",
		MaxRarity: 5,
	}}

	s := BuildSheet(SheetCrew, CrewFields(), crew)

	assert.Equal(t, []string{"Name", "Symbol", "Owned", "Rarity", "Max rarity", "Level", "Equipment"}, s.Header)
	assert.Equal(t, [][]string{{"James T. Kirk", "kirk", "true", "4", "5", "47", "2"}}, s.Rows)

	ships := BuildSheet(SheetShips, ShipFields(), []domain.HydratedShip{{
		OwnedShip: domain.OwnedShip{Symbol: "enterprise", Level: 3},
		Name:      "USS Enterprise",
		Rarity:    4,
		MaxLevel:  10,
	}})
	assert.Equal(t, [][]string{{"USS Enterprise", "enterprise", "Super Rare", "3", "10"}}, ships.Rows)

	items := BuildSheet(SheetItems, ItemFields(), []domain.HydratedItem{{
		OwnedItem: domain.OwnedItem{Symbol: "tricorder", Quantity: 9},
		Name:      "Tricorder",
		Rarity:    2,
	}})
	assert.Equal(t, [][]string{{"Tricorder", "tricorder", "Uncommon", "9"}}, items.Rows)

	empty := BuildSheet(SheetItems, ItemFields(), nil)
	assert.Len(t, empty.Header, 4)
	assert.Empty(t, empty.Rows)
}
