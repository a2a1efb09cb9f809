package demand

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CrewPlanner_Go/internal/domain"
)

func hydrated(symbol string, level int, equipped int, slots ...domain.EquipmentSlot) domain.HydratedCrew {
	equipment := make([]string, equipped)
	for i := range equipment {
		equipment[i] = "1"
	}
	return domain.HydratedCrew{
		OwnedCrew:      domain.OwnedCrew{Symbol: symbol, Level: level, Equipment: equipment, Owned: true},
		Name:           symbol,
		EquipmentSlots: slots,
	}
}

func TestRun(t *testing.T) {
	items := testCatalog()
	items["warp_coil"] = &domain.ReferenceItem{Symbol: "warp_coil", Recipe: []domain.Ingredient{need("verterium", 1)}}
	items["verterium"] = &domain.ReferenceItem{Symbol: "verterium", Recipe: []domain.Ingredient{need("warp_coil", 1)}}

	crew := []domain.HydratedCrew{
		hydrated("kirk", 47, 2, slot(30, need("tricorder", 1)), slot(40, need("plasma_conduit", 1))),
		hydrated("spock", 100, 4, slot(90, need("duranium", 99))),
		hydrated("scotty", 20, 1, slot(10, need("warp_coil", 1)), slot(20, need("duranium", 1))),
		hydrated("uhura", 62, 4, slot(60, need("duranium", 2)), slot(70, need("tricorder", 3))),
	}

	result := Run(context.Background(), crew, NewResolver(items))
	table := result.Table

	assert.Equal(t, []string{"tricorder", "isolinear_chip", "duranium"}, table.Columns,
		"cyclic crew contributes no columns")

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "kirk", table.Rows[0].CrewSymbol)
	assert.Equal(t, 30, table.Rows[0].StartLevel)
	assert.Equal(t, []int{1, 3, 0}, table.Rows[0].Cells)
	assert.Equal(t, 7+15, table.Rows[0].CraftCost)

	assert.Equal(t, "uhura", table.Rows[1].CrewSymbol)
	assert.Equal(t, 60, table.Rows[1].StartLevel)
	assert.Equal(t, []int{3, 0, 2}, table.Rows[1].Cells)
	assert.Equal(t, 21+4, table.Rows[1].CraftCost)

	assert.Equal(t, []Exclusion{
		{CrewSymbol: "spock", CrewName: "spock", Reason: ReasonFullyEquipped},
		{CrewSymbol: "scotty", CrewName: "scotty", Reason: ReasonCyclicRecipe},
	}, result.Excluded)
}

func TestRun_ColumnsAreUnionOfRowDemand(t *testing.T) {
	crew := []domain.HydratedCrew{
		hydrated("a", 15, 0, slot(1, need("duranium", 1))),
		hydrated("b", 35, 3, slot(20, need("phaser_array", 1))),
		hydrated("c", 55, 4, slot(50, need("tricorder", 2), need("duranium", 1))),
	}

	result := Run(context.Background(), crew, NewResolver(testCatalog()))

	seen := make(map[string]bool)
	for _, row := range result.Table.Rows {
		for i, q := range row.Cells {
			if q > 0 {
				seen[result.Table.Columns[i]] = true
			}
		}
	}
	assert.Len(t, seen, len(result.Table.Columns))
	for _, symbol := range result.Table.Columns {
		assert.True(t, seen[symbol], "column %s has a non-zero cell", symbol)
	}
	assert.Empty(t, result.Excluded)
}

func TestRun_NoCrew(t *testing.T) {
	result := Run(context.Background(), nil, NewResolver(testCatalog()))
	assert.Empty(t, result.Table.Rows)
	assert.Empty(t, result.Table.Columns)
	assert.Empty(t, result.Excluded)
}
