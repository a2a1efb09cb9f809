package demand

import "github.com/osse101/CrewPlanner_Go/internal/domain"

// fakeItems is an in-memory item catalog
type fakeItems map[string]*domain.ReferenceItem

func (f fakeItems) Item(symbol string) (*domain.ReferenceItem, bool) {
	item, ok := f[symbol]
	return item, ok
}

func newFakeItems(items ...domain.ReferenceItem) fakeItems {
	f := make(fakeItems, len(items))
	for i := range items {
		f[items[i].Symbol] = &items[i]
	}
	return f
}

func base(symbol string, cost int) domain.ReferenceItem {
	return domain.ReferenceItem{Symbol: symbol, Name: symbol, UnitCost: cost}
}

func composite(symbol string, recipe ...domain.Ingredient) domain.ReferenceItem {
	return domain.ReferenceItem{Symbol: symbol, Name: symbol, Recipe: recipe}
}

func need(symbol string, qty int) domain.Ingredient {
	return domain.Ingredient{Symbol: symbol, Quantity: qty}
}

func slot(level int, items ...domain.Ingredient) domain.EquipmentSlot {
	return domain.EquipmentSlot{Level: level, Items: items}
}

// testCatalog is shared by resolver and run tests:
//
//	phaser_array    = 2 x plasma_conduit + 1 x duranium
//	plasma_conduit  = 3 x isolinear_chip
//	isolinear_chip  base, cost 5
//	duranium        base, cost 2
//	tricorder       base, cost 7
func testCatalog() fakeItems {
	return newFakeItems(
		composite("phaser_array", need("plasma_conduit", 2), need("duranium", 1)),
		composite("plasma_conduit", need("isolinear_chip", 3)),
		base("isolinear_chip", 5),
		base("duranium", 2),
		base("tricorder", 7),
	)
}
