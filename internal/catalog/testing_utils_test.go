package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/CrewPlanner_Go/internal/validation"
)

const (
	testItemsJSON = `[
		{"symbol": "isolinear_chip", "name": "Isolinear Chip", "rarity": 1, "cost": 5},
		{"symbol": "duranium", "name": "Duranium", "rarity": 0, "cost": 2},
		{"symbol": "plasma_conduit", "name": "Plasma Conduit", "rarity": 2, "recipe": {"list": [{"symbol": "isolinear_chip", "count": 3}]}},
		{"symbol": "tricorder", "name": "Tricorder", "rarity": 3, "cost": 7, "recipe": null}
	]`
	testCrewJSON = `[
		{"symbol": "kirk", "name": "James T. Kirk", "max_rarity": 5, "equipment_slots": [
			{"level": 1, "symbol": "duranium"},
			{"level": 40, "symbol": "plasma_conduit", "count": 2},
			{"level": 50, "items": [{"symbol": "tricorder", "count": 1}, {"symbol": "duranium"}]}
		]},
		{"symbol": "spock", "name": "Spock", "max_rarity": 5}
	]`
	testShipsJSON = `[
		{"symbol": "enterprise_schematic", "ship": {"symbol": "enterprise", "name": "USS Enterprise", "rarity": 4, "max_level": 10}}
	]`
)

func writeCatalog(t *testing.T, dir, items, crew, ships string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ItemsFileName), []byte(items), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, CrewFileName), []byte(crew), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ShipSchematicsFileName), []byte(ships), 0644))
}

func newTestLoader(t *testing.T) Loader {
	t.Helper()
	v, err := validation.NewSchemaValidator()
	require.NoError(t, err)
	return NewLoader(v)
}
