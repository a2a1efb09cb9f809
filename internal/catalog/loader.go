package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/CrewPlanner_Go/internal/domain"
	"github.com/osse101/CrewPlanner_Go/internal/logger"
	"github.com/osse101/CrewPlanner_Go/internal/validation"
)

// itemDef is one entry of items.json
type itemDef struct {
	Symbol string     `json:"symbol"`
	Name   string     `json:"name"`
	Rarity int        `json:"rarity"`
	Cost   int        `json:"cost"`
	Recipe *recipeDef `json:"recipe"`
}

type recipeDef struct {
	List []ingredientDef `json:"list"`
}

type ingredientDef struct {
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
}

// crewDef is one entry of crew.json
type crewDef struct {
	Symbol         string    `json:"symbol"`
	Name           string    `json:"name"`
	MaxRarity      int       `json:"max_rarity"`
	EquipmentSlots []slotDef `json:"equipment_slots"`
}

// slotDef names either a single item (symbol, optional count) or an items list
type slotDef struct {
	Level  int             `json:"level"`
	Symbol string          `json:"symbol"`
	Count  int             `json:"count"`
	Items  []ingredientDef `json:"items"`
}

// schematicDef is one entry of ship_schematics.json
type schematicDef struct {
	Symbol string  `json:"symbol"`
	Ship   shipDef `json:"ship"`
}

type shipDef struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Rarity   int    `json:"rarity"`
	MaxLevel int    `json:"max_level"`
}

// Loader reads a catalog directory
type Loader interface {
	Load(ctx context.Context, dir string) (*Catalog, error)
}

type fileLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a loader that schema-validates every catalog file
func NewLoader(schemaValidator validation.SchemaValidator) Loader {
	return &fileLoader{schemaValidator: schemaValidator}
}

// Load reads the three catalog files concurrently and indexes them
func (l *fileLoader) Load(ctx context.Context, dir string) (*Catalog, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	var (
		items []domain.ReferenceItem
		crew  []domain.ReferenceCrew
		ships []domain.ReferenceShip
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var defs []itemDef
		if err := l.readFile(gctx, filepath.Join(dir, ItemsFileName), validation.SchemaItems, &defs); err != nil {
			return err
		}
		items = toItems(defs)
		return nil
	})
	g.Go(func() error {
		var defs []crewDef
		if err := l.readFile(gctx, filepath.Join(dir, CrewFileName), validation.SchemaCrew, &defs); err != nil {
			return err
		}
		crew = toCrew(defs)
		return nil
	})
	g.Go(func() error {
		var defs []schematicDef
		if err := l.readFile(gctx, filepath.Join(dir, ShipSchematicsFileName), validation.SchemaShipSchematics, &defs); err != nil {
			return err
		}
		ships = toShips(defs)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c, err := New(items, crew, ships)
	if err != nil {
		return nil, err
	}

	if c.fingerprint, err = Fingerprint(dir); err != nil {
		return nil, err
	}

	log.Info(LogMsgCatalogLoaded,
		"dir", dir,
		"items", len(items),
		"crew", len(crew),
		"ships", len(ships),
		"duration", time.Since(start))

	return c, nil
}

func (l *fileLoader) readFile(ctx context.Context, path, schema string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(ErrMsgReadCatalogFileFailed, path, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, schema); err != nil {
		return fmt.Errorf("%w: "+ErrMsgSchemaValidationFailed, domain.ErrInvalidCatalog, path, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf(ErrMsgParseCatalogFileFailed, path, err)
	}
	return nil
}

func toItems(defs []itemDef) []domain.ReferenceItem {
	items := make([]domain.ReferenceItem, 0, len(defs))
	for _, d := range defs {
		item := domain.ReferenceItem{
			Symbol:   d.Symbol,
			Name:     d.Name,
			Rarity:   d.Rarity,
			UnitCost: d.Cost,
		}
		if d.Recipe != nil {
			for _, ing := range d.Recipe.List {
				item.Recipe = append(item.Recipe, domain.Ingredient{Symbol: ing.Symbol, Quantity: ing.Count})
			}
		}
		items = append(items, item)
	}
	return items
}

func toCrew(defs []crewDef) []domain.ReferenceCrew {
	crew := make([]domain.ReferenceCrew, 0, len(defs))
	for _, d := range defs {
		c := domain.ReferenceCrew{
			Symbol:         d.Symbol,
			Name:           d.Name,
			MaxRarity:      d.MaxRarity,
			EquipmentSlots: make([]domain.EquipmentSlot, 0, len(d.EquipmentSlots)),
		}
		for _, s := range d.EquipmentSlots {
			c.EquipmentSlots = append(c.EquipmentSlots, toSlot(s))
		}
		crew = append(crew, c)
	}
	return crew
}

func toSlot(s slotDef) domain.EquipmentSlot {
	slot := domain.EquipmentSlot{Level: s.Level}
	if s.Symbol != "" {
		slot.Items = append(slot.Items, domain.Ingredient{Symbol: s.Symbol, Quantity: max(s.Count, 1)})
	}
	for _, ing := range s.Items {
		slot.Items = append(slot.Items, domain.Ingredient{Symbol: ing.Symbol, Quantity: max(ing.Count, 1)})
	}
	return slot
}

func toShips(defs []schematicDef) []domain.ReferenceShip {
	ships := make([]domain.ReferenceShip, 0, len(defs))
	for _, d := range defs {
		ships = append(ships, domain.ReferenceShip{
			Symbol:   d.Ship.Symbol,
			Name:     d.Ship.Name,
			Rarity:   d.Ship.Rarity,
			MaxLevel: d.Ship.MaxLevel,
		})
	}
	return ships
}

// Fingerprint hashes name, size and modification time of every catalog file
// in dir. It changes whenever any file is rewritten.
func Fingerprint(dir string) (string, error) {
	h := sha256.New()
	for _, name := range CatalogFiles {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf(ErrMsgStatCatalogFileFailed, path, err)
		}
		fmt.Fprintf(h, "%s:%d:%d\n", name, info.Size(), info.ModTime().UnixNano())
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
