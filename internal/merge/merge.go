package merge

import (
	"context"

	"github.com/osse101/CrewPlanner_Go/internal/domain"
	"github.com/osse101/CrewPlanner_Go/internal/logger"
	"github.com/osse101/CrewPlanner_Go/internal/metrics"
)

// CrewLookup resolves crew symbols against the reference catalog
type CrewLookup interface {
	Crew(symbol string) (*domain.ReferenceCrew, bool)
}

// ShipLookup resolves ship symbols against the reference catalog
type ShipLookup interface {
	Ship(symbol string) (*domain.ReferenceShip, bool)
}

// ItemLookup resolves item symbols against the reference catalog
type ItemLookup interface {
	Item(symbol string) (*domain.ReferenceItem, bool)
}

// Hydrate joins owned records to reference records by symbol. Output keeps
// the order of owned. Records with no reference entry are left out and their
// symbols returned in missing.
func Hydrate[O any, R any, H any](
	owned []O,
	symbol func(*O) string,
	lookup func(string) (*R, bool),
	join func(*O, *R) H,
) (hydrated []H, missing []string) {
	hydrated = make([]H, 0, len(owned))
	for i := range owned {
		o := &owned[i]
		sym := symbol(o)
		ref, ok := lookup(sym)
		if !ok {
			missing = append(missing, sym)
			continue
		}
		hydrated = append(hydrated, join(o, ref))
	}
	return hydrated, missing
}

// Crew hydrates owned crew with their catalog definitions
func Crew(ctx context.Context, owned []domain.OwnedCrew, catalog CrewLookup) []domain.HydratedCrew {
	hydrated, missing := Hydrate(owned,
		func(c *domain.OwnedCrew) string { return c.Symbol },
		catalog.Crew,
		func(c *domain.OwnedCrew, ref *domain.ReferenceCrew) domain.HydratedCrew {
			return domain.HydratedCrew{
				OwnedCrew:      *c,
				Name:           ref.Name,
				MaxRarity:      ref.MaxRarity,
				EquipmentSlots: ref.EquipmentSlots,
			}
		})
	recordMisses(ctx, domain.KindCrew, missing)
	return hydrated
}

// Ships hydrates owned ships with their schematics
func Ships(ctx context.Context, owned []domain.OwnedShip, catalog ShipLookup) []domain.HydratedShip {
	hydrated, missing := Hydrate(owned,
		func(s *domain.OwnedShip) string { return s.Symbol },
		catalog.Ship,
		func(s *domain.OwnedShip, ref *domain.ReferenceShip) domain.HydratedShip {
			return domain.HydratedShip{
				OwnedShip: *s,
				Name:      ref.Name,
				Rarity:    ref.Rarity,
				MaxLevel:  ref.MaxLevel,
			}
		})
	recordMisses(ctx, domain.KindShip, missing)
	return hydrated
}

// Items hydrates owned item stacks with their catalog definitions
func Items(ctx context.Context, owned []domain.OwnedItem, catalog ItemLookup) []domain.HydratedItem {
	hydrated, missing := Hydrate(owned,
		func(i *domain.OwnedItem) string { return i.Symbol },
		catalog.Item,
		func(i *domain.OwnedItem, ref *domain.ReferenceItem) domain.HydratedItem {
			return domain.HydratedItem{
				OwnedItem: *i,
				Name:      ref.Name,
				Rarity:    ref.Rarity,
			}
		})
	recordMisses(ctx, domain.KindItem, missing)
	return hydrated
}

func recordMisses(ctx context.Context, kind string, missing []string) {
	if len(missing) == 0 {
		return
	}
	logger.FromContext(ctx).Debug("Dropped records missing from catalog", "kind", kind, "count", len(missing), "symbols", missing)
	metrics.LookupMissesTotal.WithLabelValues(kind).Add(float64(len(missing)))
}
