package catalog

import (
	"fmt"

	"github.com/osse101/CrewPlanner_Go/internal/domain"
)

// Catalog is the read-only reference data for one catalog directory.
// It is safe to share across concurrent runs.
type Catalog struct {
	items []domain.ReferenceItem
	crew  []domain.ReferenceCrew
	ships []domain.ReferenceShip

	itemIndex map[string]*domain.ReferenceItem
	crewIndex map[string]*domain.ReferenceCrew
	shipIndex map[string]*domain.ReferenceShip

	fingerprint string
}

// Stats summarizes catalog contents
type Stats struct {
	Items       int    `json:"items"`
	Crew        int    `json:"crew"`
	Ships       int    `json:"ships"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

// New indexes the given reference records. Symbols must be non-empty and
// unique within each kind.
func New(items []domain.ReferenceItem, crew []domain.ReferenceCrew, ships []domain.ReferenceShip) (*Catalog, error) {
	c := &Catalog{
		items: items,
		crew:  crew,
		ships: ships,
	}

	var err error
	if c.itemIndex, err = index(domain.KindItem, c.items, func(i *domain.ReferenceItem) string { return i.Symbol }); err != nil {
		return nil, err
	}
	if c.crewIndex, err = index(domain.KindCrew, c.crew, func(r *domain.ReferenceCrew) string { return r.Symbol }); err != nil {
		return nil, err
	}
	if c.shipIndex, err = index(domain.KindShip, c.ships, func(s *domain.ReferenceShip) string { return s.Symbol }); err != nil {
		return nil, err
	}

	return c, nil
}

func index[T any](kind string, records []T, symbol func(*T) string) (map[string]*T, error) {
	idx := make(map[string]*T, len(records))
	for i := range records {
		rec := &records[i]
		sym := symbol(rec)
		if sym == "" {
			return nil, fmt.Errorf(ErrFmtRecordAtIndexEmpty, domain.ErrInvalidCatalog, kind, i)
		}
		if _, dup := idx[sym]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateSymbol, domain.ErrDuplicateSymbol, kind, sym)
		}
		idx[sym] = rec
	}
	return idx, nil
}

// Item returns the item definition for symbol
func (c *Catalog) Item(symbol string) (*domain.ReferenceItem, bool) {
	i, ok := c.itemIndex[symbol]
	return i, ok
}

// Crew returns the crew definition for symbol
func (c *Catalog) Crew(symbol string) (*domain.ReferenceCrew, bool) {
	r, ok := c.crewIndex[symbol]
	return r, ok
}

// Ship returns the ship for symbol
func (c *Catalog) Ship(symbol string) (*domain.ReferenceShip, bool) {
	s, ok := c.shipIndex[symbol]
	return s, ok
}

// Fingerprint identifies the on-disk state the catalog was loaded from.
// Empty for catalogs built in memory.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

// Stats returns record counts
func (c *Catalog) Stats() Stats {
	return Stats{
		Items:       len(c.items),
		Crew:        len(c.crew),
		Ships:       len(c.ships),
		Fingerprint: c.fingerprint,
	}
}
