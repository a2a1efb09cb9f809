package demand

import (
	"fmt"
	"strings"

	"github.com/osse101/CrewPlanner_Go/internal/domain"
)

// ItemLookup resolves item symbols against the reference catalog
type ItemLookup interface {
	Item(symbol string) (*domain.ReferenceItem, bool)
}

// Result is the expanded demand of a single crew member
type Result struct {
	Demands   []domain.DemandEntry
	CraftCost int
	// Unresolved lists ingredient symbols that had no catalog entry. They are
	// counted as base ingredients with no cost.
	Unresolved []string
}

// Map returns the demand as a symbol -> quantity map
func (r *Result) Map() map[string]int {
	m := make(map[string]int, len(r.Demands))
	for _, d := range r.Demands {
		m[d.Symbol] = d.Quantity
	}
	return m
}

// Resolver expands crew equipment slots into base ingredient demand
type Resolver struct {
	items ItemLookup
}

// NewResolver creates a resolver backed by the given item catalog
func NewResolver(items ItemLookup) *Resolver {
	return &Resolver{items: items}
}

// Resolve expands every slot whose level threshold is at or above band.
// Symbols of the resulting demand are added to tracker only when the whole
// expansion succeeds, so a failed crew member leaves no columns behind.
func (r *Resolver) Resolve(slots []domain.EquipmentSlot, band int, tracker *Tracker) (*Result, error) {
	acc := newAccumulator()

	for _, slot := range slots {
		if slot.Level < band {
			continue
		}
		for _, req := range slot.Items {
			if req.Quantity <= 0 {
				continue
			}
			if err := r.expand(req.Symbol, req.Quantity, nil, acc); err != nil {
				return nil, err
			}
		}
	}

	for _, d := range acc.demands {
		tracker.Add(d.Symbol)
	}

	return &Result{
		Demands:    acc.demands,
		CraftCost:  acc.cost,
		Unresolved: acc.unresolved,
	}, nil
}

// expand walks the recipe graph depth first. path holds the composite items
// currently being expanded and is used to reject cycles.
func (r *Resolver) expand(symbol string, quantity int, path []string, acc *accumulator) error {
	for _, p := range path {
		if p == symbol {
			chain := append(append([]string{}, path...), symbol)
			return fmt.Errorf("%w: %s", domain.ErrCyclicRecipe, strings.Join(chain, " -> "))
		}
	}

	item, ok := r.items.Item(symbol)
	if !ok {
		acc.unresolvedSymbol(symbol)
		acc.add(symbol, quantity, 0)
		return nil
	}

	if !item.IsComposite() {
		acc.add(symbol, quantity, item.UnitCost)
		return nil
	}

	path = append(path, symbol)
	for _, ing := range item.Recipe {
		if ing.Quantity <= 0 {
			continue
		}
		if err := r.expand(ing.Symbol, quantity*ing.Quantity, path, acc); err != nil {
			return err
		}
	}
	return nil
}

// accumulator merges base ingredient quantities for one crew member
type accumulator struct {
	demands    []domain.DemandEntry
	index      map[string]int
	cost       int
	unresolved []string
	missing    map[string]bool
}

func newAccumulator() *accumulator {
	return &accumulator{
		index:   make(map[string]int),
		missing: make(map[string]bool),
	}
}

func (a *accumulator) add(symbol string, quantity, unitCost int) {
	if i, ok := a.index[symbol]; ok {
		a.demands[i].Quantity += quantity
	} else {
		a.index[symbol] = len(a.demands)
		a.demands = append(a.demands, domain.DemandEntry{Symbol: symbol, Quantity: quantity})
	}
	a.cost += quantity * unitCost
}

func (a *accumulator) unresolvedSymbol(symbol string) {
	if a.missing[symbol] {
		return
	}
	a.missing[symbol] = true
	a.unresolved = append(a.unresolved, symbol)
}
