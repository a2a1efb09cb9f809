package demand

import (
	"context"
	"errors"

	"github.com/osse101/CrewPlanner_Go/internal/domain"
	"github.com/osse101/CrewPlanner_Go/internal/logger"
	"github.com/osse101/CrewPlanner_Go/internal/metrics"
)

// Exclusion reasons
const (
	ReasonFullyEquipped = "fully_equipped"
	ReasonCyclicRecipe  = "cyclic_recipe"
	ReasonResolveFailed = "resolve_failed"
)

// Exclusion records a crew member that produced no equipment row
type Exclusion struct {
	CrewSymbol string `json:"crew_symbol"`
	CrewName   string `json:"crew"`
	Reason     string `json:"reason"`
}

// RunResult is the outcome of one demand run
type RunResult struct {
	Table    *Table      `json:"table"`
	Excluded []Exclusion `json:"excluded"`
}

// Run resolves every crew member, then assembles the equipment table once the
// column set is final. The tracker is owned by the run and never shared.
func Run(ctx context.Context, crew []domain.HydratedCrew, resolver *Resolver) *RunResult {
	log := logger.FromContext(ctx)

	tracker := NewTracker()
	candidates := make([]domain.CraftCostRow, 0, len(crew))
	var excluded []Exclusion

	for i := range crew {
		c := &crew[i]

		band, ok := ResolveBand(c.Level, c.EquippedCount())
		if !ok {
			excluded = append(excluded, Exclusion{CrewSymbol: c.Symbol, CrewName: c.Name, Reason: ReasonFullyEquipped})
			metrics.CrewExcludedTotal.WithLabelValues(ReasonFullyEquipped).Inc()
			continue
		}

		res, err := resolver.Resolve(c.EquipmentSlots, band, tracker)
		if err != nil {
			reason := ReasonResolveFailed
			if errors.Is(err, domain.ErrCyclicRecipe) {
				reason = ReasonCyclicRecipe
			}
			log.Warn("Skipping crew with unresolvable equipment", "crew", c.Symbol, "reason", reason, "error", err)
			excluded = append(excluded, Exclusion{CrewSymbol: c.Symbol, CrewName: c.Name, Reason: reason})
			metrics.CrewExcludedTotal.WithLabelValues(reason).Inc()
			continue
		}

		for _, symbol := range res.Unresolved {
			log.Warn("Ingredient missing from item catalog", "crew", c.Symbol, "symbol", symbol)
			metrics.LookupMissesTotal.WithLabelValues(domain.KindIngredient).Inc()
		}

		candidates = append(candidates, domain.CraftCostRow{
			CrewName:   c.Name,
			CrewSymbol: c.Symbol,
			StartLevel: band,
			CraftCost:  res.CraftCost,
			Demand:     res.Map(),
		})
	}

	table := Assemble(candidates, tracker)

	metrics.ExportRowsTotal.Add(float64(len(table.Rows)))
	metrics.ExportColumns.Observe(float64(len(table.Columns)))
	log.Info("Equipment demand resolved",
		"crew", len(crew),
		"rows", len(table.Rows),
		"columns", len(table.Columns),
		"excluded", len(excluded))

	return &RunResult{Table: table, Excluded: excluded}
}
