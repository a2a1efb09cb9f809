package report

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CrewPlanner_Go/internal/catalog"
	"github.com/osse101/CrewPlanner_Go/internal/demand"
	"github.com/osse101/CrewPlanner_Go/internal/domain"
	"github.com/osse101/CrewPlanner_Go/internal/logger"
	"github.com/osse101/CrewPlanner_Go/internal/merge"
	"github.com/osse101/CrewPlanner_Go/internal/metrics"
)

// CatalogSource provides the reference catalog for a directory
type CatalogSource interface {
	Get(ctx context.Context, dir string) (*catalog.Catalog, error)
}

// Options controls what a report run covers
type Options struct {
	CatalogDir string
	// IncludeUnowned adds roster crew the player does not own to the
	// equipment demand run
	IncludeUnowned bool
}

// Report is the outcome of one export run
type Report struct {
	RunID     string                `json:"run_id"`
	Crew      []domain.HydratedCrew `json:"crew"`
	Ships     []domain.HydratedShip `json:"ships"`
	Items     []domain.HydratedItem `json:"items"`
	Equipment *demand.Table         `json:"equipment"`
	Excluded  []demand.Exclusion    `json:"excluded"`
	Catalog   catalog.Stats         `json:"catalog"`

	// source backs Item lookups for sheet headers
	source *catalog.Catalog
}

// Item resolves item metadata against the catalog the report was built from
func (r *Report) Item(symbol string) (*domain.ReferenceItem, bool) {
	if r.source == nil {
		return nil, false
	}
	return r.source.Item(symbol)
}

// Service builds reports from player profiles
type Service interface {
	Build(ctx context.Context, p *domain.Profile) (*Report, error)
	Ready(ctx context.Context) error
}

type service struct {
	catalogs CatalogSource
	opts     Options
}

// NewService creates a new report service
func NewService(catalogs CatalogSource, opts Options) Service {
	return &service{
		catalogs: catalogs,
		opts:     opts,
	}
}

// Build hydrates the profile against the catalog and runs the equipment
// demand pipeline. The catalog is fully loaded before aggregation starts.
func (s *service) Build(ctx context.Context, p *domain.Profile) (*Report, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNilProfile)
	}

	runID := logger.GetRequestID(ctx)
	if runID == "" {
		runID = logger.GenerateRequestID()
		ctx = logger.WithRequestID(ctx, runID)
	}
	log := logger.FromContext(ctx)
	start := time.Now()

	cat, err := s.catalogs.Get(ctx, s.opts.CatalogDir)
	if err != nil {
		metrics.ExportRunsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		log.Error(LogMsgCatalogUnavailable, "dir", s.opts.CatalogDir, "error", err)
		return nil, fmt.Errorf(ErrMsgLoadCatalogFailed, domain.ErrCatalogUnavailable, err)
	}

	crew := merge.Crew(ctx, p.Crew, cat)
	ships := merge.Ships(ctx, p.Ships, cat)
	items := merge.Items(ctx, p.Items, cat)

	candidates := crew
	if !s.opts.IncludeUnowned {
		candidates = domain.FilterOwned(crew)
	}

	run := demand.Run(ctx, candidates, demand.NewResolver(cat))

	metrics.ExportRunsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Info(LogMsgReportBuilt,
		"crew", len(crew),
		"ships", len(ships),
		"items", len(items),
		"demand_rows", len(run.Table.Rows),
		"duration", time.Since(start))

	return &Report{
		RunID:     runID,
		Crew:      crew,
		Ships:     ships,
		Items:     items,
		Equipment: run.Table,
		Excluded:  run.Excluded,
		Catalog:   cat.Stats(),
		source:    cat,
	}, nil
}

// Ready reports whether the configured catalog can be loaded
func (s *service) Ready(ctx context.Context) error {
	if _, err := s.catalogs.Get(ctx, s.opts.CatalogDir); err != nil {
		return fmt.Errorf(ErrMsgLoadCatalogFailed, domain.ErrCatalogUnavailable, err)
	}
	return nil
}
