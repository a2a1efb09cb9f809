package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CrewPlanner_Go/internal/catalog"
	"github.com/osse101/CrewPlanner_Go/internal/config"
	"github.com/osse101/CrewPlanner_Go/internal/profile"
	"github.com/osse101/CrewPlanner_Go/internal/report"
	"github.com/osse101/CrewPlanner_Go/internal/validation"
)

// Pipeline holds the components of one export pipeline
type Pipeline struct {
	Profiles *profile.Loader
	Catalogs *catalog.Cache
	Reports  report.Service
}

// NewPipeline wires schema validation, the catalog cache, the profile loader
// and the report service from cfg
func NewPipeline(cfg *config.Config) (*Pipeline, error) {
	schemaValidator, err := validation.NewSchemaValidator()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaValidatorFailed, err)
	}

	catalogs := catalog.NewCache(catalog.NewLoader(schemaValidator), cfg.CatalogCacheSize, cfg.CatalogCacheTTL)

	return &Pipeline{
		Profiles: profile.NewLoader(schemaValidator),
		Catalogs: catalogs,
		Reports: report.NewService(catalogs, report.Options{
			CatalogDir:     cfg.CatalogDir,
			IncludeUnowned: cfg.IncludeUnowned,
		}),
	}, nil
}

// Preload warms the catalog cache. A failure is logged, not returned, so the
// server can still come up and report not-ready.
func (p *Pipeline) Preload(ctx context.Context, dir string) {
	cat, err := p.Catalogs.Get(ctx, dir)
	if err != nil {
		slog.Warn(LogMsgCatalogPreloadFail, "dir", dir, "error", err)
		return
	}
	stats := cat.Stats()
	slog.Info(LogMsgCatalogPreloaded,
		"dir", dir,
		"items", stats.Items,
		"crew", stats.Crew,
		"ships", stats.Ships,
		"fingerprint", stats.Fingerprint)
}
