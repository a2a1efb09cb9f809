package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/osse101/CrewPlanner_Go/internal/bootstrap"
	"github.com/osse101/CrewPlanner_Go/internal/config"
	"github.com/osse101/CrewPlanner_Go/internal/export"
	"github.com/osse101/CrewPlanner_Go/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	catalogDir := flag.String("catalog", cfg.CatalogDir, "Directory holding items.json, crew.json and ship_schematics.json")
	profilePath := flag.String("profile", "", "Path to the player save JSON")
	outDir := flag.String("out", cfg.OutputDir, "Directory the CSV sheets are written to")
	includeUnowned := flag.Bool("include-unowned", cfg.IncludeUnowned, "Also compute equipment demand for crew the player does not own")
	flag.Parse()

	if *profilePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: export -profile FILE [-catalog DIR] [-out DIR] [-include-unowned]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg.CatalogDir = *catalogDir
	cfg.OutputDir = *outDir
	cfg.IncludeUnowned = *includeUnowned

	// Progress goes to stderr so stdout only lists written files
	bootstrap.SetupLogger(cfg, os.Stderr)

	if err := run(cfg, *profilePath); err != nil {
		slog.Error("Export failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, profilePath string) error {
	pipeline, err := bootstrap.NewPipeline(cfg)
	if err != nil {
		return err
	}

	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())

	profile, sum, err := pipeline.Profiles.LoadFile(ctx, profilePath)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Profile loaded",
		"crew", sum.Crew,
		"unowned_crew", sum.UnownedCrew,
		"ships", sum.Ships,
		"items", sum.Items,
		"skipped", sum.SkippedCrew+sum.SkippedShips+sum.SkippedItems)

	rep, err := pipeline.Reports.Build(ctx, profile)
	if err != nil {
		return err
	}
	for _, ex := range rep.Excluded {
		logger.FromContext(ctx).Debug("Crew excluded from equipment sheet", "crew", ex.CrewSymbol, "reason", ex.Reason)
	}

	paths, err := export.WriteDir(cfg.OutputDir, export.Workbook(rep))
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}
