package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CrewPlanner_Go/internal/catalog"
)

// Stopper is a component that stops accepting work
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server   Stopper
	Catalogs *catalog.Cache
}

// GracefulShutdown stops the HTTP server first so in-flight exports finish,
// then drops cached catalogs. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Catalogs != nil {
		components.Catalogs.Clear()
		slog.Info(LogMsgCatalogCacheCleared)
	}

	slog.Info(LogMsgServerStopped)
}
