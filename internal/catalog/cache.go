package catalog

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/CrewPlanner_Go/internal/logger"
	"github.com/osse101/CrewPlanner_Go/internal/metrics"
)

// CacheSchemaVersion is the current version of the cached catalog layout
// Increment this when the Catalog structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedCatalogEntry wraps a catalog with version and on-disk fingerprint
type cachedCatalogEntry struct {
	Version     string
	Fingerprint string
	Catalog     *Catalog
	CachedAt    time.Time
}

// Cache keeps loaded catalogs in an expirable LRU keyed by directory.
// An entry is reused only while the directory fingerprint is unchanged.
type Cache struct {
	loader Loader
	lru    *expirable.LRU[string, *cachedCatalogEntry]
	group  singleflight.Group
}

// NewCache creates a catalog cache.
// size: maximum number of cached directories
// ttl: time-to-live for cached entries
func NewCache(loader Loader, size int, ttl time.Duration) *Cache {
	return &Cache{
		loader: loader,
		lru:    expirable.NewLRU[string, *cachedCatalogEntry](size, nil, ttl),
	}
}

// Get returns the catalog for dir, loading it when absent, expired or
// changed on disk. Concurrent misses for the same dir share one load.
func (c *Cache) Get(ctx context.Context, dir string) (*Catalog, error) {
	log := logger.FromContext(ctx)

	fingerprint, err := Fingerprint(dir)
	if err != nil {
		return nil, err
	}

	if entry, found := c.lru.Get(dir); found {
		if entry.Version == CacheSchemaVersion && entry.Fingerprint == fingerprint {
			metrics.CatalogCacheTotal.WithLabelValues(metrics.ResultHit).Inc()
			log.Debug(LogMsgCatalogCacheHit, "dir", dir)
			return entry.Catalog, nil
		}
		log.Info(LogMsgCatalogReloading, "dir", dir)
		c.lru.Remove(dir)
	}
	metrics.CatalogCacheTotal.WithLabelValues(metrics.ResultMiss).Inc()

	v, err, _ := c.group.Do(dir+"@"+fingerprint, func() (interface{}, error) {
		start := time.Now()
		cat, err := c.loader.Load(ctx, dir)
		if err != nil {
			return nil, err
		}
		metrics.CatalogLoadDuration.Observe(time.Since(start).Seconds())

		c.lru.Add(dir, &cachedCatalogEntry{
			Version:     CacheSchemaVersion,
			Fingerprint: fingerprint,
			Catalog:     cat,
			CachedAt:    time.Now(),
		})
		return cat, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Catalog), nil
}

// Invalidate drops the cached catalog for dir
func (c *Cache) Invalidate(dir string) {
	c.lru.Remove(dir)
}

// Clear removes all entries from the cache
func (c *Cache) Clear() {
	c.lru.Purge()
}

// Len returns the number of cached catalogs
func (c *Cache) Len() int {
	return c.lru.Len()
}
