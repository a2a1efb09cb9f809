package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLoader wraps a Loader and counts calls
type countingLoader struct {
	inner Loader
	calls atomic.Int32
	err   error
}

func (l *countingLoader) Load(ctx context.Context, dir string) (*Catalog, error) {
	l.calls.Add(1)
	if l.err != nil {
		return nil, l.err
	}
	return l.inner.Load(ctx, dir)
}

func TestCache_Get(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, testItemsJSON, testCrewJSON, testShipsJSON)

	loader := &countingLoader{inner: newTestLoader(t)}
	cache := NewCache(loader, 4, time.Minute)
	ctx := context.Background()

	first, err := cache.Get(ctx, dir)
	require.NoError(t, err)
	second, err := cache.Get(ctx, dir)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), loader.calls.Load())
	assert.Equal(t, 1, cache.Len())
}

func TestCache_ReloadsChangedCatalog(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, testItemsJSON, testCrewJSON, testShipsJSON)

	loader := &countingLoader{inner: newTestLoader(t)}
	cache := NewCache(loader, 4, time.Minute)
	ctx := context.Background()

	first, err := cache.Get(ctx, dir)
	require.NoError(t, err)

	path := filepath.Join(dir, CrewFileName)
	require.NoError(t, os.WriteFile(path, []byte(`[{"symbol": "spock", "name": "Spock"}]`), 0644))
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	second, err := cache.Get(ctx, dir)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, 1, second.Stats().Crew)
	assert.Equal(t, int32(2), loader.calls.Load())
}

func TestCache_InvalidateAndClear(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, testItemsJSON, testCrewJSON, testShipsJSON)

	loader := &countingLoader{inner: newTestLoader(t)}
	cache := NewCache(loader, 4, time.Minute)
	ctx := context.Background()

	_, err := cache.Get(ctx, dir)
	require.NoError(t, err)

	cache.Invalidate(dir)
	assert.Equal(t, 0, cache.Len())

	_, err = cache.Get(ctx, dir)
	require.NoError(t, err)
	cache.Clear()
	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, int32(2), loader.calls.Load())
}

func TestCache_LoadErrorIsNotCached(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, testItemsJSON, testCrewJSON, testShipsJSON)

	boom := errors.New("boom")
	loader := &countingLoader{inner: newTestLoader(t), err: boom}
	cache := NewCache(loader, 4, time.Minute)

	_, err := cache.Get(context.Background(), dir)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_ConcurrentGet(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, testItemsJSON, testCrewJSON, testShipsJSON)

	cache := NewCache(newTestLoader(t), 4, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := cache.Get(context.Background(), dir)
			assert.NoError(t, err)
			assert.NotNil(t, c)
		}()
	}
	wg.Wait()
}
