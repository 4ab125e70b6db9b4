package cache_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epochlab/protopatch/core/cache"
	"github.com/epochlab/protopatch/core/models"
)

func tempBinding(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foo_pb2.py")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func record(path string) *models.RewriteRecord {
	return &models.RewriteRecord{Path: path, Changed: true, FixedAt: time.Now()}
}

func TestValidateAndGet_MissWhenEmpty(t *testing.T) {
	t.Parallel()

	fc := cache.NewFileCache(cache.DefaultCacheConfig())

	_, ok := fc.ValidateAndGet("/nonexistent/foo_pb2.py")
	assert.False(t, ok)

	metrics := fc.GetMetrics()
	assert.Equal(t, int64(1), metrics.Misses)
}

func TestValidateAndGet_HitOnUnchangedFile(t *testing.T) {
	t.Parallel()

	path := tempBinding(t, "from . import bar_pb2 as bar__pb2\n")
	fc := cache.NewFileCache(cache.DefaultCacheConfig())
	require.NoError(t, fc.Set(path, record(path)))

	got, ok := fc.ValidateAndGet(path)
	require.True(t, ok)
	assert.Equal(t, path, got.Path)
	assert.True(t, got.Changed)
}

func TestValidateAndGet_MissAfterModification(t *testing.T) {
	t.Parallel()

	path := tempBinding(t, "from . import bar_pb2 as bar__pb2\n")
	fc := cache.NewFileCache(cache.DefaultCacheConfig())
	require.NoError(t, fc.Set(path, record(path)))

	require.NoError(t, os.WriteFile(path, []byte("import baz_pb2 as baz__pb2\n"), 0644))

	_, ok := fc.ValidateAndGet(path)
	assert.False(t, ok, "modified file must invalidate the entry")

	_, ok = fc.ValidateAndGet(path)
	assert.False(t, ok, "entry stays invalidated until re-set")
}

func TestValidateAndGet_MissAfterDeletion(t *testing.T) {
	t.Parallel()

	path := tempBinding(t, "x = 1\n")
	fc := cache.NewFileCache(cache.DefaultCacheConfig())
	require.NoError(t, fc.Set(path, record(path)))

	require.NoError(t, os.Remove(path))

	_, ok := fc.ValidateAndGet(path)
	assert.False(t, ok)
}

func TestSet_EvictsWhenFull(t *testing.T) {
	t.Parallel()

	first := tempBinding(t, "a = 1\n")
	second := tempBinding(t, "b = 2\n")

	fc := cache.NewFileCache(&cache.CacheConfig{MaxEntries: 1, DefaultTTL: time.Minute})
	require.NoError(t, fc.Set(first, record(first)))
	require.NoError(t, fc.Set(second, record(second)))

	assert.Equal(t, 1, fc.GetMetrics().TotalEntries)
}

func TestClear(t *testing.T) {
	t.Parallel()

	path := tempBinding(t, "x = 1\n")
	fc := cache.NewFileCache(cache.DefaultCacheConfig())
	require.NoError(t, fc.Set(path, record(path)))

	fc.Clear()

	_, ok := fc.ValidateAndGet(path)
	assert.False(t, ok)
	assert.Equal(t, 0, fc.GetMetrics().TotalEntries)
}
