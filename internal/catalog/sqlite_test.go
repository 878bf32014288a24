package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-scales-server/internal/domain"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_SeedsBuiltinCatalog(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	scales, err := store.ListScales(ctx)
	require.NoError(t, err)
	assert.Len(t, scales, len(seedScales()))

	scale, err := store.FindScaleByCode(ctx, "prevent")
	require.NoError(t, err)
	require.NotNil(t, scale)
	assert.Len(t, scale.RequiredVariables, 10)
	assert.Equal(t, "PREVENT 10-Year CVD Risk", scale.Name.Get(domain.LanguageEN))

	variable, err := store.FindVariableByName(ctx, "systolic_bp")
	require.NoError(t, err)
	require.NotNil(t, variable)
	assert.Equal(t, "mmHg", variable.StandardUnit)
	assert.True(t, variable.AllowsUnit("kPa"))
}

func TestSQLiteStore_MissReturnsNil(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	scale, err := store.FindScaleByCode(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, scale)

	variable, err := store.FindVariableByName(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, variable)
}

func TestSQLiteStore_Upsert(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	custom := &domain.ScaleDefinition{
		CodeName:          "custom_scale",
		Name:              domain.LocalizedText{domain.LanguageEN: "Custom Scale"},
		RequiredVariables: []string{"age"},
	}
	require.NoError(t, store.UpsertScale(ctx, custom))

	got, err := store.FindScaleByCode(ctx, "custom_scale")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Custom Scale", got.Name.Get(domain.LanguageEN))

	custom.Description = "updated"
	require.NoError(t, store.UpsertScale(ctx, custom))

	got, err = store.FindScaleByCode(ctx, "custom_scale")
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Description)
}

func TestCachedStore_ServesFromLRU(t *testing.T) {
	inner := NewMemoryStore()
	cached, err := NewCachedStore(inner, domain.CacheConfig{MaxEntries: 16}, testLogger())
	require.NoError(t, err)
	defer cached.Close()

	ctx := context.Background()
	first, err := cached.FindScaleByCode(ctx, "meld")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := cached.FindScaleByCode(ctx, "meld")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Misses are cached too
	miss, err := cached.FindScaleByCode(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, miss)
}
