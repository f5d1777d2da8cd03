package hqlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg.CRUD)
	require.NotNil(t, cfg.Discovery)
	require.NotNil(t, cfg.Intelligence)
	require.NotNil(t, cfg.Pathfinding)
	require.NotNil(t, cfg.Analytics)

	assert.True(t, cfg.CRUD.Create)
	assert.True(t, cfg.CRUD.Upsert)
	assert.True(t, cfg.CRUD.GetByID)
	assert.True(t, cfg.CRUD.GetByUnique)
	assert.True(t, cfg.CRUD.GetAll)
	assert.True(t, cfg.CRUD.Delete)
	assert.True(t, cfg.CRUD.Connect)
	assert.True(t, cfg.CRUD.UpsertEdge)
	assert.True(t, cfg.CRUD.Traversal)
	assert.True(t, cfg.Discovery.VectorSearch)
	assert.True(t, cfg.Discovery.HybridSearch)
	assert.True(t, cfg.Discovery.KeywordSearch)
	assert.True(t, cfg.Discovery.AddVector)
	assert.True(t, cfg.Discovery.UpsertVector)
	assert.True(t, cfg.Discovery.MultiHop)
	assert.True(t, cfg.Discovery.Mutual)
	assert.True(t, cfg.Intelligence.RichDetail)
	assert.True(t, cfg.Pathfinding.Shortest)
	assert.True(t, cfg.Analytics.Count)
	assert.True(t, cfg.Analytics.Sum)
	assert.True(t, cfg.Analytics.Avg)
	assert.True(t, cfg.Analytics.Min)
	assert.True(t, cfg.Analytics.Max)
	assert.True(t, cfg.Analytics.GroupBy)

	// Opt-in toggles.
	assert.False(t, cfg.CRUD.ProControl)
	assert.False(t, cfg.Discovery.Prefilter)
	assert.False(t, cfg.Pathfinding.Weighted)
}

func TestConfigWithDefaults(t *testing.T) {
	t.Run("nil categories fall back", func(t *testing.T) {
		merged := Config{}.withDefaults()
		assert.Equal(t, DefaultConfig(), merged)
	})

	t.Run("set categories are taken as-is", func(t *testing.T) {
		merged := Config{CRUD: &CRUDConfig{Create: true}}.withDefaults()
		assert.True(t, merged.CRUD.Create)
		assert.False(t, merged.CRUD.Delete, "explicit category must not gain defaults")
		assert.Equal(t, DefaultConfig().Discovery, merged.Discovery)
	})
}
