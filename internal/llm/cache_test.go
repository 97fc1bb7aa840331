package llm

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKeyStable(t *testing.T) {
	obj := map[string]any{
		"prompt_version":  "v1",
		"model":           "gemini-2.5-flash",
		"decision_packet": map[string]any{"b": 2, "a": 1},
	}

	first, err := cacheKey(obj)
	require.NoError(t, err)
	second, err := cacheKey(obj)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestCacheKeyDiffersByContent(t *testing.T) {
	first, err := cacheKey(map[string]any{"decision_packet": map[string]any{"a": 1}})
	require.NoError(t, err)
	second, err := cacheKey(map[string]any{"decision_packet": map[string]any{"a": 2}})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestCacheGetSet(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "cache", "llm_cache.json"))

	keyObj := map[string]any{"model": "m", "decision_packet": map[string]any{"x": "y"}}

	_, ok := cache.Get(keyObj)
	assert.False(t, ok)

	memo := map[string]any{"decision": "APPROVE", "summary": "ok"}
	require.NoError(t, cache.Set(keyObj, memo))

	got, ok := cache.Get(keyObj)
	require.True(t, ok)
	assert.Equal(t, memo, got)

	// A different key object misses.
	_, ok = cache.Get(map[string]any{"model": "m", "decision_packet": map[string]any{"x": "z"}})
	assert.False(t, ok)
}

func TestCachePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "llm_cache.json")
	keyObj := map[string]any{"model": "m"}

	require.NoError(t, NewCache(path).Set(keyObj, map[string]any{"decision": "REJECT"}))

	got, ok := NewCache(path).Get(keyObj)
	require.True(t, ok)
	assert.Equal(t, "REJECT", got["decision"])
}

func TestCacheMissingFileReadsEmpty(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "does-not-exist.json"))
	_, ok := cache.Get(map[string]any{"model": "m"})
	assert.False(t, ok)
}
