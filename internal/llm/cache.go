package llm

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/types"
)

// Cache is a file-backed response cache for synthesis calls. Identical
// cache-key objects always map to the same entry, so repeated calls with
// identical input return identical cached output.
//
// The cache is not safe for multiple simultaneous writers; one run at a
// time is the supported mode.
type Cache struct {
	path string
}

// NewCache creates a cache persisted at the given file path.
func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// cacheKey derives a stable hex key from any JSON-serializable object.
// encoding/json sorts map keys, so equal maps produce equal keys.
func cacheKey(obj any) (string, error) {
	payload, err := json.Marshal(obj)
	if err != nil {
		return "", types.WrapError(types.CACHE_READ_FAILED, "cache key not serializable", err)
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

// load reads the whole cache file. A missing or corrupt file reads as an
// empty cache rather than an error.
func (c *Cache) load() map[string]map[string]any {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return map[string]map[string]any{}
	}

	var cache map[string]map[string]any
	if err := json.Unmarshal(data, &cache); err != nil || cache == nil {
		return map[string]map[string]any{}
	}
	return cache
}

// Get returns the cached response for a cache-key object, if present.
func (c *Cache) Get(keyObj any) (map[string]any, bool) {
	key, err := cacheKey(keyObj)
	if err != nil {
		return nil, false
	}

	resp, ok := c.load()[key]
	return resp, ok
}

// Set stores a response under a cache-key object, creating the cache
// directory as needed.
func (c *Cache) Set(keyObj any, response map[string]any) error {
	key, err := cacheKey(keyObj)
	if err != nil {
		return err
	}

	cache := c.load()
	cache[key] = response

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return types.WrapError(types.CACHE_WRITE_FAILED, "cache not serializable", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return types.WrapError(types.CACHE_WRITE_FAILED, "failed to create cache directory", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return types.WrapError(types.CACHE_WRITE_FAILED, "failed to write cache file", err)
	}
	return nil
}
