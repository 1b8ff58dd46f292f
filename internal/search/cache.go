package search

import (
	"sync"

	"github.com/mxmdgames/surfcast/internal/models"
)

// Cache maps raw query strings to previously resolved results. Entries are
// inserted whole and never evicted within a session; the catalog and the
// geocoder are effectively static for the lifetime of a run.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]models.SearchResult
}

// NewCache creates an empty search cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string][]models.SearchResult),
	}
}

// Get returns the cached results for a query, if any.
func (c *Cache) Get(query string) ([]models.SearchResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	results, ok := c.entries[query]
	return results, ok
}

// Put stores the results for a query. An empty (but successful) result set
// is cached too.
func (c *Cache) Put(query string, results []models.SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[query] = results
}

// Len returns the number of cached queries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
