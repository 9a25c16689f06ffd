package utils

import (
	"os"
	"sync"
	"time"
)

// cacheEntry is a cached value plus the file metadata it was derived from
type cacheEntry[V any] struct {
	value   V
	modTime time.Time
	size    int64
}

// Cache maps keys to values derived from files; an entry goes stale once
// its backing file changes size or modification time.
type Cache[K comparable, V any] struct {
	items map[K]*cacheEntry[V]
	mutex sync.RWMutex
}

// NewCache creates a new generic cache
func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		items: make(map[K]*cacheEntry[V]),
	}
}

// Get retrieves an item without checking its backing file
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if item, exists := c.items[key]; exists {
		return item.value, true
	}

	var zero V
	return zero, false
}

// GetFresh retrieves an item if filePath still matches the metadata recorded by SetFromFile.
// Stale entries are evicted.
func (c *Cache[K, V]) GetFresh(key K, filePath string) (V, bool) {
	c.mutex.RLock()
	item, exists := c.items[key]
	c.mutex.RUnlock()

	var zero V
	if !exists {
		return zero, false
	}

	if stat, err := os.Stat(filePath); err == nil {
		if stat.ModTime().Equal(item.modTime) && stat.Size() == item.size {
			return item.value, true
		}
	}

	c.Delete(key)
	return zero, false
}

// SetFromFile stores an item along with the current metadata of filePath
func (c *Cache[K, V]) SetFromFile(key K, value V, filePath string) error {
	stat, err := os.Stat(filePath)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items[key] = &cacheEntry[V]{
		value:   value,
		modTime: stat.ModTime(),
		size:    stat.Size(),
	}
	return nil
}

// Delete removes an item from the cache
func (c *Cache[K, V]) Delete(key K) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.items, key)
}

// Clear removes all items from the cache
func (c *Cache[K, V]) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items = make(map[K]*cacheEntry[V])
}

// Size returns the number of items in the cache
func (c *Cache[K, V]) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.items)
}
