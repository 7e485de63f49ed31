package repositories

import (
	"context"
	"strings"
	"sync"
	"time"

	"weather-forecast/internal/models"
	"weather-forecast/pkg/logger"
)

// CachedGeocoder wraps a Geocoder and caches candidate lists by normalized name.
// Failures are never cached; empty results are.
type CachedGeocoder struct {
	source         Geocoder
	cache          map[string]cacheEntry
	mutex          sync.RWMutex
	cacheDuration  time.Duration
	cacheHitCount  int
	cacheMissCount int
	now            func() time.Time
	l              *logger.Logger
}

type cacheEntry struct {
	Locations []models.Location
	Timestamp time.Time
}

func NewCachedGeocoder(source Geocoder, cacheDuration time.Duration, l *logger.Logger) *CachedGeocoder {
	return &CachedGeocoder{
		source:        source,
		cache:         make(map[string]cacheEntry),
		cacheDuration: cacheDuration,
		now:           time.Now,
		l:             l,
	}
}

func (c *CachedGeocoder) Name() string {
	return c.source.Name() + " [Cached]"
}

func (c *CachedGeocoder) Search(ctx context.Context, name string) ([]models.Location, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	c.mutex.RLock()
	entry, found := c.cache[key]
	c.mutex.RUnlock()

	if found && c.now().Sub(entry.Timestamp) < c.cacheDuration {
		c.mutex.Lock()
		c.cacheHitCount++
		c.mutex.Unlock()

		c.l.Debug("geocoding cache hit", map[string]any{
			"name": name,
			"age":  c.now().Sub(entry.Timestamp).Round(time.Second).String(),
		})

		return cloneLocations(entry.Locations), nil
	}

	c.mutex.Lock()
	c.cacheMissCount++
	c.mutex.Unlock()

	locations, err := c.source.Search(ctx, name)
	if err != nil {
		return nil, err
	}

	c.mutex.Lock()
	c.evictExpiredLocked()
	c.cache[key] = cacheEntry{
		Locations: cloneLocations(locations),
		Timestamp: c.now(),
	}
	c.mutex.Unlock()

	return locations, nil
}

// CacheStats returns statistics about cache hits and misses
func (c *CachedGeocoder) CacheStats() (hits, misses int) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.cacheHitCount, c.cacheMissCount
}

func (c *CachedGeocoder) evictExpiredLocked() {
	for k, e := range c.cache {
		if c.now().Sub(e.Timestamp) >= c.cacheDuration {
			delete(c.cache, k)
		}
	}
}

func cloneLocations(in []models.Location) []models.Location {
	out := make([]models.Location, len(in))
	copy(out, in)
	return out
}

var _ Geocoder = (*CachedGeocoder)(nil)
