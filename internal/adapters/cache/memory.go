package cache

import (
	"context"
	"sync"

	"route-optimization-service/internal/domain"
)

// Memory is an in-memory geocode cache guarded by a read-write mutex.
//
// It is explicitly constructed and injected (per-process or per-call, the
// caller's choice) rather than living as package-level state. Entries are
// never evicted; staleness is acceptable for geographic coordinates.
type Memory struct {
	mu sync.RWMutex
	m  map[string]domain.Coordinate
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]domain.Coordinate)}
}

func (c *Memory) Get(_ context.Context, key string) (domain.Coordinate, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	coord, ok := c.m[key]
	return coord, ok, nil
}

func (c *Memory) Put(_ context.Context, key string, coord domain.Coordinate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.m[key] = coord
	return nil
}

// Len returns the number of cached addresses.
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
