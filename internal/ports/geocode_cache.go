package ports

import (
	"context"

	"route-optimization-service/internal/domain"
)

// GeocodeCache stores resolved coordinates keyed by a normalized address.
//
// Implementations must support concurrent readers with serialized writes.
// Stale entries are acceptable: a cached coordinate is never invalidated.
type GeocodeCache interface {
	Get(ctx context.Context, key string) (domain.Coordinate, bool, error)
	Put(ctx context.Context, key string, coord domain.Coordinate) error
}
