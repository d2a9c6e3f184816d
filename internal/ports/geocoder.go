package ports

import (
	"context"

	"route-optimization-service/internal/domain"
)

// Geocoder resolves a free-form address to a geographic coordinate.
//
// Implementations must not treat "address not found" as an error: they
// return ok=false so callers can skip the stop rather than abort the
// optimization. Lookups must be idempotent and safely retryable.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (coord domain.Coordinate, ok bool, err error)
}
