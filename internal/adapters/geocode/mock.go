package geocode

import (
	"context"

	"route-optimization-service/internal/domain"
)

// MockGeocoder serves coordinates from a fixed table, keyed by normalized
// address. Calls counts every lookup so tests can assert cache behavior.
type MockGeocoder struct {
	Coords map[string]domain.Coordinate
	Err    error
	Calls  int
}

func (g *MockGeocoder) Geocode(_ context.Context, address string) (domain.Coordinate, bool, error) {
	g.Calls++
	if g.Err != nil {
		return domain.Coordinate{}, false, g.Err
	}

	coord, ok := g.Coords[NormalizeAddress(address)]
	return coord, ok, nil
}
