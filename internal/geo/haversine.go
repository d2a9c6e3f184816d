// Package geo provides great-circle distance and travel-time estimation
// for the heuristic route solver.
package geo

import (
	"math"

	"route-optimization-service/internal/domain"
)

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371.0

// Distance returns the great-circle distance between two coordinates in
// kilometers using the haversine formula. It is symmetric and has no side
// effects; the only failure mode is a malformed coordinate.
func Distance(a, b domain.Coordinate) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c, nil
}
