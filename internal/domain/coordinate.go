package domain

import (
	"fmt"
	"math"
)

// Geographic coordinate in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// InvalidCoordinateError reports a malformed latitude/longitude pair.
type InvalidCoordinateError struct {
	Lat float64
	Lon float64
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate: lat=%v lon=%v", e.Lat, e.Lon)
}

// Validate checks the coordinate against standard WGS84 ranges.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) ||
		c.Lat < -90 || c.Lat > 90 ||
		c.Lon < -180 || c.Lon > 180 {
		return &InvalidCoordinateError{Lat: c.Lat, Lon: c.Lon}
	}
	return nil
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinate) LonLat() []float64 { return []float64{c.Lon, c.Lat} }
