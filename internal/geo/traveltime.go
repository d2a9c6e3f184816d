package geo

import "math"

// Default average road speed in km/h for the fixed-speed policy.
const DefaultSpeedKmh = 50.0

// TravelTimePolicy converts a leg distance into estimated travel minutes.
//
// The conversion is a caller-selected policy rather than a solver constant:
// a fixed average speed suits road distances from an external matrix, while
// a per-kilometer pace with a floor compensates for straight-line distances
// understating real road travel.
type TravelTimePolicy interface {
	Minutes(distanceKm float64) int
}

// FixedSpeed estimates travel time at a constant average speed.
type FixedSpeed struct {
	Kmh float64
}

func (p FixedSpeed) Minutes(distanceKm float64) int {
	kmh := p.Kmh
	if kmh <= 0 {
		kmh = DefaultSpeedKmh
	}
	return int(math.Floor(distanceKm / kmh * 60))
}

// PacePerKm estimates travel time as distance times a fixed per-kilometer
// pace, never below MinMinutes.
type PacePerKm struct {
	MinutesPerKm float64
	MinMinutes   int
}

func (p PacePerKm) Minutes(distanceKm float64) int {
	m := int(math.Floor(distanceKm * p.MinutesPerKm))
	if m < p.MinMinutes {
		m = p.MinMinutes
	}
	return m
}
