package domain

// Vehicle describes a delivery vehicle available for routing.
// Vehicles are supplied by the caller per optimization call and are
// read-only to the engine.
type Vehicle struct {
	ID       int
	Name     string
	Capacity float64 // kg or cubic meters, checked against assigned demand
	// MaxDistanceKm is accepted and carried but not yet enforced as a
	// routing constraint; no solver path rejects a route for exceeding it.
	MaxDistanceKm float64
	CostPerKm     float64
	Depot         Coordinate
	DepotAddress  string
	Available     bool
}
