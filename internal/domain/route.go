package domain

// Engines that can satisfy an optimization call.
const (
	EngineExternal  = "external"
	EngineHeuristic = "heuristic"
)

// RouteStop is one sequenced stop within a vehicle route.
type RouteStop struct {
	StopID             int
	Sequence           int // 1-based position within the route
	DistanceFromPrevKm float64
	MinutesFromPrev    int
	EstimatedArrival   string // "HH:MM" clock time
}

// RouteResult is the ordered delivery plan for a single vehicle.
// It is immutable planning data and contains no side effects.
type RouteResult struct {
	VehicleID       int
	Stops           []RouteStop
	TotalDistanceKm float64
	TotalMinutes    int
	TotalCost       float64
}

// OptimizationOutcome aggregates all vehicle routes produced by one
// optimization call. Exactly one engine's output is ever returned.
type OptimizationOutcome struct {
	Routes          []RouteResult
	TotalDistanceKm float64
	// TotalMinutes is the maximum over routes: the fleet is done when the
	// slowest vehicle is.
	TotalMinutes        int
	TotalCost           float64
	OptimizationSeconds float64
	Engine              string
	GeocodedStops       int
	RequestedStops      int
}
