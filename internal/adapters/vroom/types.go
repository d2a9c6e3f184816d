package vroom

// Wire types for the VROOM optimization API. Only the fields this service
// uses are modeled; a response that does not fit these shapes is treated as
// a decode failure, which the pipeline answers with its heuristic fallback.

type vehicleEntry struct {
	ID         int       `json:"id"`
	Start      []float64 `json:"start"` // [lon, lat]
	End        []float64 `json:"end"`   // [lon, lat]
	Capacity   []int     `json:"capacity"`
	Skills     []int     `json:"skills"`
	TimeWindow []int     `json:"time_window"`
}

type jobEntry struct {
	ID          int       `json:"id"`
	Location    []float64 `json:"location"` // [lon, lat]
	Delivery    []int     `json:"delivery"`
	Service     int       `json:"service"` // seconds
	Skills      []int     `json:"skills"`
	Priority    int       `json:"priority"`
	TimeWindows [][]int   `json:"time_windows,omitempty"` // seconds since midnight
}

type problem struct {
	Vehicles []vehicleEntry `json:"vehicles"`
	Jobs     []jobEntry     `json:"jobs"`
}

type step struct {
	Type string `json:"type"`
	Job  *int   `json:"job,omitempty"`
	// Cumulative values at this step.
	Arrival  int `json:"arrival"`  // seconds since midnight
	Distance int `json:"distance"` // meters
	Duration int `json:"duration"` // travel seconds
}

type routeEntry struct {
	Vehicle  int    `json:"vehicle"`
	Distance int    `json:"distance"` // meters
	Duration int    `json:"duration"` // seconds
	Steps    []step `json:"steps"`
}

type solution struct {
	Error  string       `json:"error,omitempty"`
	Routes []routeEntry `json:"routes"`
}
