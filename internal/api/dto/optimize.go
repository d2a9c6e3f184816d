package dto

type VehicleRequest struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Capacity      float64 `json:"capacity"`
	MaxDistanceKm float64 `json:"max_distance_km"`
	CostPerKm     float64 `json:"cost_per_km"`
	DepotLat      float64 `json:"depot_lat"`
	DepotLon      float64 `json:"depot_lon"`
	DepotAddress  string  `json:"depot_address"`
	// Defaults to true when omitted.
	Available *bool `json:"available"`
}

type StopRequest struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Lat            *float64 `json:"lat"`
	Lon            *float64 `json:"lon"`
	WeightKg       float64  `json:"weight_kg"`
	VolumeM3       float64  `json:"volume_m3"`
	ServiceMinutes int      `json:"service_minutes"`
	Priority       int      `json:"priority"`
	WindowStart    string   `json:"window_start"`
	WindowEnd      string   `json:"window_end"`
}

type OptimizeRequest struct {
	Vehicles []VehicleRequest `json:"vehicles"`
	Stops    []StopRequest    `json:"stops"`
}

type RouteStopResponse struct {
	StopID             int     `json:"stop_id"`
	Sequence           int     `json:"sequence"`
	DistanceFromPrevKm float64 `json:"distance_from_prev_km"`
	MinutesFromPrev    int     `json:"minutes_from_prev"`
	EstimatedArrival   string  `json:"estimated_arrival"`
}

type RouteResponse struct {
	VehicleID       int                 `json:"vehicle_id"`
	Stops           []RouteStopResponse `json:"stops"`
	TotalDistanceKm float64             `json:"total_distance_km"`
	TotalMinutes    int                 `json:"total_minutes"`
	TotalCost       float64             `json:"total_cost"`
}

type OptimizeResponse struct {
	Routes              []RouteResponse `json:"routes"`
	TotalDistanceKm     float64         `json:"total_distance_km"`
	TotalMinutes        int             `json:"total_minutes"`
	TotalCost           float64         `json:"total_cost"`
	OptimizationSeconds float64         `json:"optimization_seconds"`
	Engine              string          `json:"engine"`
	GeocodedStops       int             `json:"geocoded_stops"`
	RequestedStops      int             `json:"requested_stops"`
}
