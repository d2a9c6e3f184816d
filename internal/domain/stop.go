package domain

// Stop is a single delivery destination to be sequenced into a route.
//
// Coordinate is nil until the stop has been geocoded. The optimizer records
// the resolved coordinate on the in-memory copy so a stop supplied with
// coordinates (or resolved once) is never geocoded again within the call.
type Stop struct {
	ID             int
	Name           string
	Address        string
	Coordinate     *Coordinate
	WeightKg       float64
	VolumeM3       float64
	ServiceMinutes int
	Priority       int    // lower = more urgent
	WindowStart    string // "HH:MM", optional delivery window start
	WindowEnd      string // "HH:MM", optional delivery window end
}
