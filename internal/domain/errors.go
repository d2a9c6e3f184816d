package domain

import (
	"errors"
	"fmt"
)

// ErrNoGeocodableStops means no stop in the request could be resolved to a
// coordinate. Fatal to the optimization call; not retried.
var ErrNoGeocodableStops = errors.New("no stops could be geocoded")

// ErrNoVehicles means no available vehicle was supplied.
var ErrNoVehicles = errors.New("no available vehicles")

// CapacityExceededError reports that the aggregate demand assigned to a
// vehicle exceeds its capacity. The caller may retry with adjusted grouping.
type CapacityExceededError struct {
	VehicleID int
	Capacity  float64
	Demand    float64
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf(
		"vehicle %d capacity exceeded: demand=%.2f capacity=%.2f",
		e.VehicleID, e.Demand, e.Capacity,
	)
}
