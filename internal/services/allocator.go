package services

import (
	"fmt"
	"math"

	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/geo"
	"route-optimization-service/internal/solver"
)

// Default route start clock: vehicles leave the depot at 08:00.
const DefaultDayStartMinutes = 8 * 60

// Allocator partitions a stop set across vehicles and sequences each
// vehicle's block with the built-in tour solver.
//
// Partitioning is a contiguous near-equal split (len(stops)/len(vehicles),
// remainder to the first vehicles in order), not a bin-packing solve. That
// keeps the fallback deterministic and cheap; capacity is still enforced,
// so an overloaded block fails fast and the caller can regroup.
type Allocator struct {
	travel   geo.TravelTimePolicy
	dayStart int // minutes since midnight
}

func NewAllocator(travel geo.TravelTimePolicy, dayStartMinutes int) *Allocator {
	if travel == nil {
		travel = geo.FixedSpeed{Kmh: geo.DefaultSpeedKmh}
	}
	if dayStartMinutes <= 0 {
		dayStartMinutes = DefaultDayStartMinutes
	}
	return &Allocator{travel: travel, dayStart: dayStartMinutes}
}

// Allocate routes all stops through the given vehicles. With one vehicle
// every stop routes through it; with several, stops split into contiguous
// blocks whose sizes differ by at most one.
func (a *Allocator) Allocate(vehicles []domain.Vehicle, stops []*domain.Stop) ([]domain.RouteResult, error) {
	if len(vehicles) == 0 {
		return nil, domain.ErrNoVehicles
	}

	base := len(stops) / len(vehicles)
	rem := len(stops) % len(vehicles)

	results := make([]domain.RouteResult, 0, len(vehicles))

	start := 0
	for i, v := range vehicles {
		size := base
		if i < rem {
			size++
		}

		block := stops[start : start+size]
		start += size

		if len(block) == 0 {
			continue
		}

		route, err := a.routeVehicle(v, block)
		if err != nil {
			return nil, err
		}
		results = append(results, route)
	}

	return results, nil
}

// routeVehicle solves one vehicle's tour and materializes the route with
// running clock times and per-stop service additions.
func (a *Allocator) routeVehicle(v domain.Vehicle, stops []*domain.Stop) (domain.RouteResult, error) {
	var weight, volume float64
	for _, s := range stops {
		weight += s.WeightKg
		volume += s.VolumeM3
	}
	if weight > v.Capacity || volume > v.Capacity {
		demand := weight
		if volume > demand {
			demand = volume
		}
		return domain.RouteResult{}, &domain.CapacityExceededError{
			VehicleID: v.ID,
			Capacity:  v.Capacity,
			Demand:    demand,
		}
	}

	// Node 0 is the depot; node i+1 is stops[i].
	coords := make([]domain.Coordinate, 0, len(stops)+1)
	coords = append(coords, v.Depot)
	ranks := make(map[int]int, len(stops))
	for i, s := range stops {
		if s.Coordinate == nil {
			return domain.RouteResult{}, fmt.Errorf("allocate: vehicle %d: stop %d has no coordinate", v.ID, s.ID)
		}
		coords = append(coords, *s.Coordinate)
		ranks[i+1] = s.Priority
	}

	m, err := geo.BuildMatrix(coords)
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("allocate: vehicle %d: build matrix: %w", v.ID, err)
	}

	tour := solver.Solve(m, 0, solver.PriorityTieBreak(ranks))

	routeStops := make([]domain.RouteStop, 0, len(stops))
	totalKm := 0.0
	totalMinutes := 0
	clock := a.dayStart

	for i := 1; i < len(tour); i++ {
		node := tour[i]
		s := stops[node-1]

		legKm := m.At(tour[i-1], node)
		legMinutes := a.travel.Minutes(legKm)

		clock += legMinutes + s.ServiceMinutes
		totalKm += legKm
		totalMinutes += legMinutes + s.ServiceMinutes

		routeStops = append(routeStops, domain.RouteStop{
			StopID:             s.ID,
			Sequence:           i,
			DistanceFromPrevKm: round2(legKm),
			MinutesFromPrev:    legMinutes,
			EstimatedArrival:   domain.FormatClock(clock),
		})
	}

	// Close the tour back to the depot for total route metrics.
	if len(routeStops) > 0 {
		backKm := m.At(tour[len(tour)-1], 0)
		totalKm += backKm
		totalMinutes += a.travel.Minutes(backKm)
	}

	return domain.RouteResult{
		VehicleID:       v.ID,
		Stops:           routeStops,
		TotalDistanceKm: round2(totalKm),
		TotalMinutes:    totalMinutes,
		TotalCost:       round2(totalKm * v.CostPerKm),
	}, nil
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
