package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"route-optimization-service/internal/api/dto"
	"route-optimization-service/internal/domain"
)

// RouteOptimizer is the inbound boundary of the optimization engine.
type RouteOptimizer interface {
	Optimize(ctx context.Context, vehicles []domain.Vehicle, stops []*domain.Stop) (*domain.OptimizationOutcome, error)
}

type OptimizeHandler struct {
	Optimizer RouteOptimizer
}

// Optimize runs the full pipeline for the fleet and stops in the request
// body and returns the optimization outcome.
func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.Vehicles) == 0 {
		writeError(w, r, http.StatusBadRequest, "at least one vehicle is required")
		return
	}
	if len(req.Stops) == 0 {
		writeError(w, r, http.StatusBadRequest, "at least one stop is required")
		return
	}

	vehicles := make([]domain.Vehicle, 0, len(req.Vehicles))
	for _, v := range req.Vehicles {
		available := true
		if v.Available != nil {
			available = *v.Available
		}
		vehicles = append(vehicles, domain.Vehicle{
			ID:            v.ID,
			Name:          v.Name,
			Capacity:      v.Capacity,
			MaxDistanceKm: v.MaxDistanceKm,
			CostPerKm:     v.CostPerKm,
			Depot:         domain.Coordinate{Lat: v.DepotLat, Lon: v.DepotLon},
			DepotAddress:  v.DepotAddress,
			Available:     available,
		})
	}

	stops := make([]*domain.Stop, 0, len(req.Stops))
	for _, s := range req.Stops {
		stop := &domain.Stop{
			ID:             s.ID,
			Name:           s.Name,
			Address:        s.Address,
			WeightKg:       s.WeightKg,
			VolumeM3:       s.VolumeM3,
			ServiceMinutes: s.ServiceMinutes,
			Priority:       s.Priority,
			WindowStart:    s.WindowStart,
			WindowEnd:      s.WindowEnd,
		}
		if s.Lat != nil && s.Lon != nil {
			stop.Coordinate = &domain.Coordinate{Lat: *s.Lat, Lon: *s.Lon}
		}
		stops = append(stops, stop)
	}

	outcome, err := h.Optimizer.Optimize(r.Context(), vehicles, stops)
	if err != nil {
		writeOptimizeError(w, r, err)
		return
	}

	res := dto.OptimizeResponse{
		Routes:              make([]dto.RouteResponse, 0, len(outcome.Routes)),
		TotalDistanceKm:     outcome.TotalDistanceKm,
		TotalMinutes:        outcome.TotalMinutes,
		TotalCost:           outcome.TotalCost,
		OptimizationSeconds: outcome.OptimizationSeconds,
		Engine:              outcome.Engine,
		GeocodedStops:       outcome.GeocodedStops,
		RequestedStops:      outcome.RequestedStops,
	}
	for _, route := range outcome.Routes {
		stops := make([]dto.RouteStopResponse, 0, len(route.Stops))
		for _, s := range route.Stops {
			stops = append(stops, dto.RouteStopResponse{
				StopID:             s.StopID,
				Sequence:           s.Sequence,
				DistanceFromPrevKm: s.DistanceFromPrevKm,
				MinutesFromPrev:    s.MinutesFromPrev,
				EstimatedArrival:   s.EstimatedArrival,
			})
		}
		res.Routes = append(res.Routes, dto.RouteResponse{
			VehicleID:       route.VehicleID,
			Stops:           stops,
			TotalDistanceKm: route.TotalDistanceKm,
			TotalMinutes:    route.TotalMinutes,
			TotalCost:       route.TotalCost,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// writeOptimizeError maps engine errors onto HTTP statuses with enough
// context (error kind, offending identifier) for the caller to retry with
// adjusted input.
func writeOptimizeError(w http.ResponseWriter, r *http.Request, err error) {
	var capErr *domain.CapacityExceededError

	switch {
	case errors.Is(err, domain.ErrNoGeocodableStops):
		writeError(w, r, http.StatusUnprocessableEntity, "no stops could be geocoded")
	case errors.As(err, &capErr):
		writeJSON(w, r, http.StatusUnprocessableEntity, map[string]any{
			"error":      "capacity exceeded",
			"vehicle_id": capErr.VehicleID,
			"detail":     fmt.Sprintf("demand %.2f exceeds capacity %.2f", capErr.Demand, capErr.Capacity),
		})
	case errors.Is(err, domain.ErrNoVehicles):
		writeError(w, r, http.StatusBadRequest, "no available vehicles")
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		writeError(w, r, http.StatusGatewayTimeout, "optimization deadline exceeded")
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("optimize failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
