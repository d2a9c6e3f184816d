// Package vroom bridges the optimizer to a VROOM solver instance over its
// request/response HTTP API.
package vroom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/platform/obs"
)

// DefaultTimeout bounds a single solve request. On timeout the solve is
// treated as failed, never retried; the pipeline proceeds to its fallback.
const DefaultTimeout = 60 * time.Second

// Working-hours window applied to every vehicle, minutes since midnight.
var workingHours = []int{8 * 60, 17 * 60}

// Client encodes fleet + stop problems into VROOM's job format, submits
// them, and decodes solutions back into route results.
type Client struct {
	session *http.Client
	baseURL string
	log     zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		session: &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

// Solve runs one encode/submit/decode round trip. Exactly one request is in
// flight per call; any failure is reported to the caller, which treats it
// as a signal to fall back rather than abort.
func (c *Client) Solve(ctx context.Context, vehicles []domain.Vehicle, stops []*domain.Stop) (_ []domain.RouteResult, err error) {
	defer obs.Time(ctx, "vroom.Solve")(&err)

	prob, err := encodeProblem(vehicles, stops)
	if err != nil {
		return nil, fmt.Errorf("vroom: encode problem: %w", err)
	}

	payload, err := json.Marshal(prob)
	if err != nil {
		return nil, fmt.Errorf("vroom: marshal problem: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("vroom: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vroom: submit problem: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("vroom: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var sol solution
	if err := json.NewDecoder(resp.Body).Decode(&sol); err != nil {
		return nil, fmt.Errorf("vroom: decode solution: %w", err)
	}
	if sol.Error != "" {
		return nil, fmt.Errorf("vroom: solver error: %s", sol.Error)
	}
	if len(sol.Routes) == 0 {
		return nil, fmt.Errorf("vroom: solution contains no routes")
	}

	return c.decodeSolution(sol, vehicles, stops), nil
}

func encodeProblem(vehicles []domain.Vehicle, stops []*domain.Stop) (problem, error) {
	prob := problem{
		Vehicles: make([]vehicleEntry, 0, len(vehicles)),
		Jobs:     make([]jobEntry, 0, len(stops)),
	}

	for _, v := range vehicles {
		if err := v.Depot.Validate(); err != nil {
			return problem{}, fmt.Errorf("vehicle %d depot: %w", v.ID, err)
		}

		depot := v.Depot.LonLat()
		prob.Vehicles = append(prob.Vehicles, vehicleEntry{
			ID:         v.ID,
			Start:      depot,
			End:        depot,
			Capacity:   []int{int(v.Capacity)},
			Skills:     []int{1},
			TimeWindow: workingHours,
		})
	}

	for _, s := range stops {
		if s.Coordinate == nil {
			return problem{}, fmt.Errorf("stop %d has no coordinate", s.ID)
		}

		entry := jobEntry{
			ID:       s.ID,
			Location: s.Coordinate.LonLat(),
			Delivery: []int{int(s.WeightKg)},
			Service:  s.ServiceMinutes * 60,
			Skills:   []int{1},
			Priority: s.Priority,
		}

		if s.WindowStart != "" && s.WindowEnd != "" {
			start, err := domain.ParseClock(s.WindowStart)
			if err != nil {
				return problem{}, fmt.Errorf("stop %d: %w", s.ID, err)
			}
			end, err := domain.ParseClock(s.WindowEnd)
			if err != nil {
				return problem{}, fmt.Errorf("stop %d: %w", s.ID, err)
			}
			entry.TimeWindows = [][]int{{start * 60, end * 60}}
		}

		prob.Jobs = append(prob.Jobs, entry)
	}

	return prob, nil
}

// decodeSolution maps solver routes back onto the original fleet. Steps
// referencing unknown vehicle or stop identifiers are skipped rather than
// failing the whole decode.
func (c *Client) decodeSolution(sol solution, vehicles []domain.Vehicle, stops []*domain.Stop) []domain.RouteResult {
	vehByID := make(map[int]domain.Vehicle, len(vehicles))
	for _, v := range vehicles {
		vehByID[v.ID] = v
	}
	stopByID := make(map[int]*domain.Stop, len(stops))
	for _, s := range stops {
		stopByID[s.ID] = s
	}

	results := make([]domain.RouteResult, 0, len(sol.Routes))

	for _, route := range sol.Routes {
		veh, ok := vehByID[route.Vehicle]
		if !ok {
			c.log.Warn().Int("vehicle_id", route.Vehicle).Msg("solution references unknown vehicle; route skipped")
			continue
		}

		routeStops := make([]domain.RouteStop, 0, len(route.Steps))
		prevMeters, prevSeconds := 0, 0

		for _, st := range route.Steps {
			if st.Type != "job" || st.Job == nil {
				prevMeters, prevSeconds = st.Distance, st.Duration
				continue
			}
			if _, ok := stopByID[*st.Job]; !ok {
				c.log.Warn().Int("job_id", *st.Job).Msg("solution references unknown stop; step skipped")
				continue
			}

			routeStops = append(routeStops, domain.RouteStop{
				StopID:             *st.Job,
				Sequence:           len(routeStops) + 1,
				DistanceFromPrevKm: round2(float64(st.Distance-prevMeters) / 1000),
				MinutesFromPrev:    (st.Duration - prevSeconds) / 60,
				EstimatedArrival:   domain.FormatClock(st.Arrival / 60),
			})
			prevMeters, prevSeconds = st.Distance, st.Duration
		}

		routeKm := float64(route.Distance) / 1000
		results = append(results, domain.RouteResult{
			VehicleID:       route.Vehicle,
			Stops:           routeStops,
			TotalDistanceKm: round2(routeKm),
			TotalMinutes:    route.Duration / 60,
			TotalCost:       round2(routeKm * veh.CostPerKm),
		})
	}

	return results
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
