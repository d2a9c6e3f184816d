package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/platform/obs"
	"route-optimization-service/internal/ports"
)

// StopResolver resolves stop addresses in place and reports how many stops
// ended up with usable coordinates.
type StopResolver interface {
	ResolveStops(ctx context.Context, stops []*domain.Stop) int
}

// Optimizer runs the optimization pipeline: coordinate resolution, an
// external solve attempt, and the built-in heuristic fallback.
//
// The pipeline never merges partial external results with fallback results
// for the same call: exactly one engine's routes make it into the outcome.
type Optimizer struct {
	resolver  StopResolver
	external  ports.ExternalSolver // nil disables the external attempt
	allocator *Allocator
	log       zerolog.Logger
}

func NewOptimizer(resolver StopResolver, external ports.ExternalSolver, allocator *Allocator, log zerolog.Logger) *Optimizer {
	return &Optimizer{
		resolver:  resolver,
		external:  external,
		allocator: allocator,
		log:       log,
	}
}

// Optimize assigns stops to vehicles and sequences each vehicle's stops.
//
// Per-stop resolution failures are absorbed and counted; the call fails
// only when nothing is geocodable, no vehicle is available, the caller's
// deadline expires, or the heuristic allocator rejects the partition
// (capacity). External solver failures fall back silently.
func (o *Optimizer) Optimize(ctx context.Context, vehicles []domain.Vehicle, stops []*domain.Stop) (*domain.OptimizationOutcome, error) {
	start := time.Now()

	available := make([]domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Available {
			available = append(available, v)
		}
	}
	if len(available) == 0 {
		obs.Optimizations.WithLabelValues("none", "error").Inc()
		return nil, domain.ErrNoVehicles
	}

	resolved := o.resolver.ResolveStops(ctx, stops)
	if resolved == 0 {
		obs.Optimizations.WithLabelValues("none", "error").Inc()
		return nil, domain.ErrNoGeocodableStops
	}

	routable := make([]*domain.Stop, 0, resolved)
	for _, s := range stops {
		if s.Coordinate != nil && s.Coordinate.Validate() == nil {
			routable = append(routable, s)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var routes []domain.RouteResult
	engine := domain.EngineHeuristic

	if o.external != nil {
		ext, err := o.external.Solve(ctx, available, routable)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			obs.SolverFallbacks.Inc()
			o.log.Warn().Err(err).Msg("external solver failed; falling back to heuristic")
		} else {
			routes = ext
			engine = domain.EngineExternal
		}
	}

	if engine == domain.EngineHeuristic {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var err error
		routes, err = o.allocator.Allocate(available, routable)
		if err != nil {
			obs.Optimizations.WithLabelValues(engine, "error").Inc()
			return nil, fmt.Errorf("optimize: %w", err)
		}
	}

	outcome := &domain.OptimizationOutcome{
		Routes:         routes,
		Engine:         engine,
		GeocodedStops:  resolved,
		RequestedStops: len(stops),
	}
	for _, r := range routes {
		outcome.TotalDistanceKm += r.TotalDistanceKm
		outcome.TotalCost += r.TotalCost
		if r.TotalMinutes > outcome.TotalMinutes {
			outcome.TotalMinutes = r.TotalMinutes
		}
	}
	outcome.TotalDistanceKm = round2(outcome.TotalDistanceKm)
	outcome.TotalCost = round2(outcome.TotalCost)

	elapsed := time.Since(start).Seconds()
	outcome.OptimizationSeconds = math.Round(elapsed*1000) / 1000

	obs.Optimizations.WithLabelValues(engine, "ok").Inc()
	obs.OptimizationDuration.Observe(elapsed)

	o.log.Info().
		Str("engine", engine).
		Int("routes", len(routes)).
		Int("geocoded", resolved).
		Int("requested", len(stops)).
		Float64("total_km", outcome.TotalDistanceKm).
		Msg("optimization done")

	return outcome, nil
}
