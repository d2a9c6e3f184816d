package ports

import (
	"context"

	"route-optimization-service/internal/domain"
)

// ExternalSolver submits a fleet + stop problem to an out-of-process
// optimization backend and decodes its solution.
//
// Failures are expected: they trigger the built-in heuristic fallback and
// are never fatal to the optimization call.
type ExternalSolver interface {
	Solve(ctx context.Context, vehicles []domain.Vehicle, stops []*domain.Stop) ([]domain.RouteResult, error)
}
