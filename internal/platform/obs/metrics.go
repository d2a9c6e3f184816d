package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// Optimizations counts optimization calls by satisfying engine and status.
	Optimizations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "optimizations_total", Help: "Optimization calls by engine and status."},
		[]string{"engine", "status"},
	)
	// OptimizationDuration records end-to-end optimization durations in seconds.
	OptimizationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "optimization_duration_seconds",
			Help:    "End-to-end optimization duration in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)
	// SolverFallbacks counts external-solver failures that fell back to the heuristic.
	SolverFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "external_solver_fallbacks_total", Help: "External solver failures handled by the heuristic fallback."},
	)
	// GeocodeLookups counts address resolutions by result (hit, miss, failed).
	GeocodeLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "geocode_lookups_total", Help: "Address resolutions by cache/lookup result."},
		[]string{"result"},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on the service registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(Optimizations)
		Registry.MustRegister(OptimizationDuration)
		Registry.MustRegister(SolverFallbacks)
		Registry.MustRegister(GeocodeLookups)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
