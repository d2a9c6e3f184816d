package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"route-optimization-service/internal/adapters/cache"
	"route-optimization-service/internal/adapters/geocode"
	"route-optimization-service/internal/adapters/vroom"
	"route-optimization-service/internal/api"
	"route-optimization-service/internal/config"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/geo"
	"route-optimization-service/internal/platform/db"
	"route-optimization-service/internal/platform/obs"
	"route-optimization-service/internal/ports"
	"route-optimization-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, VROOM, the selected geocode cache)
// behind ports and starts the HTTP server.
func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	cfg := config.Load()
	obs.RegisterDefault()

	geocodeCache, closeCache, err := buildGeocodeCache(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("geocode cache init failed")
	}
	defer closeCache()

	geocoder := geocode.NewNominatimGeocoder(cfg.NominatimURL, cfg.NominatimUserAgent, cfg.GeocodeRatePerSec)
	resolver := geocode.NewResolver(geocodeCache, geocoder, log)

	// An unset VROOM_URL disables the external solver entirely; every call
	// is then answered by the built-in heuristic.
	var external ports.ExternalSolver
	if cfg.VroomURL != "" {
		external = vroom.NewClient(cfg.VroomURL, cfg.VroomTimeout, log)
	} else {
		log.Warn().Msg("VROOM_URL not set; running with heuristic solver only")
	}

	dayStart, err := domain.ParseClock(cfg.DayStart)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid DAY_START")
	}

	allocator := services.NewAllocator(geo.FixedSpeed{Kmh: cfg.AvgSpeedKmh}, dayStart)
	optimizer := services.NewOptimizer(resolver, external, allocator, log)

	router := api.NewRouter(optimizer, log)

	// Write timeout is generous: a cold-cache optimization geocodes every
	// stop at one request per second before it can even start solving.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      300 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info().Str("addr", srv.Addr).Msg("server listening")
	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}

func buildGeocodeCache(cfg config.Config, log zerolog.Logger) (ports.GeocodeCache, func(), error) {
	switch {
	case cfg.RedisAddr != "":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis geocode cache")
		return cache.NewRedis(client, cfg.GeocodeCacheTTL), func() { client.Close() }, nil

	case cfg.DatabaseURL != "":
		sqlDB, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := cache.InitSchema(context.Background(), sqlDB); err != nil {
			sqlDB.Close()
			return nil, nil, err
		}
		log.Info().Msg("using postgres geocode cache")
		return cache.NewPostgres(sqlDB), func() { sqlDB.Close() }, nil

	default:
		log.Info().Msg("using in-memory geocode cache")
		return cache.NewMemory(), func() {}, nil
	}
}
