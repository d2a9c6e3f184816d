package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds process configuration read from the environment (a local
// .env file is loaded by the composition root before this runs).
type Config struct {
	Port string

	NominatimURL       string
	NominatimUserAgent string
	GeocodeRatePerSec  float64

	VroomURL     string
	VroomTimeout time.Duration

	// Exactly one geocode cache backend is selected: Redis when RedisAddr
	// is set, Postgres when DatabaseURL is set, in-memory otherwise.
	RedisAddr       string
	RedisPassword   string
	DatabaseURL     string
	GeocodeCacheTTL time.Duration

	AvgSpeedKmh float64
	DayStart    string // "HH:MM"
}

func Load() Config {
	return Config{
		Port: Get("PORT", "8080"),

		NominatimURL:       Get("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		NominatimUserAgent: Get("NOMINATIM_USER_AGENT", "route-optimization-service"),
		GeocodeRatePerSec:  getFloat("GEOCODE_RATE_PER_SEC", 1),

		VroomURL:     os.Getenv("VROOM_URL"),
		VroomTimeout: getDuration("VROOM_TIMEOUT", 60*time.Second),

		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		GeocodeCacheTTL: getDuration("GEOCODE_CACHE_TTL", 0),

		AvgSpeedKmh: getFloat("AVG_SPEED_KMH", 50),
		DayStart:    Get("DAY_START", "08:00"),
	}
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
