// Package geocode resolves stop addresses to coordinates through a
// cache-backed, rate-limited geocoder.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/platform/obs"
)

const (
	defaultNominatimURL = "https://nominatim.openstreetmap.org"
	defaultUserAgent    = "route-optimization-service"
)

// NominatimGeocoder resolves addresses against a Nominatim-compatible
// endpoint.
//
// The public Nominatim usage policy caps clients at one request per second;
// the shared limiter enforces that across goroutines, so batch resolution
// is effectively serialized per process. Transient failures are retried
// with backoff.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
}

// NewNominatimGeocoder builds a geocoder for the given endpoint.
// Empty baseURL or userAgent fall back to the public instance defaults;
// ratePerSec <= 0 falls back to the policy limit of 1 request per second.
func NewNominatimGeocoder(baseURL, userAgent string, ratePerSec float64) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = defaultNominatimURL
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if ratePerSec <= 0 {
		ratePerSec = 1
	}

	return &NominatimGeocoder{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   baseURL,
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Limit(ratePerSec), 1),
	}
}

// Nominatim returns latitude/longitude as JSON strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves one address via /search. A lookup with no results
// returns ok=false and no error; only transport-level failures error.
func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (_ domain.Coordinate, _ bool, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	if err := g.limiter.Wait(ctx); err != nil {
		return domain.Coordinate{}, false, err
	}

	endpoint := g.baseURL + "/search"

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", g.userAgent)
		req.Header.Set("Accept", "application/json")

		q := req.URL.Query()
		q.Set("q", address)
		q.Set("format", "json")
		q.Set("limit", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("geocode %q: %w", address, err)
	}
	defer resp.Body.Close()

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("geocode %q: decode response: %w", address, err)
	}

	if len(results) == 0 {
		return domain.Coordinate{}, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("geocode %q: parse lat: %w", address, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("geocode %q: parse lon: %w", address, err)
	}

	coord := domain.Coordinate{Lat: lat, Lon: lon}
	if err := coord.Validate(); err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("geocode %q: %w", address, err)
	}

	return coord, true, nil
}
