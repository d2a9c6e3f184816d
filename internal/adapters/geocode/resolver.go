package geocode

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/platform/obs"
	"route-optimization-service/internal/ports"
)

// Resolver resolves addresses to coordinates through an injected cache and
// geocoder.
//
// Lookup failures are absorbed: the resolver reports ok=false with a zero
// sentinel coordinate instead of raising, so a bad address skips one stop
// rather than aborting the whole optimization. Cache errors degrade to a
// geocoder call and never fail resolution.
type Resolver struct {
	cache    ports.GeocodeCache
	geocoder ports.Geocoder
	log      zerolog.Logger
}

func NewResolver(cache ports.GeocodeCache, geocoder ports.Geocoder, log zerolog.Logger) *Resolver {
	return &Resolver{cache: cache, geocoder: geocoder, log: log}
}

// NormalizeAddress collapses whitespace and lowercases an address to form a
// stable cache key.
func NormalizeAddress(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Resolve maps one address to a coordinate. Resolving the same address
// twice returns the identical coordinate without re-invoking the geocoder.
func (r *Resolver) Resolve(ctx context.Context, address string) (domain.Coordinate, bool) {
	key := NormalizeAddress(address)
	if key == "" {
		return domain.Coordinate{}, false
	}

	if coord, ok, err := r.cache.Get(ctx, key); err != nil {
		r.log.Warn().Err(err).Str("address", key).Msg("geocode cache read failed")
	} else if ok {
		obs.GeocodeLookups.WithLabelValues("hit").Inc()
		return coord, true
	}

	coord, ok, err := r.geocoder.Geocode(ctx, key)
	if err != nil {
		obs.GeocodeLookups.WithLabelValues("failed").Inc()
		r.log.Warn().Err(err).Str("address", key).Msg("geocoding failed")
		return domain.Coordinate{}, false
	}
	if !ok {
		obs.GeocodeLookups.WithLabelValues("failed").Inc()
		return domain.Coordinate{}, false
	}

	obs.GeocodeLookups.WithLabelValues("miss").Inc()
	if err := r.cache.Put(ctx, key, coord); err != nil {
		r.log.Warn().Err(err).Str("address", key).Msg("geocode cache write failed")
	}

	return coord, true
}

// ResolveStops resolves every stop in place and returns how many stops
// ended up with usable coordinates. Stops already carrying a valid
// coordinate bypass resolution entirely.
//
// Stops are processed sequentially: the underlying geocoder is
// rate-limited, so there is nothing to gain from fanning out.
func (r *Resolver) ResolveStops(ctx context.Context, stops []*domain.Stop) int {
	resolved := 0

	for _, s := range stops {
		if s.Coordinate != nil {
			if s.Coordinate.Validate() == nil {
				resolved++
				continue
			}
			// A malformed supplied coordinate is discarded; the address
			// gets one resolution attempt like any ungeocoded stop.
			s.Coordinate = nil
		}

		coord, ok := r.Resolve(ctx, s.Address)
		if !ok {
			r.log.Warn().
				Int("stop_id", s.ID).
				Str("address", s.Address).
				Msg("stop could not be geocoded; it will be skipped")
			continue
		}

		c := coord
		s.Coordinate = &c
		resolved++
	}

	return resolved
}
