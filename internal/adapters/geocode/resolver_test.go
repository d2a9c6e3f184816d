package geocode

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"route-optimization-service/internal/adapters/cache"
	"route-optimization-service/internal/domain"
)

func TestNormalizeAddress(t *testing.T) {
	require.Equal(t, "12 galle road, colombo", NormalizeAddress("  12  Galle   Road,  Colombo "))
	require.Equal(t, "", NormalizeAddress("   "))
}

func TestResolveIdempotent(t *testing.T) {
	mock := &MockGeocoder{Coords: map[string]domain.Coordinate{
		"12 galle road": {Lat: 6.9271, Lon: 79.8612},
	}}
	r := NewResolver(cache.NewMemory(), mock, zerolog.Nop())

	first, ok := r.Resolve(context.Background(), "12 Galle Road")
	require.True(t, ok)

	second, ok := r.Resolve(context.Background(), " 12  Galle  Road ")
	require.True(t, ok)

	require.Equal(t, first, second)
	// The second resolution is a cache hit; the geocoder saw one call.
	require.Equal(t, 1, mock.Calls)
}

func TestResolveNotFound(t *testing.T) {
	r := NewResolver(cache.NewMemory(), &MockGeocoder{}, zerolog.Nop())

	coord, ok := r.Resolve(context.Background(), "nowhere at all")
	require.False(t, ok)
	require.Equal(t, domain.Coordinate{}, coord)
}

func TestResolveLookupErrorIsAbsorbed(t *testing.T) {
	mock := &MockGeocoder{Err: errors.New("service timeout")}
	r := NewResolver(cache.NewMemory(), mock, zerolog.Nop())

	coord, ok := r.Resolve(context.Background(), "12 Galle Road")
	require.False(t, ok)
	require.Equal(t, domain.Coordinate{}, coord)
}

func TestResolveStopsSkipsPreResolved(t *testing.T) {
	mock := &MockGeocoder{Coords: map[string]domain.Coordinate{
		"2 marine drive": {Lat: 6.90, Lon: 79.86},
	}}
	r := NewResolver(cache.NewMemory(), mock, zerolog.Nop())

	preResolved := &domain.Coordinate{Lat: 6.93, Lon: 79.85}
	stops := []*domain.Stop{
		{ID: 1, Address: "1 Fort Road", Coordinate: preResolved},
		{ID: 2, Address: "2 Marine Drive"},
	}

	resolved := r.ResolveStops(context.Background(), stops)
	require.Equal(t, 2, resolved)

	// The pre-resolved stop never reached the geocoder.
	require.Equal(t, 1, mock.Calls)
	require.Equal(t, preResolved, stops[0].Coordinate)
	require.NotNil(t, stops[1].Coordinate)
}

func TestResolveStopsDiscardsInvalidSuppliedCoordinate(t *testing.T) {
	mock := &MockGeocoder{Coords: map[string]domain.Coordinate{
		"2 marine drive": {Lat: 6.90, Lon: 79.86},
	}}
	r := NewResolver(cache.NewMemory(), mock, zerolog.Nop())

	stops := []*domain.Stop{
		{ID: 1, Address: "2 Marine Drive", Coordinate: &domain.Coordinate{Lat: 999, Lon: 999}},
		{ID: 2, Address: "nowhere at all", Coordinate: &domain.Coordinate{Lat: -91, Lon: 0}},
	}

	resolved := r.ResolveStops(context.Background(), stops)
	require.Equal(t, 1, resolved)

	// The malformed coordinate is replaced by the address lookup.
	require.NotNil(t, stops[0].Coordinate)
	require.NoError(t, stops[0].Coordinate.Validate())

	// When the address cannot be resolved either, nothing invalid survives.
	require.Nil(t, stops[1].Coordinate)
}

func TestResolveStopsCountsFailures(t *testing.T) {
	mock := &MockGeocoder{Coords: map[string]domain.Coordinate{
		"1 fort road": {Lat: 6.93, Lon: 79.85},
	}}
	r := NewResolver(cache.NewMemory(), mock, zerolog.Nop())

	stops := []*domain.Stop{
		{ID: 1, Address: "1 Fort Road"},
		{ID: 2, Address: "does not exist"},
		{ID: 3, Address: ""},
	}

	resolved := r.ResolveStops(context.Background(), stops)
	require.Equal(t, 1, resolved)
	require.Nil(t, stops[1].Coordinate)
	require.Nil(t, stops[2].Coordinate)
}
