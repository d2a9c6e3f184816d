package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoordinateValidate(t *testing.T) {
	require.NoError(t, Coordinate{Lat: 6.9271, Lon: 79.8612}.Validate())
	require.NoError(t, Coordinate{Lat: -90, Lon: 180}.Validate())
	require.NoError(t, Coordinate{}.Validate())

	bad := []Coordinate{
		{Lat: 91, Lon: 0},
		{Lat: -90.01, Lon: 0},
		{Lat: 0, Lon: 181},
		{Lat: 0, Lon: -180.5},
		{Lat: math.NaN(), Lon: 0},
		{Lat: 0, Lon: math.NaN()},
	}
	for _, c := range bad {
		var invErr *InvalidCoordinateError
		require.ErrorAs(t, c.Validate(), &invErr)
	}
}

func TestLonLatOrder(t *testing.T) {
	c := Coordinate{Lat: 6.93, Lon: 79.85}
	require.Equal(t, []float64{79.85, 6.93}, c.LonLat())
}
