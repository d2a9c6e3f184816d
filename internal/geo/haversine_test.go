package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"route-optimization-service/internal/domain"
)

func TestDistanceKnownPair(t *testing.T) {
	// Colombo Fort to Mount Lavinia, roughly 10.7 km apart.
	fort := domain.Coordinate{Lat: 6.9338, Lon: 79.8501}
	lavinia := domain.Coordinate{Lat: 6.8387, Lon: 79.8635}

	km, err := Distance(fort, lavinia)
	require.NoError(t, err)
	require.InDelta(t, 10.7, km, 0.2)
}

func TestDistanceSymmetric(t *testing.T) {
	a := domain.Coordinate{Lat: 6.9271, Lon: 79.8612}
	b := domain.Coordinate{Lat: 6.9146, Lon: 79.8486}

	ab, err := Distance(a, b)
	require.NoError(t, err)
	ba, err := Distance(b, a)
	require.NoError(t, err)

	require.InDelta(t, ab, ba, 1e-9)
	require.Greater(t, ab, 0.0)
}

func TestDistanceSamePointIsZero(t *testing.T) {
	p := domain.Coordinate{Lat: 52.52, Lon: 13.405}

	km, err := Distance(p, p)
	require.NoError(t, err)
	require.Equal(t, 0.0, km)
}

func TestDistanceTriangleInequality(t *testing.T) {
	a := domain.Coordinate{Lat: 6.9338, Lon: 79.8501}
	b := domain.Coordinate{Lat: 6.9146, Lon: 79.8486}
	c := domain.Coordinate{Lat: 6.8387, Lon: 79.8635}

	ab, _ := Distance(a, b)
	bc, _ := Distance(b, c)
	ac, _ := Distance(a, c)

	require.LessOrEqual(t, ac, ab+bc+1e-9)
}

func TestDistanceInvalidCoordinate(t *testing.T) {
	valid := domain.Coordinate{Lat: 0, Lon: 0}

	cases := []struct {
		name string
		bad  domain.Coordinate
	}{
		{"lat out of range", domain.Coordinate{Lat: 91, Lon: 0}},
		{"lon out of range", domain.Coordinate{Lat: 0, Lon: -181}},
		{"lat NaN", domain.Coordinate{Lat: math.NaN(), Lon: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Distance(tc.bad, valid)
			var invalidErr *domain.InvalidCoordinateError
			require.ErrorAs(t, err, &invalidErr)
		})
	}
}

func TestFixedSpeedMinutes(t *testing.T) {
	p := FixedSpeed{Kmh: 50}

	// 25 km at 50 km/h = 30 minutes exactly.
	require.Equal(t, 30, p.Minutes(25))
	// Fractional results floor: 10 km at 50 km/h = 12 minutes.
	require.Equal(t, 12, p.Minutes(10))
	require.Equal(t, 0, p.Minutes(0))
}

func TestFixedSpeedDefaultsWhenUnset(t *testing.T) {
	p := FixedSpeed{}
	require.Equal(t, 60, p.Minutes(DefaultSpeedKmh))
}

func TestPacePerKmMinutes(t *testing.T) {
	p := PacePerKm{MinutesPerKm: 2.5, MinMinutes: 5}

	require.Equal(t, 25, p.Minutes(10))
	// Short legs hit the floor.
	require.Equal(t, 5, p.Minutes(1))
}

func TestBuildMatrix(t *testing.T) {
	coords := []domain.Coordinate{
		{Lat: 6.93, Lon: 79.85},
		{Lat: 6.90, Lon: 79.86},
		{Lat: 6.88, Lon: 79.87},
	}

	m, err := BuildMatrix(coords)
	require.NoError(t, err)
	require.Equal(t, 3, m.Len())

	for i := 0; i < 3; i++ {
		require.Equal(t, 0.0, m.At(i, i))
		for j := 0; j < 3; j++ {
			if i != j {
				require.Greater(t, m.At(i, j), 0.0)
				require.InDelta(t, m.At(i, j), m.At(j, i), 1e-9)
			}
		}
	}
}

func TestBuildMatrixInvalidCoordinate(t *testing.T) {
	coords := []domain.Coordinate{
		{Lat: 6.93, Lon: 79.85},
		{Lat: 200, Lon: 0},
	}

	_, err := BuildMatrix(coords)
	require.Error(t, err)
}
