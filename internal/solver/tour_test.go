package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/geo"
)

// euclideanMatrix builds a matrix from 2D points for hand-checkable cases.
func euclideanMatrix(points [][2]float64) geo.Matrix {
	n := len(points)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			dx := points[i][0] - points[j][0]
			dy := points[i][1] - points[j][1]
			d[i][j] = math.Hypot(dx, dy)
		}
	}
	return geo.MatrixFrom(d)
}

func TestDegenerateTours(t *testing.T) {
	empty := geo.MatrixFrom(nil)
	require.Empty(t, Solve(empty, 0, nil))
	require.Equal(t, 0.0, TourDistance(Solve(empty, 0, nil), empty))

	single := geo.MatrixFrom([][]float64{{0}})
	tour := Solve(single, 0, nil)
	require.Equal(t, []int{0}, tour)
	require.Equal(t, 0.0, TourDistance(tour, single))
}

func TestNearestNeighborGreedyOrder(t *testing.T) {
	// Points strung along a line: greedy from 0 must walk them in order.
	m := euclideanMatrix([][2]float64{{0, 0}, {1, 0}, {2, 0}, {4, 0}})

	tour := NearestNeighbor(m, 0, nil)
	require.Equal(t, []int{0, 1, 2, 3}, tour)
}

func TestNearestNeighborTieBreakLowestIndex(t *testing.T) {
	// Nodes 1..3 all at distance 1 from node 0 and from each other.
	d := [][]float64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	}
	m := geo.MatrixFrom(d)

	tour := NearestNeighbor(m, 0, nil)
	require.Equal(t, []int{0, 1, 2, 3}, tour)
}

func TestNearestNeighborPriorityTieBreak(t *testing.T) {
	d := [][]float64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	}
	m := geo.MatrixFrom(d)

	// Node 3 is the most urgent; at equal distance it wins.
	ranks := map[int]int{1: 3, 2: 2, 3: 1}
	tour := NearestNeighbor(m, 0, PriorityTieBreak(ranks))
	require.Equal(t, []int{0, 3, 2, 1}, tour)
}

func TestNearestNeighborDeterministic(t *testing.T) {
	m := euclideanMatrix([][2]float64{{0, 0}, {3, 1}, {1, 2}, {2, 0}, {0, 3}})

	first := Solve(m, 0, nil)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Solve(m, 0, nil))
	}
}

func TestTwoOptUncrossesTour(t *testing.T) {
	// Unit square; the order 0,2,1,3 crosses itself.
	m := euclideanMatrix([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})

	crossed := []int{0, 2, 1, 3}
	improved := TwoOpt(crossed, m)

	require.InDelta(t, 4.0, TourDistance(improved, m), 1e-9)
	require.Less(t, TourDistance(improved, m), TourDistance(crossed, m))
}

func TestTwoOptNeverWorseThanConstruction(t *testing.T) {
	coords := []domain.Coordinate{
		{Lat: 6.9338, Lon: 79.8501},
		{Lat: 6.9146, Lon: 79.8486},
		{Lat: 6.9271, Lon: 79.8612},
		{Lat: 6.8387, Lon: 79.8635},
		{Lat: 6.9550, Lon: 79.8400},
		{Lat: 6.9000, Lon: 79.8700},
	}
	m, err := geo.BuildMatrix(coords)
	require.NoError(t, err)

	nn := NearestNeighbor(m, 0, nil)
	improved := TwoOpt(nn, m)

	require.LessOrEqual(t, TourDistance(improved, m), TourDistance(nn, m))
	require.ElementsMatch(t, nn, improved)
}

func TestTourDistanceClosesLoop(t *testing.T) {
	m := euclideanMatrix([][2]float64{{0, 0}, {3, 0}, {3, 4}})

	// 0->1 (3) + 1->2 (4) + 2->0 (5).
	require.InDelta(t, 12.0, TourDistance([]int{0, 1, 2}, m), 1e-9)
}
