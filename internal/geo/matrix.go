package geo

import "route-optimization-service/internal/domain"

// Matrix is a square distance matrix over an ordered list of nodes.
// By convention index 0 is the depot. Haversine-built matrices are
// symmetric; externally supplied road matrices need not be.
type Matrix struct {
	d [][]float64
}

// BuildMatrix computes pairwise great-circle distances between the given
// coordinates. The diagonal is zero.
func BuildMatrix(coords []domain.Coordinate) (Matrix, error) {
	n := len(coords)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			km, err := Distance(coords[i], coords[j])
			if err != nil {
				return Matrix{}, err
			}
			d[i][j] = km
			d[j][i] = km
		}
	}

	return Matrix{d: d}, nil
}

// MatrixFrom wraps precomputed distances, e.g. road distances fetched from
// an external matrix service.
func MatrixFrom(d [][]float64) Matrix { return Matrix{d: d} }

// Len returns the number of nodes.
func (m Matrix) Len() int { return len(m.d) }

// At returns the distance from node i to node j.
func (m Matrix) At(i, j int) float64 { return m.d[i][j] }
