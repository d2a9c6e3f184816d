// Package solver implements the built-in tour heuristic: nearest-neighbor
// construction followed by 2-opt local search over a distance matrix.
//
// The solver minimizes total closed-tour distance. It does not attempt
// global optimization (e.g., exact TSP solvers); the design prioritizes
// determinism and simplicity over optimality.
package solver

import "route-optimization-service/internal/geo"

// TieBreak decides between two candidate nodes at equal distance.
// It reports whether candidate a should be preferred over b.
type TieBreak func(a, b int) bool

// LowestIndex is the default deterministic tie-break.
func LowestIndex(a, b int) bool { return a < b }

// PriorityTieBreak prefers the more urgent node (lower rank) when distances
// tie, falling back to the lowest index. ranks is keyed by node index;
// missing nodes rank equal.
func PriorityTieBreak(ranks map[int]int) TieBreak {
	return func(a, b int) bool {
		ra, rb := ranks[a], ranks[b]
		if ra != rb {
			return ra < rb
		}
		return a < b
	}
}

// Solve runs nearest-neighbor construction followed by 2-opt improvement
// and returns the resulting tour starting at start. The tour is implicitly
// closed: the edge back to start counts toward its distance.
func Solve(m geo.Matrix, start int, tb TieBreak) []int {
	return TwoOpt(NearestNeighbor(m, start, tb), m)
}

// NearestNeighbor builds a tour by always moving to the closest unvisited
// node. Ties are resolved by tb (lowest index when nil) so results are
// reproducible for a fixed matrix. Empty and single-node matrices yield
// degenerate zero-distance tours.
func NearestNeighbor(m geo.Matrix, start int, tb TieBreak) []int {
	n := m.Len()
	if n == 0 {
		return []int{}
	}
	if tb == nil {
		tb = LowestIndex
	}

	visited := make([]bool, n)
	tour := make([]int, 0, n)

	current := start
	tour = append(tour, current)
	visited[current] = true

	for len(tour) < n {
		next := -1
		for cand := 0; cand < n; cand++ {
			if visited[cand] {
				continue
			}
			if next == -1 {
				next = cand
				continue
			}
			dc, dn := m.At(current, cand), m.At(current, next)
			if dc < dn || (dc == dn && tb(cand, next)) {
				next = cand
			}
		}
		tour = append(tour, next)
		visited[next] = true
		current = next
	}

	return tour
}

// TwoOpt repeatedly reverses tour segments that strictly shorten the closed
// tour, scanning all (i, j) pairs with j-i > 1 until a full pass yields no
// improvement. The result is a local optimum, never worse than the input.
func TwoOpt(tour []int, m geo.Matrix) []int {
	best := append([]int(nil), tour...)
	if len(best) < 4 {
		return best
	}

	bestDist := TourDistance(best, m)

	improved := true
	for improved {
		improved = false
		for i := 1; i < len(best)-2; i++ {
			for j := i + 1; j < len(best); j++ {
				if j-i == 1 {
					continue
				}
				cand := reverseSegment(best, i, j)
				if d := TourDistance(cand, m); d < bestDist {
					best = cand
					bestDist = d
					improved = true
				}
			}
		}
	}

	return best
}

// reverseSegment returns a copy of tour with tour[i:j] reversed.
func reverseSegment(tour []int, i, j int) []int {
	out := append([]int(nil), tour...)
	for lo, hi := i, j-1; lo < hi; lo, hi = lo+1, hi-1 {
		out[lo], out[hi] = out[hi], out[lo]
	}
	return out
}

// TourDistance sums consecutive edges plus the closing edge from the last
// node back to the first.
func TourDistance(tour []int, m geo.Matrix) float64 {
	if len(tour) < 2 {
		return 0
	}

	total := 0.0
	for i := 0; i < len(tour)-1; i++ {
		total += m.At(tour[i], tour[i+1])
	}
	total += m.At(tour[len(tour)-1], tour[0])

	return total
}
