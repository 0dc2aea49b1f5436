package services

import "math"

// Build an initial visiting order using a greedy nearest-neighbor walk.
//
// The walk starts at the depot (index 0) and repeatedly moves to the
// closest unvisited location. The algorithm minimizes immediate travel
// distance at each step; it does not attempt global optimization. The
// design prioritizes determinism and simplicity over optimality.
//
// The returned order holds the depot at position 0 followed by every
// other matrix index exactly once, in visitation order. An empty matrix
// yields an empty order.
func NearestNeighborOrder(m *DistanceMatrix) []int {
	n := m.Size()
	if n == 0 {
		return []int{}
	}

	order := make([]int, 0, n)
	order = append(order, 0)

	visited := make([]bool, n)
	visited[0] = true
	current := 0

	for len(order) < n {
		next := -1
		best := math.MaxFloat64

		// Strict less keeps the lowest index on equal distances, so
		// repeated runs over the same matrix give identical orders.
		for j := 1; j < n; j++ {
			if visited[j] {
				continue
			}
			if d := m.At(current, j); d < best {
				best = d
				next = j
			}
		}

		visited[next] = true
		order = append(order, next)
		current = next
	}

	return order
}
