package services

import "route-optimization-service/internal/domain"

// Pairwise great-circle distances for one optimization call. By
// convention index 0 is the depot. The matrix is symmetric with a zero
// diagonal and is never mutated after construction; both the route
// constructor and the improvement phase read from the same instance.
type DistanceMatrix struct {
	n     int
	cells []float64
}

// BuildDistanceMatrix computes the upper triangle and mirrors it into
// the lower one. O(n²) in location count, which bounds practical input
// size to hundreds of locations per call.
func BuildDistanceMatrix(locations []domain.Location) *DistanceMatrix {
	n := len(locations)
	m := &DistanceMatrix{n: n, cells: make([]float64, n*n)}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := Haversine(locations[i].Coords, locations[j].Coords)
			m.cells[i*n+j] = d
			m.cells[j*n+i] = d
		}
	}

	return m
}

// Size returns the number of locations covered by the matrix.
func (m *DistanceMatrix) Size() int { return m.n }

// At returns the distance in miles between locations i and j.
func (m *DistanceMatrix) At(i, j int) float64 { return m.cells[i*m.n+j] }
