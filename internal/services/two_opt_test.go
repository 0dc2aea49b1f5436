package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"route-optimization-service/internal/domain"
)

// Seven locations in convex position around Atlanta (depot first). The
// greedy construction order visibly crosses itself here; the only
// non-crossing closed tour over points in convex position is the hull
// order, so 2-opt must land on exactly that.
func convexFixture() []domain.Location {
	coords := []domain.Coordinates{
		{Lat: 33.7072, Lng: -84.1197},
		{Lat: 34.0151, Lng: -84.4253},
		{Lat: 33.9465, Lng: -84.6293},
		{Lat: 33.7580, Lng: -84.5038},
		{Lat: 33.5320, Lng: -84.7793},
		{Lat: 33.3528, Lng: -84.5362},
		{Lat: 33.5821, Lng: -84.0114},
	}

	locs := make([]domain.Location, len(coords))
	for i, c := range coords {
		locs[i] = domain.Location{ID: string(rune('a' + i)), Coords: c}
	}
	return locs
}

func closedTourMiles(order []int, m *DistanceMatrix) float64 {
	var total float64
	for i := range order {
		total += m.At(order[i], order[(i+1)%len(order)])
	}
	return total
}

func TestTwoOptRemovesCrossing(t *testing.T) {
	m := BuildDistanceMatrix(convexFixture())

	initial := NearestNeighborOrder(m)
	require.Equal(t, []int{0, 6, 3, 2, 1, 4, 5}, initial, "fixture relies on a crossing construction order")

	improved, passes := TwoOptImprove(initial, m, DefaultTwoOptOptions())

	assert.Equal(t, []int{0, 6, 5, 4, 3, 2, 1}, improved, "expected the convex hull tour")
	assert.Equal(t, 2, passes)
	assert.Less(t, closedTourMiles(improved, m), closedTourMiles(initial, m))
}

func TestTwoOptNeverIncreasesTourLength(t *testing.T) {
	m := BuildDistanceMatrix(convexFixture())
	initial := NearestNeighborOrder(m)

	improved, _ := TwoOptImprove(initial, m, DefaultTwoOptOptions())
	assert.LessOrEqual(t, closedTourMiles(improved, m), closedTourMiles(initial, m))
}

func TestTwoOptIsAFixedPoint(t *testing.T) {
	m := BuildDistanceMatrix(convexFixture())
	improved, _ := TwoOptImprove(NearestNeighborOrder(m), m, DefaultTwoOptOptions())

	again, passes := TwoOptImprove(improved, m, DefaultTwoOptOptions())

	assert.Equal(t, improved, again, "re-running on an optimized order must change nothing")
	assert.Equal(t, 1, passes, "a single verification pass suffices")
}

func TestTwoOptPreservesVisitSet(t *testing.T) {
	m := BuildDistanceMatrix(convexFixture())
	initial := NearestNeighborOrder(m)

	improved, _ := TwoOptImprove(initial, m, DefaultTwoOptOptions())

	assert.ElementsMatch(t, initial, improved)
	assert.Equal(t, 0, improved[0], "depot must stay at the boundary position")
}

func TestTwoOptSkipsTinyRoutes(t *testing.T) {
	m := BuildDistanceMatrix(convexFixture()[:3]) // depot + two stops

	order := []int{0, 2, 1}
	improved, passes := TwoOptImprove(order, m, DefaultTwoOptOptions())

	assert.Equal(t, order, improved)
	assert.Zero(t, passes)
	assert.NotSame(t, &order[0], &improved[0], "input must not be aliased")
}

func TestTwoOptDoesNotMutateInput(t *testing.T) {
	m := BuildDistanceMatrix(convexFixture())
	initial := NearestNeighborOrder(m)
	snapshot := append([]int(nil), initial...)

	_, _ = TwoOptImprove(initial, m, DefaultTwoOptOptions())

	assert.Equal(t, snapshot, initial)
}
