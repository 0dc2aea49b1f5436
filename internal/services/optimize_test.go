package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"route-optimization-service/internal/domain"
)

func TestOptimizeRejectsInvalidDepot(t *testing.T) {
	_, err := Optimize(OptimizeRequest{
		Depot: domain.Location{ID: "depot", Coords: domain.Coordinates{Lat: 95, Lng: 0}},
		Stops: convexFixture()[1:],
	})
	assert.ErrorIs(t, err, ErrInvalidDepot)
}

func TestOptimizeRejectsEmptyStopListAfterFiltering(t *testing.T) {
	depot := convexFixture()[0]

	_, err := Optimize(OptimizeRequest{Depot: depot})
	assert.ErrorIs(t, err, ErrNoValidStops)

	_, err = Optimize(OptimizeRequest{
		Depot: depot,
		Stops: []domain.Location{
			{ID: "bad-lat", Coords: domain.Coordinates{Lat: 120, Lng: 10}},
			{ID: "bad-lng", Coords: domain.Coordinates{Lat: 10, Lng: 500}},
		},
	})
	assert.ErrorIs(t, err, ErrNoValidStops)
}

func TestOptimizeFiltersInvalidStops(t *testing.T) {
	locs := convexFixture()

	stops := append([]domain.Location{
		{ID: "bogus", Coords: domain.Coordinates{Lat: -91, Lng: 0}},
	}, locs[1:3]...)

	res, err := Optimize(OptimizeRequest{Depot: locs[0], Stops: stops})
	require.NoError(t, err)
	require.Len(t, res.Stops, 2)
	for _, s := range res.Stops {
		assert.NotEqual(t, "bogus", s.ID)
	}
}

func TestOptimizeSingleStopAtDepotCoordinates(t *testing.T) {
	depot := domain.Location{ID: "depot", Coords: domain.Coordinates{Lat: 33.7490, Lng: -84.3880}}
	stop := domain.Location{ID: "s1", Coords: depot.Coords}

	res, err := Optimize(OptimizeRequest{Depot: depot, Stops: []domain.Location{stop}})
	require.NoError(t, err)

	require.Len(t, res.Stops, 1)
	assert.Equal(t, 1, res.Stops[0].Position)
	assert.Zero(t, res.Metrics.TotalDistanceMiles)
	assert.Zero(t, res.Metrics.FuelCost)
	assert.Equal(t, 20, res.Metrics.StopMinutes)
	assert.Zero(t, res.Savings.DistanceMiles)
	assert.Zero(t, res.ImprovementPasses, "improvement phase is skipped for one stop")
}

func TestOptimizeTwoStopScenario(t *testing.T) {
	depot := domain.Location{ID: "depot", Coords: domain.Coordinates{Lat: 33.7490, Lng: -84.3880}}
	stops := []domain.Location{
		{ID: "marietta", Coords: domain.Coordinates{Lat: 33.9526, Lng: -84.5499}},
		{ID: "decatur", Coords: domain.Coordinates{Lat: 33.7748, Lng: -84.2963}},
	}

	res, err := Optimize(OptimizeRequest{Depot: depot, Stops: stops})
	require.NoError(t, err)
	require.Len(t, res.Stops, 2)

	// Both orders of a two-stop closed tour cover the same three legs.
	assert.InDelta(t, 41.46, res.Metrics.TotalDistanceMiles, 0.01)
	assert.Equal(t, res.OriginalMetrics, res.Metrics)
	assert.Zero(t, res.Savings.DistanceMiles)
	assert.Zero(t, res.ImprovementPasses, "no interior pair exists for two stops")
}

func TestOptimizeReportsSavingsOnCrossingRoute(t *testing.T) {
	locs := convexFixture()

	res, err := Optimize(OptimizeRequest{Depot: locs[0], Stops: locs[1:]})
	require.NoError(t, err)

	assert.InDelta(t, 161.03, res.OriginalMetrics.TotalDistanceMiles, 0.01)
	assert.InDelta(t, 140.81, res.Metrics.TotalDistanceMiles, 0.01)
	assert.InDelta(t, 20.21, res.Savings.DistanceMiles, 0.01)
	assert.InDelta(t, 12.55, res.Savings.DistancePercent, 0.01)
	assert.Equal(t, 2, res.ImprovementPasses)

	assert.Greater(t, res.Savings.FuelCost, 0.0)
	assert.Greater(t, res.Savings.TimeMinutes, 0)
	assert.LessOrEqual(t, res.Metrics.TotalCost, res.OriginalMetrics.TotalCost)
}

func TestOptimizePermutationInvariance(t *testing.T) {
	locs := convexFixture()

	res, err := Optimize(OptimizeRequest{Depot: locs[0], Stops: locs[1:]})
	require.NoError(t, err)
	require.Len(t, res.Stops, 6)

	want := make([]string, 0, 6)
	for _, s := range locs[1:] {
		want = append(want, s.ID)
	}
	got := make([]string, 0, 6)
	for i, s := range res.Stops {
		assert.Equal(t, i+1, s.Position, "positions must be sequential from 1")
		got = append(got, s.ID)
	}
	assert.ElementsMatch(t, want, got, "no stop may be added, dropped or duplicated")
}

func TestOptimizeReOptimizationIsAFixedPoint(t *testing.T) {
	locs := convexFixture()

	first, err := Optimize(OptimizeRequest{Depot: locs[0], Stops: locs[1:]})
	require.NoError(t, err)

	// Feed the stops back in their optimized visiting order.
	reordered := make([]domain.Location, 0, len(first.Stops))
	for _, s := range first.Stops {
		reordered = append(reordered, s.Location)
	}

	second, err := Optimize(OptimizeRequest{Depot: locs[0], Stops: reordered})
	require.NoError(t, err)

	assert.InDelta(t, first.Metrics.TotalDistanceMiles, second.Metrics.TotalDistanceMiles, 0.01)
}

func TestOptimizeHonorsTuningOverrides(t *testing.T) {
	locs := convexFixture()

	base, err := Optimize(OptimizeRequest{Depot: locs[0], Stops: locs[1:]})
	require.NoError(t, err)

	tuned, err := Optimize(OptimizeRequest{
		Depot:  locs[0],
		Stops:  locs[1:],
		Params: domain.TuningParams{VehicleMPG: 16},
	})
	require.NoError(t, err)

	assert.Equal(t, base.Metrics.TotalDistanceMiles, tuned.Metrics.TotalDistanceMiles)
	assert.InDelta(t, base.Metrics.FuelGallons/2, tuned.Metrics.FuelGallons, 0.01)
	assert.Less(t, tuned.Metrics.TotalCost, base.Metrics.TotalCost)
}
