package services

import (
	"errors"
	"math"

	"route-optimization-service/internal/domain"
)

var (
	// ErrInvalidDepot indicates the depot is missing or carries
	// out-of-range coordinates.
	ErrInvalidDepot = errors.New("optimize route: depot must have valid coordinates")

	// ErrNoValidStops indicates no stop survived coordinate filtering.
	ErrNoValidStops = errors.New("optimize route: no stops with valid coordinates")
)

// Input for one optimization call. Params fields and TwoOpt fields are
// optional; zero values fall back to documented defaults.
type OptimizeRequest struct {
	Depot  domain.Location
	Stops  []domain.Location
	Params domain.TuningParams
	TwoOpt TwoOptOptions
}

// Optimize computes a cost- and time-efficient visiting order for the
// requested stops and reports the achieved savings versus the raw
// construction order.
//
// Pipeline: validate and filter input, build the distance matrix once,
// construct a nearest-neighbor order, improve it with 2-opt, then price
// both the raw and the improved tour with the same cost model. The
// call is pure computation: no I/O, no retained state, identical output
// for identical input. Persisting the result is the caller's job.
func Optimize(req OptimizeRequest) (*domain.OptimizationResult, error) {
	if !req.Depot.Coords.Valid() {
		return nil, ErrInvalidDepot
	}

	stops := make([]domain.Location, 0, len(req.Stops))
	for _, s := range req.Stops {
		if s.Coords.Valid() {
			stops = append(stops, s)
		}
	}
	if len(stops) == 0 {
		return nil, ErrNoValidStops
	}

	params := req.Params.WithDefaults()

	locations := make([]domain.Location, 0, len(stops)+1)
	locations = append(locations, req.Depot)
	locations = append(locations, stops...)

	matrix := BuildDistanceMatrix(locations)
	initial := NearestNeighborOrder(matrix)

	// One or two stops admit no interior reversal; the construction
	// order is already the best this engine can do.
	improved := initial
	passes := 0
	if len(stops) >= 3 {
		improved, passes = TwoOptImprove(initial, matrix, req.TwoOpt)
	}

	before := estimateRoute(initial, matrix, params)
	after := estimateRoute(improved, matrix, params)

	result := &domain.OptimizationResult{
		Depot:             req.Depot,
		Stops:             orderedStops(improved, locations, matrix, params),
		Metrics:           after.metrics(),
		OriginalMetrics:   before.metrics(),
		Savings:           savings(before, after),
		ImprovementPasses: passes,
	}

	return result, nil
}

// orderedStops annotates the improved order with 1-based positions and
// the leg reaching each stop from its predecessor.
func orderedStops(order []int, locations []domain.Location, m *DistanceMatrix, p domain.TuningParams) []domain.RouteStop {
	out := make([]domain.RouteStop, 0, len(order)-1)

	for pos := 1; pos < len(order); pos++ {
		leg := m.At(order[pos-1], order[pos])
		out = append(out, domain.RouteStop{
			Location:           locations[order[pos]],
			Position:           pos,
			DistanceFromPrev:   round2(leg),
			ETAMinutesFromPrev: int(math.Round(leg / p.AvgSpeedMPH * 60)),
		})
	}

	return out
}

// savings compares the raw and improved tours on unrounded figures and
// rounds once for reporting. 2-opt never lengthens a tour, so every
// field is non-negative.
func savings(before, after rawEstimate) domain.Savings {
	s := domain.Savings{
		DistanceMiles: round2(before.distanceMiles - after.distanceMiles),
		FuelCost:      round2(before.fuelCost - after.fuelCost),
		TimeMinutes:   int(math.Round(before.totalMinutes - after.totalMinutes)),
	}
	if before.distanceMiles > 0 {
		s.DistancePercent = round2((before.distanceMiles - after.distanceMiles) / before.distanceMiles * 100)
	}
	return s
}
