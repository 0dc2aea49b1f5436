package services

import (
	"math"

	"route-optimization-service/internal/domain"
)

// Unrounded cost and time figures for one closed tour. Rounding happens
// only when converting to domain.RouteMetrics at the reporting boundary
// so intermediate math does not compound error.
type rawEstimate struct {
	distanceMiles float64
	fuelGallons   float64
	fuelCost      float64
	driveMinutes  float64
	stopMinutes   float64
	totalMinutes  float64
	laborCost     float64
	totalCost     float64
}

// estimateRoute prices a visiting order as a closed tour: the return
// leg from the last stop back to the depot is part of the distance.
// The order must start with the depot; every later entry counts as one
// serviced stop.
func estimateRoute(order []int, m *DistanceMatrix, p domain.TuningParams) rawEstimate {
	var dist float64
	for i := 1; i < len(order); i++ {
		dist += m.At(order[i-1], order[i])
	}
	if len(order) > 1 {
		dist += m.At(order[len(order)-1], order[0])
	}

	stops := float64(len(order) - 1)

	e := rawEstimate{distanceMiles: dist}
	e.fuelGallons = dist / p.VehicleMPG
	e.fuelCost = e.fuelGallons * p.FuelPricePerGallon
	e.driveMinutes = dist / p.AvgSpeedMPH * 60
	e.stopMinutes = stops * p.StopServiceMinutes
	e.totalMinutes = e.driveMinutes + e.stopMinutes
	e.laborCost = e.totalMinutes / 60 * p.DriverHourlyRate
	e.totalCost = e.fuelCost + e.laborCost

	return e
}

// metrics rounds a raw estimate for reporting: miles, gallons and
// currency to two decimals, time to whole minutes.
func (e rawEstimate) metrics() domain.RouteMetrics {
	return domain.RouteMetrics{
		TotalDistanceMiles: round2(e.distanceMiles),
		FuelGallons:        round2(e.fuelGallons),
		FuelCost:           round2(e.fuelCost),
		DriveMinutes:       int(math.Round(e.driveMinutes)),
		StopMinutes:        int(math.Round(e.stopMinutes)),
		TotalMinutes:       int(math.Round(e.totalMinutes)),
		TotalCost:          round2(e.totalCost),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
