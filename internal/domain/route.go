package domain

// Represents one visited stop within an optimized route, annotated with
// its position (1-based) and the leg that reaches it from the previous
// location.
type RouteStop struct {
	Location
	Position           int
	DistanceFromPrev   float64
	ETAMinutesFromPrev int
}

// Aggregate cost and time figures for one complete route (closed tour:
// depot out and back). Values are rounded for reporting; see the
// estimator for the unrounded accumulation rules.
type RouteMetrics struct {
	TotalDistanceMiles float64
	FuelGallons        float64
	FuelCost           float64
	DriveMinutes       int
	StopMinutes        int
	TotalMinutes       int
	TotalCost          float64
}

// Achieved reduction of the improved route versus the raw
// nearest-neighbor route.
type Savings struct {
	DistanceMiles   float64
	DistancePercent float64
	FuelCost        float64
	TimeMinutes     int
}

// Represents the full outcome of one optimization call. It is
// immutable planning data and contains no side effects; persistence is
// the caller's responsibility.
type OptimizationResult struct {
	Depot           Location
	Stops           []RouteStop
	Metrics         RouteMetrics
	OriginalMetrics RouteMetrics
	Savings         Savings

	// Number of 2-opt improvement passes performed. Equal to the pass
	// cap when the local search was cut off before reaching a fixed
	// point.
	ImprovementPasses int
}

// A group of stops assigned to one seed location by the clusterer.
// Clusters partition the input stop set.
type Cluster struct {
	Seed  Location
	Stops []Location
}
