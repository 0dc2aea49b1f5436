package dto

type OptimizeOptions struct {
	FuelPricePerGallon float64 `json:"fuel_price_per_gallon"`
	VehicleMPG         float64 `json:"vehicle_mpg"`
	AvgSpeedMPH        float64 `json:"avg_speed_mph"`
	StopServiceMinutes float64 `json:"stop_service_minutes"`
	DriverHourlyRate   float64 `json:"driver_hourly_rate"`
}

// Depot and stops are optional: when omitted the stored depot and stop
// set are used. Every option falls back to a documented default.
type OptimizeRequest struct {
	Depot   *LocationPayload  `json:"depot"`
	Stops   []LocationPayload `json:"stops"`
	Options *OptimizeOptions  `json:"options"`
}

type OptimizedStopResponse struct {
	StopID             string  `json:"stop_id"`
	Name               string  `json:"name,omitempty"`
	Position           int     `json:"position"`
	Lat                float64 `json:"lat"`
	Lng                float64 `json:"lng"`
	DistanceFromPrev   float64 `json:"distance_from_previous_miles"`
	ETAMinutesFromPrev int     `json:"eta_minutes_from_previous"`
}

type MetricsResponse struct {
	TotalDistanceMiles float64 `json:"total_distance_miles"`
	FuelGallons        float64 `json:"fuel_gallons"`
	FuelCost           float64 `json:"fuel_cost"`
	DriveMinutes       int     `json:"drive_minutes"`
	StopMinutes        int     `json:"stop_minutes"`
	TotalMinutes       int     `json:"total_minutes"`
	TotalCost          float64 `json:"total_cost"`
}

type SavingsResponse struct {
	DistanceMiles   float64 `json:"distance_miles"`
	DistancePercent float64 `json:"distance_percent"`
	FuelCost        float64 `json:"fuel_cost"`
	TimeMinutes     int     `json:"time_minutes"`
}

type OptimizeResponse struct {
	Depot             StopRecordResponse      `json:"depot"`
	Stops             []OptimizedStopResponse `json:"stops"`
	Metrics           MetricsResponse         `json:"metrics"`
	OriginalMetrics   MetricsResponse         `json:"original_metrics"`
	Savings           SavingsResponse         `json:"savings"`
	ImprovementPasses int                     `json:"improvement_passes"`
	FromCache         bool                    `json:"from_cache"`
}
