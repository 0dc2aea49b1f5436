package domain

// Cost model inputs for route estimation. All values must be positive;
// zero fields are replaced by defaults so callers may set any subset.
type TuningParams struct {
	FuelPricePerGallon float64
	VehicleMPG         float64
	AvgSpeedMPH        float64
	StopServiceMinutes float64
	DriverHourlyRate   float64
}

// DefaultTuningParams returns the documented cost model defaults:
// fuel $3.50/gal, 8 MPG, 35 MPH average, 20 minutes per stop, $25/hour.
func DefaultTuningParams() TuningParams {
	return TuningParams{
		FuelPricePerGallon: 3.50,
		VehicleMPG:         8,
		AvgSpeedMPH:        35,
		StopServiceMinutes: 20,
		DriverHourlyRate:   25,
	}
}

// WithDefaults fills any unset (zero) field with its default value.
func (p TuningParams) WithDefaults() TuningParams {
	d := DefaultTuningParams()
	if p.FuelPricePerGallon <= 0 {
		p.FuelPricePerGallon = d.FuelPricePerGallon
	}
	if p.VehicleMPG <= 0 {
		p.VehicleMPG = d.VehicleMPG
	}
	if p.AvgSpeedMPH <= 0 {
		p.AvgSpeedMPH = d.AvgSpeedMPH
	}
	if p.StopServiceMinutes <= 0 {
		p.StopServiceMinutes = d.StopServiceMinutes
	}
	if p.DriverHourlyRate <= 0 {
		p.DriverHourlyRate = d.DriverHourlyRate
	}
	return p
}
