package domain

import "math"

// Immutable geographic coordinates in decimal degrees (WGS84).
type Coordinates struct {
	Lat float64
	Lng float64
}

// Valid reports whether both components are finite and within range
// (latitude [-90,90], longitude [-180,180]).
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) {
		return false
	}
	if math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
