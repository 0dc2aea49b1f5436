package services

import (
	"math"

	"route-optimization-service/internal/domain"
)

// Earth radius used for great-circle distances. The cost model is
// calibrated in statute miles.
const earthRadiusMiles = 3958.8

// Haversine returns the great-circle distance in miles between two
// coordinates. The formula is symmetric and returns exactly zero for
// identical inputs. Coordinate range checks are the caller's job.
func Haversine(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}
