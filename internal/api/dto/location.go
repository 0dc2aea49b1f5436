package dto

import (
	"math"

	"route-optimization-service/internal/domain"
)

// Wire shape for a depot or stop. Lat/Lng are pointers so a missing
// coordinate is distinguishable from a real (0, 0); entries with
// missing coordinates are filtered by the engine, not rejected.
type LocationPayload struct {
	ID            string   `json:"id"`
	Name          string   `json:"name,omitempty"`
	Address       string   `json:"address,omitempty"`
	Lat           *float64 `json:"lat"`
	Lng           *float64 `json:"lng"`
	DemandGallons float64  `json:"demand_gallons,omitempty"`
}

// ToDomain converts a payload to a domain location. Missing
// coordinates map to NaN so they fail validity checks downstream.
func (p LocationPayload) ToDomain() domain.Location {
	coords := domain.Coordinates{Lat: math.NaN(), Lng: math.NaN()}
	if p.Lat != nil && p.Lng != nil {
		coords = domain.Coordinates{Lat: *p.Lat, Lng: *p.Lng}
	}

	return domain.Location{
		ID:            p.ID,
		Name:          p.Name,
		Address:       p.Address,
		Coords:        coords,
		DemandGallons: p.DemandGallons,
	}
}

type StopRecordResponse struct {
	StopID        string  `json:"stop_id"`
	Name          string  `json:"name,omitempty"`
	Address       string  `json:"address,omitempty"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	DemandGallons float64 `json:"demand_gallons"`
}

type ListStopsResponse struct {
	Stops []StopRecordResponse `json:"stops"`
}
