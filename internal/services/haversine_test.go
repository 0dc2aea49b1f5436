package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"route-optimization-service/internal/domain"
)

func TestHaversineKnownDistances(t *testing.T) {
	depot := domain.Coordinates{Lat: 33.7490, Lng: -84.3880} // downtown Atlanta
	marietta := domain.Coordinates{Lat: 33.9526, Lng: -84.5499}
	decatur := domain.Coordinates{Lat: 33.7748, Lng: -84.2963}

	// Oracle values computed independently of this implementation.
	assert.InDelta(t, 16.86, Haversine(depot, marietta), 0.1)
	assert.InDelta(t, 5.56, Haversine(depot, decatur), 0.1)
}

func TestHaversineSymmetric(t *testing.T) {
	pairs := [][2]domain.Coordinates{
		{{Lat: 33.7490, Lng: -84.3880}, {Lat: 33.9526, Lng: -84.5499}},
		{{Lat: 0, Lng: 0}, {Lat: -45.5, Lng: 170.25}},
		{{Lat: 89.9, Lng: -179.9}, {Lat: -89.9, Lng: 179.9}},
	}

	for _, p := range pairs {
		assert.Equal(t, Haversine(p[0], p[1]), Haversine(p[1], p[0]))
	}
}

func TestHaversineIdenticalCoordinates(t *testing.T) {
	c := domain.Coordinates{Lat: 33.7490, Lng: -84.3880}
	assert.Zero(t, Haversine(c, c))
}
