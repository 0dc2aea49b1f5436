package ports

import (
	"context"

	"route-optimization-service/internal/domain"
)

// Port: a boundary for retrieving stored depot and stop locations from
// a data source.
type StopRepository interface {
	// Retrieve all delivery stops available for routing.
	ListStops(ctx context.Context) ([]domain.Location, error)

	// Retrieve the configured depot.
	GetDepot(ctx context.Context) (domain.Location, error)
}
