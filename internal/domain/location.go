package domain

// Represents a single point touched by a route: the depot a vehicle
// departs from, or a delivery stop. Demand is informational only; the
// optimizer does not enforce capacity.
type Location struct {
	ID            string
	Name          string
	Address       string
	Coords        Coordinates
	DemandGallons float64
}
