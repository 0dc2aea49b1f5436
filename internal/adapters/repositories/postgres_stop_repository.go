package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/platform/obs"
)

// Postgres-backed implementation of the StopRepository port.
type PostgresStopRepository struct{ DB *sql.DB }

func NewPostgresStopRepository(db *sql.DB) *PostgresStopRepository {
	return &PostgresStopRepository{DB: db}
}

// Return all delivery stops stored in the database.
func (s *PostgresStopRepository) ListStops(ctx context.Context) (_ []domain.Location, err error) {
	defer obs.Time(ctx, "stops.repo.ListStops")(&err)

	if s.DB == nil {
		return nil, errors.New("stop repository: DB is nil")
	}

	query := `
	SELECT
		stop_id,
		name,
		address,
		lat,
		lng,
		demand_gallons
	FROM stops
	WHERE is_depot = FALSE
	ORDER BY stop_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stops: query stops table: %w", err)
	}
	defer rows.Close()

	stops := make([]domain.Location, 0, 64)
	for rows.Next() {
		var loc domain.Location
		err := rows.Scan(&loc.ID, &loc.Name, &loc.Address, &loc.Coords.Lat, &loc.Coords.Lng, &loc.DemandGallons)
		if err != nil {
			return nil, fmt.Errorf("list stops: scan row: %w", err)
		}
		stops = append(stops, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stops: row iteration: %w", err)
	}

	return stops, nil
}

// Return the configured depot. Exactly one depot row is expected.
func (s *PostgresStopRepository) GetDepot(ctx context.Context) (_ domain.Location, err error) {
	defer obs.Time(ctx, "stops.repo.GetDepot")(&err)

	if s.DB == nil {
		return domain.Location{}, errors.New("stop repository: DB is nil")
	}

	query := `
	SELECT
		stop_id,
		name,
		address,
		lat,
		lng,
		demand_gallons
	FROM stops
	WHERE is_depot = TRUE
	ORDER BY stop_id
	LIMIT 1;
	`
	var loc domain.Location
	err = s.DB.QueryRowContext(ctx, query).
		Scan(&loc.ID, &loc.Name, &loc.Address, &loc.Coords.Lat, &loc.Coords.Lng, &loc.DemandGallons)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Location{}, errors.New("get depot: no depot row configured")
	}
	if err != nil {
		return domain.Location{}, fmt.Errorf("get depot: query stops table: %w", err)
	}

	return loc, nil
}
