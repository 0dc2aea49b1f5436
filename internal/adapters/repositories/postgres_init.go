package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"route-optimization-service/internal/domain"
)

// Initialize the Postgres schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStopsQuery := `
	CREATE TABLE IF NOT EXISTS stops (
		stop_id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		demand_gallons DOUBLE PRECISION NOT NULL DEFAULT 0,
		is_depot BOOLEAN NOT NULL DEFAULT FALSE
	);
	`

	createDepotIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_stops_is_depot
	ON stops(is_depot);
	`

	statements := []string{
		createStopsQuery,
		createDepotIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type StopSeed struct {
	StopID        string  `json:"stop_id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	DemandGallons float64 `json:"demand_gallons"`
	IsDepot       bool    `json:"is_depot"`
}

// Populate the database with stop data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed stops: read %q: %w", jsonPath, err)
	}

	var data []StopSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed stops: parse json: %w", err)
	}

	depots := 0
	rows := make([]StopSeed, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.StopID)
		if id == "" {
			return fmt.Errorf("seed stops: item at index %d: stop_id cannot be empty", i+1)
		}

		coords := domain.Coordinates{Lat: item.Lat, Lng: item.Lng}
		if !coords.Valid() {
			return fmt.Errorf("seed stops: stop_id=%q: coordinates out of range", id)
		}

		if item.IsDepot {
			depots++
		}
		item.StopID = id
		rows = append(rows, item)
	}

	if depots > 1 {
		return fmt.Errorf("seed stops: expected at most one depot row, got %d", depots)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed stops: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO stops (
		stop_id,
		name,
		address,
		lat,
		lng,
		demand_gallons,
		is_depot
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (stop_id) DO UPDATE SET
		name = EXCLUDED.name,
		address = EXCLUDED.address,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		demand_gallons = EXCLUDED.demand_gallons,
		is_depot = EXCLUDED.is_depot;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed stops: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range rows {
		if _, err := stmt.Exec(s.StopID, s.Name, s.Address, s.Lat, s.Lng, s.DemandGallons, s.IsDepot); err != nil {
			return fmt.Errorf("seed stops: insert stop_id=%q: %w", s.StopID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed stops: commit tx: %w", err)
	}

	return nil
}
