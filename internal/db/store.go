package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/paris-metro/planner/internal/metro"
	"github.com/paris-metro/planner/internal/models"
)

// ErrNoNetwork is returned by LoadNetwork when no import has run yet.
var ErrNoNetwork = errors.New("no network in database")

// SaveNetwork replaces the stored network with n inside a single
// transaction and records a provenance row. Trips are inserted in
// registry order so a later load rebuilds the exact same network.
// Returns the new import id.
func (db *DB) SaveNetwork(ctx context.Context, source string, n *metro.Network) (string, error) {
	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Trips reference stations, so they go first.
	if _, err := tx.ExecContext(ctx, "DELETE FROM trips"); err != nil {
		return "", fmt.Errorf("failed to clear trips: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM stations"); err != nil {
		return "", fmt.Errorf("failed to clear stations: %w", err)
	}

	stationStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO stations (id, line, terminus, name)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare station insert: %w", err)
	}
	defer stationStmt.Close()

	for _, st := range n.Stations {
		terminus := 0
		if st.Terminus {
			terminus = 1
		}
		if _, err := stationStmt.ExecContext(ctx, st.ID, st.Line, terminus, st.Name); err != nil {
			return "", fmt.Errorf("failed to insert station %d: %w", st.ID, err)
		}
	}

	tripStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trips (station_a, station_b, seconds)
		VALUES (?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare trip insert: %w", err)
	}
	defer tripStmt.Close()

	for i, tr := range n.Trips {
		if _, err := tripStmt.ExecContext(ctx, tr.A, tr.B, tr.Seconds); err != nil {
			return "", fmt.Errorf("failed to insert trip %d: %w", i, err)
		}
	}

	importID := uuid.New().String()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO network_imports (import_id, source, station_count, trip_count, imported_at)
		VALUES (?, ?, ?, ?, ?)`,
		importID, source, len(n.Stations), len(n.Trips), time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return "", fmt.Errorf("failed to record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit import: %w", err)
	}

	return importID, nil
}

// LoadNetwork reads the stored network back and revalidates it. Trips are
// read in id order, which is the order they were imported in.
func (db *DB) LoadNetwork(ctx context.Context) (*metro.Network, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, line, terminus, name
		FROM stations
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var stations []metro.Station
	for rows.Next() {
		var st metro.Station
		var terminus int
		if err := rows.Scan(&st.ID, &st.Line, &terminus, &st.Name); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		st.Terminus = terminus == 1
		stations = append(stations, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stations: %w", err)
	}
	if len(stations) == 0 {
		return nil, ErrNoNetwork
	}

	tripRows, err := db.conn.QueryContext(ctx, `
		SELECT station_a, station_b, seconds
		FROM trips
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer tripRows.Close()

	var trips []metro.Trip
	for tripRows.Next() {
		var tr metro.Trip
		if err := tripRows.Scan(&tr.A, &tr.B, &tr.Seconds); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, tr)
	}
	if err := tripRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trips: %w", err)
	}

	n, err := metro.NewNetwork(stations, trips)
	if err != nil {
		return nil, fmt.Errorf("stored network is invalid: %w", err)
	}
	return n, nil
}

// LastImport returns provenance for the most recent import, or nil when
// nothing has been imported yet.
func (db *DB) LastImport(ctx context.Context) (*models.ImportInfo, error) {
	row := db.conn.QueryRowContext(ctx, `
		SELECT import_id, source, station_count, trip_count, imported_at
		FROM network_imports
		ORDER BY imported_at DESC, rowid DESC
		LIMIT 1`)

	var info models.ImportInfo
	var importedAt string
	if err := row.Scan(&info.ID, &info.Source, &info.StationCount, &info.TripCount, &importedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query last import: %w", err)
	}

	t, err := time.Parse(time.RFC3339, importedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse import timestamp %q: %w", importedAt, err)
	}
	info.ImportedAt = t

	return &info, nil
}
