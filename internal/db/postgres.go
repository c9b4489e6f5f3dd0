package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/paris-metro/planner/internal/metro"
	"github.com/paris-metro/planner/internal/models"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS stations (
	id       INTEGER PRIMARY KEY,
	line     TEXT NOT NULL,
	terminus BOOLEAN NOT NULL DEFAULT FALSE,
	name     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_stations_name ON stations (name);

CREATE TABLE IF NOT EXISTS trips (
	id        BIGSERIAL PRIMARY KEY,
	station_a INTEGER NOT NULL REFERENCES stations (id),
	station_b INTEGER NOT NULL REFERENCES stations (id),
	seconds   INTEGER NOT NULL CHECK (seconds >= 0)
);

CREATE TABLE IF NOT EXISTS network_imports (
	import_id     UUID PRIMARY KEY,
	source        TEXT NOT NULL,
	station_count INTEGER NOT NULL,
	trip_count    INTEGER NOT NULL,
	imported_at   TIMESTAMPTZ NOT NULL
);
`

// Postgres is the PostgreSQL-backed store, used when the planner shares a
// database with other deployments instead of a local SQLite file. It
// implements the same method set as DB.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to databaseURL and verifies the connection.
func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

// Ping verifies the pool is still alive.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// EnsureSchema creates the planner tables if they do not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveNetwork mirrors DB.SaveNetwork for PostgreSQL.
func (p *Postgres) SaveNetwork(ctx context.Context, source string, n *metro.Network) (string, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM trips"); err != nil {
		return "", fmt.Errorf("failed to clear trips: %w", err)
	}
	if _, err := tx.Exec(ctx, "DELETE FROM stations"); err != nil {
		return "", fmt.Errorf("failed to clear stations: %w", err)
	}

	for _, st := range n.Stations {
		if _, err := tx.Exec(ctx, `
			INSERT INTO stations (id, line, terminus, name)
			VALUES ($1, $2, $3, $4)`,
			st.ID, st.Line, st.Terminus, st.Name,
		); err != nil {
			return "", fmt.Errorf("failed to insert station %d: %w", st.ID, err)
		}
	}

	for i, tr := range n.Trips {
		if _, err := tx.Exec(ctx, `
			INSERT INTO trips (station_a, station_b, seconds)
			VALUES ($1, $2, $3)`,
			tr.A, tr.B, tr.Seconds,
		); err != nil {
			return "", fmt.Errorf("failed to insert trip %d: %w", i, err)
		}
	}

	importID := uuid.New()
	if _, err := tx.Exec(ctx, `
		INSERT INTO network_imports (import_id, source, station_count, trip_count, imported_at)
		VALUES ($1, $2, $3, $4, $5)`,
		importID, source, len(n.Stations), len(n.Trips), time.Now().UTC(),
	); err != nil {
		return "", fmt.Errorf("failed to record import: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to commit import: %w", err)
	}

	return importID.String(), nil
}

// LoadNetwork mirrors DB.LoadNetwork for PostgreSQL.
func (p *Postgres) LoadNetwork(ctx context.Context) (*metro.Network, error) {
	rows, err := p.pool.Query(ctx, `
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
		if err := rows.Scan(&st.ID, &st.Line, &st.Terminus, &st.Name); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stations: %w", err)
	}
	if len(stations) == 0 {
		return nil, ErrNoNetwork
	}

	tripRows, err := p.pool.Query(ctx, `
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

// LastImport mirrors DB.LastImport for PostgreSQL.
func (p *Postgres) LastImport(ctx context.Context) (*models.ImportInfo, error) {
	var (
		info       models.ImportInfo
		importID   uuid.UUID
		importedAt time.Time
	)
	err := p.pool.QueryRow(ctx, `
		SELECT import_id, source, station_count, trip_count, imported_at
		FROM network_imports
		ORDER BY imported_at DESC
		LIMIT 1`).Scan(&importID, &info.Source, &info.StationCount, &info.TripCount, &importedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query last import: %w", err)
	}

	info.ID = importID.String()
	info.ImportedAt = importedAt

	return &info, nil
}
