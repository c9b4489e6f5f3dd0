package main

import (
	"context"
	"flag"
	"log"

	"github.com/paris-metro/planner/internal/config"
	"github.com/paris-metro/planner/internal/db"
	"github.com/paris-metro/planner/internal/metro"
)

// networkStore is the store surface the importer needs. Both the SQLite
// and PostgreSQL stores satisfy it.
type networkStore interface {
	EnsureSchema(ctx context.Context) error
	SaveNetwork(ctx context.Context, source string, n *metro.Network) (string, error)
	Close() error
}

func main() {
	cfg := config.Load()

	// Command line flags; environment variables supply the defaults
	networkPath := flag.String("network", "metro.txt", "Path to the network description file to import")
	databasePath := flag.String("database", cfg.SQLiteDatabase, "Path to SQLite database")
	databaseURL := flag.String("database-url", cfg.DatabaseURL, "PostgreSQL connection string (takes precedence over -database)")
	flag.Parse()

	network, err := metro.LoadFile(*networkPath)
	if err != nil {
		log.Fatalf("Failed to load network: %v", err)
	}
	log.Printf("Parsed %s: %d stations, %d trips", *networkPath, len(network.Stations), len(network.Trips))

	ctx := context.Background()

	var store networkStore
	if *databaseURL != "" {
		store, err = db.NewPostgres(ctx, *databaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
	} else {
		store, err = db.Connect(*databasePath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
	}
	defer store.Close()

	// Ensure schema exists (creates tables if needed)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	importID, err := store.SaveNetwork(ctx, *networkPath, network)
	if err != nil {
		log.Fatalf("Failed to import network: %v", err)
	}

	log.Printf("Import complete: %d stations, %d trips (import %s)",
		len(network.Stations), len(network.Trips), importID)
}
