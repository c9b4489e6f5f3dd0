package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/paris-metro/planner/internal/config"
	"github.com/paris-metro/planner/internal/db"
	"github.com/paris-metro/planner/internal/handlers"
	"github.com/paris-metro/planner/internal/metro"
)

func main() {
	// Load .env from the working directory; absence is fine in production
	_ = godotenv.Load()

	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// The network is loaded once at startup and served read-only; requests
	// never touch the database except for health checks.
	var (
		network *metro.Network
		store   handlers.HealthStore
	)
	if cfg.DatabaseURL != "" {
		pg, err := db.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("failed to connect to PostgreSQL", zap.Error(err))
		}
		defer pg.Close()

		network, err = pg.LoadNetwork(ctx)
		if err != nil {
			logger.Fatal("failed to load network", zap.Error(err))
		}
		store = pg
	} else {
		sqlite, err := db.Connect(cfg.SQLiteDatabase)
		if err != nil {
			logger.Fatal("failed to open SQLite database", zap.Error(err))
		}
		defer sqlite.Close()

		network, err = sqlite.LoadNetwork(ctx)
		if err != nil {
			logger.Fatal("failed to load network", zap.Error(err))
		}
		store = sqlite
	}

	logger.Info("network loaded",
		zap.Int("stations", len(network.Stations)),
		zap.Int("trips", len(network.Trips)))

	stationHandler := handlers.NewStationHandler(network)
	routeHandler := handlers.NewRouteHandler(network)
	healthHandler := handlers.NewHealthHandler(store, network)

	// Setup router
	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// Health check endpoint with database connectivity test
	r.Get("/health", healthHandler.GetHealth)

	// Legacy health check endpoint (kept for probes that want a bare 200)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Planner API routes
	r.Get("/api/stations", stationHandler.GetStations)
	r.Get("/api/stations/search", stationHandler.SearchStations)
	r.Get("/api/route", routeHandler.GetRoute)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	logger.Info("API server starting", zap.String("port", cfg.Port))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
