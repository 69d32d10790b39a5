package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	drinkHTTP "github.com/dvillalba/drinks-manager/internal/drink/delivery/http"
	drinkrepo "github.com/dvillalba/drinks-manager/internal/drink/repository"
	reportHTTP "github.com/dvillalba/drinks-manager/internal/report/delivery/http"
	saleHTTP "github.com/dvillalba/drinks-manager/internal/sale/delivery/http"
	salerepo "github.com/dvillalba/drinks-manager/internal/sale/repository"
	settingsHTTP "github.com/dvillalba/drinks-manager/internal/settings/delivery/http"
	supplyHTTP "github.com/dvillalba/drinks-manager/internal/supply/delivery/http"
	supplyrepo "github.com/dvillalba/drinks-manager/internal/supply/repository"
	"github.com/dvillalba/drinks-manager/pkg/database"
	"github.com/dvillalba/drinks-manager/pkg/kvstore"
	"github.com/dvillalba/drinks-manager/pkg/logger"
	"github.com/dvillalba/drinks-manager/pkg/middleware"
	"github.com/dvillalba/drinks-manager/pkg/tracing"
)

func main() {
	// A .env file is optional, the environment itself works too
	_ = godotenv.Load()

	serviceName := getEnv("SERVICE_NAME", "drinks-manager")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, getEnv("LOG_LEVEL", "info"), isDevelopment)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting drinks manager")

	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}()

	store, cleanup, err := newStore()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize storage")
	}
	defer cleanup()

	traced := kvstore.WithTracing(store)

	supplyRepo := supplyrepo.NewStoreSupplyRepository(traced)
	drinkRepo := drinkrepo.NewStoreDrinkRepository(traced)
	saleRepo := salerepo.NewStoreSaleRepository(traced)

	router := mux.NewRouter()
	router.Use(middleware.Tracing, middleware.Logging, middleware.Metrics)

	supplyHTTP.NewSupplyHandler(supplyRepo).RegisterRoutes(router)
	drinkHTTP.NewDrinkHandler(drinkRepo).RegisterRoutes(router)
	saleHTTP.NewSaleHandler(saleRepo, drinkRepo).RegisterRoutes(router)
	reportHTTP.NewReportHandler(saleRepo, supplyRepo).RegisterRoutes(router)
	settingsHTTP.NewSettingsHandler(supplyRepo, drinkRepo, saleRepo).RegisterRoutes(router)

	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:    ":" + httpPort,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to shut down HTTP server")
	}
}

// newStore builds the persistence backend selected by STORAGE_DRIVER.
// The file driver is the default; memory, redis and postgres are also
// supported. The returned cleanup releases any backend resources.
func newStore() (kvstore.Store, func(), error) {
	noop := func() {}

	switch driver := getEnv("STORAGE_DRIVER", "file"); driver {
	case "file":
		dataDir := getEnv("DATA_DIR", "./data")
		store, err := kvstore.NewFileStore(dataDir)
		if err != nil {
			return nil, noop, err
		}
		logger.Logger.Info().Str("driver", driver).Str("data_dir", dataDir).Msg("Storage initialized")
		return store, noop, nil

	case "memory":
		logger.Logger.Info().Str("driver", driver).Msg("Storage initialized")
		return kvstore.NewMemoryStore(), noop, nil

	case "redis":
		addr := getEnv("REDIS_ADDR", "localhost:6379")
		db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
		if err != nil {
			return nil, noop, err
		}
		store, err := kvstore.NewRedisStore(addr, getEnv("REDIS_PASSWORD", ""), db)
		if err != nil {
			return nil, noop, err
		}
		logger.Logger.Info().Str("driver", driver).Str("addr", addr).Msg("Storage initialized")
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to close redis connection")
			}
		}, nil

	case "postgres":
		db, err := database.NewGormConnection(database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "drinksdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		})
		if err != nil {
			return nil, noop, err
		}
		store, err := kvstore.NewPostgresStore(db)
		if err != nil {
			return nil, noop, err
		}
		logger.Logger.Info().Str("driver", driver).Msg("Storage initialized")
		cleanup := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return store, cleanup, nil

	default:
		logger.Logger.Warn().Str("driver", driver).Msg("Unknown storage driver, falling back to memory")
		return kvstore.NewMemoryStore(), noop, nil
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
