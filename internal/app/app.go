package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/astrointeract/astropulse/config"
	"github.com/astrointeract/astropulse/internal/api"
	"github.com/astrointeract/astropulse/internal/astro"
	"github.com/astrointeract/astropulse/internal/ephemeris"
	"github.com/astrointeract/astropulse/internal/geo"
	"github.com/astrointeract/astropulse/internal/service"
)

// redisOpener creates the Redis connection for the geocode cache.
// indirection for unit testing
var redisOpener = func(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Creates the ephemeris sidecar client (positions, houses, solar returns).
//   - Creates the geocoder with its cache (Redis when configured, in-memory otherwise).
//   - Wires the chart engine with its immutable configuration.
//   - Creates the service, HTTP handler and Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., the Redis connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// External boundaries: ephemeris sidecar and geocoder
	eph := ephemeris.NewClient(cfg.Ephemeris)

	var geocache geo.Cache
	cleanup := func() {}
	if cfg.Redis.Addr != "" {
		rdb, err := redisOpener(cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		geocache = geo.NewRedisCache(rdb, "geo")
		cleanup = func() { _ = rdb.Close() }
	} else {
		geocache = geo.NewMemoryCache(5 * time.Minute)
	}
	geocoder := geo.NewProvider(geo.NewNominatim(cfg.Geocoder), geocache, cfg.Geocoder.CacheTTL)

	// Chart engine (business logic core)
	engine := astro.NewEngine(astro.DefaultConfig(), eph, eph, geocoder)

	// Initialize service layer (business logic to HTTP boundary)
	svc := service.NewHoroscopeService(engine)

	// Initialize HTTP handler layer
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler, cfg.CORS.Origins)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(eph.Ping)
	healthHandler.Register(router)

	return router, cleanup, nil
}
