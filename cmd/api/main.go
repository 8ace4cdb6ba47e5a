// Package main is the entry point for the tool rental API server.
// It wires together configuration, the tool catalog, the receipt cache and
// the HTTP router.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/aoideee/toolrenter/internal/cache"
	"github.com/aoideee/toolrenter/internal/data"

	_ "github.com/lib/pq" // Register the PostgreSQL driver with database/sql.
)

// appVersion is the current version of the API, shown in logs.
const appVersion = "1.0.0"

// serverConfig holds all the values that can be tweaked at startup via
// command-line flags. Defaults come from TOOLRENTER_* environment variables.
type serverConfig struct {
	port         int    // TCP port the HTTP server listens on (default 4000)
	environment  string // Runtime environment: development, staging, or production
	catalog      string // Path to a tools CSV file; empty means the embedded catalog
	cacheEntries int    // Receipts held by the in-memory cache when Redis is not configured
	db          struct {
		dsn string // PostgreSQL DSN; when set the catalog is read from the tools table
	}
	redis   struct {
		addr string        // Redis address for the receipt cache; empty means in-memory
		ttl  time.Duration // Lifetime of cached receipts
	}
	limiter struct {
		rps     float64 // Requests per second allowed per client IP
		burst   int     // Burst capacity per client IP
		enabled bool
	}
}

// applicationDependencies bundles every shared resource that HTTP handlers need.
type applicationDependencies struct {
	config   serverConfig       // Server configuration loaded from flags
	logger   *slog.Logger       // Structured logger that writes to stdout
	catalog  *data.Catalog      // Read-only tool catalog, loaded once at startup
	receipts cache.ReceiptCache // Finalized receipts keyed by input set
}

func main() {
	// A missing .env file is fine; the environment and flags still apply.
	_ = godotenv.Load()

	var settings serverConfig

	flag.IntVar(&settings.port, "port", envInt("TOOLRENTER_PORT", 4000), "Server port")
	flag.StringVar(&settings.environment, "env", envString("TOOLRENTER_ENV", "development"), "Environment(development|staging|production)")
	flag.StringVar(&settings.catalog, "catalog", envString("TOOLRENTER_CATALOG", ""), "Tools CSV file (default: embedded catalog)")
	flag.StringVar(&settings.db.dsn, "db-dsn", envString("TOOLRENTER_DB_DSN", ""), "PostgreSQL DSN for the tools table")
	flag.StringVar(&settings.redis.addr, "redis-addr", envString("TOOLRENTER_REDIS_ADDR", ""), "Redis address for the receipt cache")
	flag.IntVar(&settings.cacheEntries, "cache-entries", envInt("TOOLRENTER_CACHE_ENTRIES", cache.DefaultMemoryEntries), "Receipts held in memory when Redis is not configured")
	flag.DurationVar(&settings.redis.ttl, "redis-ttl", 24*time.Hour, "Lifetime of cached receipts")
	flag.Float64Var(&settings.limiter.rps, "limiter-rps", 2, "Rate limiter maximum requests per second")
	flag.IntVar(&settings.limiter.burst, "limiter-burst", 4, "Rate limiter maximum burst")
	flag.BoolVar(&settings.limiter.enabled, "limiter-enabled", true, "Enable rate limiter")

	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	catalog, err := loadCatalog(settings)
	if err != nil {
		logger.Error("loading tool catalog", "error", err)
		os.Exit(1)
	}
	logger.Info("tool catalog loaded", "tools", catalog.Len())

	receipts, err := openReceiptCache(settings)
	if err != nil {
		logger.Error("connecting to receipt cache", "error", err)
		os.Exit(1)
	}

	app := &applicationDependencies{
		config:   settings,
		logger:   logger,
		catalog:  catalog,
		receipts: receipts,
	}

	if err := app.serve(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// loadCatalog reads the catalog from the database when a DSN is configured,
// otherwise from the CSV file, otherwise from the embedded default.
func loadCatalog(settings serverConfig) (*data.Catalog, error) {
	switch {
	case settings.db.dsn != "":
		db, err := openDB(settings)
		if err != nil {
			return nil, err
		}
		// The catalog is read once; the pool is not needed afterwards.
		defer db.Close()
		return data.NewModels(db).Tools.Catalog(context.Background())
	case settings.catalog != "":
		return data.LoadCatalogFile(settings.catalog)
	default:
		return data.DefaultCatalog(), nil
	}
}

func openReceiptCache(settings serverConfig) (cache.ReceiptCache, error) {
	if settings.redis.addr == "" {
		return cache.NewMemory(settings.cacheEntries), nil
	}

	rc := cache.NewRedis(settings.redis.addr, settings.redis.ttl)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rc.Ping(ctx); err != nil {
		rc.Close()
		return nil, err
	}
	return rc, nil
}

// openDB opens a PostgreSQL connection pool using the DSN stored in settings,
// then pings the database with a 5-second timeout to confirm it is reachable.
func openDB(settings serverConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", settings.db.dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
