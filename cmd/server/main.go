package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"garden_backend/internal/app/di"
	"garden_backend/internal/app/router"
	"garden_backend/internal/feature/garden/adapters/catalog"
	"garden_backend/internal/platform/config"
	infradb "garden_backend/internal/platform/db"
	"garden_backend/internal/platform/logging"
	"garden_backend/internal/platform/metrics"
	infraredis "garden_backend/internal/platform/redis"
	"garden_backend/internal/shared/ratelimiter"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	dbCfg := infradb.LoadConfigFromEnv()
	db, err := infradb.Open(dbCfg, 30*time.Second)
	if err != nil {
		return err
	}
	defer func() {
		if err := infradb.Close(db); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()
	if dbCfg.RunMigrations {
		if err := infradb.Migrate(db, di.Models()...); err != nil {
			return err
		}
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	// Redis
	var rdb *redisv9.Client
	if redisCfg := infraredis.LoadConfigFromEnv(); redisCfg.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, redisCfg); err != nil {
			slog.Warn("Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	garden := di.NewGarden(db, rdb, cfg.PlantCacheTTL)
	seed(ctx, cfg, garden)

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set. Authenticated endpoints will fail until it is configured.")
	}

	engine := router.NewRouter(router.Deps{
		Gardens:            garden.Gardens,
		Beds:               garden.Beds,
		Plantings:          garden.Plantings,
		Plants:             garden.Plants,
		Auth:               di.NewAuthHandler(db, cfg.JWTSecret, cfg.JWTExpiration),
		DB:                 sqlDB,
		Metrics:            metrics.New("garden"),
		JWTSecret:          cfg.JWTSecret,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		TrustedProxies:     cfg.TrustedProxies,
		AuthLimiter:        ratelimiter.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "app", cfg.AppName, "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// seed loads the bundled plant catalog into an empty table and, when enabled,
// the demo bed. Failures are logged; the server still starts.
func seed(ctx context.Context, cfg config.Config, garden di.Garden) {
	if cfg.SeedPlants {
		plants, err := catalog.DefaultPlants()
		if err != nil {
			slog.Error("failed to read plant catalog", "error", err)
		} else if res, err := garden.Import.SeedPlants(ctx, plants); err != nil {
			slog.Error("failed to seed plants", "error", err)
		} else {
			slog.Info("plant catalog seeded", "created", res.Created, "skipped", res.Skipped, "failed", res.Failed)
		}
	}
	if cfg.SeedDemo {
		created, err := garden.Import.SeedDemo(ctx)
		if err != nil {
			slog.Error("failed to seed demo data", "error", err)
			return
		}
		slog.Info("demo data", "created", created)
	}
}
