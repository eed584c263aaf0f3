package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/devbm7/deadshot-stats/internal/config"
	"github.com/devbm7/deadshot-stats/internal/handlers"
	"github.com/devbm7/deadshot-stats/internal/logic"
	"github.com/devbm7/deadshot-stats/internal/store"
	"github.com/devbm7/deadshot-stats/internal/worker"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ClickHouse
	chOpts, err := clickhouse.ParseDSN(cfg.ClickHouseURL)
	if err != nil {
		sugar.Fatalw("invalid ClickHouse URL", "error", err)
	}
	ch, err := clickhouse.Open(chOpts)
	if err != nil {
		sugar.Fatalw("ClickHouse connection failed", "error", err)
	}
	defer ch.Close()

	// Postgres
	pg, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		sugar.Fatalw("Postgres connection failed", "error", err)
	}
	defer pg.Close()

	// Redis
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		sugar.Fatalw("invalid Redis URL", "error", err)
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	matchStore := store.NewMatchStore(ch, sugar)
	catalog := store.NewCatalog(pg, sugar)
	cache := store.NewCache(rdb, cfg.CacheTTL, sugar)

	if err := matchStore.InstallSchema(ctx); err != nil {
		sugar.Fatalw("match schema install failed", "error", err)
	}
	if err := catalog.InstallSchema(ctx); err != nil {
		sugar.Fatalw("catalog schema install failed", "error", err)
	}

	pool := worker.NewPool(worker.PoolConfig{
		WorkerCount:   cfg.WorkerCount,
		QueueSize:     cfg.QueueSize,
		BatchSize:     cfg.BatchSize,
		FlushInterval: cfg.FlushInterval,
		Store:         matchStore,
		Catalog:       catalog,
		Cache:         cache,
		Logger:        sugar,
	})
	if err := pool.Start(ctx); err != nil {
		sugar.Fatalw("worker pool start failed", "error", err)
	}

	statsService := logic.NewStatsService(matchStore, cache, cfg.RecentWindowDays, sugar)
	rosterService := logic.NewRosterService(matchStore, cfg.MaxOptimalPool, sugar)

	h := handlers.New(handlers.Config{
		WorkerPool:     pool,
		Stats:          statsService,
		Roster:         rosterService,
		Catalog:        catalog,
		Matches:        matchStore,
		Cache:          cache,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		sugar.Infow("server listening", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("server shutdown failed", "error", err)
	}

	// Flush whatever is still queued before the stores close.
	pool.Stop()
	sugar.Info("shutdown complete")
}
