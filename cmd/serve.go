package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"civic/internal/api"
	"civic/internal/api/handler/v1handler"
	"civic/internal/config"
	"civic/internal/engagement"
	"civic/internal/identity"
	"civic/internal/worker"
	"civic/pkg/logger"
	"civic/pkg/ratelimit"
	"civic/pkg/storage"
	"civic/pkg/storage/postgres"
	"civic/pkg/storage/redis"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupWorker starts the river workers. They run on a context detached from
// the signal so that the stop function can drain running jobs.
func setupWorker(ctx context.Context,
	cfg *config.Config,
	strg *postgres.PgSQL,
	identities identity.Service) func(ctx context.Context) {
	client, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, identities, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}
	logger.Info(ctx, "workers started", zap.Int("maxWorkers", cfg.Worker.MaxWorkers))

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := client.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

// getRateLimiter picks the rate limit store. The redis store is shared between
// replicas; the memory store only limits a single process.
func getRateLimiter(ctx context.Context, cfg *config.Config, rds *redis.Redis) (*ratelimit.Limiter, error) {
	if cfg.RateLimit.Disabled {
		return nil, nil
	}

	proxies, err := ratelimit.ParseProxies(cfg.RateLimit.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("could not parse trusted proxies: %w", err)
	}

	var store ratelimit.Store
	switch {
	case cfg.RateLimit.Backend == "redis" && rds != nil:
		store = ratelimit.NewRedisStore(rds.Client)
	case cfg.RateLimit.Backend == "redis":
		logger.Warn(ctx, "redis rate limit backend requested without redis, falling back to memory")
		store = ratelimit.NewMemoryStore()
	default:
		store = ratelimit.NewMemoryStore()
	}

	return ratelimit.NewLimiter(store, cfg.RateLimit.Requests, cfg.RateLimit.Window, "v1:").
		WithTrustedProxies(proxies), nil
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			rds, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()

			checks := map[string]api.Pinger{"postgres": strg}
			var visits storage.VisitStorage
			if rds != nil {
				visits = rds
				checks["redis"] = rds
			}

			limiter, err := getRateLimiter(ctx, cfg, rds)
			if err != nil {
				logger.Fatal(ctx, "could not set up rate limiting", zap.Error(err))
			}

			identities := identity.New(strg, identity.NewOptions(cfg))
			engagements := engagement.New(strg, visits)

			stopWorker := setupWorker(ctx, cfg, strg, identities)
			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Identity:   identities,
					Engagement: engagements,
					Limiter:    limiter,
				},
				Checks: checks,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
		},
	}

	return cmd
}
