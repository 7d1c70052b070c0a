package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	authmodule "github.com/KasumiMercury/primind-auth/internal/auth"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/repository"
	appconfig "github.com/KasumiMercury/primind-auth/internal/config"
	"github.com/KasumiMercury/primind-auth/internal/health"
	"github.com/KasumiMercury/primind-auth/internal/observability/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	obs, err := initObservability(ctx)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("failed to shut down observability", slog.String("error", err.Error()))
		}
	}()

	appCfg, err := appconfig.Load()
	if err != nil {
		return fmt.Errorf("load app config: %w", err)
	}

	checker := health.NewChecker(Version)

	redisClient, closeRedis, err := openRedis(ctx, appCfg, checker)
	if err != nil {
		return err
	}
	defer closeRedis()

	db, closeDB, err := openPostgres(ctx, appCfg, checker)
	if err != nil {
		return err
	}
	defer closeDB()

	authHandlers, err := authmodule.NewHTTPHandler(ctx, authmodule.NewRepositories(redisClient, db), authmodule.WebOptions{
		BackchannelLogoutRPS:   appCfg.Server.BackchannelLogoutRPS,
		BackchannelLogoutBurst: appCfg.Server.BackchannelLogoutBurst,
		TrustedProxies:         appCfg.Server.TrustedProxies,
	})
	if err != nil {
		return fmt.Errorf("init auth module: %w", err)
	}

	mux := http.NewServeMux()
	authHandlers.Register(mux)
	mux.HandleFunc("GET /health/live", checker.LiveHandler)
	mux.HandleFunc("GET /health/ready", checker.ReadyHandler)

	server := &http.Server{
		Addr:              appCfg.Server.Addr(),
		Handler:           middleware.PanicRecoveryHTTP(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting http server", slog.String("addr", server.Addr), slog.String("version", Version))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutting down http server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

func openRedis(ctx context.Context, appCfg *appconfig.Config, checker *health.Checker) (*redis.Client, func(), error) {
	if !appCfg.Persistence.UseRedis() {
		slog.Warn("REDIS_ADDR not set; oidc params and sessions are kept in memory")

		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     appCfg.Persistence.RedisAddr,
		Password: appCfg.Persistence.RedisPassword,
		DB:       appCfg.Persistence.RedisDB,
	})

	closeFn := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}

	if err := client.Ping(ctx).Err(); err != nil {
		closeFn()

		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}

	checker.Register("redis", func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})

	return client, closeFn, nil
}

func openPostgres(ctx context.Context, appCfg *appconfig.Config, checker *health.Checker) (*gorm.DB, func(), error) {
	if !appCfg.Persistence.UsePostgres() {
		slog.Warn("POSTGRES_DSN not set; users are kept in memory")

		return nil, func() {}, nil
	}

	db, err := gorm.Open(postgres.Open(appCfg.Persistence.PostgresDSN), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("obtain postgres handle: %w", err)
	}

	closeFn := func() {
		if err := sqlDB.Close(); err != nil {
			slog.Warn("failed to close postgres connection", slog.String("error", err.Error()))
		}
	}

	if err := repository.Migrate(ctx, db); err != nil {
		closeFn()

		return nil, nil, fmt.Errorf("migrate postgres: %w", err)
	}

	checker.Register("postgres", sqlDB.PingContext)

	return db, closeFn, nil
}
