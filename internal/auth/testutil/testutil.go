// Package testutil starts throwaway backing stores for integration tests.
// Tests are skipped, not failed, when no container runtime is reachable.
package testutil

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	postgresmodule "github.com/testcontainers/testcontainers-go/modules/postgres"
	redismodule "github.com/testcontainers/testcontainers-go/modules/redis"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	redisImage    = "redis:8-alpine"
	postgresImage = "postgres:18-alpine"
)

// NewRedis returns a client for a fresh Redis container. The client and the
// container are released when the test ends.
func NewRedis(ctx context.Context, t *testing.T) *redis.Client {
	t.Helper()

	container := start(t, "redis", func() (*redismodule.RedisContainer, error) {
		return redismodule.Run(ctx, redisImage)
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Skipf("redis container has no endpoint: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("close redis client: %v", err)
		}
	})

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis container is not answering: %v", err)
	}

	return client
}

// NewPostgres returns a gorm handle on an empty database in a fresh
// PostgreSQL container. Schema setup is left to the caller.
func NewPostgres(ctx context.Context, t *testing.T) *gorm.DB {
	t.Helper()

	container := start(t, "postgres", func() (*postgresmodule.PostgresContainer, error) {
		return postgresmodule.Run(ctx,
			postgresImage,
			postgresmodule.WithDatabase("auth"),
			postgresmodule.WithUsername("auth"),
			postgresmodule.WithPassword("auth"),
			postgresmodule.BasicWaitStrategies(),
		)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Skipf("postgres container has no connection string: %v", err)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Skipf("connect to postgres container: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err != nil {
			return
		}

		if err := sqlDB.Close(); err != nil {
			t.Logf("close postgres pool: %v", err)
		}
	})

	return db
}

// start runs a container module and terminates it when the test ends, also
// when startup failed halfway. testcontainers panics when no Docker host can
// be found, so a panic skips the test like a returned error does.
func start[C testcontainers.Container](t *testing.T, name string, run func() (C, error)) (container C) {
	t.Helper()

	defer func() {
		if r := recover(); r != nil {
			t.Skipf("start %s container (docker unavailable?): %v", name, r)
		}
	}()

	container, err := run()
	terminateOnCleanup(t, container)

	if err != nil {
		t.Skipf("start %s container (docker unavailable?): %v", name, err)
	}

	return container
}

func terminateOnCleanup(t *testing.T, container testcontainers.Container) {
	t.Helper()

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})
}
