package persistence

import (
	"fmt"
	"os"
	"strconv"
)

const (
	postgresDSNEnv   = "POSTGRES_DSN"
	redisAddrEnv     = "REDIS_ADDR"
	redisPasswordEnv = "REDIS_PASSWORD"
	redisDBEnv       = "REDIS_DB"

	defaultRedisDB = 0
)

// Config selects the storage backends. Empty PostgresDSN or RedisAddr means
// the corresponding repositories are kept in memory.
type Config struct {
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func Load() (*Config, error) {
	redisDB := defaultRedisDB

	if raw := os.Getenv(redisDBEnv); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRedisDB, raw)
		}

		redisDB = parsed
	}

	cfg := &Config{
		PostgresDSN:   os.Getenv(postgresDSNEnv),
		RedisAddr:     os.Getenv(redisAddrEnv),
		RedisPassword: os.Getenv(redisPasswordEnv),
		RedisDB:       redisDB,
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigNil
	}

	if c.RedisDB < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRedisDB, c.RedisDB)
	}

	return nil
}

func (c *Config) UsePostgres() bool {
	return c.PostgresDSN != ""
}

func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}
