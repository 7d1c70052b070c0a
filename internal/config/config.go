package config

import (
	"fmt"

	"github.com/KasumiMercury/primind-auth/internal/config/persistence"
	"github.com/KasumiMercury/primind-auth/internal/config/server"
)

type Config struct {
	Server      *server.Config
	Persistence *persistence.Config
}

func Load() (*Config, error) {
	serverCfg, err := server.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServerLoad, err)
	}

	persistenceCfg, err := persistence.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceLoad, err)
	}

	return &Config{
		Server:      serverCfg,
		Persistence: persistenceCfg,
	}, nil
}
