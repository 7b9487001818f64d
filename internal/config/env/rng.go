package env

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"crypto_luck/internal/config"
)

const (
	serverSeedEnvName = "SERVER_SEED"
	rngSeedEnvName    = "RNG_SEED"
)

type rngConfig struct {
	serverSeed string
	seed       uint64
}

// NewRNGConfig читает сиды. Без RNG_SEED берётся текущее время
func NewRNGConfig() (config.RNGConfig, error) {
	seed := uint64(time.Now().UnixNano())
	if raw := os.Getenv(rngSeedEnvName); len(raw) != 0 {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rng seed: %w", err)
		}
		seed = v
	}

	return &rngConfig{
		serverSeed: os.Getenv(serverSeedEnvName),
		seed:       seed,
	}, nil
}

func (cfg *rngConfig) ServerSeed() string {
	return cfg.serverSeed
}

func (cfg *rngConfig) Seed() uint64 {
	return cfg.seed
}
