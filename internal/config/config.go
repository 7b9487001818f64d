package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type RedisConfig interface {
	Addr() string
	Password() string
	DB() int
}

type LoggerConfig interface {
	Level() string
}

// RNGConfig - источник случайности. Пустой ServerSeed включает PRNG с сидом Seed
type RNGConfig interface {
	ServerSeed() string
	Seed() uint64
}

// GamesConfig - игровые параметры из config.yaml
type GamesConfig interface {
	StartingBalance() decimal.Decimal
	HistoryLimit() int
	RecentGames() int
	DealerStand() int
	RouletteNumberPayout() decimal.Decimal
	RouletteEvenMoneyPayout() decimal.Decimal
	SlotSymbols() []string
	SlotPayouts() map[string]decimal.Decimal
	RTPWindow() int
}
