package env

import (
	"os"

	"crypto_luck/internal/config"
)

const logLevelEnvName = "LOG_LEVEL"

type loggerConfig struct {
	level string
}

func NewLoggerConfig() config.LoggerConfig {
	return &loggerConfig{level: os.Getenv(logLevelEnvName)}
}

func (cfg *loggerConfig) Level() string {
	return cfg.level
}
