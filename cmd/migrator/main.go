package main

import (
	"flag"
	"fmt"
	"os"

	"crypto_luck/internal/config"
	"crypto_luck/internal/config/env"
	"crypto_luck/internal/repository/migrations"
)

func main() {
	down := flag.Bool("down", false, "roll back all migrations")
	envPath := flag.String("env", ".env", "path to .env file")
	flag.Parse()

	if err := run(*envPath, *down); err != nil {
		fmt.Fprintf(os.Stderr, "error running migrator: %v\n", err)
		os.Exit(1)
	}
}

func run(envPath string, down bool) error {
	if err := config.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "skip %s: %v\n", envPath, err)
	}

	cfg, err := env.NewPGConfig()
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	if down {
		return migrations.Down(cfg.DSN())
	}
	return migrations.Up(cfg.DSN())
}
