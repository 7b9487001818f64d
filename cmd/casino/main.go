package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"crypto_luck/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.NewApp().Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error running casino: %v\n", err)
		stop()
		os.Exit(1)
	}
}
