package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"crypto_luck/internal/config"
	"crypto_luck/internal/logger"
	"crypto_luck/internal/metrics"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// Run поднимает HTTP сервер и ждёт отмены ctx
func (s *App) Run(ctx context.Context) error {
	loadErr := config.Load(".env")
	s.initServiceProvider()

	if err := logger.Init(s.ServiceProvider.LoggerCfg().Level()); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	if loadErr != nil {
		logger.Log.Warn("skip .env", zap.Error(loadErr))
	}

	metrics.Init()
	// Клиенту суммы уходят числами
	decimal.MarshalJSONWithoutQuotes = true

	defer s.ServiceProvider.Close()

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(ctx),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	logger.Log.Info("starting server", zap.String("addr", srv.Addr))

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	logger.Log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
