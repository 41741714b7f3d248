package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fintrack/internal/config"
	"fintrack/internal/logger"
	"fintrack/internal/stubapi"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Named("stubapi")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	stub := stubapi.New(stubapi.Options{
		JWTSecret: cfg.StubJWTSecret,
		TokenTTL:  cfg.StubJWTExpiresIn,
		RateLimit: cfg.StubRateLimit,
		Origins:   cfg.StubOrigins,
		Prices:    randomWalk,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.StubPort,
		Handler:           stub.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infow("starting stub API", "port", cfg.StubPort, "rate_limit", cfg.StubRateLimit)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Infow("shutting down stub API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

// randomWalk moves a price by up to 5% in either direction.
func randomWalk(_ string, last decimal.Decimal) decimal.Decimal {
	step := decimal.NewFromFloat(rand.Float64()*0.1 - 0.05)
	return last.Mul(decimal.NewFromInt(1).Add(step)).Round(8)
}
