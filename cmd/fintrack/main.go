// Command fintrack drives the finance API from the terminal. It signs in,
// keeps the session token in the OS keychain and prints each screen's data.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fintrack/internal/config"
	"fintrack/internal/logger"
	"fintrack/internal/session"
	"fintrack/internal/transport"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	tokens := session.NewTokenStorage(session.NewKeyringStore(cfg.KeyringService))
	client := transport.NewClient(transport.Options{
		BaseURL:    cfg.APIURL(),
		Platform:   cfg.ClientPlatform,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
		Tokens:     tokens,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newApp(client, tokens, os.Stdout).dispatch(ctx, args)
}
