package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/blockledger/internal/config"
	"github.com/gabapcia/blockledger/internal/handlers/cli"
	"github.com/gabapcia/blockledger/internal/ledger"
	"github.com/gabapcia/blockledger/internal/pkg/logger"
	"github.com/gabapcia/blockledger/internal/pkg/telemetry"
	"github.com/gabapcia/blockledger/internal/pkg/validator"
	"github.com/gabapcia/blockledger/internal/walletregistry"
)

// shutdownTimeout bounds the flush of pending telemetry on exit.
const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run wires config, telemetry, logging, the ledger and the registry, then hands
// control to the CLI. Deferred flushes run before main exits.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}

		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	// stdout belongs to the shell.
	if err := logger.Init(cfg.LogLevel, logger.WithOutput(os.Stderr)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	validator.Init()

	digest, err := ledger.ParseDigest(cfg.Digest)
	if err != nil {
		logger.Fatal(ctx, "invalid digest", "error", err)
	}

	l := ledger.New(ledger.WithDigest(digest))
	wr := walletregistry.New(l)

	logger.Info(ctx, "ledger ready", "ledger.digest", string(digest), "service.name", cfg.ServiceName)

	return cli.Run(ctx, cli.RunConfig{
		Currency:              cfg.Currency,
		DefaultInitialBalance: cfg.DefaultInitialBalance,
		InputAttempts:         cfg.InputAttempts,
	}, l, wr)
}
