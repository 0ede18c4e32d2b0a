package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/StrictHornet/keep-agent/adapter/cli"
	"github.com/StrictHornet/keep-agent/internal/app"
	"github.com/StrictHornet/keep-agent/pkg/config"
	"github.com/StrictHornet/keep-agent/pkg/observability"
)

func main() {
	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{AppEnv: "development"}
	}

	logCfg := observability.DefaultLogConfig()
	if cfg.IsProduction() {
		logCfg = observability.ProductionLogConfig()
	}
	if cfg.LogLevel != "" {
		logCfg.Level = observability.LogLevel(cfg.LogLevel)
	}
	logger := observability.NewLogger(logCfg)
	cli.SetLogger(logger)

	container := app.NewContainer(cfg, logger)
	cli.SetApp(cli.NewApp(
		container.Config,
		container.Loader,
		container.Classifier,
		container.Notifier,
		container.ProcessNotesHandler,
	))

	// Execute CLI
	cli.Execute(ctx)
}
