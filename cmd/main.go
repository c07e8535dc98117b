package main

import (
	"context"
	"errors"
	"os"

	"github.com/acrompton/shelf/internal/repositories"
	"github.com/acrompton/shelf/internal/services"
	"github.com/acrompton/shelf/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var gateway repositories.Gateway
	if db, err := shared.NewDatabase(config.Database.Path); err == nil {
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		gateway = repositories.NewSnapshotRepository(db)
	} else {
		logger.Warn("database unavailable", "path", config.Database.Path, "error", err)
	}

	var svc services.Completer
	if completions, err := services.NewCompletionService(config.API, nil); err == nil {
		svc = completions
	} else if !errors.Is(err, shared.ErrMissingAPIKey) {
		logger.Warn("completion service unavailable", "error", err)
	}

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Service: svc,
		Gateway: gateway,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "shelf",
		Usage:    "Track the albums you have and the ones you want",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
