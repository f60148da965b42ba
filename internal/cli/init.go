// Package cli provides common initialization for the terminal
// frontend: env loading, logging, configuration, and store wiring.
package cli

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/rasikaapte/myfinance/internal/backend"
	"github.com/rasikaapte/myfinance/internal/config"
	"github.com/rasikaapte/myfinance/internal/log"
	"github.com/rasikaapte/myfinance/internal/store"
)

// App bundles the four record stores and the resources behind them.
type App struct {
	Config     *config.Config
	Logger     *log.Logger
	Expenses   *store.Expenses
	Income     *store.Income
	Statements *store.Statements
	Portfolio  *store.Portfolio

	cleanup backend.CleanupFunc
}

// LoadEnvFile loads the optional .env file for local development.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging and installs it as the
// process default.
func SetupLogger(cfg *config.Config) *log.Logger {
	logger := log.New(log.ComponentApp, cfg.LogLevel)
	log.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration, exiting the process on
// validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// NewApp opens the configured backend and loads all four stores.
func NewApp(ctx context.Context, cfg *config.Config, logger *log.Logger) (*App, error) {
	st, cleanup, err := backend.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	clock := time.Now
	return &App{
		Config:     cfg,
		Logger:     logger,
		Expenses:   store.NewExpenses(ctx, st, logger, clock),
		Income:     store.NewIncome(ctx, st, logger, clock),
		Statements: store.NewStatements(ctx, st, logger, clock),
		Portfolio:  store.NewPortfolio(ctx, st, logger, clock),
		cleanup:    cleanup,
	}, nil
}

// Close releases backend resources.
func (a *App) Close() error {
	if a.cleanup != nil {
		return a.cleanup()
	}
	return nil
}
