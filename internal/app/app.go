// Package app wires configuration, logging, metrics and the ledger services.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"bank-ledger/internal/config"
	"bank-ledger/internal/models"
	"bank-ledger/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	Config     *config.Config
	Logger     *slog.Logger
	Registry   *prometheus.Registry
	Metrics    services.MetricsRecorderInterface
	Observer   models.EventObserver
	Accounts   services.AccountServiceInterface
	Statements services.StatementServiceInterface
}

// New builds the application from cfg. Logs go to logOutput and metrics to
// the app's own Registry; Metrics is nil when they are disabled.
func New(cfg *config.Config, logOutput io.Writer) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := services.NewLogger(cfg.Logging, logOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	a := &App{
		Config:   cfg,
		Logger:   logger,
		Registry: prometheus.NewRegistry(),
	}

	observers := []models.EventObserver{services.NewEventLogger(logger)}
	if cfg.Metrics.Enabled {
		metrics := services.NewPrometheusMetrics(cfg.Metrics.Namespace, a.Registry)
		a.Metrics = metrics
		observers = append(observers, metrics)
	}

	a.Observer = services.NewMultiObserver(observers...)
	a.Accounts = services.NewAccountService(cfg.Ledger, a.Observer, logger)
	a.Statements = services.NewStatementService()

	logger.Info("ledger initialized",
		"environment", cfg.Environment,
		"metrics_enabled", cfg.Metrics.Enabled,
		"default_min_balance", cfg.Ledger.DefaultMinBalance.String())

	return a, nil
}

// NewFromEnv loads the configuration from envFiles and the environment
func NewFromEnv(logOutput io.Writer, envFiles ...string) (*App, error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return New(cfg, logOutput)
}
