package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Environment string
	Ledger      LedgerConfig
	Logging     LoggingConfig
	Metrics     MetricsConfig
}

// LedgerConfig holds the defaults applied to newly opened accounts
type LedgerConfig struct {
	InterestBonusRate decimal.Decimal
	SavingsFee        decimal.Decimal
	DefaultMinBalance decimal.Decimal
}

type LoggingConfig struct {
	Level  string
	Format string
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. A missing default .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("failed to load env files %v: %w", envFiles, err)
	}

	config := &Config{
		Environment: getEnv("APP_ENV", "development"),
		Ledger: LedgerConfig{
			InterestBonusRate: getDecimalEnv("LEDGER_INTEREST_BONUS_RATE", decimal.RequireFromString("0.05")),
			SavingsFee:        getDecimalEnv("LEDGER_SAVINGS_FEE", decimal.NewFromInt(5)),
			DefaultMinBalance: getDecimalEnv("LEDGER_DEFAULT_MIN_BALANCE", decimal.Zero),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
		Metrics: MetricsConfig{
			Enabled:   getBoolEnv("METRICS_ENABLED", true),
			Namespace: getEnv("METRICS_NAMESPACE", "bank_ledger"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings no account could be opened with
func (c *Config) Validate() error {
	var errs []error
	if c.Ledger.InterestBonusRate.IsNegative() {
		errs = append(errs, fmt.Errorf("LEDGER_INTEREST_BONUS_RATE must not be negative, got %s", c.Ledger.InterestBonusRate))
	}
	if c.Ledger.SavingsFee.IsNegative() {
		errs = append(errs, fmt.Errorf("LEDGER_SAVINGS_FEE must not be negative, got %s", c.Ledger.SavingsFee))
	}
	if c.Ledger.DefaultMinBalance.IsNegative() {
		errs = append(errs, fmt.Errorf("LEDGER_DEFAULT_MIN_BALANCE must not be negative, got %s", c.Ledger.DefaultMinBalance))
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Logging.Format))
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		errs = append(errs, errors.New("METRICS_NAMESPACE is required when metrics are enabled"))
	}
	return errors.Join(errs...)
}

// SlogLevel parses Level
func (c LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL %q is not a valid level: %w", c.Level, err)
	}
	return level, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(strings.TrimSpace(value)); err == nil {
			return d
		}
	}
	return defaultValue
}
