package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bank-ledger/internal/config"
	"bank-ledger/internal/models"
	"bank-ledger/internal/services"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "testing",
		Ledger: config.LedgerConfig{
			InterestBonusRate: decimal.RequireFromString("0.05"),
			SavingsFee:        decimal.NewFromInt(5),
			DefaultMinBalance: decimal.Zero,
		},
		Logging: config.LoggingConfig{Level: "info", Format: "json"},
		Metrics: config.MetricsConfig{Enabled: true, Namespace: "bank_ledger"},
	}
}

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}

	a, err := New(testConfig(), buf)

	require.NoError(t, err)
	assert.NotNil(t, a.Logger)
	assert.NotNil(t, a.Metrics)
	assert.NotNil(t, a.Accounts)
	assert.NotNil(t, a.Statements)
	assert.Contains(t, buf.String(), "ledger initialized")
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil, &bytes.Buffer{})
	assert.Error(t, err)

	cfg := testConfig()
	cfg.Ledger.SavingsFee = decimal.NewFromInt(-1)
	_, err = New(cfg, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestNew_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false

	a, err := New(cfg, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Nil(t, a.Metrics)
	families, err := a.Registry.Gather()
	require.NoError(t, err)
	assert.Empty(t, families)
}

// The worked scenarios of the ledger, end to end through the wired services
func TestApp_LedgerScenarios(t *testing.T) {
	buf := &bytes.Buffer{}
	a, err := New(testConfig(), buf)
	require.NoError(t, err)

	t.Run("deposit", func(t *testing.T) {
		acc, err := a.Accounts.OpenAccount(models.KindBasic, "A", decimal.NewFromInt(100), decimal.NullDecimal{})
		require.NoError(t, err)

		_, err = acc.Deposit(decimal.NewFromInt(50))

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(150).Equal(acc.Balance()))
		assert.Len(t, acc.History(), 2)
	})

	t.Run("withdraw below minimum blocks", func(t *testing.T) {
		acc, err := a.Accounts.OpenAccount(models.KindBasic, "B", decimal.NewFromInt(1000),
			decimal.NewNullDecimal(decimal.NewFromInt(100)))
		require.NoError(t, err)

		_, err = acc.Withdraw(decimal.NewFromInt(950))

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(50).Equal(acc.Balance()))
		assert.True(t, acc.IsBlocked())
	})

	t.Run("interest deposit", func(t *testing.T) {
		acc, err := a.Accounts.OpenAccount(models.KindInterest, "I", decimal.NewFromInt(1000), decimal.NullDecimal{})
		require.NoError(t, err)

		_, err = acc.Deposit(decimal.NewFromInt(100))

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(1105).Equal(acc.Balance()))
	})

	t.Run("fee savings withdraw", func(t *testing.T) {
		acc, err := a.Accounts.OpenAccount(models.KindFeeSavings, "C", decimal.NewFromInt(1000), decimal.NullDecimal{})
		require.NoError(t, err)

		_, err = acc.Withdraw(decimal.NewFromInt(100))

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(895).Equal(acc.Balance()))
	})

	t.Run("child transfer to parent", func(t *testing.T) {
		parent, err := a.Accounts.OpenAccount(models.KindBasic, "P", decimal.NewFromInt(1000),
			decimal.NewNullDecimal(decimal.NewFromInt(100)))
		require.NoError(t, err)
		child, outcome, err := a.Accounts.OpenChildAccount(parent, "Ch", decimal.NewFromInt(500))
		require.NoError(t, err)
		require.Equal(t, models.OutcomeCompleted, outcome)
		assert.True(t, child.MinBalance().IsZero())
		assert.False(t, child.IsBlocked())

		_, err = child.TransferToParent(decimal.NewFromInt(200))

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(300).Equal(child.Balance()))
		assert.True(t, decimal.NewFromInt(1200).Equal(parent.Balance()))
		assert.NoError(t, a.Statements.Reconcile(child))
		assert.NoError(t, a.Statements.Reconcile(parent))
	})

	t.Run("close empty account", func(t *testing.T) {
		acc, err := a.Accounts.OpenAccount(models.KindBasic, "Z", decimal.Zero,
			decimal.NewNullDecimal(decimal.NewFromInt(100)))
		require.NoError(t, err)

		assert.Equal(t, models.OutcomeClosed, acc.Close())

		history := acc.History()
		assert.True(t, acc.IsBlocked())
		require.Len(t, history, 2)
		assert.Equal(t, "Account Closed: $0.00", history[1].String())
	})

	// B was blocked and Z was closed
	assert.Equal(t, 2.0, a.Metrics.BlockedAccounts())
	_, ok := a.Metrics.(*services.PrometheusMetrics)
	require.True(t, ok)
	count, err := testutil.GatherAndCount(a.Registry, "bank_ledger_account_events_total")
	require.NoError(t, err)
	assert.Positive(t, count)
	assert.Contains(t, buf.String(), `"event_type":"account_blocked"`)
}

func TestNewFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_FORMAT=text\nMETRICS_ENABLED=false\n"), 0o600))
	for _, key := range []string{"LOG_FORMAT", "METRICS_ENABLED", "LOG_LEVEL", "LEDGER_SAVINGS_FEE",
		"LEDGER_INTEREST_BONUS_RATE", "LEDGER_DEFAULT_MIN_BALANCE", "METRICS_NAMESPACE", "APP_ENV"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	buf := &bytes.Buffer{}

	a, err := NewFromEnv(buf, path)

	require.NoError(t, err)
	assert.Nil(t, a.Metrics)
	assert.Contains(t, buf.String(), "msg=\"ledger initialized\"")
}

func TestNewFromEnv_MissingFile(t *testing.T) {
	_, err := NewFromEnv(&bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.env"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
