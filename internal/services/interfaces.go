package services

import (
	"bank-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// AccountServiceInterface opens accounts with the configured ledger defaults
type AccountServiceInterface interface {
	// OpenAccount opens a basic, interest or fee savings account. A null
	// minBalance falls back to the configured default.
	OpenAccount(kind models.Kind, name string, initialAmount decimal.Decimal, minBalance decimal.NullDecimal) (*models.BankAccount, error)
	// OpenChildAccount opens a child account under parent
	OpenChildAccount(parent models.Account, name string, initialAmount decimal.Decimal) (*models.ChildAccount, models.Outcome, error)
}

// StatementServiceInterface renders and checks account histories
type StatementServiceInterface interface {
	// Statement lists the history with running balances and totals
	Statement(account models.Account) (*models.AccountStatement, error)
	// Reconcile fails with ErrBalanceMismatch when the balance-affecting
	// history entries do not sum to the balance
	Reconcile(account models.Account) error
}

// MetricsRecorderInterface is an event observer backed by a metrics system
type MetricsRecorderInterface interface {
	models.EventObserver
	BlockedAccounts() float64
}
