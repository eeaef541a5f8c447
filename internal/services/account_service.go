package services

import (
	"errors"
	"log/slog"

	"bank-ledger/internal/config"
	apperrors "bank-ledger/internal/errors"
	"bank-ledger/internal/models"

	"github.com/shopspring/decimal"
)

var ErrChildAccountKind = errors.New("child accounts are opened with OpenChildAccount")

// accountService implements AccountServiceInterface
type accountService struct {
	ledger   config.LedgerConfig
	observer models.EventObserver
	logger   *slog.Logger
}

// NewAccountService creates an account service that applies ledger defaults
// and attaches observer to every account it opens
func NewAccountService(ledger config.LedgerConfig, observer models.EventObserver, logger *slog.Logger) AccountServiceInterface {
	if observer == nil {
		observer = models.NoOpObserver{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &accountService{
		ledger:   ledger,
		observer: observer,
		logger:   logger,
	}
}

// OpenAccount opens an account of kind
func (s *accountService) OpenAccount(kind models.Kind, name string, initialAmount decimal.Decimal, minBalance decimal.NullDecimal) (*models.BankAccount, error) {
	threshold := s.ledger.DefaultMinBalance
	if minBalance.Valid {
		threshold = minBalance.Decimal
	}

	opts := []models.Option{
		models.WithMinBalance(threshold),
		models.WithObserver(s.observer),
	}

	var (
		account *models.BankAccount
		err     error
	)
	switch kind {
	case models.KindBasic:
		account, err = models.NewAccount(name, initialAmount, opts...)
	case models.KindInterest:
		account, err = models.NewInterestAccount(name, initialAmount,
			append(opts, models.WithBonusRate(s.ledger.InterestBonusRate))...)
	case models.KindFeeSavings:
		account, err = models.NewFeeSavingsAccount(name, initialAmount,
			append(opts, models.WithBonusRate(s.ledger.InterestBonusRate), models.WithFee(s.ledger.SavingsFee))...)
	case models.KindChild:
		return nil, ErrChildAccountKind
	default:
		return nil, apperrors.New(apperrors.ValidationGeneral, name,
			apperrors.WithMessage("invalid account parameters"),
			apperrors.WithDetails("kind: unknown account kind"),
		)
	}
	if err != nil {
		s.logger.Warn("failed to open account",
			"kind", kind,
			"name", name,
			"error", err)
		return nil, err
	}

	s.logger.Debug("account opened",
		"account_id", account.ID(),
		"kind", kind,
		"min_balance", threshold.String())

	return account, nil
}

// OpenChildAccount opens a child under parent. A blocked parent opens nothing
// and reports OutcomeBlocked.
func (s *accountService) OpenChildAccount(parent models.Account, name string, initialAmount decimal.Decimal) (*models.ChildAccount, models.Outcome, error) {
	if parent == nil {
		return nil, "", apperrors.New(apperrors.ValidationGeneral, name,
			apperrors.WithMessage("invalid account parameters"),
			apperrors.WithDetails("parent: is required"),
		)
	}

	child, outcome, err := parent.CreateChildAccount(initialAmount, name)
	if err != nil {
		s.logger.Warn("failed to open child account",
			"parent_id", parent.ID(),
			"name", name,
			"error", err)
		return nil, "", err
	}

	return child, outcome, nil
}
