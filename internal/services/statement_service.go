package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bank-ledger/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrBalanceMismatch = errors.New("balance does not match transaction history")
	ErrEmptyHistory    = errors.New("account history has no opening entry")
)

type statementService struct {
	now func() time.Time
}

func NewStatementService() StatementServiceInterface {
	return &statementService{now: time.Now}
}

// Statement opens with the first history entry and walks the rest, carrying
// a running balance. Memo entries are listed but leave the running balance
// and the totals unchanged.
func (s *statementService) Statement(account models.Account) (*models.AccountStatement, error) {
	if account == nil {
		return nil, errors.New("account is required")
	}

	history := account.History()
	if len(history) == 0 {
		return nil, ErrEmptyHistory
	}

	openingBalance := history[0].Amount
	statementTransactions, closingBalance := s.buildStatementTransactions(history[1:], openingBalance)
	summary := s.calculateSummary(history[1:])

	statement := &models.AccountStatement{
		AccountID:      account.ID(),
		AccountName:    account.Name(),
		AccountKind:    account.Kind(),
		Blocked:        account.IsBlocked(),
		OpeningBalance: openingBalance,
		ClosingBalance: closingBalance,
		Transactions:   statementTransactions,
		Summary:        summary,
		GeneratedAt:    s.now(),
	}

	slog.Debug("statement generated",
		"account_id", account.ID(),
		"transaction_count", len(statementTransactions))

	return statement, nil
}

// Reconcile checks that the balance-affecting entries sum to the balance
func (s *statementService) Reconcile(account models.Account) error {
	statement, err := s.Statement(account)
	if err != nil {
		return err
	}

	if !statement.ClosingBalance.Equal(account.Balance()) {
		slog.Error("balance mismatch",
			"account_id", account.ID(),
			"history_balance", statement.ClosingBalance.String(),
			"balance", account.Balance().String())
		return fmt.Errorf("%w: history sums to %s, balance is %s",
			ErrBalanceMismatch, statement.ClosingBalance.StringFixed(2), account.Balance().StringFixed(2))
	}
	return nil
}

func (s *statementService) buildStatementTransactions(entries []models.Transaction, opening decimal.Decimal) ([]models.StatementTransaction, decimal.Decimal) {
	running := opening
	out := make([]models.StatementTransaction, 0, len(entries))

	for i, tx := range entries {
		if tx.AffectsBalance() {
			running = running.Add(tx.Amount)
		}
		out = append(out, models.StatementTransaction{
			Sequence:       i + 1,
			Action:         tx.Action,
			Amount:         tx.Amount,
			Memo:           tx.Memo,
			RunningBalance: running,
		})
	}

	return out, running
}

func (s *statementService) calculateSummary(entries []models.Transaction) models.StatementSummary {
	summary := models.StatementSummary{
		TotalCredits:     decimal.Zero,
		TotalDebits:      decimal.Zero,
		TransactionCount: len(entries),
	}

	for _, tx := range entries {
		switch {
		case !tx.AffectsBalance():
			summary.MemoCount++
		case tx.Amount.IsNegative():
			summary.TotalDebits = summary.TotalDebits.Add(tx.Amount.Abs())
			summary.DebitCount++
		default:
			summary.TotalCredits = summary.TotalCredits.Add(tx.Amount)
			summary.CreditCount++
		}
	}

	summary.NetChange = summary.TotalCredits.Sub(summary.TotalDebits)
	return summary
}
