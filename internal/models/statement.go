package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountStatement represents the full history of an account with running balances
type AccountStatement struct {
	AccountID      uuid.UUID              `json:"account_id"`
	AccountName    string                 `json:"account_name"`
	AccountKind    Kind                   `json:"account_kind"`
	Blocked        bool                   `json:"blocked"`
	OpeningBalance decimal.Decimal        `json:"opening_balance"`
	ClosingBalance decimal.Decimal        `json:"closing_balance"`
	Transactions   []StatementTransaction `json:"transactions"`
	Summary        StatementSummary       `json:"summary"`
	GeneratedAt    time.Time              `json:"generated_at"`
}

// StatementTransaction represents a history entry with its running balance
type StatementTransaction struct {
	Sequence       int             `json:"sequence"`
	Action         string          `json:"action"`
	Amount         decimal.Decimal `json:"amount"`
	Memo           bool            `json:"memo,omitempty"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// StatementSummary provides aggregate information for the statement
type StatementSummary struct {
	TotalCredits     decimal.Decimal `json:"total_credits"`
	TotalDebits      decimal.Decimal `json:"total_debits"`
	NetChange        decimal.Decimal `json:"net_change"`
	TransactionCount int             `json:"transaction_count"`
	CreditCount      int             `json:"credit_count"`
	DebitCount       int             `json:"debit_count"`
	MemoCount        int             `json:"memo_count"`
}
