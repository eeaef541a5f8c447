package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// History action labels
const (
	ActionAccountOpened    = "Account opened"
	ActionDeposit          = "Deposit"
	ActionWithdraw         = "Withdraw"
	ActionInterestDeposit  = "Interest Deposit"
	ActionWithdrawWithFee  = "Withdraw with Fee"
	ActionTransfer         = "Transfer"
	ActionTransferToParent = "Transfer to Parent"
	ActionAccountClosed    = "Account Closed"
)

// Transaction is one entry of an account's history.
//
// Memo entries record an operation whose balance effect is carried by another
// entry (a transfer's withdrawal) or that has none (closure). They are kept
// out of balance reconciliation.
type Transaction struct {
	Action string          `json:"action"`
	Amount decimal.Decimal `json:"amount"`
	Memo   bool            `json:"memo,omitempty"`
}

// AffectsBalance returns true if the entry contributes to the balance
func (t Transaction) AffectsBalance() bool {
	return !t.Memo
}

// String renders the entry the way a passbook line reads
func (t Transaction) String() string {
	return fmt.Sprintf("%s: $%s", t.Action, t.Amount.StringFixed(2))
}

// IsMemoAction returns true for labels that never move the balance on their own
func IsMemoAction(action string) bool {
	switch action {
	case ActionTransfer, ActionTransferToParent, ActionAccountClosed:
		return true
	default:
		return false
	}
}
