package models

import (
	apperrors "bank-ledger/internal/errors"

	"github.com/shopspring/decimal"
)

// ChildAccount is a basic account linked to a parent account. The link is
// one-way: the parent keeps no reference to its children.
type ChildAccount struct {
	*BankAccount
	parent Account
}

// NewChildAccount opens a child account under parent. The child starts with
// no minimum balance unless WithMinBalance says otherwise.
func NewChildAccount(parent Account, name string, initialAmount decimal.Decimal, opts ...Option) (*ChildAccount, error) {
	if parent == nil {
		return nil, apperrors.New(apperrors.ValidationGeneral, name,
			apperrors.WithMessage("invalid account parameters"),
			apperrors.WithDetails("parent: is required"),
		)
	}

	a, err := newBankAccount(KindChild, name, initialAmount, opts)
	if err != nil {
		return nil, err
	}

	return &ChildAccount{BankAccount: a, parent: parent}, nil
}

// Parent returns the parent account
func (c *ChildAccount) Parent() Account {
	return c.parent
}

// TransferToParent withdraws amount from the child and deposits it into the
// parent. A blocked parent ignores the deposit, so the funds leave the child
// without arriving anywhere; the outcome is then OutcomeRecipientBlocked.
func (c *ChildAccount) TransferToParent(amount decimal.Decimal) (Outcome, error) {
	if c.blocked {
		c.emit(Event{Type: EventOperationBlocked, Operation: OpTransferToParent, Amount: amount})
		return OutcomeBlocked, nil
	}
	if !amount.IsPositive() {
		return "", c.fail(OpTransferToParent, amount, apperrors.AccountInvalidAmount, "transfer amount must be positive")
	}
	if err := c.CheckViableTransaction(amount); err != nil {
		c.emitFailure(OpTransferToParent, amount, err)
		return "", err
	}

	if _, err := c.Withdraw(amount); err != nil {
		return "", err
	}
	received, err := c.parent.Deposit(amount)
	if err != nil {
		return "", err
	}

	c.record(ActionTransferToParent, amount, true)
	c.emit(Event{Type: EventTransferToParent, Operation: OpTransferToParent, Amount: amount, Counterparty: c.parent.ID()})

	if received == OutcomeBlocked {
		return OutcomeRecipientBlocked, nil
	}
	return OutcomeCompleted, nil
}
