// Package models holds the in-memory account state machine.
//
// Accounts are not safe for concurrent use. Callers sharing an account across
// goroutines must serialize every operation on it, including the recipient of
// a transfer.
package models

import (
	"time"

	apperrors "bank-ledger/internal/errors"
	"bank-ledger/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind tags the account variant and selects its deposit and withdraw rules
type Kind string

const (
	KindBasic      Kind = "basic"
	KindInterest   Kind = "interest"
	KindFeeSavings Kind = "fee_savings"
	KindChild      Kind = "child"
)

// Outcome is the structured result of an operation that did not fail
type Outcome string

const (
	OutcomeCompleted        Outcome = "completed"
	OutcomeBlocked          Outcome = "blocked"
	OutcomeRejected         Outcome = "rejected"
	OutcomeRecipientBlocked Outcome = "recipient_blocked"
	OutcomeUnblocked        Outcome = "unblocked"
	OutcomeStillBlocked     Outcome = "still_blocked"
	OutcomeClosed           Outcome = "closed"
)

var (
	DefaultBonusRate  = decimal.RequireFromString("0.05")
	DefaultSavingsFee = decimal.NewFromInt(5)
)

// Account is the operation set shared by every account variant
type Account interface {
	ID() uuid.UUID
	Name() string
	Kind() Kind
	Balance() decimal.Decimal
	MinBalance() decimal.Decimal
	IsBlocked() bool

	Deposit(amount decimal.Decimal) (Outcome, error)
	Withdraw(amount decimal.Decimal) (Outcome, error)
	Transfer(amount decimal.Decimal, to Account) (Outcome, error)
	CheckViableTransaction(amount decimal.Decimal) error
	Unblock() Outcome
	Close() Outcome
	History() []Transaction
	CreateChildAccount(initialAmount decimal.Decimal, name string) (*ChildAccount, Outcome, error)
}

// BankAccount is the concrete account. Its Kind decides which deposit and
// withdraw rules apply; the minimum-balance check and history logging are
// shared by all kinds.
type BankAccount struct {
	id         uuid.UUID
	name       string
	kind       Kind
	balance    decimal.Decimal
	minBalance decimal.Decimal
	blocked    bool
	history    []Transaction
	fee        decimal.Decimal
	bonusRate  decimal.Decimal
	observer   EventObserver
}

// accountParams carries the validated construction parameters
type accountParams struct {
	Name       string          `json:"name" validate:"account_name"`
	Kind       string          `json:"kind" validate:"account_kind"`
	MinBalance decimal.Decimal `json:"min_balance" validate:"non_negative_decimal"`
	Fee        decimal.Decimal `json:"fee" validate:"non_negative_decimal"`
	BonusRate  decimal.Decimal `json:"bonus_rate" validate:"non_negative_decimal"`

	observer EventObserver
}

// Option configures an account at construction
type Option func(*accountParams)

// WithMinBalance sets the balance below which the account is blocked
func WithMinBalance(minBalance decimal.Decimal) Option {
	return func(p *accountParams) {
		p.MinBalance = minBalance
	}
}

// WithFee sets the withdrawal surcharge of a fee savings account
func WithFee(fee decimal.Decimal) Option {
	return func(p *accountParams) {
		p.Fee = fee
	}
}

// WithBonusRate sets the deposit bonus rate of interest and fee savings accounts
func WithBonusRate(rate decimal.Decimal) Option {
	return func(p *accountParams) {
		p.BonusRate = rate
	}
}

// WithObserver sets the observer that receives the account's events
func WithObserver(observer EventObserver) Option {
	return func(p *accountParams) {
		p.observer = observer
	}
}

// NewAccount opens a basic account
func NewAccount(name string, initialAmount decimal.Decimal, opts ...Option) (*BankAccount, error) {
	return newBankAccount(KindBasic, name, initialAmount, opts)
}

// NewInterestAccount opens an account whose deposits earn a bonus
func NewInterestAccount(name string, initialAmount decimal.Decimal, opts ...Option) (*BankAccount, error) {
	return newBankAccount(KindInterest, name, initialAmount, opts)
}

// NewFeeSavingsAccount opens an interest account that charges a fee on every withdrawal
func NewFeeSavingsAccount(name string, initialAmount decimal.Decimal, opts ...Option) (*BankAccount, error) {
	return newBankAccount(KindFeeSavings, name, initialAmount, opts)
}

func newBankAccount(kind Kind, name string, initialAmount decimal.Decimal, opts []Option) (*BankAccount, error) {
	p := accountParams{
		Name:       name,
		Kind:       string(kind),
		MinBalance: decimal.Zero,
		Fee:        DefaultSavingsFee,
		BonusRate:  DefaultBonusRate,
	}
	for _, opt := range opts {
		opt(&p)
	}

	if err := validation.GetValidator().Struct(p); err != nil {
		return nil, apperrors.New(apperrors.ValidationGeneral, name,
			apperrors.WithMessage("invalid account parameters"),
			apperrors.WithDetails(validation.FieldErrors(err)...),
		)
	}

	a := &BankAccount{
		id:         uuid.New(),
		name:       name,
		kind:       kind,
		balance:    initialAmount,
		minBalance: p.MinBalance,
		fee:        decimal.Zero,
		bonusRate:  decimal.Zero,
		observer:   p.observer,
	}
	if a.observer == nil {
		a.observer = NoOpObserver{}
	}
	if kind == KindInterest || kind == KindFeeSavings {
		a.bonusRate = p.BonusRate
	}
	if kind == KindFeeSavings {
		a.fee = p.Fee
	}

	// Opening never runs the minimum-balance check.
	a.record(ActionAccountOpened, initialAmount, false)
	a.emit(Event{Type: EventAccountOpened, Operation: OpOpen, Amount: initialAmount})

	return a, nil
}

// ID returns the account identifier
func (a *BankAccount) ID() uuid.UUID { return a.id }

// Name returns the display name
func (a *BankAccount) Name() string { return a.name }

// Kind returns the account variant
func (a *BankAccount) Kind() Kind { return a.kind }

// Balance returns the current balance, blocked or not
func (a *BankAccount) Balance() decimal.Decimal { return a.balance }

// MinBalance returns the minimum-balance threshold
func (a *BankAccount) MinBalance() decimal.Decimal { return a.minBalance }

// IsBlocked returns true if the account is blocked
func (a *BankAccount) IsBlocked() bool { return a.blocked }

// Fee returns the withdrawal surcharge (zero unless fee savings)
func (a *BankAccount) Fee() decimal.Decimal { return a.fee }

// BonusRate returns the deposit bonus rate (zero unless interest or fee savings)
func (a *BankAccount) BonusRate() decimal.Decimal { return a.bonusRate }

// Deposit credits amount. A blocked account ignores the deposit and reports
// OutcomeBlocked; the block is not lifted even if the balance would cover the
// minimum.
func (a *BankAccount) Deposit(amount decimal.Decimal) (Outcome, error) {
	switch a.kind {
	case KindInterest, KindFeeSavings:
		return a.deposit(ActionInterestDeposit, amount, amount.Add(amount.Mul(a.bonusRate)))
	default:
		return a.deposit(ActionDeposit, amount, amount)
	}
}

// Withdraw debits amount and blocks the account if the balance drops below
// the minimum. It does not consult the block flag.
//
// A fee savings account debits amount plus its fee. When that leaves the
// balance below the minimum the debit and the block are kept and
// ErrInsufficientFunds is still returned alongside OutcomeCompleted.
func (a *BankAccount) Withdraw(amount decimal.Decimal) (Outcome, error) {
	if a.kind == KindFeeSavings {
		return a.withdrawWithFee(amount)
	}
	return a.withdraw(amount)
}

// CheckViableTransaction fails with ErrInsufficientFunds if the balance
// cannot cover amount
func (a *BankAccount) CheckViableTransaction(amount decimal.Decimal) error {
	if a.balance.LessThan(amount) {
		return apperrors.New(apperrors.AccountInsufficientFunds, a.name,
			apperrors.WithMessage("insufficient funds for the transaction"))
	}
	return nil
}

// Transfer moves amount to another account: a withdrawal here, a deposit
// there, then a memo entry and a minimum-balance check on this account only.
// Both legs use the variant rules of their account, so a fee savings sender
// pays its fee and an interest recipient earns its bonus. A blocked
// recipient ignores the deposit; the funds stay debited and the outcome is
// OutcomeRecipientBlocked.
func (a *BankAccount) Transfer(amount decimal.Decimal, to Account) (Outcome, error) {
	if a.blocked {
		a.emit(Event{Type: EventOperationBlocked, Operation: OpTransfer, Amount: amount})
		return OutcomeBlocked, nil
	}
	if !amount.IsPositive() {
		return "", a.fail(OpTransfer, amount, apperrors.AccountInvalidAmount, "transfer amount must be positive")
	}
	if to == nil {
		return "", a.fail(OpTransfer, amount, apperrors.ValidationGeneral, "transfer recipient is required")
	}
	if to.ID() == a.id {
		return "", a.fail(OpTransfer, amount, apperrors.AccountSameAccount, "cannot transfer to the same account")
	}
	if err := a.CheckViableTransaction(amount); err != nil {
		a.emitFailure(OpTransfer, amount, err)
		return "", err
	}

	if _, err := a.Withdraw(amount); err != nil {
		return "", err
	}
	received, err := to.Deposit(amount)
	if err != nil {
		return "", err
	}

	a.record(ActionTransfer, amount, true)
	a.emit(Event{Type: EventTransfer, Operation: OpTransfer, Amount: amount, Counterparty: to.ID()})
	a.checkMinimumBalance()

	if received == OutcomeBlocked {
		return OutcomeRecipientBlocked, nil
	}
	return OutcomeCompleted, nil
}

// Unblock lifts the block when the balance covers the minimum
func (a *BankAccount) Unblock() Outcome {
	if a.balance.LessThan(a.minBalance) {
		a.emit(Event{Type: EventUnblockRefused, Operation: OpUnblock})
		return OutcomeStillBlocked
	}
	if a.blocked {
		a.blocked = false
		a.emit(Event{Type: EventAccountUnblocked, Operation: OpUnblock})
	}
	return OutcomeUnblocked
}

// Close blocks the account for good and appends the closing entry. A blocked
// account, or one holding a non-zero balance below the minimum, is left
// untouched.
func (a *BankAccount) Close() Outcome {
	if a.blocked {
		a.emit(Event{Type: EventOperationBlocked, Operation: OpClose})
		return OutcomeBlocked
	}
	if !a.balance.IsZero() && a.balance.LessThan(a.minBalance) {
		a.emit(Event{Type: EventCloseRejected, Operation: OpClose})
		return OutcomeRejected
	}

	a.blocked = true
	a.record(ActionAccountClosed, decimal.Zero, true)
	a.emit(Event{Type: EventAccountClosed, Operation: OpClose})
	return OutcomeClosed
}

// History returns a copy of the account history, oldest first
func (a *BankAccount) History() []Transaction {
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}

// CreateChildAccount opens a child account linked to this one. A blocked
// account creates nothing and reports OutcomeBlocked.
func (a *BankAccount) CreateChildAccount(initialAmount decimal.Decimal, name string) (*ChildAccount, Outcome, error) {
	if a.blocked {
		a.emit(Event{Type: EventOperationBlocked, Operation: OpCreateChild, Amount: initialAmount})
		return nil, OutcomeBlocked, nil
	}

	child, err := NewChildAccount(a, name, initialAmount, WithObserver(a.observer))
	if err != nil {
		return nil, "", err
	}

	a.emit(Event{Type: EventChildAccountCreated, Operation: OpCreateChild, Amount: initialAmount, Counterparty: child.ID()})
	return child, OutcomeCompleted, nil
}

func (a *BankAccount) deposit(action string, amount, credited decimal.Decimal) (Outcome, error) {
	if a.blocked {
		a.emit(Event{Type: EventOperationBlocked, Operation: OpDeposit, Amount: amount})
		return OutcomeBlocked, nil
	}
	if !amount.IsPositive() {
		return "", a.fail(OpDeposit, amount, apperrors.AccountInvalidAmount, "deposit amount must be positive")
	}

	a.balance = a.balance.Add(credited)
	a.record(action, credited, false)
	a.emit(Event{Type: EventDeposit, Operation: OpDeposit, Amount: credited})
	return OutcomeCompleted, nil
}

func (a *BankAccount) withdraw(amount decimal.Decimal) (Outcome, error) {
	if !amount.IsPositive() {
		return "", a.fail(OpWithdraw, amount, apperrors.AccountInvalidAmount, "withdrawal amount must be positive")
	}
	if a.balance.Sub(amount).IsNegative() {
		return "", a.fail(OpWithdraw, amount, apperrors.AccountInsufficientFunds, "insufficient funds")
	}

	a.debit(ActionWithdraw, amount)
	a.checkMinimumBalance()
	return OutcomeCompleted, nil
}

func (a *BankAccount) withdrawWithFee(amount decimal.Decimal) (Outcome, error) {
	total := amount.Add(a.fee)
	if !total.IsPositive() {
		return "", a.fail(OpWithdraw, total, apperrors.AccountInvalidAmount, "withdrawal amount must be positive")
	}
	if a.balance.Sub(total).IsNegative() {
		return "", a.fail(OpWithdraw, total, apperrors.AccountInsufficientFunds, "insufficient funds")
	}

	a.debit(ActionWithdrawWithFee, total)
	if a.checkMinimumBalance() {
		return OutcomeCompleted, a.fail(OpWithdraw, total, apperrors.AccountInsufficientFunds,
			"balance fell below the minimum after the withdrawal fee")
	}
	return OutcomeCompleted, nil
}

func (a *BankAccount) debit(action string, amount decimal.Decimal) {
	a.balance = a.balance.Sub(amount)
	a.record(action, amount.Neg(), false)
	a.emit(Event{Type: EventWithdraw, Operation: OpWithdraw, Amount: amount})
}

// checkMinimumBalance blocks the account when the balance is below the
// minimum and reports whether it is
func (a *BankAccount) checkMinimumBalance() bool {
	if !a.balance.LessThan(a.minBalance) {
		return false
	}
	if !a.blocked {
		a.blocked = true
		a.emit(Event{Type: EventAccountBlocked, Operation: OpWithdraw})
	}
	return true
}

func (a *BankAccount) record(action string, amount decimal.Decimal, memo bool) {
	a.history = append(a.history, Transaction{Action: action, Amount: amount, Memo: memo})
}

func (a *BankAccount) fail(op Operation, amount decimal.Decimal, code apperrors.ErrorCode, message string) error {
	err := apperrors.New(code, a.name, apperrors.WithMessage(message))
	a.emitFailure(op, amount, err)
	return err
}

func (a *BankAccount) emitFailure(op Operation, amount decimal.Decimal, err error) {
	a.emit(Event{Type: EventOperationFailed, Operation: op, Amount: amount, Err: err})
}

func (a *BankAccount) emit(e Event) {
	e.AccountID = a.id
	e.AccountName = a.name
	e.Kind = a.kind
	e.Balance = a.balance
	e.OccurredAt = time.Now()
	a.observer.OnAccountEvent(e)
}
