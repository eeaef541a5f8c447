package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType identifies what happened to an account
type EventType string

const (
	EventAccountOpened       EventType = "account_opened"
	EventDeposit             EventType = "deposit"
	EventWithdraw            EventType = "withdraw"
	EventTransfer            EventType = "transfer"
	EventTransferToParent    EventType = "transfer_to_parent"
	EventAccountBlocked      EventType = "account_blocked"
	EventAccountUnblocked    EventType = "account_unblocked"
	EventUnblockRefused      EventType = "unblock_refused"
	EventOperationBlocked    EventType = "operation_blocked"
	EventAccountClosed       EventType = "account_closed"
	EventCloseRejected       EventType = "close_rejected"
	EventChildAccountCreated EventType = "child_account_created"
	EventOperationFailed     EventType = "operation_failed"
)

// Operation names the account operation an event belongs to
type Operation string

const (
	OpOpen             Operation = "open"
	OpDeposit          Operation = "deposit"
	OpWithdraw         Operation = "withdraw"
	OpTransfer         Operation = "transfer"
	OpTransferToParent Operation = "transfer_to_parent"
	OpUnblock          Operation = "unblock"
	OpClose            Operation = "close"
	OpCreateChild      Operation = "create_child"
)

// Event is emitted by an account for every operation it handles. Balance is
// the account balance after the operation.
type Event struct {
	Type         EventType
	Operation    Operation
	AccountID    uuid.UUID
	AccountName  string
	Kind         Kind
	Amount       decimal.Decimal
	Balance      decimal.Decimal
	Counterparty uuid.UUID
	Err          error
	OccurredAt   time.Time
}

// IsWarning returns true for events that report a refused or failed operation
func (e Event) IsWarning() bool {
	switch e.Type {
	case EventAccountBlocked, EventUnblockRefused, EventOperationBlocked,
		EventCloseRejected, EventOperationFailed:
		return true
	default:
		return false
	}
}

// EventObserver receives account events
type EventObserver interface {
	OnAccountEvent(event Event)
}

// ObserverFunc adapts a function to EventObserver
type ObserverFunc func(event Event)

// OnAccountEvent calls f(event)
func (f ObserverFunc) OnAccountEvent(event Event) {
	f(event)
}

// NoOpObserver discards every event
type NoOpObserver struct{}

// OnAccountEvent does nothing.
func (NoOpObserver) OnAccountEvent(Event) {}
