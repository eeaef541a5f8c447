package services

import (
	"context"
	"log/slog"

	"bank-ledger/internal/models"

	"github.com/google/uuid"
)

// EventLogger writes every account event as a structured log record
type EventLogger struct {
	logger *slog.Logger
}

func NewEventLogger(logger *slog.Logger) *EventLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventLogger{
		logger: logger,
	}
}

// OnAccountEvent logs refused and failed operations at warn level and the
// rest at info
func (el *EventLogger) OnAccountEvent(event models.Event) {
	attrs := []slog.Attr{
		slog.String("event_type", string(event.Type)),
		slog.String("operation", string(event.Operation)),
		slog.String("account_id", event.AccountID.String()),
		slog.String("account_name", event.AccountName),
		slog.String("account_kind", string(event.Kind)),
		slog.String("amount", event.Amount.StringFixed(2)),
		slog.String("balance", event.Balance.StringFixed(2)),
		slog.Time("timestamp", event.OccurredAt),
	}

	if event.Counterparty != uuid.Nil {
		attrs = append(attrs, slog.String("counterparty_id", event.Counterparty.String()))
	}
	if event.Err != nil {
		attrs = append(attrs, slog.String("error", event.Err.Error()))
	}

	level := slog.LevelInfo
	if event.IsWarning() {
		level = slog.LevelWarn
	}

	el.logger.LogAttrs(context.Background(), level, eventMessages[event.Type], attrs...)
}

var eventMessages = map[models.EventType]string{
	models.EventAccountOpened:       "account opened",
	models.EventDeposit:             "deposit completed",
	models.EventWithdraw:            "withdrawal completed",
	models.EventTransfer:            "transfer completed",
	models.EventTransferToParent:    "transfer to parent completed",
	models.EventAccountBlocked:      "account blocked: balance below minimum",
	models.EventAccountUnblocked:    "account unblocked",
	models.EventUnblockRefused:      "unblock refused: balance below minimum",
	models.EventOperationBlocked:    "operation refused: account is blocked",
	models.EventAccountClosed:       "account closed",
	models.EventCloseRejected:       "close refused: balance below minimum",
	models.EventChildAccountCreated: "child account created",
	models.EventOperationFailed:     "operation failed",
}
