package services

import (
	apperrors "bank-ledger/internal/errors"
	"bank-ledger/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	accountEvents   *prometheus.CounterVec
	operationErrors *prometheus.CounterVec
	transferAmount  *prometheus.HistogramVec
	depositAmount   *prometheus.HistogramVec
	blockedAccounts prometheus.Gauge
	blockedValue    float64
}

// NewPrometheusMetrics registers the ledger metrics under namespace with
// registerer
func NewPrometheusMetrics(namespace string, registerer prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		accountEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "account_events_total",
				Help:      "Total number of account events by type and account kind",
			},
			[]string{"event_type", "account_kind"},
		),
		operationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "account_operation_errors_total",
				Help:      "Total number of failed account operations by operation and error code",
			},
			[]string{"operation", "code"},
		),
		transferAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "transfer_amount",
				Help:      "Transfer amount in base currency units",
				Buckets:   prometheus.ExponentialBuckets(1, 10, 8),
			},
			[]string{"operation"},
		),
		depositAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "deposit_credited_amount",
				Help:      "Credited deposit amount in base currency units, bonus included",
				Buckets:   prometheus.ExponentialBuckets(1, 10, 8),
			},
			[]string{"account_kind"},
		),
		blockedAccounts: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "blocked_accounts",
				Help:      "Current number of blocked or closed accounts",
			},
		),
	}
}

// OnAccountEvent records event
func (m *PrometheusMetrics) OnAccountEvent(event models.Event) {
	m.accountEvents.WithLabelValues(string(event.Type), string(event.Kind)).Inc()

	switch event.Type {
	case models.EventTransfer, models.EventTransferToParent:
		m.transferAmount.WithLabelValues(string(event.Operation)).Observe(event.Amount.InexactFloat64())
	case models.EventDeposit:
		m.depositAmount.WithLabelValues(string(event.Kind)).Observe(event.Amount.InexactFloat64())
	case models.EventAccountBlocked, models.EventAccountClosed:
		m.setBlocked(m.blockedValue + 1)
	case models.EventAccountUnblocked:
		m.setBlocked(m.blockedValue - 1)
	case models.EventOperationFailed:
		code := apperrors.CodeOf(event.Err)
		if code == "" {
			code = "unknown"
		}
		m.operationErrors.WithLabelValues(string(event.Operation), string(code)).Inc()
	}
}

// BlockedAccounts returns the current value of the blocked accounts gauge
func (m *PrometheusMetrics) BlockedAccounts() float64 {
	return m.blockedValue
}

func (m *PrometheusMetrics) setBlocked(value float64) {
	m.blockedValue = value
	m.blockedAccounts.Set(value)
}
