package services

import (
	"bytes"
	"testing"

	"bank-ledger/internal/config"
	"bank-ledger/internal/models"
	"bank-ledger/internal/models/model_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiObserver_FansOutInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := model_mocks.NewMockEventObserver(ctrl)
	second := model_mocks.NewMockEventObserver(ctrl)
	event := models.Event{Type: models.EventDeposit}

	gomock.InOrder(
		first.EXPECT().OnAccountEvent(event),
		second.EXPECT().OnAccountEvent(event),
	)

	NewMultiObserver(first, nil, second).OnAccountEvent(event)
}

func TestMultiObserver_SkipsNil(t *testing.T) {
	observer := NewMultiObserver(nil, nil)

	assert.Empty(t, observer)
	assert.NotPanics(t, func() {
		observer.OnAccountEvent(models.Event{Type: models.EventWithdraw})
	})
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.LoggingConfig
		contains string
		silent   bool
	}{
		{name: "json", cfg: config.LoggingConfig{Level: "info", Format: "json"}, contains: `"msg":"hello"`},
		{name: "text", cfg: config.LoggingConfig{Level: "debug", Format: "text"}, contains: "msg=hello"},
		{name: "level filters", cfg: config.LoggingConfig{Level: "error", Format: "json"}, silent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger, err := NewLogger(tt.cfg, buf)
			require.NoError(t, err)

			logger.Info("hello")

			if tt.silent {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "chatty", Format: "json"}, &bytes.Buffer{})

	assert.Nil(t, logger)
	assert.Error(t, err)
}

func TestMultiObserver_WithEventLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := NewLogger(config.LoggingConfig{Level: "info", Format: "json"}, buf)
	require.NoError(t, err)
	ctrl := gomock.NewController(t)
	spy := model_mocks.NewMockEventObserver(ctrl)
	spy.EXPECT().OnAccountEvent(gomock.Any()).Times(2)

	observer := NewMultiObserver(NewEventLogger(logger), spy)
	a, err := models.NewAccount("Joint", decimal.NewFromInt(10), models.WithObserver(observer))
	require.NoError(t, err)
	_, err = a.Withdraw(decimal.NewFromInt(5))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"event_type":"account_opened"`)
	assert.Contains(t, buf.String(), `"event_type":"withdraw"`)
}
