package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransaction_String(t *testing.T) {
	tests := []struct {
		name string
		tx   Transaction
		want string
	}{
		{name: "opening", tx: Transaction{Action: ActionAccountOpened, Amount: dec("1000")}, want: "Account opened: $1000.00"},
		{name: "withdraw", tx: Transaction{Action: ActionWithdraw, Amount: dec("-12.5")}, want: "Withdraw: $-12.50"},
		{name: "interest deposit", tx: Transaction{Action: ActionInterestDeposit, Amount: dec("10.5")}, want: "Interest Deposit: $10.50"},
		{name: "rounds to cents", tx: Transaction{Action: ActionDeposit, Amount: dec("0.105")}, want: "Deposit: $0.11"},
		{name: "closed", tx: Transaction{Action: ActionAccountClosed, Memo: true}, want: "Account Closed: $0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tx.String())
		})
	}
}

func TestTransaction_AffectsBalance(t *testing.T) {
	assert.True(t, Transaction{Action: ActionDeposit, Amount: dec("1")}.AffectsBalance())
	assert.False(t, Transaction{Action: ActionTransfer, Amount: dec("1"), Memo: true}.AffectsBalance())
}

func TestIsMemoAction(t *testing.T) {
	memo := map[string]bool{
		ActionAccountOpened:    false,
		ActionDeposit:          false,
		ActionWithdraw:         false,
		ActionInterestDeposit:  false,
		ActionWithdrawWithFee:  false,
		ActionTransfer:         true,
		ActionTransferToParent: true,
		ActionAccountClosed:    true,
	}

	for action, want := range memo {
		assert.Equal(t, want, IsMemoAction(action), action)
	}
}

// Every entry an account writes is flagged consistently with its label
func TestTransaction_MemoFlagMatchesLabel(t *testing.T) {
	parent := mustSavings(t, "P", "1000")
	child := mustChild(t, parent, "Ch", "100")
	other := mustAccount(t, "O", "0")

	_, err := child.TransferToParent(dec("10"))
	assert.NoError(t, err)
	_, err = parent.Transfer(dec("10"), other)
	assert.NoError(t, err)
	assert.Equal(t, OutcomeClosed, other.Close())

	for _, a := range []Account{parent, child, other} {
		for _, tx := range a.History() {
			assert.Equal(t, IsMemoAction(tx.Action), tx.Memo, tx.String())
		}
	}
}
