package services

import "bank-ledger/internal/models"

// MultiObserver forwards every event to each observer in order
type MultiObserver []models.EventObserver

// NewMultiObserver skips nil observers
func NewMultiObserver(observers ...models.EventObserver) MultiObserver {
	out := make(MultiObserver, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}

func (m MultiObserver) OnAccountEvent(event models.Event) {
	for _, o := range m {
		o.OnAccountEvent(event)
	}
}
