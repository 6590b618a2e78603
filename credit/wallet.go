// Package credit is the stake collaborator: it alone moves money. The
// spin engine only asks CanSpin before accepting a session and reports
// outcomes through the event queue; debit and payout happen here
package credit

import (
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lixenwraith/reelspin/event"
)

// Wallet tracks the player balance with exact decimal arithmetic
type Wallet struct {
	mu      sync.Mutex
	balance decimal.Decimal
	bet     decimal.Decimal
	logger  *zap.Logger
}

// NewWallet creates a wallet holding balance, wagering bet per spin
func NewWallet(balance, bet decimal.Decimal, logger *zap.Logger) *Wallet {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Wallet{
		balance: balance,
		bet:     bet,
		logger:  logger,
	}
}

// CanSpin implements spin.StakeSource: the balance must cover one bet
func (w *Wallet) CanSpin() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance.GreaterThanOrEqual(w.bet)
}

// Balance returns the current balance
func (w *Wallet) Balance() decimal.Decimal {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

// Bet returns the per-spin stake
func (w *Wallet) Bet() decimal.Decimal {
	return w.bet
}

// EventTypes implements event.Handler: the wallet debits on spin start
// and credits on resolve
func (w *Wallet) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSpinStarted,
		event.EventSpinResolved,
	}
}

// HandleEvent applies the money movement for one spin
func (w *Wallet) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSpinStarted:
		w.mu.Lock()
		w.balance = w.balance.Sub(w.bet)
		balance := w.balance
		w.mu.Unlock()
		w.logger.Info("bet debited",
			zap.String("bet", w.bet.String()),
			zap.String("balance", balance.String()),
		)

	case event.EventSpinResolved:
		payload, ok := ev.Payload.(*event.SpinResolvedPayload)
		if !ok || payload.Payout == 0 {
			return
		}
		payout := decimal.NewFromInt(payload.Payout)
		w.mu.Lock()
		w.balance = w.balance.Add(payout)
		balance := w.balance
		w.mu.Unlock()
		w.logger.Info("payout credited",
			zap.String("payout", payout.String()),
			zap.String("balance", balance.String()),
		)
	}
}
