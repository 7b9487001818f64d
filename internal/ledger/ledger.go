// Package ledger - единственное место, где меняется баланс счёта
package ledger

import (
	"fmt"
	"time"

	"crypto_luck/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Option func(*Ledger)

// WithHistoryLimit ограничивает историю последними n записями. 0 - без ограничения
func WithHistoryLimit(n int) Option {
	return func(l *Ledger) {
		if n >= 0 {
			l.historyLimit = n
		}
	}
}

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// Ledger применяет результаты раундов к счёту. Работает над значениями, без хранилища
type Ledger struct {
	historyLimit int
	now          func() time.Time
	newID        func() uuid.UUID
}

func New(opts ...Option) *Ledger {
	l := &Ledger{
		now:   time.Now,
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// HistoryLimit - сколько последних записей истории хранить. 0 - все
func (l *Ledger) HistoryLimit() int {
	return l.historyLimit
}

// Reserve списывает ставку до розыгрыша
func (l *Ledger) Reserve(acc model.Account, stake decimal.Decimal) (model.Account, error) {
	if stake.IsNegative() {
		return acc, fmt.Errorf("stake %s: %w", stake, model.ErrInvalidBet)
	}
	if stake.GreaterThan(acc.Balance) {
		return acc, fmt.Errorf("stake %s over balance %s: %w", stake, acc.Balance, model.ErrInsufficientFunds)
	}
	acc.Balance = acc.Balance.Sub(stake)
	return acc, nil
}

// Apply добавляет результат раунда к балансу и счётчикам и пишет запись в историю.
// Отрицательный итоговый баланс не проверяется
func (l *Ledger) Apply(acc model.Account, net decimal.Decimal, game string) (model.Account, model.GameResult) {
	now := l.now()

	acc.Balance = acc.Balance.Add(net)
	switch net.Sign() {
	case 1:
		acc.TotalWinnings = acc.TotalWinnings.Add(net)
	case -1:
		acc.TotalLosses = acc.TotalLosses.Add(net.Abs())
	}
	acc.GamesPlayed++
	acc.LastActivity = now

	res := model.GameResult{
		ID:        l.newID(),
		Username:  acc.Username,
		Game:      game,
		Wagered:   net.Abs(),
		NetDelta:  net,
		Timestamp: now,
	}

	history := make([]model.GameResult, 0, len(acc.History)+1)
	history = append(history, acc.History...)
	history = append(history, res)
	if l.historyLimit > 0 && len(history) > l.historyLimit {
		history = history[len(history)-l.historyLimit:]
	}
	acc.History = history

	return acc, res
}

// Settle возвращает зарезервированную ставку и применяет итог раунда.
// Баланс сдвигается ровно на net относительно состояния до Reserve
func (l *Ledger) Settle(acc model.Account, reserved, net decimal.Decimal, game string) (model.Account, model.GameResult) {
	acc.Balance = acc.Balance.Add(reserved)
	return l.Apply(acc, net, game)
}
