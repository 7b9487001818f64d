// Package roulette - европейская рулетка на 37 лунок
package roulette

import (
	"fmt"

	"crypto_luck/internal/engine/rng"
	"crypto_luck/internal/model"

	"github.com/shopspring/decimal"
)

// Pockets - число лунок, 0..36
const Pockets = 37

// Цвета лунок
const (
	Green = "green"
	Red   = "red"
	Black = "black"
)

var redPockets = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true,
	12: true, 14: true, 16: true, 18: true, 19: true,
	21: true, 23: true, 25: true, 27: true, 30: true,
	32: true, 34: true, 36: true,
}

// Payouts - множители выигрыша
type Payouts struct {
	Number    decimal.Decimal
	EvenMoney decimal.Decimal
}

// DefaultPayouts - 35 за число, 2 за ставки на шансы
func DefaultPayouts() Payouts {
	return Payouts{
		Number:    decimal.NewFromInt(35),
		EvenMoney: decimal.NewFromInt(2),
	}
}

// Wheel проверяет и разыгрывает ставки
type Wheel struct {
	payouts Payouts
}

func New(p Payouts) *Wheel {
	def := DefaultPayouts()
	if !p.Number.IsPositive() {
		p.Number = def.Number
	}
	if !p.EvenMoney.IsPositive() {
		p.EvenMoney = def.EvenMoney
	}
	return &Wheel{payouts: p}
}

// NewBet собирает ставку и проставляет множитель
func (w *Wheel) NewBet(betType model.BetType, number int, amount decimal.Decimal) (model.Bet, error) {
	if !amount.IsPositive() || !amount.IsInteger() {
		return model.Bet{}, fmt.Errorf("amount %s: %w", amount, model.ErrInvalidBet)
	}

	bet := model.Bet{Type: betType, Amount: amount}
	switch betType {
	case model.BetNumber:
		if number < 0 || number >= Pockets {
			return model.Bet{}, fmt.Errorf("pocket %d: %w", number, model.ErrInvalidBet)
		}
		bet.Number = number
		bet.Payout = w.payouts.Number
	case model.BetRed, model.BetBlack, model.BetOdd, model.BetEven, model.BetLow, model.BetHigh:
		bet.Payout = w.payouts.EvenMoney
	default:
		return model.Bet{}, fmt.Errorf("bet type %q: %w", betType, model.ErrInvalidBet)
	}
	return bet, nil
}

// PlaceBet добавляет ставку в купон. Проверяется только сама ставка, без резерва под предыдущие
func PlaceBet(slip []model.Bet, bet model.Bet, balance decimal.Decimal) ([]model.Bet, error) {
	if bet.Amount.GreaterThan(balance) {
		return slip, fmt.Errorf("bet %s over balance %s: %w", bet.Amount, balance, model.ErrInsufficientFunds)
	}
	out := make([]model.Bet, 0, len(slip)+1)
	out = append(out, slip...)
	return append(out, bet), nil
}

// ClearBets очищает купон
func ClearBets() []model.Bet {
	return []model.Bet{}
}

// Total - сумма ставок купона
func Total(slip []model.Bet) decimal.Decimal {
	total := decimal.Zero
	for _, b := range slip {
		total = total.Add(b.Amount)
	}
	return total
}

// Spin крутит колесо и разыгрывает весь купон
func (w *Wheel) Spin(slip []model.Bet, balance decimal.Decimal, src rng.Source) (model.RouletteSpinResult, error) {
	if len(slip) == 0 {
		return model.RouletteSpinResult{}, model.ErrNoBets
	}
	staked := Total(slip)
	if staked.GreaterThan(balance) {
		return model.RouletteSpinResult{}, fmt.Errorf("stake %s over balance %s: %w", staked, balance, model.ErrInsufficientFunds)
	}

	outcome := rng.Intn(src, Pockets)
	return Resolve(slip, outcome), nil
}

// Resolve считает выигрыш купона для выпавшей лунки
func Resolve(slip []model.Bet, outcome int) model.RouletteSpinResult {
	res := model.RouletteSpinResult{
		Outcome:     outcome,
		Color:       Color(outcome),
		Staked:      Total(slip),
		TotalWin:    decimal.Zero,
		WinningBets: []model.Bet{},
	}
	for _, b := range slip {
		if Wins(b, outcome) {
			res.TotalWin = res.TotalWin.Add(b.Amount.Mul(b.Payout))
			res.WinningBets = append(res.WinningBets, b)
		}
	}
	res.NetDelta = res.TotalWin.Sub(res.Staked)
	return res
}

// Wins сообщает, сыграла ли ставка. Зеро проигрывает все ставки кроме числа 0
func Wins(b model.Bet, outcome int) bool {
	if b.Type == model.BetNumber {
		return b.Number == outcome
	}
	if outcome <= 0 || outcome >= Pockets {
		return false
	}
	switch b.Type {
	case model.BetRed:
		return redPockets[outcome]
	case model.BetBlack:
		return !redPockets[outcome]
	case model.BetOdd:
		return outcome%2 == 1
	case model.BetEven:
		return outcome%2 == 0
	case model.BetLow:
		return outcome <= 18
	case model.BetHigh:
		return outcome >= 19
	}
	return false
}

// Color - цвет лунки
func Color(pocket int) string {
	switch {
	case pocket == 0:
		return Green
	case redPockets[pocket]:
		return Red
	default:
		return Black
	}
}
