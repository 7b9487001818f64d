// Package slot - трёхбарабанный слот с таблицей выплат за тройки
package slot

import (
	"fmt"

	"crypto_luck/internal/engine/rng"
	"crypto_luck/internal/model"

	"github.com/shopspring/decimal"
)

// Reels - число барабанов
const Reels = 3

// Символы по умолчанию
const (
	Cherry   = "🍒"
	Lemon    = "🍋"
	Orange   = "🍊"
	Grapes   = "🍇"
	Star     = "⭐"
	Diamond  = "💎"
	Bell     = "🔔"
	MoneyBag = "💰"
)

var (
	// Таблица выплат задана на ставку в 10 монет
	payoutBase = decimal.NewFromInt(10)
	pairRate   = decimal.RequireFromString("0.5")
)

// DefaultSymbols - порядок символов на барабане
func DefaultSymbols() []string {
	return []string{Cherry, Lemon, Orange, Grapes, Star, Diamond, Bell, MoneyBag}
}

// DefaultPayouts - выплата за тройку при ставке 10
func DefaultPayouts() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		MoneyBag: decimal.NewFromInt(100),
		Diamond:  decimal.NewFromInt(75),
		Star:     decimal.NewFromInt(50),
		Bell:     decimal.NewFromInt(30),
		Grapes:   decimal.NewFromInt(20),
		Orange:   decimal.NewFromInt(15),
		Lemon:    decimal.NewFromInt(10),
		Cherry:   decimal.NewFromInt(5),
	}
}

// Machine - слот с заданным набором символов
type Machine struct {
	symbols []string
	payouts map[string]decimal.Decimal
}

// New создаёт слот. Пустые параметры заменяются значениями по умолчанию
func New(symbols []string, payouts map[string]decimal.Decimal) *Machine {
	if len(symbols) == 0 {
		symbols = DefaultSymbols()
	}
	if len(payouts) == 0 {
		payouts = DefaultPayouts()
	}
	return &Machine{
		symbols: append([]string(nil), symbols...),
		payouts: payouts,
	}
}

// Symbols - символы барабана
func (m *Machine) Symbols() []string {
	return append([]string(nil), m.symbols...)
}

// Spin проверяет ставку, крутит барабаны и считает выигрыш
func (m *Machine) Spin(bet, balance decimal.Decimal, src rng.Source) (model.SlotSpinResult, error) {
	if !bet.IsPositive() || !bet.IsInteger() {
		return model.SlotSpinResult{}, fmt.Errorf("bet %s: %w", bet, model.ErrInvalidBet)
	}
	if bet.GreaterThan(balance) {
		return model.SlotSpinResult{}, fmt.Errorf("bet %s over balance %s: %w", bet, balance, model.ErrInsufficientFunds)
	}

	var reels [Reels]string
	for i := range reels {
		reels[i] = m.symbols[rng.Intn(src, len(m.symbols))]
	}
	return m.Evaluate(reels, bet), nil
}

// Evaluate считает выигрыш для выпавших символов. Тройка проверяется раньше пары
func (m *Machine) Evaluate(reels [Reels]string, bet decimal.Decimal) model.SlotSpinResult {
	res := model.SlotSpinResult{
		Reels: reels,
		Bet:   bet,
		Win:   decimal.Zero,
		Kind:  model.SlotWinNone,
	}

	a, b, c := reels[0], reels[1], reels[2]
	pay, ok := m.payouts[a]
	switch {
	case a == b && b == c && ok:
		res.Win = pay.Mul(bet).Div(payoutBase)
		res.Kind = model.SlotWinTriple
	case a == b || b == c || a == c:
		// тройка без выплаты в таблице платит как пара
		res.Win = bet.Mul(pairRate)
		res.Kind = model.SlotWinPair
	}

	res.NetDelta = res.Win.Sub(bet)
	return res
}
