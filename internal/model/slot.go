package model

import "github.com/shopspring/decimal"

// SlotWinKind - вид выигрыша на слоте
type SlotWinKind string

const (
	SlotWinNone   SlotWinKind = "none"
	SlotWinPair   SlotWinKind = "pair"
	SlotWinTriple SlotWinKind = "triple"
)

// SlotSpin - запрос спина
type SlotSpin struct {
	Bet decimal.Decimal
}

// SlotSpinResult - результат спина слота
type SlotSpinResult struct {
	Reels    [3]string
	Bet      decimal.Decimal
	Win      decimal.Decimal
	Kind     SlotWinKind
	NetDelta decimal.Decimal
	Balance  decimal.Decimal
}
