package model

import "github.com/shopspring/decimal"

// BetType - тип ставки рулетки
type BetType string

const (
	BetNumber BetType = "number"
	BetRed    BetType = "red"
	BetBlack  BetType = "black"
	BetOdd    BetType = "odd"
	BetEven   BetType = "even"
	BetLow    BetType = "low"
	BetHigh   BetType = "high"
)

// Bet - одна ставка. Number имеет смысл только для BetNumber
type Bet struct {
	Type   BetType         `json:"type"`
	Number int             `json:"number"`
	Amount decimal.Decimal `json:"amount"`
	Payout decimal.Decimal `json:"payout"`
}

// RouletteSpinResult - результат спина рулетки
type RouletteSpinResult struct {
	Outcome     int
	Color       string
	Staked      decimal.Decimal
	TotalWin    decimal.Decimal
	NetDelta    decimal.Decimal
	WinningBets []Bet
	Balance     decimal.Decimal
}
