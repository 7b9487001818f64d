package roulette

import "github.com/shopspring/decimal"

type BetRequest struct {
	Type   string          `json:"type"`  // number, red, black, odd, even, low, high
	Value  *int            `json:"value"` // Лунка для number
	Amount decimal.Decimal `json:"amount"`
}

type Bet struct {
	Type   string          `json:"type"`
	Value  int             `json:"value"`
	Amount decimal.Decimal `json:"amount"`
	Payout decimal.Decimal `json:"payout"`
}

type SlipResponse struct {
	Bets  []Bet           `json:"bets"`
	Total decimal.Decimal `json:"total"`
}

type SpinResponse struct {
	Outcome     int             `json:"outcome"`
	Color       string          `json:"color"`
	Staked      decimal.Decimal `json:"staked"`
	TotalWin    decimal.Decimal `json:"total_win"`
	NetDelta    decimal.Decimal `json:"net_delta"`
	WinningBets []Bet           `json:"winning_bets"`
	Balance     decimal.Decimal `json:"balance"`
}
