package blackjack

import "github.com/shopspring/decimal"

type StartRequest struct {
	Bet decimal.Decimal `json:"bet"` // Целое положительное
}

type Card struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

type RoundResponse struct {
	Phase       string          `json:"phase"`
	Bet         decimal.Decimal `json:"bet"`
	PlayerHand  []Card          `json:"player_hand"`
	PlayerValue int             `json:"player_value"`
	DealerHand  []Card          `json:"dealer_hand"`  // Без закрытой карты, пока идёт раунд
	DealerValue int             `json:"dealer_value"` // Только по открытым картам
	HoleHidden  bool            `json:"hole_hidden"`
	Outcome     string          `json:"outcome,omitempty"`
	Credited    decimal.Decimal `json:"credited"`
	NetDelta    decimal.Decimal `json:"net_delta"`
	Balance     decimal.Decimal `json:"balance"`
}
