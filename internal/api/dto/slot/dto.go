package slot

import "github.com/shopspring/decimal"

type SpinRequest struct {
	Bet decimal.Decimal `json:"bet"` // Любая положительная сумма
}

type SpinResponse struct {
	Reels    [3]string       `json:"reels"`
	Bet      decimal.Decimal `json:"bet"`
	Win      decimal.Decimal `json:"win"`
	Kind     string          `json:"kind"` // none, pair, triple
	NetDelta decimal.Decimal `json:"net_delta"`
	Balance  decimal.Decimal `json:"balance"`
}
