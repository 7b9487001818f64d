package converter

import (
	"fmt"

	"crypto_luck/internal/api/dto/roulette"
	"crypto_luck/internal/model"

	"github.com/shopspring/decimal"
)

// FromBetRequest - тип ставки и лунка. Для number лунка обязательна
func FromBetRequest(in roulette.BetRequest) (model.BetType, int, error) {
	betType := model.BetType(in.Type)
	if in.Value == nil {
		if betType == model.BetNumber {
			return betType, 0, fmt.Errorf("number bet without value: %w", model.ErrInvalidBet)
		}
		return betType, 0, nil
	}
	return betType, *in.Value, nil
}

func ToSlipResponse(slip []model.Bet) roulette.SlipResponse {
	total := decimal.Zero
	for _, b := range slip {
		total = total.Add(b.Amount)
	}
	return roulette.SlipResponse{
		Bets:  toBets(slip),
		Total: total,
	}
}

func ToRouletteSpinResponse(res model.RouletteSpinResult) roulette.SpinResponse {
	return roulette.SpinResponse{
		Outcome:     res.Outcome,
		Color:       res.Color,
		Staked:      res.Staked,
		TotalWin:    res.TotalWin,
		NetDelta:    res.NetDelta,
		WinningBets: toBets(res.WinningBets),
		Balance:     res.Balance,
	}
}

func toBets(bets []model.Bet) []roulette.Bet {
	out := make([]roulette.Bet, 0, len(bets))
	for _, b := range bets {
		out = append(out, roulette.Bet{
			Type:   string(b.Type),
			Value:  b.Number,
			Amount: b.Amount,
			Payout: b.Payout,
		})
	}
	return out
}
