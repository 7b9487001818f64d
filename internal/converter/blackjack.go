package converter

import (
	"crypto_luck/internal/api/dto/blackjack"
	"crypto_luck/internal/model"
)

func ToRoundResponse(st model.RoundState) blackjack.RoundResponse {
	return blackjack.RoundResponse{
		Phase:       st.Phase.String(),
		Bet:         st.Bet,
		PlayerHand:  toCards(st.PlayerHand),
		PlayerValue: st.PlayerValue,
		DealerHand:  toCards(st.DealerHand),
		DealerValue: st.DealerValue,
		HoleHidden:  st.HoleHidden,
		Outcome:     string(st.Outcome),
		Credited:    st.Credited,
		NetDelta:    st.NetDelta,
		Balance:     st.Balance,
	}
}

func toCards(cards []model.Card) []blackjack.Card {
	out := make([]blackjack.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, blackjack.Card{Suit: c.Suit, Rank: c.Rank})
	}
	return out
}
