package converter

import (
	"errors"
	"testing"

	"crypto_luck/internal/api/dto/roulette"
	"crypto_luck/internal/model"

	"github.com/shopspring/decimal"
)

func TestToRoundResponse(t *testing.T) {
	st := model.RoundState{
		Phase:       model.PhasePlaying,
		Bet:         decimal.NewFromInt(10),
		PlayerHand:  []model.Card{{Suit: model.Spades, Rank: "A"}, {Suit: model.Hearts, Rank: "9"}},
		PlayerValue: 20,
		DealerHand:  []model.Card{{Suit: model.Clubs, Rank: "K"}},
		DealerValue: 10,
		HoleHidden:  true,
	}

	got := ToRoundResponse(st)
	if got.Phase != "playing" || len(got.DealerHand) != 1 || !got.HoleHidden || got.Outcome != "" {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestToSlipResponseTotal(t *testing.T) {
	slip := []model.Bet{
		{Type: model.BetRed, Amount: decimal.NewFromInt(10)},
		{Type: model.BetNumber, Number: 7, Amount: decimal.NewFromInt(5)},
	}

	got := ToSlipResponse(slip)
	if !got.Total.Equal(decimal.NewFromInt(15)) || len(got.Bets) != 2 || got.Bets[1].Value != 7 {
		t.Fatalf("unexpected slip %+v", got)
	}
	if empty := ToSlipResponse(nil); empty.Bets == nil || !empty.Total.IsZero() {
		t.Fatalf("expected empty non-nil slip, got %+v", empty)
	}
}

func TestToLeaderboardResponseRanks(t *testing.T) {
	entries := []model.LeaderboardEntry{{Username: "a"}, {Username: "b"}}
	got := ToLeaderboardResponse(model.SortByWinRate, model.OrderDesc, entries)
	if got.Sort != "winRate" || got.Entries[0].Rank != 1 || got.Entries[1].Rank != 2 {
		t.Fatalf("unexpected leaderboard %+v", got)
	}
}

func TestFromBetRequest(t *testing.T) {
	seven := 7
	tests := []struct {
		name       string
		in         roulette.BetRequest
		wantType   model.BetType
		wantNumber int
		wantErr    error
	}{
		{"number with value", roulette.BetRequest{Type: "number", Value: &seven}, model.BetNumber, 7, nil},
		{"number without value", roulette.BetRequest{Type: "number"}, model.BetNumber, 0, model.ErrInvalidBet},
		{"color without value", roulette.BetRequest{Type: "red"}, model.BetRed, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			betType, number, err := FromBetRequest(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if betType != tt.wantType || number != tt.wantNumber {
				t.Errorf("expected %s/%d, got %s/%d", tt.wantType, tt.wantNumber, betType, number)
			}
		})
	}
}
