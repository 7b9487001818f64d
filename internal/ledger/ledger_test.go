package ledger

import (
	"errors"
	"testing"
	"time"

	"crypto_luck/internal/model"

	"github.com/shopspring/decimal"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func fixedClock() func() time.Time {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time { return ts }
}

func TestApplyAccumulates(t *testing.T) {
	l := New(WithClock(fixedClock()))
	acc := model.Account{Username: "alice", Balance: dec(1000)}
	deltas := []int64{15, -10, 0, 340, -90}

	for _, d := range deltas {
		acc, _ = l.Apply(acc, dec(d), model.GameRoulette)
	}

	if !acc.Balance.Equal(dec(1255)) {
		t.Errorf("balance: expected 1255, got %s", acc.Balance)
	}
	if !acc.TotalWinnings.Equal(dec(355)) {
		t.Errorf("winnings: expected 355, got %s", acc.TotalWinnings)
	}
	if !acc.TotalLosses.Equal(dec(100)) {
		t.Errorf("losses: expected 100, got %s", acc.TotalLosses)
	}
	if acc.GamesPlayed != int64(len(deltas)) {
		t.Errorf("games: expected %d, got %d", len(deltas), acc.GamesPlayed)
	}
	if len(acc.History) != len(deltas) {
		t.Fatalf("history: expected %d entries, got %d", len(deltas), len(acc.History))
	}
	if !acc.LastActivity.Equal(fixedClock()()) {
		t.Errorf("last activity not updated")
	}
}

func TestApplyResultEntry(t *testing.T) {
	l := New(WithClock(fixedClock()))
	acc := model.Account{Username: "bob", Balance: dec(100)}

	acc, res := l.Apply(acc, dec(-25), model.GameBlackjack)
	if !res.Wagered.Equal(dec(25)) || !res.NetDelta.Equal(dec(-25)) {
		t.Fatalf("unexpected entry %+v", res)
	}
	if res.Game != model.GameBlackjack || res.Username != "bob" {
		t.Fatalf("unexpected entry tags %+v", res)
	}
	if acc.History[0].ID != res.ID {
		t.Fatalf("history entry differs from returned result")
	}

	_, other := l.Apply(acc, dec(5), model.GameBlackjack)
	if other.ID == res.ID {
		t.Fatalf("expected unique ids")
	}
}

func TestApplyDoesNotShareHistory(t *testing.T) {
	l := New()
	base := model.Account{Balance: dec(10), History: make([]model.GameResult, 0, 4)}
	a, _ := l.Apply(base, dec(1), model.GameSlots)
	b, _ := l.Apply(base, dec(-1), model.GameSlots)
	if a.History[0].ID == b.History[0].ID {
		t.Fatalf("applies over the same base must not overwrite each other")
	}
	if len(base.History) != 0 {
		t.Fatalf("base history mutated")
	}
}

func TestApplyAllowsNegativeBalance(t *testing.T) {
	l := New()
	acc, _ := l.Apply(model.Account{Balance: dec(10)}, dec(-50), model.GameSlots)
	if !acc.Balance.Equal(dec(-40)) {
		t.Fatalf("expected -40, got %s", acc.Balance)
	}
}

func TestHistoryLimit(t *testing.T) {
	l := New(WithHistoryLimit(3))
	acc := model.Account{Balance: dec(100)}
	for i := int64(1); i <= 5; i++ {
		acc, _ = l.Apply(acc, dec(i), model.GameSlots)
	}
	if len(acc.History) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(acc.History))
	}
	if !acc.History[0].NetDelta.Equal(dec(3)) || !acc.History[2].NetDelta.Equal(dec(5)) {
		t.Fatalf("expected newest entries kept, got %v", acc.History)
	}
	if acc.GamesPlayed != 5 {
		t.Fatalf("games counter must not be bounded, got %d", acc.GamesPlayed)
	}
}

func TestReserve(t *testing.T) {
	l := New()
	acc := model.Account{Balance: dec(100)}

	if _, err := l.Reserve(acc, dec(101)); !errors.Is(err, model.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if _, err := l.Reserve(acc, dec(-1)); !errors.Is(err, model.ErrInvalidBet) {
		t.Fatalf("expected ErrInvalidBet, got %v", err)
	}

	got, err := l.Reserve(acc, dec(100))
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if !got.Balance.IsZero() || got.GamesPlayed != 0 || len(got.History) != 0 {
		t.Fatalf("reserve must only debit balance, got %+v", got)
	}
}

func TestSettleMovesBalanceByNet(t *testing.T) {
	tests := []struct {
		name  string
		stake int64
		net   int64
		want  int64
	}{
		{"blackjack", 10, 15, 1015},
		{"lose", 10, -10, 990},
		{"push", 10, 0, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			acc := model.Account{Balance: dec(1000)}
			acc, err := l.Reserve(acc, dec(tt.stake))
			if err != nil {
				t.Fatalf("Reserve: %v", err)
			}
			acc, _ = l.Settle(acc, dec(tt.stake), dec(tt.net), model.GameBlackjack)
			if !acc.Balance.Equal(dec(tt.want)) {
				t.Errorf("expected %d, got %s", tt.want, acc.Balance)
			}
			if acc.GamesPlayed != 1 || len(acc.History) != 1 {
				t.Errorf("expected one settlement recorded, got %d/%d", acc.GamesPlayed, len(acc.History))
			}
		})
	}
}
