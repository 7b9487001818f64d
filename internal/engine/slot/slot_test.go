package slot

import (
	"errors"
	"testing"

	"crypto_luck/internal/engine/rng"
	"crypto_luck/internal/model"

	"github.com/shopspring/decimal"
)

func TestEvaluate(t *testing.T) {
	m := New(nil, nil)
	tests := []struct {
		name     string
		reels    [Reels]string
		bet      string
		wantWin  string
		wantNet  string
		wantKind model.SlotWinKind
	}{
		{"money bag triple", [Reels]string{MoneyBag, MoneyBag, MoneyBag}, "20", "200", "180", model.SlotWinTriple},
		{"cherry triple at base bet", [Reels]string{Cherry, Cherry, Cherry}, "10", "5", "-5", model.SlotWinTriple},
		{"fractional triple", [Reels]string{Lemon, Lemon, Lemon}, "15", "15", "0", model.SlotWinTriple},
		{"cherry triple odd bet", [Reels]string{Cherry, Cherry, Cherry}, "3", "1.5", "-1.5", model.SlotWinTriple},
		{"pair first two", [Reels]string{Cherry, Cherry, Bell}, "10", "5", "-5", model.SlotWinPair},
		{"pair outer", [Reels]string{Bell, Cherry, Bell}, "10", "5", "-5", model.SlotWinPair},
		{"pair last two", [Reels]string{Star, Bell, Bell}, "7", "3.5", "-3.5", model.SlotWinPair},
		{"no match", [Reels]string{Cherry, Lemon, Bell}, "10", "0", "-10", model.SlotWinNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := m.Evaluate(tt.reels, decimal.RequireFromString(tt.bet))
			if !res.Win.Equal(decimal.RequireFromString(tt.wantWin)) {
				t.Errorf("win: expected %s, got %s", tt.wantWin, res.Win)
			}
			if !res.NetDelta.Equal(decimal.RequireFromString(tt.wantNet)) {
				t.Errorf("net: expected %s, got %s", tt.wantNet, res.NetDelta)
			}
			if res.Kind != tt.wantKind {
				t.Errorf("kind: expected %s, got %s", tt.wantKind, res.Kind)
			}
		})
	}
}

func TestEvaluateTripleOutsideTable(t *testing.T) {
	m := New([]string{"A", "B"}, map[string]decimal.Decimal{"A": decimal.NewFromInt(10)})
	res := m.Evaluate([Reels]string{"B", "B", "B"}, decimal.NewFromInt(10))
	if !res.Win.Equal(decimal.NewFromInt(5)) || res.Kind != model.SlotWinPair {
		t.Fatalf("triple without table entry must pay as pair, got %+v", res)
	}
}

func TestSpinValidation(t *testing.T) {
	m := New(nil, nil)
	src := rng.NewSequence(0.1)
	if _, err := m.Spin(decimal.Zero, decimal.NewFromInt(100), src); !errors.Is(err, model.ErrInvalidBet) {
		t.Errorf("expected ErrInvalidBet, got %v", err)
	}
	for _, bet := range []string{"10.5", "0.0001"} {
		if _, err := m.Spin(decimal.RequireFromString(bet), decimal.NewFromInt(100), src); !errors.Is(err, model.ErrInvalidBet) {
			t.Errorf("bet %s: expected ErrInvalidBet, got %v", bet, err)
		}
	}
	if _, err := m.Spin(decimal.NewFromInt(101), decimal.NewFromInt(100), src); !errors.Is(err, model.ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}
}

func TestSpinDrawsFromSource(t *testing.T) {
	m := New(nil, nil)
	n := len(DefaultSymbols())
	src := rng.NewSequence(rng.Pick(7, n), rng.Pick(7, n), rng.Pick(7, n))

	res, err := m.Spin(decimal.NewFromInt(20), decimal.NewFromInt(100), src)
	if err != nil {
		t.Fatalf("Spin: %v", err)
	}
	if res.Reels != [Reels]string{MoneyBag, MoneyBag, MoneyBag} {
		t.Fatalf("unexpected reels %v", res.Reels)
	}
	if !res.Win.Equal(decimal.NewFromInt(200)) || !res.NetDelta.Equal(decimal.NewFromInt(180)) {
		t.Fatalf("unexpected win/net %s/%s", res.Win, res.NetDelta)
	}
}

func TestSpinUsesAllSymbols(t *testing.T) {
	m := New(nil, nil)
	src := rng.NewSeeded(5)
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		res, err := m.Spin(decimal.NewFromInt(1), decimal.NewFromInt(1), src)
		if err != nil {
			t.Fatalf("Spin: %v", err)
		}
		for _, s := range res.Reels {
			seen[s] = true
		}
	}
	if len(seen) != len(DefaultSymbols()) {
		t.Fatalf("expected all %d symbols, saw %d", len(DefaultSymbols()), len(seen))
	}
}
