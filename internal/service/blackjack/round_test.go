package blackjack

import (
	"context"
	"errors"
	"testing"

	"crypto_luck/internal/engine/rng"
	"crypto_luck/internal/ledger"
	"crypto_luck/internal/model"
	"crypto_luck/internal/repository"
	"crypto_luck/internal/repository/memory_repo"
	"crypto_luck/internal/repository/rtp_repo"
	"crypto_luck/internal/service"
	"crypto_luck/internal/service/settlement"

	"github.com/shopspring/decimal"
)

type env struct {
	svc      service.BlackjackService
	accounts repository.AccountRepository
	states   repository.GameStateRepository
}

func newEnv(t *testing.T) env {
	t.Helper()
	store := memory_repo.NewStore()
	accounts := memory_repo.NewAccountRepository(store)
	states := memory_repo.NewGameStateRepository(store)
	settler := settlement.New(accounts, memory_repo.NewLeaderboard(), rtp_repo.NewRTPRepository(10), ledger.New())

	if _, err := accounts.Create(context.Background(), model.Account{Username: "alice", Balance: decimal.NewFromInt(1000)}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	return env{
		svc:      NewBlackjackService(accounts, states, settler, rng.NewSeededFactory(42), 17, memory_repo.NewTxManager(store)),
		accounts: accounts,
		states:   states,
	}
}

func (e env) balance(t *testing.T) decimal.Decimal {
	t.Helper()
	acc, err := e.accounts.Get(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	return acc.Balance
}

func TestRoundLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	bet := decimal.NewFromInt(100)

	st, err := e.svc.Start(ctx, "alice", bet)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if st.Phase == model.PhasePlaying {
		if !st.HoleHidden || len(st.DealerHand) != 1 {
			t.Fatalf("hole card must be hidden while playing: %+v", st)
		}
		if !st.Balance.Equal(decimal.NewFromInt(900)) || !e.balance(t).Equal(decimal.NewFromInt(900)) {
			t.Fatalf("expected stake reserved, balance %s", st.Balance)
		}

		restored, err := e.svc.State(ctx, "alice")
		if err != nil {
			t.Fatalf("State: %v", err)
		}
		if restored.Phase != model.PhasePlaying || len(restored.PlayerHand) != 2 {
			t.Fatalf("round not persisted: %+v", restored)
		}

		if _, err := e.svc.NewRound(ctx, "alice"); !errors.Is(err, model.ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState for new round while playing, got %v", err)
		}

		st, err = e.svc.Stand(ctx, "alice")
		if err != nil {
			t.Fatalf("Stand: %v", err)
		}
	}

	if st.Phase != model.PhaseFinished || st.HoleHidden {
		t.Fatalf("expected finished round, got %+v", st)
	}
	want := decimal.NewFromInt(1000).Add(st.NetDelta)
	if !st.Balance.Equal(want) || !e.balance(t).Equal(want) {
		t.Fatalf("expected balance %s, got %s", want, e.balance(t))
	}

	recent, _ := e.accounts.RecentResults(ctx, "alice", 10)
	if len(recent) != 1 || recent[0].Game != model.GameBlackjack || !recent[0].NetDelta.Equal(st.NetDelta) {
		t.Fatalf("expected one blackjack result, got %+v", recent)
	}

	if _, err := e.svc.Hit(ctx, "alice"); !errors.Is(err, model.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState for hit after finish, got %v", err)
	}

	st, err = e.svc.NewRound(ctx, "alice")
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	if st.Phase != model.PhaseBetting || len(st.PlayerHand) != 0 {
		t.Fatalf("expected clean betting round, got %+v", st)
	}
}

func TestStartRejected(t *testing.T) {
	tests := []struct {
		name string
		bet  decimal.Decimal
		err  error
	}{
		{"zero", decimal.Zero, model.ErrInvalidBet},
		{"fractional", decimal.RequireFromString("10.5"), model.ErrInvalidBet},
		{"over balance", decimal.NewFromInt(1001), model.ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			if _, err := e.svc.Start(context.Background(), "alice", tt.bet); !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if !e.balance(t).Equal(decimal.NewFromInt(1000)) {
				t.Fatalf("balance changed to %s", e.balance(t))
			}
		})
	}
}

func TestActionsInBetting(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.svc.Hit(ctx, "alice"); !errors.Is(err, model.ErrInvalidState) {
		t.Fatalf("Hit: expected ErrInvalidState, got %v", err)
	}
	if _, err := e.svc.Stand(ctx, "alice"); !errors.Is(err, model.ErrInvalidState) {
		t.Fatalf("Stand: expected ErrInvalidState, got %v", err)
	}
	if st, err := e.svc.NewRound(ctx, "alice"); err != nil || st.Phase != model.PhaseBetting {
		t.Fatalf("NewRound in betting must be a no-op, got %+v %v", st, err)
	}
}

func TestEmptyDeckAbortsRound(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	round := model.BlackjackRound{
		Phase:  model.PhasePlaying,
		Bet:    decimal.NewFromInt(10),
		Player: []model.Card{{Suit: model.Spades, Rank: "5"}, {Suit: model.Hearts, Rank: "6"}},
		Dealer: []model.Card{{Suit: model.Clubs, Rank: "9"}, {Suit: model.Diamonds, Rank: "7"}},
	}
	if err := e.states.SaveBlackjack(ctx, "alice", round); err != nil {
		t.Fatalf("SaveBlackjack: %v", err)
	}

	if _, err := e.svc.Hit(ctx, "alice"); !errors.Is(err, model.ErrEmptyDeck) {
		t.Fatalf("expected ErrEmptyDeck, got %v", err)
	}

	st, err := e.svc.State(ctx, "alice")
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if st.Phase != model.PhaseBetting {
		t.Fatalf("expected round discarded, got %s", st.Phase)
	}
	if recent, _ := e.accounts.RecentResults(ctx, "alice", 10); len(recent) != 0 {
		t.Fatalf("aborted round must not be settled: %+v", recent)
	}
}

func TestUnknownAccount(t *testing.T) {
	e := newEnv(t)
	if _, err := e.svc.Start(context.Background(), "bob", decimal.NewFromInt(10)); !errors.Is(err, model.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
