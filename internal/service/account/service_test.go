package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"crypto_luck/internal/ledger"
	"crypto_luck/internal/model"
	"crypto_luck/internal/repository/memory_repo"
	"crypto_luck/internal/repository/rtp_repo"
	"crypto_luck/internal/service"
	"crypto_luck/internal/service/settlement"
	"crypto_luck/pkg/token"

	"github.com/shopspring/decimal"
)

var secret = []byte("test-secret")

type jwtConfig struct{}

func (jwtConfig) AccessTokenSecretKey() []byte       { return secret }
func (jwtConfig) AccessTokenDuration() time.Duration { return time.Hour }

type gamesConfig struct{}

func (gamesConfig) StartingBalance() decimal.Decimal         { return decimal.NewFromInt(1000) }
func (gamesConfig) HistoryLimit() int                        { return 0 }
func (gamesConfig) RecentGames() int                         { return 3 }
func (gamesConfig) DealerStand() int                         { return 17 }
func (gamesConfig) RouletteNumberPayout() decimal.Decimal    { return decimal.NewFromInt(35) }
func (gamesConfig) RouletteEvenMoneyPayout() decimal.Decimal { return decimal.NewFromInt(2) }
func (gamesConfig) SlotSymbols() []string                    { return nil }
func (gamesConfig) SlotPayouts() map[string]decimal.Decimal  { return nil }
func (gamesConfig) RTPWindow() int                           { return 10 }

type env struct {
	svc     service.AccountService
	store   *memory_repo.Store
	settler *settlement.Settler
}

func newEnv() env {
	store := memory_repo.NewStore()
	accounts := memory_repo.NewAccountRepository(store)
	lb := memory_repo.NewLeaderboard()
	rtp := rtp_repo.NewRTPRepository(10)
	settler := settlement.New(accounts, lb, rtp, ledger.New())
	return env{
		svc:     NewAccountService(accounts, lb, rtp, settler, jwtConfig{}, gamesConfig{}, memory_repo.NewTxManager(store)),
		store:   store,
		settler: settler,
	}
}

func TestLoginCreatesAccountOnce(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	tok, acc, err := e.svc.Login(ctx, "  alice ")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if acc.Username != "alice" || !acc.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("unexpected account %+v", acc)
	}
	claims, err := token.VerifyToken(tok, secret)
	if err != nil || claims.Subject != "alice" {
		t.Fatalf("token subject: %v %v", claims, err)
	}

	// Повторный вход не сбрасывает баланс
	accounts := memory_repo.NewAccountRepository(e.store)
	acc.Balance = decimal.NewFromInt(5)
	if err := accounts.Save(ctx, acc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_, again, err := e.svc.Login(ctx, "alice")
	if err != nil {
		t.Fatalf("second Login: %v", err)
	}
	if !again.Balance.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("expected balance kept, got %s", again.Balance)
	}
	if again.LastActivity.Before(acc.LastActivity) {
		t.Fatal("expected last activity refreshed")
	}
}

func TestLoginInvalidUsername(t *testing.T) {
	e := newEnv()
	for _, name := range []string{"", "   ", "a b", "this-name-is-definitely-way-too-long-for-us"} {
		if _, _, err := e.svc.Login(context.Background(), name); !errors.Is(err, model.ErrInvalidUsername) {
			t.Errorf("%q: expected ErrInvalidUsername, got %v", name, err)
		}
	}
}

func TestStats(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	_, acc, err := e.svc.Login(ctx, "alice")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	for _, net := range []int64{10, -20, 5, -5} {
		if acc, err = e.settler.Settle(ctx, acc, decimal.Zero, decimal.NewFromInt(net), model.GameSlots); err != nil {
			t.Fatalf("Settle: %v", err)
		}
	}

	stats, err := e.svc.Stats(ctx, "alice")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if !stats.Account.Balance.Equal(decimal.NewFromInt(990)) || stats.Account.GamesPlayed != 4 {
		t.Fatalf("unexpected account %+v", stats.Account)
	}
	// 15 / (15 + 25) = 37.5%
	if stats.WinRate != 37.5 {
		t.Fatalf("expected win rate 37.5, got %v", stats.WinRate)
	}
	if len(stats.RecentGames) != 3 || !stats.RecentGames[0].NetDelta.Equal(decimal.NewFromInt(-5)) {
		t.Fatalf("expected 3 newest games, got %+v", stats.RecentGames)
	}
}

func TestLeaderboard(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	for _, name := range []string{"alice", "bob"} {
		if _, _, err := e.svc.Login(ctx, name); err != nil {
			t.Fatalf("Login: %v", err)
		}
	}

	top, err := e.svc.Leaderboard(ctx, "", "", 0)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}

	if _, err := e.svc.Leaderboard(ctx, "luck", "", 10); !errors.Is(err, model.ErrInvalidSort) {
		t.Fatalf("expected ErrInvalidSort, got %v", err)
	}
	if _, err := e.svc.Leaderboard(ctx, model.SortByBalance, "sideways", 10); !errors.Is(err, model.ErrInvalidSort) {
		t.Fatalf("expected ErrInvalidSort for order, got %v", err)
	}
	asc, err := e.svc.Leaderboard(ctx, model.SortByBalance, model.OrderAsc, 10)
	if err != nil || len(asc) != 2 || asc[0].Username != "alice" {
		t.Fatalf("unexpected ascending board %+v, %v", asc, err)
	}
}

func TestStatsUnknownAccount(t *testing.T) {
	e := newEnv()
	if _, err := e.svc.Stats(context.Background(), "ghost"); !errors.Is(err, model.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
