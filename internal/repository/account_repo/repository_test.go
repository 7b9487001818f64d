package account_repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"crypto_luck/internal/model"
	"crypto_luck/internal/repository/pgtestutil"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestAccountLifecycle(t *testing.T) {
	pool := pgtestutil.NewTestPool(t)
	r := NewAccountRepository(pool)
	ctx := context.Background()

	acc := model.Account{
		Username:     "alice",
		Balance:      decimal.NewFromInt(1000),
		LastActivity: time.Now().UTC().Truncate(time.Millisecond),
	}

	created, err := r.Create(ctx, acc)
	if err != nil || !created {
		t.Fatalf("Create: created=%v err=%v", created, err)
	}
	created, err = r.Create(ctx, acc)
	if err != nil || created {
		t.Fatalf("second Create: created=%v err=%v", created, err)
	}

	acc.Balance = decimal.RequireFromString("1012.5")
	acc.TotalWinnings = decimal.RequireFromString("12.5")
	acc.GamesPlayed = 1
	if err := r.Save(ctx, acc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := r.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Balance.Equal(acc.Balance) || !got.TotalWinnings.Equal(acc.TotalWinnings) || got.GamesPlayed != 1 {
		t.Fatalf("unexpected account %+v", got)
	}

	if _, err := r.Get(ctx, "nobody"); !errors.Is(err, model.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	if err := r.Save(ctx, model.Account{Username: "nobody"}); !errors.Is(err, model.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound on save, got %v", err)
	}
	if err := r.Touch(ctx, "alice"); err != nil {
		t.Fatalf("Touch: %v", err)
	}
}

func TestRecentResults(t *testing.T) {
	pool := pgtestutil.NewTestPool(t)
	r := NewAccountRepository(pool)
	ctx := context.Background()

	if _, err := r.Create(ctx, model.Account{Username: "bob", Balance: decimal.NewFromInt(100), LastActivity: time.Now()}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		res := model.GameResult{
			ID:        uuid.New(),
			Username:  "bob",
			Game:      model.GameSlots,
			Wagered:   decimal.NewFromInt(int64(i + 1)),
			NetDelta:  decimal.NewFromInt(int64(-(i + 1))),
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}
		if err := r.AppendResult(ctx, res, 0); err != nil {
			t.Fatalf("AppendResult: %v", err)
		}
	}

	recent, err := r.RecentResults(ctx, "bob", 3)
	if err != nil {
		t.Fatalf("RecentResults: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 results, got %d", len(recent))
	}
	if !recent[0].NetDelta.Equal(decimal.NewFromInt(-5)) {
		t.Errorf("expected newest first, got %s", recent[0].NetDelta)
	}
}

func TestAppendResultPrunes(t *testing.T) {
	pool := pgtestutil.NewTestPool(t)
	r := NewAccountRepository(pool)
	ctx := context.Background()

	if _, err := r.Create(ctx, model.Account{Username: "dave", Balance: decimal.NewFromInt(100), LastActivity: time.Now()}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		res := model.GameResult{
			ID:        uuid.New(),
			Username:  "dave",
			Game:      model.GameRoulette,
			Wagered:   decimal.NewFromInt(int64(i + 1)),
			NetDelta:  decimal.NewFromInt(int64(i + 1)),
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}
		if err := r.AppendResult(ctx, res, 2); err != nil {
			t.Fatalf("AppendResult: %v", err)
		}
	}

	recent, err := r.RecentResults(ctx, "dave", 0)
	if err != nil {
		t.Fatalf("RecentResults: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 results, got %d", len(recent))
	}
	if !recent[0].NetDelta.Equal(decimal.NewFromInt(5)) || !recent[1].NetDelta.Equal(decimal.NewFromInt(4)) {
		t.Errorf("expected newest two, got %s %s", recent[0].NetDelta, recent[1].NetDelta)
	}
}

// Вторая транзакция ждёт, пока первая держит блокировку строки
func TestGetForUpdateSerializes(t *testing.T) {
	pool := pgtestutil.NewTestPool(t)
	r := NewAccountRepository(pool)
	ctx := context.Background()

	txManager, err := manager.New(trmpgx.NewDefaultFactory(pool))
	if err != nil {
		t.Fatalf("tx manager: %v", err)
	}
	if _, err := r.Create(ctx, model.Account{Username: "carol", Balance: decimal.NewFromInt(100), LastActivity: time.Now()}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	locked := make(chan struct{})
	release := make(chan struct{})
	errCh := make(chan error, 1)

	go func() {
		errCh <- txManager.Do(context.Background(), func(txCtx context.Context) error {
			acc, err := r.GetForUpdate(txCtx, "carol")
			if err != nil {
				return err
			}
			close(locked)
			<-release
			acc.Balance = acc.Balance.Sub(decimal.NewFromInt(30))
			return r.Save(txCtx, acc)
		})
	}()

	<-locked
	done := make(chan error, 1)
	go func() {
		done <- txManager.Do(context.Background(), func(txCtx context.Context) error {
			acc, err := r.GetForUpdate(txCtx, "carol")
			if err != nil {
				return err
			}
			acc.Balance = acc.Balance.Sub(decimal.NewFromInt(50))
			return r.Save(txCtx, acc)
		})
	}()

	select {
	case err := <-done:
		t.Fatalf("second transaction finished while row was locked: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	close(release)
	if err := <-errCh; err != nil {
		t.Fatalf("first tx: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("second tx: %v", err)
	}

	acc, err := r.Get(ctx, "carol")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !acc.Balance.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected 20 after both debits, got %s", acc.Balance)
	}
}
