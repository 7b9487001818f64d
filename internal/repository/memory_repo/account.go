package memory_repo

import (
	"context"
	"time"

	"crypto_luck/internal/model"
	"crypto_luck/internal/repository"
)

type accountRepo struct {
	store *Store
}

func NewAccountRepository(store *Store) repository.AccountRepository {
	return &accountRepo{store: store}
}

func (r *accountRepo) Create(_ context.Context, acc model.Account) (bool, error) {
	r.store.mtx.Lock()
	defer r.store.mtx.Unlock()

	if _, ok := r.store.data.accounts[acc.Username]; ok {
		return false, nil
	}
	acc.History = nil
	r.store.data.accounts[acc.Username] = acc
	return true, nil
}

func (r *accountRepo) Get(_ context.Context, username string) (model.Account, error) {
	r.store.mtx.RLock()
	defer r.store.mtx.RUnlock()

	acc, ok := r.store.data.accounts[username]
	if !ok {
		return model.Account{}, model.ErrAccountNotFound
	}
	return acc, nil
}

// GetForUpdate - в памяти транзакции и так идут по одной
func (r *accountRepo) GetForUpdate(ctx context.Context, username string) (model.Account, error) {
	return r.Get(ctx, username)
}

func (r *accountRepo) Save(_ context.Context, acc model.Account) error {
	r.store.mtx.Lock()
	defer r.store.mtx.Unlock()

	if _, ok := r.store.data.accounts[acc.Username]; !ok {
		return model.ErrAccountNotFound
	}
	acc.History = nil
	r.store.data.accounts[acc.Username] = acc
	return nil
}

func (r *accountRepo) Touch(_ context.Context, username string) error {
	r.store.mtx.Lock()
	defer r.store.mtx.Unlock()

	acc, ok := r.store.data.accounts[username]
	if !ok {
		return model.ErrAccountNotFound
	}
	acc.LastActivity = time.Now()
	r.store.data.accounts[username] = acc
	return nil
}

func (r *accountRepo) AppendResult(_ context.Context, res model.GameResult, keep int) error {
	r.store.mtx.Lock()
	defer r.store.mtx.Unlock()

	results := append(r.store.data.results[res.Username], res)
	if keep > 0 && len(results) > keep {
		results = append([]model.GameResult(nil), results[len(results)-keep:]...)
	}
	r.store.data.results[res.Username] = results
	return nil
}

func (r *accountRepo) RecentResults(_ context.Context, username string, limit int) ([]model.GameResult, error) {
	r.store.mtx.RLock()
	defer r.store.mtx.RUnlock()

	all := r.store.data.results[username]
	n := len(all)
	if limit > 0 && n > limit {
		n = limit
	}
	out := make([]model.GameResult, 0, n)
	for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, all[i])
	}
	return out, nil
}
