// Package memory_repo - хранилище в памяти процесса. Используется, когда PG_DSN не задан, и в тестах сервисов
package memory_repo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"crypto_luck/internal/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type snapshot struct {
	accounts  map[string]model.Account
	results   map[string][]model.GameResult
	blackjack map[string]model.BlackjackRound
	slips     map[string][]model.Bet
}

// Store - общие данные всех репозиториев в памяти
type Store struct {
	txMtx sync.Mutex
	mtx   sync.RWMutex
	data  snapshot
}

func NewStore() *Store {
	return &Store{
		data: snapshot{
			accounts:  make(map[string]model.Account),
			results:   make(map[string][]model.GameResult),
			blackjack: make(map[string]model.BlackjackRound),
			slips:     make(map[string][]model.Bet),
		},
	}
}

func (s *Store) copyData() snapshot {
	cp := snapshot{
		accounts:  make(map[string]model.Account, len(s.data.accounts)),
		results:   make(map[string][]model.GameResult, len(s.data.results)),
		blackjack: make(map[string]model.BlackjackRound, len(s.data.blackjack)),
		slips:     make(map[string][]model.Bet, len(s.data.slips)),
	}
	for k, v := range s.data.accounts {
		cp.accounts[k] = v
	}
	for k, v := range s.data.results {
		cp.results[k] = append([]model.GameResult(nil), v...)
	}
	for k, v := range s.data.blackjack {
		cp.blackjack[k] = v
	}
	for k, v := range s.data.slips {
		cp.slips[k] = append([]model.Bet(nil), v...)
	}
	return cp
}

// TxManager - транзакции над Store: выполняются по одной, при ошибке данные откатываются
type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

var _ trm.Manager = (*TxManager)(nil)

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.txMtx.Lock()
	defer m.store.txMtx.Unlock()

	m.store.mtx.RLock()
	saved := m.store.copyData()
	m.store.mtx.RUnlock()

	if err := fn(ctx); err != nil {
		m.store.mtx.Lock()
		m.store.data = saved
		m.store.mtx.Unlock()
		return err
	}
	return nil
}

func (m *TxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// Leaderboard - таблица лидеров в памяти
type Leaderboard struct {
	mtx     sync.RWMutex
	entries map[string]model.LeaderboardEntry
}

func NewLeaderboard() *Leaderboard {
	return &Leaderboard{entries: make(map[string]model.LeaderboardEntry)}
}

func (l *Leaderboard) Upsert(_ context.Context, e model.LeaderboardEntry) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.entries[e.Username] = e
	return nil
}

func (l *Leaderboard) Top(_ context.Context, sortBy model.LeaderboardSort, order model.SortOrder, limit int) ([]model.LeaderboardEntry, error) {
	l.mtx.RLock()
	out := make([]model.LeaderboardEntry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e)
	}
	l.mtx.RUnlock()

	compare := func(a, b model.LeaderboardEntry) int {
		switch sortBy {
		case model.SortByWinRate:
			switch {
			case a.WinRate > b.WinRate:
				return -1
			case a.WinRate < b.WinRate:
				return 1
			}
			return 0
		case model.SortByTotalWins:
			return b.TotalWinnings.Cmp(a.TotalWinnings)
		default:
			return b.Balance.Cmp(a.Balance)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := compare(out[i], out[j]); c != 0 {
			return (c < 0) != (order == model.OrderAsc)
		}
		return strings.Compare(out[i].Username, out[j].Username) < 0
	})

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
